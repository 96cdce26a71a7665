//go:build unit

package reservation_test

import (
	"testing"
	"time"

	"carrental-storefront/internal/domain/daterange"
	"carrental-storefront/internal/domain/reservation"
	"carrental-storefront/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func span(from, to int) daterange.Range {
	s := daterange.NewDay(2025, time.June, from)
	e := daterange.NewDay(2025, time.June, to)
	return daterange.NewRange(&s, &e)
}

func TestDefaultPriceCalculator_Quote(t *testing.T) {
	calc := reservation.NewDefaultPriceCalculator(10, 50000)

	t.Run("three-day rental", func(t *testing.T) {
		c := builder.NewCarBuilder().WithDailyPrice(450000).BuildDomain()

		q, err := calc.Quote(c, span(1, 4))
		require.NoError(t, err)

		assert.Equal(t, 3, q.Days)
		assert.Equal(t, int64(3*450000), q.Subtotal.Cents())
		assert.Equal(t, int64(135000), q.ServiceFee.Cents())
		assert.Equal(t, int64(500*3*100), q.Insurance.Cents())
		assert.Equal(t, int64(3*450000+135000+150000), q.Total.Cents())
		assert.InDelta(t, 16350.0, q.Total.Units(), 0.001)
	})

	t.Run("one-day range bills one day", func(t *testing.T) {
		c := builder.NewCarBuilder().WithDailyPrice(100000).BuildDomain()

		q, err := calc.Quote(c, span(5, 5))
		require.NoError(t, err)
		assert.Equal(t, 1, q.Days)
		assert.Equal(t, int64(100000+10000+50000), q.Total.Cents())
	})

	t.Run("service fee rounds half up to the cent", func(t *testing.T) {
		c := builder.NewCarBuilder().WithDailyPrice(1005).BuildDomain()

		q, err := calc.Quote(c, span(1, 2))
		require.NoError(t, err)
		assert.Equal(t, int64(101), q.ServiceFee.Cents())
	})

	t.Run("incomplete range", func(t *testing.T) {
		c := builder.NewCarBuilder().BuildDomain()
		s := daterange.NewDay(2025, time.June, 1)

		_, err := calc.Quote(c, daterange.Range{Start: &s})
		assert.ErrorIs(t, err, reservation.ErrIncompleteRange)
	})

	t.Run("negative price", func(t *testing.T) {
		c := builder.NewCarBuilder().WithDailyPrice(-1).BuildDomain()

		_, err := calc.Quote(c, span(1, 2))
		assert.ErrorIs(t, err, reservation.ErrNegativePrice)
	})
}

func TestMoney(t *testing.T) {
	_, err := reservation.NewMoneyFromInt(-1)
	assert.ErrorIs(t, err, reservation.ErrNegativeMoney)

	m, err := reservation.NewMoneyFromInt(1999)
	require.NoError(t, err)
	assert.Equal(t, int64(3998), m.Times(2).Cents())
	assert.Equal(t, int64(200), m.Percent(10).Cents())
	assert.InDelta(t, 19.99, m.Units(), 0.0001)
}
