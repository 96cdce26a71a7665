package api

import (
	"net/http"

	"carrental-storefront/internal/domain/location"
	resdto "carrental-storefront/internal/handler/dto/response"
	"carrental-storefront/internal/handler/httperr"
	"carrental-storefront/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

type LocationHandler struct {
	dir *location.Directory
}

func NewLocationHandler(dir *location.Directory) *LocationHandler {
	return &LocationHandler{dir: dir}
}

// @Summary List locations
// @Description Pickup and drop-off locations in display order
// @Tags locations
// @Produce json
// @Success 200 {array} resdto.LocationResponse
// @Router /api/locations [get]
func (h *LocationHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, resdto.FromLocations(h.dir.All()))
}

// @Summary Resolve location
// @Description Match free text against location names, addresses and labels
// @Tags locations
// @Produce json
// @Param q query string true "Free text"
// @Success 200 {object} resdto.LocationResponse
// @Failure 404 {object} map[string]string
// @Router /api/locations/resolve [get]
func (h *LocationHandler) Resolve(c *gin.Context) {
	loc, ok := h.dir.ResolveByText(c.Query("q"))
	if !ok {
		httperr.AbortWithError(c, http.StatusNotFound, errs.ErrLocationNotFound, "Location not found", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromLocation(loc))
}
