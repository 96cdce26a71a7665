package patch

// Apply overwrites *dst with *src when src is set.
func Apply[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}
