package uniqgen

// coalesce returns def when v is the zero value of T - otherwise v.
func coalesce[T comparable](v, def T) T {
	var zero T
	if v == zero {
		return def
	}
	return v
}

// attempts is the number of tries a Generate call makes for a configured bound.
func attempts(maxRetry int) int {
	return max(maxRetry, 1)
}
