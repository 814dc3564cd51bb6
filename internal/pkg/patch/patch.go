package patch

// Coalesce returns *ptr when a patch field was sent, otherwise the current value.
func Coalesce[T any](ptr *T, fallback T) T {
	if ptr != nil {
		return *ptr
	}
	return fallback
}
