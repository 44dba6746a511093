package utils

// Ptr returns a pointer to v. Useful for optional fields where nil means
// "unset", such as a request's sampling temperature.
//
// Example:
//
//	request.Temperature = utils.Ptr(0.1)
func Ptr[T any](v T) *T {
	return &v
}
