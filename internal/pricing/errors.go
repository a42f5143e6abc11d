package pricing

// PricingError represents a pricing-specific error with a code and message.
// The handler layer maps codes to HTTP status codes, mirroring the domain
// error pattern without a circular import.
type PricingError struct {
	Code    string
	Message string
}

func (e *PricingError) Error() string {
	return e.Message
}

// ErrorCode returns the error code for HTTP status mapping.
func (e *PricingError) ErrorCode() string {
	return e.Code
}

var (
	// ErrInvalidRate is returned when constructing a calculator with a rate
	// outside [0, 1].
	ErrInvalidRate = &PricingError{Code: "invalid", Message: "Tax rate must be between 0 and 1"}
)
