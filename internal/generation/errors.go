package generation

import "errors"

// Common errors returned by the generation boundary
var (
	// ErrGenerationFailed is returned when reply generation fails for any general reason
	ErrGenerationFailed = errors.New("failed to generate companion reply")

	// ErrInvalidResponse is returned when the model response is empty or malformed
	ErrInvalidResponse = errors.New("invalid response from language model")

	// ErrContentBlocked is returned when the model blocks the content due to safety filters
	ErrContentBlocked = errors.New("content blocked by language model safety filters")

	// ErrInvalidConfig is returned when the responder configuration is invalid
	ErrInvalidConfig = errors.New("invalid responder configuration")
)
