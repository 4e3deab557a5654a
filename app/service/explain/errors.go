package explain

import "errors"

var (
	// ErrEmptyWord is returned for an empty or whitespace-only word,
	// before any external call is made.
	ErrEmptyWord = errors.New("word is empty")

	// ErrUnavailable covers transport failures and deadline expiry of
	// the completion call.
	ErrUnavailable = errors.New("explanation service unavailable")

	// ErrMalformedResponse is returned when the service replies without
	// a usable completion.
	ErrMalformedResponse = errors.New("malformed explanation response")
)
