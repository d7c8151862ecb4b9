package deck

import "errors"

var (
	ErrUnknownKind  = errors.New("unknown slide type")
	ErrMissingKey   = errors.New("missing content key")
	ErrInvalidValue = errors.New("invalid content value")
	ErrEmptyDeck    = errors.New("deck has no slides")
	ErrNoTitleSlide = errors.New("first slide is not a title slide")
)
