package utils

import "errors"

var (
	ErrCoordinatesRequired = errors.New("latitude and longitude are required")
	ErrInvalidRadius       = errors.New("radius must be greater than 0")
	ErrPlaceNameRequired   = errors.New("place_name is required")
	ErrEmptyGeneration     = errors.New("no content generated")
)

// ErrorKind classifies a failure so the HTTP layer can pick a status and message.
type ErrorKind int

const (
	KindUnknown ErrorKind = iota
	KindValidation
	KindPlacesUpstream
	KindGeneration
)

func (k ErrorKind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindPlacesUpstream:
		return "places_upstream"
	case KindGeneration:
		return "generation"
	default:
		return "unknown"
	}
}

// ServiceError wraps a collaborator or validation failure with its kind.
type ServiceError struct {
	Kind ErrorKind
	Err  error
}

func (e *ServiceError) Error() string {
	if e.Err == nil {
		return e.Kind.String()
	}
	return e.Err.Error()
}

func (e *ServiceError) Unwrap() error { return e.Err }

func NewValidationError(err error) error {
	return &ServiceError{Kind: KindValidation, Err: err}
}

func NewPlacesError(err error) error {
	return &ServiceError{Kind: KindPlacesUpstream, Err: err}
}

func NewGenerationError(err error) error {
	return &ServiceError{Kind: KindGeneration, Err: err}
}

// KindOf returns the kind of the first ServiceError in err's chain.
func KindOf(err error) ErrorKind {
	var se *ServiceError
	if errors.As(err, &se) {
		return se.Kind
	}
	return KindUnknown
}
