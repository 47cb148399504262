package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyBody                = errors.New("message body is required")
	ErrBodyNotUTF8              = errors.New("message body is not valid utf-8")
	ErrInvalidContentType       = errors.New("invalid content type")
	ErrInvalidContentEncoding   = errors.New("invalid content encoding")
	ErrEmptyPropertyName        = errors.New("property name cannot be empty")
	ErrMessageIDMismatch        = errors.New("message id differs from its property")
	ErrTooManyMessageProperties = errors.New("too many message properties")
)
