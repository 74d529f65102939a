package services

import "errors"

// Validation sentinels returned by the content services. Handlers map these
// to 400 responses; the admin forms surface them as field errors.
var (
	ErrTitleRequired    = errors.New("services: title is required")
	ErrDateRequired     = errors.New("services: date is required")
	ErrCategoryRequired = errors.New("services: category is required")
	ErrDateConflict     = errors.New("services: single date and date range are mutually exclusive")

	ErrNameRequired = errors.New("services: name is required")
	ErrEmailInvalid = errors.New("services: email address is invalid")
	ErrBodyRequired = errors.New("services: message body is required")

	ErrUnsupportedImageType = errors.New("services: unsupported image content type")
)
