package domain

import "errors"

var (
	ErrNotFound            = errors.New("resource not found")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrUserInactive        = errors.New("user is inactive")
	ErrDuplicateEmail      = errors.New("email already exists")
	ErrInvalidRole         = errors.New("invalid role")
	ErrDuplicateCode       = errors.New("code already exists for this module")
	ErrCodeExhausted       = errors.New("could not allocate a unique code")
	ErrUnsupportedFileType = errors.New("unsupported file type")
	ErrFileTooLarge        = errors.New("file exceeds maximum allowed size")
	ErrUploadFailed        = errors.New("file upload to storage failed")
	ErrUnknownField        = errors.New("field is not part of this module")
	ErrInvalidLookupInput  = errors.New("invalid lookup input")
	ErrLookupUnavailable   = errors.New("lookup service unavailable")
)
