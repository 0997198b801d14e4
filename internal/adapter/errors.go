package adapter

import "errors"

var (
	ErrPasteNotFound       = errors.New("paste not found")
	ErrPasteUnavailable    = errors.New("paste unavailable")
	ErrBadGateway          = errors.New("bad gateway")
	ErrInternalServerError = errors.New("internal server error")
	ErrUnexpectedStatus    = errors.New("unexpected http status")
	ErrUnknownBackend      = errors.New("unknown fetcher backend")
	ErrInvalidPasteID      = errors.New("invalid paste id")
)
