package client

import "errors"

var (
	ErrNilServices     = errors.New("client services are nil")
	ErrNilConfig       = errors.New("client config is nil")
	ErrNoPastes        = errors.New("no pastes given: pass -url, -key with -id, or -from-clipboard")
	ErrIncompletePaste = errors.New("-key and -id must be given together")
	ErrClipboard       = errors.New("failed to read clipboard")
)
