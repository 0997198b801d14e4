package service

import "errors"

var (
	ErrEmptyPasteID     = errors.New("paste id is empty")
	ErrEmptyOutputDir   = errors.New("output directory is empty")
	ErrWriteAttachment  = errors.New("failed to write attachment")
	ErrInvalidSealInput = errors.New("invalid encryption parameters")
)
