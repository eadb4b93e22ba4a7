package services

import "errors"

var (
	ErrSessionNotFound    = errors.New("session not found")
	ErrUnknownCategory    = errors.New("unknown category")
	ErrContentUnavailable = errors.New("cannot load content")
	ErrSessionOver        = errors.New("session has ended")
)
