package apperror

import (
	"errors"
	"fmt"
)

var (
	ErrValidation    = errors.New("validation failed")
	ErrSelfMessage   = fmt.Errorf("%w: cannot send a message to yourself", ErrValidation)
	ErrContentLength = fmt.Errorf("%w: content must be between 1 and 500 characters", ErrValidation)
	ErrInvalidRange  = fmt.Errorf("%w: invalid range", ErrValidation)

	ErrNotFound         = errors.New("not found")
	ErrUserNotFound     = fmt.Errorf("%w: user", ErrNotFound)
	ErrReceiverNotFound = fmt.Errorf("%w: receiver does not exist or was deleted", ErrNotFound)
	ErrSenderNotFound   = fmt.Errorf("%w: sender does not exist", ErrNotFound)
	ErrTargetNotFound   = fmt.Errorf("%w: target user does not exist or was deleted", ErrNotFound)

	// ErrPersistence means the message was not durably stored and must be treated as not sent.
	ErrPersistence = errors.New("persistence failure")

	ErrAlreadyExists      = errors.New("already exists")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUnauthorized       = errors.New("unauthorized")
)
