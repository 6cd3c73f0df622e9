package domain

import "errors"

var (
	ErrUserNotFound    = errors.New("user not found")
	ErrProfileNotFound = errors.New("profile not found")
	ErrMatchNotFound   = errors.New("match not found")
	ErrRunNotFound     = errors.New("generation run not found")
	ErrRunInProgress   = errors.New("a generation run is already in progress")
)
