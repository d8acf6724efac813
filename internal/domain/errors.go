package domain

import "errors"

// Domain errors
var (
	ErrRecordNotFound     = errors.New("record not found")
	ErrUserNotFound       = errors.New("user not found")
	ErrUsernameTaken      = errors.New("username is already taken")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrInvalidToken       = errors.New("invalid token")
	ErrEmptyUpload        = errors.New("file cannot be empty")
)
