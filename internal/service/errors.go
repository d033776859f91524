package service

import "errors"

var (
	ErrInternal             = errors.New("internal server error")
	ErrUserNotFound         = errors.New("user not found")
	ErrProfileNotFound      = errors.New("profile not found")
	ErrProfileAlreadyExists = errors.New("profile already exists for this account")
	ErrUsernameTaken        = errors.New("username already taken")
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrPasswordsDontMatch   = errors.New("passwords don't match")
	ErrWeakPassword         = errors.New("password must contain at least one number and one special character")
)
