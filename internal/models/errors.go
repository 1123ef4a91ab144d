package models

import "errors"

var (
	ErrUserNotFound    = errors.New("user not found")
	ErrEventNotFound   = errors.New("event not found")
	ErrServiceNotFound = errors.New("service not found")
	ErrBookingNotFound = errors.New("booking not found")
)

var (
	ErrEmailTaken         = errors.New("email is already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrWrongPassword      = errors.New("current password is incorrect")
	ErrTokenInvalid       = errors.New("invalid or expired token")
)

var (
	ErrNotOwner   = errors.New("not authorized to modify this resource")
	ErrValidation = errors.New("validation error")
)
