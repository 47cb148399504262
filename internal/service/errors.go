package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	ErrTokenIsExpired          = errors.New("token is expired")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	ErrNoDeviceID            = errors.New("no device ID was given")
	ErrInvalidSignature      = errors.New("content signature does not match")
	ErrEmptyMessageBody      = errors.New("message body is empty")
	ErrVersionIsNotSpecified = errors.New("version is not specified")
)
