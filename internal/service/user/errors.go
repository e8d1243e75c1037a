package user

import "errors"

var (
	ErrEmptyNickname   = errors.New("nickname must not be empty")
	ErrNicknameTooLong = errors.New("nickname is too long")
)
