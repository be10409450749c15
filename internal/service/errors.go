package service

import "errors"

var (
	// ErrListNotFound — идентификатор не соответствует ни одному списку.
	ErrListNotFound = errors.New("list not found")
	// ErrUserNotFound — пользователя с таким email нет.
	ErrUserNotFound = errors.New("user not found")
)
