package cad

import "errors"

var (
	ErrEmptyName       = errors.New("table entry must have a name")
	ErrDuplicateName   = errors.New("duplicate table entry name")
	ErrDuplicateHandle = errors.New("duplicate handle")
	ErrNotFound        = errors.New("object not found")
	ErrInvalidHandle   = errors.New("invalid handle")
)
