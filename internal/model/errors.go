package model

import "errors"

var (
	ErrNotFound   = errors.New("not found")
	ErrValidation = errors.New("validation error")
	ErrConflict   = errors.New("conflict")
	ErrUpload     = errors.New("upload error")
	ErrNetwork    = errors.New("network error")
)
