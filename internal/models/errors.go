package models

import (
	"errors"
)

var (
	ErrMissingCredential = errors.New("ai credential not configured")
	ErrUnparseableOutput = errors.New("generated output is not valid JSON")
	ErrMissingSecret     = errors.New("token signing secret not configured")
)
