package repository

import "errors"

var (
	ErrNilDocument     = errors.New("settings document is nil")
	ErrCorruptDocument = errors.New("stored settings document is not valid JSON")
	ErrLeadNotFound    = errors.New("lead not found")
)
