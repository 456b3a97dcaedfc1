package utils

import "errors"

var (
	ErrInvalidInput         = errors.New("invalid input")
	ErrRateLimited          = errors.New("generation rate limited")
	ErrQuotaExhausted       = errors.New("generation quota exhausted")
	ErrUpstream             = errors.New("generation service failure")
	ErrEmptyResponse        = errors.New("empty generation response")
	ErrMalformedResponse    = errors.New("malformed generation response")
	ErrConversationBusy     = errors.New("conversation already has a request in flight")
	ErrConversationNotFound = errors.New("conversation not found")
	ErrPreferencesNotFound  = errors.New("preferences not found")
	ErrDatabaseError        = errors.New("database error")
)
