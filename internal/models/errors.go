package models

import "errors"

// Таксономия доменных ошибок. Слои выше оборачивают их через %w и различают через errors.Is.
var (
	ErrInvalidLocation   = errors.New("invalid location")
	ErrInvalidInvitation = errors.New("invalid invitation")
	ErrInvalidInput      = errors.New("invalid input")
	ErrAlreadyProcessed  = errors.New("invitation already processed")
	ErrExpired           = errors.New("invitation expired")
	ErrForbidden         = errors.New("forbidden")
	ErrNotFound          = errors.New("not found")
	ErrConflict          = errors.New("conflict")
	ErrTimeout           = errors.New("timeout")
)
