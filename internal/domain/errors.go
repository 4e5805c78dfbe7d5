package domain

import "errors"

var (
	ErrSessionNotFound     = errors.New("session not found")
	ErrSignupNotFound      = errors.New("signup not found")
	ErrParticipantNotFound = errors.New("participant not found")
)

var (
	ErrInvalidConfiguration  = errors.New("invalid session configuration")
	ErrCapacityExceeded      = errors.New("session capacity exceeded")
	ErrInvalidTransition     = errors.New("invalid status transition")
	ErrParticipantRestricted = errors.New("participant is restricted by penalty cooldown")
	ErrAlreadySignedUp       = errors.New("participant already has a signup for this session")
)

var (
	ErrValidation = errors.New("validation error")
)
