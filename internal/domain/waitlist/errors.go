package waitlist

import "errors"

var (
	ErrEntryNotFound    = errors.New("waitlist entry not found")
	ErrInvalidToken     = errors.New("claim token is not recognized")
	ErrTokenExpired     = errors.New("claim token has expired")
	ErrSlotAlreadyTaken = errors.New("the freed slot has already been claimed")
	ErrNotOwner         = errors.New("waitlist entry belongs to a different client")
	ErrDuplicateEntry   = errors.New("client is already waiting for this slot")
)
