package services

import "errors"

var (
	// ErrValidation marks a malformed or incomplete booking request,
	// including times outside the day's business hours.
	ErrValidation = errors.New("invalid booking request")

	// ErrSlotTaken means the slot was occupied at commit time. The caller
	// must re-fetch availability and let the user pick again.
	ErrSlotTaken = errors.New("slot is no longer available")

	// ErrNotFound covers missing and already-finalized appointment
	// references; it signals stale client state.
	ErrNotFound = errors.New("appointment not found")
)
