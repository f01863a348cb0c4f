package auctionerrors

import "errors"

// Store-level errors
var (
	ErrItemNotFound      = errors.New("item not found")
	ErrNoBids            = errors.New("no bids recorded for item")
	ErrBidSuperseded     = errors.New("bid superseded by a higher stored bid")
	ErrRemoteUnavailable = errors.New("remote store unavailable")
)

// Bidding rule errors
var (
	ErrInvalidAmount = errors.New("invalid bid amount")
	ErrBelowMinimum  = errors.New("bid below minimum next bid")
)

// Session and flow errors
var (
	ErrIdentityMissing    = errors.New("no registered bidder identity")
	ErrInvalidIdentity    = errors.New("invalid registration details")
	ErrProposalNotFound   = errors.New("bid proposal not found")
	ErrProposalNotPending = errors.New("bid proposal is not awaiting confirmation")
	ErrConfirmRequired    = errors.New("explicit confirmation required")
)

// Admin validation errors
var (
	ErrInvalidItem = errors.New("invalid item fields")
)
