package domain

import "errors"

// Domain-specific errors for request validation and collaborator failures.
var (
	// Account errors
	ErrAccountNotFound = errors.New("account not found")
	ErrAccountInactive = errors.New("account is inactive")
	ErrInvalidToken    = errors.New("invalid authentication token")

	// View errors
	ErrUnknownView     = errors.New("unknown view")
	ErrInvalidPage     = errors.New("page must be a positive integer")
	ErrUnknownStatus   = errors.New("unknown status code")
	ErrInvalidRange    = errors.New("invalid date range")
	ErrInvalidAssignee = errors.New("assignee must be a numeric user id")
	ErrNoFilters       = errors.New("view does not support filters")

	// Board errors
	ErrUnknownColumn   = errors.New("unknown board column")
	ErrProposeNotFound = errors.New("propose not found")

	// Directory errors
	ErrUserNotFound         = errors.New("user not found")
	ErrNotificationNotFound = errors.New("notification not found")
	ErrEmptyMessage         = errors.New("notification message is empty")

	// Collaborator errors
	ErrUpstream          = errors.New("upstream request failed")
	ErrUpstreamAuth      = errors.New("upstream rejected credentials")
	ErrStaleRequest      = errors.New("request superseded by a newer one")
	ErrUnsupportedFormat = errors.New("unsupported export format")
	ErrExportTooLarge    = errors.New("export exceeds page limit")
)
