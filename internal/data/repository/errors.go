// Package repository holds the pgx-backed stores. The sentinel errors below
// are shared across repositories so higher layers can distinguish failure
// modes with errors.Is instead of matching message text.
package repository

import "errors"

// ErrNotFound is returned when an id does not resolve to any record.
// Soft-deleted movies do resolve; only genuinely absent ids trigger this.
var ErrNotFound = errors.New("record not found")

// ErrValidation is returned when input violates a field invariant before
// anything is persisted. Handlers translate it into a 400 response.
var ErrValidation = errors.New("validation failed")
