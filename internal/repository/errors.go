// Package repository is the data access layer. Every repository wraps
// the shared GORM handle, takes a context on each call and reports
// failures through the sentinel errors below so handlers and services
// can map them to HTTP statuses without inspecting driver details.
package repository

import (
	"errors"

	"gorm.io/gorm"
)

// ErrNotFound is returned when a lookup matches no row. Handlers
// translate this into an HTTP 404 response.
var ErrNotFound = errors.New("record not found")

// ErrDuplicate is returned when an insert or update violates a unique
// constraint (email, product name, category name, carousel slug).
// Handlers translate this into an HTTP 409 response.
var ErrDuplicate = errors.New("duplicate record")

// translate maps GORM errors onto the repository sentinels.
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrDuplicate
	}
	return err
}
