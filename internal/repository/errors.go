package repository

import "errors"

var (
	// ErrNotFound covers both a missed id lookup and a row that vanished
	// between load and save.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicateEmail is returned when a user write would violate the
	// email uniqueness rule.
	ErrDuplicateEmail = errors.New("email already exists")

	// ErrStatusInUse blocks deleting an order status that orders still
	// reference.
	ErrStatusInUse = errors.New("order status is referenced by existing orders")
)
