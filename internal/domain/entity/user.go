// Package entity contains the core domain objects of the storefront.
package entity

import "time"

// User is a customer account.
type User struct {
	ID           int64
	Name         string
	Email        string
	PasswordHash string // never serialized
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
