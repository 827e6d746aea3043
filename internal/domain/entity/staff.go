package entity

import "time"

// Staff is a back-office account allowed to manage products, orders and other staff.
type Staff struct {
	ID           int64
	Name         string
	Email        string
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
}

// StaffStats aggregates the staff table.
type StaffStats struct {
	Total    int64
	Admins   int64
	NonAdmin int64
	Recent   int64 // created in the last 30 days
}
