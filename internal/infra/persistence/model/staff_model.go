package model

import "time"

// StaffModel mirrors the 'staff' table.
type StaffModel struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	Name      string    `gorm:"type:varchar(255);not null"`
	Email     string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	Password  string    `gorm:"type:varchar(255);not null"`
	Role      string    `gorm:"type:varchar(20);not null;default:staff"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

// TableName explicitly sets the table name for GORM.
func (StaffModel) TableName() string {
	return "staff"
}

// StaffStatsRow receives the aggregate staff query.
type StaffStatsRow struct {
	TotalStaff  int64
	AdminCount  int64
	StaffCount  int64
	RecentStaff int64
}
