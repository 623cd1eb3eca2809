// Package model contains the GORM persistence models mirroring the database tables.
package model

import "time"

// UserModel mirrors the 'users' table. The application generates typed string
// identifiers; the store enforces email uniqueness so the insert itself is the
// atomic conditional operation.
type UserModel struct {
	ID           string `gorm:"type:varchar(64);primary_key"`
	EmailAddress string `gorm:"type:varchar(255);unique;not null"`
	Firstname    string `gorm:"type:varchar(100);not null"`
	Lastname     string `gorm:"type:varchar(100);not null"`
	PasswordHash string `gorm:"type:varchar(255);not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
