package models

import "time"

// User represents one registered account.
//
// SessionID holds the single active session token for the account; nil means
// no active session. ResetToken is declared for schema compatibility with the
// password-reset flow but no operation reads or writes it.
type User struct {
	ID             uint    `gorm:"primaryKey"`
	Email          string  `gorm:"size:250;uniqueIndex;not null"`
	HashedPassword string  `gorm:"size:250;not null"`
	SessionID      *string `gorm:"size:64;index"`
	ResetToken     *string `gorm:"size:250"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
