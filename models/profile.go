// models/profile.go
package models

import (
	"gorm.io/gorm"
)

// Profile is a marketplace user. The same identity books stays as a guest
// and owns listings as a host; there is no separate host account type.
type Profile struct {
	gorm.Model

	Email        string `json:"email" gorm:"uniqueIndex;size:255"`
	PasswordHash string `json:"-" gorm:"column:password_hash;size:255"`
	FirstName    string `json:"firstName" gorm:"column:first_name;size:100"`
	LastName     string `json:"lastName" gorm:"column:last_name;size:100"`
}
