package models

import "gorm.io/gorm"

// User is the minimal identity row; authentication itself is handled by an
// external identity service, the auth middleware only resolves the user id.
type User struct {
	gorm.Model
	Name  string
	Email string `gorm:"unique"`
}
