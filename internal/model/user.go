package model

import (
	"strings"

	"gorm.io/gorm"
)

// User is an admin account. A user owns one or more tenant websites.
type User struct {
	gorm.Model
	Email    string `gorm:"uniqueIndex;not null"`
	Password string `gorm:"not null" json:"-"`

	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	CompanyName string `json:"company_name"`
	PhoneNumber string `json:"phone_number"`

	Websites []Website `json:"-"`
}

func (u *User) GetFullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

func (u *User) GetPublicProfile() map[string]interface{} {
	return map[string]interface{}{
		"id":           u.ID,
		"email":        u.Email,
		"full_name":    u.GetFullName(),
		"company_name": u.CompanyName,
		"phone_number": u.PhoneNumber,
	}
}
