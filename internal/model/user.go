package model

import "gorm.io/gorm"

// User is an administrator account. Authentication only; airmen themselves
// never log in, they go through the public submission form.
type User struct {
	gorm.Model
	Name      string `json:"name"`
	ServiceNo string `json:"service_no" gorm:"unique;not null"`
	Password  string `json:"-"`
	Role      string `json:"role" gorm:"default:Admin"`
}
