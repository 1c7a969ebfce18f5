package model

import "time"

// Admin is a registered console credential. Passwords are stored verbatim:
// the credential collection is a gate for the console, not an identity
// system, and updates must be able to rewrite the stored value in place.
type Admin struct {
	Email     string    `json:"email"`
	Password  string    `json:"password"`
	CreatedAt time.Time `json:"createdAt"`
}

// AdminSession is the singleton record of the currently authenticated admin.
type AdminSession struct {
	Email     string    `json:"email"`
	LoginTime time.Time `json:"loginTime"`
}
