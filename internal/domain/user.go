package domain

import "time"

// User is the directory record for a principal. Registration, sessions and
// profile management live in a separate identity service; this backend only
// looks users up and honors the ban flag.
type User struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username" gorm:"uniqueIndex"`
	Email     string    `json:"email"`
	Banned    bool      `json:"-"`
	CreatedAt time.Time `json:"created_at"`
}

func (User) TableName() string { return "users" }
