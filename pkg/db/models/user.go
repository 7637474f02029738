package models

import "time"

// User is an operator account. Password holds the argon2id encoded hash.
type User struct {
	ID        uint      `gorm:"primaryKey;autoIncrement"`
	Username  string    `gorm:"column:username;size:100;not null;uniqueIndex"`
	Email     string    `gorm:"column:email;size:255;not null;uniqueIndex"`
	Password  string    `gorm:"column:password;not null"`
	FirstName *string   `gorm:"column:first_name;size:100"`
	LastName  *string   `gorm:"column:last_name;size:100"`
	Role      string    `gorm:"column:role;size:50;not null"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
}
