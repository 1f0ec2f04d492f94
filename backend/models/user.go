package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Email        string `gorm:"unique;not null"`
	PasswordHash string `gorm:"not null"`
	FirstName    string
	LastName     string
	Grade        string
	Role         string `gorm:"default:parent"` // parent, student
	TotalPoints  int    `gorm:"default:0"`
	Level        int    `gorm:"default:1"`
	StreakDays   int    `gorm:"default:0"`
}

// ParentChildLink ties a student account to a parent account.
type ParentChildLink struct {
	gorm.Model
	ParentID uint   `gorm:"index"`
	ChildID  uint   `gorm:"index"`
	Status   string `gorm:"default:active"` // active, revoked
	LinkCode string
	LinkedAt time.Time
}
