package models

import (
	"time"

	"gorm.io/gorm"
)

// QuizAttempt is one completed-quiz record for a student. Attempts are
// append-only: the learner app writes them and the dashboard only reads.
type QuizAttempt struct {
	gorm.Model
	UserID       uint   `gorm:"index"`
	SubjectID    string `gorm:"index"`
	TopicID      string
	Score        int // percentage, 0-100
	PointsEarned int
	Completed    bool
	CompletedAt  string // RFC3339
}

type Badge struct {
	gorm.Model
	UserID      uint   `gorm:"index"`
	Type        string // logro, materia
	Name        string
	Description string
	Icon        string
	EarnedAt    time.Time
}

// Topic maps a topic slug to its display name for quiz generation.
type Topic struct {
	gorm.Model
	Slug        string `gorm:"unique;not null"`
	Name        string
	SubjectSlug string
}

// AdaptiveProfile stores the latest difficulty recommendation per student.
type AdaptiveProfile struct {
	gorm.Model
	UserID         string `gorm:"index"`
	Recommendation string // JSON
}
