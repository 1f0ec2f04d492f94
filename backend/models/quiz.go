package models

import "gorm.io/gorm"

type Quiz struct {
	gorm.Model
	TopicID        string `gorm:"index"`
	Title          string
	Difficulty     string // facil, medio, dificil
	TotalQuestions int
	TotalPoints    int
	TimeLimit      int    // seconds
	GeneratedBy    string // ia
	Prompt         string
	Active         bool `gorm:"default:true"`
	Questions      []QuizQuestion
}

type QuizQuestion struct {
	gorm.Model
	QuizID        uint
	Type          string // opcion_multiple, verdadero_falso
	Question      string
	Options       string // JSON array of options
	CorrectAnswer int
	Explanation   string
	Points        int
	Difficulty    int
	SequenceOrder int
}
