package controllers

import (
	"errors"
	"time"

	"cerebritos/backend/config"
	"cerebritos/backend/models"
	"cerebritos/backend/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type AttemptsController struct {
	DB  *gorm.DB
	Cfg *config.Config
}

func NewAttemptsController(db *gorm.DB, cfg *config.Config) *AttemptsController {
	return &AttemptsController{DB: db, Cfg: cfg}
}

// RecordAttempt stores one completed-quiz record for the authenticated
// student. Attempts are append-only; the dashboard only reads them.
func (atc *AttemptsController) RecordAttempt(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, atc.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	var input struct {
		SubjectID string `json:"subjectId"`
		TopicID   string `json:"topicId"`
		Score     *int   `json:"score"`
		Completed *bool  `json:"completed"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	if input.SubjectID == "" || input.TopicID == "" || input.Score == nil {
		return utils.BadRequest(c, "subjectId, topicId and score are required")
	}
	score := *input.Score
	if score < 0 || score > 100 {
		return utils.BadRequest(c, "score must be between 0 and 100")
	}

	completed := score >= 70
	if input.Completed != nil {
		completed = *input.Completed
	}

	now := time.Now()
	attempt := models.QuizAttempt{
		UserID:       userID,
		SubjectID:    input.SubjectID,
		TopicID:      input.TopicID,
		Score:        score,
		PointsEarned: score / 10,
		Completed:    completed,
		CompletedAt:  now.Format(time.RFC3339),
	}
	if err := atc.DB.Create(&attempt).Error; err != nil {
		return utils.InternalServerError(c, "Could not save attempt")
	}

	if err := atc.updateGamification(userID, attempt, now); err != nil {
		return utils.InternalServerError(c, "Could not update student stats")
	}

	return c.JSON(fiber.Map{
		"message":      "Attempt recorded",
		"attemptId":    attempt.ID,
		"pointsEarned": attempt.PointsEarned,
	})
}

// updateGamification awards points and maintains the activity streak:
// a new attempt within 48 hours of the previous one extends the streak,
// otherwise the streak restarts.
func (atc *AttemptsController) updateGamification(userID uint, attempt models.QuizAttempt, now time.Time) error {
	var user models.User
	if err := atc.DB.First(&user, userID).Error; err != nil {
		return err
	}

	user.TotalPoints += attempt.PointsEarned

	var previous models.QuizAttempt
	err := atc.DB.Where("user_id = ? AND id <> ?", userID, attempt.ID).
		Order("created_at DESC").
		First(&previous).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		user.StreakDays = 1
	case err != nil:
		return err
	default:
		if now.Sub(previous.CreatedAt) < 48*time.Hour {
			if user.StreakDays == 0 {
				user.StreakDays = 1
			}
			if !sameCalendarDay(previous.CreatedAt, now) {
				user.StreakDays++
			}
		} else {
			user.StreakDays = 1
		}
	}

	return atc.DB.Save(&user).Error
}

func sameCalendarDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
