package controllers

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"cerebritos/backend/config"
	"cerebritos/backend/models"
	"cerebritos/backend/progress"
	"cerebritos/backend/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ChildrenController struct {
	DB  *gorm.DB
	Cfg *config.Config
}

func NewChildrenController(db *gorm.DB, cfg *config.Config) *ChildrenController {
	return &ChildrenController{DB: db, Cfg: cfg}
}

func (cc *ChildrenController) GetChildren(c *fiber.Ctx) error {
	parentID, err := utils.ExtractUserIDFromToken(c, cc.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	var links []models.ParentChildLink
	if err := cc.DB.Where("parent_id = ? AND status = 'active'", parentID).Find(&links).Error; err != nil {
		return utils.InternalServerError(c, "Could not query database")
	}

	children := make([]fiber.Map, 0, len(links))
	for _, link := range links {
		var child models.User
		if err := cc.DB.First(&child, link.ChildID).Error; err != nil {
			continue
		}
		children = append(children, fiber.Map{
			"id":          child.ID,
			"email":       child.Email,
			"firstName":   child.FirstName,
			"lastName":    child.LastName,
			"grade":       child.Grade,
			"totalPoints": child.TotalPoints,
			"level":       child.Level,
			"streakDays":  child.StreakDays,
		})
	}

	return c.JSON(fiber.Map{
		"children": children,
	})
}

func (cc *ChildrenController) LinkChild(c *fiber.Ctx) error {
	parentID, err := utils.ExtractUserIDFromToken(c, cc.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	var input struct {
		Email string `json:"email"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if input.Email == "" {
		return utils.BadRequest(c, "Email is required")
	}

	var child models.User
	if err := cc.DB.Where("email = ? AND role = 'student'", input.Email).First(&child).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "No student found with that email")
		}
		return utils.InternalServerError(c, "Could not query database")
	}

	var existing models.ParentChildLink
	err = cc.DB.Where("parent_id = ? AND child_id = ? AND status = 'active'", parentID, child.ID).
		First(&existing).Error
	if err == nil {
		return utils.BadRequest(c, "This student is already linked to your account")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return utils.InternalServerError(c, "Could not query database")
	}

	link := models.ParentChildLink{
		ParentID: parentID,
		ChildID:  child.ID,
		Status:   "active",
		LinkCode: newLinkCode(),
		LinkedAt: time.Now(),
	}
	if err := cc.DB.Create(&link).Error; err != nil {
		return utils.InternalServerError(c, "Could not create link")
	}

	return c.JSON(fiber.Map{
		"message":  "Child linked",
		"childId":  child.ID,
		"linkCode": link.LinkCode,
	})
}

// CreateSampleChild seeds an illustrative student with a few attempts so
// a new parent account has something to look at.
func (cc *ChildrenController) CreateSampleChild(c *fiber.Ctx) error {
	parentID, err := utils.ExtractUserIDFromToken(c, cc.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	child := models.User{
		Email:       fmt.Sprintf("hijo%d@ejemplo.com", time.Now().UnixMilli()),
		FirstName:   "Ana",
		LastName:    "Ejemplo",
		Grade:       "5to Grado",
		Role:        "student",
		TotalPoints: 150,
		Level:       2,
		StreakDays:  3,
	}
	if err := cc.DB.Create(&child).Error; err != nil {
		return utils.InternalServerError(c, "Could not create sample child")
	}

	link := models.ParentChildLink{
		ParentID: parentID,
		ChildID:  child.ID,
		Status:   "active",
		LinkCode: newLinkCode(),
		LinkedAt: time.Now(),
	}
	if err := cc.DB.Create(&link).Error; err != nil {
		return utils.InternalServerError(c, "Could not create link")
	}

	samples := []struct {
		subject string
		topic   string
		score   int
	}{
		{"matematicas", "fracciones", 85},
		{"matematicas", "decimales", 92},
		{"ciencias", "sistema solar", 78},
	}
	now := time.Now()
	for _, s := range samples {
		attempt := models.QuizAttempt{
			UserID:       child.ID,
			SubjectID:    s.subject,
			TopicID:      s.topic,
			Score:        s.score,
			PointsEarned: s.score / 10,
			Completed:    s.score >= 70,
			CompletedAt:  now.Format(time.RFC3339),
		}
		if err := cc.DB.Create(&attempt).Error; err != nil {
			return utils.InternalServerError(c, "Could not seed sample progress")
		}
	}

	return c.JSON(fiber.Map{
		"message": "Sample child created",
		"childId": child.ID,
	})
}

// GetChildDashboard assembles the parent dashboard for one child. The
// three reads run concurrently and are joined before aggregation starts.
func (cc *ChildrenController) GetChildDashboard(c *fiber.Ctx) error {
	parentID, err := utils.ExtractUserIDFromToken(c, cc.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	childID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.BadRequest(c, "Invalid child ID")
	}

	var link models.ParentChildLink
	if err := cc.DB.Where("parent_id = ? AND child_id = ? AND status = 'active'", parentID, childID).
		First(&link).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.Forbidden(c, "Child is not linked to your account")
		}
		return utils.InternalServerError(c, "Could not query database")
	}

	var child models.User
	if err := cc.DB.First(&child, childID).Error; err != nil {
		return utils.NotFound(c, "Child not found")
	}

	now := time.Now()

	var (
		wg          sync.WaitGroup
		allAttempts []progress.Attempt
		weekAttempt []progress.Attempt
		badges      []models.Badge
		errAll      error
		errWeek     error
		errBadges   error
	)

	wg.Add(3)
	go func() {
		defer wg.Done()
		allAttempts, errAll = cc.fetchAttempts(uint(childID), 0, now)
	}()
	go func() {
		defer wg.Done()
		weekAttempt, errWeek = cc.fetchAttempts(uint(childID), 7, now)
	}()
	go func() {
		defer wg.Done()
		errBadges = cc.DB.Where("user_id = ?", childID).Find(&badges).Error
	}()
	wg.Wait()

	if errAll != nil || errWeek != nil || errBadges != nil {
		return utils.InternalServerError(c, "Could not load child data")
	}

	studyTime := progress.ComputeStudyTime(len(allAttempts), len(weekAttempt))

	badgeViews := make([]fiber.Map, 0, len(badges))
	for _, b := range badges {
		badgeViews = append(badgeViews, fiber.Map{
			"type":        b.Type,
			"name":        b.Name,
			"description": b.Description,
			"icon":        b.Icon,
			"earnedAt":    b.EarnedAt,
		})
	}

	return c.JSON(fiber.Map{
		"child": fiber.Map{
			"id":          child.ID,
			"firstName":   child.FirstName,
			"lastName":    child.LastName,
			"grade":       child.Grade,
			"totalPoints": child.TotalPoints,
			"level":       child.Level,
			"streakDays":  child.StreakDays,
		},
		"dailySeries":      progress.DailySeries(weekAttempt, now),
		"subjects":         progress.SubjectRollups(allAttempts, now),
		"recentActivities": progress.RecentActivities(allAttempts, 5, now),
		"badges":           badgeViews,
		"weeklyGoals":      progress.WeeklyGoals(len(weekAttempt), studyTime.WeekMinutes, len(badges)),
		"studyTime":        studyTime,
	})
}

// fetchAttempts loads a child's attempts newest first, optionally limited
// to a trailing N-day window. days=0 means all history.
func (cc *ChildrenController) fetchAttempts(childID uint, days int, now time.Time) ([]progress.Attempt, error) {
	var records []models.QuizAttempt
	if err := cc.DB.Where("user_id = ?", childID).Find(&records).Error; err != nil {
		return nil, err
	}

	attempts := make([]progress.Attempt, 0, len(records))
	for _, r := range records {
		attempts = append(attempts, progress.Attempt{
			SubjectID:   r.SubjectID,
			TopicID:     r.TopicID,
			Score:       r.Score,
			Completed:   r.Completed,
			CompletedAt: r.CompletedAt,
		})
	}

	attempts = progress.FilterWindow(attempts, days, now)
	progress.SortNewestFirst(attempts)
	return attempts, nil
}

func newLinkCode() string {
	return strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:6])
}
