package controllers

import (
	"cerebritos/backend/generation"
	"cerebritos/backend/utils"

	"github.com/gofiber/fiber/v2"
)

type GenerationController struct {
	Service *generation.Service
}

func NewGenerationController(service *generation.Service) *GenerationController {
	return &GenerationController{Service: service}
}

// GenerateQuiz synthesizes a quiz for a topic. Model failures never reach
// the client: the static fallback set is returned with source "fallback".
func (gc *GenerationController) GenerateQuiz(c *fiber.Ctx) error {
	var input struct {
		TopicID       string `json:"topicId"`
		Difficulty    string `json:"difficulty"`
		QuestionCount int    `json:"questionCount"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	if input.TopicID == "" {
		return utils.BadRequest(c, "topicId is required")
	}
	if input.QuestionCount <= 0 {
		input.QuestionCount = 5
	}

	result, usedFallback := gc.Service.GenerateQuiz(c.Context(), input.TopicID, input.Difficulty, input.QuestionCount)

	response := fiber.Map{
		"success":   true,
		"title":     result.Title,
		"questions": result.Questions,
	}
	if usedFallback {
		response["source"] = "fallback"
	} else {
		response["quizId"] = result.QuizID
	}
	return c.JSON(response)
}

func (gc *GenerationController) GenerateFeedback(c *fiber.Ctx) error {
	var input struct {
		Subject      string   `json:"subject"`
		Score        int      `json:"score"`
		WrongAnswers []string `json:"wrongAnswers"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	if input.Subject == "" {
		return utils.BadRequest(c, "subject is required")
	}

	feedback, usedFallback := gc.Service.GenerateFeedback(c.Context(), input.Subject, input.Score, input.WrongAnswers)

	response := fiber.Map{
		"success":  true,
		"feedback": feedback,
	}
	if usedFallback {
		response["source"] = "fallback"
	}
	return c.JSON(response)
}

func (gc *GenerationController) AdaptDifficulty(c *fiber.Ctx) error {
	var input struct {
		LearnerID    string                    `json:"learnerId"`
		History      []generation.HistoryEntry `json:"history"`
		CurrentTopic string                    `json:"currentTopic"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	if input.LearnerID == "" {
		return utils.BadRequest(c, "learnerId is required")
	}

	recommendation, usedFallback := gc.Service.AdaptDifficulty(c.Context(), input.LearnerID, input.CurrentTopic, input.History)

	response := fiber.Map{
		"success":        true,
		"recommendation": recommendation,
	}
	if usedFallback {
		response["source"] = "fallback"
	}
	return c.JSON(response)
}
