package generation

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"cerebritos/backend/models"

	"gorm.io/gorm"
)

// Service generates quiz content through the language model and falls
// back to static content on any model failure. The fallback replaces
// retries: callers always get a usable result.
type Service struct {
	Provider Provider
	DB       *gorm.DB
	Logger   *log.Logger
}

func NewService(provider Provider, db *gorm.DB, logger *log.Logger) *Service {
	return &Service{Provider: provider, DB: db, Logger: logger}
}

// GenerateQuiz builds a quiz for the topic. The bool reports whether the
// static fallback served the request.
func (s *Service) GenerateQuiz(ctx context.Context, topicID, difficulty string, count int) (QuizResult, bool) {
	topicName := s.topicName(topicID)

	return orFallback(ctx,
		func(ctx context.Context) (QuizResult, error) {
			result, err := s.generateQuizModel(ctx, topicID, topicName, difficulty, count)
			if err != nil {
				s.Logger.Printf("quiz generation failed, serving fallback: %v", err)
			}
			return result, err
		},
		func() QuizResult {
			return QuizResult{
				Title:     "Cuestionario de " + topicName,
				Questions: FallbackQuiz(topicName, count),
			}
		},
	)
}

func (s *Service) generateQuizModel(ctx context.Context, topicID, topicName, difficulty string, count int) (QuizResult, error) {
	prompt := quizPrompt(topicName, difficulty, count)

	raw, err := s.Provider.Complete(ctx, Request{
		System:      quizSystem,
		Prompt:      prompt,
		Temperature: 0.7,
		MaxTokens:   2000,
	})
	if err != nil {
		return QuizResult{}, err
	}

	var payload quizPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return QuizResult{}, fmt.Errorf("decode quiz payload: %w", err)
	}
	if len(payload.Questions) == 0 {
		return QuizResult{}, errors.New("model returned no questions")
	}

	quiz := models.Quiz{
		TopicID:        topicID,
		Title:          "Cuestionario de " + topicName,
		Difficulty:     difficulty,
		TotalQuestions: len(payload.Questions),
		TimeLimit:      300,
		GeneratedBy:    "ia",
		Prompt:         prompt,
		Active:         true,
	}
	for i, q := range payload.Questions {
		points := q.Points
		if points == 0 {
			points = 10
		}
		quiz.TotalPoints += points

		options, err := json.Marshal(q.Options)
		if err != nil {
			return QuizResult{}, fmt.Errorf("encode options: %w", err)
		}

		quiz.Questions = append(quiz.Questions, models.QuizQuestion{
			Type:          q.Type,
			Question:      q.Question,
			Options:       string(options),
			CorrectAnswer: q.Correct,
			Explanation:   q.Explanation,
			Points:        points,
			Difficulty:    q.Difficulty,
			SequenceOrder: i + 1,
		})
	}

	if err := s.DB.Create(&quiz).Error; err != nil {
		return QuizResult{}, fmt.Errorf("persist quiz: %w", err)
	}

	return QuizResult{
		QuizID:    quiz.ID,
		Title:     quiz.Title,
		Questions: payload.Questions,
	}, nil
}

// GenerateFeedback produces post-quiz feedback for a student.
func (s *Service) GenerateFeedback(ctx context.Context, subject string, score int, wrongAnswers []string) (Feedback, bool) {
	return orFallback(ctx,
		func(ctx context.Context) (Feedback, error) {
			raw, err := s.Provider.Complete(ctx, Request{
				System:      feedbackSystem,
				Prompt:      feedbackPrompt(subject, score, wrongAnswers),
				Temperature: 0.8,
				MaxTokens:   500,
			})
			if err != nil {
				s.Logger.Printf("feedback generation failed, serving fallback: %v", err)
				return Feedback{}, err
			}

			var feedback Feedback
			if err := json.Unmarshal(raw, &feedback); err != nil {
				s.Logger.Printf("feedback generation failed, serving fallback: %v", err)
				return Feedback{}, fmt.Errorf("decode feedback: %w", err)
			}
			return feedback, nil
		},
		func() Feedback {
			return FallbackFeedback(score, subject)
		},
	)
}

// AdaptDifficulty recommends the next quiz difficulty from recent history
// and records the recommendation for the student.
func (s *Service) AdaptDifficulty(ctx context.Context, learnerID, currentTopic string, history []HistoryEntry) (Recommendation, bool) {
	return orFallback(ctx,
		func(ctx context.Context) (Recommendation, error) {
			recommendation, err := s.adaptModel(ctx, learnerID, currentTopic, history)
			if err != nil {
				s.Logger.Printf("difficulty adaptation failed, serving fallback: %v", err)
			}
			return recommendation, err
		},
		func() Recommendation {
			return FallbackAdaptation(history)
		},
	)
}

func (s *Service) adaptModel(ctx context.Context, learnerID, currentTopic string, history []HistoryEntry) (Recommendation, error) {
	raw, err := s.Provider.Complete(ctx, Request{
		System:      adaptationSystem,
		Prompt:      adaptationPrompt(currentTopic, history),
		Temperature: 0.3,
		MaxTokens:   400,
	})
	if err != nil {
		return Recommendation{}, err
	}

	var recommendation Recommendation
	if err := json.Unmarshal(raw, &recommendation); err != nil {
		return Recommendation{}, fmt.Errorf("decode recommendation: %w", err)
	}

	encoded, err := json.Marshal(recommendation)
	if err != nil {
		return Recommendation{}, fmt.Errorf("encode recommendation: %w", err)
	}

	var profile models.AdaptiveProfile
	if err := s.DB.Where("user_id = ?", learnerID).First(&profile).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return Recommendation{}, fmt.Errorf("load adaptive profile: %w", err)
		}
		profile = models.AdaptiveProfile{UserID: learnerID, Recommendation: string(encoded)}
		if err := s.DB.Create(&profile).Error; err != nil {
			return Recommendation{}, fmt.Errorf("persist adaptive profile: %w", err)
		}
		return recommendation, nil
	}

	profile.Recommendation = string(encoded)
	if err := s.DB.Save(&profile).Error; err != nil {
		return Recommendation{}, fmt.Errorf("persist adaptive profile: %w", err)
	}
	return recommendation, nil
}

func (s *Service) topicName(topicID string) string {
	var topic models.Topic
	if err := s.DB.Where("slug = ?", topicID).First(&topic).Error; err != nil {
		return topicID
	}
	if topic.Name == "" {
		return topicID
	}
	return topic.Name
}
