package progress

import "time"

// Attempt is one completed-quiz record as consumed by the aggregator.
// CompletedAt carries the raw stored timestamp; records whose timestamp
// cannot be parsed are excluded from aggregation.
type Attempt struct {
	SubjectID   string
	TopicID     string
	Score       int // percentage, 0-100
	Completed   bool
	CompletedAt string // RFC3339
}

// SubjectRollup is the per-subject view computed fresh on every request.
type SubjectRollup struct {
	Subject        string         `json:"subject"`
	CompletionRate int            `json:"completionRate"`
	DistinctTopics int            `json:"distinctTopics"`
	TotalAttempts  int            `json:"totalAttempts"`
	AverageScore   string         `json:"averageScore"` // 0-10 scale, one decimal
	CorrectAnswers int            `json:"correctAnswers"`
	TotalQuestions int            `json:"totalQuestions"`
	TotalMinutes   int            `json:"totalMinutes"`
	LastActivity   string         `json:"lastActivity"`
	Topics         []TopicSummary `json:"topics"`
}

// TopicSummary holds the best-known result for a topic within a subject.
type TopicSummary struct {
	Name      string    `json:"name"`
	Completed bool      `json:"completed"`
	Score     int       `json:"score"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// DailyScore is one point of the 7-day chart series.
type DailyScore struct {
	Label string `json:"name"`
	Score int    `json:"score"`
}

type Activity struct {
	Title string `json:"activity"`
	Score string `json:"score"`
	Time  string `json:"time"`
}

type WeeklyGoal struct {
	Name      string `json:"name"`
	Current   int    `json:"current"`
	Target    int    `json:"target"`
	Completed bool   `json:"completed"`
}

type StudyTime struct {
	TotalMinutes int `json:"total"`
	WeekMinutes  int `json:"thisWeek"`
}
