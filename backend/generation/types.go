package generation

// Question is one generated quiz question.
type Question struct {
	ID          string   `json:"id"`
	Type        string   `json:"type"` // opcion_multiple, verdadero_falso
	Question    string   `json:"question"`
	Options     []string `json:"options"`
	Correct     int      `json:"correct"`
	Explanation string   `json:"explanation"`
	Points      int      `json:"points"`
	Difficulty  int      `json:"difficulty"`
}

type quizPayload struct {
	Questions []Question `json:"questions"`
}

// QuizResult is the outcome of a quiz generation request. QuizID is zero
// when the static fallback served the request (fallback sets are not
// persisted).
type QuizResult struct {
	QuizID    uint       `json:"quizId,omitempty"`
	Title     string     `json:"title"`
	Questions []Question `json:"questions"`
}

// Feedback is personalized post-quiz feedback for a student.
type Feedback struct {
	Message           string   `json:"message"`
	ReinforceConcepts []string `json:"reinforceConcepts"`
	NextTopic         string   `json:"nextTopic"`
	StudyTip          string   `json:"studyTip"`
}

// Recommendation is a difficulty adaptation for the next quiz.
type Recommendation struct {
	Difficulty    string   `json:"recommendedDifficulty"` // facil, medio, dificil
	QuestionTypes []string `json:"questionTypes"`
	FocusConcepts []string `json:"focusConcepts"`
	Reasoning     string   `json:"reasoning"`
}

// HistoryEntry is one recent quiz result used for adaptation.
type HistoryEntry struct {
	Topic      string `json:"topic"`
	Percentage int    `json:"percentage"`
}
