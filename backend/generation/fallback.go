package generation

import "fmt"

// Pre-authored question sets served when the model call fails, keyed by
// topic display name. Unrecognized topics get the Fracciones set.
var fallbackQuestions = map[string][]Question{
	"Fracciones": {
		{
			ID:          "1",
			Type:        "opcion_multiple",
			Question:    "¿Cuál es el resultado de 1/2 + 1/4?",
			Options:     []string{"1/6", "3/4", "2/6", "1/3"},
			Correct:     1,
			Explanation: "Para sumar fracciones, necesitamos el mismo denominador. 1/2 = 2/4, entonces 2/4 + 1/4 = 3/4",
			Points:      10,
			Difficulty:  5,
		},
	},
	"Decimales": {
		{
			ID:          "1",
			Type:        "opcion_multiple",
			Question:    "¿Cuál es el resultado de 0.5 + 0.25?",
			Options:     []string{"0.30", "0.75", "0.55", "1.25"},
			Correct:     1,
			Explanation: "Al sumar decimales, alineamos los puntos decimales: 0.5 + 0.25 = 0.75",
			Points:      10,
			Difficulty:  4,
		},
	},
	"Sistema Solar": {
		{
			ID:          "1",
			Type:        "opcion_multiple",
			Question:    "¿Cuál es el planeta más cercano al Sol?",
			Options:     []string{"Venus", "Mercurio", "Tierra", "Marte"},
			Correct:     1,
			Explanation: "Mercurio es el planeta más cercano al Sol, a una distancia promedio de 58 millones de kilómetros",
			Points:      10,
			Difficulty:  3,
		},
	},
}

const defaultFallbackTopic = "Fracciones"

// FallbackQuiz returns the static question set for a topic, sliced to the
// requested count.
func FallbackQuiz(topicName string, count int) []Question {
	questions, ok := fallbackQuestions[topicName]
	if !ok {
		questions = fallbackQuestions[defaultFallbackTopic]
	}

	if count > 0 && count < len(questions) {
		questions = questions[:count]
	}
	return questions
}

// FallbackFeedback produces canned feedback with a two-tier split at 80%.
func FallbackFeedback(score int, subject string) Feedback {
	if score >= 80 {
		return Feedback{
			Message:           fmt.Sprintf("¡Excelente trabajo en %s! Dominas muy bien este tema.", subject),
			ReinforceConcepts: []string{},
			NextTopic:         "Siguiente nivel",
			StudyTip:          "Continúa practicando para mantener tu nivel.",
		}
	}

	return Feedback{
		Message:           fmt.Sprintf("Buen intento en %s. Con un poco más de práctica lo dominarás.", subject),
		ReinforceConcepts: []string{"Conceptos básicos", "Ejercicios de práctica"},
		NextTopic:         "Repaso de fundamentos",
		StudyTip:          "Dedica 15 minutos diarios a repasar los conceptos básicos.",
	}
}

// FallbackAdaptation buckets the mean recent accuracy at 60% and 80%.
// An empty history counts as needing the easiest tier.
func FallbackAdaptation(history []HistoryEntry) Recommendation {
	var mean float64
	if len(history) > 0 {
		sum := 0
		for _, h := range history {
			sum += h.Percentage
		}
		mean = float64(sum) / float64(len(history))
	}

	switch {
	case len(history) > 0 && mean >= 80:
		return Recommendation{
			Difficulty:    "dificil",
			QuestionTypes: []string{"opcion_multiple", "completar"},
			FocusConcepts: []string{"Conceptos avanzados"},
			Reasoning:     "El estudiante muestra dominio, puede avanzar a mayor dificultad.",
		}
	case len(history) > 0 && mean >= 60:
		return Recommendation{
			Difficulty:    "medio",
			QuestionTypes: []string{"opcion_multiple", "verdadero_falso"},
			FocusConcepts: []string{"Refuerzo de conceptos"},
			Reasoning:     "Mantener nivel actual con refuerzo en áreas específicas.",
		}
	default:
		return Recommendation{
			Difficulty:    "facil",
			QuestionTypes: []string{"verdadero_falso", "opcion_multiple"},
			FocusConcepts: []string{"Conceptos fundamentales"},
			Reasoning:     "Necesita reforzar conceptos básicos antes de avanzar.",
		}
	}
}
