package generation

import (
	"encoding/json"
	"fmt"
	"strings"
)

const quizSystem = "Eres un asistente educativo especializado en crear cuestionarios para estudiantes de primaria y secundaria. Responde siempre en formato JSON válido."

const feedbackSystem = "Eres un tutor educativo especializado en dar retroalimentación constructiva a estudiantes."

const adaptationSystem = "Eres un sistema de aprendizaje adaptativo que analiza el progreso del estudiante."

func quizPrompt(topic, difficulty string, count int) string {
	return fmt.Sprintf(`
Crea un cuestionario de %d preguntas sobre el tema "%s" con las siguientes características:

- Tema: %s
- Dificultad: %s
- Nivel educativo: Primaria/Secundaria
- Tipos de preguntas: opción múltiple y verdadero/falso

Genera preguntas variadas y apropiadas para estudiantes. Cada pregunta debe tener:
- Una pregunta clara y educativa
- 4 opciones de respuesta para opción múltiple
- La respuesta correcta claramente identificada
- Una explicación educativa de por qué es correcta

Responde ÚNICAMENTE con un JSON válido en este formato:
{
  "questions": [
    {
      "id": "1",
      "type": "opcion_multiple",
      "question": "¿Cuál es...?",
      "options": ["A", "B", "C", "D"],
      "correct": 1,
      "explanation": "Explicación clara y educativa",
      "points": 10,
      "difficulty": 5
    }
  ]
}
`, count, topic, topic, difficulty)
}

func feedbackPrompt(subject string, score int, wrongAnswers []string) string {
	return fmt.Sprintf(`
Genera retroalimentación educativa personalizada para un estudiante que completó un cuestionario de %s.

Puntaje obtenido: %d%%
Respuestas incorrectas: %s

Proporciona:
1. Un mensaje motivacional apropiado para el puntaje
2. Explicación breve de los conceptos que necesita reforzar
3. Sugerencia del próximo tema a estudiar
4. Consejo de estudio específico

Responde en formato JSON:
{
  "message": "mensaje motivacional",
  "reinforceConcepts": ["concepto1", "concepto2"],
  "nextTopic": "nombre del tema",
  "studyTip": "consejo específico"
}
`, subject, score, strings.Join(wrongAnswers, ", "))
}

func adaptationPrompt(currentTopic string, history []HistoryEntry) string {
	historyJSON, _ := json.Marshal(history)

	return fmt.Sprintf(`
Analiza el historial de respuestas de un estudiante y recomienda el nivel de dificultad para el próximo cuestionario.

Tema actual: %s
Historial reciente: %s

Basándote en el patrón de respuestas, recomienda:
1. Nivel de dificultad (facil, medio, dificil)
2. Tipo de preguntas a enfatizar
3. Conceptos específicos a reforzar

Responde en JSON:
{
  "recommendedDifficulty": "medio",
  "questionTypes": ["opcion_multiple", "verdadero_falso"],
  "focusConcepts": ["concepto1", "concepto2"],
  "reasoning": "explicación de la recomendación"
}
`, currentTopic, historyJSON)
}
