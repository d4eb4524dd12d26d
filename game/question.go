// game/question.go
package game

import (
	"math/rand"
)

// Question is a trivia question with an authoritative numeric answer.
// Instances come from the fixed pool and are never mutated after creation.
type Question struct {
	ID         string `json:"id"`
	Text       string `json:"text"`
	Answer     int64  `json:"answer"`
	Category   string `json:"category,omitempty"`
	Difficulty int    `json:"difficulty,omitempty"` // 1-5
}

// QuestionPool is the fixed set of questions rounds draw from.
var QuestionPool = []Question{
	{ID: "q1", Text: "How many minutes are there in a day?", Answer: 1440, Category: "Time", Difficulty: 1},
	{ID: "q2", Text: "What is the boiling point of water in Kelvin?", Answer: 373, Category: "Science", Difficulty: 1},
	{ID: "q3", Text: "How many bones are in the adult human body?", Answer: 206, Category: "Biology", Difficulty: 2},
	{ID: "q4", Text: "What year did the Apollo 11 land on the moon?", Answer: 1969, Category: "History", Difficulty: 2},
	{ID: "q5", Text: "What is the average distance from Earth to the Moon in km?", Answer: 384400, Category: "Astronomy", Difficulty: 3},
}

func randomQuestion() Question {
	return QuestionPool[rand.Intn(len(QuestionPool))]
}
