package service

import (
	"strings"
)

// DefaultChatAnswer is returned when no topic matches
const DefaultChatAnswer = "This is a complex legal question. Please consult a qualified attorney for detailed advice."

// chatTopics are checked in order; the first topic contained in the question wins
var chatTopics = []struct {
	topic  string
	answer string
}{
	{"contract", "Contracts require offer, acceptance, and consideration. Always review key terms carefully."},
	{"privacy", "Privacy laws protect you from unlawful searches and require data protection measures."},
	{"trial", "A fair trial ensures due process, the right to counsel, and an impartial jury."},
}

// AnswerQuestion returns a canned answer for a legal question
func AnswerQuestion(question string) string {
	q := strings.ToLower(question)
	for _, t := range chatTopics {
		if strings.Contains(q, t.topic) {
			return t.answer
		}
	}
	return DefaultChatAnswer
}
