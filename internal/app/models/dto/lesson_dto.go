package dto

import (
	"time"

	"github.com/learnsmart/learnsmart/internal/app/models"
)

// CreateQuestionRequest is one question of a lesson create request
type CreateQuestionRequest struct {
	Prompt        string   `json:"prompt" binding:"required"`
	Options       []string `json:"options" binding:"required,min=2"`
	CorrectAnswer string   `json:"correctAnswer" binding:"required"`
	Points        int      `json:"points" binding:"required,min=1"`
	Explanation   string   `json:"explanation"`
}

// CreateLessonRequest represents a teacher's request to create a lesson
// together with its ordered questions
type CreateLessonRequest struct {
	Title     string                  `json:"title" binding:"required,min=1,max=200"`
	Level     models.Level            `json:"level" binding:"required,oneof=beginner intermediate advanced"`
	Subject   string                  `json:"subject"`
	Questions []CreateQuestionRequest `json:"questions" binding:"required,min=1,dive"`
}

// LessonSummary is the list view of a lesson
type LessonSummary struct {
	ID            int64        `json:"id"`
	Title         string       `json:"title"`
	Level         models.Level `json:"level"`
	Subject       string       `json:"subject"`
	IsDefault     bool         `json:"isDefault"`
	QuestionCount int          `json:"questionCount"`
	MaxScore      int          `json:"maxScore"`
	CreatedAt     time.Time    `json:"createdAt"`
}

// QuestionView is a question as shown to a student taking the lesson.
// Correct answer and explanation stay hidden until the answer is scored.
type QuestionView struct {
	ID       int64    `json:"id"`
	Position int      `json:"position"`
	Prompt   string   `json:"prompt"`
	Options  []string `json:"options"`
	Points   int      `json:"points"`
}

// LessonDetail is the taking view of a lesson
type LessonDetail struct {
	ID        int64          `json:"id"`
	Title     string         `json:"title"`
	Level     models.Level   `json:"level"`
	Subject   string         `json:"subject"`
	MaxScore  int            `json:"maxScore"`
	Questions []QuestionView `json:"questions"`
}
