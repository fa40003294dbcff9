package models

import "time"

// Lesson defines a lesson based on the 'lessons' table
type Lesson struct {
	ID        int64      `json:"id" db:"id"`
	Title     string     `json:"title" db:"title"`
	Level     Level      `json:"level" db:"level"`
	Subject   string     `json:"subject" db:"subject"`
	CreatedBy *int64     `json:"createdBy,omitempty" db:"created_by"` // NULL for seeded default content
	IsDefault bool       `json:"isDefault" db:"is_default"`
	CreatedAt time.Time  `json:"createdAt" db:"created_at"`
	Questions []Question `json:"questions,omitempty"` // Relation, ordered by position
}

// Question defines one multiple-choice question of a lesson
type Question struct {
	ID            int64    `json:"id" db:"id"`
	LessonID      int64    `json:"lessonId" db:"lesson_id"`
	Position      int      `json:"position" db:"position"`
	Prompt        string   `json:"prompt" db:"prompt"`
	Options       []string `json:"options" db:"options"`
	CorrectAnswer string   `json:"correctAnswer,omitempty" db:"correct_answer"`
	Points        int      `json:"points" db:"points"`
	Explanation   string   `json:"explanation,omitempty" db:"explanation"`
}

// MaxScore returns the sum of the lesson's question points.
func (l *Lesson) MaxScore() int {
	total := 0
	for _, q := range l.Questions {
		total += q.Points
	}
	return total
}

// PlacementQuestion is one entry of the fixed placement bank, stored in
// the 'placement_questions' table. CorrectOption is an index into Options.
type PlacementQuestion struct {
	ID            int64    `json:"id" db:"id"`
	Position      int      `json:"position" db:"position"`
	Prompt        string   `json:"prompt" db:"prompt"`
	Options       []string `json:"options" db:"options"`
	CorrectOption int      `json:"-" db:"correct_option"`
	Level         Level    `json:"-" db:"level"`
}
