package dto

import "time"

// CompleteLessonRequest carries the ordered answers of a finished quiz
// session, one selected answer per question.
type CompleteLessonRequest struct {
	Answers []string `json:"answers" binding:"required,min=1"`
}

// QuestionOutcome tells the student how one question was scored and
// reveals the stored explanation.
type QuestionOutcome struct {
	Position      int    `json:"position"`
	Correct       bool   `json:"correct"`
	CorrectAnswer string `json:"correctAnswer"`
	PointsEarned  int    `json:"pointsEarned"`
	Explanation   string `json:"explanation,omitempty"`
}

// LessonResult is the outcome of a completed lesson
type LessonResult struct {
	LessonID   int64             `json:"lessonId"`
	Score      int               `json:"score"`
	MaxScore   int               `json:"maxScore"`
	Percentage int               `json:"percentage"`
	Questions  []QuestionOutcome `json:"questions"`
}

// StartLessonResponse reports remaining quota after a lesson start
type StartLessonResponse struct {
	LessonID         int64 `json:"lessonId"`
	LessonsThisMonth int   `json:"lessonsThisMonth"`
	QuotaRemaining   *int  `json:"quotaRemaining,omitempty"` // nil for paid tiers
}

// ProgressOverview summarizes a student's progress
type ProgressOverview struct {
	LessonsCompleted int              `json:"lessonsCompleted"`
	TotalPoints      int              `json:"totalPoints"`
	Records          []ProgressEntry  `json:"records"`
}

// ProgressEntry is one progress record in a student's overview
type ProgressEntry struct {
	LessonID    int64     `json:"lessonId"`
	LessonTitle string    `json:"lessonTitle"`
	Score       int       `json:"score"`
	MaxScore    int       `json:"maxScore"`
	CompletedAt time.Time `json:"completedAt"`
}
