package models

import "time"

// ProgressRecord is the persisted outcome of one student's attempt at one
// lesson, unique per (student, lesson). A repeated attempt overwrites the
// previous record. Score never exceeds MaxScore.
type ProgressRecord struct {
	ID          int64     `json:"id" db:"id"`
	StudentID   int64     `json:"studentId" db:"student_id"`
	LessonID    int64     `json:"lessonId" db:"lesson_id"`
	Completed   bool      `json:"completed" db:"completed"`
	Score       int       `json:"score" db:"score"`
	MaxScore    int       `json:"maxScore" db:"max_score"`
	CompletedAt time.Time `json:"completedAt" db:"completed_at"`
	Lesson      *Lesson   `json:"lesson,omitempty"` // Relation, no db tag
}

// LeaderboardEntry is one row of the 'leaderboard' table, keyed by user
type LeaderboardEntry struct {
	UserID   int64  `json:"userId" db:"user_id"`
	Score    int    `json:"score" db:"score"`
	FullName string `json:"fullName"` // joined from users, no db column here
}
