package models

import "time"

// Assignment defines a teacher-issued assignment based on the
// 'assignments' table. It ties one lesson to one class.
type Assignment struct {
	ID        int64      `json:"id" db:"id"`
	ClassID   int64      `json:"classId" db:"class_id"`
	LessonID  int64      `json:"lessonId" db:"lesson_id"`
	Title     string     `json:"title" db:"title"`
	DueDate   *time.Time `json:"dueDate,omitempty" db:"due_date"`
	CreatedAt time.Time  `json:"createdAt" db:"created_at"`
	Lesson    *Lesson    `json:"lesson,omitempty"` // Relation, no db tag
}

// AssignmentSubmission is one student's graded attempt at an assignment,
// unique per (assignment, student)
type AssignmentSubmission struct {
	ID           int64      `json:"id" db:"id"`
	AssignmentID int64      `json:"assignmentId" db:"assignment_id"`
	StudentID    int64      `json:"studentId" db:"student_id"`
	Completed    bool       `json:"completed" db:"completed"`
	Score        int        `json:"score" db:"score"` // rounded percentage, 0-100
	Feedback     string     `json:"feedback,omitempty" db:"feedback"`
	SubmittedAt  *time.Time `json:"submittedAt,omitempty" db:"submitted_at"`
	GradedAt     *time.Time `json:"gradedAt,omitempty" db:"graded_at"`
	Student      *User      `json:"student,omitempty"` // Relation, no db tag
}
