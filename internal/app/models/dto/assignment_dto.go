package dto

import "time"

// CreateAssignmentRequest represents a teacher's request to assign a
// lesson to a class
type CreateAssignmentRequest struct {
	ClassID  int64      `json:"classId" binding:"required"`
	LessonID int64      `json:"lessonId" binding:"required"`
	Title    string     `json:"title" binding:"required,min=1,max=200"`
	DueDate  *time.Time `json:"dueDate"`
}

// GradeSubmissionRequest carries teacher feedback for a submission
type GradeSubmissionRequest struct {
	Feedback string `json:"feedback" binding:"required"`
}

// AssignmentResponse is an assignment as seen by teacher or student
type AssignmentResponse struct {
	ID          int64      `json:"id"`
	ClassID     int64      `json:"classId"`
	LessonID    int64      `json:"lessonId"`
	LessonTitle string     `json:"lessonTitle"`
	Title       string     `json:"title"`
	DueDate     *time.Time `json:"dueDate,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	// Submission state for the requesting student, absent for teachers
	Submission *SubmissionView `json:"submission,omitempty"`
}

// SubmissionView is one student's submission state
type SubmissionView struct {
	ID          int64      `json:"id"`
	StudentID   int64      `json:"studentId"`
	StudentName string     `json:"studentName,omitempty"`
	Completed   bool       `json:"completed"`
	Score       int        `json:"score"`
	Feedback    string     `json:"feedback,omitempty"`
	SubmittedAt *time.Time `json:"submittedAt,omitempty"`
	GradedAt    *time.Time `json:"gradedAt,omitempty"`
}

// AssignmentDetail is the teacher view of one assignment with all
// submissions of the class
type AssignmentDetail struct {
	AssignmentResponse
	Submissions []SubmissionView `json:"submissions"`
}
