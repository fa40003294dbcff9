package dto

import "time"

// CreateClassRequest represents a teacher's request to create a class
type CreateClassRequest struct {
	Name string `json:"name" binding:"required,min=1,max=100"`
}

// JoinClassRequest represents a student's request to join a class by code
type JoinClassRequest struct {
	Code string `json:"code" binding:"required"`
}

// ClassSummary is the compact class view embedded in other responses
type ClassSummary struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Code string `json:"code"`
}

// ClassResponse is the full class view for its owning teacher
type ClassResponse struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Code         string    `json:"code"`
	TeacherID    int64     `json:"teacherId"`
	StudentCount int       `json:"studentCount"`
	CreatedAt    time.Time `json:"createdAt"`
}

// RosterEntry is one student row of a class roster
type RosterEntry struct {
	StudentID int64     `json:"studentId"`
	FullName  string    `json:"fullName"`
	Email     string    `json:"email"`
	Level     string    `json:"level,omitempty"`
	JoinedAt  time.Time `json:"joinedAt"`
}
