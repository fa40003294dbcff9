package models

import "time"

// Class defines a teacher's class based on the 'classes' table.
// The join code is issued once at creation and never changes.
type Class struct {
	ID        int64     `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Code      string    `json:"code" db:"code"`           // 6-char alphanumeric join code, uppercase
	TeacherID int64     `json:"teacherId" db:"teacher_id"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	Teacher   *User     `json:"teacher,omitempty"` // Relation, no db tag
}

// ClassMembership links a student to a class, unique per (class, student)
type ClassMembership struct {
	ID        int64     `json:"id" db:"id"`
	ClassID   int64     `json:"classId" db:"class_id"`
	StudentID int64     `json:"studentId" db:"student_id"`
	JoinedAt  time.Time `json:"joinedAt" db:"joined_at"`
	Student   *User     `json:"student,omitempty"` // Relation, no db tag
}
