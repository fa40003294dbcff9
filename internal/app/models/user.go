package models

import (
	"time"
)

// User defines the user model based on the 'users' table
type User struct {
	ID               int64            `json:"id" db:"id" example:"1"`                                   // Unique identifier for the user
	Email            string           `json:"email" db:"email" example:"student@school.edu"`            // User's email address
	Password         string           `json:"-" db:"password"`                                          // User's hashed password (excluded from JSON)
	FullName         string           `json:"fullName" db:"full_name" example:"Ana García"`             // User's display name
	RoleType         RoleType         `json:"roleType" db:"role_type" example:"STUDENT"`                // User's role (STUDENT, TEACHER or ADMIN)
	SpanishLevel     Level            `json:"spanishLevel,omitempty" db:"spanish_level"`                // Assigned proficiency level, empty until placed
	Subscription     SubscriptionTier `json:"subscription" db:"subscription_tier" example:"free"`       // Subscription plan
	LessonsThisMonth int              `json:"lessonsThisMonth" db:"lessons_this_month" example:"3"`     // Lessons started in the current month
	IsActive         bool             `json:"isActive" db:"is_active" example:"true"`                   // Whether the user account is active
	CreatedAt        time.Time        `json:"createdAt" db:"created_at" example:"2024-01-01T10:00:00Z"` // Timestamp when the user was created
	UpdatedAt        time.Time        `json:"updatedAt" db:"updated_at" example:"2024-01-02T15:30:00Z"` // Timestamp when the user was last updated
	LastLoginAt      *time.Time       `json:"lastLoginAt,omitempty" db:"last_login_at"`                 // Timestamp of the last login (nullable)
}
