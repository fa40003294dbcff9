package models

// RoleType defines the user role type
type RoleType string

const (
	RoleStudent RoleType = "STUDENT"
	RoleTeacher RoleType = "TEACHER"
	RoleAdmin   RoleType = "ADMIN"
)

// Level represents a Spanish proficiency tier. The same values tag both
// question/lesson difficulty and a user's assigned level.
type Level string

const (
	LevelBeginner     Level = "beginner"
	LevelIntermediate Level = "intermediate"
	LevelAdvanced     Level = "advanced"
)

// IsValid reports whether the level is one of the known tiers.
func (l Level) IsValid() bool {
	switch l {
	case LevelBeginner, LevelIntermediate, LevelAdvanced:
		return true
	}
	return false
}

// SubscriptionTier defines a user's subscription plan
type SubscriptionTier string

const (
	TierFree     SubscriptionTier = "free"
	TierPro      SubscriptionTier = "pro"
	TierLifetime SubscriptionTier = "lifetime"
)

// IsPaid reports whether the tier grants unlimited lesson access.
func (t SubscriptionTier) IsPaid() bool {
	return t == TierPro || t == TierLifetime
}
