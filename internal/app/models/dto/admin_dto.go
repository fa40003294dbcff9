package dto

import (
	"time"

	"github.com/learnsmart/learnsmart/internal/app/models"
)

// AdminStats aggregates platform-wide counts for the admin dashboard
type AdminStats struct {
	TotalUsers       int64 `json:"totalUsers"`
	Students         int64 `json:"students"`
	Teachers         int64 `json:"teachers"`
	PaidSubscribers  int64 `json:"paidSubscribers"`
	Classes          int64 `json:"classes"`
	LessonsCompleted int64 `json:"lessonsCompleted"`
}

// AdminUserRow is one row of the admin user listing
type AdminUserRow struct {
	ID           int64                   `json:"id"`
	Email        string                  `json:"email"`
	FullName     string                  `json:"fullName"`
	RoleType     models.RoleType         `json:"roleType"`
	Subscription models.SubscriptionTier `json:"subscription"`
	CreatedAt    time.Time               `json:"createdAt"`
}

// UpdateRoleRequest changes a user's role
type UpdateRoleRequest struct {
	RoleType models.RoleType `json:"roleType" binding:"required,oneof=STUDENT TEACHER ADMIN"`
}

// LeaderboardRow is one entry of the leaderboard response
type LeaderboardRow struct {
	Rank     int    `json:"rank"`
	UserID   int64  `json:"userId"`
	FullName string `json:"fullName"`
	Score    int    `json:"score"`
}

// SubscriptionStatus reports the caller's plan and quota usage
type SubscriptionStatus struct {
	Tier             models.SubscriptionTier `json:"tier"`
	LessonsThisMonth int                     `json:"lessonsThisMonth"`
	MonthlyQuota     *int                    `json:"monthlyQuota,omitempty"` // nil for paid tiers
	QuotaRemaining   *int                    `json:"quotaRemaining,omitempty"`
}

// UpgradeRequest changes the caller's subscription tier
type UpgradeRequest struct {
	Tier models.SubscriptionTier `json:"tier" binding:"required,oneof=pro lifetime"`
}
