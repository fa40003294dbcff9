package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/learnsmart/learnsmart/internal/app/models"
)

func TestCanStartLesson_FreeTier(t *testing.T) {
	assert.True(t, CanStartLesson(models.TierFree, 0))
	assert.True(t, CanStartLesson(models.TierFree, MonthlyFreeQuota-1))
	assert.False(t, CanStartLesson(models.TierFree, MonthlyFreeQuota))
	assert.False(t, CanStartLesson(models.TierFree, MonthlyFreeQuota+3))
}

func TestCanStartLesson_PaidTiersAreUnlimited(t *testing.T) {
	assert.True(t, CanStartLesson(models.TierPro, 1000))
	assert.True(t, CanStartLesson(models.TierLifetime, 1000))
}
