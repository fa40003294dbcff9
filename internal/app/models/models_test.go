package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevelIsValid(t *testing.T) {
	assert.True(t, LevelBeginner.IsValid())
	assert.True(t, LevelIntermediate.IsValid())
	assert.True(t, LevelAdvanced.IsValid())

	assert.False(t, Level("").IsValid())
	assert.False(t, Level("expert").IsValid())
	assert.False(t, Level("Beginner").IsValid())
}

func TestSubscriptionTierIsPaid(t *testing.T) {
	assert.False(t, TierFree.IsPaid())
	assert.True(t, TierPro.IsPaid())
	assert.True(t, TierLifetime.IsPaid())
	assert.False(t, SubscriptionTier("trial").IsPaid())
}

func TestLessonMaxScore(t *testing.T) {
	lesson := &Lesson{
		Questions: []Question{
			{Points: 5},
			{Points: 5},
			{Points: 10},
		},
	}
	assert.Equal(t, 20, lesson.MaxScore())

	empty := &Lesson{}
	assert.Equal(t, 0, empty.MaxScore())
}
