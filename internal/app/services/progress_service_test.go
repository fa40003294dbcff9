package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/learnsmart/learnsmart/internal/app/models"
)

func quizQuestions() []models.Question {
	return []models.Question{
		{Position: 0, Prompt: "q1", Options: []string{"soy", "eres"}, CorrectAnswer: "soy", Points: 5, Explanation: "First person singular of ser"},
		{Position: 1, Prompt: "q2", Options: []string{"el libro", "la libro"}, CorrectAnswer: "el libro", Points: 5},
		{Position: 2, Prompt: "q3", Options: []string{"fui", "voy"}, CorrectAnswer: "fui", Points: 10},
	}
}

func TestScoreAnswers_AllCorrect(t *testing.T) {
	earned, outcomes := ScoreAnswers(quizQuestions(), []string{"soy", "el libro", "fui"})

	assert.Equal(t, 20, earned)
	assert.Len(t, outcomes, 3)
	for _, o := range outcomes {
		assert.True(t, o.Correct)
	}
	assert.Equal(t, 10, outcomes[2].PointsEarned)
}

func TestScoreAnswers_PartiallyCorrect(t *testing.T) {
	earned, outcomes := ScoreAnswers(quizQuestions(), []string{"soy", "la libro", "voy"})

	assert.Equal(t, 5, earned)
	assert.True(t, outcomes[0].Correct)
	assert.False(t, outcomes[1].Correct)
	assert.False(t, outcomes[2].Correct)
	assert.Equal(t, 0, outcomes[1].PointsEarned)
}

func TestScoreAnswers_ExactMatchOnly(t *testing.T) {
	// Scoring compares the raw strings, no trimming or case folding
	earned, outcomes := ScoreAnswers(quizQuestions(), []string{"Soy", " el libro", "fui"})

	assert.Equal(t, 10, earned)
	assert.False(t, outcomes[0].Correct)
	assert.False(t, outcomes[1].Correct)
	assert.True(t, outcomes[2].Correct)
}

func TestScoreAnswers_RevealsCorrectAnswerAndExplanation(t *testing.T) {
	_, outcomes := ScoreAnswers(quizQuestions(), []string{"eres", "el libro", "fui"})

	assert.Equal(t, "soy", outcomes[0].CorrectAnswer)
	assert.Equal(t, "First person singular of ser", outcomes[0].Explanation)
}

func TestScoreAnswers_ShortAnswerSheet(t *testing.T) {
	earned, outcomes := ScoreAnswers(quizQuestions(), []string{"soy"})

	assert.Equal(t, 5, earned)
	assert.Len(t, outcomes, 3)
	assert.False(t, outcomes[1].Correct)
	assert.False(t, outcomes[2].Correct)
}

func TestPercentage(t *testing.T) {
	assert.Equal(t, 100, Percentage(20, 20))
	assert.Equal(t, 50, Percentage(10, 20))
	assert.Equal(t, 0, Percentage(0, 20))
	// Rounds to nearest
	assert.Equal(t, 33, Percentage(1, 3))
	assert.Equal(t, 67, Percentage(2, 3))
}

func TestPercentage_NoObtainablePoints(t *testing.T) {
	assert.Equal(t, 0, Percentage(0, 0))
	assert.Equal(t, 0, Percentage(5, -1))
}
