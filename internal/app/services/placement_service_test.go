package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/learnsmart/learnsmart/internal/app/models"
)

// testBank mirrors the shape of the seeded placement test: three beginner,
// three intermediate and four advanced questions, correct option always 0.
func testBank() []models.PlacementQuestion {
	levels := []models.Level{
		models.LevelBeginner, models.LevelBeginner, models.LevelBeginner,
		models.LevelIntermediate, models.LevelIntermediate, models.LevelIntermediate,
		models.LevelAdvanced, models.LevelAdvanced, models.LevelAdvanced, models.LevelAdvanced,
	}
	bank := make([]models.PlacementQuestion, len(levels))
	for i, lvl := range levels {
		bank[i] = models.PlacementQuestion{
			Position:      i,
			Prompt:        "q",
			Options:       []string{"a", "b", "c", "d"},
			CorrectOption: 0,
			Level:         lvl,
		}
	}
	return bank
}

// answersFor builds an answer sheet that gets the first beginner, the first
// intermediate and the first advanced questions right in that order.
func answersFor(beginner, intermediate, advanced int) []int {
	answers := make([]int, 10)
	for i := range answers {
		answers[i] = 1 // wrong
	}
	for i := 0; i < beginner && i < 3; i++ {
		answers[i] = 0
	}
	for i := 0; i < intermediate && i < 3; i++ {
		answers[3+i] = 0
	}
	for i := 0; i < advanced && i < 4; i++ {
		answers[6+i] = 0
	}
	return answers
}

func TestEvaluatePlacement_AllWrong(t *testing.T) {
	level, tally := EvaluatePlacement(testBank(), answersFor(0, 0, 0))

	assert.Equal(t, models.LevelBeginner, level)
	assert.Equal(t, PlacementTally{}, tally)
}

func TestEvaluatePlacement_BeginnerOnly(t *testing.T) {
	level, tally := EvaluatePlacement(testBank(), answersFor(3, 1, 0))

	assert.Equal(t, models.LevelBeginner, level)
	assert.Equal(t, 3, tally.Beginner)
	assert.Equal(t, 1, tally.Intermediate)
}

func TestEvaluatePlacement_Intermediate(t *testing.T) {
	level, tally := EvaluatePlacement(testBank(), answersFor(2, 2, 1))

	assert.Equal(t, models.LevelIntermediate, level)
	assert.Equal(t, PlacementTally{Beginner: 2, Intermediate: 2, Advanced: 1}, tally)
}

func TestEvaluatePlacement_Advanced(t *testing.T) {
	level, _ := EvaluatePlacement(testBank(), answersFor(3, 3, 4))

	assert.Equal(t, models.LevelAdvanced, level)
}

func TestEvaluatePlacement_AdvancedWithoutBeginner(t *testing.T) {
	// The advanced rule only looks at the intermediate and advanced
	// tallies, so weak beginner answers do not hold a student back.
	level, tally := EvaluatePlacement(testBank(), answersFor(0, 2, 2))

	assert.Equal(t, models.LevelAdvanced, level)
	assert.Equal(t, 0, tally.Beginner)
}

func TestEvaluatePlacement_ShortAnswerSheet(t *testing.T) {
	// Unanswered questions count as wrong
	level, tally := EvaluatePlacement(testBank(), []int{0, 0, 0})

	assert.Equal(t, models.LevelBeginner, level)
	assert.Equal(t, PlacementTally{Beginner: 3}, tally)
}

func TestEvaluatePlacement_OutOfRangeAnswer(t *testing.T) {
	answers := answersFor(3, 3, 4)
	answers[6] = 99

	level, tally := EvaluatePlacement(testBank(), answers)

	assert.Equal(t, models.LevelAdvanced, level)
	assert.Equal(t, 3, tally.Advanced)
}
