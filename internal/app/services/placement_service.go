package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/learnsmart/learnsmart/internal/app/models"
	"github.com/learnsmart/learnsmart/internal/app/models/dto"
	"github.com/learnsmart/learnsmart/internal/app/repositories"
	"github.com/learnsmart/learnsmart/internal/pkg/apperrors"
)

// PlacementTally counts correct answers per difficulty tier
type PlacementTally struct {
	Beginner     int
	Intermediate int
	Advanced     int
}

// PlacementService defines the interface for placement test operations
type PlacementService interface {
	GetQuestions(ctx context.Context) ([]dto.PlacementQuestionView, error)
	Submit(ctx context.Context, userID int64, req *dto.SubmitPlacementRequest) (*dto.PlacementResult, error)
}

// placementServiceImpl implements the PlacementService interface
type placementServiceImpl struct {
	placementRepo *repositories.PlacementRepository
	userRepo      *repositories.UserRepository
	logger        zerolog.Logger
}

// NewPlacementService creates a new placement service instance
func NewPlacementService(
	placementRepo *repositories.PlacementRepository,
	userRepo *repositories.UserRepository,
	logger zerolog.Logger,
) PlacementService {
	return &placementServiceImpl{
		placementRepo: placementRepo,
		userRepo:      userRepo,
		logger:        logger,
	}
}

// GetQuestions returns the placement bank in presentation order, with
// the correct options withheld.
func (s *placementServiceImpl) GetQuestions(ctx context.Context) ([]dto.PlacementQuestionView, error) {
	bank, err := s.placementRepo.GetBank(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]dto.PlacementQuestionView, 0, len(bank))
	for _, q := range bank {
		views = append(views, dto.PlacementQuestionView{
			Position: q.Position,
			Prompt:   q.Prompt,
			Options:  q.Options,
		})
	}

	return views, nil
}

// Submit scores the submitted answers against the bank and assigns the
// resulting level to the user. A failed level save does not fail the
// submission; the result carries Saved=false so the client can retry.
func (s *placementServiceImpl) Submit(ctx context.Context, userID int64, req *dto.SubmitPlacementRequest) (*dto.PlacementResult, error) {
	bank, err := s.placementRepo.GetBank(ctx)
	if err != nil {
		return nil, err
	}
	if len(bank) == 0 {
		return nil, fmt.Errorf("placement bank is empty")
	}
	if len(req.Answers) != len(bank) {
		return nil, apperrors.ErrAnswerCountWrong
	}

	level, tally := EvaluatePlacement(bank, req.Answers)

	result := &dto.PlacementResult{
		Level:               string(level),
		BeginnerCorrect:     tally.Beginner,
		IntermediateCorrect: tally.Intermediate,
		AdvancedCorrect:     tally.Advanced,
		Saved:               true,
	}

	if err := s.userRepo.UpdateSpanishLevel(ctx, userID, level); err != nil {
		s.logger.Warn().Err(err).Int64("userID", userID).Str("level", string(level)).
			Msg("Could not save placement level")
		result.Saved = false
	}

	return result, nil
}

// EvaluatePlacement tallies correct answers per tier and derives the
// level. Everyone starts at beginner; at least two correct beginner and
// two correct intermediate answers promote to intermediate, and two
// correct intermediate and two correct advanced answers promote to
// advanced. An out-of-range answer index counts as wrong.
func EvaluatePlacement(bank []models.PlacementQuestion, answers []int) (models.Level, PlacementTally) {
	var tally PlacementTally
	for i, q := range bank {
		if i >= len(answers) {
			break
		}
		if answers[i] != q.CorrectOption {
			continue
		}
		switch q.Level {
		case models.LevelBeginner:
			tally.Beginner++
		case models.LevelIntermediate:
			tally.Intermediate++
		case models.LevelAdvanced:
			tally.Advanced++
		}
	}

	level := models.LevelBeginner
	if tally.Beginner >= 2 && tally.Intermediate >= 2 {
		level = models.LevelIntermediate
	}
	if tally.Intermediate >= 2 && tally.Advanced >= 2 {
		level = models.LevelAdvanced
	}

	return level, tally
}
