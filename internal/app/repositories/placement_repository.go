package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/learnsmart/learnsmart/internal/app/models"
)

// PlacementRepository reads the fixed placement question bank
type PlacementRepository struct {
	db *pgxpool.Pool
}

// NewPlacementRepository creates a new PlacementRepository
func NewPlacementRepository(db *pgxpool.Pool) *PlacementRepository {
	return &PlacementRepository{db: db}
}

// GetBank returns the placement questions in presentation order
func (r *PlacementRepository) GetBank(ctx context.Context) ([]models.PlacementQuestion, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, position, prompt, options, correct_option, level
		FROM placement_questions
		ORDER BY position ASC`)
	if err != nil {
		return nil, fmt.Errorf("error listing placement questions: %w", err)
	}
	defer rows.Close()

	var bank []models.PlacementQuestion
	for rows.Next() {
		var q models.PlacementQuestion
		if err := rows.Scan(&q.ID, &q.Position, &q.Prompt, &q.Options, &q.CorrectOption, &q.Level); err != nil {
			return nil, fmt.Errorf("error scanning placement question: %w", err)
		}
		bank = append(bank, q)
	}

	return bank, rows.Err()
}
