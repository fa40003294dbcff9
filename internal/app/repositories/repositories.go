package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	UserRepository       *UserRepository
	TokenRepository      *TokenRepository
	ClassRepository      *ClassRepository
	LessonRepository     *LessonRepository
	PlacementRepository  *PlacementRepository
	ProgressRepository   *ProgressRepository
	AssignmentRepository *AssignmentRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		UserRepository:       NewUserRepository(db),
		TokenRepository:      NewTokenRepository(db),
		ClassRepository:      NewClassRepository(db),
		LessonRepository:     NewLessonRepository(db),
		PlacementRepository:  NewPlacementRepository(db),
		ProgressRepository:   NewProgressRepository(db),
		AssignmentRepository: NewAssignmentRepository(db),
	}
}
