package repository

import (
	"movie-diary/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	Review ReviewRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		Review: NewReviewRepository(db, log),
	}
}
