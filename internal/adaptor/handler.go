package adaptor

import (
	"movie-diary/internal/usecase"

	"go.uber.org/zap"
)

type Handler struct {
	Review *ReviewHandler
	Movie  *MovieHandler
	Diary  *DiaryHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Review: NewReviewHandler(service.Review, log),
		Movie:  NewMovieHandler(service.Movie, log),
		Diary:  NewDiaryHandler(service.Diary, log),
	}
}
