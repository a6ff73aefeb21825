package adaptor

import (
	"net/http"
	"strings"

	"movie-diary/internal/diary"
	"movie-diary/internal/usecase"
	"movie-diary/pkg/utils"

	"go.uber.org/zap"
)

type DiaryHandler struct {
	service usecase.DiaryService
	log     *zap.Logger
}

func NewDiaryHandler(service usecase.DiaryService, log *zap.Logger) *DiaryHandler {
	return &DiaryHandler{
		service: service,
		log:     log.With(zap.String("handler", "diary")),
	}
}

// GetDiary handles GET /api/diary?search=&filter=&sort=
func (h *DiaryHandler) GetDiary(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	params := diary.Params{
		Search: query.Get("search"),
		Filter: diary.FilterOption(query.Get("filter")),
		Sort:   diary.SortOption(query.Get("sort")),
	}

	view, err := h.service.GetDiary(r.Context(), params)
	if err != nil {
		if strings.Contains(err.Error(), "validation failed") {
			h.log.Warn("Diary view validation failed", zap.Error(err))
			utils.ResponseBadRequest(w, err.Error())
			return
		}
		h.log.Error("Failed to build diary view", zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
		return
	}

	utils.ResponseSuccess(w, view)
}
