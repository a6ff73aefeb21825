package wire

import (
	"movie-diary/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireDiary(r chi.Router, diaryHandler *adaptor.DiaryHandler) {
	// GET /api/diary?search=&filter=&sort= - filtered, sorted, month-grouped view
	r.Get("/api/diary", diaryHandler.GetDiary)
}
