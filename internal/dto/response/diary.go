package response

// DiaryGroupResponse is one month bucket of the diary view.
type DiaryGroupResponse struct {
	Month   string           `json:"month"` // e.g. "JANUARY 2024"
	Reviews []ReviewResponse `json:"reviews"`
}

type DiaryResponse struct {
	Groups []DiaryGroupResponse `json:"groups"`
	Total  int                  `json:"total"`
}
