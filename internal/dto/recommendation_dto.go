package dto

type RecommendationItemDTO struct {
	JobKey     string  `json:"job_key"`
	Score      float64 `json:"score"`
	Category   string  `json:"category"`
	Location   string  `json:"location"`
	Position   int     `json:"position"`
	IsFallback bool    `json:"is_fallback"`
}

type RecommendationSectionDTO struct {
	Name string                  `json:"name"`
	Jobs []RecommendationItemDTO `json:"jobs"`
}

type RecommendationResponseDTO struct {
	UserID   string                     `json:"user_id"`
	Total    int                        `json:"total"`
	Sections []RecommendationSectionDTO `json:"sections"`
}
