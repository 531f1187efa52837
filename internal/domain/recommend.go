package domain

// MovieRef is one ranked recommendation.
type MovieRef struct {
	Title           string `json:"title"`
	Year            int    `json:"year"`
	Director        string `json:"director"`
	Subgenre        string `json:"subgenre"`
	DifficultyLevel string `json:"difficulty_level"`
	WhyRecommended  string `json:"why_recommended"`
	OracleMessage   string `json:"oracle_message"`
}

// RecommendContext is the last-session context a recommendation is ranked
// against. The recommender is a pure function of (profile, context).
type RecommendContext struct {
	RecentTheme     string `json:"recent_quiz_theme"`
	PerformanceTier string `json:"performance"`
	OracleEmotion   string `json:"oracle_emotion"`
}
