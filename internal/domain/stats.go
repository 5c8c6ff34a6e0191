package domain

// SimpleStats mirrors GET /api/test-stats/user/{id}/simple-stats.
type SimpleStats struct {
	CompletedTests int     `json:"completed_tests"`
	AverageScore   float64 `json:"average_score"`
}

// RecentTest is one entry of GET /api/test-stats/user/{id}/recent-tests.
type RecentTest struct {
	Type           string  `json:"type"`
	Passed         bool    `json:"passed"`
	Score          float64 `json:"score"`
	Duration       int     `json:"duration"`
	CorrectAnswers int     `json:"correct_answers"`
	TotalQuestions int     `json:"total_questions"`
	CompletedAt    string  `json:"completed_at"`
}
