package models

import "time"

// LeaderboardRow is one ranked line of a division leaderboard snapshot.
type LeaderboardRow struct {
	Rank              int       `json:"rank"`
	CatchID           string    `json:"catch_id"`
	AnglerName        string    `json:"angler_name"`
	CertifyingCaptain string    `json:"certifying_captain"`
	Species           []string  `json:"species"`
	TotalWeight       float64   `json:"total_weight"`
	AdjustedWeight    float64   `json:"adjusted_weight"`
	WeighInLocation   string    `json:"weigh_in_location"`
	SubmittedAt       time.Time `json:"submitted_at"`
}
