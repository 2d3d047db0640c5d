package models

import "time"

// TournamentName is the display title for the season.
const TournamentName = "Everyday Angler Charter Tournament"

// TournamentInfo is the static season information plus the current wristband
// color, served to clients for display. The window is not enforced by any
// engine logic.
type TournamentInfo struct {
	Name           string     `json:"name"`
	Year           int        `json:"year"`
	WindowStart    time.Time  `json:"window_start"`
	WindowEnd      time.Time  `json:"window_end"`
	Divisions      []Division `json:"divisions"`
	SpeciesOptions []string   `json:"species_options"`
	WeighInVenues  []string   `json:"weigh_in_venues"`
	WristbandColor string     `json:"wristband_color,omitempty"`
}

// SeasonWindow returns the tournament window for a year: February 1 through
// November 30.
func SeasonWindow(year int) (time.Time, time.Time) {
	start := time.Date(year, time.February, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(year, time.November, 30, 23, 59, 59, 0, time.UTC)
	return start, end
}
