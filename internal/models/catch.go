package models

import (
	"strings"
	"time"
)

// Division identifies a tournament division.
type Division string

const (
	DivisionPelagic Division = "Pelagic"
	DivisionReef    Division = "Reef"
)

// Divisions lists every division in display order.
var Divisions = []Division{DivisionPelagic, DivisionReef}

// ValidDivision reports whether d names a tournament division.
func ValidDivision(d Division) bool {
	for _, known := range Divisions {
		if d == known {
			return true
		}
	}
	return false
}

// SpeciesOptions is the closed set of species a bag entry may name. Values
// are reproduced verbatim from the official entry form.
var SpeciesOptions = []string{
	"King Mackerel",
	"Spanish Mackerel",
	"Wahoo",
	"Dolphin/Mahi Mahi",
	"Black Fin Tuna",
	"Other - Captain's Choice Award Entry",
}

// ValidSpecies matches case-insensitively; the submitted casing is preserved
// for display.
func ValidSpecies(name string) bool {
	for _, option := range SpeciesOptions {
		if strings.EqualFold(option, name) {
			return true
		}
	}
	return false
}

// WeighInVenues is the closed set of approved weigh-in sites. The list is
// treated as opaque; membership is the only validation applied.
var WeighInVenues = []string{
	"Haulover Marina",
	"Crandon Park Marina",
	"Black Point Marina",
	"Matheson Hammock Marina",
	"Dinner Key Marina",
	"Miamarina at Bayside",
	"Keystone Point Marina",
	"Pelican Harbor Marina",
	"Homestead Bayfront Marina",
	"Bill Bird Marina",
	"Sundays on the Bay",
	"Shuckers Waterfront Grill",
	"Monty's Raw Bar",
	"Garcia's Seafood Grille",
	"Casablanca Seafood Bar & Grill",
	"The Wharf Miami",
	"Bayshore Landing",
	"Grove Harbour Marina",
	"Rickenbacker Marina",
	"Virginia Key Boat Ramp",
	"Haulover Sandbar Dock",
	"Oleta River Outdoor Center",
	"Harbour Towne Marina",
	"Lauderdale Marina",
	"15th Street Fisheries",
	"Bahia Mar Yachting Center",
	"Pier Sixty-Six Marina",
	"Sands Harbor Marina",
	"Lighthouse Point Marina",
	"Two Georges at the Cove",
	"Sailfish Marina Resort",
	"Riviera Beach Marina Village",
	"Square Grouper Tiki Bar",
	"Jupiter Inlet Village Docks",
	"Whiskey Creek Hideout",
	"Alsdorf Boat Ramp",
	"Hillsboro Inlet Marina",
}

// ValidVenue reports whether the weigh-in location is an approved site.
func ValidVenue(name string) bool {
	for _, venue := range WeighInVenues {
		if venue == name {
			return true
		}
	}
	return false
}

// CatchStatus is the lifecycle state of a catch entry.
type CatchStatus string

const (
	CatchPending  CatchStatus = "PENDING"
	CatchApproved CatchStatus = "APPROVED"
	CatchRejected CatchStatus = "REJECTED"
)

// BagFish is a single fish within a bag.
type BagFish struct {
	Species   string  `json:"species" validate:"required"`
	WeightLbs float64 `json:"weight_lbs" validate:"gte=0"`
}

// MaxBagSize caps the number of fish in one entry.
const MaxBagSize = 3

// CatchEntry is one submission, optionally a bag of up to three fish.
// Status transitions PENDING -> APPROVED or PENDING -> REJECTED exactly
// once; APPROVED and REJECTED are terminal.
type CatchEntry struct {
	ID                string      `json:"id"`
	Division          Division    `json:"division"`
	AnglerName        string      `json:"angler_name"`
	CertifyingCaptain string      `json:"certifying_captain"`
	BagFish           []BagFish   `json:"bag_fish"`
	TotalWeight       float64     `json:"total_weight"`
	WeighInLocation   string      `json:"weigh_in_location"`
	LandingVideoRef   string      `json:"landing_video_ref"`
	WeighInVideoRef   string      `json:"weigh_in_video_ref"`
	Status            CatchStatus `json:"status"`
	SubmittedAt       time.Time   `json:"submitted_at"`
	DecidedAt         *time.Time  `json:"decided_at,omitempty"`
}
