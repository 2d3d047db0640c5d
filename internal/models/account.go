package models

import "time"

// Role represents the available account roles.
type Role string

const (
	RoleAngler  Role = "ANGLER"
	RoleCaptain Role = "CAPTAIN"
	RoleAdmin   Role = "ADMIN"
)

// ValidRole reports whether the given role may be chosen at registration.
// ADMIN accounts are provisioned out of band.
func ValidRole(r Role) bool {
	return r == RoleAngler || r == RoleCaptain
}

// Profile holds the free-form contact and bio fields an account owner may
// edit at any time. No invariants beyond non-destructive merge.
type Profile struct {
	FullName   string `json:"full_name,omitempty"`
	Email      string `json:"email,omitempty"`
	Phone      string `json:"phone,omitempty"`
	Bio        string `json:"bio,omitempty"`
	HomePort   string `json:"home_port,omitempty"`
	BoatName   string `json:"boat_name,omitempty"`
	SocialLink string `json:"social_link,omitempty"`
	PictureRef string `json:"picture_ref,omitempty"`
}

// CaptainCredentials records the Merchant Mariner credential a captain must
// supply before the account becomes active.
type CaptainCredentials struct {
	MarinerNumber string    `json:"mariner_number"`
	DocumentRef   string    `json:"document_ref"`
	UploadedAt    time.Time `json:"uploaded_at"`
}

// Account is an identity record. Username is the unique key and is immutable
// once created.
type Account struct {
	ID           string              `json:"id"`
	Username     string              `json:"username"`
	PasswordHash string              `json:"-"`
	Role         Role                `json:"role"`
	Active       bool                `json:"active"`
	Profile      Profile             `json:"profile"`
	Credentials  *CaptainCredentials `json:"credentials,omitempty"`
	LastLogin    *time.Time          `json:"last_login,omitempty"`
	CreatedAt    time.Time           `json:"created_at"`
	UpdatedAt    time.Time           `json:"updated_at"`
}

// AccountInfo is the public shape of an account used in responses.
type AccountInfo struct {
	ID       string  `json:"id"`
	Username string  `json:"username"`
	Role     Role    `json:"role"`
	Active   bool    `json:"active"`
	Profile  Profile `json:"profile"`
}

// Info projects the account into its public shape.
func (a *Account) Info() AccountInfo {
	return AccountInfo{
		ID:       a.ID,
		Username: a.Username,
		Role:     a.Role,
		Active:   a.Active,
		Profile:  a.Profile,
	}
}
