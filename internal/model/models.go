package model

import "time"

// Account identifies a contributor. Credential holds the bcrypt hash of the
// account password and must never appear in any API response.
type Account struct {
	ID             int64
	Handle         string
	Credential     string
	IsLocalSpeaker bool
	CreatedAt      time.Time
}

type Photo struct {
	ID          int64
	Title       string
	Description string
	ImageURL    string
	AccountID   int64
	Likes       int
	CreatedAt   time.Time
}

type Word struct {
	ID          int64
	Original    string
	Translation string
	Description string
	AccountID   int64
	Likes       int
	CreatedAt   time.Time
}

type Experience struct {
	ID          int64
	Title       string
	Description string
	ImageURL    string
	Location    string
	CreatedAt   time.Time
}
