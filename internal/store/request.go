package store

type AccountInsertRequest struct {
	Handle         string
	Credential     string
	IsLocalSpeaker bool
}

// Update requests use pointer fields: nil leaves the stored value untouched.
type AccountUpdateRequest struct {
	ID             int64
	Handle         *string
	IsLocalSpeaker *bool
}

type PhotoInsertRequest struct {
	Title       string
	Description string
	ImageURL    string
	AccountID   int64
}

type PhotoUpdateRequest struct {
	ID          int64
	Title       *string
	Description *string
	ImageURL    *string
	AccountID   *int64
}

type WordInsertRequest struct {
	Original    string
	Translation string
	Description string
	AccountID   int64
}

type WordUpdateRequest struct {
	ID          int64
	Original    *string
	Translation *string
	Description *string
	AccountID   *int64
}

type ExperienceInsertRequest struct {
	Title       string
	Description string
	ImageURL    string
	Location    string
}

type ExperienceUpdateRequest struct {
	ID          int64
	Title       *string
	Description *string
	ImageURL    *string
	Location    *string
}
