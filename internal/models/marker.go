package models

// Marker types used by the map client. Stored as free strings, membership is not enforced.
const (
	MarkerTypeEnemy  = "enemy"
	MarkerTypeAlly   = "ally"
	MarkerTypeUnit   = "unit"
	MarkerTypeTarget = "target"
)

// UnknownCreator is substituted when a marker's creator record cannot be resolved
const UnknownCreator = "Unknown"

// CreatedAtLayout is the fixed textual format for marker creation timestamps (UTC)
const CreatedAtLayout = "2006-01-02 15:04:05"

// Marker represents a marker row on the shared map
type Marker struct {
	ID          int     `json:"id"`
	Lat         float64 `json:"lat"`
	Lon         float64 `json:"lon"`
	Type        string  `json:"type"`
	Label       string  `json:"label"`
	Description *string `json:"description"` // optional, stored as NULL when absent
	CreatedAt   string  `json:"created_at"`
	CreatedBy   int     `json:"created_by"` // references users.id
}

// CreateMarkerRequest represents a marker creation request
type CreateMarkerRequest struct {
	Lat         float64 `json:"lat"`
	Lon         float64 `json:"lon"`
	Type        string  `json:"type"`
	Label       string  `json:"label"`
	Description *string `json:"description,omitempty"`
}

// MarkerView is a marker annotated with its creator's username resolved at read time
type MarkerView struct {
	ID          int     `json:"id"`
	Lat         float64 `json:"lat"`
	Lon         float64 `json:"lon"`
	Type        string  `json:"type"`
	Label       string  `json:"label"`
	Description *string `json:"description"`
	CreatedAt   string  `json:"created_at"`
	CreatedBy   string  `json:"created_by"`
}
