package savedquery

import (
	"time"

	"gorm.io/datatypes"
)

// SavedQuery is one persisted weather lookup: the raw location text the user
// typed, the coordinate it resolved to, the requested date range, and the
// historical-weather payload fetched for it (kept as an opaque JSON document).
type SavedQuery struct {
	ID           uint           `json:"id" gorm:"primaryKey"`
	InputText    string         `json:"input_text" gorm:"column:input_text;not null"`
	ResolvedName *string        `json:"resolved_name" gorm:"column:resolved_name"`
	Latitude     *float64       `json:"latitude" gorm:"column:latitude"`
	Longitude    *float64       `json:"longitude" gorm:"column:longitude"`
	DateFrom     string         `json:"date_from" gorm:"column:date_from"`
	DateTo       string         `json:"date_to" gorm:"column:date_to"`
	ResultJSON   datatypes.JSON `json:"result_json" gorm:"column:result_json"`
	CreatedAt    time.Time      `json:"created_at" gorm:"index:idx_queries_created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
}

func (SavedQuery) TableName() string {
	return "queries"
}
