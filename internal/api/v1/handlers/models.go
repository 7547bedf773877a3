package handlers

type CreateQueryRequest struct {
	Location string `json:"location" validate:"required"`
	DateFrom string `json:"dateFrom"`
	DateTo   string `json:"dateTo"`
}

// UpdateQueryRequest fields are pointers so an absent field can be told apart
// from an empty one; absent fields keep the stored values.
type UpdateQueryRequest struct {
	Location *string `json:"location"`
	DateFrom *string `json:"dateFrom"`
	DateTo   *string `json:"dateTo"`
}

type OKResponse struct {
	OK bool `json:"ok"`
}

type Error struct {
	Code   string `json:"code"`
	Detail string `json:"detail"`
	Status int    `json:"status"`
	Title  string `json:"title"`
}

type ErrorResponse struct {
	Errors []Error `json:"errors"`
}
