package domain

// Project is the single resource served by the API. A Project held by the
// store always has all three fields populated.
type Project struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Owner string `json:"owner"`
}
