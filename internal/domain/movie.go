package domain

// Movie is a single catalog record. ReleaseDate keeps the raw string form
// ("YYYY-MM-DD" expected); parsing happens in the aggregator so malformed
// dates never abort a load.
type Movie struct {
	ID          int64  `json:"id,omitempty"`
	Title       string `json:"title,omitempty"`
	Genre       string `json:"genre"`
	ReleaseDate string `json:"release_date,omitempty"`
}
