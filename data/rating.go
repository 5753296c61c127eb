package data

// A Rating is the aggregate score of one movie. It refers back to the movie
// by ID, but doesn't own it.
type Rating struct {
	MovieID string  `json:"movieId"`
	Average float64 `json:"average"`
	Votes   int     `json:"votes"`
}
