package data

import "slices"

// A Movie is a single title: a feature film, a TV episode, a short, and so
// on, despite the name.
//
// Genres and Rating are stored in their own tables, movie_genres and ratings.
type Movie struct {
	// like "tt0111161"
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	TitleType TitleType `json:"titleType"`
	Year      int       `json:"year"`

	// nil when the runtime is unknown
	RuntimeMinutes *int `json:"runtimeMinutes,omitempty"`

	Genres []Genre `json:"genres" gorm:"-"`
	Rating *Rating `json:"rating,omitempty" gorm:"-"`
}

func (m *Movie) HasGenre(genre Genre) bool {
	return slices.Contains(m.Genres, genre)
}

// Runtime returns the runtime in minutes, and false if it is unknown.
func (m *Movie) Runtime() (int, bool) {
	if m.RuntimeMinutes == nil {
		return 0, false
	}
	return *m.RuntimeMinutes, true
}

// Votes is the number of votes behind the movie's rating, or 0 for a movie
// that hasn't been rated.
func (m *Movie) Votes() int {
	if m.Rating == nil {
		return 0
	}
	return m.Rating.Votes
}

// A MovieGenre represents a many-to-many relationship between movies and
// genres.
type MovieGenre struct {
	MovieID string
	Genre   Genre
}
