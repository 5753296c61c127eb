package data

import "database/sql/driver"

// Genre is a category tag. A movie may carry several.
type Genre int

const (
	GenreAction Genre = iota + 1
	GenreAdult
	GenreAdventure
	GenreAnimation
	GenreBiography
	GenreComedy
	GenreCrime
	GenreDocumentary
	GenreDrama
	GenreFamily
	GenreFantasy
	GenreFilmNoir
	GenreGameShow
	GenreHistory
	GenreHorror
	GenreMusic
	GenreMusical
	GenreMystery
	GenreNews
	GenreRealityTv
	GenreRomance
	GenreSciFi
	GenreShort
	GenreSport
	GenreTalkShow
	GenreThriller
	GenreWar
	GenreWestern
)

// These are the genre names IMDb uses.
var genreTokens = newTokens("genre",
	"Action",
	"Adult",
	"Adventure",
	"Animation",
	"Biography",
	"Comedy",
	"Crime",
	"Documentary",
	"Drama",
	"Family",
	"Fantasy",
	"Film-Noir",
	"Game-Show",
	"History",
	"Horror",
	"Music",
	"Musical",
	"Mystery",
	"News",
	"Reality-TV",
	"Romance",
	"Sci-Fi",
	"Short",
	"Sport",
	"Talk-Show",
	"Thriller",
	"War",
	"Western",
)

// ParseGenre resolves a token like "Crime" or "Sci-Fi".
func ParseGenre(token string) (Genre, error) {
	v, err := genreTokens.parse(token)
	return Genre(v), err
}

func Genres() []Genre {
	out := make([]Genre, 0, len(genreTokens.names)-1)
	for i := 1; i < len(genreTokens.names); i++ {
		out = append(out, Genre(i))
	}
	return out
}

func (g Genre) Valid() bool { return genreTokens.valid(int(g)) }

func (g Genre) String() string { return genreTokens.name(int(g)) }

func (g Genre) MarshalText() ([]byte, error) {
	if !g.Valid() {
		return nil, &InvalidTokenError{Kind: genreTokens.kind, Token: g.String()}
	}
	return []byte(g.String()), nil
}

func (g *Genre) UnmarshalText(text []byte) error {
	v, err := ParseGenre(string(text))
	if err != nil {
		return err
	}
	*g = v
	return nil
}

func (g Genre) Value() (driver.Value, error) {
	text, err := g.MarshalText()
	if err != nil {
		return nil, err
	}
	return string(text), nil
}

func (g *Genre) Scan(src any) error {
	v, err := genreTokens.scan(src)
	if err != nil {
		return err
	}
	*g = Genre(v)
	return nil
}
