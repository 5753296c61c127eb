package data

import "database/sql/driver"

// TitleType is the fixed category of a title, like a feature film or a TV
// episode.
type TitleType int

const (
	TitleTypeMovie TitleType = iota + 1
	TitleTypeShort
	TitleTypeTvEpisode
	TitleTypeTvMiniSeries
	TitleTypeTvMovie
	TitleTypeTvPilot
	TitleTypeTvSeries
	TitleTypeTvShort
	TitleTypeTvShow
	TitleTypeTvSpecial
	TitleTypeVideo
	TitleTypeVideoGame
)

var titleTypeTokens = newTokens("title type",
	"MOVIE",
	"SHORT",
	"TV_EPISODE",
	"TV_MINI_SERIES",
	"TV_MOVIE",
	"TV_PILOT",
	"TV_SERIES",
	"TV_SHORT",
	"TV_SHOW",
	"TV_SPECIAL",
	"VIDEO",
	"VIDEO_GAME",
)

// ParseTitleType resolves a token like "MOVIE" or "TV_SERIES". Matching is
// exact and case-sensitive.
func ParseTitleType(token string) (TitleType, error) {
	v, err := titleTypeTokens.parse(token)
	return TitleType(v), err
}

// TitleTypes lists every title type in declaration order.
func TitleTypes() []TitleType {
	out := make([]TitleType, 0, len(titleTypeTokens.names)-1)
	for i := 1; i < len(titleTypeTokens.names); i++ {
		out = append(out, TitleType(i))
	}
	return out
}

func (tt TitleType) Valid() bool { return titleTypeTokens.valid(int(tt)) }

func (tt TitleType) String() string { return titleTypeTokens.name(int(tt)) }

func (tt TitleType) MarshalText() ([]byte, error) {
	if !tt.Valid() {
		return nil, &InvalidTokenError{Kind: titleTypeTokens.kind, Token: tt.String()}
	}
	return []byte(tt.String()), nil
}

func (tt *TitleType) UnmarshalText(text []byte) error {
	v, err := ParseTitleType(string(text))
	if err != nil {
		return err
	}
	*tt = v
	return nil
}

// Value stores a title type as its token.
func (tt TitleType) Value() (driver.Value, error) {
	text, err := tt.MarshalText()
	if err != nil {
		return nil, err
	}
	return string(text), nil
}

func (tt *TitleType) Scan(src any) error {
	v, err := titleTypeTokens.scan(src)
	if err != nil {
		return err
	}
	*tt = TitleType(v)
	return nil
}
