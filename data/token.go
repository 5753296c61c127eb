package data

import (
	"errors"
	"fmt"
)

// ErrInvalidToken is matched by every *InvalidTokenError.
var ErrInvalidToken = errors.New("invalid token")

// An InvalidTokenError is returned when a string doesn't name any value of
// one of our enumerations, like a title type of "FILM" or a genre of "drama".
type InvalidTokenError struct {
	// like "title type" or "genre"
	Kind  string
	Token string
}

func (err *InvalidTokenError) Error() string {
	return fmt.Sprintf("invalid %s token '%s'", err.Kind, err.Token)
}

func (err *InvalidTokenError) Is(target error) bool {
	return target == ErrInvalidToken
}

// tokens maps the values of an enumeration to and from their string forms.
// Index 0 is reserved for the invalid zero value.
type tokens struct {
	kind    string
	names   []string
	byToken map[string]int
}

func newTokens(kind string, names ...string) *tokens {
	t := &tokens{
		kind:    kind,
		names:   append([]string{""}, names...),
		byToken: make(map[string]int, len(names)),
	}
	for i, name := range names {
		t.byToken[name] = i + 1
	}
	return t
}

func (t *tokens) parse(token string) (int, error) {
	v, ok := t.byToken[token]
	if !ok {
		return 0, &InvalidTokenError{Kind: t.kind, Token: token}
	}
	return v, nil
}

func (t *tokens) valid(v int) bool {
	return v > 0 && v < len(t.names)
}

func (t *tokens) name(v int) string {
	if !t.valid(v) {
		return fmt.Sprintf("%s(%d)", t.kind, v)
	}
	return t.names[v]
}

// scan accepts the string and []byte forms the sqlite driver hands back.
func (t *tokens) scan(src any) (int, error) {
	switch src := src.(type) {
	case string:
		return t.parse(src)
	case []byte:
		return t.parse(string(src))
	default:
		return 0, fmt.Errorf("cannot scan %T into %s", src, t.kind)
	}
}
