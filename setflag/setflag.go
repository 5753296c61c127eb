// Package setflag provides a flag.Value that accepts any subset of a fixed
// list of options, like "-columns id,title,year".
package setflag

import (
	"fmt"
	"slices"
	"strings"
)

func New(options ...string) *SetFlag {
	sf := &SetFlag{
		options: options,
		values:  make(map[string]struct{}, len(options)),
	}
	return sf
}

type SetFlag struct {
	options  []string
	defaults []string
	values   map[string]struct{}
}

// Default selects the given values if none are set by the time List is
// called.
func (sf *SetFlag) Default(values ...string) *SetFlag {
	sf.defaults = values
	return sf
}

// List returns the selected values in the order the options were given to
// New, regardless of the order they were set in.
func (sf *SetFlag) List() []string {
	if len(sf.values) == 0 {
		return slices.Clone(sf.defaults)
	}
	var values []string
	for _, opt := range sf.options {
		if _, ok := sf.values[opt]; ok {
			values = append(values, opt)
		}
	}
	return values
}

func (sf *SetFlag) Has(value string) bool {
	return slices.Contains(sf.List(), value)
}

func (sf *SetFlag) String() string {
	if sf == nil {
		return ""
	}
	return strings.Join(sf.List(), ",")
}

func (sf *SetFlag) Set(value string) error {
	values := []string{value}
	if strings.Contains(value, ",") {
		values = strings.Split(value, ",")
		for i, str := range values {
			values[i] = strings.TrimSpace(str)
		}
	}
	for _, value := range values {
		if !slices.Contains(sf.options, value) {
			return fmt.Errorf("unsupported value '%s' (options are %s)", value, strings.Join(sf.options, ", "))
		}
		sf.values[value] = struct{}{}
	}
	return nil
}
