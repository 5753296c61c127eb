// Package subcmd wraps flag.FlagSet with usage text for one `movies`
// subcommand.
package subcmd

import (
	"flag"
	"fmt"
)

func New(name, doc string) *Subcommand {
	sc := &Subcommand{
		FlagSet: flag.NewFlagSet(name, flag.ContinueOnError),
		name:    name,
	}
	sc.FlagSet.Usage = func() {
		out := sc.FlagSet.Output()
		argSuffix := ""
		if sc.arg != nil {
			argSuffix = fmt.Sprintf(" <%s>", sc.arg.name)
		}
		fmt.Fprintf(out, "\n%s\n\n", doc)
		fmt.Fprintf(out, "  movies %s [flags]%s\n\n", name, argSuffix)
		fmt.Fprintf(out, "flags:\n")
		sc.FlagSet.PrintDefaults()
		if sc.arg != nil {
			fmt.Fprintf(out, "  <%s> %s\n", sc.arg.name, sc.arg.typename)
			fmt.Fprintf(out, "  \t%s\n", sc.arg.usage)
		}
	}
	return sc
}

type Subcommand struct {
	*flag.FlagSet
	name string
	arg  *arg
}

type arg struct {
	name     string
	typename string
	usage    string
	required bool
}

// SetArg documents the positional argument that follows the flags.
func (sc *Subcommand) SetArg(name, typename, usage string) *Subcommand {
	sc.arg = &arg{name: name, typename: typename, usage: usage}
	return sc
}

// RequireArg is SetArg for an argument that must be given.
func (sc *Subcommand) RequireArg(name, typename, usage string) *Subcommand {
	sc.arg = &arg{name: name, typename: typename, usage: usage + " (required)", required: true}
	return sc
}

// Parse parses flags, then checks that a required positional argument, if
// any, was given.
func (sc *Subcommand) Parse(args []string) error {
	if err := sc.FlagSet.Parse(args); err != nil {
		return err
	}
	if sc.arg != nil && sc.arg.required && sc.NArg() == 0 {
		sc.FlagSet.Usage()
		return fmt.Errorf("%s: missing <%s>", sc.name, sc.arg.name)
	}
	return nil
}

// IsSet reports whether the named flag was given on the command line, so a
// flag's zero value can still be a meaningful setting.
func (sc *Subcommand) IsSet(name string) bool {
	set := false
	sc.FlagSet.Visit(func(f *flag.Flag) {
		if f.Name == name {
			set = true
		}
	})
	return set
}
