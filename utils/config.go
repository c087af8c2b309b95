package utils

import (
	"fmt"
	"strconv"
)

// Defaults for the three positional arguments.
const (
	DefaultRepeats = 100000
	DefaultRows    = 10
	DefaultCols    = 2000
)

// Config holds the resolved benchmark parameters.
type Config struct {
	Repeats int // kernel invocations
	Rows    int // ny
	Cols    int // nx
}

// ResolveArgs resolves the positional command-line arguments — repeats,
// rows, cols, in that order — against the defaults. Arguments are
// order-dependent: a slot is only considered when present, which
// requires every earlier slot to be present too. A token that is not a
// non-negative integer keeps that slot's default and prints a one-line
// notice, but does not stop later slots from being parsed. Arguments
// beyond the third are ignored.
func ResolveArgs(args []string) Config {
	cfg := Config{Repeats: DefaultRepeats, Rows: DefaultRows, Cols: DefaultCols}
	if len(args) > 0 {
		if n, ok := parseCount(args[0]); ok {
			cfg.Repeats = n
		} else {
			notice("Repeats", cfg.Repeats)
		}
		if len(args) > 1 {
			if n, ok := parseCount(args[1]); ok {
				cfg.Rows = n
			} else {
				notice("Rows", cfg.Rows)
			}
			if len(args) > 2 {
				if n, ok := parseCount(args[2]); ok {
					cfg.Cols = n
				} else {
					notice("Columns", cfg.Cols)
				}
			}
		}
	}
	return cfg
}

// parseCount parses a token as a non-negative integer.
func parseCount(s string) (int, bool) {
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}

// notice reports a rejected argument and the default kept in its place.
// Notices always print, independent of Verbose.
func notice(field string, kept int) {
	fmt.Fprintf(Output, "%s invalid, using %d\n", field, kept)
}
