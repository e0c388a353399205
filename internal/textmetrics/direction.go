package textmetrics

import (
	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/language"
	"golang.org/x/text/unicode/bidi"
)

// BaseDirection is the paragraph direction of a string.
type BaseDirection int

const (
	LeftToRight BaseDirection = iota
	RightToLeft
)

func (d BaseDirection) di() di.Direction {
	if d == RightToLeft {
		return di.DirectionRTL
	}
	return di.DirectionLTR
}

// Direction returns the direction of the first strong character of s.
// Strings without one are left-to-right.
func Direction(s string) BaseDirection {
	for _, r := range s {
		p, _ := bidi.LookupRune(r)
		switch p.Class() {
		case bidi.L:
			return LeftToRight
		case bidi.R, bidi.AL:
			return RightToLeft
		}
	}
	return LeftToRight
}

// script returns the script of the first non-space rune.
func script(runes []rune) language.Script {
	for _, r := range runes {
		switch r {
		case ' ', '\t', '\n', '\r':
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}
