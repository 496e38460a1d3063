// Package highlight classifies rendered characters into token categories and
// maps each category to a display attribute.
package highlight

import "github.com/gdamore/tcell/v2"

// Type is the highlight tag assigned to a single character.
type Type int

const (
	None Type = iota
	Number
	String
	Character
	Comment
	PrimaryKeyword
	SecondaryKeyword
	// Match marks a search hit. It is applied after the lexical pass and
	// overwrites whatever tag the character already had.
	Match
)

var typeNames = [...]string{
	None:             "none",
	Number:           "number",
	String:           "string",
	Character:        "character",
	Comment:          "comment",
	PrimaryKeyword:   "primary keyword",
	SecondaryKeyword: "secondary keyword",
	Match:            "match",
}

func (t Type) String() string {
	if t < None || t > Match {
		return "unknown"
	}
	return typeNames[t]
}

// StyleName returns the theme style key used to color this tag.
func (t Type) StyleName() string {
	switch t {
	case Number:
		return "number"
	case String:
		return "string"
	case Character:
		return "character"
	case Comment:
		return "comment"
	case PrimaryKeyword:
		return "keyword"
	case SecondaryKeyword:
		return "keyword.secondary"
	case Match:
		return "match"
	default:
		return "Default"
	}
}

// Color returns the built-in foreground color for the tag.
func (t Type) Color() tcell.Color {
	switch t {
	case Number:
		return tcell.NewRGBColor(244, 162, 97)
	case String:
		return tcell.NewRGBColor(233, 237, 201)
	case Character:
		return tcell.NewRGBColor(255, 200, 221)
	case Comment:
		return tcell.NewRGBColor(133, 153, 0)
	case PrimaryKeyword:
		return tcell.ColorLime
	case SecondaryKeyword:
		return tcell.ColorYellow
	case Match:
		return tcell.ColorAqua
	default:
		return tcell.ColorWhite
	}
}
