package row

import (
	"github.com/bethropolis/tidal/internal/highlight"
	"github.com/bethropolis/tidal/internal/types"
	"github.com/bethropolis/tidal/internal/utils"
)

// matcher tries to recognise a token starting at chars[index]. It returns
// the tag and the number of runes consumed, or 0 when it does not apply.
type matcher func(opts *highlight.Options, chars []rune, index int) (highlight.Type, int)

// matchers run in priority order; the first one that consumes input wins.
var matchers = []matcher{
	matchNumber,
	matchString,
	matchCharacter,
	matchComment,
	matchPrimaryKeyword,
	matchSecondaryKeyword,
}

// Highlight rescans the whole row with opts and then marks every occurrence
// of word as a Match. An empty word adds no matches.
func (r *Row) Highlight(opts *highlight.Options, word string) {
	if opts == nil {
		opts = &highlight.Options{}
	}
	chars := []rune(r.content)
	if !opts.Enabled() {
		r.highlighting = make([]highlight.Type, len(chars))
		r.highlightMatches(word)
		return
	}

	tags := make([]highlight.Type, 0, len(chars))
	index := 0
	for index < len(chars) {
		typ, n := highlight.None, 1
		for _, match := range matchers {
			if t, consumed := match(opts, chars, index); consumed > 0 {
				typ, n = t, consumed
				break
			}
		}
		for i := 0; i < n; i++ {
			tags = append(tags, typ)
		}
		index += n
	}

	r.highlighting = tags
	r.highlightMatches(word)
}

// highlightMatches overlays Match on every occurrence of word, whatever tag
// the characters had before.
func (r *Row) highlightMatches(word string) {
	if word == "" {
		return
	}
	wordLen := utils.GraphemeCount(word)

	at := 0
	for {
		hit, ok := r.Find(word, at, types.Forward)
		if !ok {
			return
		}
		next := hit + wordLen
		from := utils.GraphemeToRuneIndex(r.content, hit)
		to := utils.GraphemeToRuneIndex(r.content, next)
		for i := from; i < to && i < len(r.highlighting); i++ {
			r.highlighting[i] = highlight.Match
		}
		if next <= at {
			return
		}
		at = next
	}
}

// matchNumber consumes a digit run that starts after a separator, including
// interior '.', 'e' and '_'.
func matchNumber(opts *highlight.Options, chars []rune, index int) (highlight.Type, int) {
	if !opts.Numbers || !utils.IsASCIIDigit(chars[index]) {
		return highlight.None, 0
	}
	if index > 0 && !utils.IsSeparator(chars[index-1]) {
		return highlight.None, 0
	}
	n := 1
	for index+n < len(chars) {
		c := chars[index+n]
		if c != '.' && c != 'e' && c != '_' && !utils.IsASCIIDigit(c) {
			break
		}
		n++
	}
	return highlight.Number, n
}

// matchString consumes from '"' through the next '"'. Backslashes do not
// escape the delimiter. An unterminated literal runs to the end of the row.
func matchString(opts *highlight.Options, chars []rune, index int) (highlight.Type, int) {
	if !opts.Strings || chars[index] != '"' {
		return highlight.None, 0
	}
	n := 1
	for index+n < len(chars) {
		n++
		if chars[index+n-1] == '"' {
			break
		}
	}
	return highlight.String, n
}

// matchCharacter consumes 'x' or '\x'.
func matchCharacter(opts *highlight.Options, chars []rune, index int) (highlight.Type, int) {
	if !opts.Characters || chars[index] != '\'' || index+1 >= len(chars) {
		return highlight.None, 0
	}
	closing := index + 2
	if chars[index+1] == '\\' {
		closing = index + 3
	}
	if closing < len(chars) && chars[closing] == '\'' {
		return highlight.Character, closing - index + 1
	}
	return highlight.None, 0
}

// matchComment consumes from "//" to the end of the row.
func matchComment(opts *highlight.Options, chars []rune, index int) (highlight.Type, int) {
	if !opts.Comments || chars[index] != '/' || index+1 >= len(chars) || chars[index+1] != '/' {
		return highlight.None, 0
	}
	return highlight.Comment, len(chars) - index
}

func matchPrimaryKeyword(opts *highlight.Options, chars []rune, index int) (highlight.Type, int) {
	return highlight.PrimaryKeyword, matchKeywords(opts.PrimaryKeywords, chars, index)
}

func matchSecondaryKeyword(opts *highlight.Options, chars []rune, index int) (highlight.Type, int) {
	return highlight.SecondaryKeyword, matchKeywords(opts.SecondaryKeywords, chars, index)
}

// matchKeywords returns the length of the first keyword that starts at index
// with a separator (or row edge) on both sides, or 0.
func matchKeywords(keywords []string, chars []rune, index int) int {
	if index > 0 && !utils.IsSeparator(chars[index-1]) {
		return 0
	}
	for _, keyword := range keywords {
		word := []rune(keyword)
		end := index + len(word)
		if len(word) == 0 || end > len(chars) {
			continue
		}
		if end < len(chars) && !utils.IsSeparator(chars[end]) {
			continue
		}
		if string(chars[index:end]) == keyword {
			return len(word)
		}
	}
	return 0
}
