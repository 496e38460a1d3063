package row

import (
	"strings"

	"github.com/bethropolis/tidal/internal/types"
	"github.com/bethropolis/tidal/internal/utils"
)

// Find returns the grapheme index of the first occurrence of query.
// Forward covers graphemes [at, Len()), Backward covers [0, at) and reports
// the occurrence closest to at. An empty query or at > Len() never matches,
// and neither does a hit that starts inside a grapheme cluster.
func (r *Row) Find(query string, at int, direction types.SearchDirection) (int, bool) {
	if query == "" || at < 0 || at > r.length {
		return 0, false
	}

	start, end := at, r.length
	if direction == types.Backward {
		start, end = 0, at
	}

	startByte := utils.GraphemeToByteOffset(r.content, start)
	endByte := utils.GraphemeToByteOffset(r.content, end)
	window := r.content[startByte:endByte]

	var hit int
	if direction == types.Backward {
		hit = strings.LastIndex(window, query)
	} else {
		hit = strings.Index(window, query)
	}
	if hit < 0 {
		return 0, false
	}

	index, ok := utils.ByteOffsetToGraphemeIndex(window, hit)
	if !ok {
		return 0, false
	}
	return start + index, true
}
