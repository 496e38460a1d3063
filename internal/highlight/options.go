package highlight

// Options selects which token kinds a language profile highlights.
// The zero value highlights nothing.
type Options struct {
	Numbers    bool
	Strings    bool
	Characters bool
	Comments   bool

	// Keyword lists are matched in order; the first hit wins.
	PrimaryKeywords   []string
	SecondaryKeywords []string
}

// Enabled reports whether any token kind or keyword list is active.
func (o *Options) Enabled() bool {
	if o == nil {
		return false
	}
	return o.Numbers || o.Strings || o.Characters || o.Comments ||
		len(o.PrimaryKeywords) > 0 || len(o.SecondaryKeywords) > 0
}
