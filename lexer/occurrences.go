package lexer

// OccurrenceEntry records where one identifier lexeme appears in a source
// text. FirstSeen is fixed when the entry is created; Locations is
// append-only and holds every position at which the lexeme was scanned as
// an identifier, first sighting included.
type OccurrenceEntry struct {
	Lexeme    string
	FirstSeen Position
	Locations []Position
}

// Occurrences maps identifier lexemes (case-sensitive) to their recorded
// locations. Keywords are never recorded. The table is owned by exactly one
// tokenization session; a new session starts with a fresh table.
type Occurrences struct {
	entries map[string]*OccurrenceEntry
	order   []string // lexemes in first-seen order, for stable reports
}

// NewOccurrences returns an empty occurrence table.
func NewOccurrences() *Occurrences {
	return &Occurrences{
		entries: make(map[string]*OccurrenceEntry),
	}
}

// Record notes that lexeme was scanned as an identifier at pos. The first
// sighting creates the entry; every sighting, first included, appends to
// the location list. FirstSeen is never overwritten.
func (o *Occurrences) Record(lexeme string, pos Position) {
	entry, ok := o.entries[lexeme]
	if !ok {
		entry = &OccurrenceEntry{
			Lexeme:    lexeme,
			FirstSeen: pos,
		}
		o.entries[lexeme] = entry
		o.order = append(o.order, lexeme)
	}
	entry.Locations = append(entry.Locations, pos)
}

// Lookup returns the entry for lexeme, or false if it was never recorded.
func (o *Occurrences) Lookup(lexeme string) (*OccurrenceEntry, bool) {
	entry, ok := o.entries[lexeme]
	return entry, ok
}

// Len returns the number of distinct identifiers recorded.
func (o *Occurrences) Len() int {
	return len(o.entries)
}

// Identifiers returns the recorded entries in first-seen order.
func (o *Occurrences) Identifiers() []*OccurrenceEntry {
	result := make([]*OccurrenceEntry, 0, len(o.order))
	for _, lexeme := range o.order {
		result = append(result, o.entries[lexeme])
	}
	return result
}

// Lexemes returns the recorded identifier lexemes in first-seen order.
func (o *Occurrences) Lexemes() []string {
	result := make([]string, len(o.order))
	copy(result, o.order)
	return result
}
