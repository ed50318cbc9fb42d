// Source records (SOUR).
package gedcom

// Source is a view over a top-level SOUR record.
type Source struct {
	Structure
}

// Title returns TITL.
func (s Source) Title() string { return s.Value(TagTITL) }

// Author returns AUTH.
func (s Source) Author() string { return s.Value(TagAUTH) }

// Publication returns PUBL.
func (s Source) Publication() string { return s.Value(TagPUBL) }

// Abbreviation returns ABBR.
func (s Source) Abbreviation() string { return s.Value(TagABBR) }

// Text returns TEXT.
func (s Source) Text() string { return s.Value(TagTEXT) }

// Repository returns the pointer to the REPO record holding the source.
func (s Source) Repository() string { return s.Value(TagREPO) }

// Section returns the DATA section of the source.
func (s Source) Section() (SourceData, bool) {
	r, ok := s.record.Children.First(TagDATA)
	if !ok {
		return SourceData{}, false
	}
	return SourceData{Structure{r}}, true
}

// SourceData is the DATA section of a source record.
type SourceData struct {
	Structure
}

// Agency returns the responsible agency (AGNC).
func (d SourceData) Agency() string { return d.Value(TagAGNC) }

// Events returns the recorded event entries.
func (d SourceData) Events() []SourceEvent {
	records := d.record.Children.ByTag(TagEVEN)
	out := make([]SourceEvent, len(records))
	for i, r := range records {
		out[i] = SourceEvent{Structure{r}}
	}
	return out
}
