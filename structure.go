// Typed views over records.
//
// A structure wraps one record and answers domain questions by querying
// the record's child List. Structures hold no state of their own, so they
// always reflect the current contents of that list.
//
// Pointer values such as "1 FAMS @F1@" are line data in GEDCOM, not
// cross-reference ids, so accessors that follow links read Data.
package gedcom

// Structure is the common base of all typed views.
type Structure struct {
	record Record
}

// NewStructure wraps r.
func NewStructure(r Record) Structure {
	return Structure{record: r}
}

// Record returns the backing record.
func (s Structure) Record() Record { return s.record }

// ID returns the backing record's ID.
func (s Structure) ID() string { return s.record.ID }

// XRef returns the backing record's cross-reference id.
func (s Structure) XRef() string { return s.record.XRef }

// Data returns the backing record's data.
func (s Structure) Data() string { return s.record.Data }

// Level returns the backing record's level.
func (s Structure) Level() int { return s.record.Level }

// Children returns the backing record's child list.
func (s Structure) Children() *List { return s.record.Children }

// Value returns the data of the first child under tag, or "".
func (s Structure) Value(tag Tag) string {
	return s.record.Children.Data(tag)
}

// Values returns the data of every child under tag.
func (s Structure) Values(tag Tag) []string {
	records := s.record.Children.ByTag(tag)
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r.Data
	}
	return out
}

// Notes returns the data of every NOTE child: inline text or a pointer to
// a NOTE record.
func (s Structure) Notes() []string {
	return s.Values(TagNOTE)
}

// Citations returns the SOUR children as source citations.
func (s Structure) Citations() []SourceCitation {
	records := s.record.Children.ByTag(TagSOUR)
	out := make([]SourceCitation, len(records))
	for i, r := range records {
		out[i] = SourceCitation{Structure{r}}
	}
	return out
}

// SourceCitation is a SOUR substructure pointing at a source record.
type SourceCitation struct {
	Structure
}

// Source returns the pointer to the cited source, or the inline
// description for unlinked citations.
func (c SourceCitation) Source() string { return c.Data() }

// Page returns where in the source the information was found.
func (c SourceCitation) Page() string { return c.Value(TagPAGE) }

// Quality returns the QUAY assessment, "" if absent.
func (c SourceCitation) Quality() string { return c.Value(TagQUAY) }
