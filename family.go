// Family records (FAM).
package gedcom

var familyEvents = Tags(
	TagANUL, TagCENS, TagDIV, TagDIVF, TagENGA, TagMARB, TagMARC, TagMARR,
	TagMARL, TagMARS, TagRESI, TagEVEN,
)

// Family is a view over a FAM record.
type Family struct {
	Structure
}

// Husband returns the pointer to the husband's INDI record.
func (f Family) Husband() string { return f.Value(TagHUSB) }

// Wife returns the pointer to the wife's INDI record.
func (f Family) Wife() string { return f.Value(TagWIFE) }

// Children returns pointers to the children's INDI records, in order.
func (f Family) Children() []string { return f.Values(TagCHIL) }

// Events returns the family's events in document order.
func (f Family) Events() []Event {
	return events(f.record.Children, familyEvents)
}

// Marriage returns the first MARR event.
func (f Family) Marriage() (Event, bool) {
	r, ok := f.record.Children.First(TagMARR)
	if !ok {
		return Event{}, false
	}
	return Event{Structure{r}}, true
}
