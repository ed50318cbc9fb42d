// Event structures.
package gedcom

// Event is an individual or family event such as BIRT or MARR.
type Event struct {
	Structure
}

// Kind returns the event's tag.
func (e Event) Kind() Tag { return e.record.Tag }

// Type returns the TYPE descriptor, used mainly by generic EVEN records.
func (e Event) Type() string { return e.Value(TagTYPE) }

// Date returns the event date as written.
func (e Event) Date() string { return e.Value(TagDATE) }

// Place returns the event place as written.
func (e Event) Place() string { return e.Value(TagPLAC) }

// Age returns the AGE of the principal at the event.
func (e Event) Age() string { return e.Value(TagAGE) }

// Cause returns the CAUS of the event.
func (e Event) Cause() string { return e.Value(TagCAUS) }

func events(children *List, kinds TagSet) []Event {
	records := children.ByTags(kinds)
	out := make([]Event, len(records))
	for i, r := range records {
		out[i] = Event{Structure{r}}
	}
	return out
}

// SourceEvent is an EVEN entry inside a source's DATA section recording
// which events the source covers.
type SourceEvent struct {
	Structure
}

// Events returns the comma separated list of event tags recorded.
func (e SourceEvent) Events() string { return e.Data() }

// Date returns the period covered.
func (e SourceEvent) Date() string { return e.Value(TagDATE) }

// Place returns the jurisdiction covered.
func (e SourceEvent) Place() string { return e.Value(TagPLAC) }
