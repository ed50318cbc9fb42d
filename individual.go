// Individual records (INDI).
package gedcom

import "strings"

var individualEvents = Tags(
	TagBIRT, TagCHR, TagDEAT, TagBURI, TagCREM, TagADOP, TagBAPM, TagBARM,
	TagBASM, TagBLES, TagCHRA, TagCONF, TagFCOM, TagORDN, TagNATU, TagEMIG,
	TagIMMI, TagCENS, TagPROB, TagWILL, TagGRAD, TagRETI, TagEVEN, TagRESI,
)

// Individual is a view over an INDI record.
type Individual struct {
	Structure
}

// Name returns the first NAME as written, e.g. "John /Smith/".
func (i Individual) Name() string { return i.Value(TagNAME) }

// Names returns every NAME as written.
func (i Individual) Names() []string { return i.Values(TagNAME) }

// GivenName returns GIVN under the first NAME, falling back to the text
// before the surname slashes.
func (i Individual) GivenName() string {
	name, ok := i.record.Children.First(TagNAME)
	if !ok {
		return ""
	}
	if g := name.Children.Data(TagGIVN); g != "" {
		return g
	}
	given, _, _ := strings.Cut(name.Data, "/")
	return strings.TrimSpace(given)
}

// Surname returns SURN under the first NAME, falling back to the text
// between the slashes.
func (i Individual) Surname() string {
	name, ok := i.record.Children.First(TagNAME)
	if !ok {
		return ""
	}
	if s := name.Children.Data(TagSURN); s != "" {
		return s
	}
	_, rest, found := strings.Cut(name.Data, "/")
	if !found {
		return ""
	}
	surname, _, _ := strings.Cut(rest, "/")
	return strings.TrimSpace(surname)
}

// Sex returns the SEX value (M, F, U) or "".
func (i Individual) Sex() string { return i.Value(TagSEX) }

// Events returns the individual's events in document order.
func (i Individual) Events() []Event {
	return events(i.record.Children, individualEvents)
}

// Birth returns the first BIRT event.
func (i Individual) Birth() (Event, bool) {
	return i.event(TagBIRT)
}

// Death returns the first DEAT event.
func (i Individual) Death() (Event, bool) {
	return i.event(TagDEAT)
}

// SpouseFamilies returns pointers to the families this individual is a
// spouse in (FAMS).
func (i Individual) SpouseFamilies() []string { return i.Values(TagFAMS) }

// ChildFamilies returns pointers to the families this individual is a
// child in (FAMC).
func (i Individual) ChildFamilies() []string { return i.Values(TagFAMC) }

func (i Individual) event(tag Tag) (Event, bool) {
	r, ok := i.record.Children.First(tag)
	if !ok {
		return Event{}, false
	}
	return Event{Structure{r}}, true
}
