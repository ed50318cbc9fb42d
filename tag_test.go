package gedcom

import "testing"

func TestLookupTag(t *testing.T) {
	tests := []struct {
		name string
		want Tag
	}{
		{"DATE", TagDATE},
		{"date", TagDATE},
		{"Plac", TagPLAC},
		{"INDI", TagINDI},
		{"WWW", TagWWW},
		{"ABBR", TagABBR},
		{"_UID", TagUnknown},
		{"", TagUnknown},
		{"DATEX", TagUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := LookupTag(tt.name); got != tt.want {
				t.Errorf("LookupTag(%q) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}

// TestTagRoundTrip verifies every registry entry maps back to itself, which
// catches a name list that drifted out of step with the constants.
func TestTagRoundTrip(t *testing.T) {
	for tag := TagUnknown + 1; tag < tagCount; tag++ {
		name := tag.String()
		if name == "" || name == "UNKNOWN" {
			t.Fatalf("tag %d has no name", tag)
		}
		if got := LookupTag(name); got != tag {
			t.Errorf("LookupTag(%q) = %d, want %d", name, got, tag)
		}
		if !tag.Known() {
			t.Errorf("%s.Known() = false", name)
		}
	}
}

func TestTagString(t *testing.T) {
	if TagUnknown.String() != "UNKNOWN" {
		t.Errorf("TagUnknown.String() = %q", TagUnknown.String())
	}
	if Tag(-1).String() != "UNKNOWN" || Tag(9999).String() != "UNKNOWN" {
		t.Error("out of range tags do not render as UNKNOWN")
	}
	if TagUnknown.Known() {
		t.Error("TagUnknown.Known() = true")
	}
}

func TestTagSet(t *testing.T) {
	s := Tags(TagDATE, TagPLAC)
	if !s.Has(TagDATE) || !s.Has(TagPLAC) {
		t.Error("set missing members")
	}
	if s.Has(TagSOUR) {
		t.Error("set has non-member")
	}
	var empty TagSet
	if empty.Has(TagDATE) {
		t.Error("nil set has a member")
	}
}
