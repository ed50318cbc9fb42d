// JSON encoding of record lists.
//
// A list encodes as an array of records, each carrying its children
// inline, so a whole document tree round-trips through one value. Keys are
// short because snapshots of large files are dominated by them. Tags are
// stored as text and looked up again on decode, which keeps the encoding
// independent of the registry's numbering.
package gedcom

import (
	"fmt"

	json "github.com/goccy/go-json"
)

type wireRecord struct {
	Level    int          `json:"_lv"`
	XRef     string       `json:"_x,omitempty"`
	Tag      string       `json:"_t"`
	Data     string       `json:"_d,omitempty"`
	ID       string       `json:"_id,omitempty"`
	Children []wireRecord `json:"_c,omitempty"`
}

// MarshalJSON encodes the list and every nested child list.
func (l *List) MarshalJSON() ([]byte, error) {
	return json.Marshal(toWire(l))
}

// UnmarshalJSON replaces the list's records with the decoded ones and
// rebuilds the index. Id counters are kept and raised as in Reindex.
func (l *List) UnmarshalJSON(data []byte) error {
	var wire []wireRecord
	if err := json.Unmarshal(data, &wire); err != nil {
		return fmt.Errorf("%w: %w", ErrCorruptSnapshot, err)
	}
	l.load(wire)
	return nil
}

func toWire(l *List) []wireRecord {
	out := make([]wireRecord, 0, l.Len())
	for _, r := range l.All() {
		w := wireRecord{
			Level: r.Level,
			XRef:  r.XRef,
			Tag:   r.TagName(),
			Data:  r.Data,
			ID:    r.ID,
		}
		if r.Children.Len() > 0 {
			w.Children = toWire(r.Children)
		}
		out = append(out, w)
	}
	return out
}

// load fills the arena in one pass and indexes it afterwards.
func (l *List) load(wire []wireRecord) {
	records := make([]Record, len(wire))
	for i, w := range wire {
		children := NewList()
		if len(w.Children) > 0 {
			children.load(w.Children)
		}
		records[i] = Record{
			Level:    w.Level,
			XRef:     w.XRef,
			Tag:      LookupTag(w.Tag),
			Name:     w.Tag,
			Data:     w.Data,
			ID:       w.ID,
			Children: children,
		}
	}
	l.records = records
	l.Reindex()
}
