// Document: a parsed GEDCOM file.
//
// A Document owns the root List of top-level records and hands out typed
// views over them. Lookups match the cross-reference id, not the minted
// ID that records without one receive.
package gedcom

import (
	"fmt"
	"io"
	"iter"
	"os"
	"strings"
)

// Document is the record tree of one GEDCOM file.
type Document struct {
	records *List
	config  Config
}

// NewDocument returns an empty document for programmatic construction.
func NewDocument(config Config) *Document {
	return &Document{records: NewList(), config: config.withDefaults()}
}

// Open reads and parses name inside dir. Access is confined to dir via
// os.Root, and a shared file lock is held while the file is read.
func Open(dir, name string, config Config) (*Document, error) {
	config = config.withDefaults()

	root, err := os.OpenRoot(dir)
	if err != nil {
		return nil, fmt.Errorf("open: %w", err)
	}
	defer root.Close()

	f, err := root.Open(name)
	if err != nil {
		return nil, fmt.Errorf("open: %w", err)
	}
	defer f.Close()

	var doc *Document
	err = readLocked(f, func() error {
		var perr error
		doc, perr = Parse(f, config)
		return perr
	})
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", name, err)
	}
	config.Logger.Debug("opened", "file", name, "records", doc.records.Len())
	return doc, nil
}

// Records returns the root list of top-level records.
func (d *Document) Records() *List {
	return d.records
}

// Record returns the top-level record with the given cross-reference id.
// Records without one, such as HEAD and TRLR, are never returned.
func (d *Document) Record(xref string) (Record, bool) {
	if xref == "" {
		return Record{}, false
	}
	for _, r := range d.records.All() {
		if r.XRef == xref {
			return r, true
		}
	}
	return Record{}, false
}

// Header returns the HEAD record.
func (d *Document) Header() (Header, bool) {
	r, ok := d.records.First(TagHEAD)
	if !ok {
		return Header{}, false
	}
	return Header{Structure{r}}, true
}

// Individuals returns every INDI record in document order.
func (d *Document) Individuals() []Individual {
	records := d.records.ByTag(TagINDI)
	out := make([]Individual, len(records))
	for i, r := range records {
		out[i] = Individual{Structure{r}}
	}
	return out
}

// Families returns every FAM record in document order.
func (d *Document) Families() []Family {
	records := d.records.ByTag(TagFAM)
	out := make([]Family, len(records))
	for i, r := range records {
		out[i] = Family{Structure{r}}
	}
	return out
}

// Sources returns every top-level SOUR record in document order.
func (d *Document) Sources() []Source {
	records := d.records.ByTag(TagSOUR)
	out := make([]Source, len(records))
	for i, r := range records {
		out[i] = Source{Structure{r}}
	}
	return out
}

// Individual returns the INDI record with the given cross-reference id.
func (d *Document) Individual(xref string) (Individual, bool) {
	r, ok := d.lookup(xref, TagINDI)
	return Individual{Structure{r}}, ok
}

// Family returns the FAM record with the given cross-reference id.
func (d *Document) Family(xref string) (Family, bool) {
	r, ok := d.lookup(xref, TagFAM)
	return Family{Structure{r}}, ok
}

// Source returns the SOUR record with the given cross-reference id.
func (d *Document) Source(xref string) (Source, bool) {
	r, ok := d.lookup(xref, TagSOUR)
	return Source{Structure{r}}, ok
}

// Walk yields every record in the tree depth first, parents before their
// children.
func (d *Document) Walk() iter.Seq[Record] {
	return walk(d.records)
}

// Checksum hashes the rendered tree with the configured algorithm.
func (d *Document) Checksum() string {
	return digest(d.config.HashAlgorithm, d.render)
}

// String renders the whole tree, one record per line, depth first.
func (d *Document) String() string {
	var sb strings.Builder
	d.render(&sb)
	return sb.String()
}

func (d *Document) render(w io.Writer) {
	for r := range d.Walk() {
		io.WriteString(w, r.String())
		io.WriteString(w, "\n")
	}
}

func (d *Document) lookup(xref string, tag Tag) (Record, bool) {
	r, ok := d.Record(xref)
	if !ok || r.Tag != tag {
		return Record{}, false
	}
	return r, true
}

func walk(l *List) iter.Seq[Record] {
	return func(yield func(Record) bool) {
		var visit func(*List) bool
		visit = func(l *List) bool {
			for _, r := range l.All() {
				if !yield(r) || !visit(r.Children) {
					return false
				}
			}
			return true
		}
		visit(l)
	}
}
