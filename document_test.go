package gedcom

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"testing"
)

func writeSample(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "family.ged"), []byte(sample), 0644); err != nil {
		t.Fatal(err)
	}
	return dir
}

func TestOpen(t *testing.T) {
	dir := writeSample(t)
	doc, err := Open(dir, "family.ged", Config{Strict: true})
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if doc.Records().Len() != 8 {
		t.Errorf("Len = %d, want 8", doc.Records().Len())
	}
	if doc.String() != sample {
		t.Error("opened document does not render back to the file")
	}
}

func TestOpenMissing(t *testing.T) {
	_, err := Open(t.TempDir(), "absent.ged", Config{})
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("error = %v, want fs.ErrNotExist", err)
	}

	_, err = Open(filepath.Join(t.TempDir(), "nodir"), "x.ged", Config{})
	if err == nil {
		t.Error("Open on a missing directory succeeded")
	}
}

func TestOpenEscapeRejected(t *testing.T) {
	dir := writeSample(t)
	sub := filepath.Join(dir, "sub")
	if err := os.Mkdir(sub, 0755); err != nil {
		t.Fatal(err)
	}
	if _, err := Open(sub, "../family.ged", Config{}); err == nil {
		t.Error("Open escaped its directory")
	}
}

func TestOpenStrictFailure(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "bad.ged"), []byte("0 HEAD\n?? junk\n"), 0644); err != nil {
		t.Fatal(err)
	}
	_, err := Open(dir, "bad.ged", Config{Strict: true})
	var le *LineError
	if !errors.As(err, &le) || le.Line != 2 {
		t.Errorf("error = %v, want LineError on line 2", err)
	}
}

func TestDocumentLookups(t *testing.T) {
	doc := parseSample(t)

	if _, ok := doc.Record("@U1@"); !ok {
		t.Error("Record(@U1@) not found")
	}
	if _, ok := doc.Record("@X9@"); ok {
		t.Error("Record(@X9@) found")
	}
	// HEAD and TRLR carry minted IDs, not cross-reference ids.
	for _, id := range []string{"1", ""} {
		if r, ok := doc.Record(id); ok {
			t.Errorf("Record(%q) = %q", id, r.String())
		}
	}
	if _, ok := doc.Individual("1"); ok {
		t.Error("Individual(\"1\") found")
	}
	// Wrong kind of record.
	if _, ok := doc.Individual("@F1@"); ok {
		t.Error("Individual(@F1@) found")
	}
	if _, ok := doc.Family("@I1@"); ok {
		t.Error("Family(@I1@) found")
	}
	if _, ok := doc.Source("@I1@"); ok {
		t.Error("Source(@I1@) found")
	}

	if n := len(doc.Individuals()); n != 3 {
		t.Errorf("Individuals = %d", n)
	}
	if n := len(doc.Families()); n != 1 {
		t.Errorf("Families = %d", n)
	}
	if n := len(doc.Sources()); n != 1 {
		t.Errorf("Sources = %d", n)
	}
	var ids []string
	for _, i := range doc.Individuals() {
		ids = append(ids, i.XRef())
	}
	if !slices.Equal(ids, []string{"@I1@", "@I2@", "@I3@"}) {
		t.Errorf("Individuals order = %v", ids)
	}
}

func TestWalk(t *testing.T) {
	doc := parseSample(t)

	var count, maxLevel int
	prev := -1
	for r := range doc.Walk() {
		if r.Level > prev+1 {
			t.Fatalf("level jumped from %d to %d at %q", prev, r.Level, r.String())
		}
		prev = r.Level
		maxLevel = max(maxLevel, r.Level)
		count++
	}
	if count != 61 {
		t.Errorf("Walk yielded %d records, want 61", count)
	}
	if maxLevel != 3 {
		t.Errorf("max level = %d, want 3", maxLevel)
	}

	n := 0
	for range doc.Walk() {
		n++
		if n == 5 {
			break
		}
	}
	if n != 5 {
		t.Errorf("break stopped at %d", n)
	}
}

func TestChecksum(t *testing.T) {
	a := parseSample(t)
	b := parseSample(t)
	if a.Checksum() != b.Checksum() || len(a.Checksum()) != 16 {
		t.Errorf("checksums %q %q", a.Checksum(), b.Checksum())
	}

	fnv, err := ParseString(sample, Config{HashAlgorithm: AlgFNV1a})
	if err != nil {
		t.Fatal(err)
	}
	if fnv.Checksum() == a.Checksum() {
		t.Error("FNV1a checksum equals xxHash3 checksum")
	}

	indi, _ := b.Records().ByID("@I2@")
	indi.Children.Add(NewRecord(1, "", TagNOTE, "edited"))
	if a.Checksum() == b.Checksum() {
		t.Error("checksum unchanged after edit")
	}
}

func TestNewDocument(t *testing.T) {
	doc := NewDocument(Config{})
	if doc.Records().Len() != 0 || doc.String() != "" {
		t.Fatal("new document not empty")
	}
	if _, ok := doc.Header(); ok {
		t.Error("empty document has a header")
	}

	head := NewRecord(0, "", TagHEAD, "")
	head.Children.Add(NewRecord(1, "", TagCHAR, "UTF-8"))
	doc.Records().Add(head)
	doc.Records().Add(NewRecord(0, "@I1@", TagINDI, ""))
	doc.Records().Add(NewRecord(0, "", TagTRLR, ""))

	want := "0 HEAD\n1 CHAR UTF-8\n0 @I1@ INDI\n0 TRLR\n"
	if doc.String() != want {
		t.Errorf("String = %q, want %q", doc.String(), want)
	}
	if _, ok := doc.Individual("@I1@"); !ok {
		t.Error("Individual(@I1@) not found")
	}
}
