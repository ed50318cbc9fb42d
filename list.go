// Indexed record collection.
//
// List stores records by value in document order and keeps two secondary
// structures in lockstep with that sequence:
//
//   - tags: for each tag, the ascending positions of the records carrying
//     it. Buckets hold positions rather than copies, so the two views
//     cannot diverge. A bucket is deleted as soon as it would be empty.
//   - maxID: for each tag, the highest numeric id seen under it. NextID
//     mints identifiers from it. It only grows.
//
// Invariants, checked by Verify:
//  1. Every record appears in exactly the bucket for its tag.
//  2. No bucket is empty.
//  3. maxID[tag] >= Num() of every record filed under tag with Num() >= 0.
//  4. The bucket sizes sum to Len().
//
// Insert and RemoveAt shift the positions stored after the affected slot,
// which costs O(n) on top of the slice move. Finding a tag's bucket is
// O(1); lookup by id is a linear scan.
//
// A List is not safe for concurrent use. Read methods are safe on a nil
// *List and behave as on an empty one.
package gedcom

import (
	"fmt"
	"iter"
	"slices"
	"strings"
)

// List is an ordered collection of records indexed by tag.
type List struct {
	records []Record
	tags    map[Tag][]int
	maxID   map[Tag]int
	filter  *bloom
}

// NewList returns an empty list.
func NewList() *List {
	return &List{
		tags:  make(map[Tag][]int),
		maxID: make(map[Tag]int),
	}
}

// Len returns the number of records.
func (l *List) Len() int {
	if l == nil {
		return 0
	}
	return len(l.records)
}

// Add appends a record and files it under its tag.
func (l *List) Add(r Record) {
	l.init()
	pos := len(l.records)
	l.records = append(l.records, r)
	l.file(pos, r)
	l.track(r)
}

// Insert places a record at pos, shifting later records up by one.
// pos may equal Len, which appends.
func (l *List) Insert(pos int, r Record) error {
	l.init()
	if pos < 0 || pos > len(l.records) {
		return outOfRange("insert", pos, len(l.records))
	}
	l.shift(pos, 1)
	l.records = slices.Insert(l.records, pos, r)
	l.file(pos, r)
	l.track(r)
	return nil
}

// Set replaces the record at pos. The old record leaves its bucket before
// the new one is filed, so replacing a record with one under a different
// tag never leaves a stale entry behind. maxID is raised for the new tag
// if needed and never lowered for the old one.
func (l *List) Set(pos int, r Record) error {
	if pos < 0 || pos >= l.Len() {
		return outOfRange("set", pos, l.Len())
	}
	if err := l.unfile(pos, l.records[pos].Tag); err != nil {
		return fmt.Errorf("set: %w", err)
	}
	l.records[pos] = r
	l.file(pos, r)
	l.track(r)
	return nil
}

// RemoveAt deletes the record at pos, shifting later records down by one.
func (l *List) RemoveAt(pos int) error {
	if pos < 0 || pos >= l.Len() {
		return outOfRange("remove", pos, l.Len())
	}
	if err := l.unfile(pos, l.records[pos].Tag); err != nil {
		return fmt.Errorf("remove: %w", err)
	}
	l.records = slices.Delete(l.records, pos, pos+1)
	l.shift(pos+1, -1)
	return nil
}

// Remove deletes the first record Equal to r. It returns ErrNotFound if
// no such record exists.
func (l *List) Remove(r Record) error {
	pos := l.IndexOf(r)
	if pos < 0 {
		return fmt.Errorf("remove %q: %w", r.String(), ErrNotFound)
	}
	return l.RemoveAt(pos)
}

// Clear removes every record. The per-tag id counters are kept, so ids
// minted after Clear never repeat ids minted before it.
func (l *List) Clear() {
	if l == nil {
		return
	}
	l.records = nil
	clear(l.tags)
	l.filter = nil
}

// At returns the record at pos.
func (l *List) At(pos int) (Record, error) {
	if pos < 0 || pos >= l.Len() {
		return Record{}, outOfRange("at", pos, l.Len())
	}
	return l.records[pos], nil
}

// First returns the first record filed under tag, in document order.
func (l *List) First(tag Tag) (Record, bool) {
	if l == nil {
		return Record{}, false
	}
	bucket := l.tags[tag]
	if len(bucket) == 0 {
		return Record{}, false
	}
	return l.records[bucket[0]], true
}

// ByTag returns every record filed under tag, in document order. The
// result is empty, never nil, when there are none.
func (l *List) ByTag(tag Tag) []Record {
	if l == nil {
		return []Record{}
	}
	bucket := l.tags[tag]
	out := make([]Record, 0, len(bucket))
	for _, pos := range bucket {
		out = append(out, l.records[pos])
	}
	return out
}

// ByTags returns every record whose tag is in set, in document order.
func (l *List) ByTags(set TagSet) []Record {
	out := []Record{}
	if l == nil {
		return out
	}
	for _, r := range l.records {
		if set.Has(r.Tag) {
			out = append(out, r)
		}
	}
	return out
}

// Count returns the number of records filed under tag.
func (l *List) Count(tag Tag) int {
	if l == nil {
		return 0
	}
	return len(l.tags[tag])
}

// Tags returns the tags present in the list, in registry order.
func (l *List) Tags() []Tag {
	if l == nil {
		return nil
	}
	out := make([]Tag, 0, len(l.tags))
	for t := range l.tags {
		out = append(out, t)
	}
	slices.Sort(out)
	return out
}

// Data returns the data of the first record under tag, or "".
func (l *List) Data(tag Tag) string {
	r, _ := l.First(tag)
	return r.Data
}

// XRef returns the cross-reference id of the first record under tag, or "".
func (l *List) XRef(tag Tag) string {
	r, _ := l.First(tag)
	return r.XRef
}

// XRefs returns the cross-reference id of every record under tag, in order.
func (l *List) XRefs(tag Tag) []string {
	records := l.ByTag(tag)
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r.XRef
	}
	return out
}

// NextID returns one more than the highest numeric id seen under tag, or 1
// if the tag has never carried one. It does not reserve the id.
func (l *List) NextID(tag Tag) int {
	if l == nil {
		return 1
	}
	if n, ok := l.maxID[tag]; ok {
		return n + 1
	}
	return 1
}

// IndexOfID returns the position of the first record whose ID equals id,
// or -1. This is a linear scan.
func (l *List) IndexOfID(id string) int {
	if l == nil {
		return -1
	}
	for i := range l.records {
		if l.records[i].ID == id {
			return i
		}
	}
	return -1
}

// ByID returns the first record whose ID equals id.
func (l *List) ByID(id string) (Record, bool) {
	pos := l.IndexOfID(id)
	if pos < 0 {
		return Record{}, false
	}
	return l.records[pos], true
}

// SetByID replaces the first record whose ID equals id.
func (l *List) SetByID(id string, r Record) error {
	pos := l.IndexOfID(id)
	if pos < 0 {
		return fmt.Errorf("set %q: %w", id, ErrNotFound)
	}
	return l.Set(pos, r)
}

// IndexOf returns the position of the first record Equal to r, or -1.
func (l *List) IndexOf(r Record) int {
	if l.Len() == 0 {
		return -1
	}
	if l.filter != nil && !l.filter.Contains(r.key()) {
		return -1
	}
	for i := range l.records {
		if l.records[i].Equal(r) {
			return i
		}
	}
	return -1
}

// Contains reports whether a record Equal to r is present.
func (l *List) Contains(r Record) bool {
	return l.IndexOf(r) >= 0
}

// All yields position and record in document order. The list must not be
// mutated during iteration.
func (l *List) All() iter.Seq2[int, Record] {
	return func(yield func(int, Record) bool) {
		if l == nil {
			return
		}
		for i, r := range l.records {
			if !yield(i, r) {
				return
			}
		}
	}
}

// Records returns a copy of the primary sequence.
func (l *List) Records() []Record {
	if l == nil {
		return nil
	}
	return slices.Clone(l.records)
}

// AddRange appends every record of other, in order.
func (l *List) AddRange(other *List) {
	for _, r := range other.All() {
		l.Add(r)
	}
}

// Clone returns a list with the same records and id counters. Records are
// copied by value; their Children lists are shared.
func (l *List) Clone() *List {
	c := NewList()
	if l == nil {
		return c
	}
	c.records = slices.Clone(l.records)
	for t, n := range l.maxID {
		c.maxID[t] = n
	}
	c.Reindex()
	return c
}

// Reindex rebuilds the tag index and membership filter from the primary
// sequence. Id counters are raised to cover every record but never
// lowered. Call it after bulk-loading records into the arena.
func (l *List) Reindex() {
	l.init()
	clear(l.tags)
	l.filter = nil
	for pos, r := range l.records {
		l.file(pos, r)
	}
	if len(l.records) >= bloomThreshold {
		l.rebuildFilter(2 * len(l.records))
	}
}

// Verify checks the index invariants and returns an error wrapping
// ErrInvariant describing the first violation found.
func (l *List) Verify() error {
	if l == nil {
		return nil
	}
	total := 0
	for tag, bucket := range l.tags {
		if len(bucket) == 0 {
			return fmt.Errorf("%w: empty bucket for %s", ErrInvariant, tag)
		}
		for i, pos := range bucket {
			if pos < 0 || pos >= len(l.records) {
				return fmt.Errorf("%w: %s bucket holds position %d of %d", ErrInvariant, tag, pos, len(l.records))
			}
			if i > 0 && bucket[i-1] >= pos {
				return fmt.Errorf("%w: %s bucket out of order at %d", ErrInvariant, tag, i)
			}
			if got := l.records[pos].Tag; got != tag {
				return fmt.Errorf("%w: %s bucket holds %s record at %d", ErrInvariant, tag, got, pos)
			}
		}
		total += len(bucket)
	}
	if total != len(l.records) {
		return fmt.Errorf("%w: %d indexed, %d records", ErrInvariant, total, len(l.records))
	}
	for pos, r := range l.records {
		n := r.Num()
		if n < 0 {
			continue
		}
		if m, ok := l.maxID[r.Tag]; !ok || m < n {
			return fmt.Errorf("%w: max id for %s is %d, record %d has %d", ErrInvariant, r.Tag, m, pos, n)
		}
	}
	return nil
}

// String renders each record on its own line, in document order.
func (l *List) String() string {
	var sb strings.Builder
	for _, r := range l.All() {
		sb.WriteString(r.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}

// init allocates the maps of a zero-value List.
func (l *List) init() {
	if l.tags == nil {
		l.tags = make(map[Tag][]int)
	}
	if l.maxID == nil {
		l.maxID = make(map[Tag]int)
	}
}

// file records pos in the bucket for r.Tag, keeping the bucket sorted,
// and raises the tag's max id.
func (l *List) file(pos int, r Record) {
	bucket := l.tags[r.Tag]
	i, _ := slices.BinarySearch(bucket, pos)
	l.tags[r.Tag] = slices.Insert(bucket, i, pos)

	if n := r.Num(); n > -1 {
		if m, ok := l.maxID[r.Tag]; !ok || n > m {
			l.maxID[r.Tag] = n
		}
	}
}

// unfile removes pos from the bucket for tag, deleting the bucket when it
// empties.
func (l *List) unfile(pos int, tag Tag) error {
	bucket, ok := l.tags[tag]
	if !ok {
		return fmt.Errorf("%w: no bucket for %s", ErrInvariant, tag)
	}
	i, found := slices.BinarySearch(bucket, pos)
	if !found {
		return fmt.Errorf("%w: position %d missing from %s bucket", ErrInvariant, pos, tag)
	}
	bucket = slices.Delete(bucket, i, i+1)
	if len(bucket) == 0 {
		delete(l.tags, tag)
		return nil
	}
	l.tags[tag] = bucket
	return nil
}

// shift adds delta to every stored position >= from.
func (l *List) shift(from, delta int) {
	for _, bucket := range l.tags {
		i, _ := slices.BinarySearch(bucket, from)
		for ; i < len(bucket); i++ {
			bucket[i] += delta
		}
	}
}

// track adds r to the membership filter, building or growing the filter
// as the list passes its capacity.
func (l *List) track(r Record) {
	switch {
	case l.filter == nil:
		if len(l.records) >= bloomThreshold {
			l.rebuildFilter(2 * len(l.records))
		}
	case l.filter.Full():
		l.rebuildFilter(2 * len(l.records))
	default:
		l.filter.Add(r.key())
	}
}

func (l *List) rebuildFilter(capacity int) {
	l.filter = newBloom(capacity)
	for _, r := range l.records {
		l.filter.Add(r.key())
	}
}
