// Record: one GEDCOM line.
//
// A Record is a plain value. Identity is value based (see Equal) so that
// copies held by different lists compare equal. The Children list is the
// only reference field; it is shared between copies of the same record and
// is not part of identity.
package gedcom

import (
	"io"
	"math"
	"strconv"
	"strings"
)

// Record is one line of a GEDCOM file together with its children.
type Record struct {
	Level    int    // Nesting depth, 0 for top-level records
	XRef     string // Cross-reference id such as @I1@, empty if not a target
	Tag      Tag    // Registry tag, TagUnknown if not recognised
	Name     string // Raw tag text as read; may be empty for known tags
	Data     string // Line payload, possibly empty
	ID       string // Cross-reference id for top-level records, minted per tag otherwise
	Children *List  // Records at Level+1 nested under this one
}

// NewRecord returns a record with an empty child list. The ID is set to
// xref; callers building nested records assign IDs via List.NextID.
func NewRecord(level int, xref string, tag Tag, data string) Record {
	return Record{
		Level:    level,
		XRef:     xref,
		Tag:      tag,
		Name:     tag.String(),
		Data:     data,
		ID:       xref,
		Children: NewList(),
	}
}

// TagName returns the tag as written. Known tags fall back to the registry
// spelling when Name is empty or names a different tag.
func (r Record) TagName() string {
	if r.Name != "" && (!r.Tag.Known() || LookupTag(r.Name) == r.Tag) {
		return r.Name
	}
	return r.Tag.String()
}

// identityTag is the tag text that takes part in equality: the registry
// spelling for known tags, whatever was written for unknown ones.
func (r Record) identityTag() string {
	if r.Tag.Known() {
		return r.Tag.String()
	}
	return r.TagName()
}

// Equal reports whether two records have the same id, level, data, tag and
// cross-reference id. Children are ignored.
func (r Record) Equal(o Record) bool {
	return r.ID == o.ID &&
		r.Level == o.Level &&
		r.Data == o.Data &&
		r.Tag == o.Tag &&
		r.XRef == o.XRef &&
		r.identityTag() == o.identityTag()
}

// Num returns the numeric component of the record's ID, or -1 if it has
// none. "@I12@" and "12" both yield 12.
func (r Record) Num() int {
	return numeric(r.ID)
}

// String renders the record in GEDCOM line form: level [xref] tag [data].
func (r Record) String() string {
	var sb strings.Builder
	sb.WriteString(strconv.Itoa(r.Level))
	if r.XRef != "" {
		sb.WriteByte(' ')
		sb.WriteString(r.XRef)
	}
	sb.WriteByte(' ')
	sb.WriteString(r.TagName())
	if r.Data != "" {
		sb.WriteByte(' ')
		sb.WriteString(r.Data)
	}
	return sb.String()
}

// Fingerprint returns a 16 hex character hash of the identity fields using
// the given algorithm (AlgXXHash3, AlgFNV1a or AlgBlake2b).
func (r Record) Fingerprint(alg int) string {
	return digest(alg, r.writeKey)
}

// key joins the identity fields with NUL separators. Records that are
// Equal always produce the same key.
func (r Record) key() string {
	var sb strings.Builder
	sb.Grow(len(r.ID) + len(r.XRef) + len(r.Data) + 16)
	r.writeKey(&sb)
	return sb.String()
}

func (r Record) writeKey(w io.Writer) {
	for i, field := range [...]string{r.ID, strconv.Itoa(r.Level), r.identityTag(), r.XRef, r.Data} {
		if i > 0 {
			io.WriteString(w, "\x00")
		}
		io.WriteString(w, field)
	}
}

// numeric extracts the digits following an optional alphabetic prefix,
// ignoring @ delimiters. Returns -1 when no digits follow the prefix or
// anything other than digits trails them.
func numeric(id string) int {
	s := strings.Trim(id, "@")
	i := 0
	for i < len(s) && (s[i] < '0' || s[i] > '9') {
		i++
	}
	if i == len(s) {
		return -1
	}
	// MaxInt is refused so that NextID can always answer n+1.
	n, err := strconv.Atoi(s[i:])
	if err != nil || n < 0 || n == math.MaxInt {
		return -1
	}
	return n
}
