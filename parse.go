// Line parser.
//
// Each GEDCOM line has the shape
//
//	level [@xref@] tag [data]
//
// Records nest under the closest preceding record one level up. The parser
// keeps a stack of child lists, one per open level, so each record is
// appended directly to its parent's List and indexed as it arrives.
//
// IDs are assigned here: a record with a cross-reference id uses it,
// anything else is numbered from its parent list's per-tag counter. The
// parser does not check the GEDCOM grammar; it only rejects lines it
// cannot split into level, tag and data.
package gedcom

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Parse reads GEDCOM text from r and returns the record tree. Malformed
// lines are skipped and logged unless cfg.Strict is set, in which case
// the first one is returned as a *LineError wrapping ErrMalformedLine.
func Parse(r io.Reader, cfg Config) (*Document, error) {
	cfg = cfg.withDefaults()
	log := cfg.Logger

	root := NewList()
	// stack[n] receives records at level n.
	stack := []*List{root}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, cfg.ReadBuffer), cfg.MaxLineSize)

	lineNo, skipped := 0, 0
	for scanner.Scan() {
		lineNo++
		text := strings.TrimSuffix(scanner.Text(), "\r")
		if lineNo == 1 {
			text = strings.TrimPrefix(text, "\ufeff")
		}
		text = strings.TrimLeft(text, " \t")
		if text == "" {
			continue
		}

		level, xref, name, data, err := parseLine(text)
		if err == nil && level >= len(stack) {
			err = fmt.Errorf("%w: level %d deeper than %d", ErrMalformedLine, level, len(stack)-1)
		}
		if err != nil {
			lerr := &LineError{Line: lineNo, Text: text, Err: err}
			if cfg.Strict {
				return nil, lerr
			}
			log.Warn("skipping line", "line", lineNo, "err", err)
			skipped++
			continue
		}

		parent := stack[level]
		tag := LookupTag(name)
		id := xref
		if id == "" {
			id = strconv.Itoa(parent.NextID(tag))
		}
		rec := Record{
			Level:    level,
			XRef:     xref,
			Tag:      tag,
			Name:     name,
			Data:     data,
			ID:       id,
			Children: NewList(),
		}
		parent.Add(rec)
		stack = append(stack[:level+1], rec.Children)
	}

	if err := scanner.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			return nil, &LineError{Line: lineNo + 1, Err: ErrLineTooLong}
		}
		return nil, fmt.Errorf("parse: %w", err)
	}

	log.Debug("parsed", "lines", lineNo, "records", root.Len(), "skipped", skipped)
	return &Document{records: root, config: cfg}, nil
}

// ParseString parses GEDCOM text held in memory.
func ParseString(s string, cfg Config) (*Document, error) {
	return Parse(strings.NewReader(s), cfg)
}

// parseLine splits one non-empty line into its fields. Data is everything
// after the single space that follows the tag, kept verbatim.
func parseLine(text string) (level int, xref, tag, data string, err error) {
	tok, rest := cut(text)
	level, err = parseLevel(tok)
	if err != nil {
		return 0, "", "", "", err
	}

	rest = strings.TrimLeft(rest, " ")
	if strings.HasPrefix(rest, "@") {
		xref, rest = cut(rest)
		if len(xref) < 3 || !strings.HasSuffix(xref, "@") {
			return 0, "", "", "", fmt.Errorf("%w: bad cross-reference %q", ErrMalformedLine, xref)
		}
		rest = strings.TrimLeft(rest, " ")
	}

	tag, data = cut(rest)
	if tag == "" {
		return 0, "", "", "", fmt.Errorf("%w: missing tag", ErrMalformedLine)
	}
	return level, xref, tag, data, nil
}

// parseLevel accepts only unsigned decimal digits.
func parseLevel(tok string) (int, error) {
	if tok == "" {
		return 0, fmt.Errorf("%w: missing level", ErrMalformedLine)
	}
	for i := 0; i < len(tok); i++ {
		if tok[i] < '0' || tok[i] > '9' {
			return 0, fmt.Errorf("%w: bad level %q", ErrMalformedLine, tok)
		}
	}
	n, err := strconv.Atoi(tok)
	if err != nil {
		return 0, fmt.Errorf("%w: bad level %q", ErrMalformedLine, tok)
	}
	return n, nil
}

// cut splits s at the first space.
func cut(s string) (string, string) {
	before, after, _ := strings.Cut(s, " ")
	return before, after
}
