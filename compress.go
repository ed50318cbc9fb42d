// Compressed snapshots of record lists.
//
// Snapshot encodes a list as JSON, compresses it with Zstd, then
// Ascii85-encodes the result so the snapshot is a printable, newline-free
// string that can be stored in a text column or a JSONL line unescaped.
package gedcom

import (
	"encoding/ascii85"
	"fmt"

	"github.com/klauspost/compress/zstd"
)

// Shared encoder/decoder; both are documented as safe for concurrent use
// and are expensive to construct.
var (
	zstdEncoder, _ = zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	zstdDecoder, _ = zstd.NewReader(nil)
)

// Snapshot returns a compressed, printable encoding of the list and all
// nested children. An empty list yields a valid snapshot, not "".
func (l *List) Snapshot() (string, error) {
	data, err := l.MarshalJSON()
	if err != nil {
		return "", fmt.Errorf("snapshot: %w", err)
	}
	return pack(data), nil
}

// Restore decodes a snapshot produced by Snapshot into a new list.
func Restore(snapshot string) (*List, error) {
	data, err := unpack(snapshot)
	if err != nil {
		return nil, fmt.Errorf("restore: %w", err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("restore: %w: empty", ErrCorruptSnapshot)
	}
	l := NewList()
	if err := l.UnmarshalJSON(data); err != nil {
		return nil, fmt.Errorf("restore: %w", err)
	}
	return l, nil
}

// pack zstd-compresses data and ascii85-encodes the frame.
func pack(data []byte) string {
	if len(data) == 0 {
		return ""
	}
	frame := zstdEncoder.EncodeAll(data, nil)
	out := make([]byte, ascii85.MaxEncodedLen(len(frame)))
	return string(out[:ascii85.Encode(out, frame)])
}

// unpack reverses pack. Each 5 characters decode to at most 4 bytes and
// the 'z' shorthand expands 1 to 4, so 4 bytes per character always fits.
func unpack(snapshot string) ([]byte, error) {
	if snapshot == "" {
		return nil, nil
	}
	frame := make([]byte, 4*len(snapshot))
	n, _, err := ascii85.Decode(frame, []byte(snapshot), true)
	if err != nil {
		return nil, fmt.Errorf("%w: ascii85: %w", ErrDecompress, err)
	}
	data, err := zstdDecoder.DecodeAll(frame[:n], nil)
	if err != nil {
		return nil, fmt.Errorf("%w: zstd: %w", ErrDecompress, err)
	}
	return data, nil
}
