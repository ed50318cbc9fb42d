package gedcom

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestPackRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"simple text", []byte("0 HEAD\n1 CHAR UTF-8\n")},
		{"single byte", []byte{0x42}},
		{"binary data", []byte{0x00, 0x01, 0xff, 0xfe, 0x80, 0x7f}},
		{"unicode", []byte("1 PLAC Zürich, Schweiz")},
		{"json", []byte(`[{"_lv":0,"_t":"HEAD"}]`)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decoded, err := unpack(pack(tt.data))
			if err != nil {
				t.Fatalf("unpack: %v", err)
			}
			if !bytes.Equal(decoded, tt.data) {
				t.Errorf("round trip failed: got %v, want %v", decoded, tt.data)
			}
		})
	}
}

func TestPackEmpty(t *testing.T) {
	if got := pack(nil); got != "" {
		t.Errorf("pack(empty) = %q, want empty string", got)
	}
	out, err := unpack("")
	if err != nil || out != nil {
		t.Errorf("unpack(empty) = %v, %v", out, err)
	}
}

// TestPackPrintable verifies the encoding has no newlines, so a
// snapshot can sit on a single line of a line-oriented file.
func TestPackPrintable(t *testing.T) {
	encoded := pack([]byte(strings.Repeat("1 NOTE line\n", 500)))
	if strings.ContainsAny(encoded, "\n\r") {
		t.Error("encoded snapshot contains a newline")
	}
}

func TestUnpackInvalid(t *testing.T) {
	tests := []struct {
		name    string
		encoded string
	}{
		{"not ascii85", "~~~~"},
		{"valid ascii85 not zstd", compressRaw([]byte("plain text"))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := unpack(tt.encoded)
			if !errors.Is(err, ErrDecompress) {
				t.Errorf("unpack error = %v, want ErrDecompress", err)
			}
		})
	}
}
