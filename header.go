// File header (HEAD).
package gedcom

// Header is a view over the HEAD record.
type Header struct {
	Structure
}

// System returns the approved system id of the producing software.
func (h Header) System() string { return h.Value(TagSOUR) }

// Version returns GEDC.VERS, the GEDCOM version the file claims.
func (h Header) Version() string {
	gedc, ok := h.record.Children.First(TagGEDC)
	if !ok {
		return ""
	}
	return gedc.Children.Data(TagVERS)
}

// Charset returns CHAR as declared. It is reported, not acted on.
func (h Header) Charset() string { return h.Value(TagCHAR) }

// Submitter returns the pointer to the SUBM record.
func (h Header) Submitter() string { return h.Value(TagSUBM) }

// Date returns the transmission date.
func (h Header) Date() string { return h.Value(TagDATE) }

// File returns the declared file name.
func (h Header) File() string { return h.Value(TagFILE) }
