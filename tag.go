// Tag registry.
//
// GEDCOM tags form a closed set, so they are represented as an enumeration
// and used directly as index keys. Anything outside the registry (including
// user-defined underscore tags) maps to TagUnknown; the raw text survives on
// the Record so that rendering and equality are unaffected.
package gedcom

import "strings"

// Tag identifies the semantic role of a record.
type Tag int

// Known GEDCOM 5.5 tags. TagUnknown is the zero value.
const (
	TagUnknown Tag = iota
	TagABBR
	TagADDR
	TagADR1
	TagADR2
	TagADOP
	TagAFN
	TagAGE
	TagAGNC
	TagALIA
	TagANCE
	TagANCI
	TagANUL
	TagASSO
	TagAUTH
	TagBAPL
	TagBAPM
	TagBARM
	TagBASM
	TagBIRT
	TagBLES
	TagBURI
	TagCALN
	TagCAST
	TagCAUS
	TagCENS
	TagCHAN
	TagCHAR
	TagCHIL
	TagCHR
	TagCHRA
	TagCITY
	TagCONC
	TagCONF
	TagCONL
	TagCONT
	TagCOPR
	TagCORP
	TagCREM
	TagCTRY
	TagDATA
	TagDATE
	TagDEAT
	TagDESC
	TagDESI
	TagDEST
	TagDIV
	TagDIVF
	TagDSCR
	TagEDUC
	TagEMAIL
	TagEMIG
	TagENDL
	TagENGA
	TagEVEN
	TagFACT
	TagFAM
	TagFAMC
	TagFAMF
	TagFAMS
	TagFAX
	TagFCOM
	TagFILE
	TagFORM
	TagGEDC
	TagGIVN
	TagGRAD
	TagHEAD
	TagHUSB
	TagIDNO
	TagIMMI
	TagINDI
	TagLANG
	TagLATI
	TagLONG
	TagMAP
	TagMARB
	TagMARC
	TagMARL
	TagMARR
	TagMARS
	TagMEDI
	TagNAME
	TagNATI
	TagNATU
	TagNCHI
	TagNICK
	TagNMR
	TagNOTE
	TagNPFX
	TagNSFX
	TagOBJE
	TagOCCU
	TagORDI
	TagORDN
	TagPAGE
	TagPEDI
	TagPHON
	TagPLAC
	TagPOST
	TagPROB
	TagPROP
	TagPUBL
	TagQUAY
	TagREFN
	TagRELA
	TagRELI
	TagREPO
	TagRESI
	TagRESN
	TagRETI
	TagRFN
	TagRIN
	TagROLE
	TagSEX
	TagSLGC
	TagSLGS
	TagSOUR
	TagSPFX
	TagSSN
	TagSTAE
	TagSTAT
	TagSUBM
	TagSUBN
	TagSURN
	TagTEMP
	TagTEXT
	TagTIME
	TagTITL
	TagTRLR
	TagTYPE
	TagVERS
	TagWIFE
	TagWILL
	TagWWW

	tagCount
)

var tagNames = [tagCount]string{
	"UNKNOWN",
	"ABBR", "ADDR", "ADR1", "ADR2", "ADOP", "AFN", "AGE", "AGNC", "ALIA",
	"ANCE", "ANCI", "ANUL", "ASSO", "AUTH", "BAPL", "BAPM", "BARM", "BASM",
	"BIRT", "BLES", "BURI", "CALN", "CAST", "CAUS", "CENS", "CHAN", "CHAR",
	"CHIL", "CHR", "CHRA", "CITY", "CONC", "CONF", "CONL", "CONT", "COPR",
	"CORP", "CREM", "CTRY", "DATA", "DATE", "DEAT", "DESC", "DESI", "DEST",
	"DIV", "DIVF", "DSCR", "EDUC", "EMAIL", "EMIG", "ENDL", "ENGA", "EVEN",
	"FACT", "FAM", "FAMC", "FAMF", "FAMS", "FAX", "FCOM", "FILE", "FORM",
	"GEDC", "GIVN", "GRAD", "HEAD", "HUSB", "IDNO", "IMMI", "INDI", "LANG",
	"LATI", "LONG", "MAP", "MARB", "MARC", "MARL", "MARR", "MARS", "MEDI",
	"NAME", "NATI", "NATU", "NCHI", "NICK", "NMR", "NOTE", "NPFX", "NSFX",
	"OBJE", "OCCU", "ORDI", "ORDN", "PAGE", "PEDI", "PHON", "PLAC", "POST",
	"PROB", "PROP", "PUBL", "QUAY", "REFN", "RELA", "RELI", "REPO", "RESI",
	"RESN", "RETI", "RFN", "RIN", "ROLE", "SEX", "SLGC", "SLGS", "SOUR",
	"SPFX", "SSN", "STAE", "STAT", "SUBM", "SUBN", "SURN", "TEMP", "TEXT",
	"TIME", "TITL", "TRLR", "TYPE", "VERS", "WIFE", "WILL", "WWW",
}

var tagLookup = func() map[string]Tag {
	m := make(map[string]Tag, tagCount)
	for t := TagUnknown + 1; t < tagCount; t++ {
		m[tagNames[t]] = t
	}
	return m
}()

// LookupTag maps tag text to its registry entry. Matching ignores case;
// unrecognised text returns TagUnknown.
func LookupTag(name string) Tag {
	if t, ok := tagLookup[name]; ok {
		return t
	}
	if t, ok := tagLookup[strings.ToUpper(name)]; ok {
		return t
	}
	return TagUnknown
}

// String returns the registry name, or "UNKNOWN" for tags outside it.
func (t Tag) String() string {
	if t < 0 || t >= tagCount {
		return tagNames[TagUnknown]
	}
	return tagNames[t]
}

// Known reports whether t is a registry tag.
func (t Tag) Known() bool {
	return t > TagUnknown && t < tagCount
}

// TagSet is a set of tags used for multi-tag filtering.
type TagSet map[Tag]struct{}

// Tags builds a TagSet from registry tags.
func Tags(tags ...Tag) TagSet {
	s := make(TagSet, len(tags))
	for _, t := range tags {
		s[t] = struct{}{}
	}
	return s
}

// Has reports whether t is in the set.
func (s TagSet) Has(t Tag) bool {
	_, ok := s[t]
	return ok
}
