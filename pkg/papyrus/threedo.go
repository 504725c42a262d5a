package papyrus

import (
	"encoding/binary"
	"strings"
	"unicode"
)

const (
	threedoCountsOffset = 8  // counts start after an 8-byte preamble
	threedoMinHeader    = 20 // preamble + three uint32 counts
	threedoNameSize     = 8  // fixed-width name field, null padded
)

// ModelHeader holds the reference tables extracted from a .3do header.
// MipRefs may contain duplicates; order follows the file.
type ModelHeader struct {
	MipRefs   []string // referenced textures, ".mip" extension appended
	ChildRefs []string // referenced nested models, ".3do" extension appended
	Invalid   []string // name fields rejected as garbage (embedded nulls, non-printable)
}

// ReadModelHeader parses the header of a .3do model file and returns the
// texture and nested-model references it declares.
//
// The layout is fixed: an 8-byte preamble, then three little-endian uint32
// counts (MIP, PMP, 3DO), then that many 8-byte null-padded name fields per
// table in the same order. PMP entries are skipped; the format carries them
// but nothing in a track resolves against them.
func ReadModelHeader(name string, data []byte) (*ModelHeader, error) {
	if len(data) < threedoMinHeader {
		return nil, parseErr(name, len(data), "header truncated: %d bytes, need %d", len(data), threedoMinHeader)
	}

	numMip := int(binary.LittleEndian.Uint32(data[threedoCountsOffset:]))
	numPmp := int(binary.LittleEndian.Uint32(data[threedoCountsOffset+4:]))
	num3do := int(binary.LittleEndian.Uint32(data[threedoCountsOffset+8:]))

	need := threedoMinHeader + (numMip+numPmp+num3do)*threedoNameSize
	if len(data) < need {
		return nil, parseErr(name, len(data), "name tables truncated: %d bytes, need %d", len(data), need)
	}

	hdr := &ModelHeader{}
	off := threedoMinHeader

	for i := 0; i < numMip; i++ {
		field := trimNameField(data[off : off+threedoNameSize])
		off += threedoNameSize
		if !validName(field) {
			hdr.Invalid = append(hdr.Invalid, field)
			continue
		}
		hdr.MipRefs = append(hdr.MipRefs, strings.ToLower(field)+".mip")
	}

	// PMP name table sits between the MIP and 3DO tables.
	off += numPmp * threedoNameSize

	for i := 0; i < num3do; i++ {
		field := trimNameField(data[off : off+threedoNameSize])
		off += threedoNameSize
		if !validName(field) {
			hdr.Invalid = append(hdr.Invalid, field)
			continue
		}
		hdr.ChildRefs = append(hdr.ChildRefs, strings.ToLower(field)+".3do")
	}

	return hdr, nil
}

// trimNameField strips trailing null padding from a fixed-width name field.
func trimNameField(b []byte) string {
	return strings.TrimRight(string(b), "\x00")
}

// validName rejects fields with embedded nulls or non-printable bytes,
// which show up in headers where a count overruns into geometry data.
func validName(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r == 0 || !unicode.IsPrint(r) {
			return false
		}
	}
	return true
}
