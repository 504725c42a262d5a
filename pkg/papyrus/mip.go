package papyrus

import "encoding/binary"

const (
	mipDimsOffset = 8  // width/height follow an 8-byte preamble
	mipMinHeader  = 16 // preamble + two uint32 dimension fields
)

// TextureHeader holds the dimensions read from a .mip header.
type TextureHeader struct {
	Width  uint32
	Height uint32
}

// ReadTextureHeader parses the header of a .mip texture file. Width and
// height sit at fixed little-endian offsets near the start; pixel data
// follows and is not touched.
func ReadTextureHeader(name string, data []byte) (*TextureHeader, error) {
	if len(data) < mipMinHeader {
		return nil, parseErr(name, len(data), "header truncated: %d bytes, need %d", len(data), mipMinHeader)
	}

	return &TextureHeader{
		Width:  binary.LittleEndian.Uint32(data[mipDimsOffset:]),
		Height: binary.LittleEndian.Uint32(data[mipDimsOffset+4:]),
	}, nil
}
