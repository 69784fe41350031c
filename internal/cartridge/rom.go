package cartridge

import (
	"github.com/cespare/xxhash"
	"github.com/thelolagemann/gbheader/pkg/utils"
)

// Rom is a cartridge image whose header passed validation.
type Rom struct {
	path    string
	content []byte
	header  *Header
}

// New validates content read from path and wraps it as a Rom. The content
// is copied, so the caller may reuse its buffer.
func New(path string, content []byte) (*Rom, error) {
	if err := Validate(content); err != nil {
		return nil, err
	}
	header, err := ParseHeader(content)
	if err != nil {
		return nil, err
	}
	return &Rom{
		path:    path,
		content: append([]byte(nil), content...),
		header:  header,
	}, nil
}

// Load reads the file at path, unpacking it if compressed, and validates it.
// Errors from reading the file are returned unchanged.
func Load(path string, opts ...utils.LoadOpt) (*Rom, error) {
	content, err := utils.LoadFile(path, opts...)
	if err != nil {
		return nil, err
	}
	return New(path, content)
}

func (r *Rom) Path() string {
	return r.path
}

// Bytes returns a copy of the cartridge image.
func (r *Rom) Bytes() []byte {
	return append([]byte(nil), r.content...)
}

func (r *Rom) Len() int {
	return len(r.content)
}

func (r *Rom) Header() Header {
	return *r.header
}

// Title returns the title parsed from the header.
func (r *Rom) Title() string {
	return r.header.Title
}

// Digest returns the xxhash of the whole image, used to tell dumps apart.
func (r *Rom) Digest() uint64 {
	return xxhash.Sum64(r.content)
}

// SizeMatches reports whether the image is as large as its header declares.
func (r *Rom) SizeMatches() bool {
	return uint(len(r.content)) == r.header.ROMSize
}
