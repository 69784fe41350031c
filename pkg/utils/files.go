package utils

import (
	"archive/zip"
	"bytes"
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/bodgit/sevenzip"
	"github.com/google/brotli/go/cbrotli"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
	"github.com/thelolagemann/gbheader/pkg/log"
	"github.com/ulikunitz/xz"
)

type loadConfig struct {
	logger log.Logger
}

// LoadOpt configures LoadFile.
type LoadOpt func(c *loadConfig)

// WithLogger logs the decompression steps LoadFile takes to l.
func WithLogger(l log.Logger) LoadOpt {
	return func(c *loadConfig) {
		c.logger = l
	}
}

// LoadFile loads the given file and performs decompression if necessary.
// Archives yield their first regular file. Errors opening or reading the
// file itself are returned unchanged.
func LoadFile(filename string, opts ...LoadOpt) ([]byte, error) {
	c := &loadConfig{logger: log.NewNullLogger()}
	for _, opt := range opts {
		opt(c)
	}

	// read the file into a byte slice
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	ext := strings.ToLower(filepath.Ext(filename))
	c.logger.Debugf("loaded %s (%d bytes, ext %q)", filename, len(data), ext)

	data, err = Decompress(ext, data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	c.logger.Debugf("decoded %s to %d bytes", filename, len(data))

	return data, nil
}

// Decompress unpacks data according to the file extension ext. Unknown
// extensions, including .gb and .gbc, are returned as is.
func Decompress(ext string, data []byte) ([]byte, error) {
	r := bytes.NewReader(data)

	// try to assert the compression type from the file extension
	var decoder io.Reader
	switch ext {
	case ".gz":
		gz, err := gzip.NewReader(r)
		if err != nil {
			return nil, err
		}
		defer gz.Close()
		decoder = gz
	case ".xz":
		x, err := xz.NewReader(r)
		if err != nil {
			return nil, err
		}
		decoder = x
	case ".zst":
		z, err := zstd.NewReader(r)
		if err != nil {
			return nil, err
		}
		defer z.Close()
		decoder = z
	case ".lz4":
		decoder = lz4.NewReader(r)
	case ".br":
		br := cbrotli.NewReader(r)
		defer br.Close()
		decoder = br
	case ".zip":
		zipReader, err := zip.NewReader(r, int64(len(data)))
		if err != nil {
			return nil, err
		}
		f, err := firstZipFile(zipReader.File)
		if err != nil {
			return nil, err
		}
		rc, err := f.Open()
		if err != nil {
			return nil, err
		}
		defer rc.Close()
		decoder = rc
	case ".7z":
		szReader, err := sevenzip.NewReader(r, int64(len(data)))
		if err != nil {
			return nil, err
		}
		f, err := firstSevenZipFile(szReader.File)
		if err != nil {
			return nil, err
		}
		rc, err := f.Open()
		if err != nil {
			return nil, err
		}
		defer rc.Close()
		decoder = rc
	default:
		// return the data as is
		return data, nil
	}

	// read the decompressed data into a byte slice, one byte past the limit
	// tells an oversized image apart from one exactly at it
	out, err := io.ReadAll(io.LimitReader(decoder, MaxDecodedSize+1))
	if err != nil {
		return nil, err
	}
	if len(out) > MaxDecodedSize {
		return nil, fmt.Errorf("%w: more than %d bytes", ErrDecodedTooLarge, MaxDecodedSize)
	}
	return out, nil
}

// MaxDecodedSize bounds decompressed output. The largest ROM a header can
// declare is 8MB, the extra 1MB leaves room for trailing data on dumps.
const MaxDecodedSize = 9 * 1024 * 1024

var (
	ErrDecodedTooLarge = errors.New("decompressed image too large")

	errEmptyArchive = errors.New("archive contains no files")
)

func firstZipFile(files []*zip.File) (*zip.File, error) {
	for _, f := range files {
		if !f.FileInfo().IsDir() {
			return f, nil
		}
	}
	return nil, errEmptyArchive
}

func firstSevenZipFile(files []*sevenzip.File) (*sevenzip.File, error) {
	for _, f := range files {
		if !f.FileInfo().IsDir() {
			return f, nil
		}
	}
	return nil, errEmptyArchive
}
