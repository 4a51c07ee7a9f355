package dictionary

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/klauspost/compress/gzip"
)

// FileFormat represents the encoding of a corpus file.
type FileFormat int

const (
	FormatUnknown FileFormat = iota
	FormatText               // Plain text
	FormatGzip               // Gzip-compressed plain text
)

// FormatInfo contains metadata about a corpus file format
type FormatInfo struct {
	Format      FileFormat
	Description string
	Extensions  []string
}

var supportedFormats = map[FileFormat]FormatInfo{
	FormatText: {
		Format:      FormatText,
		Description: "Plain Text Corpus",
		Extensions:  []string{".txt", ""},
	},
	FormatGzip: {
		Format:      FormatGzip,
		Description: "Gzip Compressed Corpus",
		Extensions:  []string{".gz"},
	},
}

func (f FileFormat) String() string {
	if info, ok := supportedFormats[f]; ok {
		return info.Description
	}
	return "Unknown"
}

// DetectFileFormat picks the format of a corpus file from its name.
// Anything that is not gzip is read as plain text.
func DetectFileFormat(filename string) FileFormat {
	if strings.ToLower(filepath.Ext(filename)) == ".gz" {
		return FormatGzip
	}
	return FormatText
}

// gzipFile closes both the decompressor and the underlying file.
type gzipFile struct {
	*gzip.Reader
	file *os.File
}

func (g *gzipFile) Close() error {
	err := g.Reader.Close()
	if ferr := g.file.Close(); err == nil {
		err = ferr
	}
	return err
}

// Open opens a corpus file for reading, decompressing it when needed.
// Errors from os.Open are returned unwrapped so callers can test them with errors.Is.
func Open(path string) (io.ReadCloser, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	format := DetectFileFormat(path)
	log.Debugf("Opening corpus %s as %s", path, format)

	if format != FormatGzip {
		return file, nil
	}

	zr, err := gzip.NewReader(file)
	if err != nil {
		file.Close()
		return nil, fmt.Errorf("failed to read gzip header of %s: %w", path, err)
	}
	return &gzipFile{Reader: zr, file: file}, nil
}
