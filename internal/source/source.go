// Package source models where a page image comes from: a file path, an
// in-memory buffer or a base64 data URI. The kind is decided once when the
// source is created and never re-sniffed afterwards.
package source

import (
	"encoding/base64"
	"errors"
	"fmt"
	"os"
	"strings"
)

// Sentinel errors for image sources.
var (
	ErrInvalidDataURI = errors.New("invalid data URI")
	ErrEmptySource    = errors.New("image source is empty")
	ErrReadImage      = errors.New("failed to read image file")
)

// dataURIPrefix marks a string as an inline image.
const dataURIPrefix = "data:image"

// Kind identifies the variant held by a Source.
type Kind int

const (
	KindPath Kind = iota
	KindBytes
	KindDataURI
)

func (k Kind) String() string {
	switch k {
	case KindPath:
		return "path"
	case KindBytes:
		return "bytes"
	case KindDataURI:
		return "data-uri"
	default:
		return "unknown"
	}
}

// Source is one page image. The zero value is not usable; build one with
// FromPath, FromBytes, FromDataURI or Parse.
type Source struct {
	kind Kind
	path string
	data []byte
	uri  string
}

// FromPath returns a source read from the file system.
func FromPath(path string) Source {
	return Source{kind: KindPath, path: path}
}

// FromBytes returns a source backed by an encoded image buffer.
func FromBytes(data []byte) Source {
	return Source{kind: KindBytes, data: data}
}

// FromDataURI returns a source holding a base64 data URI
// such as "data:image/png;base64,iVBOR...".
func FromDataURI(uri string) Source {
	return Source{kind: KindDataURI, uri: uri}
}

// Parse classifies a string argument: strings starting with "data:image"
// are data URIs, anything else is a path.
func Parse(s string) Source {
	if strings.HasPrefix(s, dataURIPrefix) {
		return FromDataURI(s)
	}
	return FromPath(s)
}

// Kind reports which variant the source holds.
func (s Source) Kind() Kind { return s.kind }

// Path returns the file path for path sources and "" otherwise.
func (s Source) Path() string { return s.path }

// String describes the source for logs and error messages without dumping
// inline image data.
func (s Source) String() string {
	switch s.kind {
	case KindPath:
		return s.path
	case KindBytes:
		return fmt.Sprintf("<%d bytes>", len(s.data))
	case KindDataURI:
		head, _, _ := strings.Cut(s.uri, ",")
		return head + ",..."
	default:
		return "<invalid>"
	}
}

// Bytes resolves the source to encoded image bytes.
// Data URIs are base64-decoded; paths are read from disk; buffers are
// returned as is.
func (s Source) Bytes() ([]byte, error) {
	switch s.kind {
	case KindPath:
		if s.path == "" {
			return nil, ErrEmptySource
		}
		data, err := os.ReadFile(s.path) // #nosec G304 -- user-provided path
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrReadImage, err)
		}
		return data, nil
	case KindBytes:
		if len(s.data) == 0 {
			return nil, ErrEmptySource
		}
		return s.data, nil
	case KindDataURI:
		return decodeDataURI(s.uri)
	default:
		return nil, ErrEmptySource
	}
}

// decodeDataURI extracts the payload after ";base64,".
// Standard and unpadded encodings are both accepted.
func decodeDataURI(uri string) ([]byte, error) {
	_, payload, ok := strings.Cut(uri, ";base64,")
	if !ok {
		return nil, fmt.Errorf("%w: missing ;base64, marker", ErrInvalidDataURI)
	}
	payload = strings.TrimSpace(payload)
	if payload == "" {
		return nil, fmt.Errorf("%w: empty payload", ErrInvalidDataURI)
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		var rawErr error
		data, rawErr = base64.RawStdEncoding.DecodeString(strings.TrimRight(payload, "="))
		if rawErr != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidDataURI, err)
		}
	}
	return data, nil
}
