// Package input resolves pipeline input: it reads a source file, handles
// compression and text encoding, and splits the text into lines.
package input

import (
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/DataDog/zstd"
	"golang.org/x/text/encoding/charmap"
)

// Encoding identifies a supported input text encoding.
type Encoding string

const (
	EncodingUTF8        Encoding = "utf-8"
	EncodingWindows1251 Encoding = "windows-1251"
	EncodingLatin1      Encoding = "latin-1"
)

// ParseEncoding validates an encoding name from a flag or config file.
func ParseEncoding(s string) (Encoding, error) {
	switch Encoding(s) {
	case EncodingUTF8, EncodingWindows1251, EncodingLatin1:
		return Encoding(s), nil
	case "":
		return EncodingUTF8, nil
	default:
		return "", fmt.Errorf("unknown encoding %q (use utf-8, windows-1251, or latin-1)", s)
	}
}

// ReadError indicates that input could not be read or decoded. The run must
// abort before any processing when it occurs.
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("reading input file %s: %v", e.Path, e.Err)
}

func (e *ReadError) Unwrap() error {
	return e.Err
}

// ReadFile reads the full contents of path as text in the given encoding.
// Files with a .zst extension are decompressed first.
func ReadFile(path string, enc Encoding) (string, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- user-provided input path is expected
	if err != nil {
		return "", &ReadError{Path: path, Err: err}
	}

	if strings.HasSuffix(path, ".zst") {
		data, err = zstd.Decompress(nil, data)
		if err != nil {
			return "", &ReadError{Path: path, Err: fmt.Errorf("decompressing: %w", err)}
		}
	}

	text, err := decode(data, enc)
	if err != nil {
		return "", &ReadError{Path: path, Err: err}
	}

	return text, nil
}

// decode converts raw file bytes to a UTF-8 string.
func decode(data []byte, enc Encoding) (string, error) {
	switch enc {
	case EncodingWindows1251:
		decoded, err := charmap.Windows1251.NewDecoder().Bytes(data)
		if err != nil {
			return "", fmt.Errorf("decoding windows-1251: %w", err)
		}
		return string(decoded), nil
	case EncodingLatin1:
		decoded, err := charmap.ISO8859_1.NewDecoder().Bytes(data)
		if err != nil {
			return "", fmt.Errorf("decoding latin-1: %w", err)
		}
		return string(decoded), nil
	default:
		if !utf8.Valid(data) {
			return "", fmt.Errorf("file is not valid UTF-8 text")
		}
		return string(data), nil
	}
}

// SplitLines splits text on newlines. An empty string yields zero lines, a
// trailing newline does not produce an extra empty line, and a final
// unterminated line is included. CRLF line endings are tolerated.
func SplitLines(text string) []string {
	if text == "" {
		return nil
	}

	text = strings.TrimSuffix(text, "\n")
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}

	return lines
}
