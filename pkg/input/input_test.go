package input

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/DataDog/zstd"
)

func TestSplitLines(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{"empty string", "", nil},
		{"single line no newline", "alpha", []string{"alpha"}},
		{"single line with newline", "alpha\n", []string{"alpha"}},
		{"no trailing newline", "alpha\nbeta\ngamma", []string{"alpha", "beta", "gamma"}},
		{"trailing newline", "alpha\nbeta\n", []string{"alpha", "beta"}},
		{"blank line in middle", "alpha\n\nbeta", []string{"alpha", "", "beta"}},
		{"only newline", "\n", []string{""}},
		{"crlf endings", "alpha\r\nbeta\r\n", []string{"alpha", "beta"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitLines(tt.text)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("SplitLines(%q) = %#v, want %#v", tt.text, got, tt.want)
			}
		})
	}
}

func TestParseEncoding(t *testing.T) {
	tests := []struct {
		in      string
		want    Encoding
		wantErr bool
	}{
		{"utf-8", EncodingUTF8, false},
		{"windows-1251", EncodingWindows1251, false},
		{"latin-1", EncodingLatin1, false},
		{"", EncodingUTF8, false},
		{"utf-16", "", true},
	}

	for _, tt := range tests {
		got, err := ParseEncoding(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseEncoding(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseEncoding(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestReadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "input.txt")
	content := "alpha\nbeta\ngamma"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	got, err := ReadFile(path, EncodingUTF8)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if got != content {
		t.Errorf("ReadFile() = %q, want %q", got, content)
	}
}

func TestReadFile_Missing(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "nope.txt"), EncodingUTF8)
	if err == nil {
		t.Fatal("ReadFile() expected error for missing file")
	}

	var readErr *ReadError
	if !errors.As(err, &readErr) {
		t.Errorf("Expected *ReadError, got %T", err)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Expected wrapped os.ErrNotExist, got %v", err)
	}
}

func TestReadFile_InvalidUTF8(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.txt")
	if err := os.WriteFile(path, []byte{0xff, 0xfe, 0xfd}, 0644); err != nil {
		t.Fatal(err)
	}

	_, err := ReadFile(path, EncodingUTF8)
	if err == nil {
		t.Fatal("ReadFile() expected error for invalid UTF-8")
	}

	var readErr *ReadError
	if !errors.As(err, &readErr) {
		t.Errorf("Expected *ReadError, got %T", err)
	}
}

func TestReadFile_Windows1251(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cp1251.txt")
	// "Да" in windows-1251
	if err := os.WriteFile(path, []byte{0xc4, 0xe0}, 0644); err != nil {
		t.Fatal(err)
	}

	got, err := ReadFile(path, EncodingWindows1251)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if got != "Да" {
		t.Errorf("ReadFile() = %q, want %q", got, "Да")
	}
}

func TestReadFile_Latin1(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "latin1.txt")
	// "café" in latin-1
	if err := os.WriteFile(path, []byte{'c', 'a', 'f', 0xe9}, 0644); err != nil {
		t.Fatal(err)
	}

	got, err := ReadFile(path, EncodingLatin1)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if got != "café" {
		t.Errorf("ReadFile() = %q, want %q", got, "café")
	}
}

func TestReadFile_Zstd(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "input.txt.zst")

	content := "alpha\nbeta\ngamma"
	compressed, err := zstd.Compress(nil, []byte(content))
	if err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, compressed, 0644); err != nil {
		t.Fatal(err)
	}

	got, err := ReadFile(path, EncodingUTF8)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if got != content {
		t.Errorf("ReadFile() = %q, want %q", got, content)
	}
}

func TestReadFile_ZstdCorrupt(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.zst")
	if err := os.WriteFile(path, []byte("not zstd data"), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := ReadFile(path, EncodingUTF8)
	if err == nil {
		t.Fatal("ReadFile() expected error for corrupt zstd data")
	}

	var readErr *ReadError
	if !errors.As(err, &readErr) {
		t.Errorf("Expected *ReadError, got %T", err)
	}
}
