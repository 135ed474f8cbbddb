package grid

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	grids := [][][]int{
		{{0}},
		{{1, 1, 1}, {1, 1, 1}, {1, 1, 1}},
		{{0, 1, 2, 3, 4}},
		{{4}, {3}, {2}, {1}, {0}},
		{{0, 0, 0, 0}, {0, 1, 2, 0}, {0, 3, 1, 0}},
	}

	for _, rows := range grids {
		g, err := FromRows(rows)
		if err != nil {
			t.Fatalf("FromRows() failed: %v", err)
		}

		var buf bytes.Buffer
		if err := Encode(&buf, g); err != nil {
			t.Fatalf("Encode() failed: %v", err)
		}

		decoded, err := Decode(&buf)
		if err != nil {
			t.Fatalf("Decode() failed: %v", err)
		}
		if !g.Equal(decoded) {
			t.Errorf("round trip mismatch: %v != %v", rows, decoded.Rows())
		}
	}
}

func TestDecodeCompactJSON(t *testing.T) {
	g, err := Decode(strings.NewReader("[[0, 1], [2, 3]]"))
	if err != nil {
		t.Fatalf("Decode() failed: %v", err)
	}
	if g.W != 2 || g.H != 2 || g.Get(C(1, 1)) != Anchor {
		t.Errorf("unexpected grid %v", g.Rows())
	}
}

func TestDecodeMalformed(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		errCode string
	}{
		{"empty file", "", CodeEmpty},
		{"whitespace", "  \n", CodeEmpty},
		{"empty array", "[]", CodeEmpty},
		{"null", "null", CodeEmpty},
		{"ragged", "[[0,1],[1]]", CodeRagged},
		{"string cell", `[[0,"1"]]`, CodeValue},
		{"float cell", "[[0,1.5]]", CodeValue},
		{"flat array", "[0,1]", CodeValue},
		{"unknown code", "[[9]]", CodeValue},
		{"broken syntax", "[[0,1]", CodeSyntax},
		{"trailing data", "[[0]] [[1]]", CodeSyntax},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tc.input))
			if err == nil {
				t.Fatal("expected error")
			}
			if !errors.Is(err, ErrMalformed) {
				t.Errorf("expected ErrMalformed, got %v", err)
			}
			var pe *ParseError
			if !errors.As(err, &pe) {
				t.Fatalf("expected ParseError, got %T", err)
			}
			if pe.Code != tc.errCode {
				t.Errorf("expected code %s, got %s (%v)", tc.errCode, pe.Code, err)
			}
		})
	}
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "pattern.json")

	g := New(5, 4)
	g.Set(C(0, 0), Spawnable)
	g.Set(C(4, 3), Anchor)

	if err := Save(path, g); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("file was not created: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if !g.Equal(loaded) {
		t.Errorf("loaded grid differs: %v", loaded.Rows())
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected ErrNotExist, got %v", err)
	}
}
