package grid

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Decode reads a grid stored as a JSON array of arrays of integers.
func Decode(r io.Reader) (*Grid, error) {
	dec := json.NewDecoder(r)

	var rows [][]int
	if err := dec.Decode(&rows); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, newParseError(CodeEmpty, "grid file is empty")
		}
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return nil, &ParseError{Code: CodeValue, Message: "cells must be integers", Err: err}
		}
		return nil, &ParseError{Code: CodeSyntax, Message: "invalid JSON", Err: err}
	}
	if dec.More() {
		return nil, newParseError(CodeSyntax, "unexpected data after grid")
	}

	return FromRows(rows)
}

// Encode writes g as a JSON array of rows, one row per line.
func Encode(w io.Writer, g *Grid) error {
	bw := bufio.NewWriter(w)
	bw.WriteString("[\n")
	for y, row := range g.Rows() {
		data, err := json.Marshal(row)
		if err != nil {
			return fmt.Errorf("grid: encode row %d: %w", y, err)
		}
		bw.WriteString("  ")
		bw.Write(data)
		if y < g.H-1 {
			bw.WriteByte(',')
		}
		bw.WriteByte('\n')
	}
	bw.WriteString("]\n")
	return bw.Flush()
}

// Load reads a grid file from disk.
func Load(path string) (*Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("grid: cannot open %s: %w", path, err)
	}
	defer f.Close()

	g, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("grid: cannot load %s: %w", path, err)
	}
	return g, nil
}

// Save writes g to path, creating parent directories as needed.
func Save(path string, g *Grid) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("grid: cannot create directory %s: %w", dir, err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("grid: cannot create %s: %w", path, err)
	}
	if err := Encode(f, g); err != nil {
		f.Close()
		return fmt.Errorf("grid: cannot write %s: %w", path, err)
	}
	return f.Close()
}
