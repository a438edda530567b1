package maplib

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pierrec/lz4"
)

// CompressedExt marks map files stored as LZ4-compressed JSON
const CompressedExt = ".lz4"

type mapFile struct {
	Name   string   `json:"name"`
	Width  int      `json:"width"`
	Height int      `json:"height"`
	Rows   []string `json:"rows"`
}

// MarshalJSON encodes the map with human-readable rows
func (tm *TileMap) MarshalJSON() ([]byte, error) {
	return json.Marshal(mapFile{
		Name:   tm.Name,
		Width:  tm.Width,
		Height: tm.Height,
		Rows:   tm.Rows(),
	})
}

// UnmarshalJSON decodes a map written by MarshalJSON. Registered listeners are kept
// and notified.
func (tm *TileMap) UnmarshalJSON(data []byte) error {
	var f mapFile
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	parsed, err := FromRows(f.Name, f.Rows)
	if err != nil {
		return err
	}
	if parsed.Width != f.Width || parsed.Height != f.Height {
		return fmt.Errorf("%w: header says %dx%d, rows are %dx%d",
			ErrInvalidMap, f.Width, f.Height, parsed.Width, parsed.Height)
	}
	tm.Name = parsed.Name
	tm.Width = parsed.Width
	tm.Height = parsed.Height
	tm.Tiles = parsed.Tiles
	tm.notify()
	return nil
}

// SaveJSON saves the map to a JSON file
func (tm *TileMap) SaveJSON(path string) error {
	data, err := json.MarshalIndent(tm, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// LoadJSON loads a map from a JSON file
func LoadJSON(path string) (*TileMap, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var tm TileMap
	if err := json.Unmarshal(data, &tm); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return &tm, nil
}

// SaveFile writes JSON, compressing with LZ4 when path ends in CompressedExt
func (tm *TileMap) SaveFile(path string) error {
	if !strings.HasSuffix(path, CompressedExt) {
		return tm.SaveJSON(path)
	}
	data, err := json.Marshal(tm)
	if err != nil {
		return err
	}
	packed, err := compressLZ4(data)
	if err != nil {
		return fmt.Errorf("compress %s: %w", path, err)
	}
	return os.WriteFile(path, packed, 0644)
}

// LoadFile reads a map written by SaveFile
func LoadFile(path string) (*TileMap, error) {
	if !strings.HasSuffix(path, CompressedExt) {
		return LoadJSON(path)
	}
	packed, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	data, err := decompressLZ4(packed)
	if err != nil {
		return nil, fmt.Errorf("decompress %s: %w", path, err)
	}
	var tm TileMap
	if err := json.Unmarshal(data, &tm); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return &tm, nil
}

func compressLZ4(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	w := lz4.NewWriter(&buf)
	if _, err := w.Write(data); err != nil {
		w.Close()
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func decompressLZ4(data []byte) ([]byte, error) {
	r := lz4.NewReader(bytes.NewReader(data))
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, r); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
