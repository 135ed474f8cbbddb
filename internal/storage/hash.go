package storage

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"

	"github.com/vovakirdan/spawnproof/internal/grid"
)

// HashGrid returns the hex SHA-256 of the grid's canonical encoding.
// Equal grids hash equally regardless of how their source file was formatted.
func HashGrid(g *grid.Grid) string {
	var buf bytes.Buffer
	_ = grid.Encode(&buf, g) // writes to a bytes.Buffer do not fail
	sum := sha256.Sum256(buf.Bytes())
	return hex.EncodeToString(sum[:])
}
