package survey

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// TableHash identifies a dataset by content. Re-uploading an identical
// table produces the same hash; any header or cell change produces a new
// one.
type TableHash string

// String returns the string representation.
func (h TableHash) String() string { return string(h) }

// IsEmpty checks if the hash is empty.
func (h TableHash) IsEmpty() bool { return h == "" }

// ComputeTableHash hashes headers and row cells in order. Cells are read
// in header order so map iteration never affects the result.
func ComputeTableHash(table *RawTable) TableHash {
	var data strings.Builder
	for _, header := range table.Headers {
		data.WriteString(header)
		data.WriteByte(0x1f)
	}
	data.WriteByte(0x1e)
	for _, row := range table.Rows {
		for _, header := range table.Headers {
			data.WriteString(row[header])
			data.WriteByte(0x1f)
		}
		data.WriteByte(0x1e)
	}
	sum := sha256.Sum256([]byte(data.String()))
	return TableHash(hex.EncodeToString(sum[:]))
}
