package graphql

import (
	"encoding/json"
	"io"
	"strconv"
)

// JSON is a custom scalar type for arbitrary JSON data
type JSON json.RawMessage

// MarshalGQL implements graphql.Marshaler, writing {} for empty data
func (j JSON) MarshalGQL(w io.Writer) {
	if len(j) == 0 {
		_, _ = io.WriteString(w, "{}")
		return
	}
	_, _ = w.Write(j)
}

// Uint64 scalar type for unsigned 64-bit counters
type Uint64 uint64

// MarshalGQL implements graphql.Marshaler for Uint64
func (u Uint64) MarshalGQL(w io.Writer) {
	// Write as string to avoid JavaScript number precision issues
	_, _ = io.WriteString(w, strconv.Quote(strconv.FormatUint(uint64(u), 10)))
}
