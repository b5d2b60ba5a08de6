package dataset

import (
	_ "embed"
)

//go:embed sample.json
var sample []byte

// Sample returns a copy of the dataset bundled with the binary
func Sample() []byte {
	out := make([]byte, len(sample))
	copy(out, sample)
	return out
}
