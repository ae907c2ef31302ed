package hash

import (
	"testing"

	"github.com/cespare/xxhash/v2"
	"github.com/stretchr/testify/assert"
)

func TestSum64(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"empty", []byte{}},
		{"short", []byte("test")},
		{"longer", []byte("this is a longer test string to hash")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, xxhash.Sum64(tt.data), Sum64(tt.data))
		})
	}
}

func TestSum64_DifferentInputsDiffer(t *testing.T) {
	a := Sum64([]byte("alpha"))
	b := Sum64([]byte("beta"))
	assert.NotEqual(t, a, b)
}
