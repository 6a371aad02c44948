package crypto

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBcryptHasher_RoundTrip(t *testing.T) {
	h := &BcryptHasher{}

	hash, err := h.Hash("12345")
	require.NoError(t, err)

	assert.NotEqual(t, "12345", hash)
	assert.NotContains(t, hash, "12345")
	assert.NoError(t, h.Compare(hash, "12345"))
	assert.Error(t, h.Compare(hash, "wrong"))
}

func TestBcryptHasher_RejectsOversizedInput(t *testing.T) {
	h := &BcryptHasher{}

	_, err := h.Hash(strings.Repeat("x", 73))
	assert.Error(t, err)
}
