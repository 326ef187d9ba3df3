package crypto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHash(t *testing.T) {
	tests := []struct {
		name      string
		data      string
		algorithm string
		want      string
	}{
		{"sha256", "hello", "sha256", "2cf24dba5fb0a30e26e83b2ac5b9e29e1b161e5c1fa7425e73043362938b9824"},
		{"sha256 longer input", "Hello, Blockchain!", "sha256", "7526b1d2bc17587443fbf1fafb27e95d70615bc7576c6e34c1f139c9ce857733"},
		{"sha1", "hello", "sha1", "aaf4c61ddcc5e8a2dabede0f3b482cd9aea9434d"},
		{"md5", "hello", "md5", "5d41402abc4b2a76b9719d911017c592"},
		{"keccak256", "hello", "keccak256", "1c8aff950685c2ed4bc3174f3472287b56d9517b9c948127319a09a7a36deac8"},
		{"keccak256 empty input", "", "keccak256", "c5d2460186f7233c927e7db2dcc703c0e500b653ca82273b7bfad8045d85a470"},
		{"algorithm names are case-insensitive", "hello", "SHA256", "2cf24dba5fb0a30e26e83b2ac5b9e29e1b161e5c1fa7425e73043362938b9824"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Hash(tt.data, tt.algorithm)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestHashUnsupportedAlgorithm(t *testing.T) {
	_, err := Hash("hello", "sha512")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sha512")

	_, err = Hash("hello", "")
	assert.Error(t, err)
}

func TestHashAlgorithms(t *testing.T) {
	algos := HashAlgorithms()
	assert.Contains(t, algos, AlgSHA256)
	assert.Contains(t, algos, AlgKeccak256)

	// Every advertised algorithm actually works
	for _, algo := range algos {
		_, err := Hash("probe", algo)
		assert.NoError(t, err)
	}
}
