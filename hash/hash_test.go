package hash

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHDeterministic(t *testing.T) {
	var key HValue
	copy(key[:], []byte("0123456789abcdef0123456789abcdef"))

	a := H(key, []byte("hello"))
	b := H(key, []byte("hello"))
	assert.Equal(t, a, b)
}

func TestHSensitiveToKeyAndData(t *testing.T) {
	var key1, key2 HValue
	copy(key1[:], []byte("0123456789abcdef0123456789abcdef"))
	copy(key2[:], []byte("fedcba9876543210fedcba9876543210"))

	assert.NotEqual(t, H(key1, []byte("hello")), H(key2, []byte("hello")))
	assert.NotEqual(t, H(key1, []byte("hello")), H(key1, []byte("world")))
}

func TestEqual(t *testing.T) {
	var key HValue
	copy(key[:], []byte("0123456789abcdef0123456789abcdef"))

	a := H(key, []byte("data"))
	b := a
	assert.True(t, Equal(a, b))

	b[0] ^= 0x01
	assert.False(t, Equal(a, b))
}
