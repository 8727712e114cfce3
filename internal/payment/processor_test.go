package payment

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewIdempotencyKey(t *testing.T) {
	key := NewIdempotencyKey()

	raw, err := base64.StdEncoding.DecodeString(key)
	assert.NoError(t, err)
	assert.Len(t, raw, 32)

	assert.NotEqual(t, key, NewIdempotencyKey())
}
