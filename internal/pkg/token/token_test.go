package token

import (
	"encoding/base64"
	"testing"

	"consigne-admin/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	original := Identity{
		ID:       42,
		Mail:     "admin@consigne.org",
		Username: "admin",
		Role:     domain.RoleAdmin,
	}

	blob, err := Encode(original)
	require.NoError(t, err)
	require.NotEmpty(t, blob)

	decoded, err := Decode(blob)
	require.NoError(t, err)
	assert.Equal(t, original, decoded)
}

func TestDecodeMalformedBlob(t *testing.T) {
	t.Run("not base64", func(t *testing.T) {
		_, err := Decode("%%% not base64 %%%")
		assert.ErrorIs(t, err, ErrMalformed)
	})

	t.Run("base64 but not JSON", func(t *testing.T) {
		blob := base64.StdEncoding.EncodeToString([]byte("not json at all"))
		_, err := Decode(blob)
		assert.ErrorIs(t, err, ErrMalformed)
	})
}
