package db

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringArray(t *testing.T) {
	t.Run("scan JSONB bytes", func(t *testing.T) {
		var a StringArray
		require.NoError(t, a.Scan([]byte(`["Go","SQL"]`)))
		assert.Equal(t, StringArray{"Go", "SQL"}, a)
	})

	t.Run("scan nil yields empty array", func(t *testing.T) {
		var a StringArray
		require.NoError(t, a.Scan(nil))
		assert.Equal(t, StringArray{}, a)
	})

	t.Run("scan rejects non-bytes", func(t *testing.T) {
		var a StringArray
		assert.Error(t, a.Scan(42))
	})

	t.Run("nil value serializes as empty array", func(t *testing.T) {
		var a StringArray
		v, err := a.Value()
		require.NoError(t, err)
		assert.Equal(t, []byte("[]"), v)
	})

	t.Run("value round trip", func(t *testing.T) {
		a := StringArray{"Python", "Machine Learning"}
		v, err := a.Value()
		require.NoError(t, err)

		var back StringArray
		require.NoError(t, back.Scan(v))
		assert.Equal(t, a, back)
	})
}

func TestVector(t *testing.T) {
	t.Run("scan JSONB bytes", func(t *testing.T) {
		var v Vector
		require.NoError(t, v.Scan([]byte(`[0.1,0.2]`)))
		assert.Equal(t, Vector{0.1, 0.2}, v)
	})

	t.Run("scan nil yields nil", func(t *testing.T) {
		v := Vector{1}
		require.NoError(t, v.Scan(nil))
		assert.Nil(t, v)
	})

	t.Run("nil value stores SQL NULL", func(t *testing.T) {
		var v Vector
		val, err := v.Value()
		require.NoError(t, err)
		assert.Nil(t, val)
	})

	t.Run("value round trip", func(t *testing.T) {
		v := Vector{0.5, -0.25, 1}
		val, err := v.Value()
		require.NoError(t, err)

		var back Vector
		require.NoError(t, back.Scan(val))
		assert.Equal(t, v, back)
	})
}

func TestUserJSON(t *testing.T) {
	t.Run("password hash and embedding never serialize", func(t *testing.T) {
		u := User{
			Name:             "Priya",
			PasswordHash:     "super-secret-hash",
			ProfileEmbedding: Vector{0.1, 0.2},
		}
		data, err := json.Marshal(u)
		require.NoError(t, err)
		assert.NotContains(t, string(data), "super-secret-hash")
		assert.NotContains(t, string(data), "profile_embedding")
	})
}
