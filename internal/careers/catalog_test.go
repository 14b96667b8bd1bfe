package careers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	paths, err := Load()
	require.NoError(t, err)
	require.NotEmpty(t, paths)

	t.Run("every path is fully populated", func(t *testing.T) {
		for _, p := range paths {
			assert.NotEmpty(t, p.Key)
			assert.NotEmpty(t, p.Name)
			assert.NotEmpty(t, p.Description)
			assert.NotEmpty(t, p.RecommendedSkills)
			assert.NotEmpty(t, p.Roadmap)
		}
	})

	t.Run("keys are unique", func(t *testing.T) {
		seen := make(map[string]bool)
		for _, p := range paths {
			assert.False(t, seen[p.Key], "duplicate key %q", p.Key)
			seen[p.Key] = true
		}
	})

	t.Run("catalog order is stable", func(t *testing.T) {
		again, err := Load()
		require.NoError(t, err)
		require.Len(t, again, len(paths))
		for i := range paths {
			assert.Equal(t, paths[i].Key, again[i].Key)
		}
	})

	t.Run("schema rejects malformed entries", func(t *testing.T) {
		schemaBytes, err := catalogFS.ReadFile("schema.json")
		require.NoError(t, err)

		bad := []byte(`[{"key": "NoUppercaseAllowed", "name": "X", "description": "Y", "recommended_skills": ["a"], "roadmap": ["b"]}]`)
		assert.Error(t, validateCatalog(schemaBytes, bad))

		missing := []byte(`[{"key": "ok_key", "name": "X"}]`)
		assert.Error(t, validateCatalog(schemaBytes, missing))
	})

	t.Run("known path present", func(t *testing.T) {
		var found bool
		for _, p := range paths {
			if p.Key == "backend_engineer" {
				found = true
				assert.Equal(t, "Backend Engineer", p.Name)
			}
		}
		assert.True(t, found)
	})
}
