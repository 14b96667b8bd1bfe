package embedding

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPProvider_Configured(t *testing.T) {
	assert.True(t, NewHTTPProvider("https://embed.example.com", "key").Configured())
	assert.False(t, NewHTTPProvider("", "key").Configured())
	assert.False(t, NewHTTPProvider("https://embed.example.com", "").Configured())
	assert.False(t, NewHTTPProvider("", "").Configured())
}

func TestHTTPProvider_Embed(t *testing.T) {
	t.Run("data array response shape", func(t *testing.T) {
		var gotAuth string
		var gotBody embedRequest
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotAuth = r.Header.Get("Authorization")
			require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
			_ = json.NewEncoder(w).Encode(map[string]any{
				"data": []map[string]any{{"embedding": []float64{0.1, 0.2, 0.3}}},
			})
		}))
		defer srv.Close()

		provider := NewHTTPProvider(srv.URL, "secret-key")
		res := provider.Embed(context.Background(), "hello world")

		require.True(t, res.Available())
		assert.Equal(t, []float64{0.1, 0.2, 0.3}, res.Vector)
		assert.Equal(t, "Bearer secret-key", gotAuth)
		assert.Equal(t, "hello world", gotBody.Input)
	})

	t.Run("top-level embedding response shape", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_ = json.NewEncoder(w).Encode(map[string]any{"embedding": []float64{0.4, 0.5}})
		}))
		defer srv.Close()

		res := NewHTTPProvider(srv.URL, "key").Embed(context.Background(), "text")
		require.True(t, res.Available())
		assert.Equal(t, []float64{0.4, 0.5}, res.Vector)
	})

	t.Run("data array wins over top-level field", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_ = json.NewEncoder(w).Encode(map[string]any{
				"embedding": []float64{9, 9},
				"data":      []map[string]any{{"embedding": []float64{1, 2}}},
			})
		}))
		defer srv.Close()

		res := NewHTTPProvider(srv.URL, "key").Embed(context.Background(), "text")
		require.True(t, res.Available())
		assert.Equal(t, []float64{1, 2}, res.Vector)
	})

	t.Run("empty text short-circuits without a call", func(t *testing.T) {
		var calls atomic.Int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			calls.Add(1)
		}))
		defer srv.Close()

		provider := NewHTTPProvider(srv.URL, "key")
		assert.False(t, provider.Embed(context.Background(), "").Available())
		assert.False(t, provider.Embed(context.Background(), "   \t\n").Available())
		assert.Equal(t, int32(0), calls.Load())
	})

	t.Run("unconfigured provider returns unavailable", func(t *testing.T) {
		res := NewHTTPProvider("", "").Embed(context.Background(), "text")
		assert.False(t, res.Available())
		assert.Equal(t, "provider not configured", res.Reason)
	})

	t.Run("non-success status is unavailable", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer srv.Close()

		res := NewHTTPProvider(srv.URL, "key").Embed(context.Background(), "text")
		assert.False(t, res.Available())
		assert.Equal(t, "status 500", res.Reason)
	})

	t.Run("malformed body is unavailable", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte("not json"))
		}))
		defer srv.Close()

		res := NewHTTPProvider(srv.URL, "key").Embed(context.Background(), "text")
		assert.False(t, res.Available())
	})

	t.Run("missing embedding field is unavailable", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_ = json.NewEncoder(w).Encode(map[string]any{"unexpected": true})
		}))
		defer srv.Close()

		res := NewHTTPProvider(srv.URL, "key").Embed(context.Background(), "text")
		assert.False(t, res.Available())
		assert.Equal(t, "missing embedding in response", res.Reason)
	})

	t.Run("unreachable endpoint is unavailable", func(t *testing.T) {
		res := NewHTTPProvider("http://127.0.0.1:1", "key").Embed(context.Background(), "text")
		assert.False(t, res.Available())
	})
}

func TestResult_Available(t *testing.T) {
	assert.True(t, Result{Vector: []float64{1}}.Available())
	assert.False(t, Result{}.Available())
	assert.False(t, unavailable("why").Available())
	assert.Equal(t, "why", unavailable("why").Reason)
}
