package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, list ...string) *Server {
	t.Helper()
	return New(list, zerolog.Nop())
}

func do(t *testing.T, s *Server, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	t.Parallel()

	rec := do(t, newTestServer(t), "/health")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"ok":true}`, rec.Body.String())
	assert.Contains(t, rec.Header().Get("Content-Type"), "application/json")
}

func TestRandomWord(t *testing.T) {
	t.Parallel()

	s := newTestServer(t, "crane", "slate")

	tests := []struct {
		name   string
		target string
		status int
		count  int
	}{
		{"defaults", "/word", http.StatusOK, 1},
		{"public api shape", "/word?number=1&length=5", http.StatusOK, 1},
		{"several", "/word?number=3", http.StatusOK, 3},
		{"zero", "/word?number=0", http.StatusBadRequest, 0},
		{"too many", "/word?number=11", http.StatusBadRequest, 0},
		{"not a number", "/word?number=x", http.StatusBadRequest, 0},
		{"wrong length", "/word?length=6", http.StatusBadRequest, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			rec := do(t, s, tt.target)
			require.Equal(t, tt.status, rec.Code)
			if tt.status != http.StatusOK {
				return
			}
			var got []string
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
			assert.Len(t, got, tt.count)
			for _, w := range got {
				assert.Contains(t, []string{"crane", "slate"}, w)
			}
		})
	}
}

func TestLookup(t *testing.T) {
	t.Parallel()

	s := newTestServer(t, "crane", "slate")

	rec := do(t, s, "/words?sp=CRANE&max=1")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[{"word":"crane","score":100000}]`, rec.Body.String())

	rec = do(t, s, "/words?sp=xqzvk&max=1")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())

	rec = do(t, s, "/words")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestNotFound(t *testing.T) {
	t.Parallel()

	rec := do(t, newTestServer(t), "/nope")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"not_found"}`, rec.Body.String())
}

func TestDefaultList(t *testing.T) {
	t.Parallel()

	rec := do(t, newTestServer(t), "/words?sp=apple")
	assert.JSONEq(t, `[{"word":"apple","score":100000}]`, rec.Body.String())
}
