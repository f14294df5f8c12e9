package server

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/palemoky/wordle/internal/words"
)

const maxWordsPerRequest = 10

type lookupMatch struct {
	Word  string `json:"word"`
	Score int    `json:"score"`
}

// handleRandomWord answers GET /word?number=N&length=5 with a JSON array of
// N random words.
func (s *Server) handleRandomWord(w http.ResponseWriter, r *http.Request) {
	number, ok := intParam(r, "number", 1)
	if !ok || number < 1 || number > maxWordsPerRequest {
		writeError(w, http.StatusBadRequest, "bad_number")
		return
	}
	length, ok := intParam(r, "length", words.Length)
	if !ok || length != words.Length {
		writeError(w, http.StatusBadRequest, "unsupported_length")
		return
	}

	out := make([]string, 0, number)
	for range number {
		word, err := s.source.RandomWord(r.Context())
		if err != nil {
			writeError(w, http.StatusInternalServerError, "no_words")
			return
		}
		out = append(out, word)
	}
	_ = json.NewEncoder(w).Encode(out)
}

// handleLookup answers GET /words?sp=<word> with one high-scoring match if
// the word is listed, and an empty array otherwise.
func (s *Server) handleLookup(w http.ResponseWriter, r *http.Request) {
	sp := strings.ToLower(strings.TrimSpace(r.URL.Query().Get("sp")))
	if sp == "" {
		writeError(w, http.StatusBadRequest, "missing_sp")
		return
	}

	out := []lookupMatch{}
	if _, ok := s.known[sp]; ok {
		out = append(out, lookupMatch{Word: sp, Score: KnownWordScore})
	}
	_ = json.NewEncoder(w).Encode(out)
}

func intParam(r *http.Request, name string, def int) (int, bool) {
	v := r.URL.Query().Get(name)
	if v == "" {
		return def, true
	}
	n, err := strconv.Atoi(v)
	return n, err == nil
}

func writeError(w http.ResponseWriter, status int, code string) {
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": code})
}
