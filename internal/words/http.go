package words

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/palemoky/wordle/internal/apperrors"
)

// Defaults for the public services.
const (
	DefaultSourceURL      = "https://random-word-api.herokuapp.com/word?number=1&length=5"
	DefaultCheckerURL     = "https://api.datamuse.com/words"
	DefaultScoreThreshold = 50000
	DefaultTimeout        = 5 * time.Second
)

// maxBody caps how much of a response is read.
const maxBody = 1 << 20

func newHTTPClient(timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &http.Client{Timeout: timeout}
}

// getJSON issues a GET and decodes a 200 response into v.
func getJSON(ctx context.Context, client *http.Client, rawURL string, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBody))
		return fmt.Errorf("unexpected status %d from %s", resp.StatusCode, req.URL.Host)
	}
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBody)).Decode(v); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// HTTPSource fetches a random word from a service that answers with a JSON
// array holding one word, e.g. ["crane"].
type HTTPSource struct {
	url    string
	client *http.Client
}

// NewHTTPSource returns a source for rawURL (DefaultSourceURL if empty).
func NewHTTPSource(rawURL string, timeout time.Duration) *HTTPSource {
	if rawURL == "" {
		rawURL = DefaultSourceURL
	}
	return &HTTPSource{url: rawURL, client: newHTTPClient(timeout)}
}

// RandomWord fetches one word. Any failure, including a well-formed answer
// that is not a Length-letter word, wraps ErrWordSourceUnavailable.
func (s *HTTPSource) RandomWord(ctx context.Context) (string, error) {
	var got []string
	if err := getJSON(ctx, s.client, s.url, &got); err != nil {
		return "", fmt.Errorf("%w: %w", apperrors.ErrWordSourceUnavailable, err)
	}
	if len(got) == 0 {
		return "", fmt.Errorf("%w: empty response", apperrors.ErrWordSourceUnavailable)
	}

	w := strings.ToLower(strings.TrimSpace(got[0]))
	if !IsWord(w) {
		return "", fmt.Errorf("%w: unusable word %q", apperrors.ErrWordSourceUnavailable, got[0])
	}
	return w, nil
}

// match is one candidate returned by the dictionary service.
type match struct {
	Word  string  `json:"word"`
	Score float64 `json:"score"`
}

// DatamuseChecker validates words against a Datamuse-style "spelled like"
// endpoint. A word is real when any returned candidate scores above the
// threshold.
type DatamuseChecker struct {
	url       string
	threshold float64
	client    *http.Client
}

// NewDatamuseChecker returns a checker for rawURL (DefaultCheckerURL if
// empty). A threshold of zero or less means DefaultScoreThreshold.
func NewDatamuseChecker(rawURL string, threshold float64, timeout time.Duration) *DatamuseChecker {
	if rawURL == "" {
		rawURL = DefaultCheckerURL
	}
	if threshold <= 0 {
		threshold = DefaultScoreThreshold
	}
	return &DatamuseChecker{url: rawURL, threshold: threshold, client: newHTTPClient(timeout)}
}

// Check asks the service about word.
func (c *DatamuseChecker) Check(ctx context.Context, word string) (bool, error) {
	u, err := url.Parse(c.url)
	if err != nil {
		return false, fmt.Errorf("parse checker url: %w", err)
	}
	q := u.Query()
	q.Set("sp", word)
	q.Set("max", strconv.Itoa(1))
	u.RawQuery = q.Encode()

	var matches []match
	if err := getJSON(ctx, c.client, u.String(), &matches); err != nil {
		return false, err
	}

	for _, m := range matches {
		if m.Score > c.threshold {
			return true, nil
		}
	}
	return false, nil
}
