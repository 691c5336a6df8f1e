package scorer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/evalease/sentiment-service/internal/domain"
)

// RemoteRequest is the JSON body posted to the upstream sentiment service.
type RemoteRequest struct {
	Text string `json:"text"`
}

// RemoteResponse maps the upstream's 200 OK body. Only score is required;
// polarity is accepted but the label is always recomputed locally.
type RemoteResponse struct {
	Polarity string   `json:"polarity"`
	Score    *float64 `json:"score"`
}

// RemoteScorer delegates scoring to another sentiment service speaking the
// same POST {"text": ...} contract this service exposes.
type RemoteScorer struct {
	url        string
	httpClient *http.Client
}

func NewRemoteScorer(url string, timeout time.Duration) *RemoteScorer {
	return &RemoteScorer{
		url: url,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

func (s *RemoteScorer) Name() string { return "remote" }

// Score posts the text upstream and expects a 200 OK response with a JSON
// body containing a numeric score.
func (s *RemoteScorer) Score(ctx context.Context, text string) (float64, error) {
	body, err := json.Marshal(RemoteRequest{Text: text})
	if err != nil {
		return 0, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.url, bytes.NewReader(body))
	if err != nil {
		return 0, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("%w: %d", domain.ErrUpstreamStatus, resp.StatusCode)
	}

	var out RemoteResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return 0, fmt.Errorf("decode response: %w", err)
	}
	if out.Score == nil {
		return 0, fmt.Errorf("decode response: missing score")
	}

	return *out.Score, nil
}

var _ Scorer = (*RemoteScorer)(nil)
