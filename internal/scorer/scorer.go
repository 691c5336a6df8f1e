package scorer

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// Scorer computes a polarity score in [-1.0, 1.0] for a piece of text.
// Implementations must be safe for concurrent use.
type Scorer interface {
	Name() string
	Score(ctx context.Context, text string) (float64, error)
}

// Kind selects the local scorer implementation.
type Kind string

const (
	KindVader   Kind = "vader"
	KindKeyword Kind = "keyword"
)

func (k Kind) IsValid() bool {
	switch k {
	case KindVader, KindKeyword:
		return true
	}
	return false
}

// ParseKind normalises a configured scorer name.
func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	if !k.IsValid() {
		return "", fmt.Errorf("unknown scorer %q: must be vader or keyword", s)
	}
	return k, nil
}

// NewLocal builds the in-process scorer for kind.
func NewLocal(kind Kind) (Scorer, error) {
	switch kind {
	case KindVader:
		return NewVaderScorer(), nil
	case KindKeyword:
		return NewKeywordScorer(), nil
	}
	return nil, fmt.Errorf("unknown scorer %q", kind)
}

// Options describes the scorer chain built by New.
type Options struct {
	Kind            Kind
	UpstreamURL     string
	UpstreamTimeout time.Duration
	// OnFallback is invoked each time the upstream fails and the local
	// scorer is used instead. Optional.
	OnFallback func(err error)
}

// New returns the local scorer, or when an upstream URL is configured, a
// remote scorer that falls back to the local one on failure.
func New(opts Options) (Scorer, error) {
	local, err := NewLocal(opts.Kind)
	if err != nil {
		return nil, err
	}
	if opts.UpstreamURL == "" {
		return local, nil
	}
	remote := NewRemoteScorer(opts.UpstreamURL, opts.UpstreamTimeout)
	return NewFallbackScorer(remote, local, opts.OnFallback), nil
}
