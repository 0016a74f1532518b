package semantic

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"smartfactory-assistant/pkg/log"
)

// HeaderRequestID carries the request id to the reasoning service.
const HeaderRequestID = "X-Request-ID"

// RemoteReasoner calls a reasoning service over HTTP.
type RemoteReasoner struct {
	baseURL    string
	httpClient *http.Client
	l          log.Logger
}

var _ Reasoner = (*RemoteReasoner)(nil)

// NewRemoteReasoner creates a client for the service rooted at baseURL.
// Timeouts come from the caller's context.
func NewRemoteReasoner(l log.Logger, baseURL string, httpClient *http.Client) *RemoteReasoner {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &RemoteReasoner{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
		l:          l,
	}
}

type envelope[T any] struct {
	Success bool `json:"success"`
	Data    *T   `json:"data"`
}

// MatchIntent posts to the semantic-match route.
func (r *RemoteReasoner) MatchIntent(ctx context.Context, req MatchRequest) (Verdict, error) {
	var v Verdict
	if err := r.post(ctx, PathSemanticMatch, req, &v); err != nil {
		return Verdict{}, err
	}
	c, ok := normalizeConfidence(v.Confidence)
	if !ok {
		return Verdict{}, fmt.Errorf("%w: confidence %v out of range", ErrMalformedResponse, v.Confidence)
	}
	v.Confidence = c
	return v, nil
}

// ExtractContent posts to the extract-content route.
func (r *RemoteReasoner) ExtractContent(ctx context.Context, req ExtractRequest) (ExtractedContent, error) {
	var c ExtractedContent
	if err := r.post(ctx, PathExtractContent, req, &c); err != nil {
		return ExtractedContent{}, err
	}
	return c, nil
}

func (r *RemoteReasoner) post(ctx context.Context, path string, in any, out any) error {
	body, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("%s: marshal request: %w", logPrefixRemoteReasoner, err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, r.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%s: create request: %w", logPrefixRemoteReasoner, err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if id := log.RequestID(ctx); id != "" {
		httpReq.Header.Set(HeaderRequestID, id)
	}

	resp, err := r.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrReasonerUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		r.l.Debugf(ctx, "%s: %s status %d", logPrefixRemoteReasoner, path, resp.StatusCode)
		return fmt.Errorf("%w: %s returned %d: %s", ErrReasonerUnavailable, path, resp.StatusCode, snippet)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: read body: %v", ErrReasonerUnavailable, err)
	}

	env := envelope[json.RawMessage]{}
	if err := json.Unmarshal(raw, &env); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	if !env.Success || env.Data == nil {
		return fmt.Errorf("%w: %s reported no result", ErrReasonerUnavailable, path)
	}
	if err := json.Unmarshal(*env.Data, out); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	return nil
}
