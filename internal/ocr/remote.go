// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package ocr

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/pdiddy/cardscan/internal/httputil"
	"github.com/pdiddy/cardscan/pkg/types"
)

const defaultRemoteTimeout = 60 * time.Second

// Remote recognizes card images through a self-hosted recognition service.
// The service accepts a POST with the raw image body and a lang query
// parameter, and answers with {"text": ..., "confidence": 0-100}.
type Remote struct {
	url        string
	client     *http.Client
	userAgent  string
	maxRetries int
}

// remoteResponse is the service's answer payload.
type remoteResponse struct {
	Text       string `json:"text"`
	Confidence int    `json:"confidence"`
}

// NewRemote constructs the remote engine from config. RemoteURL is required.
func NewRemote(cfg types.OCRConfig) (*Remote, error) {
	if cfg.RemoteURL == "" {
		return nil, fmt.Errorf("remote ocr engine requires remote_url")
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultRemoteTimeout
	}
	return &Remote{
		url:        cfg.RemoteURL,
		client:     &http.Client{Timeout: timeout},
		userAgent:  cfg.UserAgent,
		maxRetries: cfg.MaxRetries,
	}, nil
}

func (r *Remote) Name() string { return "remote" }

// Recognize posts the image to the recognition service. Rate-limited calls
// are retried with backoff. Progress is coarse: 0 when the request is sent,
// 100 once the response is decoded.
func (r *Remote) Recognize(ctx context.Context, image []byte, lang types.Language, progress ProgressFunc) (Result, error) {
	url := fmt.Sprintf("%s?lang=%s", r.url, types.ParseLanguage(string(lang)))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(image))
	if err != nil {
		return Result{}, &RecognitionError{Engine: r.Name(), Err: err}
	}
	req.Header.Set("Content-Type", "application/octet-stream")
	if r.userAgent != "" {
		req.Header.Set("User-Agent", r.userAgent)
	}

	report(progress, 0)

	resp, err := httputil.DoWithRetry(ctx, r.client, req, r.maxRetries)
	if err != nil {
		return Result{}, &RecognitionError{Engine: r.Name(), Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return Result{}, &RecognitionError{
			Engine: r.Name(),
			Err:    fmt.Errorf("service returned %s: %s", resp.Status, bytes.TrimSpace(body)),
		}
	}

	var payload remoteResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return Result{}, &RecognitionError{Engine: r.Name(), Err: fmt.Errorf("decoding response: %w", err)}
	}

	report(progress, 100)

	return Result{
		Text:       payload.Text,
		Confidence: clampConfidence(payload.Confidence),
	}, nil
}
