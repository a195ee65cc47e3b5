package extract

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/wgomg/hunbatz/internal/config"
	"github.com/wgomg/hunbatz/internal/utils"
	"github.com/wgomg/hunbatz/internal/utils/httputils"
)

// HTTPExtractor fetches raw text from a URL. Remote sources sit behind the
// same Extractor interface as local files so a batch can mix both.
type HTTPExtractor struct {
	token      string
	httpClient *http.Client
	logger     *utils.Logger
}

func NewHTTPExtractor(cfg *config.Config, logger *utils.Logger) *HTTPExtractor {
	return &HTTPExtractor{
		token: cfg.Extract.SourceToken,
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.App.HttpTimeoutSeconds) * time.Second,
		},
		logger: logger,
	}
}

func (e *HTTPExtractor) ExtractText(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	if e.token != "" {
		req.Header.Set("Authorization", "Token "+e.token)
	}
	req.Header.Set("Accept", "text/plain")

	e.logger.Debug(nil, "Fetching source text from %s", url)
	resp, err := e.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to fetch source: %w", err)
	}
	defer resp.Body.Close()

	_, err = httputils.LogResponseBody(resp, e.logger, "")
	if err != nil {
		return "", fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", &APIError{
			StatusCode: resp.StatusCode,
			Message:    "unexpected status fetching source",
			Body:       string(body),
		}
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response body: %w", err)
	}

	return string(data), nil
}

type APIError struct {
	StatusCode int
	Message    string
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("API error %d: %s", e.StatusCode, e.Message)
}
