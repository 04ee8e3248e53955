package predict

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/tourline/merch-forecast/internal/domain/records"
)

// Client calls a remote prediction service from the pipeline CLI.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient builds a client for the service at baseURL.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 120 * time.Second},
	}
}

type predictResponse struct {
	Status      string                     `json:"status"`
	Message     string                     `json:"message"`
	Data        []records.PredictionRecord `json:"data"`
	RecordCount int                        `json:"record_count"`
}

// Health checks the service readiness endpoint.
func (c *Client) Health(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/health", nil)
	if err != nil {
		return err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("prediction service unreachable: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("prediction service not ready (status %d)", resp.StatusCode)
	}
	return nil
}

// Predict posts records to the service and returns its predictions.
func (c *Client) Predict(ctx context.Context, recs []records.OutputRecord) ([]records.PredictionRecord, error) {
	body, err := json.Marshal(recs)
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/predict", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("prediction request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var pr predictResponse
	if err := json.Unmarshal(data, &pr); err != nil {
		return nil, fmt.Errorf("decode prediction response: %w", err)
	}
	if resp.StatusCode != http.StatusOK || pr.Status != "success" {
		msg := pr.Message
		if msg == "" {
			msg = strings.TrimSpace(string(data))
		}
		return nil, fmt.Errorf("prediction service error (status %d): %s", resp.StatusCode, msg)
	}
	return pr.Data, nil
}
