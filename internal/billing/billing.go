// Package billing asks the billing service whether an account may write.
package billing

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/yukikurage/taskboard-api/internal/constants"
)

type Mode string

const (
	ModeReadWrite Mode = "readwrite"
	ModeReadOnly  Mode = "readonly"
)

var ErrInsufficientCredits = errors.New("Insufficient credits. Purchase credits to continue.")

// Status is the billing service's answer for one account
type Status struct {
	Mode      Mode   `json:"mode"`
	Reason    string `json:"reason,omitempty"`
	WeekStart string `json:"weekStart"`
}

var readWrite = Status{Mode: ModeReadWrite}

// Checker reports the billing status behind an ID token
type Checker interface {
	Check(ctx context.Context, idToken string) Status
}

// Client calls the billing HTTP API. Every failure resolves to read-write.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *log.Logger
}

// NewClient creates a billing client. An empty baseURL disables the check.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = constants.DefaultBillingTimeout
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		logger:     log.New(os.Stderr, "billing: ", log.LstdFlags),
	}
}

func (c *Client) Check(ctx context.Context, idToken string) Status {
	if c.baseURL == "" {
		c.logger.Println("BILLING_API_URL not set -- defaulting to readwrite")
		return readWrite
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+constants.BillingAccessPath, nil)
	if err != nil {
		c.logger.Printf("Billing check error: %v", err)
		return readWrite
	}
	req.Header.Set("Authorization", "Bearer "+idToken)
	req.Header.Set("Cache-Control", "no-store")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Printf("Billing check error: %v", err)
		return readWrite
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logger.Printf("Billing check failed: %d", resp.StatusCode)
		return readWrite
	}

	var status Status
	if err := json.NewDecoder(resp.Body).Decode(&status); err != nil {
		c.logger.Printf("Billing check error: %v", fmt.Errorf("decode response: %w", err))
		return readWrite
	}
	if status.Mode != ModeReadOnly {
		status.Mode = ModeReadWrite
	}
	return status
}

// Guard rejects writes for a read-only status
func Guard(status Status) error {
	if status.Mode == ModeReadOnly {
		return ErrInsufficientCredits
	}
	return nil
}
