package extractor

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"github.com/spigell/resume-scorer/internal/util"
)

const (
	extractPath = "/extract-text"
	userAgent   = "spigell/resume-scorer"

	defaultTimeout = 30 * time.Second
	retryBackoff   = 2 * time.Second
)

// Extraction statuses reported by the text-extraction service.
const (
	StatusSuccess     = "success"
	StatusNeedsReview = "needs_review"
	StatusFailed      = "failed"
)

// Extraction is the text-extraction service response. The engine depends
// only on this string shape, not on how the text was produced.
type Extraction struct {
	OK        bool     `json:"ok"`
	Text      string   `json:"text"`
	PageTexts []string `json:"page_texts"`
	Pages     int      `json:"pages"`
	Chars     int      `json:"chars"`
	Hint      string   `json:"hint"`
	Status    string   `json:"status"`
	Error     string   `json:"error,omitempty"`
}

// Client talks to the external PDF text-extraction service.
type Client struct {
	// ctx used only for http requests right now
	ctx        context.Context
	token      string
	logger     *zap.Logger
	HTTPClient *http.Client
	UserAgent  string
	BaseURL    string
	MaxRetries int
}

func New(ctx context.Context, logger *zap.Logger, baseURL, token string) *Client {
	return &Client{
		ctx:     ctx,
		token:   token,
		BaseURL: baseURL,
		HTTPClient: &http.Client{
			Timeout: defaultTimeout,
		},
		logger:    logger,
		UserAgent: userAgent,
	}
}

// Extract uploads the PDF at path and returns the extraction result. The
// service answering with ok=false is an error; its hint is surfaced so the
// caller can tell a scanned PDF from a broken one.
func (c *Client) Extract(path string) (*Extraction, error) {
	var lastErr error

	for attempt := 0; attempt <= c.MaxRetries; attempt++ {
		if attempt > 0 {
			c.logger.Debug("retrying text extraction",
				zap.Int("attempt", attempt),
				zap.Error(lastErr),
			)
			if err := util.WaitFor(c.ctx, retryBackoff); err != nil {
				return nil, err
			}
		}

		extraction, err := c.extract(path)
		if err != nil {
			lastErr = err
			continue
		}

		return extraction, nil
	}

	return nil, lastErr
}

func (c *Client) extract(path string) (*Extraction, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening pdf: %w", err)
	}
	defer file.Close()

	var b bytes.Buffer
	w := multipart.NewWriter(&b)

	field, err := w.CreateFormFile("file", filepath.Base(path))
	if err != nil {
		return nil, err
	}

	if _, err = io.Copy(field, file); err != nil {
		return nil, err
	}
	w.Close()

	url := fmt.Sprintf("%s%s", c.BaseURL, extractPath)
	req, err := http.NewRequestWithContext(c.ctx, http.MethodPost, url, &b)
	if err != nil {
		return nil, err
	}

	req = c.setHeaders(req)
	req.Header.Set("Content-Type", w.FormDataContentType())

	c.logger.Debug("make request", zap.String("url", req.URL.String()))
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var extraction Extraction
	if err := json.Unmarshal(data, &extraction); err != nil {
		return nil, fmt.Errorf("bad status: %s", resp.Status)
	}

	if !extraction.OK {
		reason := extraction.Hint
		if reason == "" {
			reason = extraction.Error
		}
		return nil, fmt.Errorf("extraction failed (status %s): %s", extraction.Status, reason)
	}

	c.logger.Debug("got extraction response",
		zap.Int("pages", extraction.Pages),
		zap.Int("chars", extraction.Chars),
		zap.String("status", extraction.Status),
	)

	return &extraction, nil
}

func (c *Client) setHeaders(req *http.Request) *http.Request {
	if c.token != "" {
		req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.token))
	}
	req.Header.Set("User-Agent", c.UserAgent)

	return req
}
