// Package gsheets reads the recruitment form responses from a published
// Google Sheets CSV export. The sheet is published read-only so no OAuth is
// involved, just a plain CSV fetch.
package gsheets

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/eclipsedgg/raidboard/internal/domain/snapshot"
	"github.com/eclipsedgg/raidboard/internal/platform/logging"
	"github.com/eclipsedgg/raidboard/internal/usecase"
)

type ClientConfig struct {
	HTTPClient *http.Client
	CSVURL     string
	Timeout    time.Duration
	Logger     *logging.Logger
}

type Client struct {
	httpClient *http.Client
	csvURL     string
	logger     *logging.Logger
}

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	if httpClient.Timeout <= 0 {
		httpClient.Timeout = 20 * time.Second
	}

	return &Client{
		httpClient: httpClient,
		csvURL:     strings.TrimSpace(cfg.CSVURL),
		logger:     logger,
	}
}

// FetchApplicants downloads and parses the published sheet. Rows without a
// name are skipped, column order follows the sheet header.
func (c *Client) FetchApplicants(ctx context.Context) ([]snapshot.Applicant, error) {
	if c.csvURL == "" {
		return nil, fmt.Errorf("%w: applicants sheet url is not configured", usecase.ErrInvalidInput)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.csvURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: applicants sheet request: %v", usecase.ErrDependencyUnavailable, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: applicants sheet status=%d", usecase.ErrDependencyUnavailable, resp.StatusCode)
	}

	applicants, err := parseApplicantsCSV(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parse applicants sheet: %w", err)
	}
	return applicants, nil
}

func parseApplicantsCSV(r io.Reader) ([]snapshot.Applicant, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err == io.EOF {
		return []snapshot.Applicant{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read header row: %w", err)
	}

	columns := mapColumns(header)
	out := make([]snapshot.Applicant, 0, 16)
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read sheet row: %w", err)
		}

		applicant := snapshot.Applicant{
			Name:      field(record, columns["name"]),
			Class:     field(record, columns["class"]),
			ItemLevel: field(record, columns["itemLevel"]),
			IOScore:   field(record, columns["ioScore"]),
			Date:      field(record, columns["date"]),
			Message:   field(record, columns["message"]),
		}
		if applicant.Name == "" {
			continue
		}
		out = append(out, applicant)
	}
	return out, nil
}

// mapColumns matches sheet headers to applicant fields. Form headers are
// free-form questions, so matching is by keyword.
func mapColumns(header []string) map[string]int {
	columns := map[string]int{
		"name": -1, "class": -1, "itemLevel": -1,
		"ioScore": -1, "date": -1, "message": -1,
	}
	for i, raw := range header {
		title := strings.ToLower(strings.TrimSpace(raw))
		switch {
		case columns["name"] < 0 && strings.Contains(title, "name"):
			columns["name"] = i
		case columns["class"] < 0 && strings.Contains(title, "class"):
			columns["class"] = i
		case columns["itemLevel"] < 0 && (strings.Contains(title, "item level") || strings.Contains(title, "ilvl")):
			columns["itemLevel"] = i
		case columns["ioScore"] < 0 && (strings.Contains(title, "io") || strings.Contains(title, "raider")):
			columns["ioScore"] = i
		case columns["date"] < 0 && (strings.Contains(title, "timestamp") || strings.Contains(title, "date")):
			columns["date"] = i
		case columns["message"] < 0 && (strings.Contains(title, "message") || strings.Contains(title, "about") || strings.Contains(title, "tell us")):
			columns["message"] = i
		}
	}
	return columns
}

func field(record []string, idx int) string {
	if idx < 0 || idx >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[idx])
}
