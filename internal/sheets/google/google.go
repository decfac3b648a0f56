// Package google adapts the Google Sheets API to the results ports:
// reading a results table from a spreadsheet and exporting national
// tallies to a share sheet.
package google

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"wahlboard/internal/core"
	"wahlboard/internal/results"

	goption "google.golang.org/api/option"
	gsheet "google.golang.org/api/sheets/v4"
)

type Client struct {
	svc           *gsheet.Service
	spreadsheetID string
	resultsSheet  string
	exportSheet   string
}

// Ensure interface conformance
var (
	_ results.Reader   = (*Client)(nil)
	_ results.Exporter = (*Client)(nil)
)

// NewFromEnv creates a Sheets client using environment variables.
// Required: GOOGLE_SPREADSHEET_ID.
// Optional sheet names: GOOGLE_RESULTS_SHEET_NAME (default "Results"),
// GOOGLE_EXPORT_SHEET_NAME (default "National Totals").
// Auth: GOOGLE_SERVICE_ACCOUNT_JSON, GOOGLE_SERVICE_ACCOUNT_FILE, or
// GOOGLE_APPLICATION_CREDENTIALS.
func NewFromEnv(ctx context.Context) (*Client, error) {
	spreadsheetID := strings.TrimSpace(os.Getenv("GOOGLE_SPREADSHEET_ID"))
	if spreadsheetID == "" {
		return nil, errors.New("missing GOOGLE_SPREADSHEET_ID")
	}

	resultsSheet := strings.TrimSpace(os.Getenv("GOOGLE_RESULTS_SHEET_NAME"))
	if resultsSheet == "" {
		resultsSheet = "Results"
	}
	exportSheet := strings.TrimSpace(os.Getenv("GOOGLE_EXPORT_SHEET_NAME"))
	if exportSheet == "" {
		exportSheet = "National Totals"
	}

	svc, err := newSheetsService(ctx)
	if err != nil {
		return nil, fmt.Errorf("sheets service: %w", err)
	}

	return &Client{
		svc:           svc,
		spreadsheetID: spreadsheetID,
		resultsSheet:  resultsSheet,
		exportSheet:   exportSheet,
	}, nil
}

// newSheetsService initializes a Sheets Service using Service Account credentials.
func newSheetsService(ctx context.Context) (*gsheet.Service, error) {
	serviceAccountJSON := strings.TrimSpace(os.Getenv("GOOGLE_SERVICE_ACCOUNT_JSON"))
	serviceAccountFile := strings.TrimSpace(os.Getenv("GOOGLE_SERVICE_ACCOUNT_FILE"))
	if serviceAccountJSON == "" && serviceAccountFile == "" {
		serviceAccountFile = strings.TrimSpace(os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"))
	}

	var credentialsJSON []byte
	var err error
	switch {
	case serviceAccountJSON != "":
		credentialsJSON = []byte(serviceAccountJSON)
	case serviceAccountFile != "":
		credentialsJSON, err = os.ReadFile(serviceAccountFile)
		if err != nil {
			return nil, fmt.Errorf("read service account file: %w", err)
		}
	default:
		return nil, errors.New("missing service account credentials (set GOOGLE_SERVICE_ACCOUNT_JSON, GOOGLE_SERVICE_ACCOUNT_FILE, or GOOGLE_APPLICATION_CREDENTIALS)")
	}

	service, err := gsheet.NewService(ctx,
		goption.WithCredentialsJSON(credentialsJSON),
		goption.WithScopes(gsheet.SpreadsheetsScope))
	if err != nil {
		return nil, fmt.Errorf("create sheets service: %w", err)
	}
	return service, nil
}

// LoadResults implements results.Reader by reading the results sheet.
// The sheet carries the same columns as the CSV source.
func (c *Client) LoadResults(ctx context.Context) ([]core.VoteRecord, error) {
	readRange := fmt.Sprintf("%s!A:E", c.resultsSheet)
	resp, err := c.svc.Spreadsheets.Values.Get(c.spreadsheetID, readRange).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("read results range %q: %w", readRange, err)
	}
	return parseResults(resp.Values)
}

// WriteNationalTotals implements results.Exporter. It clears the vote
// type's section of the export sheet and rewrites it with the tally.
func (c *Client) WriteNationalTotals(ctx context.Context, vt core.VoteType, totals []core.PartyTotal) error {
	sheet := fmt.Sprintf("%s (%s)", c.exportSheet, vt)
	clearRange := fmt.Sprintf("%s!A:C", sheet)
	if _, err := c.svc.Spreadsheets.Values.Clear(c.spreadsheetID, clearRange, &gsheet.ClearValuesRequest{}).Context(ctx).Do(); err != nil {
		return fmt.Errorf("clear export range %q: %w", clearRange, err)
	}

	values := [][]interface{}{{"party", "votes", "share"}}
	for _, t := range totals {
		values = append(values, []interface{}{t.Party, t.Votes, t.Share})
	}

	vr := &gsheet.ValueRange{Values: values}
	_, err := c.svc.Spreadsheets.Values.
		Update(c.spreadsheetID, fmt.Sprintf("%s!A1", sheet), vr).
		ValueInputOption("RAW").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("write national totals (%s): %w", vt, err)
	}
	return nil
}
