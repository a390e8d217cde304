package gsheets

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

const sheetCSV = `Timestamp,Character Name,Class,Item Level,Raider IO Score,Tell us about yourself
2026-02-10 18:33,Ratayu,Druid,489,3012,Long time tank
2026-02-11 09:12,Lumi,Priest,485,2800,"Healer, prefers disc"
2026-02-12 20:01,,Mage,470,2500,row without a name
`

func TestParseApplicantsCSV(t *testing.T) {
	applicants, err := parseApplicantsCSV(strings.NewReader(sheetCSV))
	if err != nil {
		t.Fatalf("parse applicants: %v", err)
	}
	if len(applicants) != 2 {
		t.Fatalf("nameless rows are skipped, expected 2 applicants, got %d", len(applicants))
	}

	first := applicants[0]
	if first.Name != "Ratayu" || first.Class != "Druid" || first.ItemLevel != "489" {
		t.Fatalf("first applicant parsed wrong: %+v", first)
	}
	if first.IOScore != "3012" || first.Date != "2026-02-10 18:33" || first.Message != "Long time tank" {
		t.Fatalf("first applicant parsed wrong: %+v", first)
	}
	if applicants[1].Message != "Healer, prefers disc" {
		t.Fatalf("quoted fields must survive: %+v", applicants[1])
	}
}

func TestParseApplicantsCSV_EmptySheet(t *testing.T) {
	applicants, err := parseApplicantsCSV(strings.NewReader(""))
	if err != nil {
		t.Fatalf("empty sheet must not error: %v", err)
	}
	if len(applicants) != 0 {
		t.Fatalf("expected no applicants, got %d", len(applicants))
	}
}

func TestFetchApplicants(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/csv")
		_, _ = w.Write([]byte(sheetCSV))
	}))
	defer server.Close()

	client := NewClient(ClientConfig{CSVURL: server.URL})
	applicants, err := client.FetchApplicants(context.Background())
	if err != nil {
		t.Fatalf("fetch applicants: %v", err)
	}
	if len(applicants) != 2 {
		t.Fatalf("expected 2 applicants, got %d", len(applicants))
	}
}

func TestFetchApplicants_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client := NewClient(ClientConfig{CSVURL: server.URL})
	if _, err := client.FetchApplicants(context.Background()); err == nil {
		t.Fatal("provider errors must surface")
	}
}
