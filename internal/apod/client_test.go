package apod

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"
)

func TestParseBaseURL_DefaultsAndNormalizes(t *testing.T) {
	u, err := parseBaseURL("")
	if err != nil {
		t.Fatalf("parseBaseURL returned error: %v", err)
	}
	if u.Scheme != "https" || u.Host != "api.nasa.gov" {
		t.Fatalf("parseBaseURL(\"\") = %q, want https://api.nasa.gov", u.String())
	}

	u, err = parseBaseURL("http://example.com:1234/path?x=1#frag")
	if err != nil {
		t.Fatalf("parseBaseURL returned error: %v", err)
	}
	if u.Path != "" || u.RawQuery != "" || u.Fragment != "" {
		t.Fatalf("url not normalized: %q", u.String())
	}
}

func TestValidateDate(t *testing.T) {
	tests := []struct {
		in      string
		wantErr bool
	}{
		{"2024-01-02", false},
		{" 2024-01-02 ", false},
		{"2024-1-2", true},
		{"2024/01/02", true},
		{"2024-02-30", true},
		{"", true},
	}
	for _, tt := range tests {
		err := ValidateDate(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateDate(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
	}
}

func TestValidateRange(t *testing.T) {
	today := time.Date(2024, 3, 10, 23, 30, 0, 0, time.UTC)

	if err := ValidateRange("", "2024-01-02", today); !errors.Is(err, ErrMissingRange) {
		t.Fatalf("ValidateRange missing start = %v, want ErrMissingRange", err)
	}
	if err := ValidateRange("2024-01-03", "2024-01-02", today); err == nil {
		t.Fatalf("ValidateRange reversed returned nil, want error")
	}
	if err := ValidateRange("2024-01-01", "2024-01-01", today); err != nil {
		t.Fatalf("ValidateRange same day returned %v, want nil", err)
	}
	if err := ValidateRange("2024-03-01", "2024-03-10", today); err != nil {
		t.Fatalf("ValidateRange ending today returned %v, want nil", err)
	}
	if err := ValidateRange("2024-03-01", "2024-03-11", today); !errors.Is(err, ErrFutureDate) {
		t.Fatalf("ValidateRange future end = %v, want ErrFutureDate", err)
	}
	if err := ValidateRange("2024-03-11", "2024-03-12", today); !errors.Is(err, ErrFutureDate) {
		t.Fatalf("ValidateRange future start = %v, want ErrFutureDate", err)
	}
}

func TestValidateDay(t *testing.T) {
	today := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	if err := ValidateDay("2024-03-10", today); err != nil {
		t.Fatalf("ValidateDay today = %v, want nil", err)
	}
	if err := ValidateDay("2024-03-11", today); !errors.Is(err, ErrFutureDate) {
		t.Fatalf("ValidateDay tomorrow = %v, want ErrFutureDate", err)
	}
	if err := ValidateDay("2024-3-1", today); err == nil || errors.Is(err, ErrFutureDate) {
		t.Fatalf("ValidateDay bad format = %v, want format error", err)
	}
}

func TestRangeEndingAt(t *testing.T) {
	end := time.Date(2024, time.March, 2, 0, 0, 0, 0, time.UTC)
	start, stop := RangeEndingAt(end, 3)
	if start != "2024-02-29" || stop != "2024-03-02" {
		t.Fatalf("RangeEndingAt = %s..%s, want 2024-02-29..2024-03-02", start, stop)
	}
	start, stop = RangeEndingAt(end, 0)
	if start != stop {
		t.Fatalf("RangeEndingAt(0) = %s..%s, want a single day", start, stop)
	}
}

func TestClient_FetchRangeEncodesQuery(t *testing.T) {
	t.Parallel()

	var gotQuery url.Values
	var gotUserAgent string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != apodPath {
			http.NotFound(w, r)
			return
		}
		gotQuery = r.URL.Query()
		gotUserAgent = r.Header.Get("User-Agent")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"title":"Nebula","date":"2024-01-01","url":"u1","media_type":"image","hdurl":"hd1"},
			{"title":"Comet","date":"2024-01-02","url":"u2","media_type":"video"}
		]`))
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL, "secret", time.Second)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	t.Cleanup(cancel)

	records, err := c.FetchRange(ctx, "2024-01-01", "2024-01-02")
	if err != nil {
		t.Fatalf("FetchRange returned error: %v", err)
	}
	if len(records) != 2 || records[0].Title != "Nebula" || records[1].MediaType != "video" {
		t.Fatalf("FetchRange records = %#v, want Nebula and Comet", records)
	}
	if records[0].ImageURL() != "hd1" || records[1].ImageURL() != "u2" {
		t.Fatalf("ImageURL = %q/%q, want hd1/u2", records[0].ImageURL(), records[1].ImageURL())
	}
	if gotQuery.Get("start_date") != "2024-01-01" ||
		gotQuery.Get("end_date") != "2024-01-02" ||
		gotQuery.Get("api_key") != "secret" {
		t.Fatalf("FetchRange query = %v, want range and api_key", gotQuery)
	}
	if !strings.HasPrefix(gotUserAgent, "skyview/") {
		t.Fatalf("User-Agent = %q, want skyview/*", gotUserAgent)
	}
}

func TestClient_FetchDateAcceptsSingleObject(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("date") != "2024-01-03" {
			http.Error(w, "missing date", http.StatusBadRequest)
			return
		}
		_, _ = w.Write([]byte(`{"title":"Aurora","date":"2024-01-03","url":"u3","media_type":"image"}`))
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL, "", time.Second)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	rec, err := c.FetchDate(context.Background(), "2024-01-03")
	if err != nil {
		t.Fatalf("FetchDate returned error: %v", err)
	}
	if rec.Title != "Aurora" || !rec.IsImage() {
		t.Fatalf("FetchDate = %#v, want Aurora image", rec)
	}
}

func TestClient_InvalidDateSkipsRequest(t *testing.T) {
	called := false
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL, "", time.Second)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	if _, err := c.FetchDate(context.Background(), "01/02/2024"); err == nil {
		t.Fatalf("FetchDate returned nil error, want validation error")
	}
	if _, err := c.FetchRange(context.Background(), "2024-01-01", ""); !errors.Is(err, ErrMissingRange) {
		t.Fatalf("FetchRange error = %v, want ErrMissingRange", err)
	}
	if called {
		t.Fatalf("server was called for an invalid request")
	}
}

func TestClient_HTTPErrorAndDecodeError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Query().Get("start_date") {
		case "2024-01-01":
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"code":400,"msg":"Date must be between Jun 16, 1995 and today."}`))
		case "2024-01-02":
			w.WriteHeader(http.StatusForbidden)
			_, _ = w.Write([]byte(`{"error":{"code":"API_KEY_INVALID","message":"An invalid api_key was supplied."}}`))
		case "2024-01-03":
			http.Error(w, "boom", http.StatusInternalServerError)
		default:
			_, _ = w.Write([]byte("{not-json"))
		}
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL, "", time.Second)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	ctx := context.Background()

	_, err = c.FetchRange(ctx, "2024-01-01", "2024-01-05")
	if err == nil || !strings.Contains(err.Error(), "Date must be between") {
		t.Fatalf("FetchRange error = %v, want API msg", err)
	}
	_, err = c.FetchRange(ctx, "2024-01-02", "2024-01-05")
	if err == nil || !strings.Contains(err.Error(), "invalid api_key") {
		t.Fatalf("FetchRange error = %v, want API error message", err)
	}
	_, err = c.FetchRange(ctx, "2024-01-03", "2024-01-05")
	if err == nil || !strings.Contains(err.Error(), "returned status 500") {
		t.Fatalf("FetchRange error = %v, want status 500 error", err)
	}
	_, err = c.FetchRange(ctx, "2024-01-04", "2024-01-05")
	if err == nil || !strings.Contains(err.Error(), "decode response") {
		t.Fatalf("FetchRange error = %v, want decode response error", err)
	}
}

func TestRedactKey(t *testing.T) {
	err := redactKey(errors.New(`Get "https://x/?api_key=abc123": timeout`), "abc123")
	if strings.Contains(err.Error(), "abc123") {
		t.Fatalf("redactKey left key in %q", err.Error())
	}
}
