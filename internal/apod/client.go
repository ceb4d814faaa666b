package apod

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"
)

// Fetcher retrieves APOD records. It is implemented by *Client and can be
// replaced in tests.
type Fetcher interface {
	FetchRange(ctx context.Context, start, end string) ([]Record, error)
	FetchDate(ctx context.Context, date string) (Record, error)
}

// Ensure Client implements Fetcher at compile time.
var _ Fetcher = (*Client)(nil)

// Client talks to the APOD HTTP API.
type Client struct {
	baseURL   *url.URL
	apiKey    string
	http      *http.Client
	userAgent string
}

const (
	DefaultBaseURL   = "https://api.nasa.gov"
	DefaultAPIKey    = "DEMO_KEY"
	defaultUserAgent = "skyview/0.1"
	defaultTimeout   = 10 * time.Second
	apodPath         = "/planetary/apod"
	maxErrorBody     = 4 << 10
)

var dateRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// ErrMissingRange is returned when either end of a date range is empty.
var ErrMissingRange = errors.New("please select both start and end dates")

// ErrFutureDate is returned for dates after today; the archive has no
// pictures for them yet.
var ErrFutureDate = errors.New("date is after today")

// NewClient builds a Client for baseURL. An empty baseURL or apiKey falls
// back to the public api.nasa.gov endpoint and DEMO_KEY.
func NewClient(baseURL, apiKey string, timeout time.Duration) (*Client, error) {
	base, err := parseBaseURL(baseURL)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(apiKey) == "" {
		apiKey = DefaultAPIKey
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL:   base,
		apiKey:    strings.TrimSpace(apiKey),
		http:      &http.Client{Timeout: timeout},
		userAgent: defaultUserAgent,
	}, nil
}

// FetchRange retrieves every record between start and end inclusive.
func (c *Client) FetchRange(ctx context.Context, start, end string) ([]Record, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	if err := checkRange(start, end); err != nil {
		return nil, err
	}
	values := url.Values{}
	values.Set("start_date", strings.TrimSpace(start))
	values.Set("end_date", strings.TrimSpace(end))
	records, err := c.get(ctx, values)
	if err != nil {
		return nil, fmt.Errorf("fetch apod range %s..%s: %w", start, end, err)
	}
	return records, nil
}

// FetchDate retrieves the record for a single date.
func (c *Client) FetchDate(ctx context.Context, date string) (Record, error) {
	if c == nil {
		return Record{}, fmt.Errorf("client is nil")
	}
	if err := ValidateDate(date); err != nil {
		return Record{}, err
	}
	values := url.Values{}
	values.Set("date", strings.TrimSpace(date))
	records, err := c.get(ctx, values)
	if err != nil {
		return Record{}, fmt.Errorf("fetch apod %s: %w", date, err)
	}
	if len(records) == 0 {
		return Record{}, fmt.Errorf("fetch apod %s: empty response", date)
	}
	return records[0], nil
}

// ValidateDate checks that s is a real calendar date in YYYY-MM-DD form.
func ValidateDate(s string) error {
	trimmed := strings.TrimSpace(s)
	if !dateRe.MatchString(trimmed) {
		return fmt.Errorf("invalid date format %q. Use YYYY-MM-DD", s)
	}
	if _, err := time.Parse(DateLayout, trimmed); err != nil {
		return fmt.Errorf("invalid date %q: %w", s, err)
	}
	return nil
}

// ValidateDay checks s like ValidateDate and rejects days after today's
// calendar date.
func ValidateDay(s string, today time.Time) error {
	if err := ValidateDate(s); err != nil {
		return err
	}
	return notAfter(s, today)
}

// ValidateRange checks both ends of a range, their ordering, and that
// neither lies after today.
func ValidateRange(start, end string, today time.Time) error {
	if err := checkRange(start, end); err != nil {
		return err
	}
	if err := notAfter(start, today); err != nil {
		return err
	}
	return notAfter(end, today)
}

// checkRange validates presence, format and ordering. The server stays the
// judge of which days exist, so requests skip the today check.
func checkRange(start, end string) error {
	if strings.TrimSpace(start) == "" || strings.TrimSpace(end) == "" {
		return ErrMissingRange
	}
	if err := ValidateDate(start); err != nil {
		return err
	}
	if err := ValidateDate(end); err != nil {
		return err
	}
	if strings.TrimSpace(start) > strings.TrimSpace(end) {
		return fmt.Errorf("start date %s is after end date %s", start, end)
	}
	return nil
}

func notAfter(s string, today time.Time) error {
	if day := strings.TrimSpace(s); day > today.Format(DateLayout) {
		return fmt.Errorf("%w: %s", ErrFutureDate, day)
	}
	return nil
}

// RangeEndingAt returns the start and end keys of a days-long range that ends
// on the given day.
func RangeEndingAt(end time.Time, days int) (string, string) {
	if days < 1 {
		days = 1
	}
	start := end.AddDate(0, 0, -(days - 1))
	return start.Format(DateLayout), end.Format(DateLayout)
}

func (c *Client) get(ctx context.Context, values url.Values) ([]Record, error) {
	values.Set("api_key", c.apiKey)
	rel := &url.URL{Path: apodPath, RawQuery: values.Encode()}
	reqURL := c.baseURL.ResolveReference(rel)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", redactKey(err, c.apiKey))
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 400 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		var apiErr apiError
		if json.Unmarshal(body, &apiErr) == nil && apiErr.message() != "" {
			return nil, fmt.Errorf("api returned status %d: %s", resp.StatusCode, apiErr.message())
		}
		return nil, fmt.Errorf("api returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	records, err := decodeRecords(body)
	if err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return records, nil
}

// redactKey strips the API key from transport errors, which embed the URL.
func redactKey(err error, key string) error {
	if key == "" || !strings.Contains(err.Error(), key) {
		return err
	}
	return errors.New(strings.ReplaceAll(err.Error(), key, "REDACTED"))
}

func parseBaseURL(raw string) (*url.URL, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		trimmed = DefaultBaseURL
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "https://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse base_url %q: %w", raw, err)
	}
	u.Path = ""
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
