// Package apod is the HTTP client for NASA's Astronomy Picture of the Day API.
//
// # Overview
//
// The gallery only needs one endpoint, /planetary/apod, queried either with a
// start_date/end_date pair (returns a JSON array) or a single date (returns one
// object). Both shapes decode to []Record.
//
//	client, err := apod.NewClient(cfg.BaseURL, cfg.APIKey, cfg.Timeout())
//	records, err := client.FetchRange(ctx, "2024-01-01", "2024-01-07")
//	record, err := client.FetchDate(ctx, "2024-01-02")
//
// # API Endpoints
//
//	GET {base}/planetary/apod?api_key=KEY&start_date=START&end_date=END
//	GET {base}/planetary/apod?api_key=KEY&date=DATE
//
// Requests send Accept: application/json and a skyview User-Agent. The base
// URL defaults to https://api.nasa.gov; a bare host gets https:// and any
// path or query on it is dropped.
//
// # Records
//
// A Record is keyed by its Date (YYYY-MM-DD):
//
//   - Title, Explanation: text shown in the list and detail views
//   - URL: the picture, or an embed page for videos
//   - HDURL: optional high resolution image
//   - MediaType: "image" or something else (usually "video")
//
// IsImage reports MediaType == "image". ImageURL prefers HDURL and falls
// back to URL. ParseDate parses the key; callers decide what to do with keys
// that do not parse. Records are treated as immutable values; a new range
// fetch replaces the whole collection.
//
// # Validation
//
//   - ValidateDate: YYYY-MM-DD and a real calendar date
//   - ValidateDay: ValidateDate plus not after today
//   - ValidateRange: both ends present (ErrMissingRange), each a valid day
//     not after today (ErrFutureDate), start not after end
//
// The user-facing paths (flags, range form, show) validate against today.
// The client itself only checks format and ordering and leaves the question
// of which days exist to the server.
//
// # Errors
//
// HTTP status 400 and above is an error carrying the API's own message when
// the body has one ({"msg": ...} or {"error": {"message": ...}}):
//
//	fetch apod range 2024-01-01..2024-01-07: api returned status 429: rate limit exceeded
//
// The api_key query value is redacted from transport errors so it never
// reaches the UI or logs. All errors are wrapped with %w.
//
// # Testing
//
// Fetcher is the interface the UI and CLI depend on; tests use fakes or an
// httptest.Server with NewClient pointed at it.
package apod
