package apod

import (
	"encoding/json"
	"strings"
	"time"
)

// DateLayout is the calendar layout of a record's date key.
const DateLayout = "2006-01-02"

// MediaImage is the media_type value for still images.
const MediaImage = "image"

// Record mirrors one entry returned by /planetary/apod.
// Records are immutable once fetched; Date is the unique key.
type Record struct {
	Title       string `json:"title"`
	Explanation string `json:"explanation"`
	URL         string `json:"url"`
	Date        string `json:"date"`
	HDURL       string `json:"hdurl,omitempty"`
	MediaType   string `json:"media_type"`
}

// IsImage reports whether the record is a still image.
func (r Record) IsImage() bool {
	return strings.EqualFold(strings.TrimSpace(r.MediaType), MediaImage)
}

// ImageURL returns the high resolution URL when present, else URL.
func (r Record) ImageURL() string {
	if hd := strings.TrimSpace(r.HDURL); hd != "" {
		return hd
	}
	return r.URL
}

// ParseDate parses the record key as a calendar date.
func (r Record) ParseDate() (time.Time, bool) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(r.Date))
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// decodeRecords accepts either a JSON array of records or a single record
// object; the API returns the latter for single-date requests.
func decodeRecords(body []byte) ([]Record, error) {
	trimmed := strings.TrimSpace(string(body))
	if strings.HasPrefix(trimmed, "[") {
		var records []Record
		if err := json.Unmarshal(body, &records); err != nil {
			return nil, err
		}
		if records == nil {
			records = []Record{}
		}
		return records, nil
	}
	var single Record
	if err := json.Unmarshal(body, &single); err != nil {
		return nil, err
	}
	return []Record{single}, nil
}

// apiError is the error envelope returned by api.nasa.gov.
type apiError struct {
	Code  int    `json:"code"`
	Msg   string `json:"msg"`
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func (e apiError) message() string {
	if msg := strings.TrimSpace(e.Msg); msg != "" {
		return msg
	}
	return strings.TrimSpace(e.Error.Message)
}
