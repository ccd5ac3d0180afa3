package httptesting

import (
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"os"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/pkg/errors"
)

// RecorderEntry is one recorded round trip as stored in a fixture file.
type RecorderEntry struct {
	Timestamp time.Time       `json:"timestamp"`
	Request   *RequestRecord  `json:"request"`
	Response  *ResponseRecord `json:"response"`
	Error     string          `json:"error,omitempty"`
}

type RequestRecord struct {
	Method string      `json:"method"`
	URL    string      `json:"url"`
	Header http.Header `json:"header,omitempty"`
}

type ResponseRecord struct {
	StatusCode int         `json:"status_code"`
	Header     http.Header `json:"header,omitempty"`
	Body       string      `json:"body,omitempty"`
}

// Recorder wraps a real transport and keeps every round trip so it can be
// saved as a fixture and replayed later through a MockTransport.
type Recorder struct {
	mu        sync.Mutex
	entries   []RecorderEntry
	transport http.RoundTripper
}

func NewRecorder(transport http.RoundTripper) *Recorder {
	return &Recorder{transport: transport}
}

var credentialHeaders = regexp.MustCompile(`(?i)^(authorization|cookie|(x[-_])?api[-_]key|access[-_]token)$`)

func filterCredentials(header http.Header) {
	for key := range header {
		if credentialHeaders.MatchString(key) {
			header.Del(key)
		}
	}
}

// RecordEntry stores req and resp with credential headers removed. The
// response body is read and replaced so the caller can still consume it.
func (r *Recorder) RecordEntry(req *http.Request, resp *http.Response, err error) {
	entry := RecorderEntry{
		Timestamp: time.Now(),
		Request: &RequestRecord{
			Method: req.Method,
			URL:    req.URL.String(),
			Header: req.Header.Clone(),
		},
	}
	filterCredentials(entry.Request.Header)

	if resp != nil {
		entry.Response = &ResponseRecord{
			StatusCode: resp.StatusCode,
			Header:     resp.Header.Clone(),
		}

		if resp.Body != nil {
			bodyBytes, readErr := io.ReadAll(resp.Body)
			_ = resp.Body.Close()
			entry.Response.Body = string(bodyBytes)
			resp.Body = io.NopCloser(strings.NewReader(entry.Response.Body))
			if readErr != nil && err == nil {
				err = errors.Wrap(readErr, "can not read response body")
			}
		}
	}

	if err != nil {
		entry.Error = err.Error()
	}

	r.mu.Lock()
	r.entries = append(r.entries, entry)
	r.mu.Unlock()
}

func (r *Recorder) RoundTrip(req *http.Request) (*http.Response, error) {
	resp, err := r.transport.RoundTrip(req)
	r.RecordEntry(req, resp, err)
	return resp, err
}

func (r *Recorder) Save(filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	r.mu.Lock()
	defer r.mu.Unlock()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	return encoder.Encode(r.entries)
}

func (r *Recorder) Load(filename string) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return err
	}

	var entries []RecorderEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return errors.Wrapf(err, "can not parse recording %s", filename)
	}

	r.mu.Lock()
	r.entries = entries
	r.mu.Unlock()
	return nil
}

func BuildResponseFromRecord(respRec *ResponseRecord) *http.Response {
	resp := BuildResponseString(respRec.StatusCode, respRec.Body)
	if respRec.Header != nil {
		resp.Header = respRec.Header.Clone()
	}
	return resp
}

// LoadFromRecorder registers a handler per recorded request. A recorded
// request only matches a replayed request with the same path and the same
// raw query string.
func (transport *MockTransport) LoadFromRecorder(recorder *Recorder) error {
	routes := make(map[string]map[string]*ResponseRecord)
	methods := make(map[string]string)

	for _, entry := range recorder.entries {
		// failed or truncated round trips are not replayed
		if entry.Request == nil || entry.Response == nil || entry.Error != "" {
			continue
		}

		u, err := url.Parse(entry.Request.URL)
		if err != nil {
			return err
		}

		if routes[u.Path] == nil {
			routes[u.Path] = make(map[string]*ResponseRecord)
		}

		routes[u.Path][u.RawQuery] = entry.Response
		methods[u.Path] = entry.Request.Method
	}

	for path, byQuery := range routes {
		byQuery := byQuery
		transport.Handle(methods[path], path, func(req *http.Request) (*http.Response, error) {
			rec, ok := byQuery[req.URL.RawQuery]
			if !ok {
				return nil, errors.Errorf("no recording for %s %s", req.Method, req.URL.String())
			}

			return BuildResponseFromRecord(rec), nil
		})
	}

	return nil
}
