package httptesting

import (
	"net/http"
	"strings"
	"sync"

	"github.com/pkg/errors"
)

type RoundTripFunc func(req *http.Request) (*http.Response, error)

// MockTransport routes requests to handlers registered per method and URL
// path. The query string is not part of the route; handlers that care about
// it read req.URL.Query().
type MockTransport struct {
	mu       sync.Mutex
	handlers map[string]map[string]RoundTripFunc
	requests []*http.Request
}

func (transport *MockTransport) Handle(method, path string, f RoundTripFunc) {
	transport.mu.Lock()
	defer transport.mu.Unlock()

	if transport.handlers == nil {
		transport.handlers = make(map[string]map[string]RoundTripFunc)
	}

	method = strings.ToUpper(method)
	if transport.handlers[method] == nil {
		transport.handlers[method] = make(map[string]RoundTripFunc)
	}

	transport.handlers[method][path] = f
}

func (transport *MockTransport) GET(path string, f RoundTripFunc) {
	transport.Handle(http.MethodGet, path, f)
}

// Requests returns the requests received so far, in arrival order.
func (transport *MockTransport) Requests() []*http.Request {
	transport.mu.Lock()
	defer transport.mu.Unlock()

	return append([]*http.Request(nil), transport.requests...)
}

func (transport *MockTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	transport.mu.Lock()
	transport.requests = append(transport.requests, req)
	f, ok := transport.handlers[strings.ToUpper(req.Method)][req.URL.Path]
	transport.mu.Unlock()

	if !ok {
		return nil, errors.Errorf("roundtrip mock to %s %s is not defined", req.Method, req.URL.Path)
	}

	resp, err := f(req)
	if resp != nil && resp.Request == nil {
		resp.Request = req
	}

	return resp, err
}

// MockWithJsonReply answers GET path with rawData encoded as JSON.
func MockWithJsonReply(path string, rawData interface{}) (*http.Client, *MockTransport) {
	transport := &MockTransport{}
	transport.GET(path, func(_ *http.Request) (*http.Response, error) {
		return BuildResponseJson(http.StatusOK, rawData), nil
	})

	return &http.Client{Transport: transport}, transport
}
