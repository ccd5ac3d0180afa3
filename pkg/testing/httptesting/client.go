package httptesting

import (
	"encoding/json"
	"net/http"
	"os"
)

// EchoSave answers every request with the same canned response and keeps the
// last request it saw, so tests can inspect the URL and headers a client
// produced without running a server.
type EchoSave struct {
	saveTo     **http.Request
	statusCode int
	content    string
	err        error
}

func (st *EchoSave) RoundTrip(req *http.Request) (*http.Response, error) {
	if st.saveTo != nil {
		*st.saveTo = req
	}

	if err := req.Context().Err(); err != nil {
		return nil, err
	}

	if st.err != nil {
		return nil, st.err
	}

	code := st.statusCode
	if code == 0 {
		code = http.StatusOK
	}

	resp := BuildResponseString(code, st.content)
	resp.Request = req
	SetHeader(resp, "Content-Type", "application/json")
	return resp, nil
}

func HttpClientFromFile(filename string) *http.Client {
	rawBytes, err := os.ReadFile(filename)
	return &http.Client{Transport: &EchoSave{err: err, content: string(rawBytes)}}
}

func HttpClientWithContent(content string) *http.Client {
	return &http.Client{Transport: &EchoSave{content: content}}
}

// HttpClientWithError fails every round trip with err.
func HttpClientWithError(err error) *http.Client {
	return &http.Client{Transport: &EchoSave{err: err}}
}

func HttpClientWithJson(jsonData interface{}) *http.Client {
	jsonBytes, err := json.Marshal(jsonData)
	return &http.Client{Transport: &EchoSave{err: err, content: string(jsonBytes)}}
}

// HttpClientSaver stores each request it receives into *saved.
func HttpClientSaver(saved **http.Request, content string) *http.Client {
	return &http.Client{Transport: &EchoSave{saveTo: saved, content: content}}
}

func HttpClientSaverWithStatus(saved **http.Request, statusCode int, content string) *http.Client {
	return &http.Client{Transport: &EchoSave{saveTo: saved, statusCode: statusCode, content: content}}
}

func HttpClientSaverWithJson(saved **http.Request, jsonData interface{}) *http.Client {
	jsonBytes, err := json.Marshal(jsonData)
	return &http.Client{Transport: &EchoSave{saveTo: saved, err: err, content: string(jsonBytes)}}
}
