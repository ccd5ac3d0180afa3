package httptesting

import (
	"net/http"
	"os"
	"testing"
)

var AlwaysRecord = false
var RecordIfFileNotFound = false

// RunHttpTestWithRecorder swaps client's transport for a replay of
// recordFile. With TEST_HTTP_RECORD=1 it talks to the real API instead and
// the returned func saves the new recording.
func RunHttpTestWithRecorder(t *testing.T, client *http.Client, recordFile string) (bool, func()) {
	_, fErr := os.Stat(recordFile)
	notFound := fErr != nil && os.IsNotExist(fErr)

	if os.Getenv("TEST_HTTP_RECORD") == "1" || (RecordIfFileNotFound && notFound) || AlwaysRecord {
		recorder := NewRecorder(http.DefaultTransport)
		client.Transport = recorder
		return true, func() {
			if err := recorder.Save(recordFile); err != nil {
				t.Errorf("failed to save recorded requests: %v", err)
			}
		}
	}

	recorder := NewRecorder(nil)
	if err := recorder.Load(recordFile); err != nil {
		t.Fatalf("failed to load recorded requests: %v", err)
	}

	mockTransport := &MockTransport{}
	if err := mockTransport.LoadFromRecorder(recorder); err != nil {
		t.Fatalf("failed to load recordings: %v", err)
	}

	client.Transport = mockTransport
	return false, func() {}
}
