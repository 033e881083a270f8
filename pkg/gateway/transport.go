package gateway

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
)

// DefaultTransport returns an http.Transport tuned for a long-lived
// interactive client hitting a single host.
func DefaultTransport() *http.Transport {
	return &http.Transport{
		MaxIdleConns:          10,
		MaxIdleConnsPerHost:   4,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   10 * time.Second,
		ExpectContinueTimeout: 1 * time.Second,
		ForceAttemptHTTP2:     true,
	}
}

// NetworkLogEntry represents a single request/response log record.
type NetworkLogEntry struct {
	RequestID      string        `json:"request_id"`
	Timestamp      time.Time     `json:"timestamp"`
	Method         string        `json:"method"`
	URL            string        `json:"url"`
	RequestBody    string        `json:"request_body,omitempty"`
	ResponseStatus int           `json:"response_status,omitempty"`
	ResponseBody   string        `json:"response_body,omitempty"`
	Duration       time.Duration `json:"duration_ms"`
	Error          string        `json:"error,omitempty"`
}

// LoggingTransport is an http.RoundTripper that records every exchange
// as a JSON line, tagged with a correlation ID.
type LoggingTransport struct {
	base    http.RoundTripper
	mu      sync.Mutex
	logFile *os.File
}

// NewLoggingTransport wraps base with JSONL logging under dir. Logging
// failures are silent: a broken log file must never break a request.
func NewLoggingTransport(base http.RoundTripper, dir string) *LoggingTransport {
	if base == nil {
		base = DefaultTransport()
	}
	lt := &LoggingTransport{base: base}
	if err := os.MkdirAll(dir, 0o700); err == nil {
		f, err := os.OpenFile(filepath.Join(dir, "network.jsonl"),
			os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err == nil {
			lt.logFile = f
		}
	}
	return lt
}

// RoundTrip implements http.RoundTripper.
func (t *LoggingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	entry := NetworkLogEntry{
		RequestID: uuid.NewString(),
		Timestamp: time.Now(),
		Method:    req.Method,
		URL:       req.URL.String(),
	}

	if req.Body != nil {
		payload, err := io.ReadAll(req.Body)
		req.Body.Close()
		if err == nil {
			entry.RequestBody = string(payload)
			req.Body = io.NopCloser(bytes.NewReader(payload))
		}
	}

	start := time.Now()
	resp, err := t.base.RoundTrip(req)
	entry.Duration = time.Since(start) / time.Millisecond

	if err != nil {
		entry.Error = err.Error()
		t.write(entry)
		return nil, err
	}

	entry.ResponseStatus = resp.StatusCode
	if resp.Body != nil {
		payload, readErr := io.ReadAll(resp.Body)
		resp.Body.Close()
		if readErr == nil {
			entry.ResponseBody = string(payload)
			resp.Body = io.NopCloser(bytes.NewReader(payload))
		}
	}

	t.write(entry)
	return resp, nil
}

func (t *LoggingTransport) write(entry NetworkLogEntry) {
	if t.logFile == nil {
		return
	}
	data, err := json.Marshal(entry)
	if err != nil {
		return
	}
	data = append(data, '\n')
	t.mu.Lock()
	defer t.mu.Unlock()
	t.logFile.Write(data)
}

// Close closes the underlying log file, if open.
func (t *LoggingTransport) Close() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.logFile != nil {
		return t.logFile.Close()
	}
	return nil
}
