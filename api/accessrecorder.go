package api

import (
	"net/http"
	"time"
)

// accessRecorder wraps a ResponseWriter and captures everything the access
// log reports about a response: final status code, body size, and how long
// the handler took. The status defaults to 200 because handlers that only
// Write never call WriteHeader.
type accessRecorder struct {
	http.ResponseWriter
	statusCode int
	bodySize   int
	start      time.Time
}

func newAccessRecorder(w http.ResponseWriter) *accessRecorder {
	return &accessRecorder{
		ResponseWriter: w,
		statusCode:     http.StatusOK,
		start:          time.Now(),
	}
}

func (ar *accessRecorder) WriteHeader(statusCode int) {
	ar.statusCode = statusCode
	ar.ResponseWriter.WriteHeader(statusCode)
}

func (ar *accessRecorder) Write(data []byte) (int, error) {
	size, err := ar.ResponseWriter.Write(data)
	ar.bodySize += size
	return size, err
}

func (ar *accessRecorder) latency() time.Duration {
	return time.Since(ar.start)
}
