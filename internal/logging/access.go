package logging

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"
)

// AccessLog is a chi LogFormatter that writes one entry per request to Log.
type AccessLog struct {
	Log logrus.FieldLogger
}

func (a AccessLog) NewLogEntry(r *http.Request) middleware.LogEntry {
	fields := logrus.Fields{
		"method": r.Method,
		"path":   r.URL.Path,
		"remote": r.RemoteAddr,
	}
	if id := middleware.GetReqID(r.Context()); id != "" {
		fields["request_id"] = id
	}
	return &accessEntry{log: a.Log.WithFields(fields)}
}

type accessEntry struct {
	log logrus.FieldLogger
}

func (e *accessEntry) Write(status, bytes int, _ http.Header, elapsed time.Duration, _ interface{}) {
	e.log.WithFields(logrus.Fields{
		"status":  status,
		"bytes":   bytes,
		"elapsed": elapsed.String(),
	}).Info("request")
}

// Panic is called by middleware.Recoverer before it answers 500.
func (e *accessEntry) Panic(v interface{}, stack []byte) {
	e.log.WithField("stack", string(stack)).Errorf("panic: %v", v)
}
