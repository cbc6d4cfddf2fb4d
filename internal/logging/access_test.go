package logging

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccessLog(t *testing.T) {
	log, hook := test.NewNullLogger()
	h := middleware.RequestID(middleware.RequestLogger(AccessLog{Log: log})(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusCreated)
			_, _ = w.Write([]byte("done"))
		})))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/activities/Chess%20Club/signup", nil))
	require.Equal(t, http.StatusCreated, rec.Code)

	require.Len(t, hook.Entries, 1)
	e := hook.LastEntry()
	assert.Equal(t, logrus.InfoLevel, e.Level)
	assert.Equal(t, "request", e.Message)
	assert.Equal(t, http.MethodPost, e.Data["method"])
	assert.Equal(t, "/activities/Chess Club/signup", e.Data["path"])
	assert.Equal(t, http.StatusCreated, e.Data["status"])
	assert.Equal(t, 4, e.Data["bytes"])
	assert.NotEmpty(t, e.Data["request_id"])
}

func TestAccessLogPanic(t *testing.T) {
	log, hook := test.NewNullLogger()
	h := middleware.RequestLogger(AccessLog{Log: log})(middleware.Recoverer(
		http.HandlerFunc(func(http.ResponseWriter, *http.Request) { panic("boom") })))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/activities", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	require.Len(t, hook.Entries, 2)
	assert.Equal(t, logrus.ErrorLevel, hook.Entries[0].Level)
	assert.Equal(t, "panic: boom", hook.Entries[0].Message)
	assert.Equal(t, http.StatusInternalServerError, hook.Entries[1].Data["status"])
}
