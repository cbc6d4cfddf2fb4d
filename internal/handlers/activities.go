package handlers

import (
	"net/http"

	"github.com/sirupsen/logrus"

	svc "github.com/mergington/activities/internal/services"
)

// GET /
func Root(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/static/index.html", http.StatusTemporaryRedirect)
}

// GET /healthz
func Health(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

// GET /activities?category=
func ListActivities(c *svc.Catalog, log logrus.FieldLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		acts, err := c.ListActivities(r.Context(), r.URL.Query().Get("category"))
		if err != nil {
			writeServiceError(w, r, log, err)
			return
		}
		writeJSON(w, http.StatusOK, acts)
	}
}

// POST /activities/{name}/signup?email=
func Signup(l *svc.Ledger, log logrus.FieldLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conf, err := l.Signup(r.Context(), activityName(r), r.FormValue("email"))
		if err != nil {
			writeServiceError(w, r, log, err)
			return
		}
		writeJSON(w, http.StatusOK, conf)
	}
}

// DELETE /activities/{name}/unregister?email=
func Unregister(l *svc.Ledger, log logrus.FieldLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conf, err := l.Unregister(r.Context(), activityName(r), r.FormValue("email"))
		if err != nil {
			writeServiceError(w, r, log, err)
			return
		}
		writeJSON(w, http.StatusOK, conf)
	}
}
