package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/sirupsen/logrus"

	svc "github.com/mergington/activities/internal/services"
)

// POST /admin/activities
func AdminCreateActivity(c *svc.Catalog, log logrus.FieldLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in svc.NewActivity
		dec := json.NewDecoder(r.Body)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&in); err != nil {
			writeError(w, http.StatusBadRequest, "unable to parse body")
			return
		}

		view, err := c.CreateActivity(r.Context(), in)
		if err != nil {
			writeServiceError(w, r, log, err)
			return
		}
		writeJSON(w, http.StatusCreated, view)
	}
}

// DELETE /admin/activities/{name}
func AdminDeleteActivity(c *svc.Catalog, log logrus.FieldLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conf, err := c.DeleteActivity(r.Context(), activityName(r))
		if err != nil {
			writeServiceError(w, r, log, err)
			return
		}
		writeJSON(w, http.StatusOK, conf)
	}
}
