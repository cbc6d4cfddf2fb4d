package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"

	"github.com/mergington/activities/internal/metrics"
	svc "github.com/mergington/activities/internal/services"
)

type errorBody struct {
	Detail string `json:"detail"`
}

type rejection struct {
	detail string
	reason string
}

var rejections = []struct {
	err error
	rejection
}{
	{svc.ErrActivityNotFound, rejection{"Activity not found", "activity_not_found"}},
	{svc.ErrAlreadySignedUp, rejection{"Student is already signed up", "already_signed_up"}},
	{svc.ErrActivityFull, rejection{"Activity is full", "activity_full"}},
	{svc.ErrNotSignedUp, rejection{"Student is not signed up for this activity", "not_signed_up"}},
	{svc.ErrActivityExists, rejection{"Activity already exists", "activity_exists"}},
}

func statusFor(kind svc.ErrorKind) int {
	switch kind {
	case svc.KindNotFound:
		return http.StatusNotFound
	case svc.KindConflict:
		return http.StatusBadRequest
	case svc.KindValidation:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// describe returns the user-facing detail and metric reason for err.
func describe(err error) (string, string) {
	for _, r := range rejections {
		if errors.Is(err, r.err) {
			return r.detail, r.reason
		}
	}
	if svc.KindOf(err) == svc.KindValidation {
		return err.Error(), "invalid_input"
	}
	return "Internal server error", ""
}

// writeServiceError maps a service error to its status and JSON body.
// Internal errors are logged; business rejections are counted.
func writeServiceError(w http.ResponseWriter, r *http.Request, log logrus.FieldLogger, err error) {
	kind := svc.KindOf(err)
	detail, reason := describe(err)
	if kind == svc.KindInternal {
		log.WithError(err).WithField("path", r.URL.Path).Error("request failed")
	} else {
		metrics.RecordRejection(reason)
	}
	writeJSON(w, statusFor(kind), errorBody{Detail: detail})
}

// writeError writes a {"detail"} body with the given status.
func writeError(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, errorBody{Detail: detail})
}

// writeJSON encodes body as the JSON response.
func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// activityName reads the {name} route param. chi matches against RawPath when
// the request carried one, and only then is the param still escaped.
func activityName(r *http.Request) string {
	raw := chi.URLParam(r, "name")
	if r.URL.RawPath == "" {
		return raw
	}
	if name, err := url.PathUnescape(raw); err == nil {
		return name
	}
	return raw
}
