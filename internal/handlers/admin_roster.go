package handlers

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	svc "github.com/mergington/activities/internal/services"
)

// GET /admin/activities/{name}/roster
func AdminRoster(c *svc.Catalog, log logrus.FieldLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rows, err := c.Roster(r.Context(), activityName(r))
		if err != nil {
			writeServiceError(w, r, log, err)
			return
		}
		writeJSON(w, http.StatusOK, rows)
	}
}

// GET /admin/activities/{name}/roster.csv
func AdminRosterCSV(c *svc.Catalog, log logrus.FieldLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := activityName(r)
		rows, err := c.Roster(r.Context(), name)
		if err != nil {
			writeServiceError(w, r, log, err)
			return
		}

		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="roster-%s.csv"`, fileSlug(name)))

		cw := csv.NewWriter(w)
		_ = cw.Write([]string{"activity", "email", "signed_up_at"})
		for _, row := range rows {
			_ = cw.Write([]string{row.Activity, row.Email, row.SignedUpAt.UTC().Format(time.RFC3339)})
		}
		cw.Flush()
		if err := cw.Error(); err != nil {
			log.WithError(err).WithField("activity", name).Error("write roster csv")
		}
	}
}

// fileSlug lowercases name and keeps only [a-z0-9-].
func fileSlug(name string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			dash = false
		case !dash && b.Len() > 0:
			b.WriteByte('-')
			dash = true
		}
	}
	return strings.TrimRight(b.String(), "-")
}
