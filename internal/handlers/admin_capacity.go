package handlers

import (
	"net/http"

	"github.com/sirupsen/logrus"

	svc "github.com/mergington/activities/internal/services"
)

type capacitySummary struct {
	Activities int   `json:"activities"`
	Capacity   int   `json:"capacity"`
	Enrolled   int64 `json:"enrolled"`
	Unlimited  int   `json:"unlimited"`
}

type capacityVM struct {
	Rows    []svc.CapacityRow `json:"rows"`
	Summary capacitySummary   `json:"summary"`
}

// GET /admin/capacity
func AdminCapacity(c *svc.Catalog, log logrus.FieldLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rows, err := c.Capacity(r.Context())
		if err != nil {
			writeServiceError(w, r, log, err)
			return
		}

		vm := capacityVM{Rows: rows}
		vm.Summary.Activities = len(rows)
		for _, row := range rows {
			vm.Summary.Enrolled += row.Enrolled
			if row.MaxParticipants == nil {
				vm.Summary.Unlimited++
				continue
			}
			vm.Summary.Capacity += *row.MaxParticipants
		}
		writeJSON(w, http.StatusOK, vm)
	}
}
