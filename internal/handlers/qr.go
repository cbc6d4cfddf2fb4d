package handlers

import (
	"net/http"
	"net/url"

	"github.com/sirupsen/logrus"
	qrcode "github.com/skip2/go-qrcode"

	svc "github.com/mergington/activities/internal/services"
)

// signupURL is the page a scanned poster opens. publicURL wins over the
// request host when set.
func signupURL(publicURL, host, name string) string {
	base := publicURL
	if base == "" {
		base = "http://" + host
	}
	page := url.URL{Path: "/static/index.html", Fragment: name}
	return base + page.String()
}

// GET /activities/{name}/qr.png
func QR(c *svc.Catalog, publicURL string, log logrus.FieldLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := activityName(r)
		// ensure activity exists
		if _, err := c.GetActivity(r.Context(), name); err != nil {
			writeServiceError(w, r, log, err)
			return
		}

		png, err := qrcode.Encode(signupURL(publicURL, r.Host, name), qrcode.Medium, 256)
		if err != nil {
			log.WithError(err).WithField("activity", name).Error("qr encode")
			writeError(w, http.StatusInternalServerError, "failed to generate qr")
			return
		}
		w.Header().Set("Content-Type", "image/png")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(png)
	}
}
