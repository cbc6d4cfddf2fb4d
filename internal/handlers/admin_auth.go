package handlers

import (
	"crypto/subtle"
	"net/http"
	"time"
)

const (
	adminCookieName = "admin_session"
	adminHeader     = "X-Admin-Token"
)

func validAdmin(r *http.Request, token string) bool {
	got := r.Header.Get(adminHeader)
	if got == "" {
		if c, err := r.Cookie(adminCookieName); err == nil {
			got = c.Value
		}
	}
	return got != "" && subtle.ConstantTimeCompare([]byte(got), []byte(token)) == 1
}

// RequireAdmin blocks access unless the request carries the admin token in
// the X-Admin-Token header or the admin_session cookie. An empty token
// disables the admin surface entirely.
func RequireAdmin(token string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if token == "" {
				writeError(w, http.StatusUnauthorized, "admin access is disabled")
				return
			}
			if !validAdmin(r, token) {
				writeError(w, http.StatusUnauthorized, "invalid admin token")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// POST /admin/login
func AdminLogin(token string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		pw := r.FormValue("token")
		if token == "" || subtle.ConstantTimeCompare([]byte(pw), []byte(token)) != 1 {
			writeError(w, http.StatusUnauthorized, "invalid admin token")
			return
		}
		http.SetCookie(w, &http.Cookie{
			Name:     adminCookieName,
			Value:    pw,
			Path:     "/admin",
			HttpOnly: true,
			SameSite: http.SameSiteStrictMode,
			Expires:  time.Now().Add(24 * time.Hour),
		})
		w.WriteHeader(http.StatusNoContent)
	}
}

// POST /admin/logout
func AdminLogout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     adminCookieName,
		Value:    "",
		Path:     "/admin",
		HttpOnly: true,
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
	})
	w.WriteHeader(http.StatusNoContent)
}
