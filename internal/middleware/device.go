package middleware

import (
	"context"
	"net/http"
	"regexp"
)

var mobileAgent = regexp.MustCompile(`(?i)mobi|android|iphone|ipad|ipod|blackberry|opera mini|iemobile`)

// Device flags requests coming from mobile browsers. A "mobile=1" or
// "mobile=0" query parameter overrides the User-Agent.
func Device(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mobile := mobileAgent.MatchString(r.UserAgent())
		switch r.URL.Query().Get("mobile") {
		case "1":
			mobile = true
		case "0":
			mobile = false
		}
		ctx := context.WithValue(r.Context(), mobileContextKey, mobile)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// IsMobile returns true if the request was flagged as coming from a mobile device.
func IsMobile(ctx context.Context) bool {
	mobile, ok := ctx.Value(mobileContextKey).(bool)
	return ok && mobile
}
