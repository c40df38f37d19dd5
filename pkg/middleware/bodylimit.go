package middleware

import "net/http"

// MaxBytes limits request bodies to n bytes. Reads past the limit fail,
// which JSON decoders surface as a decode error. n <= 0 disables the limit.
func MaxBytes(n int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if n <= 0 {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Body != nil {
				r.Body = http.MaxBytesReader(w, r.Body, n)
			}
			next.ServeHTTP(w, r)
		})
	}
}
