package api

import (
	"log"
	"net/http"
	"time"
)

// statusWriter records what was actually sent to the client.
type statusWriter struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusWriter) Write(b []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}

	n, err := w.ResponseWriter.Write(b)
	w.bytes += n
	return n, err
}

// loggingMiddleware emits one key=value line per request. Panics in a
// handler are logged and answered with a 500 instead of killing the connection.
func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w}

		defer func() {
			if rec := recover(); rec != nil {
				log.Printf("panic: method=%s path=%s err=%v", r.Method, r.URL.Path, rec)
				if sw.status == 0 {
					http.Error(sw, `{"error":"internal server error"}`, http.StatusInternalServerError)
				}
			}

			log.Printf(
				"method=%s path=%s status=%d bytes=%d dur=%dms",
				r.Method, r.URL.RequestURI(), sw.status, sw.bytes, time.Since(start).Milliseconds(),
			)
		}()

		next.ServeHTTP(sw, r)
	})
}
