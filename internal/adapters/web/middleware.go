package web

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"

	"mergington/internal/domain"
)

const (
	// SessionCookieName is the cookie carrying the teacher session token.
	SessionCookieName = "teacher_session"
	requestIDHeader   = "X-Request-ID"
)

type ctxKey int

const teacherKey ctxKey = iota

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// requestLogger tags every request with an id and logs it once served.
func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(requestIDHeader, id)

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()
		next.ServeHTTP(rec, r)
		log.Printf("%s %s -> %d (%s) rid=%s", r.Method, r.URL.Path, rec.status, time.Since(start).Round(time.Microsecond), id)
	})
}

// resolveSession looks up the session cookie and, when it maps to a teacher,
// stores the username in the request context.
func (h *Handler) resolveSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if username, ok := h.authUseCase.CurrentTeacher(r.Context(), sessionToken(r)); ok {
			r = r.WithContext(context.WithValue(r.Context(), teacherKey, username))
		}
		next.ServeHTTP(w, r)
	})
}

// requireTeacher rejects the request with 403 unless resolveSession found a teacher.
func (h *Handler) requireTeacher(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := teacherFromContext(r.Context()); !ok {
			h.writeError(w, r, domain.ErrTeacherLoginRequired)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func teacherFromContext(ctx context.Context) (string, bool) {
	username, ok := ctx.Value(teacherKey).(string)
	return username, ok && username != ""
}

func sessionToken(r *http.Request) string {
	c, err := r.Cookie(SessionCookieName)
	if err != nil {
		return ""
	}
	return c.Value
}
