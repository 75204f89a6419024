package web

import (
	"net/http"

	"github.com/gorilla/mux"
)

const indexPath = "/static/index.html"

// NewRouter maps the API routes onto h. Files under staticDir are served at /static/.
// The returned handler logs and tags every request, matched or not.
func NewRouter(h *Handler, staticDir string) http.Handler {
	r := mux.NewRouter()
	r.Use(h.resolveSession)
	r.NotFoundHandler = http.HandlerFunc(h.notFound)
	r.MethodNotAllowedHandler = http.HandlerFunc(h.methodNotAllowed)

	r.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, indexPath, http.StatusTemporaryRedirect)
	}).Methods(http.MethodGet)
	r.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods(http.MethodGet)

	r.HandleFunc("/activities", h.ListActivities).Methods(http.MethodGet)
	r.HandleFunc("/activities/{name}", h.GetActivity).Methods(http.MethodGet)
	r.Handle("/activities/{name}/signup", h.requireTeacher(http.HandlerFunc(h.Signup))).Methods(http.MethodPost)
	r.Handle("/activities/{name}/unregister", h.requireTeacher(http.HandlerFunc(h.Unregister))).Methods(http.MethodDelete)

	r.HandleFunc("/auth/me", h.Me).Methods(http.MethodGet)
	r.HandleFunc("/auth/login", h.Login).Methods(http.MethodPost)
	r.HandleFunc("/auth/logout", h.Logout).Methods(http.MethodPost)

	r.PathPrefix("/static/").Handler(http.StripPrefix("/static/", http.FileServer(http.Dir(staticDir))))
	return requestLogger(r)
}
