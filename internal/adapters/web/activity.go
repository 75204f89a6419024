package web

import (
	"net/http"

	"github.com/gorilla/mux"
)

func (h *Handler) ListActivities(w http.ResponseWriter, r *http.Request) {
	activities, err := h.activityUseCase.ListActivities(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, activityDirectory(activities))
}

func (h *Handler) GetActivity(w http.ResponseWriter, r *http.Request) {
	activity, err := h.activityUseCase.GetActivity(r.Context(), mux.Vars(r)["name"])
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, newActivityView(*activity))
}

// Signup registers ?email= for the activity. Only reachable through requireTeacher.
func (h *Handler) Signup(w http.ResponseWriter, r *http.Request) {
	name, email, ok := h.rosterParams(w, r)
	if !ok {
		return
	}
	teacher, _ := teacherFromContext(r.Context())
	if err := h.activityUseCase.Signup(r.Context(), name, email, teacher); err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, messageResponse{
		Message: h.message(r, "signup_success", map[string]any{"Email": email, "Activity": name}),
	})
}

// Unregister removes ?email= from the activity. Only reachable through requireTeacher.
func (h *Handler) Unregister(w http.ResponseWriter, r *http.Request) {
	name, email, ok := h.rosterParams(w, r)
	if !ok {
		return
	}
	teacher, _ := teacherFromContext(r.Context())
	if err := h.activityUseCase.Unregister(r.Context(), name, email, teacher); err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, messageResponse{
		Message: h.message(r, "unregister_success", map[string]any{"Email": email, "Activity": name}),
	})
}

func (h *Handler) rosterParams(w http.ResponseWriter, r *http.Request) (string, string, bool) {
	// A repeated email parameter resolves to its last value.
	emails := r.URL.Query()["email"]
	if len(emails) == 0 {
		h.writeValidationError(w, r, "error_missing_email")
		return "", "", false
	}
	return mux.Vars(r)["name"], emails[len(emails)-1], true
}
