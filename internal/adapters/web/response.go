package web

import (
	"bytes"
	"encoding/json"
	"log"
	"net/http"

	"mergington/internal/domain"
	"mergington/internal/domain/entities"
)

var statusByCode = map[string]int{
	"activity_not_found":      http.StatusNotFound,
	"already_signed_up":       http.StatusBadRequest,
	"not_signed_up":           http.StatusBadRequest,
	"invalid_credentials":     http.StatusUnauthorized,
	"teacher_login_required":  http.StatusForbidden,
	"credentials_unavailable": http.StatusInternalServerError,
}

type messageResponse struct {
	Message string `json:"message"`
}

type errorResponse struct {
	Detail string `json:"detail"`
}

type activityView struct {
	Description     string   `json:"description"`
	Schedule        string   `json:"schedule"`
	MaxParticipants int      `json:"max_participants"`
	Participants    []string `json:"participants"`
}

func newActivityView(a entities.Activity) activityView {
	participants := a.Participants
	if participants == nil {
		participants = []string{}
	}
	return activityView{
		Description:     a.Description,
		Schedule:        a.Schedule,
		MaxParticipants: a.MaxParticipants,
		Participants:    participants,
	}
}

// activityDirectory encodes as a JSON object keyed by activity name, keeping
// slice order.
type activityDirectory []entities.Activity

func (d activityDirectory) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, a := range d {
		if i > 0 {
			buf.WriteByte(',')
		}
		name, err := json.Marshal(a.Name)
		if err != nil {
			return nil, err
		}
		body, err := json.Marshal(newActivityView(a))
		if err != nil {
			return nil, err
		}
		buf.Write(name)
		buf.WriteByte(':')
		buf.Write(body)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("❌ write response: %v", err)
	}
}

func (h *Handler) locale(r *http.Request) string {
	return h.translator.Locale(r.URL.Query().Get("lang"), r.Header.Get("Accept-Language"))
}

func (h *Handler) message(r *http.Request, key string, data map[string]any) string {
	return h.translator.T(h.locale(r), key, data)
}

// writeError maps a domain error to its status and localized detail.
// Anything else is logged and reported as a 500.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	code := domain.Code(err)
	status, ok := statusByCode[code]
	if !ok {
		log.Printf("❌ %s %s: %v", r.Method, r.URL.Path, err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Detail: h.message(r, "error_internal", nil)})
		return
	}
	if status >= http.StatusInternalServerError {
		log.Printf("❌ %s %s: %v", r.Method, r.URL.Path, err)
	}
	writeJSON(w, status, errorResponse{Detail: h.message(r, "error_"+code, nil)})
}

func (h *Handler) writeValidationError(w http.ResponseWriter, r *http.Request, key string) {
	writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Detail: h.message(r, key, nil)})
}

func (h *Handler) notFound(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusNotFound, errorResponse{Detail: h.message(r, "error_not_found", nil)})
}

func (h *Handler) methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusMethodNotAllowed, errorResponse{Detail: h.message(r, "error_method_not_allowed", nil)})
}
