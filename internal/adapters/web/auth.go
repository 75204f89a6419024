package web

import (
	"encoding/json"
	"net/http"
)

type loginRequest struct {
	Username *string `json:"username"`
	Password *string `json:"password"`
}

type loginResponse struct {
	Message  string `json:"message"`
	Username string `json:"username"`
}

type authStatusResponse struct {
	Authenticated bool    `json:"authenticated"`
	Username      *string `json:"username"`
}

func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	status := h.authUseCase.Status(r.Context(), sessionToken(r))
	resp := authStatusResponse{Authenticated: status.Authenticated}
	if status.Authenticated {
		resp.Username = &status.Username
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Username == nil || req.Password == nil {
		h.writeValidationError(w, r, "error_invalid_body")
		return
	}

	session, err := h.authUseCase.Login(r.Context(), *req.Username, *req.Password)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    session.Token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	writeJSON(w, http.StatusOK, loginResponse{
		Message:  h.message(r, "login_success", map[string]any{"Username": session.TeacherUsername}),
		Username: session.TeacherUsername,
	})
}

// Logout always succeeds, with or without a valid session.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.authUseCase.Logout(r.Context(), sessionToken(r)); err != nil {
		h.writeError(w, r, err)
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	writeJSON(w, http.StatusOK, messageResponse{Message: h.message(r, "logout_success", nil)})
}
