package user

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/examtrack/examtrack-api/internal/apperror"
	"github.com/examtrack/examtrack-api/internal/auth"
	"github.com/examtrack/examtrack-api/internal/config"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var dto RegisterDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	resp, err := h.service.Register(r.Context(), dto)
	if err != nil {
		if apperror.IsValidation(err) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		log.WithError(err).Error("Failed to register user")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	auth.SetSessionCookie(w, resp.SessionToken, resp.CookieMaxAge)
	config.JSON(w, http.StatusOK, resp)
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var dto LoginDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	resp, err := h.service.Login(r.Context(), dto)
	if err != nil {
		if errors.Is(err, apperror.ErrUnauthenticated) {
			http.Error(w, "invalid credentials", http.StatusUnauthorized)
			return
		}
		log.WithError(err).Error("Failed to log user in")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	auth.SetSessionCookie(w, resp.SessionToken, resp.CookieMaxAge)
	config.JSON(w, http.StatusOK, resp)
}

func (h *Handler) GuestLogin(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	resp, err := h.service.GuestLogin(r.Context())
	if err != nil {
		log.WithError(err).Error("Failed to start guest session")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	auth.SetSessionCookie(w, resp.SessionToken, resp.CookieMaxAge)
	config.JSON(w, http.StatusOK, resp)
}

func (h *Handler) GoogleLogin(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var dto GoogleLoginDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	resp, err := h.service.GoogleLogin(r.Context(), dto.Code)
	if err != nil {
		if apperror.IsValidation(err) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if errors.Is(err, apperror.ErrUnauthenticated) {
			http.Error(w, "google sign-in failed", http.StatusUnauthorized)
			return
		}
		log.WithError(err).Error("Failed to complete Google login")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	auth.SetSessionCookie(w, resp.SessionToken, resp.CookieMaxAge)
	config.JSON(w, http.StatusOK, resp)
}

func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	actor, err := auth.ActorFromContext(r.Context())
	if err != nil {
		http.Error(w, "not authenticated", http.StatusUnauthorized)
		return
	}
	config.JSON(w, http.StatusOK, actor)
}

func (h *Handler) ForgotPassword(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var dto ForgotPasswordDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	code, err := h.service.ForgotPassword(r.Context(), dto.Email)
	if err != nil {
		log.WithError(err).Error("Failed to generate reset code")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	// Same message whether or not the account exists.
	resp := map[string]string{
		"message": "If an account exists with this email, a reset code has been generated.",
	}
	if code != "" {
		// TODO: deliver by email once an outbound mail provider is configured.
		resp["reset_code"] = code
	}
	config.JSON(w, http.StatusOK, resp)
}

func (h *Handler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var dto ResetPasswordDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.service.ResetPassword(r.Context(), dto.Token, dto.NewPassword); err != nil {
		if apperror.IsValidation(err) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		log.WithError(err).Error("Failed to reset password")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, map[string]string{
		"message": "password reset successful, please log in with your new password",
	})
}
