package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/skyops/missiond/internal/application/auth"
	domerrors "github.com/skyops/missiond/internal/domain/errors"
	"github.com/skyops/missiond/internal/infrastructure/http/middleware"
)

// AuthHandler handles signup, login and the current-user endpoint.
type AuthHandler struct {
	register *auth.RegisterUser
	login    *auth.Login
	validate *validator.Validate
	log      zerolog.Logger
}

func NewAuthHandler(register *auth.RegisterUser, login *auth.Login, log zerolog.Logger) *AuthHandler {
	return &AuthHandler{
		register: register,
		login:    login,
		validate: validator.New(),
		log:      log,
	}
}

func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var body struct {
		FirstName string `json:"first_name" validate:"required,max=100"`
		LastName  string `json:"last_name" validate:"required,max=100"`
		Email     string `json:"email" validate:"required,email,max=254"`
		Password  string `json:"password" validate:"required,min=8,max=128"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeErr(w, http.StatusBadRequest, "invalid body")
		return
	}
	if err := h.validate.Struct(&body); err != nil {
		writeErr(w, http.StatusBadRequest, err.Error())
		return
	}
	email := SanitizeEmail(body.Email)
	password := SanitizePassword(body.Password)
	if email == "" || password == "" {
		writeErr(w, http.StatusBadRequest, "invalid email or password length")
		return
	}
	result, err := h.register.Execute(r.Context(), auth.RegisterUserInput{
		Email:     email,
		FirstName: body.FirstName,
		LastName:  body.LastName,
		Password:  password,
	})
	if err != nil {
		middleware.RecordAuthAttempt("signup", false)
		if errors.Is(err, domerrors.ErrEmailTaken) {
			writeErr(w, http.StatusConflict, err.Error())
			return
		}
		if errors.Is(err, domerrors.ErrInvalidCredentials) {
			writeErr(w, http.StatusBadRequest, "invalid email address")
			return
		}
		h.log.Error().Err(err).Msg("signup failed")
		writeErr(w, http.StatusInternalServerError, "internal error")
		return
	}
	middleware.RecordAuthAttempt("signup", true)
	h.log.Info().Str("user_id", result.User.ID.String()).Msg("user registered")
	writeJSON(w, http.StatusCreated, map[string]string{
		"status":  "success",
		"message": "User registered successfully",
	})
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Email    string `json:"email" validate:"required,email,max=254"`
		Password string `json:"password" validate:"required,max=128"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeErr(w, http.StatusBadRequest, "invalid body")
		return
	}
	if err := h.validate.Struct(&body); err != nil {
		writeErr(w, http.StatusBadRequest, err.Error())
		return
	}
	email := SanitizeEmail(body.Email)
	password := SanitizePassword(body.Password)
	if email == "" || password == "" {
		writeErr(w, http.StatusBadRequest, "invalid email or password length")
		return
	}
	result, err := h.login.Execute(r.Context(), auth.LoginInput{Email: email, Password: password})
	if err != nil {
		middleware.RecordAuthAttempt("login", false)
		switch {
		case errors.Is(err, domerrors.ErrUserNotFound):
			writeErr(w, http.StatusNotFound, err.Error())
		case errors.Is(err, domerrors.ErrInvalidCredentials):
			writeErr(w, http.StatusUnauthorized, err.Error())
		default:
			h.log.Error().Err(err).Msg("login failed")
			writeErr(w, http.StatusInternalServerError, "internal error")
		}
		return
	}
	middleware.RecordAuthAttempt("login", true)
	writeJSON(w, http.StatusOK, map[string]string{
		"status":       "success",
		"access_token": result.AccessToken,
		"token_type":   "Bearer",
	})
}

// Me returns the authenticated user's profile. Requires AuthValidator.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFromContext(r.Context())
	if user == nil {
		writeErr(w, http.StatusUnauthorized, "invalid or missing token")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"email":      user.Email,
		"first_name": user.FirstName,
		"last_name":  user.LastName,
	})
}
