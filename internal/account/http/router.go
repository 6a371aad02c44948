package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/workout-tracker/backend/internal/account/domain"
	"github.com/workout-tracker/backend/internal/account/service"
	commonerrors "github.com/workout-tracker/backend/internal/common/errors"
	commonhttp "github.com/workout-tracker/backend/internal/common/http"
	"github.com/workout-tracker/backend/internal/common/logger"
)

var validate = validator.New()

// AccountService is what the handler needs from the service layer.
type AccountService interface {
	Register(ctx context.Context, input service.RegisterInput) (domain.ID, error)
	Login(ctx context.Context, input service.LoginInput) (domain.Profile, error)
	GetByID(ctx context.Context, rawID string) (domain.Profile, error)
}

type registerRequest struct {
	Username string `json:"username" validate:"required,max=64"`
	Email    string `json:"email" validate:"required,email,max=254"`
	Password string `json:"password" validate:"required,max=72"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type registerResponse struct {
	Message string `json:"message"`
	UserID  string `json:"userId"`
}

type loginResponse struct {
	Success bool      `json:"success"`
	User    loginUser `json:"user"`
}

type loginFailure struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// loginUser keeps the companion client's wire names; allenamenti_salvati is
// returned verbatim from the store.
type loginUser struct {
	ID            string          `json:"id"`
	Username      string          `json:"username"`
	Email         string          `json:"email"`
	SavedWorkouts json.RawMessage `json:"allenamenti_salvati"`
}

type profileResponse struct {
	ID            string          `json:"id"`
	Username      string          `json:"username"`
	Email         string          `json:"email"`
	SavedWorkouts json.RawMessage `json:"allenamenti_salvati"`
	CreatedAt     time.Time       `json:"created_at"`
}

type Handler struct {
	accounts       AccountService
	requestTimeout time.Duration
	log            *logger.Logger
}

func NewHandler(accounts AccountService, requestTimeout time.Duration, log *logger.Logger) http.Handler {
	h := &Handler{accounts: accounts, requestTimeout: requestTimeout, log: log}
	mux := http.NewServeMux()
	mux.HandleFunc("/health", commonhttp.HealthHandler(log))
	mux.HandleFunc("/register", h.register)
	mux.HandleFunc("/login", h.login)
	mux.HandleFunc("/user/", h.getUser)
	return mux
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		commonhttp.WriteError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req registerRequest
	if err := commonhttp.DecodeJSON(r, &req); err != nil {
		h.log.Warnf("register failed: invalid json: %v", err)
		commonhttp.WriteError(w, http.StatusBadRequest, "JSON non valido")
		return
	}

	if err := validate.Struct(req); err != nil {
		commonhttp.WriteError(w, http.StatusBadRequest, validationMessage(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.requestTimeout)
	defer cancel()

	id, err := h.accounts.Register(ctx, service.RegisterInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		commonhttp.HandleError(w, r, err, h.log)
		return
	}

	commonhttp.WriteJSON(w, http.StatusCreated, registerResponse{
		Message: "Registrazione completata",
		UserID:  string(id),
	})
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		commonhttp.WriteError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req loginRequest
	if err := commonhttp.DecodeJSON(r, &req); err != nil {
		h.log.Warnf("login failed: invalid json: %v", err)
		h.writeLoginError(w, http.StatusBadRequest, "JSON non valido")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.requestTimeout)
	defer cancel()

	profile, err := h.accounts.Login(ctx, service.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		h.writeLoginFailure(w, r, err)
		return
	}

	commonhttp.WriteJSON(w, http.StatusOK, loginResponse{
		Success: true,
		User: loginUser{
			ID:            string(profile.ID),
			Username:      profile.Username,
			Email:         profile.Email,
			SavedWorkouts: profile.SavedWorkouts,
		},
	})
}

func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		commonhttp.WriteError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	rawID := strings.TrimPrefix(r.URL.Path, "/user/")
	if rawID == "" || strings.Contains(rawID, "/") {
		commonhttp.WriteError(w, http.StatusBadRequest, "ID utente non valido")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.requestTimeout)
	defer cancel()

	profile, err := h.accounts.GetByID(ctx, rawID)
	if err != nil {
		commonhttp.HandleError(w, r, err, h.log)
		return
	}

	commonhttp.WriteJSON(w, http.StatusOK, profileResponse{
		ID:            string(profile.ID),
		Username:      profile.Username,
		Email:         profile.Email,
		SavedWorkouts: profile.SavedWorkouts,
		CreatedAt:     profile.CreatedAt,
	})
}

// Login failures use the client's {success:false, error} envelope instead of
// the plain {error} one; the status/message mapping is the domain error's.
func (h *Handler) writeLoginFailure(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	message := "Errore interno del server"

	if domainErr, ok := commonerrors.AsDomainError(err); ok {
		status = domainErr.HTTPStatus()
		message = domainErr.Message()
	} else {
		h.log.WithFields(r.Context(), logger.Fields{
			"error":  err.Error(),
			"action": "login_unhandled_error",
		}).Errorf("unhandled login error: %v", err)
	}

	h.writeLoginError(w, status, message)
}

func (h *Handler) writeLoginError(w http.ResponseWriter, status int, message string) {
	commonhttp.WriteJSON(w, status, loginFailure{Success: false, Error: message})
}

func validationMessage(err error) string {
	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) || len(fieldErrors) == 0 {
		return "Dati non validi"
	}

	fe := fieldErrors[0]
	switch fe.Tag() {
	case "required":
		return "Tutti i campi sono obbligatori"
	case "email":
		return "Email non valida"
	case "max":
		return "Campo " + strings.ToLower(fe.Field()) + " troppo lungo"
	default:
		return "Dati non validi"
	}
}
