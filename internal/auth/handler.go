package auth

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/workdesk/workdesk/internal/platform/httpx"
	"github.com/workdesk/workdesk/internal/shared"
)

// Handler wires HTTP endpoints for authentication flows.
type Handler struct {
	logger    *slog.Logger
	service   *Service
	validator *validator.Validate
}

// NewHandler constructs a Handler instance.
func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{logger: logger, service: service, validator: validator.New()}
}

// MountRoutes registers auth routes on the provided router.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Post("/register", h.handleRegister)
	r.Post("/login", h.handleLogin)
	r.Get("/verify", h.handleVerify)
	r.Route("/forgot-password", func(r chi.Router) {
		r.Post("/check-email", h.handleCheckEmail)
		r.Post("/verify-answer", h.handleVerifyAnswer)
		r.Post("/reset", h.handleReset)
	})
}

type registerRequest struct {
	Name             string `json:"name" validate:"required,max=100"`
	Email            string `json:"email" validate:"required,email,max=254"`
	Password         string `json:"password" validate:"required"`
	SecurityQuestion string `json:"securityQuestion" validate:"required"`
	SecurityAnswer   string `json:"securityAnswer" validate:"required"`
}

func (h *Handler) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "malformed JSON body")
		return
	}
	if field, msg, ok := h.checkRegister(req); !ok {
		httpx.FieldProblem(w, http.StatusBadRequest, field, msg)
		return
	}

	err := h.service.Register(r.Context(), RegisterInput{
		Name:             req.Name,
		Email:            req.Email,
		Password:         req.Password,
		SecurityQuestion: SecurityQuestion(req.SecurityQuestion),
		SecurityAnswer:   req.SecurityAnswer,
	})
	if err == shared.ErrEmailExists {
		httpx.FieldProblem(w, http.StatusBadRequest, "email", "Email already exists")
		return
	}
	if err != nil {
		h.logger.Error("register failed", "error", err)
		httpx.Problem(w, http.StatusInternalServerError, "Internal Error", "")
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]string{"msg": "User registered successfully"})
}

func (h *Handler) checkRegister(req registerRequest) (field, msg string, ok bool) {
	if err := h.validator.Struct(req); err != nil {
		fieldErrs, isValidation := err.(validator.ValidationErrors)
		if !isValidation || len(fieldErrs) == 0 {
			return "general", "invalid input", false
		}
		name := strings.ToLower(fieldErrs[0].Field()[:1]) + fieldErrs[0].Field()[1:]
		return name, "invalid " + name, false
	}
	if !passwordMeetsPolicy(req.Password) {
		return "password", "Password does not meet requirements", false
	}
	if !SecurityQuestion(req.SecurityQuestion).Valid() {
		return "securityQuestion", "Unknown security question", false
	}
	return "", "", true
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "malformed JSON body")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		httpx.FieldProblem(w, http.StatusBadRequest, "email", "Please enter a valid email")
		return
	}

	token, err := h.service.Login(r.Context(), req.Email, req.Password)
	switch {
	case err == shared.ErrNotFound:
		// Unknown email and wrong password fail distinctly on purpose; the
		// UI points at the failing field. User enumeration tradeoff accepted.
		httpx.FieldProblem(w, http.StatusNotFound, "email", "User not found")
		return
	case err == shared.ErrInvalidCredentials:
		httpx.FieldProblem(w, http.StatusUnauthorized, "password", "Password is incorrect")
		return
	case err != nil:
		h.logger.Error("login failed", "error", err)
		httpx.Problem(w, http.StatusInternalServerError, "Internal Error", "")
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]string{"msg": "Login successful", "token": token})
}

func (h *Handler) handleVerify(w http.ResponseWriter, r *http.Request) {
	header := r.Header.Get("Authorization")
	if header == "" {
		httpx.Problem(w, http.StatusUnauthorized, "Unauthorized", "No token provided")
		return
	}
	var token string
	if parts := strings.SplitN(header, " ", 2); len(parts) == 2 {
		token = parts[1]
	}

	userID, err := h.service.VerifyToken(token)
	if err != nil {
		httpx.Problem(w, http.StatusForbidden, "Forbidden", "Invalid token")
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]string{"msg": "Token valid", "userId": userID})
}

type checkEmailRequest struct {
	Email string `json:"email" validate:"required,email,max=254"`
}

func (h *Handler) handleCheckEmail(w http.ResponseWriter, r *http.Request) {
	var req checkEmailRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "malformed JSON body")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		httpx.FieldProblem(w, http.StatusBadRequest, "email", "Please enter a valid email")
		return
	}

	question, err := h.service.StartPasswordReset(r.Context(), req.Email)
	if err == shared.ErrNotFound {
		httpx.FieldProblem(w, http.StatusNotFound, "email", "Email not found")
		return
	}
	if err != nil {
		h.logger.Error("check email failed", "error", err)
		httpx.Problem(w, http.StatusInternalServerError, "Internal Error", "")
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]string{"securityQuestion": string(question)})
}

type verifyAnswerRequest struct {
	Email          string `json:"email" validate:"required,email"`
	SecurityAnswer string `json:"securityAnswer" validate:"required"`
}

func (h *Handler) handleVerifyAnswer(w http.ResponseWriter, r *http.Request) {
	var req verifyAnswerRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "malformed JSON body")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		httpx.FieldProblem(w, http.StatusBadRequest, "securityAnswer", "Please provide an answer")
		return
	}

	token, err := h.service.VerifySecurityAnswer(r.Context(), req.Email, req.SecurityAnswer)
	switch {
	case err == shared.ErrNotFound:
		httpx.FieldProblem(w, http.StatusNotFound, "email", "User not found")
		return
	case err == shared.ErrWrongAnswer:
		httpx.FieldProblem(w, http.StatusBadRequest, "securityAnswer", "Incorrect answer")
		return
	case err != nil:
		h.logger.Error("verify answer failed", "error", err)
		httpx.Problem(w, http.StatusInternalServerError, "Internal Error", "")
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]string{"resetToken": token})
}

type resetRequest struct {
	Token       string `json:"token" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required"`
}

func (h *Handler) handleReset(w http.ResponseWriter, r *http.Request) {
	var req resetRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "malformed JSON body")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		field := "token"
		if fieldErrs, ok := err.(validator.ValidationErrors); ok && len(fieldErrs) > 0 {
			name := fieldErrs[0].Field()
			field = strings.ToLower(name[:1]) + name[1:]
		}
		httpx.FieldProblem(w, http.StatusBadRequest, field, "invalid "+field)
		return
	}
	if !passwordMeetsPolicy(req.NewPassword) {
		httpx.FieldProblem(w, http.StatusBadRequest, "newPassword", "Password does not meet requirements")
		return
	}

	err := h.service.CompleteReset(r.Context(), req.Token, req.NewPassword)
	switch {
	case err == shared.ErrTokenInvalid:
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "Invalid or expired token")
		return
	case err == shared.ErrNotFound:
		httpx.Problem(w, http.StatusNotFound, "Not Found", "User not found")
		return
	case err != nil:
		h.logger.Error("password reset failed", "error", err)
		httpx.Problem(w, http.StatusInternalServerError, "Internal Error", "")
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]string{"msg": "Password reset successful"})
}
