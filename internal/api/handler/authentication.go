package handler

import (
	"net/http"

	"github.com/vfg2006/orbit-api/internal/domain"
	"github.com/vfg2006/orbit-api/internal/usecases/authenticating"
	"github.com/vfg2006/orbit-api/pkg/apiErrors"
	"github.com/vfg2006/orbit-api/pkg/utils"
)

type messageResponse struct {
	Message string `json:"message"`
}

// Register cria o usuário e dispara o e-mail de verificação
func Register(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.RegisterRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		user, err := service.Register(r.Context(), &req)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, http.StatusCreated, user)
	}
}

func Login(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.LoginRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		resp, err := service.Login(r.Context(), &req)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, resp)
	}
}

// VerifyEmail confirma o e-mail e já devolve a sessão
func VerifyEmail(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.TokenRequest
		if !decodeJSON(w, r, &req) {
			return
		}
		if err := utils.ValidateStruct(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, err.Error(), nil)
			return
		}

		resp, err := service.VerifyEmail(r.Context(), req.Token)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, resp)
	}
}

func ResendVerification(service authenticating.Authenticator) http.HandlerFunc {
	return emailAction(func(r *http.Request, email string) error {
		return service.ResendVerification(r.Context(), email)
	}, "Se o e-mail estiver cadastrado, um novo link de verificação foi enviado")
}

// ForgotPassword responde sempre com sucesso para não revelar e-mails cadastrados
func ForgotPassword(service authenticating.Authenticator) http.HandlerFunc {
	return emailAction(func(r *http.Request, email string) error {
		return service.RequestPasswordReset(r.Context(), email)
	}, "Se o e-mail estiver cadastrado, um link de redefinição foi enviado")
}

func ResetPassword(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.ResetPasswordRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		if err := service.ResetPassword(r.Context(), &req); err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, messageResponse{Message: "Senha redefinida com sucesso"})
	}
}

func emailAction(action func(r *http.Request, email string) error, message string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.EmailRequest
		if !decodeJSON(w, r, &req) {
			return
		}
		req.Email = utils.NormalizeEmail(req.Email)
		if err := utils.ValidateStruct(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
			return
		}

		if err := action(r, req.Email); err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, http.StatusAccepted, messageResponse{Message: message})
	}
}
