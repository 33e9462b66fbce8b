package handler

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/vfg2006/cet-calculator-api/internal/domain"
	"github.com/vfg2006/cet-calculator-api/internal/usecases/authenticating"
	"github.com/vfg2006/cet-calculator-api/pkg/apiErrors"
	"github.com/vfg2006/cet-calculator-api/pkg/log"
	"github.com/vfg2006/cet-calculator-api/pkg/middleware"
)

// GoogleOAuth são os parâmetros do fluxo de login com Google vistos pelo handler
type GoogleOAuth struct {
	State           string
	FrontendBaseURL string
}

func Register(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.SignUpRequest
		if !decodeBody(w, r, &req) {
			return
		}

		user, err := service.SignUp(r.Context(), req)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao cadastrar usuário")
			return
		}

		writeJSON(w, http.StatusCreated, user)
	}
}

func Login(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.LoginRequest
		if !decodeBody(w, r, &req) {
			return
		}

		token, err := service.Login(r.Context(), req.Email, req.Password)
		if err != nil {
			writeServiceError(w, r, err, "Erro interno ao realizar login")
			return
		}

		writeJSON(w, http.StatusOK, domain.LoginResponse{Token: token})
	}
}

// GetMe retorna as informações do usuário logado
func GetMe(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, err := service.GetUserProfile(r.Context(), middleware.UserIDFromContext(r.Context()))
		if err != nil {
			writeServiceError(w, r, err, "Erro ao obter dados do usuário")
			return
		}

		writeJSON(w, http.StatusOK, user)
	}
}

func GoogleLogin(service authenticating.Authenticator, oauth GoogleOAuth) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		target, err := service.GoogleLoginURL(oauth.State)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrExternalService, "Login com Google indisponível", nil)
			return
		}

		http.Redirect(w, r, target, http.StatusTemporaryRedirect)
	}
}

// GoogleCallback conclui o login e devolve o navegador para o frontend com o token ou o erro na query
func GoogleCallback(service authenticating.Authenticator, oauth GoogleOAuth) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := url.Values{}

		switch {
		case r.URL.Query().Get("state") != oauth.State:
			log.ForContext(r.Context()).Warn("State inválido no retorno do Google")
			query.Set("error", apiErrors.ErrOAuthFailed)
		case r.URL.Query().Get("error") != "":
			query.Set("error", apiErrors.ErrOAuthFailed)
		default:
			token, err := service.GoogleCallback(r.Context(), r.URL.Query().Get("code"))
			if err != nil {
				var authErr *authenticating.AuthError
				code := apiErrors.ErrOAuthFailed
				if errors.As(err, &authErr) {
					code = authErr.Code
				}
				query.Set("error", code)
			} else {
				query.Set("token", token)
			}
		}

		http.Redirect(w, r, oauth.FrontendBaseURL+"/auth/callback?"+query.Encode(), http.StatusFound)
	}
}
