package authenticating

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"github.com/vfg2006/cet-calculator-api/infrastructure/repository"
	"github.com/vfg2006/cet-calculator-api/internal/config"
	"github.com/vfg2006/cet-calculator-api/internal/domain"
	"github.com/vfg2006/cet-calculator-api/pkg/apiErrors"
	"github.com/vfg2006/cet-calculator-api/pkg/log"
	"github.com/vfg2006/cet-calculator-api/pkg/utils"
)

const (
	MinPasswordLength = 6
	tokenTTL          = 24 * time.Hour

	googleUserInfoURL = "https://www.googleapis.com/oauth2/v2/userinfo"
)

type Authenticator interface {
	SignUp(ctx context.Context, req domain.SignUpRequest) (*domain.User, error)
	Login(ctx context.Context, email, password string) (string, error)
	GetUserProfile(ctx context.Context, userID int) (*domain.User, error)
	ValidateToken(tokenString string) (*domain.Claims, error)
	GoogleLoginURL(state string) (string, error)
	GoogleCallback(ctx context.Context, code string) (string, error)
}

// googleProfile é a parte do userinfo do Google usada no cadastro
type googleProfile struct {
	Email         string `json:"email"`
	VerifiedEmail bool   `json:"verified_email"`
	Name          string `json:"name"`
}

type Service struct {
	userRepo  repository.UserRepository
	secretKey string
	oauth     *oauth2.Config
	now       func() time.Time

	fetchGoogleProfile func(ctx context.Context, code string) (*googleProfile, error)
}

func NewService(userRepo repository.UserRepository, cfg *config.Config) Authenticator {
	s := &Service{
		userRepo:  userRepo,
		secretKey: cfg.SecretKey,
		now:       time.Now,
	}

	if cfg.Google.ClientID != "" && cfg.Google.ClientSecret != "" {
		s.oauth = &oauth2.Config{
			ClientID:     cfg.Google.ClientID,
			ClientSecret: cfg.Google.ClientSecret,
			RedirectURL:  cfg.Google.RedirectURL,
			Scopes:       []string{"openid", "email", "profile"},
			Endpoint:     google.Endpoint,
		}
	}
	s.fetchGoogleProfile = s.exchangeGoogleCode

	return s
}

func (s *Service) SignUp(ctx context.Context, req domain.SignUpRequest) (*domain.User, error) {
	email := handleEmail(req.Email)
	if email == "" || req.Password == "" {
		return nil, NewAuthError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "Email e senha são obrigatórios")
	}

	if len(req.Password) < MinPasswordLength {
		return nil, NewAuthError(ErrWeakPassword, apiErrors.ErrWeakPassword, fmt.Sprintf("A senha deve ter pelo menos %d caracteres", MinPasswordLength))
	}

	if req.Password != req.ConfirmPassword {
		return nil, NewAuthError(ErrPasswordMismatch, apiErrors.ErrPasswordMismatch, "As senhas não coincidem")
	}

	existing, err := s.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, NewAuthError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
	}
	if existing != nil {
		return nil, NewAuthError(ErrUserAlreadyExists, apiErrors.ErrUserAlreadyExists, "Email já cadastrado")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		name = strings.Split(email, "@")[0]
	}

	user, err := s.userRepo.CreateUser(ctx, &domain.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hashedPassword),
		AuthProvider: domain.AuthProviderLocal,
		Active:       true,
		RoleID:       domain.RoleUser,
	})
	if err != nil {
		return nil, NewAuthError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Erro ao criar usuário")
	}

	log.ForContext(ctx).WithField("user_id", user.ID).Info("Usuário cadastrado")

	user.PasswordHash = ""
	return user, nil
}

func handleEmail(s string) string {
	email := strings.ToLower(s)
	email = strings.TrimSpace(email)
	email = strings.ReplaceAll(email, " ", "")
	return email
}

func (s *Service) Login(ctx context.Context, email, password string) (string, error) {
	if email == "" || password == "" {
		return "", NewAuthError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "Email e senha são obrigatórios")
	}

	user, err := s.userRepo.GetUserByEmail(ctx, handleEmail(email))
	if err != nil {
		return "", NewAuthError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Erro ao consultar usuário no banco de dados")
	}

	if user == nil {
		return "", NewAuthError(ErrUserNotFound, apiErrors.ErrUserNotFound, "Usuário não encontrado")
	}

	if !user.Active {
		return "", NewUserAuthError(ErrUserDisabled, apiErrors.ErrUserDisabled, user.ID, "Conta desativada")
	}

	// Contas do Google não têm senha local
	if user.AuthProvider != domain.AuthProviderLocal {
		return "", NewUserAuthError(ErrProviderMismatch, apiErrors.ErrProviderMismatch, user.ID, "Use o login com Google")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", NewUserAuthError(ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, user.ID, "Senha incorreta")
	}

	token, err := s.generateJWT(user)
	if err != nil {
		return "", NewAuthError(err, apiErrors.ErrInternalServer, "Erro ao gerar token de autenticação")
	}

	return token, nil
}

func (s *Service) GetUserProfile(ctx context.Context, userID int) (*domain.User, error) {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("Erro ao buscar perfil do usuário")
		return nil, NewUserAuthError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, userID, err.Error())
	}
	if user == nil {
		return nil, NewUserAuthError(ErrUserNotFound, apiErrors.ErrUserNotFound, userID, "")
	}

	user.PasswordHash = ""
	return user, nil
}

func (s *Service) generateJWT(user *domain.User) (string, error) {
	claims := domain.Claims{
		UserID:     user.ID,
		UserName:   user.Name,
		UserEmail:  user.Email,
		UserRoleID: user.RoleID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(s.now()),
			ExpiresAt: jwt.NewNumericDate(s.now().Add(tokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.secretKey))
}

func (s *Service) ValidateToken(tokenString string) (*domain.Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &domain.Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.secretKey), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, NewAuthError(ErrExpiredToken, apiErrors.ErrExpiredToken, "")
		}
		return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, err.Error())
	}

	if claims, ok := token.Claims.(*domain.Claims); ok && token.Valid {
		return claims, nil
	}

	return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, "")
}

// GoogleLoginURL monta a URL de consentimento do Google
func (s *Service) GoogleLoginURL(state string) (string, error) {
	if s.oauth == nil {
		return "", NewAuthError(ErrOAuthNotConfigured, apiErrors.ErrExternalService, "")
	}
	return s.oauth.AuthCodeURL(state, oauth2.AccessTypeOnline), nil
}

// GoogleCallback troca o código pelo perfil do Google, cria o usuário no primeiro acesso e devolve o JWT da aplicação
func (s *Service) GoogleCallback(ctx context.Context, code string) (string, error) {
	if code == "" {
		return "", NewAuthError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "code ausente")
	}

	profile, err := s.fetchGoogleProfile(ctx, code)
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("Erro ao obter perfil do Google")
		return "", NewAuthError(ErrOAuthFailed, apiErrors.ErrOAuthFailed, err.Error())
	}

	email := handleEmail(profile.Email)
	if email == "" || !profile.VerifiedEmail {
		return "", NewAuthError(ErrOAuthFailed, apiErrors.ErrOAuthFailed, "e-mail do Google não verificado")
	}

	user, err := s.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		return "", NewAuthError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
	}

	switch {
	case user == nil:
		name := strings.TrimSpace(profile.Name)
		if name == "" {
			name = strings.Split(email, "@")[0]
		}
		user, err = s.userRepo.CreateUser(ctx, &domain.User{
			Name:         name,
			Email:        email,
			AuthProvider: domain.AuthProviderGoogle,
			Active:       true,
			RoleID:       domain.RoleUser,
		})
		if err != nil {
			return "", NewAuthError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Erro ao criar usuário")
		}
		log.ForContext(ctx).WithField("user_id", user.ID).Info("Usuário cadastrado pelo Google")
	case user.AuthProvider != domain.AuthProviderGoogle:
		return "", NewUserAuthError(ErrProviderMismatch, apiErrors.ErrProviderMismatch, user.ID, "Use e-mail e senha para entrar")
	case !user.Active:
		return "", NewUserAuthError(ErrUserDisabled, apiErrors.ErrUserDisabled, user.ID, "Conta desativada")
	}

	token, err := s.generateJWT(user)
	if err != nil {
		return "", NewAuthError(err, apiErrors.ErrInternalServer, "Erro ao gerar token de autenticação")
	}

	return token, nil
}

func (s *Service) exchangeGoogleCode(ctx context.Context, code string) (*googleProfile, error) {
	if s.oauth == nil {
		return nil, ErrOAuthNotConfigured
	}

	token, err := s.oauth.Exchange(ctx, code)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao trocar código do Google")
	}

	client := s.oauth.Client(ctx, token)
	client.Timeout = 10 * time.Second

	var profile googleProfile
	if err := utils.GetJSON(ctx, client, googleUserInfoURL, &profile); err != nil {
		return nil, errors.Wrap(err, "erro ao consultar perfil do Google")
	}

	return &profile, nil
}

