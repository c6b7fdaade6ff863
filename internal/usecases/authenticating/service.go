package authenticating

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/crypto/sha3"

	"github.com/vfg2006/orbit-api/infrastructure/repository"
	"github.com/vfg2006/orbit-api/internal/config"
	"github.com/vfg2006/orbit-api/internal/domain"
	"github.com/vfg2006/orbit-api/pkg/apiErrors"
	"github.com/vfg2006/orbit-api/pkg/log"
	"github.com/vfg2006/orbit-api/pkg/utils"
)

const tokenIssuer = "orbit-api"

// Notifier envia os e-mails de verificação e redefinição de senha
type Notifier interface {
	SendVerificationEmail(ctx context.Context, to, name, token string) error
	SendResetPasswordEmail(ctx context.Context, to, name, token string) error
}

type Authenticator interface {
	Register(ctx context.Context, req *domain.RegisterRequest) (*domain.User, error)
	VerifyEmail(ctx context.Context, token string) (*domain.LoginResponse, error)
	ResendVerification(ctx context.Context, email string) error
	Login(ctx context.Context, req *domain.LoginRequest) (*domain.LoginResponse, error)
	ValidateToken(tokenString string) (*domain.Claims, error)
	RequestPasswordReset(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, req *domain.ResetPasswordRequest) error
	ChangePassword(ctx context.Context, userID int, req *domain.ChangePasswordRequest) error
	GetUserProfile(ctx context.Context, userID int) (*domain.User, error)
	UpdateUser(ctx context.Context, req *domain.UpdateUserRequest) (*domain.User, error)
	ListUsers(ctx context.Context) ([]*domain.User, error)
	ValidatePasswordStrength(password string) error
}

type Service struct {
	userRepo  repository.UserRepository
	tokenRepo repository.TokenRepository
	notifier  Notifier
	cfg       config.Auth
	now       func() time.Time
}

func NewService(userRepo repository.UserRepository, tokenRepo repository.TokenRepository, notifier Notifier, cfg config.Auth) *Service {
	return &Service{
		userRepo:  userRepo,
		tokenRepo: tokenRepo,
		notifier:  notifier,
		cfg:       cfg,
		now:       time.Now,
	}
}

func (s *Service) Register(ctx context.Context, req *domain.RegisterRequest) (*domain.User, error) {
	req.Email = utils.NormalizeEmail(req.Email)
	if err := utils.ValidateStruct(req); err != nil {
		return nil, NewAuthError(ErrInvalidRequest, apiErrors.ErrInvalidRequest, err.Error())
	}

	if err := s.ValidatePasswordStrength(req.Password); err != nil {
		return nil, err
	}

	email := req.Email

	existing, err := s.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, NewAuthError(err, apiErrors.ErrDatabaseOperation, "Erro ao consultar usuário")
	}
	if existing != nil {
		return nil, NewAuthError(ErrUserAlreadyExists, apiErrors.ErrUserAlreadyExists, "Email já cadastrado")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Name:                 strings.TrimSpace(req.Name),
		Lastname:             strings.TrimSpace(req.Lastname),
		Email:                email,
		PasswordHash:         string(hashedPassword),
		Active:               !s.cfg.RequireEmailVerification,
		RoleID:               domain.RoleFreelancer,
		DefaultCurrency:      domain.DefaultCurrency,
		MonthlyCapacityHours: domain.DefaultMonthlyCapacityHours,
	}

	user, err = s.userRepo.CreateUser(ctx, user)
	if err != nil {
		return nil, NewAuthError(err, apiErrors.ErrDatabaseOperation, "Erro ao criar usuário")
	}

	if s.cfg.RequireEmailVerification {
		// falha no envio não desfaz o cadastro; o usuário pode pedir reenvio
		if err := s.sendVerification(ctx, user); err != nil {
			log.ForContext(ctx).WithError(err).WithField("user_id", user.ID).Error("Erro ao enviar e-mail de verificação")
		}
	}

	log.ForContext(ctx).WithField("user_id", user.ID).Info("Usuário cadastrado")

	user.PasswordHash = ""
	return user, nil
}

// VerifyEmail confirma o e-mail, ativa a conta e já devolve uma sessão
func (s *Service) VerifyEmail(ctx context.Context, token string) (*domain.LoginResponse, error) {
	stored, err := s.consumeToken(ctx, domain.TokenEmailVerification, token)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetUserByID(ctx, stored.UserID)
	if err != nil {
		return nil, NewAuthError(err, apiErrors.ErrDatabaseOperation, "Erro ao consultar usuário")
	}
	if user == nil {
		return nil, NewAuthError(ErrUserNotFound, apiErrors.ErrUserNotFound, "Usuário não encontrado")
	}

	user.EmailVerified = true
	user.Active = true
	if err := s.userRepo.UpdateUser(ctx, user); err != nil {
		return nil, NewUserAuthError(err, apiErrors.ErrDatabaseOperation, user.ID, "Erro ao verificar e-mail")
	}

	log.ForContext(ctx).WithField("user_id", user.ID).Info("E-mail verificado")

	return s.newSession(user)
}

// ResendVerification não revela se o e-mail existe
func (s *Service) ResendVerification(ctx context.Context, email string) error {
	user, err := s.userRepo.GetUserByEmail(ctx, utils.NormalizeEmail(email))
	if err != nil {
		return NewAuthError(err, apiErrors.ErrDatabaseOperation, "Erro ao consultar usuário")
	}
	if user == nil || user.EmailVerified {
		return nil
	}

	if err := s.tokenRepo.DeleteByUser(ctx, user.ID, domain.TokenEmailVerification); err != nil {
		return NewUserAuthError(err, apiErrors.ErrDatabaseOperation, user.ID, "Erro ao invalidar tokens anteriores")
	}

	if err := s.sendVerification(ctx, user); err != nil {
		return NewUserAuthError(err, apiErrors.ErrExternalService, user.ID, "Erro ao enviar e-mail de verificação")
	}

	return nil
}

func (s *Service) Login(ctx context.Context, req *domain.LoginRequest) (*domain.LoginResponse, error) {
	req.Email = utils.NormalizeEmail(req.Email)
	if err := utils.ValidateStruct(req); err != nil {
		return nil, NewAuthError(ErrInvalidRequest, apiErrors.ErrInvalidRequest, err.Error())
	}

	user, err := s.userRepo.GetUserByEmail(ctx, req.Email)
	if err != nil {
		return nil, NewAuthError(err, apiErrors.ErrDatabaseOperation, "Erro ao consultar usuário no banco de dados")
	}
	if user == nil {
		return nil, NewAuthError(ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, "Email ou senha incorretos")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, NewUserAuthError(ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, user.ID, "Email ou senha incorretos")
	}

	if s.cfg.RequireEmailVerification && !user.EmailVerified {
		return nil, NewUserAuthError(ErrEmailNotVerified, apiErrors.ErrEmailNotVerified, user.ID, "Verifique seu e-mail antes de entrar")
	}

	if !user.Active {
		return nil, NewUserAuthError(ErrUserDisabled, apiErrors.ErrUserDisabled, user.ID, "Conta desativada")
	}

	return s.newSession(user)
}

func (s *Service) newSession(user *domain.User) (*domain.LoginResponse, error) {
	expiresAt := s.now().Add(s.cfg.SessionTTL).UTC()

	token, err := generateJWT(user, s.cfg.Secret, s.now(), expiresAt)
	if err != nil {
		return nil, NewAuthError(err, apiErrors.ErrInternalServer, "Erro ao gerar token de autenticação")
	}

	user.PasswordHash = ""
	return &domain.LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      user,
	}, nil
}

func generateJWT(user *domain.User, secretKey string, issuedAt, expiresAt time.Time) (string, error) {
	claims := domain.Claims{
		UserID:       user.ID,
		UserName:     user.Name,
		UserLastname: user.Lastname,
		UserEmail:    user.Email,
		UserRoleID:   user.RoleID,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    tokenIssuer,
			Subject:   strconv.Itoa(user.ID),
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secretKey))
}

func (s *Service) ValidateToken(tokenString string) (*domain.Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &domain.Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de assinatura inesperado: %v", token.Header["alg"])
		}
		return []byte(s.cfg.Secret), nil
	}, jwt.WithIssuer(tokenIssuer), jwt.WithTimeFunc(s.now))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, NewAuthError(ErrExpiredToken, apiErrors.ErrExpiredToken, err.Error())
		}
		return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, err.Error())
	}

	claims, ok := token.Claims.(*domain.Claims)
	if !ok || !token.Valid {
		return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, "")
	}

	return claims, nil
}

// RequestPasswordReset sempre responde sucesso para e-mails desconhecidos
func (s *Service) RequestPasswordReset(ctx context.Context, email string) error {
	user, err := s.userRepo.GetUserByEmail(ctx, utils.NormalizeEmail(email))
	if err != nil {
		return NewAuthError(err, apiErrors.ErrDatabaseOperation, "Erro ao consultar usuário")
	}
	if user == nil {
		log.ForContext(ctx).Debug("Pedido de redefinição para e-mail inexistente")
		return nil
	}

	if err := s.tokenRepo.DeleteByUser(ctx, user.ID, domain.TokenPasswordReset); err != nil {
		return NewUserAuthError(err, apiErrors.ErrDatabaseOperation, user.ID, "Erro ao invalidar tokens anteriores")
	}

	token, err := s.issueToken(ctx, user.ID, domain.TokenPasswordReset, s.cfg.ResetTTL)
	if err != nil {
		return err
	}

	if err := s.notifier.SendResetPasswordEmail(ctx, user.Email, user.Name, token); err != nil {
		log.ForContext(ctx).WithError(err).WithField("user_id", user.ID).Error("Erro ao enviar e-mail de redefinição de senha")
	}

	return nil
}

func (s *Service) ResetPassword(ctx context.Context, req *domain.ResetPasswordRequest) error {
	if err := utils.ValidateStruct(req); err != nil {
		return NewAuthError(ErrInvalidRequest, apiErrors.ErrInvalidRequest, err.Error())
	}

	if err := s.ValidatePasswordStrength(req.NewPassword); err != nil {
		return err
	}

	stored, err := s.consumeToken(ctx, domain.TokenPasswordReset, req.Token)
	if err != nil {
		return err
	}

	user, err := s.userRepo.GetUserByID(ctx, stored.UserID)
	if err != nil {
		return NewAuthError(err, apiErrors.ErrDatabaseOperation, "Erro ao consultar usuário")
	}
	if user == nil {
		return NewAuthError(ErrUserNotFound, apiErrors.ErrUserNotFound, "Usuário não encontrado")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user.PasswordHash = string(hashedPassword)
	if err := s.userRepo.UpdateUser(ctx, user); err != nil {
		return NewUserAuthError(err, apiErrors.ErrDatabaseOperation, user.ID, "Erro ao redefinir senha")
	}

	if err := s.tokenRepo.DeleteByUser(ctx, user.ID, domain.TokenPasswordReset); err != nil {
		log.ForContext(ctx).WithError(err).WithField("user_id", user.ID).Warn("Erro ao remover tokens de redefinição")
	}

	log.ForContext(ctx).WithField("user_id", user.ID).Info("Senha redefinida")
	return nil
}

// ChangePassword exige a senha atual e aplica a mesma política do cadastro
func (s *Service) ChangePassword(ctx context.Context, userID int, req *domain.ChangePasswordRequest) error {
	if err := utils.ValidateStruct(req); err != nil {
		return NewAuthError(ErrInvalidRequest, apiErrors.ErrInvalidRequest, err.Error())
	}

	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return NewAuthError(err, apiErrors.ErrDatabaseOperation, "Erro ao consultar usuário")
	}
	if user == nil {
		return NewAuthError(ErrUserNotFound, apiErrors.ErrUserNotFound, "Usuário não encontrado")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.CurrentPassword)); err != nil {
		return NewUserAuthError(ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, userID, "Senha atual incorreta")
	}

	if req.CurrentPassword == req.NewPassword {
		return NewUserAuthError(ErrSamePassword, apiErrors.ErrWeakPassword, userID, "")
	}

	if err := s.ValidatePasswordStrength(req.NewPassword); err != nil {
		return err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user.PasswordHash = string(hashedPassword)
	if err := s.userRepo.UpdateUser(ctx, user); err != nil {
		return NewUserAuthError(err, apiErrors.ErrDatabaseOperation, userID, "Erro ao alterar senha")
	}

	return nil
}

func (s *Service) GetUserProfile(ctx context.Context, userID int) (*domain.User, error) {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, NewAuthError(err, apiErrors.ErrDatabaseOperation, "Erro ao buscar usuário")
	}
	if user == nil {
		return nil, NewAuthError(ErrUserNotFound, apiErrors.ErrUserNotFound, "Usuário não encontrado")
	}

	user.PasswordHash = ""
	return user, nil
}

func (s *Service) UpdateUser(ctx context.Context, req *domain.UpdateUserRequest) (*domain.User, error) {
	if req.Email != nil {
		email := utils.NormalizeEmail(*req.Email)
		req.Email = &email
	}
	if err := utils.ValidateStruct(req); err != nil {
		return nil, NewAuthError(ErrInvalidRequest, apiErrors.ErrInvalidRequest, err.Error())
	}

	user, err := s.userRepo.GetUserByID(ctx, req.ID)
	if err != nil {
		return nil, NewAuthError(err, apiErrors.ErrDatabaseOperation, "Erro ao buscar usuário")
	}
	if user == nil {
		return nil, NewAuthError(ErrUserNotFound, apiErrors.ErrUserNotFound, "Usuário não encontrado")
	}

	if req.Name != nil {
		user.Name = strings.TrimSpace(*req.Name)
	}
	if req.Lastname != nil {
		user.Lastname = strings.TrimSpace(*req.Lastname)
	}
	if req.Email != nil {
		email := *req.Email
		if email != user.Email {
			other, err := s.userRepo.GetUserByEmail(ctx, email)
			if err != nil {
				return nil, NewAuthError(err, apiErrors.ErrDatabaseOperation, "Erro ao consultar usuário")
			}
			if other != nil {
				return nil, NewUserAuthError(ErrUserAlreadyExists, apiErrors.ErrUserAlreadyExists, user.ID, "Email já cadastrado")
			}
			user.Email = email
		}
	}
	if req.Active != nil {
		user.Active = *req.Active
	}
	if req.RoleID != nil {
		user.RoleID = *req.RoleID
	}
	if req.AvatarURL != nil {
		user.AvatarURL = req.AvatarURL
	}
	if req.DefaultCurrency != nil {
		user.DefaultCurrency = strings.ToUpper(*req.DefaultCurrency)
	}
	if req.MonthlyCapacityHours != nil {
		user.MonthlyCapacityHours = *req.MonthlyCapacityHours
	}

	// o hash não é regravado em atualizações de perfil
	user.PasswordHash = ""
	if err := s.userRepo.UpdateUser(ctx, user); err != nil {
		return nil, NewUserAuthError(err, apiErrors.ErrDatabaseOperation, user.ID, "Erro ao atualizar usuário")
	}

	return user, nil
}

func (s *Service) ListUsers(ctx context.Context) ([]*domain.User, error) {
	users, err := s.userRepo.ListUser(ctx)
	if err != nil {
		return nil, NewAuthError(err, apiErrors.ErrDatabaseOperation, "Erro ao listar usuários")
	}

	for _, u := range users {
		u.PasswordHash = ""
	}
	return users, nil
}

// ValidatePasswordStrength exige tamanho configurado, maiúscula, minúscula e número
func (s *Service) ValidatePasswordStrength(password string) error {
	weak := func(details string) error {
		return NewAuthError(ErrWeakPassword, apiErrors.ErrWeakPassword, details)
	}

	length := len([]rune(password))
	if length < s.cfg.PasswordMinLength {
		return weak(fmt.Sprintf("a senha deve ter pelo menos %d caracteres", s.cfg.PasswordMinLength))
	}
	if length > s.cfg.PasswordMaxLength {
		return weak(fmt.Sprintf("a senha deve ter no máximo %d caracteres", s.cfg.PasswordMaxLength))
	}

	var hasUpper, hasLower, hasNumber bool
	for _, char := range password {
		switch {
		case unicode.IsUpper(char):
			hasUpper = true
		case unicode.IsLower(char):
			hasLower = true
		case unicode.IsDigit(char):
			hasNumber = true
		}
	}

	if !hasUpper {
		return weak("a senha deve conter pelo menos uma letra maiúscula")
	}
	if !hasLower {
		return weak("a senha deve conter pelo menos uma letra minúscula")
	}
	if !hasNumber {
		return weak("a senha deve conter pelo menos um número")
	}

	return nil
}

func (s *Service) sendVerification(ctx context.Context, user *domain.User) error {
	token, err := s.issueToken(ctx, user.ID, domain.TokenEmailVerification, s.cfg.VerificationTTL)
	if err != nil {
		return err
	}
	return s.notifier.SendVerificationEmail(ctx, user.Email, user.Name, token)
}

// issueToken gera o token enviado por e-mail e persiste apenas o hash
func (s *Service) issueToken(ctx context.Context, userID int, kind domain.TokenKind, ttl time.Duration) (string, error) {
	token, err := utils.GenerateToken()
	if err != nil {
		return "", err
	}

	err = s.tokenRepo.Save(ctx, &domain.VerificationToken{
		UserID:    userID,
		Kind:      kind,
		TokenHash: hashToken(token),
		ExpiresAt: s.now().Add(ttl).UTC(),
	})
	if err != nil {
		return "", NewUserAuthError(err, apiErrors.ErrDatabaseOperation, userID, "Erro ao salvar token")
	}

	return token, nil
}

func (s *Service) consumeToken(ctx context.Context, kind domain.TokenKind, token string) (*domain.VerificationToken, error) {
	if strings.TrimSpace(token) == "" {
		return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, "Token não informado")
	}

	stored, err := s.tokenRepo.Consume(ctx, kind, hashToken(token))
	if err != nil {
		return nil, NewAuthError(err, apiErrors.ErrDatabaseOperation, "Erro ao consultar token")
	}
	if stored == nil {
		return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, "Token inválido ou já utilizado")
	}
	if stored.Expired(s.now()) {
		return nil, NewUserAuthError(ErrExpiredToken, apiErrors.ErrExpiredToken, stored.UserID, "Token expirado")
	}

	return stored, nil
}

func hashToken(token string) string {
	sum := sha3.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

