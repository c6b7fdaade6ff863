package domain

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	RoleAdmin      = 1
	RoleFreelancer = 2
)

const (
	DefaultCurrency             = "USD"
	DefaultMonthlyCapacityHours = 160.0
)

type User struct {
	ID                   int        `json:"id"`
	Name                 string     `json:"name"`
	Lastname             string     `json:"lastname"`
	Email                string     `json:"email"`
	PasswordHash         string     `json:"-"`
	Active               bool       `json:"active"`
	EmailVerified        bool       `json:"emailVerified"`
	RoleID               int        `json:"roleId"`
	AvatarURL            *string    `json:"avatarUrl"`
	DefaultCurrency      string     `json:"defaultCurrency"`
	MonthlyCapacityHours float64    `json:"monthlyCapacityHours"`
	Deleted              bool       `json:"-"`
	DeletedAt            *time.Time `json:"-"`
	CreatedAt            time.Time  `json:"createdAt"`
	UpdatedAt            time.Time  `json:"updatedAt"`
}

type RegisterRequest struct {
	Name     string `json:"name" validate:"required,max=100"`
	Lastname string `json:"lastname" validate:"max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
	User      *User     `json:"user"`
}

type UpdateUserRequest struct {
	ID                   int      `json:"-"`
	Name                 *string  `json:"name" validate:"omitempty,min=1,max=100"`
	Lastname             *string  `json:"lastname" validate:"omitempty,max=100"`
	Email                *string  `json:"email" validate:"omitempty,email"`
	Active               *bool    `json:"active"`
	RoleID               *int     `json:"roleId" validate:"omitempty,oneof=1 2"`
	AvatarURL            *string  `json:"avatarUrl" validate:"omitempty,url"`
	DefaultCurrency      *string  `json:"defaultCurrency" validate:"omitempty,len=3"`
	MonthlyCapacityHours *float64 `json:"monthlyCapacityHours" validate:"omitempty,gt=0,lte=744"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required"`
}

type EmailRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type TokenRequest struct {
	Token string `json:"token" validate:"required"`
}

type ResetPasswordRequest struct {
	Token       string `json:"token" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required"`
}

type Claims struct {
	UserID       int    `json:"userId"`
	UserName     string `json:"userName"`
	UserLastname string `json:"userLastname"`
	UserEmail    string `json:"userEmail"`
	UserRoleID   int    `json:"userRoleId"`
	jwt.RegisteredClaims
}

func (c *Claims) IsAdmin() bool {
	return c != nil && c.UserRoleID == RoleAdmin
}
