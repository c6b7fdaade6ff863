package domain

import "time"

type ClientStatus string

const (
	ClientStatusActive   ClientStatus = "active"
	ClientStatusInactive ClientStatus = "inactive"
)

type Client struct {
	ID          string       `json:"id"`
	UserID      int          `json:"-"`
	Name        string       `json:"name"`
	CompanyName *string      `json:"companyName"`
	Email       *string      `json:"email"`
	Status      ClientStatus `json:"status"`
	Currency    string       `json:"currency"`
	Color       *string      `json:"color"`
	CreatedAt   time.Time    `json:"createdAt"`
	UpdatedAt   time.Time    `json:"updatedAt"`
}

type CreateClientRequest struct {
	Name        string       `json:"name" validate:"required,max=120"`
	CompanyName *string      `json:"companyName" validate:"omitempty,max=120"`
	Email       *string      `json:"email" validate:"omitempty,email"`
	Status      ClientStatus `json:"status" validate:"omitempty,oneof=active inactive"`
	Currency    string       `json:"currency" validate:"omitempty,len=3"`
	Color       *string      `json:"color" validate:"omitempty,hexcolor"`
}

type UpdateClientRequest struct {
	Name        *string       `json:"name" validate:"omitempty,min=1,max=120"`
	CompanyName *string       `json:"companyName" validate:"omitempty,max=120"`
	Email       *string       `json:"email" validate:"omitempty,email"`
	Status      *ClientStatus `json:"status" validate:"omitempty,oneof=active inactive"`
	Currency    *string       `json:"currency" validate:"omitempty,len=3"`
	Color       *string       `json:"color" validate:"omitempty,hexcolor"`
}

type ClientFilter struct {
	UserID int
	Status *ClientStatus
}
