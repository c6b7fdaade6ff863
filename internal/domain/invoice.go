package domain

import "time"

type InvoiceStatus string

const (
	InvoiceStatusDraft   InvoiceStatus = "draft"
	InvoiceStatusSent    InvoiceStatus = "sent"
	InvoiceStatusPaid    InvoiceStatus = "paid"
	InvoiceStatusOverdue InvoiceStatus = "overdue"
)

var invoiceTransitions = map[InvoiceStatus][]InvoiceStatus{
	InvoiceStatusDraft:   {InvoiceStatusSent},
	InvoiceStatusSent:    {InvoiceStatusPaid, InvoiceStatusOverdue},
	InvoiceStatusOverdue: {InvoiceStatusPaid},
}

// CanTransitionTo informa se a fatura pode sair de s para next
func (s InvoiceStatus) CanTransitionTo(next InvoiceStatus) bool {
	for _, allowed := range invoiceTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

type Invoice struct {
	ID            string        `json:"id"`
	UserID        int           `json:"-"`
	ClientID      string        `json:"clientId"`
	ProjectID     *string       `json:"projectId"`
	InvoiceNumber string        `json:"invoiceNumber"`
	Amount        float64       `json:"amount"`
	Currency      string        `json:"currency"`
	Status        InvoiceStatus `json:"status"`
	IssueDate     Date          `json:"issueDate"`
	DueDate       Date          `json:"dueDate"`
	PaidAt        *time.Time    `json:"paidAt"`
	PdfURL        *string       `json:"pdfUrl"`
	CreatedAt     time.Time     `json:"createdAt"`
	UpdatedAt     time.Time     `json:"updatedAt"`
}

type CreateInvoiceRequest struct {
	ClientID  string  `json:"clientId" validate:"required"`
	ProjectID *string `json:"projectId" validate:"omitempty,min=1"`
	Amount    float64 `json:"amount" validate:"gt=0"`
	Currency  string  `json:"currency" validate:"omitempty,len=3"`
	IssueDate Date    `json:"issueDate"`
	DueDate   Date    `json:"dueDate"`
	PdfURL    *string `json:"pdfUrl" validate:"omitempty,url"`
}

type UpdateInvoiceRequest struct {
	ProjectID *string  `json:"projectId" validate:"omitempty,min=1"`
	Amount    *float64 `json:"amount" validate:"omitempty,gt=0"`
	Currency  *string  `json:"currency" validate:"omitempty,len=3"`
	IssueDate *Date    `json:"issueDate"`
	DueDate   *Date    `json:"dueDate"`
	PdfURL    *string  `json:"pdfUrl" validate:"omitempty,url"`
}

type ChangeInvoiceStatusRequest struct {
	Status InvoiceStatus `json:"status" validate:"required,oneof=draft sent paid overdue"`
}

type InvoiceFilter struct {
	UserID    int
	Statuses  []InvoiceStatus
	ClientID  *string
	ProjectID *string
}

type InvoiceTotals struct {
	Paid    float64 `json:"paid"`
	Pending float64 `json:"pending"`
	Overdue float64 `json:"overdue"`
}

type InvoiceList struct {
	Invoices []*Invoice   `json:"invoices"`
	Totals   InvoiceTotals `json:"totals"`
}
