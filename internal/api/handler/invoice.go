package handler

import (
	"net/http"
	"slices"
	"strings"

	"github.com/vfg2006/orbit-api/internal/domain"
	"github.com/vfg2006/orbit-api/internal/usecases/invoicing"
	"github.com/vfg2006/orbit-api/pkg/apiErrors"
	"github.com/vfg2006/orbit-api/pkg/utils"
)

var invoiceStatuses = []domain.InvoiceStatus{
	domain.InvoiceStatusDraft,
	domain.InvoiceStatusSent,
	domain.InvoiceStatusPaid,
	domain.InvoiceStatusOverdue,
}

func CreateInvoice(service invoicing.InvoiceService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUserID(w, r)
		if !ok {
			return
		}

		var req domain.CreateInvoiceRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		invoice, err := service.Create(r.Context(), userID, &req)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, http.StatusCreated, invoice)
	}
}

// ListInvoices aceita ?status=sent,overdue (lista separada por vírgula), ?clientId= e ?projectId=
func ListInvoices(service invoicing.InvoiceService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUserID(w, r)
		if !ok {
			return
		}

		filter := domain.InvoiceFilter{
			UserID:    userID,
			ClientID:  queryParam(r, "clientId"),
			ProjectID: queryParam(r, "projectId"),
		}

		if status := queryParam(r, "status"); status != nil {
			for _, raw := range strings.Split(*status, ",") {
				s := domain.InvoiceStatus(strings.TrimSpace(raw))
				if !slices.Contains(invoiceStatuses, s) {
					apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Status de fatura inválido: "+string(s), nil)
					return
				}
				filter.Statuses = append(filter.Statuses, s)
			}
		}

		list, err := service.List(r.Context(), filter)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, list)
	}
}

func GetInvoice(service invoicing.InvoiceService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUserID(w, r)
		if !ok {
			return
		}

		invoice, err := service.Get(r.Context(), userID, pathParam(r, "id"))
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, invoice)
	}
}

func UpdateInvoice(service invoicing.InvoiceService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUserID(w, r)
		if !ok {
			return
		}

		var req domain.UpdateInvoiceRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		invoice, err := service.Update(r.Context(), userID, pathParam(r, "id"), &req)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, invoice)
	}
}

func ChangeInvoiceStatus(service invoicing.InvoiceService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUserID(w, r)
		if !ok {
			return
		}

		var req domain.ChangeInvoiceStatusRequest
		if !decodeJSON(w, r, &req) {
			return
		}
		if err := utils.ValidateStruct(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
			return
		}

		invoice, err := service.ChangeStatus(r.Context(), userID, pathParam(r, "id"), req.Status)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, invoice)
	}
}

func DeleteInvoice(service invoicing.InvoiceService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUserID(w, r)
		if !ok {
			return
		}

		if err := service.Delete(r.Context(), userID, pathParam(r, "id")); err != nil {
			writeServiceError(w, r, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
