package handler

import (
	"net/http"

	"github.com/vfg2006/orbit-api/internal/domain"
	"github.com/vfg2006/orbit-api/internal/usecases/clienting"
	"github.com/vfg2006/orbit-api/pkg/apiErrors"
)

func CreateClient(service clienting.ClientService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUserID(w, r)
		if !ok {
			return
		}

		var req domain.CreateClientRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		client, err := service.Create(r.Context(), userID, &req)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, http.StatusCreated, client)
	}
}

// ListClients aceita ?status=active|inactive
func ListClients(service clienting.ClientService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUserID(w, r)
		if !ok {
			return
		}

		filter := domain.ClientFilter{UserID: userID}
		if status := queryParam(r, "status"); status != nil {
			s := domain.ClientStatus(*status)
			if s != domain.ClientStatusActive && s != domain.ClientStatusInactive {
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Status de cliente inválido", nil)
				return
			}
			filter.Status = &s
		}

		clients, err := service.List(r.Context(), filter)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, clients)
	}
}

func GetClient(service clienting.ClientService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUserID(w, r)
		if !ok {
			return
		}

		client, err := service.Get(r.Context(), userID, pathParam(r, "id"))
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, client)
	}
}

func UpdateClient(service clienting.ClientService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUserID(w, r)
		if !ok {
			return
		}

		var req domain.UpdateClientRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		client, err := service.Update(r.Context(), userID, pathParam(r, "id"), &req)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, client)
	}
}

func DeleteClient(service clienting.ClientService) http.HandlerFunc {
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
