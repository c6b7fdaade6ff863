package handler

import (
	"net/http"
	"slices"

	"github.com/vfg2006/orbit-api/internal/domain"
	"github.com/vfg2006/orbit-api/internal/usecases/projecting"
	"github.com/vfg2006/orbit-api/pkg/apiErrors"
)

var projectStatuses = []domain.ProjectStatus{
	domain.ProjectStatusActive,
	domain.ProjectStatusPaused,
	domain.ProjectStatusCompleted,
	domain.ProjectStatusArchived,
}

func CreateProject(service projecting.ProjectService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUserID(w, r)
		if !ok {
			return
		}

		var req domain.CreateProjectRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		project, err := service.Create(r.Context(), userID, &req)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, http.StatusCreated, project)
	}
}

// ListProjects aceita ?status= e ?clientId=
func ListProjects(service projecting.ProjectService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUserID(w, r)
		if !ok {
			return
		}

		filter := domain.ProjectFilter{UserID: userID, ClientID: queryParam(r, "clientId")}
		if status := queryParam(r, "status"); status != nil {
			s := domain.ProjectStatus(*status)
			if !slices.Contains(projectStatuses, s) {
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Status de projeto inválido", nil)
				return
			}
			filter.Status = &s
		}

		projects, err := service.List(r.Context(), filter)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, projects)
	}
}

func GetProject(service projecting.ProjectService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUserID(w, r)
		if !ok {
			return
		}

		project, err := service.Get(r.Context(), userID, pathParam(r, "id"))
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, project)
	}
}

func UpdateProject(service projecting.ProjectService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUserID(w, r)
		if !ok {
			return
		}

		var req domain.UpdateProjectRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		project, err := service.Update(r.Context(), userID, pathParam(r, "id"), &req)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, project)
	}
}

func DeleteProject(service projecting.ProjectService) http.HandlerFunc {
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
