package handler

import (
	"net/http"
	"time"

	"github.com/vfg2006/orbit-api/internal/domain"
	"github.com/vfg2006/orbit-api/internal/usecases/timetracking"
	"github.com/vfg2006/orbit-api/pkg/apiErrors"
	"github.com/vfg2006/orbit-api/pkg/utils"
)

func StartTimer(service timetracking.TimeTracker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUserID(w, r)
		if !ok {
			return
		}

		var req domain.StartTimerRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		entry, err := service.StartTimer(r.Context(), userID, &req)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, http.StatusCreated, entry)
	}
}

func StopTimer(service timetracking.TimeTracker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUserID(w, r)
		if !ok {
			return
		}

		entry, err := service.StopTimer(r.Context(), userID)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, entry)
	}
}

func CreateTimeEntry(service timetracking.TimeTracker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUserID(w, r)
		if !ok {
			return
		}

		var req domain.CreateTimeEntryRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		entry, err := service.CreateEntry(r.Context(), userID, &req)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, http.StatusCreated, entry)
	}
}

// ListTimeEntries aceita ?from=yyyy-mm-dd&to=yyyy-mm-dd (inclusivos) e ?projectId=
func ListTimeEntries(service timetracking.TimeTracker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUserID(w, r)
		if !ok {
			return
		}

		filter := domain.TimeEntryFilter{UserID: userID, ProjectID: queryParam(r, "projectId")}

		var err error
		if filter.From, err = dateQueryParam(r, "from"); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro from inválido, use yyyy-mm-dd", nil)
			return
		}
		if filter.To, err = dateQueryParam(r, "to"); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro to inválido, use yyyy-mm-dd", nil)
			return
		}

		entries, err := service.List(r.Context(), filter)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, entries)
	}
}

func UpdateTimeEntry(service timetracking.TimeTracker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUserID(w, r)
		if !ok {
			return
		}

		var req domain.UpdateTimeEntryRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		entry, err := service.Update(r.Context(), userID, pathParam(r, "id"), &req)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, entry)
	}
}

func DeleteTimeEntry(service timetracking.TimeTracker) http.HandlerFunc {
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

// TimeTotals devolve o tempo registrado hoje e na semana corrente
func TimeTotals(service timetracking.TimeTracker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUserID(w, r)
		if !ok {
			return
		}

		totals, err := service.Totals(r.Context(), userID)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, totals)
	}
}

func dateQueryParam(r *http.Request, name string) (*time.Time, error) {
	value := queryParam(r, name)
	if value == nil {
		return nil, nil
	}
	return utils.ParseDate(*value)
}
