package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/vfg2006/orbit-api/internal/domain"
	"github.com/vfg2006/orbit-api/internal/usecases/dashboarding"
	"github.com/vfg2006/orbit-api/pkg/apiErrors"
	"github.com/vfg2006/orbit-api/pkg/utils"
)

// GetDashboardSummary aceita ?period=mm-yyyy; sem período usa o mês corrente
func GetDashboardSummary(service dashboarding.Dashboarder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUserID(w, r)
		if !ok {
			return
		}

		period, ok := parsePeriod(w, r.URL.Query().Get("period"))
		if !ok {
			return
		}

		summary, err := service.GetSummary(r.Context(), userID, period)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, summary)
	}
}

// PreviewDashboard calcula o resumo para números enviados no corpo, sem consultar o banco
func PreviewDashboard(service dashboarding.Dashboarder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.DashboardPreviewRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		summary, err := service.Preview(r.Context(), &req)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, summary)
	}
}

// GetRevenueChart aceita ?weeks=N (padrão 12, máximo 52)
func GetRevenueChart(service dashboarding.Dashboarder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUserID(w, r)
		if !ok {
			return
		}

		weeks, ok := intQueryParam(w, r, "weeks")
		if !ok {
			return
		}

		points, err := service.RevenueChart(r.Context(), userID, weeks)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, points)
	}
}

func GetHealthHistory(service dashboarding.Dashboarder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUserID(w, r)
		if !ok {
			return
		}

		limit, ok := intQueryParam(w, r, "limit")
		if !ok {
			return
		}

		history, err := service.History(r.Context(), userID, limit)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, history)
	}
}

func GetPeriodTarget(service dashboarding.Dashboarder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUserID(w, r)
		if !ok {
			return
		}

		period, ok := parsePeriod(w, pathParam(r, "period"))
		if !ok {
			return
		}

		target, err := service.GetTarget(r.Context(), userID, period)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, target)
	}
}

func SetPeriodTarget(service dashboarding.Dashboarder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUserID(w, r)
		if !ok {
			return
		}

		period, ok := parsePeriod(w, pathParam(r, "period"))
		if !ok {
			return
		}

		var req domain.UpsertPeriodTargetRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		target, err := service.SetTarget(r.Context(), userID, period, &req)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, target)
	}
}

func parsePeriod(w http.ResponseWriter, raw string) (utils.Period, bool) {
	period, err := utils.ParsePeriod(raw, time.Now())
	if err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
		return utils.Period{}, false
	}
	return period, true
}

// intQueryParam devolve 0 quando o parâmetro está ausente
func intQueryParam(w http.ResponseWriter, r *http.Request, name string) (int, bool) {
	raw := queryParam(r, name)
	if raw == nil {
		return 0, true
	}

	value, err := strconv.Atoi(*raw)
	if err != nil || value < 0 {
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro "+name+" inválido", nil)
		return 0, false
	}
	return value, true
}
