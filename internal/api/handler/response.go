package handler

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	jsoniter "github.com/json-iterator/go"
	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/orbit-api/internal/usecases/authenticating"
	"github.com/vfg2006/orbit-api/internal/usecases/clienting"
	"github.com/vfg2006/orbit-api/internal/usecases/dashboarding"
	"github.com/vfg2006/orbit-api/internal/usecases/invoicing"
	"github.com/vfg2006/orbit-api/internal/usecases/projecting"
	"github.com/vfg2006/orbit-api/internal/usecases/timetracking"
	"github.com/vfg2006/orbit-api/pkg/apiErrors"
	"github.com/vfg2006/orbit-api/pkg/log"
	"github.com/vfg2006/orbit-api/pkg/middleware"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const maxBodyBytes = 1 << 20

// writeJSON só escreve o status depois de serializar; falha de serialização responde 500
func writeJSON(w http.ResponseWriter, status int, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		log.L.WithError(err).Error("Erro ao serializar resposta")
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno do servidor", nil)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(append(body, '\n')); err != nil {
		log.L.WithError(err).Error("Erro ao enviar resposta")
	}
}

// decodeJSON lê o corpo da requisição. Corpo vazio é aceito e deixa dst inalterado.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(dst)
	if err == nil || errors.Is(err, io.EOF) {
		return true
	}

	log.ForContext(r.Context()).WithError(err).Warn("Corpo da requisição inválido")
	apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Formato de requisição inválido", nil)
	return false
}

// currentUserID lê o usuário autenticado; escreve 401 quando ausente
func currentUserID(w http.ResponseWriter, r *http.Request) (int, bool) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
		return 0, false
	}
	return claims.UserID, true
}

func pathParam(r *http.Request, name string) string {
	return httprouter.ParamsFromContext(r.Context()).ByName(name)
}

func intPathParam(w http.ResponseWriter, r *http.Request, name string) (int, bool) {
	value, err := strconv.Atoi(pathParam(r, name))
	if err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro "+name+" inválido", nil)
		return 0, false
	}
	return value, true
}

func queryParam(r *http.Request, name string) *string {
	if v := r.URL.Query().Get(name); v != "" {
		return &v
	}
	return nil
}

// writeServiceError converte os erros dos usecases no formato padronizado da API
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var (
		authErr      *authenticating.AuthError
		clientErr    *clienting.ClientError
		projectErr   *projecting.ProjectError
		invoiceErr   *invoicing.InvoiceError
		timeEntryErr *timetracking.TimeEntryError
		dashboardErr *dashboarding.DashboardError
	)

	switch {
	case errors.As(err, &authErr):
		apiErrors.WriteError(w, authErr.Code, authErr.Error(), nil)
	case errors.As(err, &clientErr):
		apiErrors.WriteError(w, clientErr.Code, clientErr.Error(), idDetails("clientId", clientErr.ClientID))
	case errors.As(err, &projectErr):
		apiErrors.WriteError(w, projectErr.Code, projectErr.Error(), idDetails("projectId", projectErr.ProjectID))
	case errors.As(err, &invoiceErr):
		apiErrors.WriteError(w, invoiceErr.Code, invoiceErr.Error(), idDetails("invoiceId", invoiceErr.InvoiceID))
	case errors.As(err, &timeEntryErr):
		apiErrors.WriteError(w, timeEntryErr.Code, timeEntryErr.Error(), idDetails("timeEntryId", timeEntryErr.EntryID))
	case errors.As(err, &dashboardErr):
		apiErrors.WriteError(w, dashboardErr.Code, dashboardErr.Error(), dashboardDetails(dashboardErr))
	default:
		log.ForContext(r.Context()).WithError(err).Error("Erro não mapeado")
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno do servidor", nil)
	}
}

func dashboardDetails(err *dashboarding.DashboardError) any {
	details := map[string]string{}
	if err.Period != "" {
		details["period"] = err.Period
	}
	if err.Field != "" {
		details["field"] = err.Field
	}
	if len(details) == 0 {
		return nil
	}
	return details
}

func idDetails(key, id string) any {
	if id == "" {
		return nil
	}
	return map[string]string{key: id}
}
