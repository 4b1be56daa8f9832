package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/lddanielsoares2-wq/dashboard-wehub/internal/domain"
	"github.com/lddanielsoares2-wq/dashboard-wehub/internal/usecases/fetching"
	"github.com/lddanielsoares2-wq/dashboard-wehub/internal/usecases/reporting"
	"github.com/lddanielsoares2-wq/dashboard-wehub/pkg/apiErrors"
	"github.com/lddanielsoares2-wq/dashboard-wehub/pkg/log"
	"github.com/lddanielsoares2-wq/dashboard-wehub/pkg/middleware"
	"github.com/lddanielsoares2-wq/dashboard-wehub/pkg/utils"
)

// GetReport monta o relatório de um período para o usuário autenticado
func GetReport(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		filters := &domain.ReportFilters{
			Dimension: domain.ReportDimension(r.URL.Query().Get("dimension")),
		}

		if raw := r.URL.Query().Get("start_date"); raw != "" {
			startDate, err := utils.ParseDate(raw)
			if err != nil {
				logger.WithFields(log.Fields{
					"start_date": raw,
					"error":      err.Error(),
				}).Warn("reports: invalid start_date parameter")

				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Data inicial inválida. Use o formato YYYY-MM-DD", nil)
				return
			}
			filters.StartDate = startDate
		}

		if raw := r.URL.Query().Get("end_date"); raw != "" {
			endDate, err := utils.ParseDate(raw)
			if err != nil {
				logger.WithFields(log.Fields{
					"end_date": raw,
					"error":    err.Error(),
				}).Warn("reports: invalid end_date parameter")

				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Data final inválida. Use o formato YYYY-MM-DD", nil)
				return
			}
			filters.EndDate = endDate
		}

		logger.WithFields(log.Fields{
			"user_id":   userClaims.UserID,
			"dimension": string(filters.Dimension),
		}).Debug("reports: fetching range report with filters")

		report, err := service.GetReport(r.Context(), userClaims.UserID, filters)
		if err != nil {
			logger.WithFields(log.Fields{
				"user_id": userClaims.UserID,
				"error":   err.Error(),
			}).Error("reports: failed to build range report")

			handleReportError(w, err)
			return
		}

		logger.WithFields(log.Fields{
			"user_id":    userClaims.UserID,
			"start_date": report.StartDate,
			"end_date":   report.EndDate,
			"partial":    report.Partial,
		}).Info("reports: successfully built range report")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(report); err != nil {
			logger.WithField("error", err.Error()).Error("reports: failed to encode response")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

// RefreshReport força a atualização do relatório de um dia, ignorando o frescor
func RefreshReport(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		var req domain.RefreshReportRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido: "+err.Error(), nil)
			return
		}

		if req.Date == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Data é obrigatória", nil)
			return
		}

		date, err := time.Parse(time.DateOnly, req.Date)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Data inválida. Use o formato YYYY-MM-DD", nil)
			return
		}

		logger.WithFields(log.Fields{
			"user_id":   userClaims.UserID,
			"date":      req.Date,
			"dimension": req.Dimension,
		}).Info("reports: manual refresh requested")

		report, err := service.RefreshDay(r.Context(), userClaims.UserID, date, domain.ReportDimension(req.Dimension))
		if err != nil {
			logger.WithFields(log.Fields{
				"user_id": userClaims.UserID,
				"date":    req.Date,
				"error":   err.Error(),
			}).Error("reports: manual refresh failed")

			handleReportError(w, err)
			return
		}

		response := &domain.RefreshReportResponse{
			Report:  report,
			Message: "Relatório atualizado com sucesso",
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(response); err != nil {
			logger.WithField("error", err.Error()).Error("reports: failed to encode response")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

// GetReportFreshness descreve a idade e a origem do relatório de um dia sem buscá-lo
func GetReportFreshness(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		raw := r.URL.Query().Get("date")
		if raw == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Data é obrigatória", nil)
			return
		}

		date, err := time.Parse(time.DateOnly, raw)
		if err != nil {
			logger.WithFields(log.Fields{
				"date":  raw,
				"error": err.Error(),
			}).Warn("reports: invalid date parameter")

			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Data inválida. Use o formato YYYY-MM-DD", nil)
			return
		}

		dimension := domain.ReportDimension(r.URL.Query().Get("dimension"))

		info, err := service.GetFreshness(r.Context(), userClaims.UserID, date, dimension)
		if err != nil {
			logger.WithFields(log.Fields{
				"user_id": userClaims.UserID,
				"date":    raw,
				"error":   err.Error(),
			}).Error("reports: failed to get freshness info")

			handleReportError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(info); err != nil {
			logger.WithField("error", err.Error()).Error("reports: failed to encode response")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

// handleReportError converte erros do fluxo de relatórios na resposta padronizada
func handleReportError(w http.ResponseWriter, err error) {
	// Erros do serviço de relatórios já carregam o código da API
	var reportErr *reporting.ReportError
	if errors.As(err, &reportErr) {
		apiErrors.WriteError(w, reportErr.Code, reportErr.Error(), nil)
		return
	}

	// Erros da busca nas contas também
	var fetchErr *fetching.FetchError
	if errors.As(err, &fetchErr) {
		var details any
		if fetchErr.AccountID != "" {
			details = map[string]any{"account_id": fetchErr.AccountID}
		}
		apiErrors.WriteError(w, fetchErr.Code, fetchErr.Error(), details)
		return
	}

	apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao montar o relatório", nil)
}
