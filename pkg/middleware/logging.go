package middleware

import (
	"net/http"
	"runtime/debug"
	"time"

	"github.com/lddanielsoares2-wq/dashboard-wehub/pkg/log"
)

// slowRequestThreshold marca requisições que merecem aviso de lentidão,
// como uma busca de período que caiu no caminho do upstream
const slowRequestThreshold = 500 * time.Millisecond

// statusWriter captura o status code escrito pelo handler
type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

// LoggingMiddleware gera o ID de correlação da requisição e registra
// método, caminho, status e duração na finalização
func LoggingMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, correlationID := log.WithCorrelationID(r.Context())
			r = r.WithContext(ctx)

			sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
			started := time.Now()

			log.L.WithFields(log.Fields{
				"correlation_id": correlationID,
				"method":         r.Method,
				"path":           r.URL.Path,
				"remote_addr":    r.RemoteAddr,
				"query":          r.URL.RawQuery,
			}).Info("Requisição iniciada")

			next.ServeHTTP(sw, r)

			elapsed := time.Since(started)
			logger := log.L.WithFields(log.Fields{
				"correlation_id": correlationID,
				"method":         r.Method,
				"path":           r.URL.Path,
				"status_code":    sw.status,
				"duration_ms":    elapsed.Milliseconds(),
			})

			switch {
			case sw.status >= http.StatusInternalServerError:
				logger.Error("Requisição finalizada com erro")
			case sw.status >= http.StatusBadRequest:
				logger.Warn("Requisição finalizada com aviso")
			default:
				logger.Info("Requisição finalizada")
			}

			if elapsed > slowRequestThreshold {
				logger.Warnf("Requisição lenta: %s", elapsed)
			}
		})
	}
}

// LogPanicMiddleware converte pânicos dos handlers em 500, registrando
// o stack trace sem derrubar o servidor
func LogPanicMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					logger := log.ForContext(r.Context()).WithFields(log.Fields{
						"error":  rec,
						"method": r.Method,
						"path":   r.URL.Path,
					})

					logger.Error("Pânico não tratado na aplicação")
					logger.WithField("stack_trace", string(debug.Stack())).Error("Stack trace do pânico")

					http.Error(w, "Erro interno no servidor", http.StatusInternalServerError)
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
