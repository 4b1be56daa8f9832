package middleware

import "net/http"

// Origens liberadas para o dashboard web. Requisições de outras origens
// seguem sem os cabeçalhos CORS e o navegador as bloqueia
var allowedOrigins = map[string]struct{}{
	"http://localhost:3000":                  {},
	"http://localhost:5173":                  {},
	"https://dashboard-wehub.vercel.app":     {},
	"https://dashboard-wehub-web.vercel.app": {},
}

func Cors() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if origin := r.Header.Get("Origin"); originAllowed(origin) {
				w.Header().Set("Access-Control-Allow-Origin", origin)
				w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PATCH, PUT, DELETE, OPTIONS")
				w.Header().Set("Access-Control-Allow-Headers", "Accept, Authorization, Content-Type, X-Requested-With")
				w.Header().Set("Access-Control-Allow-Credentials", "true")
				w.Header().Set("Access-Control-Max-Age", "86400")
			}

			// O preflight termina aqui, sem passar pela autenticação
			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func originAllowed(origin string) bool {
	_, ok := allowedOrigins[origin]
	return ok
}
