package router

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
)

// Route descreve um endpoint HTTP e os middlewares aplicados só a ele,
// como a autenticação das rotas de relatório
type Route struct {
	Path        string
	Method      string
	Handler     http.Handler
	Middlewares []func(http.Handler) http.Handler
}

type Router struct {
	router *httprouter.Router
}

type ConfigRouter func(router *Router)

// WithRoutes registra um grupo de rotas na criação do router
func WithRoutes(routes ...Route) ConfigRouter {
	return func(router *Router) {
		router.AddRoutes(routes...)
	}
}

func New(configs ...ConfigRouter) Router {
	router := &Router{
		router: httprouter.New(),
	}

	for _, config := range configs {
		config(router)
	}

	return *router
}

func (r Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.router.ServeHTTP(w, req)
}

// AddRoutes registra as rotas, embrulhando cada handler nos middlewares
// da rota na ordem declarada
func (r Router) AddRoutes(routes ...Route) {
	for _, route := range routes {
		r.router.Handler(route.Method, route.Path, wrap(route.Handler, route.Middlewares))
	}
}

func wrap(handler http.Handler, middlewares []func(http.Handler) http.Handler) http.Handler {
	for i := len(middlewares) - 1; i >= 0; i-- {
		handler = middlewares[i](handler)
	}

	return handler
}
