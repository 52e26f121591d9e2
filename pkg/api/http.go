// Package api assembles the HTTP surface of the chat backend. Each
// endpoint maps 1:1 to one store-access operation; the status mapping is
// Conflict→409, Unauthorized→401, NotFound→404, BadRequest→400, creation
// success→201, other success→200, unmatched route→404.
package api

import (
	"net/http"

	"chatkv/pkg/api/handlers"
	"chatkv/pkg/chat"
	"chatkv/pkg/utils"

	"github.com/gorilla/mux"
)

// Handler returns the router serving all chat endpoints against svc.
func Handler(svc *chat.Service) http.Handler {
	r := mux.NewRouter()
	handlers.RegisterUsers(r, svc)
	handlers.RegisterMessages(r, svc)
	handlers.RegisterGroups(r, svc)
	handlers.RegisterAdmin(r, svc)
	// A wrong method on a known path is treated the same as an unknown
	// path: the route dispatch matched nothing, so 404.
	notFound := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		utils.JSONError(w, http.StatusNotFound, "not found")
	})
	r.NotFoundHandler = notFound
	r.MethodNotAllowedHandler = notFound
	return r
}
