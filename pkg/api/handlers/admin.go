package handlers

import (
	"errors"
	"net/http"

	"chatkv/pkg/chat"
	"chatkv/pkg/logger"
	"chatkv/pkg/utils"

	"github.com/gorilla/mux"
)

// RegisterAdmin registers the bulk purge endpoint on the router.
func RegisterAdmin(r *mux.Router, svc *chat.Service) {
	r.HandleFunc("/delete", purge(svc)).Methods(http.MethodGet)
}

// purge wipes one namespace wholesale. The wire value "msgs" is the
// historical spelling of the messages scope and stays accepted.
func purge(svc *chat.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		scope := r.URL.Query().Get("type")
		if scope == "msgs" {
			scope = chat.ScopeMessages
		}
		if err := svc.Purge(scope); err != nil {
			if errors.Is(err, chat.ErrBadRequest) {
				utils.JSONError(w, http.StatusBadRequest, "Invalid type parameter")
				return
			}
			logger.Error("purge_failed", "scope", scope, "error", err)
			utils.JSONError(w, http.StatusInternalServerError, "internal error")
			return
		}
		msg := "All accounts deleted successfully"
		if scope == chat.ScopeMessages {
			msg = "All messages deleted successfully"
		}
		_ = utils.JSONWrite(w, http.StatusOK, map[string]string{"message": msg})
	}
}
