package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"chatkv/pkg/chat"
	"chatkv/pkg/logger"
	"chatkv/pkg/utils"

	"github.com/gorilla/mux"
)

// credentials is the shared body shape of signup, login and remove.
// Login and remove accept either username or email; username wins when
// both are present.
type credentials struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterUsers registers the account endpoints on the router.
func RegisterUsers(r *mux.Router, svc *chat.Service) {
	r.HandleFunc("/signup", signup(svc)).Methods(http.MethodPost)
	r.HandleFunc("/login", login(svc)).Methods(http.MethodPost)
	r.HandleFunc("/remove", removeUser(svc)).Methods(http.MethodPost)
}

func signup(svc *chat.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var c credentials
		if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
			utils.JSONError(w, http.StatusBadRequest, "invalid json")
			return
		}
		u, err := svc.RegisterUser(c.Username, c.Email, c.Password)
		if err != nil {
			if errors.Is(err, chat.ErrConflict) {
				utils.JSONError(w, http.StatusConflict, "User or email already exists")
				return
			}
			logger.Error("signup_failed", "error", err)
			utils.JSONError(w, http.StatusInternalServerError, "internal error")
			return
		}
		_ = utils.JSONWrite(w, http.StatusCreated, map[string]string{
			"message": "User registered successfully",
			"userId":  u.UserID,
		})
	}
}

func login(svc *chat.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var c credentials
		if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
			utils.JSONError(w, http.StatusBadRequest, "invalid json")
			return
		}
		u, err := svc.Authenticate(c.Username, c.Email, c.Password)
		if err != nil {
			if errors.Is(err, chat.ErrUnauthorized) {
				utils.JSONError(w, http.StatusUnauthorized, "Invalid username/email or password")
				return
			}
			logger.Error("login_failed", "error", err)
			utils.JSONError(w, http.StatusInternalServerError, "internal error")
			return
		}
		_ = utils.JSONWrite(w, http.StatusOK, map[string]string{
			"message": "Login successful",
			"userId":  u.UserID,
		})
	}
}

func removeUser(svc *chat.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var c credentials
		if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
			utils.JSONError(w, http.StatusBadRequest, "invalid json")
			return
		}
		if err := svc.RemoveUser(c.Username, c.Email, c.Password); err != nil {
			if errors.Is(err, chat.ErrUnauthorized) {
				utils.JSONError(w, http.StatusUnauthorized, "Invalid username/email or password")
				return
			}
			logger.Error("remove_user_failed", "error", err)
			utils.JSONError(w, http.StatusInternalServerError, "internal error")
			return
		}
		_ = utils.JSONWrite(w, http.StatusOK, map[string]string{
			"message": "User and all related data removed successfully",
		})
	}
}
