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

// RegisterGroups registers the group lifecycle endpoints on the router.
func RegisterGroups(r *mux.Router, svc *chat.Service) {
	r.HandleFunc("/create-group", createGroup(svc)).Methods(http.MethodPost)
	r.HandleFunc("/delete-group", deleteGroup(svc)).Methods(http.MethodPost)
}

func createGroup(svc *chat.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			GroupName string   `json:"groupName"`
			Members   []string `json:"members"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			utils.JSONError(w, http.StatusBadRequest, "invalid json")
			return
		}
		if err := svc.CreateGroup(body.GroupName, body.Members); err != nil {
			if errors.Is(err, chat.ErrConflict) {
				utils.JSONError(w, http.StatusConflict, "Group already exists")
				return
			}
			logger.Error("create_group_failed", "group", body.GroupName, "error", err)
			utils.JSONError(w, http.StatusInternalServerError, "internal error")
			return
		}
		_ = utils.JSONWrite(w, http.StatusCreated, map[string]string{
			"message": "Group created successfully",
		})
	}
}

func deleteGroup(svc *chat.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			GroupName string `json:"groupName"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			utils.JSONError(w, http.StatusBadRequest, "invalid json")
			return
		}
		if err := svc.DeleteGroup(body.GroupName); err != nil {
			if errors.Is(err, chat.ErrNotFound) {
				utils.JSONError(w, http.StatusNotFound, "Group not found")
				return
			}
			logger.Error("delete_group_failed", "group", body.GroupName, "error", err)
			utils.JSONError(w, http.StatusInternalServerError, "internal error")
			return
		}
		_ = utils.JSONWrite(w, http.StatusOK, map[string]string{
			"message": "Group deleted successfully",
		})
	}
}
