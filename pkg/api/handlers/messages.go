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

// RegisterMessages registers the messaging endpoints on the router.
func RegisterMessages(r *mux.Router, svc *chat.Service) {
	r.HandleFunc("/send-message", sendMessage(svc)).Methods(http.MethodPost)
	r.HandleFunc("/messages", listMessages(svc)).Methods(http.MethodGet)
	r.HandleFunc("/users-messaged", usersMessaged(svc)).Methods(http.MethodGet)
}

func sendMessage(svc *chat.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			UserID            string `json:"userId"`
			RecipientUsername string `json:"recipientUsername"`
			GroupName         string `json:"groupName"`
			Message           string `json:"message"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			utils.JSONError(w, http.StatusBadRequest, "invalid json")
			return
		}
		err := svc.SendMessage(chat.SendRequest{
			UserID:            body.UserID,
			RecipientUsername: body.RecipientUsername,
			GroupName:         body.GroupName,
			Message:           body.Message,
		})
		if err != nil {
			if errors.Is(err, chat.ErrNotFound) {
				utils.JSONError(w, http.StatusNotFound, "Recipient not found")
				return
			}
			logger.Error("send_message_failed", "error", err)
			utils.JSONError(w, http.StatusInternalServerError, "internal error")
			return
		}
		_ = utils.JSONWrite(w, http.StatusOK, map[string]string{
			"message": "Message sent successfully",
		})
	}
}

// listMessages serves one log: a group's when groupName is given, else one
// direction of a conversation when both userId and recipientId are given.
func listMessages(svc *chat.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		groupName := q.Get("groupName")
		userID := q.Get("userId")
		recipientID := q.Get("recipientId")

		switch {
		case groupName != "":
			msgs, err := svc.ListGroupMessages(groupName)
			if err != nil {
				logger.Error("list_group_messages_failed", "group", groupName, "error", err)
				utils.JSONError(w, http.StatusInternalServerError, "internal error")
				return
			}
			_ = utils.JSONWrite(w, http.StatusOK, msgs)
		case userID != "" && recipientID != "":
			msgs, err := svc.ListDirectMessages(userID, recipientID)
			if err != nil {
				logger.Error("list_direct_messages_failed", "user", userID, "error", err)
				utils.JSONError(w, http.StatusInternalServerError, "internal error")
				return
			}
			_ = utils.JSONWrite(w, http.StatusOK, msgs)
		default:
			utils.JSONError(w, http.StatusBadRequest, "Invalid query parameters")
		}
	}
}

// usersMessaged serves the last-message-per-peer summary. The query
// parameter keeps its historical name "username" but carries the user id
// the message keys are built from.
func usersMessaged(svc *chat.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.URL.Query().Get("username")
		if userID == "" {
			utils.JSONError(w, http.StatusBadRequest, "Username parameter is required")
			return
		}
		peers, err := svc.ListConversationPeers(userID)
		if err != nil {
			logger.Error("users_messaged_failed", "user", userID, "error", err)
			utils.JSONError(w, http.StatusInternalServerError, "internal error")
			return
		}
		_ = utils.JSONWrite(w, http.StatusOK, peers)
	}
}
