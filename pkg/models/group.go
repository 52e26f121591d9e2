package models

// Group is a group record. Members are stored exactly as the caller
// provided them; nothing checks that they name real users.
type Group struct {
	GroupName string   `json:"groupName"`
	Members   []string `json:"members"`
}
