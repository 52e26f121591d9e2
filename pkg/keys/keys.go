// Package keys builds the composite keys under which the chat schema is
// stored. Keys are tuple segments joined by ':'; prefix forms always end
// with a trailing ':' so a scan over one tuple can never leak into a
// sibling whose first segment merely shares a byte prefix
// ("users:a:" does not match "users:ab:...").
package keys

import "strings"

const sep = ":"

// Namespaces. Everything in the store lives under one of these.
const (
	UsersNS    = "users"
	MessagesNS = "messages"
	GroupsNS   = "groups"
)

// Join joins tuple segments into a point key.
func Join(parts ...string) string {
	return strings.Join(parts, sep)
}

// Prefix joins tuple segments and appends the separator, producing a scan
// prefix that matches only keys with strictly more segments.
func Prefix(parts ...string) string {
	return strings.Join(parts, sep) + sep
}

// User index entries. All three point at the same denormalized record.

func UserByID(id string) string         { return Join(UsersNS, "id", id) }
func UserByName(username string) string { return Join(UsersNS, "username", username) }
func UserByEmail(email string) string   { return Join(UsersNS, "email", email) }

// UsersPrefix spans every user index entry, for bulk purge.
func UsersPrefix() string { return Prefix(UsersNS) }

// Direct-message log. The log is directional: a message lives only under
// its sender's side of the conversation.

func DirectMessage(from, to, ts string) string {
	return Join(MessagesNS, UsersNS, from, to, ts)
}

// DirectPrefix spans one directed conversation log.
func DirectPrefix(from, to string) string { return Prefix(MessagesNS, UsersNS, from, to) }

// SentPrefix spans every message a user has sent, to any recipient.
func SentPrefix(from string) string { return Prefix(MessagesNS, UsersNS, from) }

// Group-message log.

func GroupMessage(group, ts string) string { return Join(MessagesNS, GroupsNS, group, ts) }

// GroupMessagesPrefix spans one group's log.
func GroupMessagesPrefix(group string) string { return Prefix(MessagesNS, GroupsNS, group) }

// MessagesPrefix spans every message, direct and group, for bulk purge and
// authored-message sweeps.
func MessagesPrefix() string { return Prefix(MessagesNS) }

// Group returns the key of a group record. Group name is the primary key.
func Group(name string) string { return Join(GroupsNS, name) }
