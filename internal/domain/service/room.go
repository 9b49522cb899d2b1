package service

import "strings"

// RoomKey derives the identifier for the two-party chat channel between two
// users. The pair is sorted first so both participants derive the same key
// regardless of who opens the chat.
func RoomKey(userA, userB string) string {
	if userA > userB {
		userA, userB = userB, userA
	}
	return "chat_" + userA + "_" + userB
}

// RoomHasParticipant reports whether the given user is one of the two
// participants encoded in a room key.
func RoomHasParticipant(room, userID string) bool {
	rest, ok := strings.CutPrefix(room, "chat_")
	if !ok || userID == "" {
		return false
	}

	return strings.HasPrefix(rest, userID+"_") || strings.HasSuffix(rest, "_"+userID)
}
