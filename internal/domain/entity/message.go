package entity

import "time"

// ChatMessage belongs to a two-party room; the room key is derived from the
// participant pair (see service.RoomKey). Messages are displayed ordered by
// CreatedAt and are never deleted.
type ChatMessage struct {
	ID        string `json:"id" firestore:"id"`
	Room      string `json:"room" firestore:"room"`
	Text      string `json:"text" firestore:"text"`
	UserID    string `json:"user_id" firestore:"userId"`
	UserName  string `json:"user_name" firestore:"userName"`
	TutorID   string `json:"tutor_id,omitempty" firestore:"tutorId,omitempty"`
	TutorName string `json:"tutor_name,omitempty" firestore:"tutorName,omitempty"`

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
}

func ChatMessageFromRecord(id string, fields map[string]interface{}) *ChatMessage {
	record := MapDocument(id, fields)

	return &ChatMessage{
		ID:        stringField(record, "id"),
		Room:      stringField(record, "room"),
		Text:      stringField(record, "text"),
		UserID:    stringField(record, "userId"),
		UserName:  stringField(record, "userName"),
		TutorID:   stringField(record, "tutorId"),
		TutorName: stringField(record, "tutorName"),
		CreatedAt: timeField(record, "createdAt"),
	}
}
