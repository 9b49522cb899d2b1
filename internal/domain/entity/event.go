package entity

import "time"

// Event is one calendar entry. Date carries the ISO-8601 timestamp the
// client picked; the calendar groups events by the calendar date derived
// from it. Events are only ever queried scoped to their owner.
type Event struct {
	ID          string `json:"id" firestore:"id"`
	UserID      string `json:"user_id" firestore:"userId"`
	Title       string `json:"title" firestore:"title"`
	Date        string `json:"date" firestore:"date"`
	Type        string `json:"type" firestore:"type"`
	Description string `json:"description" firestore:"description"`

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
}

func EventFromRecord(id string, fields map[string]interface{}) *Event {
	record := MapDocument(id, fields)

	return &Event{
		ID:          stringField(record, "id"),
		UserID:      stringField(record, "userId"),
		Title:       stringField(record, "title"),
		Date:        stringField(record, "date"),
		Type:        stringField(record, "type"),
		Description: stringField(record, "description"),
		CreatedAt:   timeField(record, "createdAt"),
	}
}
