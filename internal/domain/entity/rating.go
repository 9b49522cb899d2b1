package entity

import "time"

// Rating is one user's score for a tutor. At most one rating exists per
// (tutorId, userId) pair; the usecase layer checks before writing.
type Rating struct {
	ID      string `json:"id" firestore:"id"`
	TutorID string `json:"tutor_id" firestore:"tutorId"`
	UserID  string `json:"user_id" firestore:"userId"`
	Rating  int    `json:"rating" firestore:"rating"` // 1-5
	Comment string `json:"comment,omitempty" firestore:"comment,omitempty"`
	Subject string `json:"subject,omitempty" firestore:"subject,omitempty"`

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
}

func RatingFromRecord(id string, fields map[string]interface{}) *Rating {
	record := MapDocument(id, fields)

	return &Rating{
		ID:        stringField(record, "id"),
		TutorID:   stringField(record, "tutorId"),
		UserID:    stringField(record, "userId"),
		Rating:    intField(record, "rating"),
		Comment:   stringField(record, "comment"),
		Subject:   stringField(record, "subject"),
		CreatedAt: timeField(record, "createdAt"),
	}
}
