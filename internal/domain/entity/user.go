package entity

import (
	"time"
)

// Subject is one teachable subject on a tutor profile. Course and
// description are optional free text.
type Subject struct {
	Name        string `json:"name" firestore:"name"`
	Course      string `json:"course,omitempty" firestore:"course,omitempty"`
	Description string `json:"description,omitempty" firestore:"description,omitempty"`
}

type User struct {
	ID          string `json:"id" firestore:"id"`
	Email       string `json:"email" firestore:"email"`
	DisplayName string `json:"display_name" firestore:"displayName"`
	FirstName   string `json:"first_name" firestore:"firstname"`
	LastName    string `json:"last_name" firestore:"lastname"`

	IsTutor          bool      `json:"is_tutor" firestore:"isTutor"`
	TutorVerified    bool      `json:"tutor_verified" firestore:"tutorVerified"`
	EducationalEmail string    `json:"educational_email,omitempty" firestore:"educationalEmail,omitempty"`
	Subjects         []Subject `json:"subjects" firestore:"subjects"`

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}

// UserFromRecord builds a User from a raw document field bag. Unknown fields
// are ignored and missing fields default explicitly, so documents written by
// older clients still map to a complete record.
func UserFromRecord(id string, fields map[string]interface{}) *User {
	record := MapDocument(id, fields)

	return &User{
		ID:               stringField(record, "id"),
		Email:            stringField(record, "email"),
		DisplayName:      stringField(record, "displayName"),
		FirstName:        stringField(record, "firstname"),
		LastName:         stringField(record, "lastname"),
		IsTutor:          boolField(record, "isTutor"),
		TutorVerified:    boolField(record, "tutorVerified"),
		EducationalEmail: stringField(record, "educationalEmail"),
		Subjects:         subjectsField(record, "subjects"),
		CreatedAt:        timeField(record, "createdAt"),
		UpdatedAt:        timeField(record, "updatedAt"),
	}
}

func subjectsField(fields map[string]interface{}, key string) []Subject {
	raw, ok := fields[key].([]interface{})
	if !ok {
		return []Subject{}
	}

	subjects := make([]Subject, 0, len(raw))
	for _, item := range raw {
		bag, ok := item.(map[string]interface{})
		if !ok {
			continue
		}
		subjects = append(subjects, Subject{
			Name:        stringField(bag, "name"),
			Course:      stringField(bag, "course"),
			Description: stringField(bag, "description"),
		})
	}

	return subjects
}
