package service

import (
	"math"
	"time"

	"github.com/ReewajAdhikari/LearningTree/internal/domain/entity"
	"github.com/ReewajAdhikari/LearningTree/pkg/logger"
)

// AverageRating returns the arithmetic mean of the rating values rounded to
// one decimal place, or 0 when the list is empty. The list is assumed to be
// already scoped to a single tutor.
func AverageRating(ratings []*entity.Rating) float64 {
	if len(ratings) == 0 {
		return 0
	}

	sum := 0
	for _, r := range ratings {
		sum += r.Rating
	}

	mean := float64(sum) / float64(len(ratings))
	return math.Round(mean*10) / 10
}

// TutorAverage filters the ratings to the given tutor before averaging.
func TutorAverage(tutorID string, ratings []*entity.Rating) float64 {
	var scoped []*entity.Rating
	for _, r := range ratings {
		if r.TutorID == tutorID {
			scoped = append(scoped, r)
		}
	}
	return AverageRating(scoped)
}

// GroupEventsByDate buckets events by calendar date (YYYY-MM-DD, derived
// from the event's date parsed as a timestamp), preserving input order
// within each bucket. Events whose date cannot be parsed are skipped with a
// warning rather than bucketed under a bogus key.
func GroupEventsByDate(events []*entity.Event) map[string][]*entity.Event {
	buckets := make(map[string][]*entity.Event)

	for _, event := range events {
		t, err := ParseEventDate(event.Date)
		if err != nil {
			logger.Warn("Skipping event %s with unparsable date %q: %v", event.ID, event.Date, err)
			continue
		}

		key := t.UTC().Format("2006-01-02")
		buckets[key] = append(buckets[key], event)
	}

	return buckets
}

// ParseEventDate accepts the timestamps the clients actually write: full
// RFC 3339 or a bare calendar date.
func ParseEventDate(raw string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", raw)
}
