package service

import (
	"strings"

	"github.com/ReewajAdhikari/LearningTree/internal/domain/entity"
)

// FilterTutors returns the ordered sublist of tutors matching a free-text
// query and a set of required subjects. The query matches case-insensitively
// as a substring of the first name, last name, or any subject name. Every
// required subject must be present on the tutor (case-insensitive exact
// name match). Both filters empty is the identity.
//
// Lists here are tens to low hundreds of tutors, so this is a plain linear
// scan evaluated fresh on every call.
func FilterTutors(tutors []*entity.User, query string, requiredSubjects []string) []*entity.User {
	query = strings.ToLower(strings.TrimSpace(query))

	filtered := make([]*entity.User, 0, len(tutors))
	for _, tutor := range tutors {
		if !matchesQuery(tutor, query) {
			continue
		}
		if !hasAllSubjects(tutor, requiredSubjects) {
			continue
		}
		filtered = append(filtered, tutor)
	}

	return filtered
}

func matchesQuery(tutor *entity.User, query string) bool {
	if query == "" {
		return true
	}

	if strings.Contains(strings.ToLower(tutor.FirstName), query) {
		return true
	}
	if strings.Contains(strings.ToLower(tutor.LastName), query) {
		return true
	}
	for _, subject := range tutor.Subjects {
		if strings.Contains(strings.ToLower(subject.Name), query) {
			return true
		}
	}

	return false
}

func hasAllSubjects(tutor *entity.User, required []string) bool {
	for _, want := range required {
		found := false
		for _, subject := range tutor.Subjects {
			if strings.EqualFold(subject.Name, want) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// FilterCatalog narrows the subject catalog by prefix match against the
// entry title or any word of the description (split on whitespace and
// commas). An empty term returns the catalog unchanged.
func FilterCatalog(entries []entity.CatalogEntry, term string) []entity.CatalogEntry {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return entries
	}

	var filtered []entity.CatalogEntry
	for _, entry := range entries {
		if strings.HasPrefix(strings.ToLower(entry.Title), term) {
			filtered = append(filtered, entry)
			continue
		}
		for _, word := range strings.FieldsFunc(strings.ToLower(entry.Description), func(r rune) bool {
			return r == ' ' || r == ',' || r == '\t' || r == '\n'
		}) {
			if strings.HasPrefix(word, term) {
				filtered = append(filtered, entry)
				break
			}
		}
	}

	return filtered
}
