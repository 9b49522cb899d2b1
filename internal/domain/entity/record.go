package entity

import "time"

// MapDocument merges a document identifier with its field bag under the
// fixed "id" key. Field values are carried verbatim; a nil bag yields a
// record holding only the identifier. Every *FromRecord constructor goes
// through this merge, so the identifier wins over any stray "id" field
// stored in the document itself.
func MapDocument(id string, fields map[string]interface{}) map[string]interface{} {
	record := make(map[string]interface{}, len(fields)+1)
	for k, v := range fields {
		record[k] = v
	}
	record["id"] = id
	return record
}

// Field accessors shared by the *FromRecord constructors. Document field
// bags come back from the store as map[string]interface{} with no schema,
// so every read defaults explicitly instead of panicking on a bad type.

func stringField(fields map[string]interface{}, key string) string {
	if v, ok := fields[key].(string); ok {
		return v
	}
	return ""
}

func boolField(fields map[string]interface{}, key string) bool {
	if v, ok := fields[key].(bool); ok {
		return v
	}
	return false
}

func intField(fields map[string]interface{}, key string) int {
	switch v := fields[key].(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	}
	return 0
}

func timeField(fields map[string]interface{}, key string) time.Time {
	switch v := fields[key].(type) {
	case time.Time:
		return v
	case string:
		if t, err := time.Parse(time.RFC3339, v); err == nil {
			return t
		}
	}
	return time.Time{}
}
