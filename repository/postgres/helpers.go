package postgres

import (
	"encoding/json"
	"time"
)

func marshalJSON(v interface{}) []byte {
	if v == nil {
		return nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return nil
	}
	return b
}

func marshalStrings(values []string) []byte {
	if len(values) == 0 {
		return nil
	}
	return marshalJSON(values)
}

func nullTime(t time.Time) interface{} {
	if t.IsZero() {
		return nil
	}
	return t
}

func clampLimit(limit int) int {
	if limit <= 0 || limit > 100 {
		return 100
	}
	return limit
}
