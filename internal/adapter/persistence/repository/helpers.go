package repository

import (
	"math"
	"strconv"
	"time"

	"nelly_tech/internal/usecase/interfaces"
)

// Stored values come back with backend-specific types: Firestore yields
// time.Time and int64, DynamoDB yields strings and float64, and records written
// by the public site keep ISO date strings. The accessors below accept all of them.

func fieldString(f interfaces.Fields, key string) string {
	switch v := f[key].(type) {
	case string:
		return v
	case nil:
		return ""
	case []byte:
		return string(v)
	}
	return ""
}

func fieldBool(f interfaces.Fields, key string) bool {
	switch v := f[key].(type) {
	case bool:
		return v
	case string:
		b, _ := strconv.ParseBool(v)
		return b
	}
	return false
}

func fieldInt64(f interfaces.Fields, key string) int64 {
	switch v := f[key].(type) {
	case int64:
		return v
	case int:
		return int64(v)
	case int32:
		return int64(v)
	case float64:
		return int64(math.Round(v))
	case string:
		n, _ := strconv.ParseInt(v, 10, 64)
		return n
	}
	return 0
}

func fieldTime(f interfaces.Fields, key string) time.Time {
	switch v := f[key].(type) {
	case time.Time:
		return v.UTC()
	case *time.Time:
		if v != nil {
			return v.UTC()
		}
	case string:
		if t, err := time.Parse(time.RFC3339Nano, v); err == nil {
			return t.UTC()
		}
	}
	return time.Time{}
}

// timeOrNil keeps zero timestamps out of the store.
func timeOrNil(t time.Time) any {
	if t.IsZero() {
		return nil
	}
	return t.UTC()
}
