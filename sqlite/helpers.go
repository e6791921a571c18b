package sqlite

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/fwojciec/adscout"
)

// Listing columns that do not map onto a SQLite type are stored as text:
// images and bike fields as JSON, timestamps as RFC3339 in UTC.

func encodeImages(images []string) (string, error) {
	if images == nil {
		images = []string{}
	}
	b, err := json.Marshal(images)
	if err != nil {
		return "", fmt.Errorf("failed to encode images: %w", err)
	}
	return string(b), nil
}

func decodeImages(value string) ([]string, error) {
	var images []string
	if err := json.Unmarshal([]byte(value), &images); err != nil {
		return nil, fmt.Errorf("failed to decode images: %w", err)
	}
	return images, nil
}

func encodeBike(f *adscout.BikeFields) (sql.NullString, error) {
	if f == nil {
		return sql.NullString{}, nil
	}
	b, err := json.Marshal(f)
	if err != nil {
		return sql.NullString{}, fmt.Errorf("failed to encode bike fields: %w", err)
	}
	return sql.NullString{String: string(b), Valid: true}, nil
}

func decodeBike(value sql.NullString) (*adscout.BikeFields, error) {
	if !value.Valid {
		return nil, nil
	}
	var f adscout.BikeFields
	if err := json.Unmarshal([]byte(value.String), &f); err != nil {
		return nil, fmt.Errorf("failed to decode bike fields: %w", err)
	}
	return &f, nil
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

func parseTime(value, column string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse %s: %w", column, err)
	}
	return t, nil
}
