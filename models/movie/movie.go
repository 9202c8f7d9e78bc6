package movie

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

// Movie is a catalog row. Poster holds the filename of the associated
// asset under the configured poster directory; every persisted row is
// expected to reference an existing file there.
type Movie struct {
	ID          uint        `gorm:"primaryKey;autoIncrement" json:"movieId"`
	Title       string      `gorm:"type:varchar(200);not null" json:"title"`
	Director    string      `gorm:"type:varchar(255);not null" json:"director"`
	Studio      string      `gorm:"type:varchar(255);not null" json:"studio"`
	MovieCast   StringSlice `gorm:"type:json" json:"movieCast"`
	ReleaseYear int         `gorm:"not null" json:"releaseYear"`
	Poster      string      `gorm:"type:varchar(512);not null" json:"poster"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// StringSlice stores the cast as a JSON column.
type StringSlice []string

// Scan implements the Scanner interface for database deserialization
func (ss *StringSlice) Scan(value interface{}) error {
	if value == nil {
		*ss = nil
		return nil
	}

	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("type assertion to []byte failed")
	}

	return json.Unmarshal(bytes, ss)
}

// Value implements the driver Valuer interface for database serialization
func (ss StringSlice) Value() (driver.Value, error) {
	if ss == nil {
		return nil, nil
	}
	return json.Marshal(ss)
}

// Dedupe returns the cast with duplicates removed, first occurrence
// order preserved. The cast is a set; the column just stores it flat.
func (ss StringSlice) Dedupe() StringSlice {
	seen := make(map[string]struct{}, len(ss))
	out := make(StringSlice, 0, len(ss))
	for _, s := range ss {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}
