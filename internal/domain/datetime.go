package domain

import (
	"encoding/json"
	"fmt"
	"time"
)

const naiveLayout = "2006-01-02T15:04:05.999999"

// Datetime is a point in time that remembers whether it was given without a
// zone. Naive values are written back without one.
type Datetime struct {
	time.Time
	Naive bool
}

// MarshalJSON writes naive values as 2006-01-02T15:04:05[.ffffff] and
// others in RFC 3339.
func (d Datetime) MarshalJSON() ([]byte, error) {
	if d.Naive {
		return json.Marshal(d.Time.Format(naiveLayout))
	}
	return json.Marshal(d.Time.Format(time.RFC3339Nano))
}

// UnmarshalJSON reads the forms MarshalJSON writes.
func (d *Datetime) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("datetime: %w", err)
	}
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		*d = Datetime{Time: t}
		return nil
	}
	t, err := time.Parse("2006-01-02T15:04:05.999999999", s)
	if err != nil {
		return fmt.Errorf("datetime: %w", err)
	}
	*d = Datetime{Time: t, Naive: true}
	return nil
}
