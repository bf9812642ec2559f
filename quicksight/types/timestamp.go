package types

import (
	"encoding/json"
	"fmt"
	"time"

	smithytime "github.com/aws/smithy-go/time"
)

// Timestamp is a point in time carried on the wire as fractional epoch seconds.
type Timestamp struct {
	time.Time
}

// NewTimestamp returns t truncated to the millisecond precision of the wire format.
func NewTimestamp(t time.Time) *Timestamp {
	return &Timestamp{Time: smithytime.ParseEpochSeconds(smithytime.FormatEpochSeconds(t))}
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	return json.Marshal(smithytime.FormatEpochSeconds(t.Time))
}

func (t *Timestamp) UnmarshalJSON(b []byte) error {
	var secs float64
	if err := json.Unmarshal(b, &secs); err != nil {
		return fmt.Errorf("timestamp must be epoch seconds: %w", err)
	}
	t.Time = smithytime.ParseEpochSeconds(secs)
	return nil
}
