package notifier

import (
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// Timestamp is the best-effort parse result of a delivered_at column. When
// Parsed is true, Time holds the instant; either way Raw keeps the original
// text, so an unparseable value degrades to its literal form instead of
// masquerading as a real timestamp.
type Timestamp struct {
	Time   time.Time
	Raw    string
	Parsed bool
}

func (t Timestamp) String() string {
	if t.Parsed {
		return t.Time.Format(time.RFC3339)
	}
	return t.Raw
}

// Record describes one delivered notification as reported by the -list verb.
// Trailing fields missing from a short line stay at their zero values.
type Record struct {
	Group       string
	Title       string
	Subtitle    string
	Message     string
	DeliveredAt Timestamp
}

// parseTimestamp attempts to parse raw as a timestamp in any common layout.
// Parse failure is not an error; the raw text is retained unchanged.
func parseTimestamp(raw string) Timestamp {
	ts := Timestamp{Raw: raw}
	if t, err := dateparse.ParseAny(raw); err == nil {
		ts.Time = t
		ts.Parsed = true
	}
	return ts
}

// parseList turns the raw -list output into records. The first line is the
// column header and is discarded; each remaining line is split on tabs into
// at most five positional fields: group, title, subtitle, message,
// delivered_at.
func parseList(output []byte) []Record {
	text := strings.TrimRight(string(output), "\n")
	if text == "" {
		return nil
	}

	lines := strings.Split(text, "\n")
	if len(lines) <= 1 {
		return nil
	}

	records := make([]Record, 0, len(lines)-1)
	for _, line := range lines[1:] {
		fields := strings.SplitN(line, "\t", 5)
		var rec Record
		for i, f := range fields {
			switch i {
			case 0:
				rec.Group = f
			case 1:
				rec.Title = f
			case 2:
				rec.Subtitle = f
			case 3:
				rec.Message = f
			case 4:
				rec.DeliveredAt = parseTimestamp(f)
			}
		}
		records = append(records, rec)
	}
	return records
}
