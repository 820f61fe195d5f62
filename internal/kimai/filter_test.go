package kimai

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTimesheetFilterValues(t *testing.T) {
	intPtr := func(v int64) *int64 { return &v }
	boolPtr := func(v bool) *bool { return &v }
	begin := time.Date(2026, 1, 2, 8, 0, 0, 0, time.Local)
	end := time.Date(2026, 1, 2, 17, 30, 0, 0, time.Local)

	tests := []struct {
		name     string
		filter   TimesheetFilter
		expected map[string]string
	}{
		{
			name:     "empty filter omits everything",
			filter:   TimesheetFilter{},
			expected: map[string]string{},
		},
		{
			name: "numeric fields",
			filter: TimesheetFilter{
				User:     intPtr(3),
				Customer: intPtr(1),
				Project:  intPtr(42),
				Activity: intPtr(7),
			},
			expected: map[string]string{
				"user":     "3",
				"customer": "1",
				"project":  "42",
				"activity": "7",
			},
		},
		{
			name:   "time range uses local wire format",
			filter: TimesheetFilter{Begin: &begin, End: &end},
			expected: map[string]string{
				"begin": "2026-01-02T08:00:00",
				"end":   "2026-01-02T17:30:00",
			},
		},
		{
			name:     "exported true",
			filter:   TimesheetFilter{Exported: boolPtr(true)},
			expected: map[string]string{"exported": "1"},
		},
		{
			name:     "exported false",
			filter:   TimesheetFilter{Exported: boolPtr(false)},
			expected: map[string]string{"exported": "0"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values := tt.filter.Values()
			assert.Len(t, values, len(tt.expected))
			for key, want := range tt.expected {
				assert.Equal(t, want, values.Get(key))
			}
		})
	}
}
