package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTimeEntry_IsComplete(t *testing.T) {
	begin := time.Date(2026, 3, 10, 9, 0, 0, 0, time.Local)

	tests := []struct {
		name     string
		entry    TimeEntry
		expected bool
	}{
		{
			name:     "open entry is not complete",
			entry:    TimeEntry{Begin: begin},
			expected: false,
		},
		{
			name: "closed entry is complete",
			entry: func() TimeEntry {
				end := begin.Add(time.Hour)
				return TimeEntry{Begin: begin, End: &end}
			}(),
			expected: true,
		},
		{
			name: "zero-length entry is complete",
			entry: func() TimeEntry {
				end := begin
				return TimeEntry{Begin: begin, End: &end}
			}(),
			expected: true,
		},
		{
			name: "end before begin is not complete",
			entry: func() TimeEntry {
				end := begin.Add(-time.Minute)
				return TimeEntry{Begin: begin, End: &end}
			}(),
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.entry.IsComplete())
		})
	}
}

func TestTimeEntry_IsValid(t *testing.T) {
	begin := time.Date(2026, 3, 10, 9, 0, 0, 0, time.Local)
	project := &Project{ID: 1, Name: "Website"}
	activity := &Activity{ID: 2, Name: "Development"}

	tests := []struct {
		name     string
		entry    TimeEntry
		expected bool
	}{
		{"valid running entry", TimeEntry{Begin: begin, Project: project, Activity: activity}, true},
		{"missing begin", TimeEntry{Project: project, Activity: activity}, false},
		{"missing project", TimeEntry{Begin: begin, Activity: activity}, false},
		{"missing activity", TimeEntry{Begin: begin, Project: project}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.entry.IsValid())
		})
	}
}

func TestTimeEntry_ElapsedAt(t *testing.T) {
	begin := time.Date(2026, 3, 10, 9, 0, 0, 0, time.Local)
	entry := TimeEntry{Begin: begin}

	assert.Equal(t, int64(125), entry.ElapsedAt(begin.Add(125*time.Second)))
	assert.Equal(t, int64(0), entry.ElapsedAt(begin))
	// A clock adjustment must never yield negative elapsed time.
	assert.Equal(t, int64(0), entry.ElapsedAt(begin.Add(-time.Minute)))
}
