package period

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAt(t *testing.T) {
	tests := []struct {
		name  string
		ref   time.Time
		start string
		end   string
	}{
		{"mid-month", time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), "2024-02-21", "2024-03-20"},
		{"window start day", time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), "2024-02-21", "2024-03-20"},
		{"january wraps to december", time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC), "2023-12-21", "2024-01-20"},
		{"march window spans february", time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC), "2024-02-21", "2024-03-20"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := At(tt.ref)
			assert.Equal(t, tt.start, p.Start)
			assert.Equal(t, tt.end, p.End)
		})
	}
}

func TestContains(t *testing.T) {
	p := Period{Start: "2024-02-21", End: "2024-03-20"}

	assert.True(t, p.Contains("2024-02-21"), "start day is inclusive")
	assert.True(t, p.Contains("2024-03-20"), "end day is inclusive")
	assert.True(t, p.Contains("2024-03-01"))
	assert.False(t, p.Contains("2024-02-20"))
	assert.False(t, p.Contains("2024-03-21"))
}
