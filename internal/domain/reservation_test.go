package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestReservationOverlaps(t *testing.T) {
	ws := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)
	we := ws.Add(time.Hour)

	tests := []struct {
		name  string
		start time.Time
		end   time.Time
		want  bool
	}{
		{
			name:  "fully inside window",
			start: ws.Add(10 * time.Minute),
			end:   ws.Add(30 * time.Minute),
			want:  true,
		},
		{
			name:  "covers whole window",
			start: ws.Add(-time.Hour),
			end:   we.Add(time.Hour),
			want:  true,
		},
		{
			name:  "starts before, ends inside",
			start: ws.Add(-30 * time.Minute),
			end:   ws.Add(15 * time.Minute),
			want:  true,
		},
		{
			name:  "starts inside, ends after",
			start: we.Add(-15 * time.Minute),
			end:   we.Add(30 * time.Minute),
			want:  true,
		},
		{
			name:  "ends exactly at window start",
			start: ws.Add(-time.Hour),
			end:   ws,
			want:  false,
		},
		{
			name:  "starts exactly at window end",
			start: we,
			end:   we.Add(time.Hour),
			want:  false,
		},
		{
			name:  "entirely before",
			start: ws.Add(-2 * time.Hour),
			end:   ws.Add(-time.Hour),
			want:  false,
		},
		{
			name:  "entirely after",
			start: we.Add(time.Hour),
			end:   we.Add(2 * time.Hour),
			want:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &Reservation{StartTime: tt.start, EndTime: tt.end}
			assert.Equal(t, tt.want, r.Overlaps(ws, we))
		})
	}
}
