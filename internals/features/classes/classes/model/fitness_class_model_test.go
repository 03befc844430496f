package model

import (
	"testing"
	"time"
)

func TestIsOpenAt(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		name     string
		status   string
		schedule time.Time
		open     bool
	}{
		{"active future", FitnessClassStatusActive, now.Add(2 * time.Hour), true},
		{"active past", FitnessClassStatusActive, now.Add(-2 * time.Hour), false},
		{"active right now", FitnessClassStatusActive, now, false},
		{"cancelled future", FitnessClassStatusCancelled, now.Add(2 * time.Hour), false},
		{"completed future", FitnessClassStatusCompleted, now.Add(2 * time.Hour), false},
	}
	for _, tc := range cases {
		f := FitnessClassModel{
			FitnessClassStatus:       tc.status,
			FitnessClassScheduleTime: tc.schedule,
		}
		if got := f.IsOpenAt(now); got != tc.open {
			t.Errorf("%s: IsOpenAt = %v, want %v", tc.name, got, tc.open)
		}
	}
}
