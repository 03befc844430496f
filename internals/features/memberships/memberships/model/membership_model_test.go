package model

import (
	"testing"
	"time"
)

func TestMembershipIsValid(t *testing.T) {
	now := time.Date(2025, time.June, 1, 9, 0, 0, 0, time.UTC)

	cases := []struct {
		name   string
		status string
		end    time.Time
		want   bool
	}{
		{"active, future end", MembershipStatusActive, now.AddDate(0, 1, 0), true},
		{"active, end exactly now", MembershipStatusActive, now, true},
		{"active, end passed", MembershipStatusActive, now.Add(-time.Second), false},
		{"expired status, future end", MembershipStatusExpired, now.AddDate(0, 1, 0), false},
		{"expired status, end passed", MembershipStatusExpired, now.AddDate(0, -1, 0), false},
	}

	for _, tc := range cases {
		m := MembershipModel{
			MembershipStatus:  tc.status,
			MembershipEndDate: tc.end,
		}
		if got := m.IsValid(now); got != tc.want {
			t.Errorf("%s: IsValid = %v, want %v", tc.name, got, tc.want)
		}
	}
}
