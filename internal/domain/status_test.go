package domain

import "testing"

func TestStatus_Valid(t *testing.T) {
	for _, s := range []Status{StatusOperational, StatusDoubtful, StatusWarning, StatusMaintenance, StatusDown} {
		if !s.Valid() {
			t.Fatalf("%q should be valid", s)
		}
	}
	for _, s := range []Status{StatusUnset, "operational", "OK", "down "} {
		if s.Valid() {
			t.Fatalf("%q should not be valid", s)
		}
	}
}

func TestParseStatus(t *testing.T) {
	cases := []struct {
		in   string
		want Status
	}{
		{"Operational", StatusOperational},
		{"Maintenance", StatusMaintenance},
		{"", StatusUnset},
		{"garbage", StatusUnset},
		{"operational", StatusUnset}, // labels are case-exact in the store
	}
	for _, c := range cases {
		if got := ParseStatus(c.in); got != c.want {
			t.Fatalf("ParseStatus(%q)=%q want %q", c.in, got, c.want)
		}
	}
}
