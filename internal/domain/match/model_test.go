package match

import "testing"

func TestNormalizeStatus(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"", StatusScheduled},
		{"   ", StatusScheduled},
		{"scheduled", StatusScheduled},
		{"SCHEDULED", StatusScheduled},
		{"In Progress", StatusInProgress},
		{"live", StatusInProgress},
		{"completed", StatusCompleted},
		{"FT", StatusCompleted},
		{"postponed", StatusPostponed},
		{"Abandoned", "Abandoned"},
		{"  Suspended  ", "Suspended"},
	}

	for _, tc := range cases {
		if got := NormalizeStatus(tc.in); got != tc.want {
			t.Fatalf("NormalizeStatus(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestSameTeams(t *testing.T) {
	m := Match{HomeTeamID: 10, AwayTeamID: 10}
	if !m.SameTeams() {
		t.Fatalf("expected SameTeams for identical team ids")
	}

	m.AwayTeamID = 11
	if m.SameTeams() {
		t.Fatalf("did not expect SameTeams for distinct team ids")
	}
}
