package loader

import (
	"strings"
	"testing"

	"github.com/hemanthramakumar9999/scalable-modern-datastack-architecture/internal/staging"
)

func TestReport_OrderAndCounts(t *testing.T) {
	rep := newReport(staging.EntityTeam)
	rep.accept()
	rep.reject(1, "11", ReasonMissingForeignKey, "league 99 not in production")
	rep.accept()
	rep.reject(3, "13", ReasonDuplicateKey, "")

	if rep.Accepted != 2 || rep.Rejected != 2 {
		t.Fatalf("unexpected counts: accepted=%d rejected=%d", rep.Accepted, rep.Rejected)
	}
	if rep.Rejections[0].Row != 1 || rep.Rejections[1].Row != 3 {
		t.Fatalf("rejections must keep batch order: %+v", rep.Rejections)
	}
}

func TestReport_Summary(t *testing.T) {
	rep := newReport(staging.EntityLeague)
	rep.accept()
	rep.reject(1, "2", ReasonDuplicateKey, "league_id already committed")

	got := rep.Summary()
	for _, want := range []string{"league", "accepted=1", "rejected=1", "row 1", "key 2", "DUPLICATE_KEY"} {
		if !strings.Contains(got, want) {
			t.Fatalf("summary %q missing %q", got, want)
		}
	}
}
