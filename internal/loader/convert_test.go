package loader

import (
	"testing"
	"time"

	"github.com/hemanthramakumar9999/scalable-modern-datastack-architecture/internal/staging"
)

func TestParseBooleanFlag(t *testing.T) {
	trueValues := []string{"1", "Y", "y", "Yes", "YES", "yes", "True", "TRUE", "true", "  Yes  "}
	for _, v := range trueValues {
		if !ParseBooleanFlag(v) {
			t.Fatalf("ParseBooleanFlag(%q) = false, want true", v)
		}
	}

	falseValues := []string{"", "0", "N", "No", "false", "maybe", "garbage", "2", "yess", "  "}
	for _, v := range falseValues {
		if ParseBooleanFlag(v) {
			t.Fatalf("ParseBooleanFlag(%q) = true, want false", v)
		}
	}
}

func TestParseDate(t *testing.T) {
	got := ParseDate("2024-08-17")
	if got == nil {
		t.Fatalf("expected parsed date")
	}
	want := time.Date(2024, 8, 17, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("ParseDate = %v, want %v", got, want)
	}

	for _, v := range []string{"", "2024-99-99", "17/08/2024", "not a date"} {
		if ParseDate(v) != nil {
			t.Fatalf("ParseDate(%q) should be nil", v)
		}
	}
}

func TestParseInt(t *testing.T) {
	if got := ParseInt(" 42 "); got == nil || *got != 42 {
		t.Fatalf("ParseInt(\" 42 \") = %v, want 42", got)
	}
	if got := ParseInt("-3"); got == nil || *got != -3 {
		t.Fatalf("ParseInt(\"-3\") = %v, want -3", got)
	}
	for _, v := range []string{"", "abc", "4.5"} {
		if ParseInt(v) != nil {
			t.Fatalf("ParseInt(%q) should be nil", v)
		}
	}
}

func TestConvertLeague(t *testing.T) {
	row := staging.Row{
		staging.ColLeagueID:    " 1 ",
		staging.ColLeagueName:  "EPL",
		staging.ColCountry:     "England",
		staging.ColSportType:   "Football",
		staging.ColFoundedYear: "1992",
		staging.ColIsActive:    "Yes",
	}

	item, err := convertLeague(row)
	if err != nil {
		t.Fatalf("convert league: %v", err)
	}
	if item.ID != 1 || item.Name != "EPL" || !item.IsActive {
		t.Fatalf("unexpected league: %+v", item)
	}
	if item.FoundedYear == nil || *item.FoundedYear != 1992 {
		t.Fatalf("unexpected founded year: %v", item.FoundedYear)
	}
}

func TestConvertLeague_BadIdentity(t *testing.T) {
	for _, raw := range []string{"", "abc"} {
		row := staging.Row{staging.ColLeagueID: raw, staging.ColLeagueName: "X"}
		if _, err := convertLeague(row); err == nil {
			t.Fatalf("expected identity error for league_id=%q", raw)
		}
	}
}

func TestConvertMatch_InvalidDateStillConverts(t *testing.T) {
	row := staging.Row{
		staging.ColMatchID:    "1000",
		staging.ColLeagueID:   "1",
		staging.ColHomeTeamID: "10",
		staging.ColAwayTeamID: "11",
		staging.ColMatchDate:  "2024-99-99",
	}

	item, err := convertMatch(row)
	if err != nil {
		t.Fatalf("convert match: %v", err)
	}
	if item.MatchDate != nil {
		t.Fatalf("expected nil match date, got %v", item.MatchDate)
	}
	if item.Status != "Scheduled" {
		t.Fatalf("expected default status, got %q", item.Status)
	}
}
