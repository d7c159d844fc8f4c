package querybuilder

import "testing"

func TestSelect_WhereOrderLimit(t *testing.T) {
	query, args, err := Select("league_id", "league_name").
		From("leagues").
		Where(Eq("country", "England"), Eq("is_active", true)).
		OrderBy("league_id").
		Limit(1).
		ToSQL()
	if err != nil {
		t.Fatalf("build select: %v", err)
	}

	want := "SELECT league_id, league_name FROM leagues WHERE country = $1 AND is_active = $2 ORDER BY league_id LIMIT 1"
	if query != want {
		t.Fatalf("query mismatch:\n got %s\nwant %s", query, want)
	}
	if len(args) != 2 || args[0] != "England" || args[1] != true {
		t.Fatalf("unexpected args: %v", args)
	}
}

func TestSelect_MissingTable(t *testing.T) {
	if _, _, err := Select("1").ToSQL(); err == nil {
		t.Fatalf("expected error for missing table")
	}
}

func TestInsert_MultiRowWithSuffix(t *testing.T) {
	query, args, err := InsertInto("stg_leagues").
		Columns("league_id", "league_name").
		Values("1", "EPL").
		Values("2", "La Liga").
		Suffix("ON CONFLICT DO NOTHING").
		ToSQL()
	if err != nil {
		t.Fatalf("build insert: %v", err)
	}

	want := "INSERT INTO stg_leagues (league_id, league_name) VALUES ($1, $2), ($3, $4) ON CONFLICT DO NOTHING"
	if query != want {
		t.Fatalf("query mismatch:\n got %s\nwant %s", query, want)
	}
	if len(args) != 4 {
		t.Fatalf("unexpected args: %v", args)
	}
}

func TestInsert_RowWidthMismatch(t *testing.T) {
	_, _, err := InsertInto("stg_leagues").
		Columns("league_id", "league_name").
		Values("1").
		ToSQL()
	if err == nil {
		t.Fatalf("expected error for row width mismatch")
	}
}

func TestInsertModel(t *testing.T) {
	model := struct {
		ID     int64  `db:"league_id"`
		Name   string `db:"league_name"`
		hidden string
		Skip   string `db:"-"`
	}{ID: 1, Name: "EPL", hidden: "x", Skip: "y"}

	query, args, err := InsertModel("leagues", model, "")
	if err != nil {
		t.Fatalf("build insert model: %v", err)
	}

	want := "INSERT INTO leagues (league_id, league_name) VALUES ($1, $2)"
	if query != want {
		t.Fatalf("query mismatch:\n got %s\nwant %s", query, want)
	}
	if len(args) != 2 || args[0] != int64(1) {
		t.Fatalf("unexpected args: %v", args)
	}
}
