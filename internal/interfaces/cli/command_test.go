package cli

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

const (
	serviceMatchesBody = `{"apiVersion":"2.0","data":[
		{"id":"m1","player1":"Ana","player2":"Budi","score1":3,"score2":1,"result":"3-1","date":"2024-03-01T19:00:00Z","status":"completed","team1":"Real Madrid","team2":"Inter"},
		{"id":"m2","player1":"Budi","player2":"Citra","score1":2,"score2":2,"result":"2-2","date":"2024-03-08T19:00:00Z","status":"completed"},
		{"id":"m3","player1":"Citra","player2":"Ana","score1":0,"score2":4,"result":"0-4","date":"2024-03-15T19:00:00Z","status":"completed"}
	]}`
	servicePlayersBody = `{"apiVersion":"2.0","data":[
		{"id":"p1","name":"Ana"},{"id":"p2","name":"Budi"},{"id":"p3","name":"Citra"},{"id":"p4","name":"Dodi"}
	]}`
	serviceTeamsBody = `{"apiVersion":"2.0","data":[
		{"id":"tm-1","name":"Real Madrid","registered":true,"matches":1},
		{"id":"tm-2","name":"Ajax","registered":true,"matches":0},
		{"name":"Inter","registered":false,"matches":1}
	]}`
)

func newServiceServer(t *testing.T, gotScope *string) *httptest.Server {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if gotScope != nil {
			*gotScope = r.URL.Query().Get("scope")
		}
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/v1/matches":
			_, _ = w.Write([]byte(serviceMatchesBody))
		case "/v1/players":
			_, _ = w.Write([]byte(servicePlayersBody))
		case "/v1/teams":
			_, _ = w.Write([]byte(serviceTeamsBody))
		default:
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"apiVersion":"2.0","error":{"code":404,"message":"not found","status":"NOT_FOUND"}}`))
		}
	}))
	t.Cleanup(server.Close)
	return server
}

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	cmd := NewRootCommand(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestStandingsCommand_FromService(t *testing.T) {
	var gotScope string
	server := newServiceServer(t, &gotScope)

	out, err := runCommand(t, "standings", "--url", server.URL, "--scope", "2024")
	if err != nil {
		t.Fatalf("standings: %v", err)
	}
	if gotScope != "2024" {
		t.Fatalf("unexpected scope query: %q", gotScope)
	}

	lines := strings.Split(out, "\n")
	var anaLine, dodiLine string
	for _, line := range lines {
		if strings.Contains(line, "Ana") {
			anaLine = line
		}
		if strings.Contains(line, "Dodi") {
			dodiLine = line
		}
	}
	if !strings.Contains(anaLine, " 1 ") || !strings.Contains(anaLine, "6") {
		t.Fatalf("expected Ana ranked first with 6 points, got line %q\n%s", anaLine, out)
	}
	if dodiLine == "" {
		t.Fatalf("registered player without matches should be listed:\n%s", out)
	}
	if !strings.Contains(out, "scope: 2024") {
		t.Fatalf("missing scope footer:\n%s", out)
	}
}

func TestHeadToHeadCommand(t *testing.T) {
	server := newServiceServer(t, nil)

	out, err := runCommand(t, "h2h", "Ana", "Citra", "--url", server.URL)
	if err != nil {
		t.Fatalf("h2h: %v", err)
	}
	if !strings.Contains(out, "Ana vs Citra: 1 matches") || !strings.Contains(out, "goals 4-0") {
		t.Fatalf("unexpected head to head output:\n%s", out)
	}

	if _, err := runCommand(t, "h2h", "Ana", "--url", server.URL); err == nil {
		t.Fatalf("expected argument error for a single player")
	}
	if _, err := runCommand(t, "h2h", "Ana", "Ana", "--url", server.URL); err == nil {
		t.Fatalf("expected error comparing a player with themselves")
	}
}

func TestStatsCommand(t *testing.T) {
	server := newServiceServer(t, nil)

	out, err := runCommand(t, "stats", "--url", server.URL)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	for _, want := range []string{"Goals per match", "4.00", "Ana 3-1 Budi", "Citra"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in stats output:\n%s", want, out)
		}
	}
}

func TestTeamsCommand(t *testing.T) {
	server := newServiceServer(t, nil)

	out, err := runCommand(t, "teams", "--url", server.URL, "--scope", "2024")
	if err != nil {
		t.Fatalf("teams: %v", err)
	}

	var realLine, interLine, ajaxLine string
	for _, line := range strings.Split(out, "\n") {
		switch {
		case strings.Contains(line, "Real Madrid"):
			realLine = line
		case strings.Contains(line, "Inter"):
			interLine = line
		case strings.Contains(line, "Ajax"):
			ajaxLine = line
		}
	}
	if !strings.Contains(realLine, " 1 ") {
		t.Fatalf("expected Real Madrid with one match, got %q\n%s", realLine, out)
	}
	if !strings.Contains(interLine, "Inter *") {
		t.Fatalf("team only seen on matches must be marked, got %q\n%s", interLine, out)
	}
	if ajaxLine == "" {
		t.Fatalf("registered team without matches should be listed:\n%s", out)
	}
	if strings.Index(out, "Real Madrid") > strings.Index(out, "Ajax") {
		t.Fatalf("teams with matches come first:\n%s", out)
	}
}

func TestStatsCommand_FromUpstream(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/matches":
			_, _ = w.Write([]byte(`[{"_id":"u1","player1":"Ana","player2":"Budi","score1":2,"score2":1,"date":"2024-01-01"},
				{"_id":"u2","player1":"Ana","player2":"Budi","score1":"x","score2":1,"date":"2024-01-02"}]`))
		case "/api/players":
			_, _ = w.Write([]byte(`[{"_id":"a","name":"Ana"},{"_id":"b","name":"Budi"}]`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	t.Cleanup(server.Close)

	out, err := runCommand(t, "stats", "--source", "upstream", "--url", server.URL, "--scope", "2024")
	if err != nil {
		t.Fatalf("stats from upstream: %v", err)
	}
	if !strings.Contains(out, "excluded invalid records: 1") {
		t.Fatalf("expected excluded count in footer:\n%s", out)
	}
}

func TestRootCommand_RejectsBadFlags(t *testing.T) {
	if _, err := runCommand(t, "standings", "--source", "ftp"); err == nil {
		t.Fatalf("expected unknown source error")
	}
	if _, err := runCommand(t, "standings", "--scope", "someday"); err == nil {
		t.Fatalf("expected invalid scope error")
	}
}

func TestStandingsCommand_EmptyScope(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"apiVersion":"2.0","data":[]}`))
	}))
	t.Cleanup(server.Close)

	out, err := runCommand(t, "standings", "--url", server.URL, "--scope", "1999")
	if err != nil {
		t.Fatalf("standings: %v", err)
	}
	if !strings.Contains(out, "No matches recorded for 1999.") {
		t.Fatalf("unexpected output:\n%s", out)
	}
}
