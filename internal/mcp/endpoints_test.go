package mcp

import (
	"strings"
	"testing"
)

func TestNewCatalog_AllEntriesValid(t *testing.T) {
	registry, err := NewCatalog()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if registry.Len() != len(Endpoints()) {
		t.Errorf("Expected %d tools, got %d", len(Endpoints()), registry.Len())
	}
}

func TestEndpoints_NamingConventions(t *testing.T) {
	seen := make(map[string]bool)
	for _, tool := range Endpoints() {
		if seen[tool.Name] {
			t.Errorf("Duplicate tool name %q", tool.Name)
		}
		seen[tool.Name] = true

		if !strings.HasPrefix(tool.Name, "mlb_") {
			t.Errorf("Tool %q does not carry the mlb_ prefix", tool.Name)
		}
		if tool.Description == "" {
			t.Errorf("Tool %q has an empty description", tool.Name)
		}
		for _, p := range tool.Params {
			if p.Description == "" {
				t.Errorf("Tool %q param %q has an empty description", tool.Name, p.Name)
			}
		}
	}
}

func TestEndpoints_SpotCheckBindings(t *testing.T) {
	registry, err := NewCatalog()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	tests := []struct {
		tool      string
		args      Args
		wantPath  string
		wantQuery map[string]string
		absent    []string
	}{
		{
			tool:      "mlb_get_all_teams",
			args:      Args{"year": 2023},
			wantPath:  "/teams",
			wantQuery: map[string]string{"sportId": "1", "season": "2023"},
			absent:    []string{"year"},
		},
		{
			tool:      "mlb_get_team_roster",
			args:      Args{"team_id": "147", "year": 2023},
			wantPath:  "/teams/147/roster",
			wantQuery: map[string]string{"season": "2023"},
		},
		{
			tool:      "mlb_get_standings",
			args:      Args{"season": 2023, "league_id": 103},
			wantPath:  "/standings",
			wantQuery: map[string]string{"season": "2023", "league_id": "103"},
		},
		{
			tool:      "mlb_get_league_leaders",
			args:      Args{"category": "homeRuns", "season": 2023},
			wantPath:  "/stats/leaders",
			wantQuery: map[string]string{"sportId": "1", "leaderCategories": "homeRuns", "season": "2023"},
			absent:    []string{"category"},
		},
		{
			tool:      "mlb_get_boxscore",
			args:      Args{"game_pk": 716463, "year": 2023, "team_id": "147", "game_date": "2023-07-01"},
			wantPath:  "/game/716463/boxscore",
			wantQuery: map[string]string{},
			absent:    []string{"year", "team_id", "game_date"},
		},
		{
			tool:      "mlb_get_season_by_id",
			args:      Args{"seasonId": "2023", "fields": "seasonId"},
			wantPath:  "/seasons/2023",
			wantQuery: map[string]string{"sportId": "1"},
			absent:    []string{"fields"},
		},
		{
			tool:      "mlb_get_highlow_players",
			args:      Args{"sortStat": "hits", "season": "2023", "sportIds": "11", "statGroup": "hitting", "limit": 5},
			wantPath:  "/highLow/player",
			wantQuery: map[string]string{"sportIds": "1", "sortStat": "hits", "statGroup": "hitting", "limit": "5"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.tool, func(t *testing.T) {
			tool, ok := registry.Lookup(tt.tool)
			if !ok {
				t.Fatalf("Tool %q not registered", tt.tool)
			}
			req, err := tool.BuildRequest(tt.args)
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if req.Path != tt.wantPath {
				t.Errorf("Expected path %q, got %q", tt.wantPath, req.Path)
			}
			for k, v := range tt.wantQuery {
				if got := req.Query.Get(k); got != v {
					t.Errorf("Expected %s=%s, got %q", k, v, got)
				}
			}
			for _, k := range tt.absent {
				if req.Query.Has(k) {
					t.Errorf("Expected %q to be absent from the query", k)
				}
			}
		})
	}
}

func TestEndpoints_PlayerStatsGroup(t *testing.T) {
	registry, err := NewCatalog()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	tool, ok := registry.Lookup("mlb_get_player_stats")
	if !ok {
		t.Fatal("mlb_get_player_stats not registered")
	}

	tests := []struct {
		position string
		want     string
	}{
		{"P", "pitching"},
		{"p", "pitching"},
		{"SS", "hitting"},
		{"DH", "hitting"},
	}

	for _, tt := range tests {
		req, err := tool.BuildRequest(Args{"player_id": "660271", "year": 2023, "position": tt.position})
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if got := req.Query.Get("group"); got != tt.want {
			t.Errorf("position %q: expected group %q, got %q", tt.position, tt.want, got)
		}
		if req.Query.Has("position") {
			t.Error("Expected position to stay off the query string")
		}
		if got := req.Query.Get("stats"); got != "season" {
			t.Errorf("Expected stats=season, got %q", got)
		}
	}
}

func TestEndpoints_SeasonsPathSwitch(t *testing.T) {
	registry, err := NewCatalog()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	tool, ok := registry.Lookup("mlb_get_seasons")
	if !ok {
		t.Fatal("mlb_get_seasons not registered")
	}

	req, err := tool.BuildRequest(Args{"all": true})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if req.Path != "/seasons/all" {
		t.Errorf("Expected /seasons/all, got %q", req.Path)
	}
	if req.Query.Has("all") {
		t.Error("Expected all to stay off the query string")
	}

	req, err = tool.BuildRequest(Args{"all": false, "season": "2023"})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if req.Path != "/seasons" {
		t.Errorf("Expected /seasons, got %q", req.Path)
	}
	if got := req.Query.Get("season"); got != "2023" {
		t.Errorf("Expected season=2023, got %q", got)
	}
}
