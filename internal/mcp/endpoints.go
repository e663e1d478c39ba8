package mcp

import "strings"

// NewCatalog builds the full tool registry. Any malformed entry is a
// startup error.
func NewCatalog() (*Registry, error) {
	r := NewRegistry()
	for _, t := range Endpoints() {
		if err := r.Register(t); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Endpoints is the static binding table: one entry per exposed tool, each
// mapping a tool name and parameter list onto an MLB Stats API endpoint.
// Conventions:
//   - Static entries are query values always sent for that endpoint (most
//     commonly sportId=1, the MLB sport identifier).
//   - QueryKey renames a parameter on the wire (e.g. year -> season).
//   - InNone params are accepted and validated for client compatibility but
//     never forwarded; a few feed a Finalize hook instead.
func Endpoints() []*Tool {
	return []*Tool{
		{
			Name:        "mlb_get_all_teams",
			Description: "Get all MLB teams for a given season.",
			Path:        "/teams",
			Static:      map[string]string{"sportId": "1"},
			Params: []Param{
				{Name: "year", Type: TypeInt, Description: "The season year to fetch teams for (e.g. 2023).", Required: true, In: InQuery, QueryKey: "season"},
			},
		},
		{
			Name:        "mlb_get_team_roster",
			Description: "Get the roster for a given MLB team and season.",
			Path:        "/teams/{team_id}/roster",
			Params: []Param{
				{Name: "team_id", Type: TypeString, Description: "The MLB team ID (e.g. 147 for the Yankees).", Required: true, In: InPath},
				{Name: "year", Type: TypeInt, Description: "The season year to fetch the roster for.", Required: true, In: InQuery, QueryKey: "season"},
			},
		},
		{
			Name:        "mlb_get_player_stats",
			Description: "Get season stats for a given player. Pitchers get pitching stats, everyone else hitting stats.",
			Path:        "/people/{player_id}/stats",
			Static:      map[string]string{"stats": "season"},
			Params: []Param{
				{Name: "player_id", Type: TypeString, Description: "The MLB player ID (e.g. 660271 for Shohei Ohtani).", Required: true, In: InPath},
				{Name: "year", Type: TypeInt, Description: "The season year to fetch stats for.", Required: true, In: InQuery, QueryKey: "season"},
				{Name: "position", Type: TypeString, Description: "The player's position abbreviation; P selects pitching stats.", Required: true, In: InNone},
			},
			Finalize: func(args Args, req *Request) error {
				group := "hitting"
				if strings.EqualFold(args.String("position"), "P") {
					group = "pitching"
				}
				req.Query.Set("group", group)
				return nil
			},
		},
		{
			Name:        "mlb_get_schedule_by_date",
			Description: "Get the MLB game schedule for a specific date.",
			Path:        "/schedule",
			Static:      map[string]string{"sportId": "1"},
			Params: []Param{
				{Name: "date", Type: TypeString, Description: "The date to fetch the schedule for, formatted YYYY-MM-DD.", Required: true, In: InQuery},
			},
		},
		{
			Name:        "mlb_get_boxscore",
			Description: "Get the boxscore for a specific MLB game.",
			Path:        "/game/{game_pk}/boxscore",
			Params: []Param{
				{Name: "game_pk", Type: TypeInt, Description: "The unique game identifier (gamePk).", Required: true, In: InPath},
				{Name: "year", Type: TypeInt, Description: "The season year the game was played in.", Required: true, In: InNone},
				{Name: "team_id", Type: TypeString, Description: "The MLB team ID of a participating team.", Required: true, In: InNone},
				{Name: "game_date", Type: TypeString, Description: "The date the game was played, formatted YYYY-MM-DD.", Required: true, In: InNone},
			},
		},
		{
			Name:        "mlb_get_standings",
			Description: "Get the league standings for a given season.",
			Path:        "/standings",
			Params: []Param{
				{Name: "season", Type: TypeInt, Description: "The season year to fetch standings for.", Required: true, In: InQuery},
				{Name: "league_id", Type: TypeInt, Description: "The league ID (103 for the American League, 104 for the National League).", Required: true, In: InQuery},
			},
		},
		{
			Name:        "mlb_get_player_bio",
			Description: "Get biographical information for a given player.",
			Path:        "/people/{player_id}",
			Params: []Param{
				{Name: "player_id", Type: TypeString, Description: "The MLB player ID.", Required: true, In: InPath},
			},
		},
		{
			Name:        "mlb_get_team_schedule",
			Description: "Get the full season schedule for a given team.",
			Path:        "/schedule",
			Static:      map[string]string{"sportId": "1"},
			Params: []Param{
				{Name: "team_id", Type: TypeString, Description: "The MLB team ID.", Required: true, In: InQuery, QueryKey: "teamId"},
				{Name: "season", Type: TypeInt, Description: "The season year to fetch the schedule for.", Required: true, In: InQuery},
			},
		},
		{
			Name:        "mlb_get_game_content",
			Description: "Get editorial and media content for a specific game, including highlights.",
			Path:        "/game/{game_pk}/content",
			Params: []Param{
				{Name: "game_pk", Type: TypeInt, Description: "The unique game identifier (gamePk).", Required: true, In: InPath},
			},
		},
		{
			Name:        "mlb_get_league_leaders",
			Description: "Get league leaders for a given stat category and season.",
			Path:        "/stats/leaders",
			Static:      map[string]string{"sportId": "1"},
			Params: []Param{
				{Name: "category", Type: TypeString, Description: "The stat category to rank by (e.g. homeRuns, strikeouts).", Required: true, In: InQuery, QueryKey: "leaderCategories"},
				{Name: "season", Type: TypeInt, Description: "The season year to fetch leaders for.", Required: true, In: InQuery},
			},
		},
		{
			Name:        "mlb_get_awards",
			Description: "Get MLB awards for a given season.",
			Path:        "/awards",
			Params: []Param{
				{Name: "season", Type: TypeInt, Description: "The season year to fetch awards for.", Required: true, In: InQuery},
			},
		},
		{
			Name:        "mlb_get_venues",
			Description: "Get MLB venues for a given season.",
			Path:        "/venues",
			Params: []Param{
				{Name: "season", Type: TypeInt, Description: "The season year to fetch venues for.", Required: true, In: InQuery},
			},
		},
		{
			Name:        "mlb_get_attendance",
			Description: "Get attendance figures, optionally filtered by season, team or date.",
			Path:        "/attendance",
			Static:      map[string]string{"leagueListId": "mlb"},
			Params: []Param{
				{Name: "season", Type: TypeInt, Description: "Filter attendance by season year.", In: InQuery},
				{Name: "teamId", Type: TypeInt, Description: "Filter attendance by MLB team ID.", In: InQuery},
				{Name: "date", Type: TypeString, Description: "Filter attendance by date, formatted YYYY-MM-DD.", In: InQuery},
			},
		},
		{
			Name:        "mlb_get_award_winners",
			Description: "Get the recipients of a specific award for a given season.",
			Path:        "/awards/{award_id}/recipients",
			Static:      map[string]string{"sportId": "1"},
			Params: []Param{
				{Name: "award_id", Type: TypeString, Description: "The award identifier (e.g. MLBMVP).", Required: true, In: InPath},
				{Name: "season", Type: TypeInt, Description: "The season year the award was given for.", Required: true, In: InQuery},
			},
		},
		{
			Name:        "mlb_get_divisions",
			Description: "Get MLB divisions, optionally for a specific season.",
			Path:        "/divisions",
			Static:      map[string]string{"sportId": "1"},
			Params: []Param{
				{Name: "season", Type: TypeInt, Description: "The season year to fetch divisions for.", In: InQuery},
			},
		},
		{
			Name:        "mlb_get_draft",
			Description: "Get draft results for a given year, with optional filters on round, player and team.",
			Path:        "/draft/{year}",
			Params: []Param{
				{Name: "year", Type: TypeInt, Description: "The draft year to fetch (e.g. 2023).", Required: true, In: InPath},
				{Name: "round", Type: TypeInt, Description: "Filter picks by draft round.", In: InQuery},
				{Name: "name", Type: TypeString, Description: "Filter picks by player name.", In: InQuery},
				{Name: "school", Type: TypeString, Description: "Filter picks by school name.", In: InQuery},
				{Name: "state", Type: TypeString, Description: "Filter picks by the school's state.", In: InQuery},
				{Name: "country", Type: TypeString, Description: "Filter picks by the player's country.", In: InQuery},
				{Name: "position", Type: TypeString, Description: "Filter picks by position abbreviation.", In: InQuery},
				{Name: "teamId", Type: TypeInt, Description: "Filter picks by drafting team ID.", In: InQuery},
				{Name: "playerId", Type: TypeInt, Description: "Filter picks by MLB player ID.", In: InQuery},
				{Name: "bisPlayerId", Type: TypeInt, Description: "Filter picks by BIS player ID.", In: InQuery},
				{Name: "latest", Type: TypeBool, Description: "Return only the latest draft picks.", Default: false, In: InQuery},
				{Name: "prospects", Type: TypeBool, Description: "Return draft prospects instead of completed picks.", Default: false, In: InQuery},
			},
		},
		{
			Name:        "mlb_get_game_changes",
			Description: "Get games whose data changed since a given timestamp.",
			Path:        "/game/changes",
			Params: []Param{
				{Name: "updatedSince", Type: TypeString, Description: "Return games updated since this timestamp (e.g. 2023-07-01T00:00:00Z).", Required: true, In: InQuery},
				{Name: "sportId", Type: TypeInt, Description: "The sport ID (1 for MLB).", Default: 1, In: InQuery},
				{Name: "gameType", Type: TypeString, Description: "Filter by game type code (e.g. R for regular season).", In: InQuery},
				{Name: "season", Type: TypeInt, Description: "Filter by season year.", In: InQuery},
				{Name: "fields", Type: TypeString, Description: "Comma-separated list of response fields to include.", In: InQuery},
			},
		},
		{
			Name:        "mlb_get_game_context_metrics",
			Description: "Get context metrics for a specific game, such as win probability.",
			Path:        "/game/{gamePk}/contextMetrics",
			Params: []Param{
				{Name: "gamePk", Type: TypeInt, Description: "The unique game identifier.", Required: true, In: InPath},
				{Name: "timecode", Type: TypeString, Description: "Fetch the metrics as of this timecode.", In: InQuery},
			},
		},
		{
			Name:        "mlb_get_game_linescore",
			Description: "Get the linescore for a specific game.",
			Path:        "/game/{gamePk}/linescore",
			Params: []Param{
				{Name: "gamePk", Type: TypeString, Description: "The unique game identifier.", Required: true, In: InPath},
				{Name: "timecode", Type: TypeString, Description: "Fetch the linescore as of this timecode.", In: InQuery},
			},
		},
		{
			Name:        "mlb_get_game_uniforms",
			Description: "Get the uniforms worn in specific games.",
			Path:        "/uniforms/game",
			Params: []Param{
				{Name: "gamePks", Type: TypeString, Description: "Comma-separated list of game identifiers.", Required: true, In: InQuery},
				{Name: "fields", Type: TypeString, Description: "Comma-separated list of response fields to include.", In: InQuery},
			},
		},
		{
			Name:        "mlb_get_game_pace",
			Description: "Get pace-of-game metrics for a given season.",
			Path:        "/gamePace",
			Static:      map[string]string{"sportId": "1"},
			Params: []Param{
				{Name: "season", Type: TypeString, Description: "The season year to fetch pace metrics for.", Required: true, In: InQuery},
				{Name: "teamIds", Type: TypeString, Description: "Comma-separated list of team IDs to filter by.", In: InQuery},
				{Name: "leagueIds", Type: TypeString, Description: "Comma-separated list of league IDs to filter by.", In: InQuery},
				{Name: "leagueListId", Type: TypeString, Description: "A league list identifier to filter by.", In: InQuery},
				{Name: "gameType", Type: TypeString, Description: "Filter by game type code.", In: InQuery},
				{Name: "startDate", Type: TypeString, Description: "Start of the date range, formatted YYYY-MM-DD.", In: InQuery},
				{Name: "endDate", Type: TypeString, Description: "End of the date range, formatted YYYY-MM-DD.", In: InQuery},
				{Name: "venueIds", Type: TypeString, Description: "Comma-separated list of venue IDs to filter by.", In: InQuery},
				{Name: "orgType", Type: TypeString, Description: "Organization type to aggregate by (e.g. T for team, L for league).", In: InQuery},
				{Name: "includeChildren", Type: TypeBool, Description: "Include child organizations in the aggregation.", In: InQuery},
				{Name: "fields", Type: TypeString, Description: "Comma-separated list of response fields to include.", In: InQuery},
			},
		},
		{
			Name:        "mlb_get_highlow_players",
			Description: "Get player game highs and lows for a given stat.",
			Path:        "/highLow/player",
			Static:      map[string]string{"sportIds": "1"},
			Params:      highLowParams(),
		},
		{
			Name:        "mlb_get_highlow_teams",
			Description: "Get team game highs and lows for a given stat.",
			Path:        "/highLow/team",
			Static:      map[string]string{"sportIds": "1"},
			Params:      highLowParams(),
		},
		{
			Name:        "mlb_get_all_star_ballot",
			Description: "Get the All-Star ballot for a given league and season.",
			Path:        "/league/{leagueId}/allStarBallot",
			Params:      allStarParams(),
		},
		{
			Name:        "mlb_get_all_star_write_ins",
			Description: "Get All-Star write-in candidates for a given league and season.",
			Path:        "/league/{leagueId}/allStarWriteIns",
			Params:      allStarParams(),
		},
		{
			Name:        "mlb_get_all_star_final_vote",
			Description: "Get All-Star final vote candidates for a given league and season.",
			Path:        "/league/{leagueId}/allStarFinalVote",
			Params:      allStarParams(),
		},
		{
			Name:        "mlb_get_people_free_agents",
			Description: "Get free agents for a given league and season.",
			Path:        "/people/freeAgents",
			Params: []Param{
				{Name: "leagueId", Type: TypeString, Description: "The league ID to fetch free agents for.", Required: true, In: InQuery},
				{Name: "season", Type: TypeString, Description: "The season year to fetch free agents for.", Required: true, In: InQuery},
				{Name: "order", Type: TypeString, Description: "Sort order for the results.", In: InQuery},
				{Name: "hydrate", Type: TypeString, Description: "Additional data to hydrate into the response.", In: InQuery},
				{Name: "fields", Type: TypeString, Description: "Comma-separated list of response fields to include.", In: InQuery},
			},
		},
		{
			Name:        "mlb_get_jobs_umpires",
			Description: "Get umpires, optionally for a specific date.",
			Path:        "/jobs/umpires",
			Params:      jobsParams(),
		},
		{
			Name:        "mlb_get_jobs_datacasters",
			Description: "Get datacasters, optionally for a specific date.",
			Path:        "/jobs/datacasters",
			Params:      jobsParams(),
		},
		{
			Name:        "mlb_get_jobs_official_scorers",
			Description: "Get official scorers.",
			Path:        "/jobs/officialScorers",
			Params: []Param{
				{Name: "timecode", Type: TypeString, Description: "Fetch the list as of this timecode.", In: InQuery},
				{Name: "fields", Type: TypeString, Description: "Comma-separated list of response fields to include.", In: InQuery},
			},
		},
		{
			Name:        "mlb_get_schedule_tied_games",
			Description: "Get tied games for a given season.",
			Path:        "/schedule/games/tied",
			Params: []Param{
				{Name: "season", Type: TypeString, Description: "The season year to fetch tied games for.", Required: true, In: InQuery},
				{Name: "gameTypes", Type: TypeString, Description: "Comma-separated list of game type codes to filter by.", In: InQuery},
				{Name: "hydrate", Type: TypeString, Description: "Additional data to hydrate into the response.", In: InQuery},
				{Name: "fields", Type: TypeString, Description: "Comma-separated list of response fields to include.", In: InQuery},
			},
		},
		{
			Name:        "mlb_get_schedule_postseason",
			Description: "Get the postseason schedule, with optional filters.",
			Path:        "/schedule/postseason",
			Params: []Param{
				{Name: "gameTypes", Type: TypeString, Description: "Comma-separated list of game type codes to filter by.", In: InQuery},
				{Name: "seriesNumber", Type: TypeString, Description: "Filter by series number.", In: InQuery},
				{Name: "teamId", Type: TypeInt, Description: "Filter by MLB team ID.", In: InQuery},
				{Name: "sportId", Type: TypeInt, Description: "The sport ID (1 for MLB).", In: InQuery},
				{Name: "season", Type: TypeString, Description: "The season year to fetch the postseason schedule for.", In: InQuery},
				{Name: "hydrate", Type: TypeString, Description: "Additional data to hydrate into the response.", In: InQuery},
				{Name: "fields", Type: TypeString, Description: "Comma-separated list of response fields to include.", In: InQuery},
			},
		},
		{
			Name:        "mlb_get_schedule_postseason_series",
			Description: "Get postseason series, with optional filters.",
			Path:        "/schedule/postseason/series",
			Params: []Param{
				{Name: "gameTypes", Type: TypeString, Description: "Comma-separated list of game type codes to filter by.", In: InQuery},
				{Name: "seriesNumber", Type: TypeString, Description: "Filter by series number.", In: InQuery},
				{Name: "teamId", Type: TypeInt, Description: "Filter by MLB team ID.", In: InQuery},
				{Name: "sportId", Type: TypeInt, Description: "The sport ID (1 for MLB).", In: InQuery},
				{Name: "season", Type: TypeString, Description: "The season year to fetch postseason series for.", In: InQuery},
				{Name: "fields", Type: TypeString, Description: "Comma-separated list of response fields to include.", In: InQuery},
			},
		},
		{
			Name:        "mlb_get_seasons",
			Description: "Get season date information; pass all to list every season.",
			Path:        "/seasons",
			Params: []Param{
				{Name: "season", Type: TypeString, Description: "The season year to fetch (e.g. 2023).", In: InQuery},
				{Name: "all", Type: TypeBool, Description: "Fetch every season on record instead of a single one.", Default: false, In: InNone},
				{Name: "leagueId", Type: TypeInt, Description: "Filter by league ID.", In: InQuery},
				{Name: "divisionId", Type: TypeInt, Description: "Filter by division ID.", In: InQuery},
				{Name: "fields", Type: TypeString, Description: "Comma-separated list of response fields to include.", In: InQuery},
			},
			Finalize: func(args Args, req *Request) error {
				if args.Bool("all") {
					req.Path = "/seasons/all"
				}
				return nil
			},
		},
		{
			Name:        "mlb_get_season_by_id",
			Description: "Get date information for a specific season.",
			Path:        "/seasons/{seasonId}",
			Static:      map[string]string{"sportId": "1"},
			Params: []Param{
				{Name: "seasonId", Type: TypeString, Description: "The season year to fetch (e.g. 2023).", Required: true, In: InPath},
				{Name: "fields", Type: TypeString, Description: "Comma-separated list of response fields to include.", In: InNone},
			},
		},
		{
			Name:        "mlb_get_stats",
			Description: "Get stats with full control over stat type, group and filters.",
			Path:        "/stats",
			Params: []Param{
				{Name: "stats", Type: TypeString, Description: "The stat type to fetch (e.g. season, career, gameLog).", Required: true, In: InQuery},
				{Name: "group", Type: TypeString, Description: "The stat group (hitting, pitching or fielding).", Required: true, In: InQuery},
				{Name: "playerPool", Type: TypeString, Description: "The player pool to draw from (e.g. all, qualified, rookies).", In: InQuery},
				{Name: "position", Type: TypeString, Description: "Filter by position abbreviation.", In: InQuery},
				{Name: "teamId", Type: TypeInt, Description: "Filter by MLB team ID.", In: InQuery},
				{Name: "leagueId", Type: TypeInt, Description: "Filter by league ID.", In: InQuery},
				{Name: "sportIds", Type: TypeString, Description: "Comma-separated list of sport IDs (1 for MLB).", Default: "1", In: InQuery},
				{Name: "gameType", Type: TypeString, Description: "Filter by game type code.", In: InQuery},
				{Name: "season", Type: TypeString, Description: "The season year to fetch stats for.", In: InQuery},
				{Name: "sortStat", Type: TypeString, Description: "The stat to sort results by.", In: InQuery},
				{Name: "order", Type: TypeString, Description: "Sort order (asc or desc).", In: InQuery},
				{Name: "limit", Type: TypeInt, Description: "Maximum number of results to return.", Default: 50, In: InQuery},
				{Name: "offset", Type: TypeInt, Description: "Number of results to skip.", Default: 0, In: InQuery},
				{Name: "hydrate", Type: TypeString, Description: "Additional data to hydrate into the response.", In: InQuery},
				{Name: "fields", Type: TypeString, Description: "Comma-separated list of response fields to include.", In: InQuery},
				{Name: "personId", Type: TypeString, Description: "Filter by MLB player ID.", In: InQuery},
				{Name: "metrics", Type: TypeString, Description: "Comma-separated list of metrics to include.", In: InQuery},
				{Name: "startDate", Type: TypeString, Description: "Start of the date range, formatted YYYY-MM-DD.", In: InQuery},
				{Name: "endDate", Type: TypeString, Description: "End of the date range, formatted YYYY-MM-DD.", In: InQuery},
			},
		},
		{
			Name:        "mlb_get_team_history",
			Description: "Get historical records for given teams.",
			Path:        "/teams/history",
			Params: []Param{
				{Name: "teamIds", Type: TypeString, Description: "Comma-separated list of MLB team IDs.", Required: true, In: InQuery},
				{Name: "startSeason", Type: TypeString, Description: "First season year of the range.", In: InQuery},
				{Name: "endSeason", Type: TypeString, Description: "Last season year of the range.", In: InQuery},
				{Name: "fields", Type: TypeString, Description: "Comma-separated list of response fields to include.", In: InQuery},
			},
		},
		{
			Name:        "mlb_get_team_stats",
			Description: "Get team stats for a given season, group and stat type.",
			Path:        "/teams/stats",
			Static:      map[string]string{"sportIds": "1"},
			Params: []Param{
				{Name: "season", Type: TypeString, Description: "The season year to fetch stats for.", Required: true, In: InQuery},
				{Name: "group", Type: TypeString, Description: "The stat group (hitting, pitching or fielding).", Required: true, In: InQuery},
				{Name: "stats", Type: TypeString, Description: "The stat type to fetch (e.g. season).", Required: true, In: InQuery},
				{Name: "gameType", Type: TypeString, Description: "Filter by game type code.", In: InQuery},
				{Name: "order", Type: TypeString, Description: "Sort order (asc or desc).", In: InQuery},
				{Name: "sortStat", Type: TypeString, Description: "The stat to sort results by.", In: InQuery},
				{Name: "fields", Type: TypeString, Description: "Comma-separated list of response fields to include.", In: InQuery},
				{Name: "startDate", Type: TypeString, Description: "Start of the date range, formatted YYYY-MM-DD.", In: InQuery},
				{Name: "endDate", Type: TypeString, Description: "End of the date range, formatted YYYY-MM-DD.", In: InQuery},
			},
		},
		{
			Name:        "mlb_get_team_affiliates",
			Description: "Get minor league affiliates for given teams.",
			Path:        "/teams/affiliates",
			Static:      map[string]string{"sportId": "1"},
			Params: []Param{
				{Name: "teamIds", Type: TypeString, Description: "Comma-separated list of MLB team IDs.", Required: true, In: InQuery},
				{Name: "season", Type: TypeString, Description: "The season year to fetch affiliates for.", In: InQuery},
				{Name: "hydrate", Type: TypeString, Description: "Additional data to hydrate into the response.", In: InQuery},
				{Name: "fields", Type: TypeString, Description: "Comma-separated list of response fields to include.", In: InQuery},
			},
		},
		{
			Name:        "mlb_get_team_alumni",
			Description: "Get alumni for a given team, season and stat group.",
			Path:        "/teams/{teamId}/alumni",
			Params: []Param{
				{Name: "teamId", Type: TypeString, Description: "The MLB team ID.", Required: true, In: InPath},
				{Name: "season", Type: TypeString, Description: "The season year to fetch alumni for.", Required: true, In: InQuery},
				{Name: "group", Type: TypeString, Description: "The stat group (hitting, pitching or fielding).", Required: true, In: InQuery},
				{Name: "hydrate", Type: TypeString, Description: "Additional data to hydrate into the response.", In: InQuery},
				{Name: "fields", Type: TypeString, Description: "Comma-separated list of response fields to include.", In: InQuery},
			},
		},
		{
			Name:        "mlb_get_team_coaches",
			Description: "Get the coaching staff for a given team.",
			Path:        "/teams/{teamId}/coaches",
			Params:      teamStaffParams(),
		},
		{
			Name:        "mlb_get_team_personnel",
			Description: "Get non-coaching personnel for a given team.",
			Path:        "/teams/{teamId}/personnel",
			Params:      teamStaffParams(),
		},
		{
			Name:        "mlb_get_team_leaders",
			Description: "Get stat leaders for a given team and season.",
			Path:        "/teams/{teamId}/leaders",
			Params: []Param{
				{Name: "teamId", Type: TypeString, Description: "The MLB team ID.", Required: true, In: InPath},
				{Name: "leaderCategories", Type: TypeString, Description: "Comma-separated list of stat categories to rank by.", Required: true, In: InQuery},
				{Name: "season", Type: TypeString, Description: "The season year to fetch leaders for.", Required: true, In: InQuery},
				{Name: "leaderGameTypes", Type: TypeString, Description: "Comma-separated list of game type codes to rank within.", In: InQuery},
				{Name: "hydrate", Type: TypeString, Description: "Additional data to hydrate into the response.", In: InQuery},
				{Name: "limit", Type: TypeInt, Description: "Maximum number of leaders per category.", In: InQuery},
				{Name: "fields", Type: TypeString, Description: "Comma-separated list of response fields to include.", In: InQuery},
			},
		},
		{
			Name:        "mlb_get_team_stats_by_id",
			Description: "Get stats for a specific team, season and stat group.",
			Path:        "/teams/{teamId}/stats",
			Static:      map[string]string{"sportIds": "1"},
			Params: []Param{
				{Name: "teamId", Type: TypeString, Description: "The MLB team ID.", Required: true, In: InPath},
				{Name: "season", Type: TypeString, Description: "The season year to fetch stats for.", Required: true, In: InQuery},
				{Name: "group", Type: TypeString, Description: "The stat group (hitting, pitching or fielding).", Required: true, In: InQuery},
				{Name: "stats", Type: TypeString, Description: "The stat type to fetch (e.g. season).", In: InQuery},
				{Name: "gameType", Type: TypeString, Description: "Filter by game type code.", In: InQuery},
				{Name: "sportIds", Type: TypeString, Description: "Comma-separated list of sport IDs (1 for MLB).", Default: "1", In: InNone},
				{Name: "sitCodes", Type: TypeString, Description: "Comma-separated list of situation codes to split by.", In: InQuery},
				{Name: "fields", Type: TypeString, Description: "Comma-separated list of response fields to include.", In: InQuery},
			},
		},
		{
			Name:        "mlb_get_team_uniforms",
			Description: "Get the uniforms for given teams.",
			Path:        "/uniforms/team",
			Params: []Param{
				{Name: "teamIds", Type: TypeString, Description: "Comma-separated list of MLB team IDs.", Required: true, In: InQuery},
				{Name: "season", Type: TypeString, Description: "The season year to fetch uniforms for.", In: InQuery},
				{Name: "fields", Type: TypeString, Description: "Comma-separated list of response fields to include.", In: InQuery},
			},
		},
		{
			Name:        "mlb_get_transactions",
			Description: "Get transactions, optionally filtered by team, player or date range.",
			Path:        "/transactions",
			Static:      map[string]string{"sportId": "1"},
			Params: []Param{
				{Name: "teamId", Type: TypeString, Description: "Filter transactions by MLB team ID.", In: InQuery},
				{Name: "playerId", Type: TypeString, Description: "Filter transactions by MLB player ID.", In: InQuery},
				{Name: "date", Type: TypeString, Description: "Filter transactions by date, formatted YYYY-MM-DD.", In: InQuery},
				{Name: "startDate", Type: TypeString, Description: "Start of the date range, formatted YYYY-MM-DD.", In: InQuery},
				{Name: "endDate", Type: TypeString, Description: "End of the date range, formatted YYYY-MM-DD.", In: InQuery},
				{Name: "fields", Type: TypeString, Description: "Comma-separated list of response fields to include.", In: InQuery},
			},
		},
	}
}

// highLowParams is the shared parameter list for the highLow player and team
// endpoints. sportIds is accepted for compatibility but the static value
// always wins.
func highLowParams() []Param {
	return []Param{
		{Name: "sortStat", Type: TypeString, Description: "The stat to rank highs and lows by.", Required: true, In: InQuery},
		{Name: "season", Type: TypeString, Description: "The season year to fetch highs and lows for.", Required: true, In: InQuery},
		{Name: "statGroup", Type: TypeString, Description: "The stat group (hitting, pitching or fielding).", Default: "hitting", In: InQuery},
		{Name: "gameType", Type: TypeString, Description: "Filter by game type code.", In: InQuery},
		{Name: "leagueId", Type: TypeInt, Description: "Filter by league ID.", In: InQuery},
		{Name: "sportIds", Type: TypeString, Description: "Comma-separated list of sport IDs (1 for MLB).", Default: "1", In: InNone},
		{Name: "teamId", Type: TypeInt, Description: "Filter by MLB team ID.", In: InQuery},
		{Name: "limit", Type: TypeInt, Description: "Maximum number of results to return.", Default: 5, In: InQuery},
	}
}

// allStarParams is the shared parameter list for the All-Star ballot,
// write-in and final-vote endpoints.
func allStarParams() []Param {
	return []Param{
		{Name: "leagueId", Type: TypeString, Description: "The league ID (103 for the American League, 104 for the National League).", Required: true, In: InPath},
		{Name: "season", Type: TypeString, Description: "The season year to fetch All-Star voting data for.", Required: true, In: InQuery},
	}
}

// jobsParams is the shared parameter list for the umpire and datacaster
// job endpoints.
func jobsParams() []Param {
	return []Param{
		{Name: "sportId", Type: TypeString, Description: "The sport ID (1 for MLB).", Default: "1", In: InQuery},
		{Name: "date", Type: TypeString, Description: "Fetch assignments for this date, formatted YYYY-MM-DD.", In: InQuery},
		{Name: "fields", Type: TypeString, Description: "Comma-separated list of response fields to include.", In: InQuery},
	}
}

// teamStaffParams is the shared parameter list for the team coaches and
// personnel endpoints.
func teamStaffParams() []Param {
	return []Param{
		{Name: "teamId", Type: TypeString, Description: "The MLB team ID.", Required: true, In: InPath},
		{Name: "season", Type: TypeString, Description: "The season year to fetch staff for.", In: InQuery},
		{Name: "date", Type: TypeString, Description: "Fetch the staff as of this date, formatted YYYY-MM-DD.", In: InQuery},
		{Name: "fields", Type: TypeString, Description: "Comma-separated list of response fields to include.", In: InQuery},
	}
}
