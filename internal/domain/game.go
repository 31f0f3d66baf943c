package domain

import "time"

// Game is one historical game as stored in the games table.
type Game struct {
	ID         string    `json:"game_id"`
	Date       time.Time `json:"date"`
	HomeTeamID string    `json:"home_team_id"`
	AwayTeamID string    `json:"away_team_id"`
	Venue      string    `json:"venue,omitempty"`
	Status     string    `json:"status,omitempty"`
}

// Team is a team profile.
type Team struct {
	ID       string `json:"team_id"`
	City     string `json:"city"`
	Nickname string `json:"nickname"`
	League   string `json:"league,omitempty"`
}

// Player is a player profile.
type Player struct {
	ID        string `json:"player_id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Bats      string `json:"bats,omitempty"`
	Throws    string `json:"throws,omitempty"`
}

// LineupSlot is one batting-order entry for a game.
type LineupSlot struct {
	GameID       string `json:"game_id"`
	TeamID       string `json:"team_id"`
	PlayerID     string `json:"player_id"`
	BattingOrder int    `json:"batting_order"`
	Position     int    `json:"position"`
}

// Play is one play-by-play record. EventCode is the raw Retrosheet event
// string; the plays table never stores a parsed form.
type Play struct {
	GameID      string `json:"game_id"`
	Index       int    `json:"play_index"`
	Inning      int    `json:"inning"`
	TopOfInning bool   `json:"top_of_inning"`
	BatterID    string `json:"batter_id"`
	PitcherID   string `json:"pitcher_id"`
	EventCode   string `json:"event_code"`
}
