package domain

import "time"

// PlayNarration is the stored English description for one play.
type PlayNarration struct {
	GameID      string    `json:"game_id"`
	PlayIndex   int       `json:"play_index"`
	EventCode   string    `json:"event_code"`
	Description string    `json:"description"`
	GeneratedAt time.Time `json:"generated_at"`
}

// ReplayFrame is one step of a game replay: the narrated play plus the
// running score and outs the translation engine deliberately does not track.
type ReplayFrame struct {
	GameID      string `json:"game_id"`
	PlayIndex   int    `json:"play_index"`
	Inning      int    `json:"inning"`
	TopOfInning bool   `json:"top_of_inning"`
	BatterID    string `json:"batter_id"`
	EventCode   string `json:"event_code"`
	Description string `json:"description"`
	AwayRuns    int    `json:"away_runs"`
	HomeRuns    int    `json:"home_runs"`
	Outs        int    `json:"outs"`
}

// CacheStats summarizes the narration cache for the ops endpoints.
type CacheStats struct {
	Keys int64 `json:"keys"`
}
