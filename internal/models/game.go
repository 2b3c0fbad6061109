package models

// GameReference identifies a Lichess game resolved from a user-supplied URL.
type GameReference struct {
	GameID string `json:"game_id"`
}

// GameSummary is everything rendered for one submission.
type GameSummary struct {
	GameID  string       `json:"game_id"`
	White   string       `json:"white,omitempty"`
	Black   string       `json:"black,omitempty"`
	Result  string       `json:"result,omitempty"`
	Event   string       `json:"event,omitempty"`
	Date    string       `json:"date,omitempty"`
	ECOCode string       `json:"eco_code,omitempty"`
	Opening string       `json:"opening,omitempty"`
	Moves   []MoveRecord `json:"moves"`
}
