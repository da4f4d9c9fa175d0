package entity

type Player struct {
	Name string `json:"name"`
	Mark Mark   `json:"mark"`
	Bot  bool   `json:"bot,omitempty"`
}

func (that *Player) IsBot() bool {
	return that.Bot
}
