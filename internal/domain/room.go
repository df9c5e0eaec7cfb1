package domain

// Well-known room keys. Per-game rooms use the game channel id as key.
const (
	RoomGeneral = "general"
	RoomMatch   = "match"
	RoomTactics = "tactics"
)

// Room is the metadata of an independently addressable chat channel.
// The message log itself lives in the room store.
type Room struct {
	Key  string `json:"key" mapstructure:"key"`
	Name string `json:"name" mapstructure:"name"`
	Icon string `json:"icon,omitempty" mapstructure:"icon"`
}
