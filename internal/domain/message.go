package domain

// Message is a chat message. Immutable once created except for the
// Likes counter. Timestamp is informational (unix milliseconds); room
// logs keep insertion order.
type Message struct {
	ID        string `json:"id" mapstructure:"id"`
	Text      string `json:"text" mapstructure:"text"`
	User      User   `json:"user" mapstructure:"user"`
	Timestamp int64  `json:"timestamp" mapstructure:"timestamp"`
	Likes     int    `json:"likes,omitempty" mapstructure:"likes"`
}
