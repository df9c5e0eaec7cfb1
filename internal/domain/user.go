package domain

// User identifies a message author. Avatar is optional.
type User struct {
	ID     string `json:"id" mapstructure:"id"`
	Name   string `json:"name" mapstructure:"name"`
	Avatar string `json:"avatar,omitempty" mapstructure:"avatar"`
}
