package domain

// NewsItem is a home-page news entry, served straight from seed data.
type NewsItem struct {
	ID          int    `json:"id" mapstructure:"id"`
	Title       string `json:"title" mapstructure:"title"`
	Description string `json:"description" mapstructure:"description"`
	Image       string `json:"image,omitempty" mapstructure:"image"`
	Date        string `json:"date" mapstructure:"date"`
}
