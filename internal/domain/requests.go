package domain

// SendMessageRequest is the body for posting a message to a room.
type SendMessageRequest struct {
	Text string `json:"text"`
}

// SelectRoomRequest is the body for switching the active room.
type SelectRoomRequest struct {
	Key string `json:"key" binding:"required"`
}

// SessionSnapshot is what the page renders from: room list, the active
// room and its log, and the match schedule with the live view if any.
type SessionSnapshot struct {
	CurrentUser User       `json:"current_user"`
	CurrentRoom string     `json:"current_room"`
	Rooms       []Room     `json:"rooms"`
	Messages    []Message  `json:"messages"`
	Matches     []Match    `json:"matches"`
	Live        *LiveMatch `json:"live,omitempty"`
}

// HomeView backs the landing page: live banner, upcoming matches, news.
type HomeView struct {
	Live     *LiveMatch `json:"live,omitempty"`
	Upcoming []Match    `json:"upcoming"`
	News     []NewsItem `json:"news"`
}
