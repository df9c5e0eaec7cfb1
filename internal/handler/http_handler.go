package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/Hiago-Cavalcante/furia-fan-chat/internal/chat"
	"github.com/Hiago-Cavalcante/furia-fan-chat/internal/domain"
	"github.com/Hiago-Cavalcante/furia-fan-chat/internal/service"
	"github.com/Hiago-Cavalcante/furia-fan-chat/pkg/log"
	"github.com/Hiago-Cavalcante/furia-fan-chat/pkg/response"
)

// Handler exposes the render boundary over HTTP: snapshots the page
// pulls, plus the send/like/select callbacks.
type Handler struct {
	session service.SessionService
}

// NewHandler creates a new HTTP handler.
func NewHandler(session service.SessionService) *Handler {
	return &Handler{session: session}
}

// RegisterRoutes registers all routes.
func (h *Handler) RegisterRoutes(r *gin.Engine) {
	api := r.Group("/api/v1")
	{
		api.GET("/session", h.GetSession)
		api.GET("/home", h.GetHome)
		api.GET("/users", h.GetUsers)
		api.GET("/news", h.GetNews)

		rooms := api.Group("/rooms")
		{
			rooms.GET("", h.ListRooms)
			rooms.GET("/:key/messages", h.GetMessages)
			rooms.POST("/:key/messages", h.SendMessage)
			rooms.POST("/:key/messages/:id/like", h.LikeMessage)
		}

		session := api.Group("/session")
		{
			session.PUT("/room", h.SelectRoom)
			session.PUT("/match/:id", h.SelectMatchChannel)
		}

		matches := api.Group("/matches")
		{
			matches.GET("", h.ListMatches)
			matches.GET("/live", h.GetLive)
		}
	}
}

// GetSession returns the full render snapshot.
func (h *Handler) GetSession(c *gin.Context) {
	response.Success(c, h.session.Snapshot(c.Request.Context()))
}

// GetHome returns the landing page view.
func (h *Handler) GetHome(c *gin.Context) {
	response.Success(c, h.session.Home(c.Request.Context()))
}

// ListRooms returns the room registry.
func (h *Handler) ListRooms(c *gin.Context) {
	response.Success(c, h.session.Rooms(c.Request.Context()))
}

// GetMessages returns a room's log. Unknown keys yield an empty log.
func (h *Handler) GetMessages(c *gin.Context) {
	response.Success(c, h.session.History(c.Request.Context(), c.Param("key")))
}

// SendMessage appends a message to a room.
func (h *Handler) SendMessage(c *gin.Context) {
	ctx := c.Request.Context()
	l := log.Ctx(ctx)

	var req domain.SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		l.Warn().Err(err).Msg("failed to bind send message request")
		response.BadRequest(c, err.Error())
		return
	}

	msg, err := h.session.SendMessageTo(ctx, c.Param("key"), req.Text)
	if err != nil {
		if errors.Is(err, chat.ErrEmptyMessage) {
			// Empty input degrades to a no-op, not an error.
			response.Success(c, nil)
			return
		}
		l.Error().Err(err).Msg("failed to send message")
		response.InternalError(c, "failed to send message")
		return
	}

	response.Created(c, msg)
}

// LikeMessage increments likes on a message. Missing ids no-op.
func (h *Handler) LikeMessage(c *gin.Context) {
	h.session.LikeMessage(c.Request.Context(), c.Param("key"), c.Param("id"))
	response.Success(c, nil)
}

// SelectRoom switches the active room.
func (h *Handler) SelectRoom(c *gin.Context) {
	ctx := c.Request.Context()
	l := log.Ctx(ctx)

	var req domain.SelectRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		l.Warn().Err(err).Msg("failed to bind select room request")
		response.BadRequest(c, err.Error())
		return
	}

	h.session.SelectRoom(ctx, req.Key)
	response.Success(c, gin.H{"current_room": h.session.CurrentRoom()})
}

// SelectMatchChannel switches the session to a match's discussion room.
func (h *Handler) SelectMatchChannel(c *gin.Context) {
	ctx := c.Request.Context()

	key, err := h.session.SelectMatchChannel(ctx, c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrMatchNotFound) {
			response.NotFound(c, "match not found")
			return
		}
		l := log.Ctx(ctx)
		l.Error().Err(err).Msg("failed to select match channel")
		response.InternalError(c, "failed to select match channel")
		return
	}

	response.Success(c, gin.H{"current_room": key})
}

// ListMatches returns the match schedule.
func (h *Handler) ListMatches(c *gin.Context) {
	response.Success(c, h.session.Matches(c.Request.Context()))
}

// GetLive returns the live match with synthesized stats, or the idle
// state when nothing is live.
func (h *Handler) GetLive(c *gin.Context) {
	live := h.session.Live(c.Request.Context())
	if live == nil {
		response.Success(c, gin.H{"live": false})
		return
	}
	response.Success(c, gin.H{"live": true, "match": live.Match, "stats": live.Stats})
}

// GetUsers returns the seeded users, bot included.
func (h *Handler) GetUsers(c *gin.Context) {
	response.Success(c, h.session.Users(c.Request.Context()))
}

// GetNews returns the seeded news items.
func (h *Handler) GetNews(c *gin.Context) {
	response.Success(c, h.session.News(c.Request.Context()))
}
