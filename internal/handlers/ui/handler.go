package ui

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Nazarious-ucu/weatherbot-agent/internal/controller"
	"github.com/Nazarious-ucu/weatherbot-agent/internal/models"
)

const CookieName = "weatherbot_session"

type sessionRepository interface {
	Load(ctx context.Context, id string) (models.Session, error)
	Save(ctx context.Context, id string, s models.Session) error
}

type stateMachine interface {
	Handle(ctx context.Context, state models.Session, ev controller.Event) models.Session
}

type searchRecorder interface {
	ObserveSearch()
}

type Handler struct {
	sessions sessionRepository
	ctrl     stateMachine
	recorder searchRecorder
	logger   *zap.Logger
}

func NewHandler(sessions sessionRepository, ctrl stateMachine, recorder searchRecorder, logger *zap.Logger) *Handler {
	return &Handler{sessions: sessions, ctrl: ctrl, recorder: recorder, logger: logger}
}

type pageView struct {
	Query         string
	WeatherReport string
	ClearFlag     bool
}

func (h *Handler) Index(c *gin.Context) {
	id := h.sessionID(c)
	state := h.load(c, id)

	c.HTML(http.StatusOK, indexTemplate, pageView{
		Query:         controller.InputValue(state),
		WeatherReport: state.WeatherReport,
		ClearFlag:     state.ClearFlag,
	})
}

func (h *Handler) Search(c *gin.Context) {
	if h.recorder != nil {
		h.recorder.ObserveSearch()
	}
	h.dispatch(c, controller.Search{Input: c.PostForm("query")})
}

func (h *Handler) Clear(c *gin.Context) {
	h.dispatch(c, controller.Clear{})
}

func (h *Handler) dispatch(c *gin.Context, ev controller.Event) {
	ctx := c.Request.Context()
	id := h.sessionID(c)
	next := h.ctrl.Handle(ctx, h.load(c, id), ev)

	if err := h.sessions.Save(ctx, id, next); err != nil {
		h.logger.Error("failed to save session", zap.String("session", id), zap.Error(err))
		c.String(http.StatusInternalServerError, "session store unavailable")
		return
	}

	c.Redirect(http.StatusSeeOther, "/")
}

func (h *Handler) load(c *gin.Context, id string) models.Session {
	state, err := h.sessions.Load(c.Request.Context(), id)
	if err != nil {
		h.logger.Warn("failed to load session, starting empty", zap.String("session", id), zap.Error(err))
		return models.Session{}
	}
	return state
}

// sessionID returns the caller's session id, issuing a new cookie when absent or invalid.
func (h *Handler) sessionID(c *gin.Context) string {
	if v, err := c.Cookie(CookieName); err == nil {
		if _, err := uuid.Parse(v); err == nil {
			return v
		}
	}

	id := uuid.NewString()
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(CookieName, id, 0, "/", "", false, true)
	return id
}
