package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	CreateSession(c *ginext.Context)
	GetSession(c *ginext.Context)
	ListSessions(c *ginext.Context)
	PublishSession(c *ginext.Context)
	CancelSession(c *ginext.Context)
	GetTimeline(c *ginext.Context)
	GetSnapshot(c *ginext.Context)
	GetSessionMetrics(c *ginext.Context)
	GetWorkspaceMetrics(c *ginext.Context)
	RegisterSignup(c *ginext.Context)
	UpdateSignup(c *ginext.Context)
	CreateParticipant(c *ginext.Context)
	ListParticipants(c *ginext.Context)
	GetParticipantSignups(c *ginext.Context)
}

func InitRouter(mode string, h Handler, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		// Sessions
		api.POST("/sessions", h.CreateSession)
		api.GET("/sessions", h.ListSessions)
		api.GET("/sessions/:id", h.GetSession)
		api.POST("/sessions/:id/publish", h.PublishSession)
		api.POST("/sessions/:id/cancel", h.CancelSession)
		api.GET("/sessions/:id/timeline", h.GetTimeline)
		api.GET("/sessions/:id/snapshot", h.GetSnapshot)
		api.GET("/sessions/:id/metrics", h.GetSessionMetrics)

		// Signups
		api.POST("/sessions/:id/signups", h.RegisterSignup)
		api.PATCH("/signups/:id", h.UpdateSignup)

		// Participants
		api.POST("/participants", h.CreateParticipant)
		api.GET("/participants", h.ListParticipants)
		api.GET("/participants/:id/signups", h.GetParticipantSignups)

		// Workspaces
		api.GET("/workspaces/:id/metrics", h.GetWorkspaceMetrics)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
