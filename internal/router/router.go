package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	CreateEvent(c *ginext.Context)
	GetEvent(c *ginext.Context)
	ListEvents(c *ginext.Context)
	ReconcileOccurrences(c *ginext.Context)
	Register(c *ginext.Context)
	PatchStatus(c *ginext.Context)
	SearchRegistrations(c *ginext.Context)
	CheckIn(c *ginext.Context)
	GetBadge(c *ginext.Context)
}

func InitRouter(mode string, h Handler, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		// Events and schedules
		api.POST("/events", h.CreateEvent)
		api.GET("/events", h.ListEvents)
		api.GET("/events/:id", h.GetEvent)
		api.PUT("/events/:id/occurrences", h.ReconcileOccurrences)

		// Registrations
		api.POST("/events/:id/registrations", h.Register)
		api.GET("/registrations", h.SearchRegistrations)
		api.PATCH("/registrations/:id/status", h.PatchStatus)

		// Operations desk
		api.POST("/checkin", h.CheckIn)
		api.GET("/passes/:passID/badge", h.GetBadge)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
