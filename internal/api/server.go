// Package api exposes the board over HTTP. Handlers stay thin: decode, call a
// service, map the error. Authentication is handled upstream of this service.
package api

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/jobboardly/backend/internal/entities"
	"github.com/jobboardly/backend/internal/services"
)

// NotificationStore is the slice of the notifications repository the API needs.
type NotificationStore interface {
	GetByUser(ctx context.Context, userID string) ([]entities.Notification, error)
	MarkRead(ctx context.Context, id string) error
}

type Deps struct {
	Jobs            *services.JobService
	Companies       *services.CompanyService
	Users           *services.UserService
	Applications    *services.ApplicationService
	Moderation      *services.ModerationService
	Recommendations *services.RecommendationService
	Notifications   NotificationStore
}

type Server struct {
	engine *gin.Engine
}

func NewServer(deps Deps) *Server {
	engine := gin.New()
	engine.Use(gin.Recovery())

	s := &Server{engine: engine}

	h := handlers{deps: deps}

	engine.GET("/jobs", h.listJobs)
	engine.POST("/jobs", h.postJob)
	engine.GET("/jobs/:id", h.getJob)
	engine.POST("/jobs/:id/apply", h.applyToJob)
	engine.GET("/jobs/:id/applications", h.listJobApplications)
	engine.GET("/jobs/:id/candidates", h.recommendCandidates)

	engine.PATCH("/applications/:id/status", h.updateApplicationStatus)

	engine.POST("/companies", h.registerCompany)
	engine.GET("/companies", h.listCompanies)
	engine.GET("/companies/:id", h.getCompany)
	engine.GET("/companies/:id/jobs", h.listCompanyJobs)

	engine.POST("/users", h.registerUser)
	engine.GET("/users/:id", h.getUser)
	engine.GET("/users/:id/applications", h.listUserApplications)
	engine.GET("/users/:id/recommendations", h.recommendJobs)
	engine.POST("/users/:id/saved-jobs/:jobId", h.saveJob)
	engine.DELETE("/users/:id/saved-jobs/:jobId", h.unsaveJob)
	engine.GET("/users/:id/notifications", h.listNotifications)
	engine.PATCH("/notifications/:id/read", h.markNotificationRead)

	admin := engine.Group("/admin")
	admin.PATCH("/jobs/:id/status", h.moderateJob)
	admin.PATCH("/companies/:id/status", h.moderateCompany)
	admin.PATCH("/users/:id/status", h.moderateUser)

	return s
}

func (s *Server) Run(port int) error {
	return s.engine.Run(fmt.Sprintf(":%d", port))
}
