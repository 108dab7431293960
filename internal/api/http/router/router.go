package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dtroode/volunteer-server/internal/api/http/handler"
	"github.com/dtroode/volunteer-server/internal/api/http/middleware"
	"github.com/dtroode/volunteer-server/internal/logger"
	"github.com/dtroode/volunteer-server/internal/metrics"
)

// Services are the application services the HTTP API is served from.
type Services struct {
	Auth         handler.AuthService
	Guard        handler.Authorizer
	Volunteers   handler.VolunteerService
	Associations handler.AssociationService
	Events       handler.EventService
	Interests    handler.InterestService
	Media        handler.MediaService
}

// Router builds the gin engine of the volunteer API.
type Router struct {
	services Services
	metrics  *metrics.Metrics
	logger   *logger.Logger
}

// New creates new HTTP Router instance.
func New(services Services, metrics *metrics.Metrics, logger *logger.Logger) *Router {
	return &Router{
		services: services,
		metrics:  metrics,
		logger:   logger,
	}
}

// Register mounts middleware and every route on a new engine.
func (r *Router) Register() *gin.Engine {
	engine := gin.New()
	engine.Use(
		gin.CustomRecovery(r.recover),
		middleware.NewLogging(r.logger).Handle,
		middleware.NewMetrics(r.metrics).Handle,
	)

	engine.GET("/metrics", gin.WrapH(r.metrics.Handler()))

	api := engine.Group("/API")
	r.registerAuthRoutes(api)
	r.registerVolunteerRoutes(api)
	r.registerAssociationRoutes(api)
	r.registerEventRoutes(api)
	r.registerInterestRoutes(api)
	r.registerMediaRoutes(api)

	return engine
}

func (r *Router) registerAuthRoutes(api *gin.RouterGroup) {
	h := handler.NewAuth(r.services.Auth, r.metrics, r.logger)
	api.POST("/login", h.Login)
	api.GET("/logout", h.Logout)
}

func (r *Router) registerVolunteerRoutes(api *gin.RouterGroup) {
	h := handler.NewVolunteer(r.services.Volunteers, r.services.Guard, r.logger)
	api.POST("/registerVolunteer", h.Register)
	api.POST("/updateVolunteerProfile", h.UpdateProfile)
	api.POST("/fetchVolunteerDetails", h.Details)
}

func (r *Router) registerAssociationRoutes(api *gin.RouterGroup) {
	h := handler.NewAssociation(r.services.Associations, r.services.Guard, r.logger)
	api.POST("/registerAssociation", h.Register)
	api.POST("/updateAssociationProfile", h.UpdateProfile)
}

func (r *Router) registerEventRoutes(api *gin.RouterGroup) {
	h := handler.NewEvent(r.services.Events, r.services.Guard, r.logger)
	api.POST("/publishEvent", h.Publish)
	api.POST("/updateEvent", h.Update)
	api.POST("/joinEvent", h.Join)
	api.POST("/removeVolunteerFromEvent", h.RemoveParticipant)
	api.POST("/getParticipantsOfEvent", h.Participants)
	api.POST("/getNumberOfParticipants", h.ParticipantCount)
	api.POST("/getAssociationsOfEvent", h.Associations)
	api.POST("/getEventsOfAssociation", h.CreatedByAssociation)
	api.POST("/getEventsOfAssociationOnlyParticipation", h.JoinedByAssociation)
	api.GET("/getEventsNotParticipating", h.NotJoinedByAssociation)
	api.GET("/getVolunteerEvents", h.JoinedByVolunteer)
	api.GET("/getAvailableEventsForVolunteer", h.AvailableForVolunteer)
}

func (r *Router) registerInterestRoutes(api *gin.RouterGroup) {
	h := handler.NewInterest(r.services.Interests, r.services.Guard, r.logger)
	api.GET("/getInterestList", h.List)
	api.GET("/getInterestsOfVolunteer", h.ForVolunteer)
	api.POST("/getInterestsOfEvent", h.ForEvent)
}

func (r *Router) registerMediaRoutes(api *gin.RouterGroup) {
	h := handler.NewMedia(r.services.Media, r.services.Guard, r.logger)
	api.GET("/media/*key", h.Get)
}

func (r *Router) recover(c *gin.Context, recovered any) {
	r.logger.Error("HTTP handler panicked",
		"route", c.FullPath(),
		"panic", recovered)
	c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"state": 1, "message": "Internal server error"})
}
