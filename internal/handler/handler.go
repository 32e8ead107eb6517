// Package handler implements the HTTP API: registration, login, the
// current-user endpoint, province reference data, and travel plans.
package handler

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/kbukum/travelpay/internal/auth"
	"github.com/kbukum/travelpay/internal/logger"
	"github.com/kbukum/travelpay/internal/model"
	"github.com/kbukum/travelpay/internal/server/middleware"
)

// ProvinceStore is the province persistence surface the handlers need.
type ProvinceStore interface {
	ByID(ctx context.Context, id int64) (*model.Province, error)
	ByNameTH(ctx context.Context, nameTH string) (*model.Province, error)
	All(ctx context.Context, tier model.CityTier) ([]model.Province, error)
	Create(ctx context.Context, p *model.Province) error
}

// TravelStore is the travel persistence surface the handlers need.
type TravelStore interface {
	ByID(ctx context.Context, id, userID int64) (*model.Travel, error)
	ByUser(ctx context.Context, userID int64) ([]model.Travel, error)
	Create(ctx context.Context, t *model.Travel) error
	Save(ctx context.Context, t *model.Travel) error
	Delete(ctx context.Context, t *model.Travel) error
}

// Pinger reports storage reachability for the health endpoint.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Handler bundles the API handlers and their dependencies.
type Handler struct {
	auth      *auth.Service
	provinces ProvinceStore
	travels   TravelStore
	db        Pinger
	log       *logger.Logger
}

// New creates the API handler set.
func New(authSvc *auth.Service, provinces ProvinceStore, travels TravelStore, db Pinger, log *logger.Logger) *Handler {
	return &Handler{
		auth:      authSvc,
		provinces: provinces,
		travels:   travels,
		db:        db,
		log:       log.WithComponent("handler"),
	}
}

// RegisterRoutes mounts all API routes on the engine. Protected routes sit
// behind the bearer-token middleware.
func (h *Handler) RegisterRoutes(engine *gin.Engine) {
	engine.GET("/", h.Welcome)
	engine.GET("/health", h.Health)

	api := engine.Group("/api")

	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", h.Register)
		authGroup.POST("/login", h.Login)
	}

	requireUser := middleware.RequireUser(h.auth)

	me := api.Group("/users/me", requireUser)
	{
		me.GET("", h.Me)

		travels := me.Group("/travels")
		{
			travels.GET("", h.ListTravels)
			travels.POST("", h.CreateTravel)
			travels.GET("/:id", h.GetTravel)
			travels.PUT("/:id", h.UpdateTravel)
			travels.DELETE("/:id", h.DeleteTravel)
		}
	}

	provinces := api.Group("/provinces")
	{
		provinces.GET("", h.ListProvinces)
		provinces.GET("/secondary", h.ListSecondaryProvinces)
		provinces.GET("/:id", h.GetProvince)
		provinces.POST("", requireUser, h.CreateProvince)
	}
}
