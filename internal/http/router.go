// README: HTTP router registration.
package http

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"tripplanner/internal/http/handlers"
	"tripplanner/internal/http/middleware"
	"tripplanner/internal/infra"
	"tripplanner/internal/modules/trips"
)

type RouterDeps struct {
	Planner  handlers.Planner
	Booker   handlers.Booker
	Payments handlers.Payer
	// Places may be nil; /v1/pois then answers 503.
	Places      handlers.POISearcher
	Trips       *trips.Service
	Verifier    infra.TokenVerifier
	Logger      *zap.Logger
	Metrics     *infra.Metrics
	CORSOrigins []string
}

func NewRouter(deps RouterDeps) *gin.Engine {
	log := deps.Logger
	if log == nil {
		log = zap.NewNop()
	}

	r := gin.New()
	r.Use(
		middleware.Logging(log, deps.Metrics),
		middleware.Recovery(log),
		cors.New(corsConfig(deps.CORSOrigins)),
		middleware.Identify(deps.Verifier),
	)

	planHandler := handlers.NewPlanHandler(deps.Planner, deps.Booker)
	// The web app still posts to the unversioned paths.
	r.POST("/plan", planHandler.Plan)
	r.POST("/book", planHandler.Book)

	v1 := r.Group("/v1")
	v1.POST("/plan", planHandler.Plan)
	v1.POST("/book", planHandler.Book)

	paymentHandler := handlers.NewPaymentHandler(deps.Payments)
	v1.POST("/pay", paymentHandler.Pay)

	poiHandler := handlers.NewPOIHandler(deps.Places)
	v1.GET("/pois", poiHandler.Search)

	tripHandler := handlers.NewTripHandler(deps.Trips)
	v1.POST("/trips", tripHandler.Create)
	v1.GET("/trips", tripHandler.List)
	v1.GET("/trips/:id", tripHandler.Get)
	v1.GET("/trips/:id/pdf", tripHandler.PDF)

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})
	if deps.Metrics != nil {
		r.GET("/metrics", gin.WrapH(deps.Metrics.Handler()))
	}

	return r
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders: []string{"Content-Disposition"},
		AllowWildcard: true,
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 0 {
		cfg.AllowAllOrigins = true
		return cfg
	}
	cfg.AllowOrigins = origins
	return cfg
}
