package api

import (
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/silverpine/fleet-booking/internal/auth"
	"github.com/silverpine/fleet-booking/internal/booking"
	bookingHttp "github.com/silverpine/fleet-booking/internal/booking/http"
	"github.com/silverpine/fleet-booking/internal/calendar"
	calendarHttp "github.com/silverpine/fleet-booking/internal/calendar/http"
	"github.com/silverpine/fleet-booking/internal/resource"
	resHttp "github.com/silverpine/fleet-booking/internal/resource/http"
	"github.com/silverpine/fleet-booking/internal/user"
	userHttp "github.com/silverpine/fleet-booking/internal/user/http"
)

// Config holds the services and settings the router needs.
type Config struct {
	IsProduction    bool
	ProdOrigins     string
	UserService     user.Service
	ResService      resource.Service
	BookingService  booking.Service
	CalendarService calendar.Service
	JWTManager      *auth.JWTManager
}

// NewRouter assembles the gin engine: global middleware (logging, recovery,
// CORS) and per-module route registration under /v1.
func NewRouter(cfg Config) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	corsConfig := cors.DefaultConfig()
	if cfg.IsProduction && cfg.ProdOrigins != "" {
		corsConfig.AllowOrigins = strings.Split(cfg.ProdOrigins, ",")
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization"}
	r.Use(cors.New(corsConfig))

	authMiddleware := auth.AuthRequired(cfg.JWTManager)

	userHandler := userHttp.NewHandler(cfg.UserService, cfg.JWTManager)
	resHandler := resHttp.NewHandler(cfg.ResService)
	bookingHandler := bookingHttp.NewHandler(cfg.BookingService)
	calendarHandler := calendarHttp.NewHandler(cfg.CalendarService)

	v1 := r.Group("/v1")
	{
		userHttp.RegisterRoutes(v1, userHandler, authMiddleware)
		resHttp.RegisterRoutes(v1, resHandler, authMiddleware)
		bookingHttp.RegisterRoutes(v1, bookingHandler, authMiddleware)
		calendarHttp.RegisterRoutes(v1, calendarHandler, authMiddleware)
	}

	return r
}
