package api

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/stefanristic40/golden-eye-api/internal/api/handlers"
	"github.com/stefanristic40/golden-eye-api/internal/api/ws"
	"github.com/stefanristic40/golden-eye-api/internal/search"
)

type RouterConfig struct {
	JWTSecret string
	TokenTTL  time.Duration

	Users    handlers.UserStore
	Entries  handlers.EntryCreator
	Profiles handlers.ProfileStore
	Images   handlers.ObjectStore
	Events   handlers.EventPublisher
	Checks   map[string]handlers.Pinger

	Engine *search.Engine
	Hub    *ws.Hub

	// Encoder extracts face encodings from uploaded thumbnails. May be
	// nil when the vision pipeline is unavailable.
	Encoder handlers.Encoder
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(LoggingMiddleware())
	r.Use(cors.Default())

	systemH := handlers.NewSystemHandler(cfg.Checks)
	r.GET("/", systemH.Root)
	r.GET("/healthz", systemH.Healthz)
	r.GET("/readyz", systemH.Readyz)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	authH := handlers.NewAuthHandler(cfg.Users, cfg.JWTSecret, cfg.TokenTTL)
	entryH := handlers.NewEntryHandler(cfg.Entries, cfg.Images, cfg.Events)
	profileH := handlers.NewProfileHandler(cfg.Profiles, cfg.Images, cfg.Events)
	searchH := handlers.NewSearchHandler(cfg.Engine)
	imageH := handlers.NewImageHandler(cfg.Images)

	entryH.SetEncoder(cfg.Encoder)
	profileH.SetEncoder(cfg.Encoder)

	api := r.Group("/api")
	api.POST("/signup", authH.Signup)
	api.POST("/signin", authH.Signin)
	api.POST("/entry", entryH.Create)
	api.POST("/low", profileH.Create)
	api.GET("/low/:entry_id", profileH.GetByEntryID)
	api.POST("/search", searchH.Search)

	if cfg.Hub != nil {
		api.GET("/ws", cfg.Hub.HandleWS)
	}

	r.GET("/images/:filename", imageH.Get)

	return r
}
