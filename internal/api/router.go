package api

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/your-org/remember/internal/api/handlers"
	"github.com/your-org/remember/internal/api/ws"
	"github.com/your-org/remember/internal/auth"
	"github.com/your-org/remember/internal/sketch"
)

type RouterConfig struct {
	APIKey   string
	Store    handlers.Store
	Objects  handlers.ObjectStore
	Sketches *sketch.Service
	// Queue is nil when sketches render inline.
	Queue handlers.SketchQueue
	// Describer is nil when AI description edits are off.
	Describer handlers.Describer
	Hub       *ws.Hub
	// Notifier defaults to Hub.
	Notifier handlers.Notifier
	Checks   map[string]handlers.Check

	ReviewQueueLimit int
	NearDueDays      int
	SearchThreshold  float64
	MaxUploadBytes   int64
	Clock            func() time.Time
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(LoggingMiddleware())
	r.Use(cors.Default())

	// System endpoints (no auth)
	systemH := handlers.NewSystemHandler(cfg.Checks)
	r.GET("/healthz", systemH.Healthz)
	r.GET("/readyz", systemH.Readyz)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	notifier := cfg.Notifier
	if notifier == nil && cfg.Hub != nil {
		notifier = cfg.Hub
	}

	// API v1 (with auth)
	v1 := r.Group("/v1")
	v1.Use(auth.APIKeyMiddleware(cfg.APIKey))

	if cfg.Hub != nil {
		v1.GET("/ws", cfg.Hub.HandleWS)
	}

	catH := handlers.NewCategoryHandler(cfg.Store)
	v1.POST("/categories", catH.Create)
	v1.GET("/categories", catH.List)

	sketchH := handlers.NewSketchHandler(cfg.Store, cfg.Objects, cfg.Sketches, cfg.Queue, notifier)
	personH := handlers.NewPersonHandler(cfg.Store, cfg.Objects, sketchH, cfg.Describer, cfg.Clock)
	v1.POST("/persons", personH.Create)
	v1.GET("/persons", personH.List)
	v1.GET("/persons/:id", personH.Get)
	v1.DELETE("/persons/:id", personH.Delete)
	v1.POST("/persons/:id/transcript", personH.UpdateTranscript)
	v1.GET("/contexts/recent", personH.RecentContexts)

	v1.POST("/persons/:id/sketch", sketchH.Generate)
	v1.GET("/persons/:id/sketch", sketchH.Get)
	v1.GET("/persons/:id/visual", sketchH.Visual)
	v1.GET("/sketch/preview", sketchH.Preview)

	mediaH := handlers.NewMediaHandler(cfg.Store, cfg.Objects, cfg.MaxUploadBytes, cfg.Clock)
	v1.POST("/persons/:id/photo", mediaH.UploadPhoto)
	v1.GET("/persons/:id/photo", mediaH.GetPhoto)
	v1.POST("/persons/:id/audio", mediaH.UploadAudio)
	v1.GET("/persons/:id/audio", mediaH.GetAudio)
	v1.PUT("/persons/:id/preferred-visual", mediaH.SetPreferredVisual)

	reviewH := handlers.NewReviewHandler(cfg.Store, notifier, cfg.ReviewQueueLimit, cfg.NearDueDays, cfg.Clock)
	v1.GET("/review/due-count", reviewH.DueCount)
	v1.GET("/review/queue", reviewH.Queue)
	v1.POST("/persons/:id/review", reviewH.Record)

	searchH := handlers.NewSearchHandler(cfg.Store, personH, cfg.SearchThreshold)
	v1.POST("/search", searchH.Search)
	v1.POST("/keywords/extract", searchH.ExtractKeywords)
	v1.POST("/voice", searchH.Voice)

	return r
}
