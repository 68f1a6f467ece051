package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/avishek322/Ai-Resume-Builder/internal/chat"
	"github.com/avishek322/Ai-Resume-Builder/internal/prefs"
	"github.com/avishek322/Ai-Resume-Builder/internal/saved"
	"github.com/avishek322/Ai-Resume-Builder/internal/shared/config"
	"github.com/avishek322/Ai-Resume-Builder/internal/shared/metrics"
	"github.com/avishek322/Ai-Resume-Builder/internal/shared/server/middleware"
	"github.com/avishek322/Ai-Resume-Builder/internal/shared/server/respond"
)

// RouterDeps carries the handlers the router mounts.
type RouterDeps struct {
	Config       config.Config
	ChatHandler  *chat.Handler
	SavedHandler *saved.Handler
	PrefsHandler *prefs.Handler
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
	)

	r.GET("/api/v1/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"ok": true})
	})
	r.GET("/metrics", metrics.Handler())

	api := r.Group("/api/v1")
	api.Use(
		middleware.Identity(),
		middleware.RateLimit(middleware.RateLimitConfig{
			Rules: map[string]middleware.RateLimitRule{
				"MESSAGE": {Rate: 1, Burst: 5},
				"EXPORT":  {Rate: 0.2, Burst: 3},
			},
			GroupFor: rateLimitGroup,
		}),
	)

	registerMeRoutes(api)
	deps.ChatHandler.RegisterRoutes(api)
	deps.SavedHandler.RegisterRoutes(api)
	deps.PrefsHandler.RegisterRoutes(api)

	return r
}

// rateLimitGroup buckets the model-backed and Chrome-backed endpoints; all
// other routes are not limited.
func rateLimitGroup(c *gin.Context) string {
	path := c.FullPath()
	switch {
	case path == "/api/v1/sessions/:id/messages" || path == "/api/v1/sessions/:id/import":
		return "MESSAGE"
	case path == "/api/v1/sessions/:id/export/pdf":
		return "EXPORT"
	default:
		return ""
	}
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
