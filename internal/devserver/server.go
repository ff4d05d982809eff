package devserver

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/filebox/filebox/internal/common"
	"github.com/filebox/filebox/internal/logging"
)

const userIDKey = "userID"

// Server wires the in-memory stores and JWT auth into a gin engine.
type Server struct {
	cfg    *Config
	log    logging.Logger
	store  *memStore
	engine *gin.Engine
}

func NewServer(cfg *Config, log logging.Logger) *Server {
	s := &Server{
		cfg:   cfg,
		log:   log.With("component", "devserver"),
		store: newMemStore(),
	}

	gin.SetMode(gin.ReleaseMode)
	e := gin.New()
	e.Use(gin.Recovery())

	e.POST("/auth/login", s.handleLogin)
	e.POST("/auth/register", s.handleRegister)
	e.GET("/health", s.handleHealth)

	authed := e.Group("/", s.authMiddleware())
	authed.GET("/users/me", s.handleCurrentUser)
	authed.GET("/files", s.handleListFiles)
	authed.POST("/files/upload", s.handleUpload)
	authed.GET("/files/:id/download", s.handleDownload)
	authed.DELETE("/files/:id", s.handleDeleteFile)

	s.engine = e
	return s
}

// Handler exposes the engine for tests and embedding.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run serves until the listener fails.
func (s *Server) Run(ctx context.Context) error {
	s.log.Info(ctx, "listening", "addr", s.cfg.Addr)
	return s.engine.Run(s.cfg.Addr)
}

// respond wraps a success payload in the envelope the client unwraps.
func respond(c *gin.Context, status int, data any) {
	c.JSON(status, gin.H{"success": true, "data": data})
}

func respondError(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"success": false, "message": msg})
}

// authMiddleware resolves the bearer credential to a user id, rejecting the
// request with 401 otherwise.
func (s *Server) authMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader(common.AuthorizationHeader)
		if !strings.HasPrefix(header, common.BearerPrefix) {
			respondError(c, http.StatusUnauthorized, "Missing bearer token")
			c.Abort()
			return
		}

		userID, err := userIDFromToken(strings.TrimPrefix(header, common.BearerPrefix), []byte(s.cfg.JWTSecret))
		if err != nil {
			respondError(c, http.StatusUnauthorized, "Invalid token")
			c.Abort()
			return
		}
		if _, err := s.store.userByID(userID); err != nil {
			respondError(c, http.StatusUnauthorized, "Invalid token")
			c.Abort()
			return
		}

		c.Set(userIDKey, userID)
		c.Next()
	}
}
