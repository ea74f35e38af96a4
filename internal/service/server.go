// Package service exposes kwok.Solve over HTTP via gin, persisting each
// solved Matching through a store.Store and returning a request ID clients
// can use to retrieve it later.
package service

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/katalvlaran/lvlath/internal/log"
	"github.com/katalvlaran/lvlath/internal/store"
	"github.com/katalvlaran/lvlath/kwok"
)

// Server wires kwok.Solve, a store.Store, and a Logger behind a gin.Engine.
type Server struct {
	store  store.Store
	logger log.Logger
	engine *gin.Engine
}

// New builds a Server. allowedOrigins is a comma-separated CORS allow-list;
// an empty value allows any origin.
func New(st store.Store, logger log.Logger, allowedOrigins string) *Server {
	s := &Server{store: st, logger: logger}
	s.engine = gin.New()
	s.engine.Use(gin.Recovery())
	s.engine.Use(corsMiddleware(allowedOrigins))

	s.engine.POST("/api/v1/match", s.handleMatch)
	s.engine.GET("/api/v1/match/:id", s.handleGetMatch)
	s.engine.GET("/api/v1/healthz", s.handleHealthz)

	return s
}

// Engine returns the underlying *gin.Engine, e.g. for httptest.NewServer in
// tests or r.Run(addr) in cmd/kwokmatch.
func (s *Server) Engine() *gin.Engine { return s.engine }

// corsMiddleware mirrors the teacher service's ALLOWED_ORIGINS env-var-driven
// CORS header pattern, parameterized here instead of reading the
// environment directly.
func corsMiddleware(allowedOrigins string) gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		switch {
		case allowedOrigins == "" || allowedOrigins == "*":
			c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		default:
			for _, allowed := range strings.Split(allowedOrigins, ",") {
				if strings.TrimSpace(allowed) == origin {
					c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
					break
				}
			}
		}
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}

type matchRequest struct {
	LSize int          `json:"l_size"`
	RSize int          `json:"r_size"`
	Adj   [][]kwok.Edge `json:"adj"`
}

type matchResponse struct {
	RequestID string       `json:"request_id"`
	Matching  kwok.Matching `json:"matching"`
}

func (s *Server) handleMatch(c *gin.Context) {
	var req matchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	m, err := kwok.Solve(req.LSize, req.RSize, req.Adj)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	requestID := uuid.NewString()
	if err := s.store.SaveMatching(c.Request.Context(), requestID, m); err != nil {
		s.logger.Errorw("save matching failed", "request_id", requestID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to persist matching"})
		return
	}

	s.logger.Infow("matching solved", "request_id", requestID, "total_weight", m.TotalWeight)
	c.JSON(http.StatusOK, matchResponse{RequestID: requestID, Matching: m})
}

func (s *Server) handleGetMatch(c *gin.Context) {
	id := c.Param("id")
	m, err := s.store.GetMatching(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, matchResponse{RequestID: id, Matching: m})
}

func (s *Server) handleHealthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
