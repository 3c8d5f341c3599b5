package server

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"stadium-admin/internal/config"
	"stadium-admin/internal/usecase"
)

type Server struct {
	cfg       config.Config
	log       *slog.Logger
	auth      *usecase.AuthService
	orders    *usecase.OrderService
	stadiums  *usecase.StadiumService
	shops     *usecase.ShopService
	menu      *usecase.MenuService
	selection *usecase.SelectionService
	objects   ObjectStore
	engine    *gin.Engine
}

// ObjectStore is the upload side of the object storage collaborator.
type ObjectStore interface {
	Upload(path string, data []byte) (string, error)
	Delete(url string) error
}

type Deps struct {
	Auth      *usecase.AuthService
	Orders    *usecase.OrderService
	Stadiums  *usecase.StadiumService
	Shops     *usecase.ShopService
	Menu      *usecase.MenuService
	Selection *usecase.SelectionService
	Objects   ObjectStore
}

func New(cfg config.Config, log *slog.Logger, d Deps) *Server {
	if cfg.Env != "dev" {
		gin.SetMode(gin.ReleaseMode)
	}
	s := &Server{
		cfg:       cfg,
		log:       log,
		auth:      d.Auth,
		orders:    d.Orders,
		stadiums:  d.Stadiums,
		shops:     d.Shops,
		menu:      d.Menu,
		selection: d.Selection,
		objects:   d.Objects,
		engine:    gin.New(),
	}
	s.routes()
	return s
}

func (s *Server) Handler() http.Handler { return s.engine }

func (s *Server) routes() {
	e := s.engine
	e.Use(gin.Recovery(), s.logRequests(), s.cors())

	e.Static("/assets", s.cfg.AssetsDir)

	api := e.Group("/api")
	api.POST("/auth/register", s.handleRegister)
	api.POST("/auth/login", s.handleLogin)

	authed := api.Group("", s.requireAuth())
	authed.GET("/stadiums", s.handleListStadiums)
	authed.POST("/stadiums", s.handleCreateStadium)
	authed.GET("/stadiums/:id", s.handleGetStadium)
	authed.PUT("/stadiums/:id", s.handleUpdateStadium)
	authed.DELETE("/stadiums/:id", s.handleDeactivateStadium)
	authed.GET("/stadiums/:id/stats", s.handleVenueStats)
	authed.GET("/stadiums/:id/shops", s.handleListShops)
	authed.POST("/stadiums/:id/shops", s.handleCreateShop)

	authed.GET("/shops/:id", s.handleGetShop)
	authed.PUT("/shops/:id", s.handleUpdateShop)
	authed.DELETE("/shops/:id", s.handleDeleteShop)
	authed.GET("/shops/:id/menu-items", s.handleListMenuItems)
	authed.POST("/shops/:id/menu-items", s.handleCreateMenuItem)
	authed.PUT("/menu-items/:id", s.handleUpdateMenuItem)
	authed.DELETE("/menu-items/:id", s.handleDeleteMenuItem)

	authed.GET("/orders", s.handleListOrders)
	authed.POST("/orders", s.handleCreateOrder)
	authed.GET("/orders/stream", s.handleOrderStream)
	authed.GET("/orders/:id", s.handleGetOrder)
	authed.PATCH("/orders/:id/status", s.handleSetOrderStatus)

	authed.GET("/session/selection", s.handleGetSelection)
	authed.PUT("/session/selection", s.handleSetSelection)
	authed.DELETE("/session/selection", s.handleClearSelection)

	authed.POST("/upload", s.handleUpload)
}

func (s *Server) cors() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Headers", "*")
		c.Header("Access-Control-Allow-Methods", "GET,POST,PUT,PATCH,DELETE,OPTIONS")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}

func (s *Server) logRequests() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.log.Info("http request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration_ms", time.Since(start).Milliseconds(),
		)
	}
}

const (
	ctxUserID = "user_id"
	ctxRole   = "role"
)

func (s *Server) requireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		token := strings.TrimPrefix(h, "Bearer ")
		if token == "" || token == h {
			s.abortErr(c, http.StatusUnauthorized, "AuthError", "bearer token required")
			return
		}
		uid, role, err := s.auth.Verify(token)
		if err != nil {
			s.abortErr(c, http.StatusUnauthorized, "AuthError", "invalid token")
			return
		}
		c.Set(ctxUserID, uid)
		c.Set(ctxRole, string(role))
		c.Next()
	}
}

func (s *Server) userID(c *gin.Context) string { return c.GetString(ctxUserID) }

// fail maps service errors onto the HTTP surface. Store failures read as a
// bad gateway since the backing store is a remote collaborator.
func (s *Server) fail(c *gin.Context, err error) {
	var (
		notFound  usecase.ErrNotFound
		invalid   usecase.ErrInvalidStatus
		validate  usecase.ErrValidation
		authErr   usecase.ErrAuth
		conflict  usecase.ErrConflict
		storeFail *usecase.StoreError
	)
	switch {
	case errors.As(err, &notFound):
		s.abortErr(c, http.StatusNotFound, "NotFound", err.Error())
	case errors.As(err, &invalid):
		s.abortErr(c, http.StatusBadRequest, "InvalidStatus", err.Error())
	case errors.As(err, &validate):
		s.abortErr(c, http.StatusBadRequest, "ValidationError", err.Error())
	case errors.As(err, &authErr):
		s.abortErr(c, http.StatusForbidden, "AuthError", err.Error())
	case errors.As(err, &conflict):
		s.abortErr(c, http.StatusConflict, "Conflict", err.Error())
	case errors.As(err, &storeFail):
		s.abortErr(c, http.StatusBadGateway, "StoreError", err.Error())
	default:
		s.abortErr(c, http.StatusInternalServerError, "ServerError", err.Error())
	}
}

func (s *Server) abortErr(c *gin.Context, status int, code, msg string) {
	c.AbortWithStatusJSON(status, gin.H{
		"error": gin.H{
			"code":      code,
			"message":   msg,
			"requestId": c.GetHeader("X-Request-ID"),
		},
	})
}
