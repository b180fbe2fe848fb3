// Package web is the HTTP renderer of the portfolio: a JSON API over the
// same navigation controller and store the terminal renderer uses. Pages
// poll the view state and trigger intents; privileged routes carry the admin
// password with the request.
package web

import (
	"context"
	"database/sql"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/raghul07102002/holofolio/internal/common"
	"github.com/raghul07102002/holofolio/internal/config"
	"github.com/raghul07102002/holofolio/internal/logging"
	"github.com/raghul07102002/holofolio/internal/nav"
	"github.com/raghul07102002/holofolio/internal/notify"
	"github.com/raghul07102002/holofolio/internal/storage"
	"github.com/raghul07102002/holofolio/internal/store"
)

type Server struct {
	cfg   *config.Config
	store *store.Store
	nav   *nav.Controller
	log   logging.Logger
	db    *sql.DB
}

func NewServer(cfg *config.Config) (*Server, error) {
	ctx := context.Background()
	log := logging.NewDefault()

	db, err := storage.Open(ctx, cfg.DatabaseDSN)
	if err != nil {
		log.Error(ctx, "error initializing database", "error", err)
		return nil, err
	}

	s, err := store.New(ctx, storage.NewSQLiteStorage(db), cfg.AdminSecret, log, notify.LogSink{Log: log})
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Server{
		cfg:   cfg,
		store: s,
		nav:   nav.NewController(),
		log:   log,
		db:    db,
	}, nil
}

// Router builds the gin engine with all API routes registered.
func (s *Server) Router() *gin.Engine {
	r := gin.Default()

	api := r.Group("/api")
	{
		api.GET("/view", s.currentView)
		api.POST("/activate", s.activate)
		api.POST("/open/:view", s.openView)
		api.POST("/close", s.closeView)
		api.POST("/logout", s.logout)

		api.GET("/menu", s.menu)
		api.GET("/projects", s.projects)
		api.GET("/learnings", s.learnings)

		api.GET("/profile", s.getProfile)
		api.PUT("/profile", s.updateProfile)

		api.POST("/resume", s.uploadSingleton(store.SlotResume))
		api.GET("/resume", s.downloadSingleton(store.SlotResume))
		api.POST("/cover-letter", s.uploadSingleton(store.SlotCoverLetter))
		api.GET("/cover-letter", s.downloadSingleton(store.SlotCoverLetter))

		api.GET("/certificates", s.listCertificates)
		api.POST("/certificates", s.uploadCertificates)
		api.GET("/certificates/:id", s.downloadCertificate)
		api.PATCH("/certificates/:id", s.renameCertificate)
		api.DELETE("/certificates/:id", s.removeCertificate)
	}

	return r
}

// Run serves the API until the listener fails. The database handle is closed
// on the way out.
func (s *Server) Run() error {
	defer func() { _ = s.db.Close() }()
	return s.Router().Run(s.cfg.ListenAddr)
}

// authenticate checks the supplied password and arms the store for one
// mutation. On failure it writes the 401 response itself.
func (s *Server) authenticate(c *gin.Context, password string) bool {
	if !s.store.Authenticate(password) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Incorrect password"})
		return false
	}
	return true
}

// fail maps store errors onto HTTP responses.
func (s *Server) fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, common.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, common.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
	case errors.Is(err, common.ErrStorageUnavailable):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Saving failed; changes are kept for this session only"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
