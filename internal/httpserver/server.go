// Package httpserver renders the dashboard page and its sidebar as HTML and
// exposes the sidebar's rendered state as JSON. Sidebar state lives in the
// request query, so handlers share nothing.
package httpserver

import (
	"context"
	"embed"
	"errors"
	"html/template"
	"io/fs"
	"log"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/tinytelemetry/pulse/internal/model"
)

//go:embed templates/*.html
var templatesFS embed.FS

//go:embed static
var staticFS embed.FS

var pageTemplate = template.Must(template.ParseFS(templatesFS, "templates/*.html"))

// Server serves the dashboard page and sidebar API.
type Server struct {
	addr      string
	server    *http.Server
	listener  net.Listener
	ctx       context.Context
	cancel    context.CancelFunc
	startTime time.Time
}

// NewServer creates a new HTTP server.
func NewServer(addr string) *Server {
	if addr == "" {
		addr = net.JoinHostPort(model.DefaultAPIHost, strconv.Itoa(model.DefaultAPIPort))
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Server{
		addr:   addr,
		ctx:    ctx,
		cancel: cancel,
	}
}

// Router builds the gin engine with all routes registered.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), requestID(), logFailures())
	r.SetHTMLTemplate(pageTemplate)

	static, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err) // embedded path is fixed at build time
	}
	r.StaticFS("/static", http.FS(static))

	r.GET("/", s.handlePage)
	r.GET("/api/health", s.handleHealth)
	r.GET("/api/entries", s.handleEntries)
	r.GET("/api/sidebar", s.handleSidebar)
	r.GET("/metrics", metricsHandler())

	return r
}

// Start begins serving HTTP requests.
func (s *Server) Start() error {
	gin.SetMode(gin.ReleaseMode)

	s.server = &http.Server{
		Handler:           s.Router(),
		BaseContext:       func(_ net.Listener) context.Context { return s.ctx },
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      60 * time.Second,
	}

	listener, err := net.Listen("tcp", s.addr)
	if err != nil {
		return err
	}
	s.listener = listener
	s.startTime = time.Now()

	go func() {
		if err := s.server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("httpserver: serve error: %v", err)
		}
	}()
	return nil
}

// Addr returns the bound address once started, or the configured one.
func (s *Server) Addr() string {
	if s.listener != nil {
		return s.listener.Addr().String()
	}
	return s.addr
}

// Stop gracefully shuts down the HTTP server.
func (s *Server) Stop() error {
	s.cancel()
	if s.server == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), model.DefaultShutdownTimeout)
	defer cancel()
	return s.server.Shutdown(ctx)
}

func (s *Server) handlePage(c *gin.Context) {
	state, err := stateFromQuery(c.Request.URL.Query())
	if err != nil {
		metricRejected.Inc()
		c.String(http.StatusBadRequest, err.Error())
		return
	}

	view := buildSidebarView(state)
	observeRender("page", view)
	c.HTML(http.StatusOK, "page.html", pageView{
		Meta:    model.DefaultMeta,
		Sidebar: view,
		Page:    model.DefaultHostPage(),
	})
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"uptime": time.Since(s.startTime).String(),
	})
}

func (s *Server) handleEntries(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"entries": model.NavEntries(),
	})
}

func (s *Server) handleSidebar(c *gin.Context) {
	state, err := stateFromQuery(c.Request.URL.Query())
	if err != nil {
		metricRejected.Inc()
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	view := buildSidebarView(state)
	observeRender("api", view)
	c.JSON(http.StatusOK, view)
}
