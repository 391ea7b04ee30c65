package dash

import (
	"bytes"
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"

	charts "github.com/midbel/tapcharts"
	"github.com/midbel/tapcharts/canvas"
)

// Server exposes the configured charts over http and resolves taps on pie
// charts.
type Server struct {
	charts map[string]Config
	names  []string
	logger *log.Logger
	engine *gin.Engine
}

type chartInfo struct {
	Name   string  `json:"name"`
	Kind   string  `json:"kind"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

type tapResult struct {
	Chart string  `json:"chart"`
	Index int     `json:"index"`
	Value float64 `json:"value"`
	Color string  `json:"color"`
}

func NewServer(logger *log.Logger, cfgs ...Config) *Server {
	if logger == nil {
		logger = log.Default()
	}
	s := Server{
		charts: make(map[string]Config),
		logger: logger,
	}
	for _, c := range cfgs {
		if _, ok := s.charts[c.Name]; !ok {
			s.names = append(s.names, c.Name)
		}
		s.charts[c.Name] = c
	}

	s.engine = gin.New()
	s.engine.Use(gin.Recovery(), s.logRequest())
	s.engine.GET("/charts", s.list)
	s.engine.GET("/charts/:name", s.render)
	s.engine.GET("/charts/:name/tap", s.tap)
	s.engine.POST("/charts/:name/tap", s.tap)
	return &s
}

func (s *Server) Handler() http.Handler {
	return s.engine
}

// ListenAndServe serves until ctx is cancelled.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := http.Server{
		Addr:              addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 5 * time.Second,
	}
	errc := make(chan error, 1)
	go func() {
		errc <- srv.ListenAndServe()
	}()
	s.logger.Info("dashboard listening", "addr", addr, "charts", len(s.names))
	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
		sub, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(sub)
	}
}

func (s *Server) list(c *gin.Context) {
	list := make([]chartInfo, 0, len(s.names))
	for _, n := range s.names {
		cfg := s.charts[n]
		w, h := cfg.Dimension()
		list = append(list, chartInfo{
			Name:   cfg.Name,
			Kind:   cfg.Kind,
			Width:  w,
			Height: h,
		})
	}
	c.JSON(http.StatusOK, list)
}

func (s *Server) render(c *gin.Context) {
	cfg, ok := s.lookup(c)
	if !ok {
		return
	}
	format := c.DefaultQuery("format", canvas.FormatSVG)
	if str, ok := c.GetQuery("progress"); ok {
		p, err := strconv.ParseFloat(str, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid progress"})
			return
		}
		cfg.Progress = p
		cfg.Animate = true
	}
	var buf bytes.Buffer
	if err := cfg.Render(c.Request.Context(), &buf, format); err != nil {
		s.logger.Error("fail to render chart", "chart", cfg.Name, "error", err)
		c.JSON(statusOf(err), gin.H{"error": err.Error()})
		return
	}
	c.Data(http.StatusOK, canvas.ContentType(format), buf.Bytes())
}

func (s *Server) tap(c *gin.Context) {
	cfg, ok := s.lookup(c)
	if !ok {
		return
	}
	x, err1 := strconv.ParseFloat(c.Query("x"), 64)
	y, err2 := strconv.ParseFloat(c.Query("y"), 64)
	if err1 != nil || err2 != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "x and y are required"})
		return
	}
	i, slice, err := cfg.Tap(c.Request.Context(), x, y)
	if err != nil {
		if !errors.Is(err, charts.ErrNoSliceMatched) {
			s.logger.Error("fail to resolve tap", "chart", cfg.Name, "error", err)
		}
		c.JSON(statusOf(err), gin.H{"error": err.Error()})
		return
	}
	s.logger.Debug("slice selected", "chart", cfg.Name, "index", i)
	c.JSON(http.StatusOK, tapResult{
		Chart: cfg.Name,
		Index: i,
		Value: slice.Value,
		Color: slice.Color.String(),
	})
}

func (s *Server) lookup(c *gin.Context) (Config, bool) {
	cfg, ok := s.charts[c.Param("name")]
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "chart not found"})
	}
	return cfg, ok
}

func (s *Server) logRequest() gin.HandlerFunc {
	return func(c *gin.Context) {
		now := time.Now()
		c.Next()
		s.logger.Info("request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"elapsed", time.Since(now),
		)
	}
}

func statusOf(err error) int {
	switch {
	case errors.Is(err, charts.ErrNoSliceMatched):
		return http.StatusNotFound
	case errors.Is(err, ErrKind), errors.Is(err, canvas.ErrFormat):
		return http.StatusBadRequest
	case errors.Is(err, charts.ErrDegenerateDataset), errors.Is(err, charts.ErrInvalidValue), errors.Is(err, charts.ErrInvalidDimension):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
