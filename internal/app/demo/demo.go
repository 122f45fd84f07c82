package demo

import (
	"context"
	"fmt"
	"math"
	"math/rand/v2"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"metroems/internal/app/errors"
	"metroems/internal/config"
	"metroems/internal/config/logger"
)

const (
	maxHeaderBytes    = 1 << 20
	readHeaderTimeout = 10 * time.Second
	writeTimeout      = 10 * time.Second
	idleTimeout       = 60 * time.Second
)

const logTimeFormat = "2006-01-02 15:04:05"

// Server is a demo device-session boundary
type Server struct {
	addr        string
	secret      string
	tokenTTL    time.Duration
	failureRate float64
	credentials *credentials
	store       *store
	engine      *gin.Engine
	httpServer  *http.Server
	mu          sync.Mutex
	rng         *rand.Rand
	now         func() time.Time
	log         logger.Logger
}

// NewServer creates a demo server from the configuration
func NewServer(cfg *config.Config, log logger.Logger) *Server {
	//nolint:gosec // weak random is fine for demo readings
	return NewServerWith(cfg, rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())), time.Now, log)
}

// NewServerWith creates a demo server with an explicit random source and clock
func NewServerWith(cfg *config.Config, rng *rand.Rand, now func() time.Time, log logger.Logger) *Server {
	s := &Server{
		addr:        cfg.Demo.Addr,
		secret:      cfg.Demo.Secret,
		tokenTTL:    config.DemoTokenTTL,
		failureRate: cfg.Demo.FailureRate,
		store:       newStore(now()),
		rng:         rng,
		now:         now,
		log:         log.WithComponent("DEMO"),
	}

	if cfg.Demo.Password != "" {
		creds, err := newCredentials(config.DemoUser, cfg.Demo.Password)
		if err != nil {
			s.log.Error().Err(err).Msg("Failed to hash demo password, every login will be rejected")
		}

		s.credentials = creds
	}

	s.engine = s.routes()

	return s
}

// Handler returns the http handler serving the demo endpoints
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Addr returns the configured listen address
func (s *Server) Addr() string {
	return s.addr
}

// Run serves until the context is cancelled, then shuts down gracefully
func (s *Server) Run(ctx context.Context) error {
	listener, err := net.Listen("tcp", s.addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.addr, err)
	}

	return s.Serve(ctx, listener)
}

// Serve serves on the given listener until the context is cancelled
func (s *Server) Serve(ctx context.Context, listener net.Listener) error {
	s.mu.Lock()
	s.httpServer = &http.Server{
		Handler:           s.engine,
		MaxHeaderBytes:    maxHeaderBytes,
		ReadHeaderTimeout: readHeaderTimeout,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       idleTimeout,
	}
	srv := s.httpServer
	s.mu.Unlock()

	s.log.Info().Msgf("Demo backend listening on %s", listener.Addr())

	errCh := make(chan error, 1)

	go func() {
		errCh <- srv.Serve(listener)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}

		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), config.ShutdownTimeout)
		defer cancel()

		return s.Shutdown(shutdownCtx)
	}
}

// Shutdown gracefully stops the server, allowing in-flight requests to complete
func (s *Server) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	srv := s.httpServer
	s.mu.Unlock()

	if srv == nil {
		return nil
	}

	s.log.Info().Msg("Demo backend shutting down")

	return srv.Shutdown(ctx)
}

func (s *Server) routes() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()
	router.Use(gin.Recovery(), s.requestLogger)

	router.GET("/health", s.health)
	router.POST("/auth/login", s.login)

	sessions := router.Group("/device-sessions", s.authMiddleware)
	{
		sessions.GET("/:id", s.withSession(s.session))
		sessions.GET("/:id/configuration", s.withSession(s.configuration))
		sessions.GET("/:id/monitoring", s.withSession(s.flaky(s.monitoring)))
		sessions.GET("/:id/logs", s.withSession(s.flaky(s.logs)))
	}

	return router
}

func (s *Server) requestLogger(c *gin.Context) {
	start := time.Now()
	c.Next()

	s.log.Debug().
		Str("method", c.Request.Method).
		Str("path", c.Request.URL.Path).
		Str("request_id", c.GetHeader("X-Request-ID")).
		Int("status", c.Writer.Status()).
		Dur("elapsed", time.Since(start)).
		Msg("Demo request")
}

type sessionHandler func(c *gin.Context, sess *session)

func (s *Server) withSession(next sessionHandler) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"detail": "Session not found"})
			return
		}

		sess, ok := s.store.get(id)
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"detail": "Session not found"})
			return
		}

		next(c, sess)
	}
}

func (s *Server) flaky(next sessionHandler) sessionHandler {
	return func(c *gin.Context, sess *session) {
		if s.failureRate > 0 && s.float() < s.failureRate {
			c.JSON(http.StatusServiceUnavailable, gin.H{"detail": "Device temporarily unreachable"})
			return
		}

		next(c, sess)
	}
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":                "healthy",
		"backend":               "running",
		"timestamp":             s.now().Format(time.RFC3339),
		"real_device_detection": true,
	})
}

func (s *Server) session(c *gin.Context, sess *session) {
	c.JSON(http.StatusOK, gin.H{
		"session_id": sess.ID,
		"status":     sess.Status,
		"device_info": gin.H{
			"name":        sess.Name,
			"ip_address":  sess.IP,
			"system_name": sess.SystemName,
			"device_type": sess.DeviceType,
			"radio_mode":  sess.RadioMode,
			"bandwidth":   sess.Bandwidth,
			"channel":     sess.Channel,
			"ssid":        sess.SSID,
			"created_at":  sess.CreatedAt.Format(time.RFC3339),
		},
	})
}

func (s *Server) configuration(c *gin.Context, sess *session) {
	uptime := s.now().Sub(sess.CreatedAt).Truncate(time.Second)

	c.JSON(http.StatusOK, gin.H{
		"config": gin.H{
			"systemName": sess.SystemName,
			"ipAddress":  sess.IP,
			"ssid":       sess.SSID,
			"channel":    sess.Channel,
			"bandwidth":  sess.Bandwidth,
			"radioMode":  sess.RadioMode,
			"sysDescr":   "MetroNet " + sess.Name,
			"sysUpTime":  uptime.String(),
		},
	})
}

func (s *Server) monitoring(c *gin.Context, _ *session) {
	c.JSON(http.StatusOK, gin.H{
		"signal_strength": round2(75 + s.jitter(2)),
		"snr":             round2(42 + s.jitter(1.5)),
		"tx_rate":         130 + s.intJitter(5),
		"rx_rate":         110 + s.intJitter(5),
	})
}

func (s *Server) logs(c *gin.Context, _ *session) {
	now := s.now().Format(logTimeFormat)

	samples := []gin.H{
		{"time": now, "type": "INFO", "message": "Health check OK"},
		{"time": now, "type": "INFO", "message": "SNMP poll success"},
		{"time": now, "type": "INFO", "message": "Link stable"},
		{"time": now, "type": "INFO", "message": fmt.Sprintf("Throughput sample tx=%d rx=%d Mbps", 130+s.intJitter(5), 110+s.intJitter(5))},
	}

	if s.float() < 0.1 {
		samples = append(samples, gin.H{"time": now, "type": "WARN", "message": "RSSI below optimal threshold"})
	} else {
		samples = append(samples, gin.H{"time": now, "type": "INFO", "message": "Metrics updated"})
	}

	first, second := s.pair(len(samples))

	c.JSON(http.StatusOK, []gin.H{samples[first], samples[second]})
}

func (s *Server) float() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.rng.Float64()
}

func (s *Server) jitter(amplitude float64) float64 {
	return (s.float()*2 - 1) * amplitude
}

func (s *Server) intJitter(amplitude int) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.rng.IntN(2*amplitude+1) - amplitude
}

// pair picks two distinct indexes below n
func (s *Server) pair(n int) (int, int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	perm := s.rng.Perm(n)

	return perm[0], perm[1]
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
