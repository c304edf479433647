package internal

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/2beens/trainingtracker/internal/cache"
	"github.com/2beens/trainingtracker/internal/cascade"
	"github.com/2beens/trainingtracker/internal/catalog"
	"github.com/2beens/trainingtracker/internal/config"
	"github.com/2beens/trainingtracker/internal/db"
	"github.com/2beens/trainingtracker/internal/httperr"
	"github.com/2beens/trainingtracker/internal/middleware"
	"github.com/2beens/trainingtracker/internal/statistics"
	"github.com/2beens/trainingtracker/internal/store"
	"github.com/2beens/trainingtracker/internal/telemetry/metrics"
	"github.com/2beens/trainingtracker/internal/telemetry/tracing"
	"github.com/2beens/trainingtracker/internal/users"
	"github.com/2beens/trainingtracker/internal/workoutexercises"
	"github.com/2beens/trainingtracker/internal/workouts"
	"github.com/2beens/trainingtracker/pkg"

	"github.com/getsentry/sentry-go"
	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redis_rate/v9"
	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"
)

const defaultWorkoutCacheSizeMB = 16

type Server struct {
	httpServer        *http.Server
	metricsHttpServer *http.Server
	versionInfo       string

	config      *config.Config
	dbPool      *pgxpool.Pool
	gateway     store.Gateway
	redisClient *redis.Client

	// metrics
	metricsManager *metrics.Manager
	promRegistry   *prometheus.Registry
	otelShutdown   func()
}

type NewServerParams struct {
	Config                  *config.Config
	PostgresPassword        string
	RedisPassword           string
	VersionInfo             string
	HoneycombTracingEnabled bool
}

func NewServer(
	ctx context.Context,
	params NewServerParams,
) (*Server, error) {
	cfg := params.Config

	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:         cfg.PostgresHost,
		DBPort:         cfg.PostgresPort,
		DBName:         cfg.PostgresDBName,
		DBUser:         cfg.PostgresUser,
		DBPassword:     params.PostgresPassword,
		MaxConns:       cfg.PostgresMaxConns,
		TracingEnabled: params.HoneycombTracingEnabled,
	})
	if err != nil {
		return nil, fmt.Errorf("new db pool: %w", err)
	}

	if err := dbPool.Ping(ctx); err != nil {
		log.Warnf("failed to ping db: %s", err)
	}

	promRegistry := metrics.SetupPrometheus()
	if err := metrics.RegisterDBPool(promRegistry, dbPool, cfg.PostgresDBName); err != nil {
		dbPool.Close()
		return nil, fmt.Errorf("register db pool collector: %w", err)
	}
	metricsManager := metrics.NewManager("backend", "training_tracker", promRegistry)
	metricsManager.GaugeLifeSignal.Set(0)

	var rdb *redis.Client
	if cfg.RateLimitAllowedPerMin > 0 {
		rdb = redis.NewClient(&redis.Options{
			Addr:     net.JoinHostPort(cfg.RedisHost, cfg.RedisPort),
			Password: params.RedisPassword,
			DB:       0,
		})
		rdbStatus := rdb.Ping(ctx)
		if err := rdbStatus.Err(); err != nil {
			log.Errorf("--> failed to ping redis: %s", err)
		} else {
			log.Debugf("redis ping: %s", rdbStatus.Val())
		}
	} else {
		log.Debugln("request rate limiting disabled")
	}

	otelShutdown, err := tracing.HoneycombSetup(params.HoneycombTracingEnabled, "training-tracker", rdb)
	if err != nil {
		dbPool.Close()
		return nil, err
	}

	s := &Server{
		config:         cfg,
		dbPool:         dbPool,
		gateway:        store.NewRepo(dbPool),
		redisClient:    rdb,
		versionInfo:    params.VersionInfo,
		metricsManager: metricsManager,
		promRegistry:   promRegistry,
		otelShutdown:   otelShutdown,
	}

	if cfg.SeedExercises {
		seeded, err := catalog.NewService(s.gateway).Seed(ctx, catalog.DefaultExercises)
		if err != nil {
			// the catalog can still be filled later, do not refuse to start
			log.Errorf("seed exercise catalog: %s", err)
		} else if seeded > 0 {
			log.Infof("exercise catalog seeded with %d exercises", seeded)
		}
	}

	return s, nil
}

type routerParams struct {
	gateway         store.Gateway
	workoutCache    cache.Cache
	metricsManager  *metrics.Manager
	rateLimiter     middleware.RequestRateLimiter
	rateLimitPerMin int
	versionInfo     string
	healthChecks    map[string]func(ctx context.Context) error
	now             func() time.Time
}

// newRouter wires services and handlers on top of the given gateway. All API
// routes live under /api/<group>.
func newRouter(params routerParams) *mux.Router {
	r := mux.NewRouter()
	r.Use(otelmux.Middleware("training-tracker-router"))

	deleter := cascade.NewDeleter(params.gateway)
	workoutsService := workouts.NewService(
		params.gateway,
		deleter,
		params.workoutCache,
		params.metricsManager.CounterWorkoutCache,
	)
	// cached workouts must not outlive their rows, whichever delete removed them
	deleter.OnRemoved(workoutsService.EvictRemoved)
	deleter.OnRemoved(cascade.CountRemoved(params.metricsManager.CounterCascadeRemoved))

	r.HandleFunc("/health", healthHandler(params.healthChecks, params.versionInfo)).Methods("GET").Name("health")

	api := r.PathPrefix("/api").Subrouter()
	if params.rateLimiter != nil && params.rateLimitPerMin > 0 {
		api.Use(middleware.RateLimit(params.rateLimiter, "api", params.rateLimitPerMin, params.metricsManager))
	}

	users.NewHandler(
		users.NewService(params.gateway, deleter, pkg.HashPassword),
	).SetupRoutes(api.PathPrefix("/Users").Subrouter())

	workouts.NewHandler(workoutsService).
		SetupRoutes(api.PathPrefix("/Workouts").Subrouter())

	workoutexercises.NewHandler(
		workoutexercises.NewService(params.gateway, deleter),
	).SetupRoutes(api.PathPrefix("/WorkoutExercises").Subrouter())

	catalog.NewHandler(
		catalog.NewService(params.gateway),
	).SetupRoutes(api.PathPrefix("/Exercises").Subrouter())

	statistics.NewHandler(
		statistics.NewService(params.gateway, params.now, params.metricsManager.CounterStatsComputed),
	).SetupRoutes(api.PathPrefix("/Statistics").Subrouter())

	r.NotFoundHandler = httperr.Unmatched(r)
	r.MethodNotAllowedHandler = r.NotFoundHandler

	r.Use(middleware.PanicRecovery(params.metricsManager))
	r.Use(middleware.LogRequest())
	r.Use(middleware.RequestMetrics(params.metricsManager))
	r.Use(middleware.DrainAndCloseRequest())

	return r
}

func healthHandler(checks map[string]func(ctx context.Context) error, versionInfo string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
		defer cancel()

		resp := struct {
			Status  string            `json:"status"`
			Version string            `json:"version,omitempty"`
			Checks  map[string]string `json:"checks,omitempty"`
		}{
			Status:  "ok",
			Version: versionInfo,
			Checks:  make(map[string]string, len(checks)),
		}

		status := http.StatusOK
		for name, check := range checks {
			if err := check(ctx); err != nil {
				log.Warnf("health check %s: %s", name, err)
				resp.Checks[name] = err.Error()
				resp.Status = "degraded"
				status = http.StatusServiceUnavailable
				continue
			}
			resp.Checks[name] = "ok"
		}

		pkg.WriteJSON(w, resp, status)
	}
}

func (s *Server) routerSetup() http.Handler {
	sizeMB := s.config.WorkoutCacheSizeMB
	if sizeMB <= 0 {
		sizeMB = defaultWorkoutCacheSizeMB
	}

	params := routerParams{
		gateway:         s.gateway,
		workoutCache:    cache.NewFreeCache(sizeMB*1024*1024, cache.SystemClock{}),
		metricsManager:  s.metricsManager,
		rateLimitPerMin: s.config.RateLimitAllowedPerMin,
		versionInfo:     s.versionInfo,
		healthChecks: map[string]func(ctx context.Context) error{
			"postgres": s.dbPool.Ping,
		},
		now: time.Now,
	}
	if s.redisClient != nil {
		params.rateLimiter = redis_rate.NewLimiter(s.redisClient)
		params.healthChecks["redis"] = func(ctx context.Context) error {
			return s.redisClient.Ping(ctx).Err()
		}
	}

	// preflight requests never match a route, so CORS wraps the whole router
	return middleware.Cors(s.config.CorsAllowedOrigins)(newRouter(params))
}

func (s *Server) Serve(host string, port int) {
	ipAndPort := net.JoinHostPort(host, strconv.Itoa(port))
	s.httpServer = &http.Server{
		Handler:           s.routerSetup(),
		Addr:              ipAndPort,
		WriteTimeout:      time.Minute,
		ReadTimeout:       time.Minute,
		ReadHeaderTimeout: 10 * time.Second,
		ConnState:         s.connStateMetrics,
	}

	metricsRouter := mux.NewRouter()
	metricsRouter.Handle("/metrics", promhttp.InstrumentMetricHandler(
		s.promRegistry,
		promhttp.HandlerFor(s.promRegistry, promhttp.HandlerOpts{}),
	))
	metricsAddr := net.JoinHostPort(s.config.PrometheusMetricsHost, s.config.PrometheusMetricsPort)
	s.metricsHttpServer = &http.Server{
		Addr:              metricsAddr,
		Handler:           metricsRouter,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Infof(" > server listening on: [%s]", ipAndPort)
		err := s.httpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("main service, listen and serve: %s", err)
		}
	}()

	go func() {
		log.Debugf(" > metrics listening on: [%s]", metricsAddr)
		err := s.metricsHttpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("metrics service, listen and serve: %s", err)
		}
	}()

	s.metricsManager.GaugeLifeSignal.Set(1)
}

func (s *Server) GracefulShutdown() {
	log.Debug("graceful shutdown initiated ...")
	s.metricsManager.GaugeLifeSignal.Set(0)

	maxWaitDuration := time.Second * 15
	ctx, timeoutCancel := context.WithTimeout(context.Background(), maxWaitDuration)
	defer timeoutCancel()

	// stop taking requests before closing what they use
	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			log.Errorf(" >>> failed to gracefully shutdown http server: %s", err)
		}
		log.Warnln("server shut down")
	}

	s.otelShutdown()
	log.Trace("otel shut down ...")

	if s.redisClient != nil {
		if err := s.redisClient.Close(); err != nil {
			log.Errorf("failed to close redis client conn: %s", err)
		}
	}

	if s.dbPool != nil {
		log.Debugln("closing db pool ...")
		s.dbPool.Close() // blocking operation
		log.Debugln("db pool closed")
	}

	if ok := sentry.Flush(5 * time.Second); ok {
		log.Debugf("sentry flush ok: %t", ok)
	}

	if s.metricsHttpServer != nil {
		if err := s.metricsHttpServer.Shutdown(ctx); err != nil {
			log.Errorf(" >>> failed to gracefully shutdown metrics http server: %s", err)
		}
		log.Warnln("metrics server shut down")
	}
}

func (s *Server) connStateMetrics(_ net.Conn, state http.ConnState) {
	switch state {
	case http.StateNew:
		s.metricsManager.GaugeRequests.Add(1)
	case http.StateClosed:
		s.metricsManager.GaugeRequests.Add(-1)
	default:
		// do nothing
	}
}
