// Package app 提供应用程序的初始化和启动.
package app

import (
	contextPkg "context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/chrisgzf/cadet/pkg/api"
	"github.com/chrisgzf/cadet/pkg/configs"
	"github.com/chrisgzf/cadet/pkg/internal/jobs"
	"github.com/chrisgzf/cadet/pkg/internal/storage"
	"github.com/chrisgzf/cadet/pkg/log"
	"github.com/chrisgzf/cadet/pkg/metrics"
	"github.com/chrisgzf/cadet/pkg/middleware"
	"github.com/chrisgzf/cadet/pkg/scheduler"
	"github.com/chrisgzf/cadet/pkg/tracing"
)

type App struct {
	Engine  *gin.Engine
	config  *configs.AppConfig
	manager *storage.Manager
	sched   *scheduler.Scheduler
}

func NewApp(configPath string) *App {
	ctx := contextPkg.Background()
	engine := gin.New()

	// 初始化配置
	if err := configs.InitConfig(configPath); err != nil {
		fmt.Printf("Error initializing config: %v\n", err)
		os.Exit(1)
	}

	// 初始化追踪
	config := configs.GetConfig()
	if err := tracing.InitTracer(config.Tracing); err != nil {
		fmt.Printf("Error initializing tracing: %v\n", err)
		os.Exit(1)
	}

	// 初始化监控
	if err := metrics.InitMetrics(config.Metrics); err != nil {
		fmt.Printf("Error initializing metrics: %v\n", err)
		os.Exit(1)
	}

	manager, err := storage.Init(ctx)
	if err != nil {
		fmt.Printf("Error initializing storage: %v\n", err)
		os.Exit(1)
	}

	l := log.Logger()
	gin.DefaultWriter = log.NewGinWriter(l, zerolog.InfoLevel)
	gin.DefaultErrorWriter = log.NewGinWriter(l, zerolog.ErrorLevel)

	// 后台任务：孤儿对象扫描等
	var sched *scheduler.Scheduler
	if config.Jobs.Enabled {
		sched, err = scheduler.NewScheduler()
		if err != nil {
			fmt.Printf("Error initializing scheduler: %v\n", err)
			os.Exit(1)
		}

		if err := jobs.RegisterCronJobs(sched, manager, config.Jobs.OrphanSweepCron); err != nil {
			fmt.Printf("Error registering cron jobs: %v\n", err)
			os.Exit(1)
		}

		sched.Start()
	}

	engine.Use(
		gin.Recovery(),
		gzip.Gzip(gzip.DefaultCompression),
		middleware.GinLoggerMiddleware(),
		middleware.CORSMiddleware(config.Server),
		middleware.AuthMiddleware(config.Auth),
		middleware.ActorMiddleware(),
		middleware.TracingMiddleware(),
		middleware.PrometheusMiddleware(),
		middleware.RateLimitMiddleware(config.RateLimit),
		middleware.CircuitBreakerMiddleware(config.CircuitBreaker),
		middleware.StorageMiddleware(manager),
	)

	if sched != nil {
		engine.Use(middleware.SchedulerMiddleware(sched))
	}

	if config.Metrics.Enabled {
		_ = metrics.StartMetricsServer(config.Metrics, engine)
	}

	api.RegisterRoutes(engine, manager)

	return &App{
		Engine:  engine,
		config:  config,
		manager: manager,
		sched:   sched,
	}
}

// Run 启动HTTP服务并阻塞到收到退出信号，随后优雅关停.
func (a *App) Run() error {
	l := log.Logger()

	srv := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", a.config.Server.Host, a.config.Server.Port),
		Handler:           a.Engine,
		ReadHeaderTimeout: a.config.Server.GetTimeoutDuration(),
	}

	errCh := make(chan error, 1)

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	l.Info().Str("addr", srv.Addr).Msg("catalog service listening")

	ctx, stop := signal.NotifyContext(contextPkg.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	l.Info().Msg("shutting down")

	shutdownCtx, cancel := contextPkg.WithTimeout(contextPkg.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		l.Error().Err(err).Msg("http server shutdown failed")
	}

	if a.sched != nil {
		if err := a.sched.Stop(); err != nil {
			l.Error().Err(err).Msg("scheduler shutdown failed")
		}
	}

	if err := a.manager.Close(); err != nil {
		l.Error().Err(err).Msg("storage shutdown failed")
	}

	if err := tracing.ShutdownTracer(shutdownCtx); err != nil {
		l.Error().Err(err).Msg("tracer shutdown failed")
	}

	return nil
}
