package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"skybook/cfg"
	"skybook/internal/controller"
	"skybook/internal/poller"
	"skybook/internal/session"
	"skybook/internal/view"
	"skybook/pkg/bookingclient"
	"skybook/pkg/cache"
	"skybook/pkg/idgen"
	"skybook/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.21.0"
	"go.opentelemetry.io/otel/trace"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

func main() {
	// ============
	// config
	// ============
	config, errCfg := cfg.Load()
	if errCfg != nil {
		log.Fatal(errCfg)
	}

	// ============
	// logger
	// ============
	zlogger := logger.NewZeroLog(config.AppEnv)

	// ============
	// Otel
	// ============
	shutdownOtel, err := initOtel(context.Background(), config)
	if err != nil {
		zlogger.Warn("OpenTelemetry init failed, continuing without tracing",
			logger.Field{Key: "error", Value: err.Error()},
		)
		shutdownOtel = func(context.Context) error { return nil }
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownOtel(ctx); err != nil {
			zlogger.Warn("OpenTelemetry shutdown failed",
				logger.Field{Key: "error", Value: err.Error()},
			)
		}
	}()

	// ============
	// Cache
	// ============
	redisAddr := config.RedisConfig.Host + ":" + config.RedisConfig.Port
	redis := cache.NewRedisCache(redisAddr, config.RedisConfig.Password)

	// ============
	// External Service
	// ============
	httpClient := &http.Client{
		Timeout: time.Duration(config.HTTPTimeoutSeconds) * time.Second,
	}
	booking := bookingclient.NewClient(httpClient, config.BookingAPIConfig.BaseURL, zlogger)

	// ============
	// Internal Service
	// ============
	sessions := session.NewManager(redis, config.SessionTTLMinutes, zlogger)
	pollers := poller.NewRegistry(booking.UnreadCount, redis, time.Duration(config.NotifPollSeconds)*time.Second, zlogger)
	renderer, err := view.New(zlogger)
	if err != nil {
		log.Fatalf("Failed to parse templates: %v", err)
	}
	ctl := controller.New(booking, sessions, redis, pollers, renderer, zlogger)

	idGen, err := idgen.NewSnowflakeGenerator(1)
	if err != nil {
		log.Fatalf("Failed to create ID generator: %v", err)
	}

	// ============
	// HTTP
	// ============
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(otelgin.Middleware(config.Observability.ServiceName))
	r.Use(requestIDMiddleware(idGen))
	r.Use(accessLogMiddleware(zlogger))

	ctl.RegisterRoutes(r)

	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", config.AppPort),
		Handler: r,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		zlogger.Info("server listening", logger.Field{Key: "addr", Value: server.Addr})
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	<-ctx.Done()
	zlogger.Info("shutting down")

	pollers.StopAll()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		zlogger.Error("server shutdown failed", logger.Field{Key: "error", Value: err.Error()})
	}
}

// requestIDMiddleware tags every request with a snowflake ID for log
// correlation.
func requestIDMiddleware(gen idgen.Generator) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := strconv.FormatInt(gen.GenerateID(), 10)
		c.Set("request_id", id)
		c.Header("X-Request-ID", id)
		c.Next()
	}
}

// accessLogMiddleware logs each request with its request id and, when
// tracing is active, the trace id.
func accessLogMiddleware(l logger.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		fields := []logger.Field{
			{Key: "request_id", Value: c.GetString("request_id")},
			{Key: "method", Value: c.Request.Method},
			{Key: "path", Value: c.Request.URL.Path},
			{Key: "status", Value: c.Writer.Status()},
			{Key: "duration_ms", Value: time.Since(start).Milliseconds()},
		}
		if span := trace.SpanContextFromContext(c.Request.Context()); span.HasTraceID() {
			fields = append(fields, logger.Field{Key: "trace_id", Value: span.TraceID().String()})
		}
		l.Info("request", fields...)
	}
}

// initOtel initializes the tracer provider with an OTLP exporter.
func initOtel(ctx context.Context, config *cfg.Config) (func(context.Context) error, error) {
	conn, err := grpc.NewClient(
		config.Observability.OTLPEndpoint,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create gRPC connection to collector: %w", err)
	}

	traceExporter, err := otlptracegrpc.New(ctx, otlptracegrpc.WithGRPCConn(conn))
	if err != nil {
		return nil, fmt.Errorf("failed to create trace exporter: %w", err)
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceName(config.Observability.ServiceName),
			semconv.DeploymentEnvironment(config.AppEnv),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create resource: %w", err)
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(traceExporter),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sdktrace.AlwaysSample()),
	)
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.TraceContext{})

	return tp.Shutdown, nil
}
