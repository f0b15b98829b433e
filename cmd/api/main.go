package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/bradfitz/gomemcache/memcache"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/totegamma/campsite"
	"github.com/totegamma/campsite/core"
	"github.com/totegamma/campsite/x/auth"
	"github.com/totegamma/campsite/x/carousel"
	"github.com/totegamma/campsite/x/door"
	"github.com/totegamma/campsite/x/gallery"
	"github.com/totegamma/campsite/x/instagram"
	"github.com/totegamma/campsite/x/intro"
	"github.com/totegamma/campsite/x/message"
	"github.com/totegamma/campsite/x/pinned"
	"github.com/totegamma/campsite/x/profile"
	"github.com/totegamma/campsite/x/questionnaire"
	"github.com/totegamma/campsite/x/upload"
	"github.com/totegamma/campsite/x/user"
	"github.com/totegamma/campsite/util"

	"github.com/redis/go-redis/extra/redisotel/v9"
	"go.opentelemetry.io/contrib/instrumentation/github.com/labstack/echo/otelecho"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.7.0"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/plugin/opentelemetry/tracing"
)

type CustomHandler struct {
	slog.Handler
}

func (h *CustomHandler) Handle(ctx context.Context, r slog.Record) error {

	r.AddAttrs(slog.String("type", "app"))

	span := trace.SpanFromContext(ctx)
	if span.SpanContext().IsValid() {
		r.AddAttrs(slog.String("traceID", span.SpanContext().TraceID().String()))
		r.AddAttrs(slog.String("spanID", span.SpanContext().SpanID().String()))
	}

	return h.Handler.Handle(ctx, r)
}

var (
	version      = "unknown"
	buildMachine = "unknown"
	buildTime    = "unknown"
	goVersion    = "unknown"
)

func main() {

	handler := &CustomHandler{Handler: slog.NewJSONHandler(os.Stdout, nil)}
	slogger := slog.New(handler)
	slog.SetDefault(slogger)

	if version == "unknown" {
		version = util.GetVersion()
	}
	slog.Info(fmt.Sprintf("Campsite %s (%s) starting...", version, util.GetGitHash()))

	e := echo.New()
	e.HidePort = true
	e.HideBanner = true
	config := Config{}
	configPath := os.Getenv("CAMPSITE_CONFIG")
	if configPath == "" {
		configPath = "/etc/campsite/config.yaml"
	}

	err := config.Load(configPath)
	if err != nil {
		slog.Error("Failed to load config", slog.String("error", err.Error()))
	}

	conconf := core.SetupConfig(config.Campsite)

	slog.Info(fmt.Sprintf("Config loaded! serving: %s", conconf.SiteURL))

	if config.Server.EnableTrace {
		cleanup, err := setupTraceProvider(config.Server.TraceEndpoint, "campsite/api", version)
		if err != nil {
			panic(err)
		}
		defer cleanup()

		skipper := otelecho.WithSkipper(
			func(c echo.Context) bool {
				return c.Path() == "/metrics" || c.Path() == "/health"
			},
		)
		e.Use(otelecho.Middleware("api", skipper))
	}

	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Namespace: "campsite",
		LabelFuncs: map[string]echoprometheus.LabelValueFunc{
			"url": func(c echo.Context, err error) string {
				return "REDACTED"
			},
		},
		Skipper: func(c echo.Context) bool {
			return c.Path() == "/metrics" || c.Path() == "/health"
		},
	}))

	e.Use(middleware.Recover())
	e.Use(middleware.BodyLimit("12M"))

	gormLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             300 * time.Millisecond,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  true,
		},
	)

	db, err := gorm.Open(postgres.Open(config.Server.Dsn), &gorm.Config{
		Logger:         gormLogger,
		TranslateError: true,
	})
	if err != nil {
		panic("failed to connect database")
	}
	sqlDB, err := db.DB() // for pinging
	if err != nil {
		panic("failed to connect database")
	}
	defer sqlDB.Close()

	err = db.Use(tracing.NewPlugin(
		tracing.WithDBName("postgres"),
	))
	if err != nil {
		panic("failed to setup tracing plugin")
	}

	// Migrate the schema
	slog.Info("start migrate")
	err = db.AutoMigrate(
		&core.PinnedImage{},
		&core.CarouselImage{},
		&core.InstagramPost{},
		&core.IntroSectionImage{},
		&core.QuestionnaireLink{},
		&core.Message{},
		&core.User{},
	)
	if err != nil {
		panic("failed to migrate schema")
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     config.Server.RedisAddr,
		Password: "", // no password set
		DB:       config.Server.RedisDB,
	})
	err = redisotel.InstrumentTracing(
		rdb,
		redisotel.WithAttributes(
			attribute.KeyValue{
				Key:   "db.name",
				Value: attribute.StringValue("redis"),
			},
		),
	)
	if err != nil {
		panic("failed to setup tracing plugin")
	}

	mc := memcache.New(config.Server.MemcachedAddr)
	defer mc.Close()

	mongoCtx, mongoCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer mongoCancel()
	mongoClient, err := mongo.Connect(mongoCtx, options.Client().ApplyURI(config.Server.MongoURI))
	if err != nil {
		panic("failed to connect mongo")
	}
	defer mongoClient.Disconnect(context.Background())
	mdb := mongoClient.Database(config.Server.MongoDB)

	minioClient, err := minio.New(config.Server.MinioEndpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(config.Server.MinioAccessKey, config.Server.MinioSecretKey, ""),
		Secure: config.Server.MinioUseSSL,
	})
	if err != nil {
		panic("failed to setup object storage client")
	}
	err = upload.NewRepository(minioClient, conconf).EnsureBucket(mongoCtx)
	if err != nil {
		slog.Error("failed to ensure upload bucket", slog.String("error", err.Error()))
	}

	authService := campsite.SetupAuthService(rdb, conconf)
	authHandler := auth.NewHandler(campsite.SetupSessionService(rdb, conconf))

	pinnedService := campsite.SetupPinnedService(db, mc)
	keyvisualHandler := pinned.NewHandler(pinnedService, core.SlotKeyVisual)
	scheduleHandler := pinned.NewHandler(pinnedService, core.SlotSchedule)

	carouselService := campsite.SetupCarouselService(db)
	carouselHandler := carousel.NewHandler(carouselService)

	instagramService := campsite.SetupInstagramService(db, conconf)
	instagramHandler := instagram.NewHandler(instagramService)

	introService := campsite.SetupIntroService(db)
	introHandler := intro.NewHandler(introService)

	questionnaireService := campsite.SetupQuestionnaireService(db)
	questionnaireHandler := questionnaire.NewHandler(questionnaireService)

	doorService := campsite.SetupDoorService(db, conconf)
	doorHandler := door.NewHandler(doorService)

	messageService, err := campsite.SetupMessageService(db, rdb, conconf)
	if err != nil {
		panic(err)
	}
	messageHandler := message.NewHandler(messageService)

	galleryService := campsite.SetupGalleryService(mdb)
	galleryHandler := gallery.NewHandler(galleryService)

	uploadService := campsite.SetupUploadService(minioClient, conconf)
	uploadHandler := upload.NewHandler(uploadService)

	userService := campsite.SetupUserService(db)
	userHandler := user.NewHandler(userService)

	campProfile := config.Profile
	campProfile.Version = version
	campProfile.BuildInfo = core.BuildInfo{
		BuildTime:    buildTime,
		BuildMachine: buildMachine,
		GoVersion:    goVersion,
	}
	campProfile.SiteKey = config.Server.CaptchaSitekey
	profileHandler := profile.NewHandler(campProfile, conconf)

	api := e.Group("/api", authService.IdentifyIdentity)

	// carousel
	api.GET("/carousel", carouselHandler.List)
	api.POST("/carousel", carouselHandler.Create, auth.Restrict(auth.ISADMIN))
	api.PUT("/carousel", carouselHandler.Update, auth.Restrict(auth.ISADMIN))
	api.DELETE("/carousel", carouselHandler.Delete, auth.Restrict(auth.ISADMIN))

	// pinned
	api.GET("/keyvisual", keyvisualHandler.Get)
	api.POST("/keyvisual", keyvisualHandler.Replace, auth.Restrict(auth.ISADMIN))
	api.DELETE("/keyvisual", keyvisualHandler.Clear, auth.Restrict(auth.ISADMIN))
	api.GET("/schedule", scheduleHandler.Get)
	api.POST("/schedule", scheduleHandler.Replace, auth.Restrict(auth.ISADMIN))
	api.DELETE("/schedule", scheduleHandler.Clear, auth.Restrict(auth.ISADMIN))

	// instagram
	api.GET("/instagram", instagramHandler.List)
	api.POST("/instagram", instagramHandler.Create, auth.Restrict(auth.ISADMIN))
	api.PUT("/instagram", instagramHandler.Update, auth.Restrict(auth.ISADMIN))
	api.DELETE("/instagram", instagramHandler.Delete, auth.Restrict(auth.ISADMIN))

	// intro
	api.GET("/intro-section-images", introHandler.List)
	api.POST("/intro-section-images", introHandler.Upsert, auth.Restrict(auth.ISADMIN))
	api.DELETE("/intro-section-images", introHandler.Delete, auth.Restrict(auth.ISADMIN))

	// questionnaire
	api.GET("/questionnaire", questionnaireHandler.List)
	api.POST("/questionnaire", questionnaireHandler.Upsert, auth.Restrict(auth.ISADMIN))
	api.PUT("/questionnaire", questionnaireHandler.Upsert, auth.Restrict(auth.ISADMIN))
	api.GET("/doors", doorHandler.Status)

	// message
	api.GET("/messages", messageHandler.List)
	api.POST("/messages", messageHandler.Post)
	api.DELETE("/messages", messageHandler.Delete)
	api.GET("/messages/export", messageHandler.Export)

	// gallery
	api.GET("/gallery", galleryHandler.List)
	api.POST("/gallery", galleryHandler.Create, auth.Restrict(auth.ISADMIN))
	api.PUT("/gallery", galleryHandler.Update, auth.Restrict(auth.ISADMIN))
	api.DELETE("/gallery", galleryHandler.Delete, auth.Restrict(auth.ISADMIN))

	// upload
	api.POST("/upload", uploadHandler.Upload, auth.Restrict(auth.ISADMIN))

	// user
	api.GET("/user-id", userHandler.Get, auth.Restrict(auth.ISKNOWN))
	api.POST("/user-id", userHandler.Set, auth.Restrict(auth.ISKNOWN))

	// auth
	api.GET("/auth/session", authHandler.Session)
	api.POST("/auth/logout", authHandler.Logout, auth.Restrict(auth.ISKNOWN))

	// misc
	api.GET("/profile", profileHandler.Get)

	e.GET("/health", func(c echo.Context) (err error) {
		ctx := c.Request().Context()

		err = sqlDB.Ping()
		if err != nil {
			return c.String(http.StatusInternalServerError, "db error")
		}

		err = rdb.Ping(ctx).Err()
		if err != nil {
			return c.String(http.StatusInternalServerError, "redis error")
		}

		err = mongoClient.Ping(ctx, nil)
		if err != nil {
			return c.String(http.StatusInternalServerError, "mongo error")
		}

		return c.String(http.StatusOK, "ok")
	})

	var resourceCountMetrics = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "campsite_resources_count",
			Help: "resources count",
		},
		[]string{"type"},
	)
	prometheus.MustRegister(resourceCountMetrics)

	counters := map[string]func(context.Context) (int64, error){
		"carousel":  carouselService.Count,
		"instagram": instagramService.Count,
		"message":   messageService.Count,
		"gallery":   galleryService.Count,
	}

	go func() {
		for {
			time.Sleep(15 * time.Second)
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			for name, count := range counters {
				n, err := count(ctx)
				if err != nil {
					slog.Error(fmt.Sprintf("failed to count %s: %v", name, err))
					continue
				}
				resourceCountMetrics.WithLabelValues(name).Set(float64(n))
			}
			cancel()
		}
	}()

	e.GET("/metrics", echoprometheus.NewHandler())

	e.Logger.Fatal(e.Start(":8000"))
}

func setupTraceProvider(endpoint string, serviceName string, serviceVersion string) (func(), error) {

	exporter, err := otlptracehttp.New(
		context.Background(),
		otlptracehttp.WithEndpoint(endpoint),
		otlptracehttp.WithInsecure(),
	)

	if err != nil {
		return nil, err
	}

	resource := resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceNameKey.String(serviceName),
		semconv.ServiceVersionKey.String(serviceVersion),
	)

	tracerProvider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithSampler(sdktrace.AlwaysSample()),
		sdktrace.WithResource(resource),
	)
	otel.SetTracerProvider(tracerProvider)

	propagator := propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	)
	otel.SetTextMapPropagator(propagator)

	cleanup := func() {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		if err := tracerProvider.Shutdown(ctx); err != nil {
			slog.Error(fmt.Sprintf("Failed to shutdown tracer provider: %v", err))
		}
	}
	return cleanup, nil
}
