package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"

	"beltempo/configs"
	_ "beltempo/docs"
	"beltempo/internal/application/controller"
	"beltempo/internal/application/middleware"
	"beltempo/internal/application/schedule"
	"beltempo/internal/application/view"
	"beltempo/internal/domain/gateway/api"
	"beltempo/internal/domain/gateway/reference"
	"beltempo/internal/domain/gateway/upstream"
	"beltempo/internal/domain/usecase/dashboard"
	"beltempo/internal/domain/usecase/forecast"
	"beltempo/internal/domain/usecase/health"
	"beltempo/internal/domain/usecase/localtime"
	"beltempo/internal/domain/usecase/location"
	"beltempo/internal/domain/usecase/summary"
	"beltempo/internal/infra/database/gorm"
	"beltempo/internal/infra/dataset"
	"beltempo/internal/infra/metrics"
	beltempohttp "beltempo/pkg/http"
	"beltempo/pkg/log"
	"beltempo/pkg/msg"
	"beltempo/pkg/resource"
)

// @title Beltempo API
// @version 1.0
// @description Weather and location dashboard: resolves a place from the caller IP or a typed name and returns forecast, local time and an encyclopedia summary.
// @BasePath /
func main() {
	defer log.Sync()

	env := configs.LoadEnv()
	log.Info(msg.GetMessage("app.start", env.ApplicationName))
	if err := env.Validate(); err != nil {
		log.Fatal(msg.GetMessage("app.config-invalid", err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Init reference data
	referenceGateway := newReferenceGateway(ctx)

	// Init upstream gateways
	geolocationGateway, closeGeolocation := newGeolocationGateway()
	defer closeGeolocation()
	geocodingGateway := api.NewNominatimGeocodingGateway(
		resource.GetString("app.geocoding.url"), clientOptions("geocoding"))
	weatherGateway := api.NewWeatherbitGateway(
		resource.GetString("app.weather.url"),
		resource.GetString("app.weather.host"),
		env.WeatherAPIKey,
		clientOptions("weather"))
	summaryGateway := api.NewWikipediaSummaryGateway(
		resource.GetString("app.summary.url"),
		resource.GetInt("app.summary.max-chars"),
		clientOptions("summary"))

	upstreamGateway := upstream.NewUpstreamHealthGateway(resource.GetDuration("app.http.timeout"))
	for _, prober := range []api.Prober{geolocationGateway, geocodingGateway, weatherGateway, summaryGateway} {
		upstreamGateway.Register(prober)
	}

	// Init UseCase
	locationUseCase := location.NewLocationUseCase(referenceGateway, geolocationGateway, geocodingGateway)
	forecastUseCase := forecast.NewForecastUseCase(weatherGateway)
	localTimeUseCase := localtime.NewLocalTimeUseCase(referenceGateway, dataset.Zones(), resource.GetString("app.timezone.fallback"), nil)
	summaryUseCase := summary.NewSummaryUseCase(summaryGateway)
	dashboardUseCase := dashboard.NewDashboardUseCase(locationUseCase, forecastUseCase, localTimeUseCase, summaryUseCase)
	healthUseCase := health.NewHealthUseCase(referenceGateway, upstreamGateway)

	// Init infra
	e := echo.New()
	e.HideBanner = true
	renderer, err := view.NewRenderer()
	if err != nil {
		log.Fatal(msg.GetMessage("app.config-invalid", err))
	}
	e.Renderer = renderer
	middleware.SetupRequestID(e)
	middleware.SetupRequestLogger(e)
	middleware.SetupMetrics(e)

	root := e.Group(env.ContextPath)
	root.GET("/metrics", echo.WrapHandler(metrics.Handler()))
	root.GET("/swagger/*", echoSwagger.WrapHandler)

	// Init Controller
	dashboardController := controller.NewDashboardController(root, env.ContextPath, dashboardUseCase)
	healthController := controller.NewHealthController(root, healthUseCase)

	// Init Routes
	dashboardController.InitDashboardRoutes()
	healthController.InitHealthRoutes()

	// Init Schedule
	upstreamScheduler := schedule.NewUpstreamScheduler(upstreamGateway, resource.GetString("app.upstream-probe.cron"))
	if err = upstreamScheduler.InitUpstreamScheduleTasks(ctx); err != nil {
		log.Warn(msg.GetMessage("upstream.cron-failed", err))
	}

	// Start Routes
	port := resource.GetString("app.server.port")
	go func() {
		if err := e.Start(":" + port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Server error: %v", err)
		}
	}()
	log.Info(msg.GetMessage("app.started", env.ApplicationName, port))

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err = e.Shutdown(shutdownCtx); err != nil {
		log.Errorf("Shutdown error: %v", err)
	}
}

// newReferenceGateway loads the countries table and serves it from memory, or from PostgreSQL
// when app.reference.source is "postgres".
func newReferenceGateway(ctx context.Context) reference.Gateway {
	path := resource.GetString("app.reference.file-path")
	records, err := dataset.LoadCountries(path)
	if err != nil {
		log.Fatal(msg.GetMessage("reference.failed", err))
	}
	if path == "" {
		path = "embedded"
	}

	if resource.GetString("app.reference.source") != "postgres" {
		log.Info(msg.GetMessage("reference.loaded", path, len(records)))
		return reference.NewFileReferenceGateway(path, records)
	}

	db, err := gorm.Open(gorm.ConfigFromProperties())
	if err != nil {
		log.Fatal(msg.GetMessage("reference.failed", err))
	}
	gateway := reference.NewGormReferenceGateway(db)
	seeded, err := gateway.Seed(ctx, records)
	if err != nil {
		log.Fatal(msg.GetMessage("reference.failed", err))
	}
	log.Info(msg.GetMessage("reference.seeded", seeded))
	return gateway
}

func newGeolocationGateway() (api.GeolocationGateway, func()) {
	if resource.GetString("app.geolocation.provider") == "geoip" {
		gateway, closer, err := api.NewGeoIPGeolocationGateway(resource.GetString("app.geolocation.database-path"))
		if err != nil {
			log.Fatal(msg.GetMessage("app.config-invalid", err))
		}
		return gateway, func() { _ = closer() }
	}
	return api.NewIPAPIGeolocationGateway(resource.GetString("app.geolocation.url"), clientOptions("geolocation")), func() {}
}

func clientOptions(upstreamName string) beltempohttp.ClientOptions {
	return beltempohttp.ClientOptions{
		ReadTimeout:    resource.GetDuration("app.http.timeout"),
		DefaultHeaders: map[string]string{"User-Agent": resource.GetString("app.http.user-agent")},
		Logger:         metrics.NewUpstreamLogger(upstreamName),
	}
}
