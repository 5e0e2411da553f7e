package main

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/case-framework/case-forms/pkg/apihelpers"
	mw "github.com/case-framework/case-forms/pkg/apihelpers/middlewares"
	"github.com/case-framework/case-forms/pkg/monitoring"
	"github.com/case-framework/case-forms/pkg/storage"
	"github.com/case-framework/case-forms/pkg/utils"
	"github.com/case-framework/case-forms/services/forms-api/apihandlers"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

var conf FormsApiConfig

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	defer formsDBService.Close()

	window, err := utils.ParseDurationString(conf.RateLimit.Window, defaultRateLimitWindow)
	if err != nil || window <= 0 {
		slog.Error("Invalid rate limit window", slog.String("window", conf.RateLimit.Window))
		return
	}
	maxSubmissions := conf.RateLimit.Submissions
	if maxSubmissions <= 0 {
		maxSubmissions = defaultSubmissionsPerWindow
	}
	submissionLimiter := mw.NewRateLimiter(ctx, maxSubmissions, window)

	// Start webserver
	router := gin.Default()
	router.Use(cors.New(cors.Config{
		AllowOrigins:     conf.GinConfig.AllowOrigins,
		AllowMethods:     []string{"POST", "GET", "PUT", "DELETE"},
		AllowHeaders:     []string{"Origin", "Api-Key", "Content-Type", "Content-Length"},
		ExposeHeaders:    []string{"Content-Type", "Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	if conf.Metrics.Enabled {
		router.Use(monitoring.MetricsMiddleware())
		router.GET("/metrics", monitoring.PrometheusHandler())
	}

	if local, ok := storageProvider.(*storage.LocalProvider); ok {
		router.Static("/uploads", local.BasePath())
	}

	// Add handlers
	router.GET("/api/health", apihandlers.HealthCheckHandle)
	apiRoot := router.Group("/api")

	apiHandlers := apihandlers.NewHTTPHandler(
		formsDBService,
		storageProvider,
		conf.GinConfig.AuthorAPIKeys,
		enforceValidationOnSave(),
		conf.Storage.MaxUploadSize,
		submissionLimiter,
	)
	apiHandlers.AddFormsAPI(apiRoot)
	apiHandlers.AddResponsesAPI(apiRoot)
	apiHandlers.AddUploadsAPI(apiRoot)

	if conf.GinConfig.DebugMode {
		if err := apihelpers.WriteRoutesToFile(router, "forms-api-routes.txt"); err != nil {
			slog.Warn("could not write routes file", slog.String("error", err.Error()))
		}
	}

	// Start the server
	slog.Info("Starting Forms API on port " + conf.GinConfig.Port)
	if !conf.GinConfig.MTLS.Use {
		err := router.Run(":" + conf.GinConfig.Port)
		if err != nil {
			slog.Error("Exited Forms API", slog.String("error", err.Error()))
			return
		}
	} else {
		// Create tls config for mutual TLS
		tlsConfig, err := apihelpers.LoadTLSConfig(conf.GinConfig.MTLS.CertificatePaths)
		if err != nil {
			slog.Error("Error loading TLS config.", slog.String("error", err.Error()))
			return
		}

		server := &http.Server{
			Addr:      ":" + conf.GinConfig.Port,
			Handler:   router,
			TLSConfig: tlsConfig,
		}

		err = server.ListenAndServeTLS(conf.GinConfig.MTLS.CertificatePaths.ServerCertPath, conf.GinConfig.MTLS.CertificatePaths.ServerKeyPath)
		if err != nil {
			slog.Error("Exited Forms API", slog.String("error", err.Error()))
			return
		}
	}
}
