package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/case-framework/case-forms/pkg/apihelpers"
	"github.com/case-framework/case-forms/pkg/db"
	"github.com/case-framework/case-forms/pkg/monitoring"
	"github.com/case-framework/case-forms/pkg/storage"
	"github.com/case-framework/case-forms/pkg/utils"
	"github.com/gin-gonic/gin"
	"gopkg.in/yaml.v2"

	formsDB "github.com/case-framework/case-forms/pkg/db/forms"
)

// Environment variables
const (
	ENV_CONFIG_FILE_PATH = "CONFIG_FILE_PATH"

	// Variables to override "secrets" in the config file
	ENV_FORMS_DB_USERNAME = "FORMS_DB_USERNAME"
	ENV_FORMS_DB_PASSWORD = "FORMS_DB_PASSWORD"

	ENV_MINIO_ACCESS_KEY = "MINIO_ACCESS_KEY"
	ENV_MINIO_SECRET_KEY = "MINIO_SECRET_KEY"

	ENV_FORMS_API_KEYS = "FORMS_API_KEYS"
)

const (
	defaultPort                 = "5000"
	defaultSubmissionsPerWindow = 30
	defaultRateLimitWindow      = time.Minute
)

type FormsApiConfig struct {
	// Logging configs
	Logging utils.LoggerConfig `json:"logging" yaml:"logging"`

	// Gin configs
	GinConfig struct {
		DebugMode    bool     `json:"debug_mode" yaml:"debug_mode"`
		AllowOrigins []string `json:"allow_origins" yaml:"allow_origins"`
		Port         string   `json:"port" yaml:"port"`

		// Mutual TLS configs
		MTLS struct {
			Use              bool                        `json:"use" yaml:"use"`
			CertificatePaths apihelpers.CertificatePaths `json:"certificate_paths" yaml:"certificate_paths"`
		} `json:"mtls" yaml:"mtls"`

		// Keys accepted in the Api-Key header for authoring routes. Empty leaves them open.
		AuthorAPIKeys []string `json:"author_api_keys" yaml:"author_api_keys"`
	} `json:"gin_config" yaml:"gin_config"`

	// DB configs
	DBConfigs struct {
		FormsDB db.DBConfigYaml `json:"forms_db" yaml:"forms_db"`
	} `json:"db_configs" yaml:"db_configs"`

	Validation struct {
		// nil means enabled
		EnforceOnSave *bool `json:"enforce_on_save" yaml:"enforce_on_save"`
	} `json:"validation" yaml:"validation"`

	RateLimit struct {
		Submissions int    `json:"submissions" yaml:"submissions"`
		Window      string `json:"window" yaml:"window"`
	} `json:"rate_limit" yaml:"rate_limit"`

	Storage storage.Config `json:"storage" yaml:"storage"`

	Metrics struct {
		Enabled bool `json:"enabled" yaml:"enabled"`
	} `json:"metrics" yaml:"metrics"`
}

var (
	formsDBService  *formsDB.FormsDBService
	storageProvider storage.Provider
)

func init() {
	// Read config from file
	yamlFile, err := os.ReadFile(os.Getenv(ENV_CONFIG_FILE_PATH))
	if err != nil {
		panic(err)
	}

	err = yaml.UnmarshalStrict(yamlFile, &conf)
	if err != nil {
		panic(err)
	}

	// Init logger:
	utils.InitLogger(conf.Logging)

	// Override secrets from environment variables
	secretsOverride()

	if conf.GinConfig.Port == "" {
		conf.GinConfig.Port = defaultPort
	}

	// Init DBs
	initDBs()

	if !conf.GinConfig.DebugMode {
		gin.SetMode(gin.ReleaseMode)
	}

	initStorage()

	if conf.Metrics.Enabled {
		monitoring.Init()
	}
}

func secretsOverride() {
	utils.OverrideFromEnv(&conf.DBConfigs.FormsDB.Username, ENV_FORMS_DB_USERNAME)
	utils.OverrideFromEnv(&conf.DBConfigs.FormsDB.Password, ENV_FORMS_DB_PASSWORD)

	utils.OverrideFromEnv(&conf.Storage.MinioAccessKey, ENV_MINIO_ACCESS_KEY)
	utils.OverrideFromEnv(&conf.Storage.MinioSecretKey, ENV_MINIO_SECRET_KEY)

	if keys := utils.ListFromEnv(ENV_FORMS_API_KEYS); len(keys) > 0 {
		conf.GinConfig.AuthorAPIKeys = keys
	}
}

func initDBs() {
	var err error
	formsDBService, err = formsDB.NewFormsDBService(db.DBConfigFromYamlObj(conf.DBConfigs.FormsDB))
	if err != nil {
		slog.Error("Error connecting to Forms DB", slog.String("error", err.Error()))
		panic(err)
	}
}

func initStorage() {
	var err error
	storageProvider, err = storage.NewProvider(conf.Storage)
	if err != nil {
		slog.Error("Error initializing file storage", slog.String("type", conf.Storage.Type), slog.String("error", err.Error()))
		panic(err)
	}

	switch p := storageProvider.(type) {
	case *storage.MinioProvider:
		if err := p.EnsureBucket(context.Background()); err != nil {
			slog.Error("Error preparing storage bucket", slog.String("error", err.Error()))
			panic(err)
		}
	case *storage.LocalProvider:
		if p.BasePath() == "" {
			slog.Warn("no local_path configured for file storage, header image uploads are disabled")
			storageProvider = nil
			return
		}
		if err := os.MkdirAll(p.BasePath(), os.ModePerm); err != nil {
			slog.Error("Error creating upload directory", slog.String("path", p.BasePath()), slog.String("error", err.Error()))
			panic(err)
		}
	}
}

func enforceValidationOnSave() bool {
	if conf.Validation.EnforceOnSave == nil {
		return true
	}
	return *conf.Validation.EnforceOnSave
}
