package main

import (
	"fmt"
	"log/slog"
	"os"
	"slices"
	"time"

	"github.com/case-framework/case-forms/pkg/db"
	"github.com/case-framework/case-forms/pkg/utils"
	"gopkg.in/yaml.v2"

	formresponses "github.com/case-framework/case-forms/pkg/exporter/form-responses"

	formsDB "github.com/case-framework/case-forms/pkg/db/forms"
)

// Environment variables
const (
	ENV_CONFIG_FILE_PATH = "CONFIG_FILE_PATH"

	// Variables to override "secrets" in the config file
	ENV_FORMS_DB_USERNAME = "FORMS_DB_USERNAME"
	ENV_FORMS_DB_PASSWORD = "FORMS_DB_PASSWORD"
)

type config struct {
	// Logging configs
	Logging utils.LoggerConfig `json:"logging" yaml:"logging"`

	// DB configs
	DBConfigs struct {
		FormsDB db.DBConfigYaml `json:"forms_db" yaml:"forms_db"`
	} `json:"db_configs" yaml:"db_configs"`

	ExportPath string `json:"export_path" yaml:"export_path"`

	ResponseExports struct {
		FormIDs       []string `json:"form_ids" yaml:"form_ids"` // empty exports every form
		ExportFormat  string   `json:"export_format" yaml:"export_format"`
		Separator     string   `json:"separator" yaml:"separator"`
		Since         string   `json:"since" yaml:"since"` // e.g. "7d", empty for all responses
		RetentionDays int      `json:"retention_days" yaml:"retention_days"`
		OverrideOld   bool     `json:"override_old" yaml:"override_old"`
	} `json:"response_exports" yaml:"response_exports"`
}

var conf config

var (
	formsDBService *formsDB.FormsDBService
	exportWindow   time.Duration
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

	if err := checkExportConfig(); err != nil {
		slog.Error("Error reading config", slog.String("error", err.Error()))
		panic(err)
	}

	// init db
	initDBs()

	if _, err := os.Stat(conf.ExportPath); os.IsNotExist(err) {
		err = os.MkdirAll(conf.ExportPath, os.ModePerm)
		if err != nil {
			slog.Error("Error creating export path", slog.String("error", err.Error()))
			panic(err)
		}
		slog.Info("Created export path", slog.String("path", conf.ExportPath))
	}
}

func checkExportConfig() error {
	if conf.ExportPath == "" {
		return fmt.Errorf("export path must be set to define where to store the export files")
	}
	if conf.ResponseExports.RetentionDays < 1 {
		return fmt.Errorf("retention days must be greater than 0")
	}

	if conf.ResponseExports.ExportFormat == "" {
		conf.ResponseExports.ExportFormat = formresponses.FORMAT_WIDE
	}
	if !slices.Contains(formresponses.Formats, conf.ResponseExports.ExportFormat) {
		return fmt.Errorf("unsupported export format: %s", conf.ResponseExports.ExportFormat)
	}
	if conf.ResponseExports.Separator == "" {
		conf.ResponseExports.Separator = formresponses.DEFAULT_QUESTION_OPTION_SEP
	}

	window, err := utils.ParseDurationString(conf.ResponseExports.Since, 0)
	if err != nil {
		return err
	}
	exportWindow = window
	return nil
}

func secretsOverride() {
	utils.OverrideFromEnv(&conf.DBConfigs.FormsDB.Username, ENV_FORMS_DB_USERNAME)
	utils.OverrideFromEnv(&conf.DBConfigs.FormsDB.Password, ENV_FORMS_DB_PASSWORD)
}

func initDBs() {
	var err error
	formsDBService, err = formsDB.NewFormsDBService(db.DBConfigFromYamlObj(conf.DBConfigs.FormsDB))
	if err != nil {
		slog.Error("Error connecting to Forms DB", slog.String("error", err.Error()))
		panic(err)
	}
}
