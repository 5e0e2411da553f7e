package utils

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"
	"gopkg.in/yaml.v2"
)

const (
	buildInfoFilename = "build-info.yaml"
	buildInfoPrefix   = "build."
	modulePath        = "github.com/case-framework/case-forms"
)

type BuildInfoMode int

const (
	BuildInfoNever BuildInfoMode = iota
	BuildInfoOnce
	BuildInfoAlways
)

type LoggerConfig struct {
	LogToFile        bool   `json:"log_to_file" yaml:"log_to_file"`
	Filename         string `json:"filename" yaml:"filename"`
	MaxSize          int    `json:"max_size" yaml:"max_size"`
	MaxAge           int    `json:"max_age" yaml:"max_age"`
	MaxBackups       int    `json:"max_backups" yaml:"max_backups"`
	LogLevel         string `json:"log_level" yaml:"log_level"`
	IncludeSrc       bool   `json:"include_src" yaml:"include_src"`
	CompressOldLogs  bool   `json:"compress_old_logs" yaml:"compress_old_logs"`
	IncludeBuildInfo string `json:"include_build_info" yaml:"include_build_info"` // never, always, once
}

// InitLogger installs a JSON slog logger as default, optionally teeing into a rotated file.
func InitLogger(conf LoggerConfig) {
	mode := getBuildInfoMode(conf.IncludeBuildInfo)

	var buildInfoAttrs []slog.Attr
	if mode != BuildInfoNever {
		attrs, err := loadBuildInfoAsSlogAttrs(buildInfoFilename, buildInfoPrefix)
		if err != nil {
			fmt.Fprintf(os.Stderr, "build info not available: %v\n", err)
			mode = BuildInfoNever
		}
		buildInfoAttrs = attrs
	}

	opts := &slog.HandlerOptions{
		Level:     logLevelFromString(conf.LogLevel),
		AddSource: conf.IncludeSrc,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.SourceKey {
				if source, _ := a.Value.Any().(*slog.Source); source != nil {
					source.File = filepath.Base(source.File)
					source.Function = strings.TrimPrefix(source.Function, modulePath)
				}
			}
			return a
		},
	}

	var w io.Writer = os.Stdout
	if conf.LogToFile && conf.Filename != "" {
		w = io.MultiWriter(os.Stdout, &lumberjack.Logger{
			Filename:   conf.Filename,
			MaxSize:    conf.MaxSize, // megabytes
			MaxAge:     conf.MaxAge,  // days
			MaxBackups: conf.MaxBackups,
			Compress:   conf.CompressOldLogs,
		})
	}

	logger := slog.New(slog.NewJSONHandler(w, opts))
	if mode == BuildInfoAlways {
		for _, attr := range buildInfoAttrs {
			logger = logger.With(attr)
		}
	}
	slog.SetDefault(logger)

	if mode == BuildInfoOnce {
		attrs := make([]any, len(buildInfoAttrs))
		for i, attr := range buildInfoAttrs {
			attrs[i] = attr
		}
		slog.Info("Build info", attrs...)
	}
}

func logLevelFromString(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}

func getBuildInfoMode(includeBuildInfo string) BuildInfoMode {
	switch includeBuildInfo {
	case "always":
		return BuildInfoAlways
	case "once":
		return BuildInfoOnce
	}
	return BuildInfoNever
}

func loadBuildInfoAsSlogAttrs(filename, prefix string) ([]slog.Attr, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	buildInfo := map[string]string{}
	if err := yaml.Unmarshal(data, &buildInfo); err != nil {
		return nil, err
	}

	attrs := make([]slog.Attr, 0, len(buildInfo))
	for k, v := range buildInfo {
		attrs = append(attrs, slog.String(prefix+k, v))
	}
	return attrs, nil
}
