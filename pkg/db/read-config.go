package db

import (
	"fmt"
	"net/url"
	"time"
)

const (
	defaultAppName     = "case-forms"
	defaultTimeout     = 30
	defaultMaxPoolSize = 8
)

// DBConfigFromYamlObj builds the connection settings from the yaml section of a service config.
// Credentials are optional so a local, unauthenticated mongo can be used during development.
func DBConfigFromYamlObj(yamlObj DBConfigYaml) DBConfig {
	var uri string
	if yamlObj.Username != "" {
		uri = fmt.Sprintf(`mongodb%s://%s:%s@%s`,
			yamlObj.ConnectionPrefix,
			url.QueryEscape(yamlObj.Username),
			url.QueryEscape(yamlObj.Password),
			yamlObj.ConnectionStr,
		)
	} else {
		uri = fmt.Sprintf(`mongodb%s://%s`, yamlObj.ConnectionPrefix, yamlObj.ConnectionStr)
	}

	appName := yamlObj.AppName
	if appName == "" {
		appName = defaultAppName
	}
	timeout := yamlObj.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	maxPoolSize := yamlObj.MaxPoolSize
	if maxPoolSize <= 0 {
		maxPoolSize = defaultMaxPoolSize
	}

	return DBConfig{
		URI:              uri,
		AppName:          appName,
		DBNamePrefix:     yamlObj.DBNamePrefix,
		Timeout:          time.Duration(timeout) * time.Second,
		IdleConnTimeout:  time.Duration(yamlObj.IdleConnTimeout) * time.Second,
		MaxPoolSize:      uint64(maxPoolSize),
		NoCursorTimeout:  yamlObj.UseNoCursorTimeout,
		RunIndexCreation: yamlObj.RunIndexCreation,
	}
}
