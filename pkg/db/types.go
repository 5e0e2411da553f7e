package db

import "time"

// DBConfig holds the resolved connection settings for one Mongo database service.
type DBConfig struct {
	URI              string
	AppName          string
	DBNamePrefix     string
	Timeout          time.Duration
	IdleConnTimeout  time.Duration
	MaxPoolSize      uint64
	NoCursorTimeout  bool
	RunIndexCreation bool
}

// DBConfigYaml is the db section of a service config file. Timeouts are in seconds.
type DBConfigYaml struct {
	ConnectionStr      string `yaml:"connection_str"`
	ConnectionPrefix   string `yaml:"connection_prefix"`
	Username           string `yaml:"username"`
	Password           string `yaml:"password"`
	AppName            string `yaml:"app_name"`
	Timeout            int    `yaml:"timeout"`
	IdleConnTimeout    int    `yaml:"idle_conn_timeout"`
	MaxPoolSize        int    `yaml:"max_pool_size"`
	UseNoCursorTimeout bool   `yaml:"use_no_cursor_timeout"`
	DBNamePrefix       string `yaml:"db_name_prefix"`
	RunIndexCreation   bool   `yaml:"run_index_creation"`
}
