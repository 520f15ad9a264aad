package logger

// Console configures logging to stdout and stderr.
type Console struct {
	Enabled bool `mapstructure:"enabled" toml:"enabled" json:"enabled"`
	// UseConsoleWriter switches from JSON lines to zerolog's human readable output.
	UseConsoleWriter bool `mapstructure:"use_console_writer" toml:"use_console_writer" json:"useConsoleWriter"`
}

// Rotation configures one rolling log file. Sizes are in megabytes, ages in days.
type Rotation struct {
	Name       string `mapstructure:"name"        toml:"name"        json:"name"`
	MaxSize    int    `mapstructure:"max_size"    toml:"max_size"    json:"maxSize"`
	MaxBackups int    `mapstructure:"max_backups" toml:"max_backups" json:"maxBackups"`
	MaxAge     int    `mapstructure:"max_age"     toml:"max_age"     json:"maxAge"`
}

// LogFile configures file logging, one file per level group.
type LogFile struct {
	Enabled bool   `mapstructure:"enabled" toml:"enabled" json:"enabled"`
	Path    string `mapstructure:"path"    toml:"path"    json:"path"`

	Error Rotation `mapstructure:"error" toml:"error" json:"error"`
	Info  Rotation `mapstructure:"info"  toml:"info"  json:"info"`
	Trace Rotation `mapstructure:"trace" toml:"trace" json:"trace"`
	Warn  Rotation `mapstructure:"warn"  toml:"warn"  json:"warn"`
}

// Log implements the logger config.
type Log struct {
	Level        string `mapstructure:"level"         toml:"level"         json:"level"` // trace, debug, info, warn, error
	AppName      string `mapstructure:"app_name"      toml:"app_name"      json:"appName"`
	ReportCaller bool   `mapstructure:"report_caller" toml:"report_caller" json:"reportCaller"`

	Console Console `mapstructure:"console" toml:"console" json:"console"`
	File    LogFile `mapstructure:"file"    toml:"file"    json:"file"`
}
