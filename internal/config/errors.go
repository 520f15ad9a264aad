package config

import (
	"errors"
)

var (
	// ErrEmptyTitle error if config title is empty.
	ErrEmptyTitle = errors.New("toml config title can not be empty")

	// ErrEmptyLogAppName error if config log.app_name is empty.
	ErrEmptyLogAppName = errors.New("toml config log.app_name can not be empty")

	// ErrNoLogWriter error if neither console nor file logging is enabled.
	ErrNoLogWriter = errors.New("toml config needs log.console or log.file enabled")
)
