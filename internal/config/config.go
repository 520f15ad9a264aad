// Package config handles input from etc/*.toml files
package config

import (
	"bytes"
	"encoding/json"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

const (
	// EnvPrefix prefixes environment overrides of single keys, e.g. STORIES_LOG_LEVEL.
	EnvPrefix = "STORIES"
	// EnvJSON holds a JSON document merged over the whole config.
	EnvJSON = "STORIES_CONFIG_JSON"
)

// ReadConfig reads <path>main.toml, applies environment overrides and validates the result.
func ReadConfig(path string) (Config, error) {
	if path == "" {
		path = "./etc/"
	}

	v := viper.New()
	v.SetConfigFile(path + "main.toml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return Config{}, errors.Wrap(err, "failed to read main config file")
	}

	var c Config

	if err := v.Unmarshal(&c); err != nil {
		return Config{}, errors.Wrap(err, "failed to decode main config file")
	}

	if raw := os.Getenv(EnvJSON); raw != "" {
		var err error

		if c, err = decodeAndMergeConfig(c, raw); err != nil {
			return c, err
		}
	}

	return c, validate(&c)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("title", "stories")
	v.SetDefault("blueprint", "./etc/blueprints/todo.yaml")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.app_name", "stories")
	v.SetDefault("log.console.enabled", true)

	v.SetDefault("generator.can_filter_list", true)
	v.SetDefault("generator.can_sort_list", true)
	v.SetDefault("generator.can_paginate_list", true)
	v.SetDefault("generator.should_soft_delete", false)
}

func decodeAndMergeConfig(c Config, configAsJSON string) (Config, error) {
	if err := json.Unmarshal([]byte(configAsJSON), &c); err != nil {
		return Config{}, errors.Wrap(err, "failed to read "+EnvJSON)
	}

	return c, nil
}

// DumpConfig config as TOML String.
func DumpConfig(c *Config) (string, error) {
	var buffer bytes.Buffer

	if err := toml.NewEncoder(&buffer).Encode(c); err != nil {
		return "", err //nolint: wrapcheck
	}

	return buffer.String(), nil
}

// DumpConfigJSON config as JSON String.
func DumpConfigJSON(c *Config) (string, error) {
	var buffer bytes.Buffer

	j := json.NewEncoder(&buffer)
	j.SetIndent("", "  ")

	if err := j.Encode(c); err != nil {
		return "", err //nolint: wrapcheck
	}

	return buffer.String(), nil
}

// validate checks the settings the application can not run without.
func validate(c *Config) error {
	invalidErrMessage := "invalid config"

	if c.Title == "" {
		return errors.Wrap(ErrEmptyTitle, invalidErrMessage)
	}

	if c.Log.AppName == "" {
		return errors.Wrap(ErrEmptyLogAppName, invalidErrMessage)
	}

	if !c.DevMode && !c.Log.Console.Enabled && !c.Log.File.Enabled {
		return errors.Wrap(ErrNoLogWriter, invalidErrMessage)
	}

	if err := validator.New().Struct(c); err != nil {
		return errors.Wrap(err, invalidErrMessage)
	}

	return nil
}
