package config

import (
	"github.com/storiesascode/storiesascode/internal/crud"
	"github.com/storiesascode/storiesascode/internal/logger"
)

// Config overall data structure.
type Config struct {
	Title     string     `mapstructure:"title"     toml:"title"     json:"title"     validate:"required"`
	DevMode   bool       `mapstructure:"dev_mode"  toml:"dev_mode"  json:"devMode"` // console writer and debug level
	Blueprint string     `mapstructure:"blueprint" toml:"blueprint" json:"blueprint"`
	Log       logger.Log `mapstructure:"log"       toml:"log"       json:"log"`
	Generator Generator  `mapstructure:"generator" toml:"generator" json:"generator"`
}

// Generator holds the defaults of the CRUD story generator.
type Generator struct {
	CanFilterList    bool `mapstructure:"can_filter_list"    toml:"can_filter_list"    json:"canFilterList"`
	CanSortList      bool `mapstructure:"can_sort_list"      toml:"can_sort_list"      json:"canSortList"`
	CanPaginateList  bool `mapstructure:"can_paginate_list"  toml:"can_paginate_list"  json:"canPaginateList"`
	ShouldSoftDelete bool `mapstructure:"should_soft_delete" toml:"should_soft_delete" json:"shouldSoftDelete"`
}

// Options converts the settings into generator options.
func (g Generator) Options() crud.Options {
	return crud.Options{
		CanFilterList:    g.CanFilterList,
		CanSortList:      g.CanSortList,
		CanPaginateList:  g.CanPaginateList,
		ShouldSoftDelete: g.ShouldSoftDelete,
	}
}
