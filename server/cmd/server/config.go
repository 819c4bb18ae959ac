package main

import (
	"github.com/automoto/screenmenu/config"
)

func loadConfig() (config.Config, error) {
	path := configPath
	if path == "" {
		p, err := config.DefaultPath()
		if err != nil {
			return config.Default(), err
		}
		path = p
	}
	cfg, err := config.Load(path)
	if err != nil {
		return cfg, err
	}
	config.C = cfg
	return cfg, nil
}
