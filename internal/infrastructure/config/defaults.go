package config

import "time"

// SetDefaults sets default values for all configuration fields
func SetDefaults(cfg *Config) {
	// Catalog defaults
	if cfg.Catalog.Source == "" {
		cfg.Catalog.Source = CatalogSourceBuiltin
	}

	// Database defaults
	if cfg.Database.Type == "" {
		cfg.Database.Type = "sqlite"
	}
	if cfg.Database.Path == "" && cfg.Database.Type == "sqlite" {
		cfg.Database.Path = "factory-planner.db"
	}
	if cfg.Database.Host == "" {
		cfg.Database.Host = "localhost"
	}
	if cfg.Database.Port == 0 {
		cfg.Database.Port = 5432
	}
	if cfg.Database.User == "" {
		cfg.Database.User = "planner"
	}
	if cfg.Database.Name == "" {
		cfg.Database.Name = "factory_planner"
	}
	if cfg.Database.SSLMode == "" {
		cfg.Database.SSLMode = "disable"
	}
	if cfg.Database.Pool.MaxOpen == 0 {
		cfg.Database.Pool.MaxOpen = 10
	}
	if cfg.Database.Pool.MaxIdle == 0 {
		cfg.Database.Pool.MaxIdle = 2
	}
	if cfg.Database.Pool.MaxLifetime == 0 {
		cfg.Database.Pool.MaxLifetime = 5 * time.Minute
	}

	// Logging defaults
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "warn"
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "text"
	}
	if cfg.Logging.Output == "" {
		cfg.Logging.Output = "stderr"
	}

	// Metrics defaults
	if cfg.Metrics.Output == "" {
		cfg.Metrics.Output = "stderr"
	}

	// Planner defaults
	if cfg.Planner.AssemblerSpeed == "" {
		cfg.Planner.AssemblerSpeed = "max"
	}
	if cfg.Planner.FurnaceSpeed == "" {
		cfg.Planner.FurnaceSpeed = "max"
	}
	if cfg.Planner.MineSpeed == "" {
		cfg.Planner.MineSpeed = "max"
	}
	if cfg.Planner.LabSpeed == "" {
		cfg.Planner.LabSpeed = "max"
	}
	if cfg.Planner.ChemSpeed == "" {
		cfg.Planner.ChemSpeed = "1"
	}
	if cfg.Planner.PumpSpeed == "" {
		cfg.Planner.PumpSpeed = "1"
	}
	if cfg.Planner.RocketSiloSpeed == "" {
		cfg.Planner.RocketSiloSpeed = "1"
	}
}
