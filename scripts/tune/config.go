package main

import (
	"github.com/BurntSushi/toml"

	"laptudirm.com/x/rixen/search/eval/classical/tuner"
)

// fileConfig is the on-disk shape of a tuning run's TOML config file. It
// mirrors tuner.Config plus the dataset path, which isn't a tuner concern
// itself.
type fileConfig struct {
	Dataset string `toml:"dataset"`

	KPrecision int `toml:"k_precision"`

	ReportRate int `toml:"report_rate"`

	LearningRate     float64 `toml:"learning_rate"`
	LearningDropRate float64 `toml:"learning_drop_rate"`
	LearningStepRate int     `toml:"learning_step_rate"`

	MaxEpochs int `toml:"max_epochs"`
	BatchSize int `toml:"batch_size"`
}

// defaultConfig is used for any field left unset in the TOML file.
var defaultConfig = fileConfig{
	KPrecision: 10,

	ReportRate: 50,

	LearningRate:     1,
	LearningDropRate: 1,
	LearningStepRate: 250,

	MaxEpochs: 100_000,
	BatchSize: 2 * 16384,
}

// loadConfig reads a tuning run's configuration from a TOML file at path.
// Fields absent from the file keep their value in defaultConfig.
func loadConfig(path string) (fileConfig, error) {
	cfg := defaultConfig
	_, err := toml.DecodeFile(path, &cfg)
	return cfg, err
}

func (cfg fileConfig) tunerConfig() tuner.Config {
	return tuner.Config{
		KPrecision: cfg.KPrecision,

		ReportRate: cfg.ReportRate,

		LearningRate:     cfg.LearningRate,
		LearningDropRate: cfg.LearningDropRate,
		LearningStepRate: cfg.LearningStepRate,

		MaxEpochs: cfg.MaxEpochs,
		BatchSize: cfg.BatchSize,
	}
}
