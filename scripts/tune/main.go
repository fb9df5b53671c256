package main

import (
	"flag"
	"os"

	"laptudirm.com/x/rixen/internal/logging"
	"laptudirm.com/x/rixen/search/eval/classical/tuner"
)

var log = logging.Get("tune")

func main() {
	configPath := flag.String("config", "", "toml config file with the tuning run's dataset path and hyperparameters")
	flag.Parse()

	cfg := defaultConfig
	if *configPath != "" {
		var err error
		cfg, err = loadConfig(*configPath)
		if err != nil {
			log.Errorf("error loading config: %v", err)
			os.Exit(1)
		}
	}

	if cfg.Dataset == "" {
		log.Error("tune: no dataset path given (set 'dataset' in the config file)")
		os.Exit(1)
	}

	// load dataset
	log.Infof("loading dataset: %s", cfg.Dataset)
	dataset, err := tuner.NewDataset(cfg.Dataset)
	if err != nil {
		log.Errorf("error loading dataset: %v", err)
		return
	}

	// report number of dataset entries
	log.Infof("dataset loaded: %d entries", len(dataset))

	termTuner := tuner.Tuner{
		Config:  cfg.tunerConfig(),
		Dataset: dataset,
	}

	termTuner.Tune()
}
