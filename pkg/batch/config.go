package batch

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/mitchellh/mapstructure"
)

// Job lists the targets to encode for one graph file, a zero target is skipped
type Job struct {
	Graph     string
	Chromatic uint64
	Clique    uint64
}

type Config struct {
	OutputDirectory string
	Solver          string // Empty means the instances are only written
	SolversConfig   string // Path of the JSON object holding external solvers' executable paths
	MaxClauses      uint64 // 0 stands for no limit
	Workers         int    // Maximum number of tasks run at once, 0 stands for no limit
	Jobs            []Job
}

func ConfigFromJson(file string) (Config, error) {
	bytes, err := os.ReadFile(file)
	if err != nil {
		return Config{}, fmt.Errorf("cannot read config file: %w", err)
	}

	var inputJson map[string]any
	if err := json.Unmarshal(bytes, &inputJson); err != nil {
		return Config{}, fmt.Errorf("cannot parse config file: %w", err)
	}

	var config Config
	if err := mapstructure.Decode(inputJson, &config); err != nil {
		return Config{}, fmt.Errorf("cannot decode config file: %w", err)
	}

	if err := config.Validate(); err != nil {
		return Config{}, err
	}
	return config, nil
}

func (config Config) Validate() error {
	if len(config.Jobs) == 0 {
		return fmt.Errorf("config must hold at least one job")
	}
	if config.Workers < 0 {
		return fmt.Errorf("workers must not be negative")
	}
	for i, job := range config.Jobs {
		if job.Graph == "" {
			return fmt.Errorf("job %d: graph file must be specified", i)
		} else if job.Chromatic == 0 && job.Clique == 0 {
			return fmt.Errorf("job %d (%v): at least one of chromatic or clique targets must be positive", i, job.Graph)
		}
	}
	return nil
}
