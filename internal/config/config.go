package config

import (
	"fmt"
	"strings"

	"github.com/spf13/cast"
	"github.com/spf13/viper"

	"github.com/Emmie8/schedsim/internal/schedulers"
)

const envPrefix = "SCHEDSIM"

type SchedulerConfig struct {
	Port                  int
	LogLevel              string
	RoundRobinTimeQuantum int
	FeedbackQuanta        []int
	AgingInterval         int
}

// Load reads the yaml file at path. An empty path uses only defaults and
// SCHEDSIM_* environment variables.
func Load(path string) (*SchedulerConfig, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetDefault("port", 9095)
	v.SetDefault("log_level", "info")
	v.SetDefault("scheduler.round_robin.time_quantum", 2)
	v.SetDefault("scheduler.feedback_varying.quanta", []int{1, 2, 4})
	v.SetDefault("scheduler.aging.interval", 1)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("%w: reading config %s", err, path)
		}
	}

	quanta, err := intSlice(v.Get("scheduler.feedback_varying.quanta"))
	if err != nil {
		return nil, fmt.Errorf("%w: scheduler.feedback_varying.quanta", err)
	}

	config := &SchedulerConfig{
		Port:                  v.GetInt("port"),
		LogLevel:              v.GetString("log_level"),
		RoundRobinTimeQuantum: v.GetInt("scheduler.round_robin.time_quantum"),
		FeedbackQuanta:        quanta,
		AgingInterval:         v.GetInt("scheduler.aging.interval"),
	}
	if err := config.Options().Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}

	return config, nil
}

// Options returns the simulation parameters. RR and FB share the round-robin quantum.
func (c *SchedulerConfig) Options() schedulers.Options {
	quanta := make([]int, len(c.FeedbackQuanta))
	copy(quanta, c.FeedbackQuanta)
	return schedulers.Options{
		Quantum:       c.RoundRobinTimeQuantum,
		Quanta:        quanta,
		AgingInterval: c.AgingInterval,
	}
}

// intSlice accepts a yaml list or, from the environment, a string of
// integers separated by commas or spaces.
func intSlice(value any) ([]int, error) {
	s, ok := value.(string)
	if !ok {
		return cast.ToIntSliceE(value)
	}

	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	out := make([]int, 0, len(fields))
	for _, f := range fields {
		n, err := cast.ToIntE(f)
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, nil
}
