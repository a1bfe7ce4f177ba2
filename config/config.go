// Package config loads the settings of the pue command from a YAML file, an
// optional .env file and PUE_* environment variables, in increasing order of
// precedence.
package config

import (
	"fmt"

	"github.com/samber/lo"

	"github.com/arielf-camacho/pue/logger"
)

// Scheduler kinds.
const (
	SchedulerLoop      = "loop"
	SchedulerExecutor  = "executor"
	SchedulerImmediate = "immediate"
)

var schedulerKinds = []string{SchedulerLoop, SchedulerExecutor, SchedulerImmediate}

// Config is the root configuration.
type Config struct {
	Log       logger.Config   `yaml:"log" mapstructure:"log"`
	Scheduler SchedulerConfig `yaml:"scheduler" mapstructure:"scheduler"`
	Timer     TimerConfig     `yaml:"timer" mapstructure:"timer"`
	Abc16     Abc16Config     `yaml:"abc16" mapstructure:"abc16"`
}

// SchedulerConfig selects the scheduler driving timers.
type SchedulerConfig struct {
	Kind     string `yaml:"kind" mapstructure:"kind"`
	OffsetMs int64  `yaml:"offset_ms" mapstructure:"offset_ms"`
}

// TimerConfig configures the timer command.
type TimerConfig struct {
	IntervalsMs []int64 `yaml:"intervals_ms" mapstructure:"intervals_ms"`
	Limit       int64   `yaml:"limit" mapstructure:"limit"`
}

// Abc16Config configures the abc16 codec.
type Abc16Config struct {
	Uppercase   bool `yaml:"uppercase" mapstructure:"uppercase"`
	Obfuscation *int `yaml:"obfuscation" mapstructure:"obfuscation"`
}

// ApplyDefaults fills the empty fields.
func (c *Config) ApplyDefaults() {
	c.Log.ApplyDefaults()
	if c.Scheduler.Kind == "" {
		c.Scheduler.Kind = SchedulerLoop
	}
	if len(c.Timer.IntervalsMs) == 0 {
		c.Timer.IntervalsMs = []int64{1000}
	}
}

// Validate validates the whole configuration.
func (c *Config) Validate() error {
	if err := c.Log.Validate(); err != nil {
		return err
	}
	if !lo.Contains(schedulerKinds, c.Scheduler.Kind) {
		return fmt.Errorf("scheduler.kind must be one of %v (got: %s)", schedulerKinds, c.Scheduler.Kind)
	}
	if c.Scheduler.OffsetMs < 0 {
		return fmt.Errorf("scheduler.offset_ms must not be negative (got: %d)", c.Scheduler.OffsetMs)
	}
	if c.Scheduler.Kind == SchedulerImmediate && c.Scheduler.OffsetMs > 0 {
		return fmt.Errorf("scheduler.offset_ms must be 0 for the immediate scheduler (got: %d)", c.Scheduler.OffsetMs)
	}
	if c.Timer.Limit < 0 {
		return fmt.Errorf("timer.limit must not be negative (got: %d)", c.Timer.Limit)
	}
	return nil
}
