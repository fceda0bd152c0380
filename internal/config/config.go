package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/kinelab/internal/formula"
)

const (
	DefaultDistance   = 100.0
	DefaultTime       = 5.0
	DefaultV0         = 0.0
	DefaultV1         = 20.0
	DefaultAccelTime  = 4.0
	DefaultMass       = 10.0
	DefaultSpeed      = 20.0
	DefaultDataFile   = "motion_data.csv"
	DefaultPlotFile   = "motion_analysis.svg"
	DefaultPlotWidth  = 1200
	DefaultPlotHeight = 500
)

var DefaultAngles = []float64{30, 45, 60}

type Config struct {
	Basic      BasicConfig      `yaml:"basic"`
	Projectile ProjectileConfig `yaml:"projectile"`
	Analysis   AnalysisConfig   `yaml:"analysis"`
}

type BasicConfig struct {
	Distance  float64 `yaml:"distance"`
	Time      float64 `yaml:"time"`
	V0        float64 `yaml:"v0"`
	V1        float64 `yaml:"v1"`
	AccelTime float64 `yaml:"accel_time"`
	Mass      float64 `yaml:"mass"`
}

type ProjectileConfig struct {
	Speed   float64   `yaml:"speed"`
	Angles  []float64 `yaml:"angles"`
	Gravity float64   `yaml:"gravity"`
}

type AnalysisConfig struct {
	DataFile   string `yaml:"data_file"`
	PlotFile   string `yaml:"plot_file"`
	PlotWidth  int    `yaml:"plot_width"`
	PlotHeight int    `yaml:"plot_height"`
}

func DefaultConfig() *Config {
	return &Config{
		Basic: BasicConfig{
			Distance:  DefaultDistance,
			Time:      DefaultTime,
			V0:        DefaultV0,
			V1:        DefaultV1,
			AccelTime: DefaultAccelTime,
			Mass:      DefaultMass,
		},
		Projectile: ProjectileConfig{
			Speed:   DefaultSpeed,
			Angles:  append([]float64(nil), DefaultAngles...),
			Gravity: formula.StandardGravity,
		},
		Analysis: AnalysisConfig{
			DataFile:   DefaultDataFile,
			PlotFile:   DefaultPlotFile,
			PlotWidth:  DefaultPlotWidth,
			PlotHeight: DefaultPlotHeight,
		},
	}
}

// Load reads a YAML file over the defaults. Keys absent from the file keep
// their default value.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate rejects values the formulas cannot evaluate.
func (c *Config) Validate() error {
	var errs []error
	if c.Basic.Time == 0 {
		errs = append(errs, fmt.Errorf("basic.time: %w", formula.ErrZeroTime))
	}
	if c.Basic.AccelTime == 0 {
		errs = append(errs, fmt.Errorf("basic.accel_time: %w", formula.ErrZeroTime))
	}
	if c.Projectile.Gravity <= 0 {
		errs = append(errs, fmt.Errorf("projectile.gravity: %w", formula.ErrNonPositiveGravity))
	}
	if len(c.Projectile.Angles) == 0 {
		errs = append(errs, errors.New("projectile.angles: at least one angle required"))
	}
	if c.Analysis.PlotWidth <= 0 || c.Analysis.PlotHeight <= 0 {
		errs = append(errs, errors.New("analysis: plot dimensions must be positive"))
	}
	return errors.Join(errs...)
}
