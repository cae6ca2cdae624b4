package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/san-kum/wavebeat/internal/animate"
	"github.com/san-kum/wavebeat/internal/quantum"
	"gopkg.in/yaml.v3"
)

const (
	DefaultP                  = 1.0
	DefaultDpOverP            = 0.1
	DefaultHbar               = 1.0
	DefaultMass               = 1.0
	DefaultNPoints            = 1000
	DefaultXLengthInLambdaEnv = quantum.DefaultEnvelopeMultiple
	DefaultTMax               = 100.0
	DefaultDt                 = 0.1
	DefaultPlotIntervalSec    = 0.05

	TimeModeStep     = "step"
	TimeModePhysical = "physical"
)

// ErrInvalidConfig is returned by Validate for values no run can use.
var ErrInvalidConfig = errors.New("config: invalid configuration")

type Config struct {
	Environment string          `yaml:"environment" env:"WAVEBEAT_ENVIRONMENT"`
	Physics     PhysicsConfig   `yaml:"physics"`
	Grid        GridConfig      `yaml:"grid"`
	Animation   AnimationConfig `yaml:"animation"`
}

type PhysicsConfig struct {
	P       float64   `yaml:"p" env:"WAVEBEAT_P"`
	DpOverP float64   `yaml:"dp_over_p" env:"WAVEBEAT_DP_OVER_P"`
	Hbar    float64   `yaml:"hbar" env:"WAVEBEAT_HBAR"`
	M       float64   `yaml:"m" env:"WAVEBEAT_M"`
	A       Amplitude `yaml:"a"`
	B       Amplitude `yaml:"b"`
}

// Amplitude is a complex number spelled out for YAML.
type Amplitude struct {
	Re float64 `yaml:"re"`
	Im float64 `yaml:"im"`
}

func (a Amplitude) Complex() complex128 { return complex(a.Re, a.Im) }

type GridConfig struct {
	NPoints            int     `yaml:"npoints" env:"WAVEBEAT_NPOINTS"`
	XLengthInLambdaEnv float64 `yaml:"xlength_in_lambda_env" env:"WAVEBEAT_XLENGTH_IN_LAMBDA_ENV"`
}

type AnimationConfig struct {
	TMax            float64 `yaml:"tmax" env:"WAVEBEAT_TMAX"`
	Dt              float64 `yaml:"dt" env:"WAVEBEAT_DT"`
	PlotIntervalSec float64 `yaml:"plot_interval_sec" env:"WAVEBEAT_PLOT_INTERVAL_SEC"`
	// TimeMode selects what the animation passes as t: the integer step
	// index ("step") or step*dt ("physical").
	TimeMode string `yaml:"time_mode" env:"WAVEBEAT_TIME_MODE"`
}

func DefaultConfig() *Config {
	return &Config{
		Environment: "development",
		Physics: PhysicsConfig{
			P:       DefaultP,
			DpOverP: DefaultDpOverP,
			Hbar:    DefaultHbar,
			M:       DefaultMass,
			A:       Amplitude{Re: 1},
			B:       Amplitude{Re: 1},
		},
		Grid: GridConfig{
			NPoints:            DefaultNPoints,
			XLengthInLambdaEnv: DefaultXLengthInLambdaEnv,
		},
		Animation: AnimationConfig{
			TMax:            DefaultTMax,
			Dt:              DefaultDt,
			PlotIntervalSec: DefaultPlotIntervalSec,
			TimeMode:        TimeModeStep,
		},
	}
}

// Load reads a YAML file over the defaults and then applies WAVEBEAT_*
// environment overrides.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if err := ReadFile(path, cfg); err != nil {
		return nil, err
	}
	if err := ApplyEnv(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ReadFile decodes a YAML file into cfg. Keys absent from the file keep
// their current values, so a file can be layered over a preset.
func ReadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}

// ApplyEnv overwrites fields whose WAVEBEAT_* variable is set.
func ApplyEnv(cfg *Config) error {
	if err := cleanenv.ReadEnv(cfg); err != nil {
		return fmt.Errorf("read env: %w", err)
	}
	return nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	if err := c.Params().Validate(); err != nil {
		return err
	}
	a := c.Animation
	switch {
	case c.Grid.NPoints < 2:
		return fmt.Errorf("%w: npoints must be at least 2, got %d", ErrInvalidConfig, c.Grid.NPoints)
	case !positive(c.Grid.XLengthInLambdaEnv):
		return fmt.Errorf("%w: xlength_in_lambda_env must be positive", ErrInvalidConfig)
	case !positive(a.Dt):
		return fmt.Errorf("%w: dt must be positive", ErrInvalidConfig)
	case !positive(a.TMax):
		return fmt.Errorf("%w: tmax must be positive", ErrInvalidConfig)
	case !(a.TMax/a.Dt <= animate.MaxSteps):
		return fmt.Errorf("%w: tmax/dt = %g exceeds %d frames", ErrInvalidConfig, a.TMax/a.Dt, animate.MaxSteps)
	case a.PlotIntervalSec < 0 || math.IsNaN(a.PlotIntervalSec) || math.IsInf(a.PlotIntervalSec, 0):
		return fmt.Errorf("%w: plot_interval_sec must be non-negative", ErrInvalidConfig)
	case a.TimeMode != TimeModeStep && a.TimeMode != TimeModePhysical:
		return fmt.Errorf("%w: unknown time_mode %q", ErrInvalidConfig, a.TimeMode)
	}
	return nil
}

func positive(v float64) bool {
	return v > 0 && !math.IsInf(v, 0)
}

// Params converts the physics section, deriving dp = p * dp_over_p.
func (c *Config) Params() quantum.Params {
	ph := c.Physics
	return quantum.Params{
		P:    ph.P,
		Dp:   ph.P * ph.DpOverP,
		Hbar: ph.Hbar,
		M:    ph.M,
		A:    ph.A.Complex(),
		B:    ph.B.Complex(),
	}
}

func (c *Config) PlotInterval() time.Duration {
	return time.Duration(c.Animation.PlotIntervalSec * float64(time.Second))
}

func (c *Config) PhysicalTime() bool {
	return c.Animation.TimeMode == TimeModePhysical
}

// Title is the caption drawn above the real-part panel.
func (c *Config) Title() string {
	return fmt.Sprintf("Sum of two momentum eigenstates |p> and |p + dp>, with dp = %.2f p", c.Physics.DpOverP)
}
