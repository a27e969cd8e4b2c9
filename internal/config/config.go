package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/planar/internal/plane"
)

const (
	DefaultRangeMin = -1.0
	DefaultRangeMax = 1.0
	DefaultCount    = 9
	DefaultSteps    = 24
	DefaultDelayCS  = 4
	DefaultSize     = 480
)

type Config struct {
	Matrix   MatrixConfig `yaml:"matrix"`
	Grid     GridConfig   `yaml:"grid"`
	Steps    int          `yaml:"steps"`
	DelayCS  int          `yaml:"delay_cs"`
	Size     int          `yaml:"size"`
	Colormap string       `yaml:"colormap"`
}

type MatrixConfig struct {
	A float64 `yaml:"a"`
	B float64 `yaml:"b"`
	C float64 `yaml:"c"`
	D float64 `yaml:"d"`
}

type GridConfig struct {
	XMin   float64 `yaml:"x_min"`
	XMax   float64 `yaml:"x_max"`
	XCount int     `yaml:"x_count"`
	YMin   float64 `yaml:"y_min"`
	YMax   float64 `yaml:"y_max"`
	YCount int     `yaml:"y_count"`
}

func DefaultConfig() *Config {
	return &Config{
		Matrix: MatrixConfig{A: 1, B: 0, C: 0, D: 1},
		Grid: GridConfig{
			XMin: DefaultRangeMin, XMax: DefaultRangeMax, XCount: DefaultCount,
			YMin: DefaultRangeMin, YMax: DefaultRangeMax, YCount: DefaultCount,
		},
		Steps:    DefaultSteps,
		DelayCS:  DefaultDelayCS,
		Size:     DefaultSize,
		Colormap: "hue",
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
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

func (c *Config) Mat() plane.Mat {
	return plane.Mat{A: c.Matrix.A, B: c.Matrix.B, C: c.Matrix.C, D: c.Matrix.D}
}

func (c *Config) SetMat(m plane.Mat) {
	c.Matrix = MatrixConfig{A: m.A, B: m.B, C: m.C, D: m.D}
}
