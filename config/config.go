package config

import (
	"encoding/json"
	"math"
	"os"
)

// Config holds runtime configuration for the motion extraction app.
// Fields may be loaded from a JSON file and overridden by command-line flags.
type Config struct {
	Debug bool `json:"debug"`

	Motion  MotionConfig  `json:"motion"`
	Camera  CameraConfig  `json:"camera"`
	Display DisplayConfig `json:"display"`
}

// MotionConfig controls the differencing pipeline. DelayFrames takes
// precedence over DelaySeconds when both are set; leaving both null selects
// the default of five frames.
type MotionConfig struct {
	DelayFrames  *int     `json:"delay_frames"`
	DelaySeconds *float64 `json:"delay_seconds"`
	BlendAlpha   float64  `json:"blend_alpha"`
	FPS          int      `json:"fps"`
}

// CameraConfig selects the capture source: a numeric device index ("0"), a
// video file path, or "screen" for full-screen grabbing. Width/height of 0
// keep the device defaults.
type CameraConfig struct {
	Source string `json:"source"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

// DisplayConfig controls the preview window.
type DisplayConfig struct {
	ShowPreview bool   `json:"show_preview"`
	WindowName  string `json:"window_name"`
}

const defaultDelayFrames = 5

// DefaultConfig returns a Config populated with standard defaults.
func DefaultConfig() *Config {
	delay := defaultDelayFrames
	return &Config{
		Debug: false,
		Motion: MotionConfig{
			DelayFrames: &delay,
			BlendAlpha:  0.5,
			FPS:         30,
		},
		Camera: CameraConfig{
			Source: "0",
			Width:  640,
			Height: 480,
		},
		Display: DisplayConfig{
			ShowPreview: true,
			WindowName:  "Motion Extraction",
		},
	}
}

// Validate clamps/normalizes values to safe ranges.
func (c *Config) Validate() error {
	if c.Motion.BlendAlpha < 0 || c.Motion.BlendAlpha > 1 {
		c.Motion.BlendAlpha = 0.5
	}
	if c.Motion.FPS <= 0 {
		c.Motion.FPS = 30
	}
	if c.Motion.DelayFrames != nil && *c.Motion.DelayFrames < 0 {
		*c.Motion.DelayFrames = 0
	}
	if c.Motion.DelaySeconds != nil && *c.Motion.DelaySeconds < 0 {
		*c.Motion.DelaySeconds = 0
	}
	if c.Camera.Source == "" {
		c.Camera.Source = "0"
	}
	if c.Camera.Width < 0 {
		c.Camera.Width = 0
	}
	if c.Camera.Height < 0 {
		c.Camera.Height = 0
	}
	if c.Display.WindowName == "" {
		c.Display.WindowName = "Motion Extraction"
	}
	return nil
}

// InitialDelayFrames resolves the configured starting delay at the given fps:
// an explicit frame count wins, then a seconds value converted via fps, then
// the five frame default.
func (c *Config) InitialDelayFrames(fps int) int {
	if fps <= 0 {
		fps = c.Motion.FPS
	}
	if c.Motion.DelayFrames != nil {
		return *c.Motion.DelayFrames
	}
	if c.Motion.DelaySeconds != nil {
		f := int(math.Round(*c.Motion.DelaySeconds * float64(fps)))
		if f < 0 {
			f = 0
		}
		return f
	}
	return defaultDelayFrames
}

// Load attempts to read configuration from the given JSON file path. If the
// file does not exist it returns DefaultConfig(). On JSON error it returns
// defaults with the error.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}
	defer f.Close()
	dec := json.NewDecoder(f)
	if err := dec.Decode(cfg); err != nil {
		return cfg, err
	}
	_ = cfg.Validate()
	return cfg, nil
}

// Save writes the configuration to the given path in JSON format.
func (c *Config) Save(path string) error {
	_ = c.Validate()
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(c)
}
