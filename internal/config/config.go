// Package config handles application configuration loading and management.
package config

import (
	"errors"
	"fmt"
)

// Config holds all application settings.
type Config struct {
	Graphics   GraphicsConfig   `yaml:"graphics"`
	Camera     CameraConfig     `yaml:"camera"`
	Scene      SceneConfig      `yaml:"scene"`
	Shaders    ShadersConfig    `yaml:"shaders"`
	Screenshot ScreenshotConfig `yaml:"screenshot"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// GraphicsConfig holds display and projection settings.
type GraphicsConfig struct {
	Width      int     `yaml:"width"`
	Height     int     `yaml:"height"`
	Fullscreen bool    `yaml:"fullscreen"`
	VSync      bool    `yaml:"vsync"`
	Backend    string  `yaml:"backend"` // sdl or glfw
	FOVDegrees float32 `yaml:"fov_degrees"`
	Near       float32 `yaml:"near"`
	Far        float32 `yaml:"far"`
}

// CameraConfig holds the initial camera state.
type CameraConfig struct {
	StartPosition [3]float32 `yaml:"start_position"`
}

// SceneConfig selects what is rendered at startup.
type SceneConfig struct {
	Mode          string  `yaml:"mode"` // raymarch or lit
	Active        int     `yaml:"active"`
	Lighting      bool    `yaml:"lighting"`
	RaymarchScale float32 `yaml:"raymarch_scale"`
}

// ShadersConfig points at GLSL sources on disk. An empty Dir uses the
// sources built into the binary.
type ShadersConfig struct {
	Dir string `yaml:"dir"`
}

// ScreenshotConfig holds screenshot output settings.
type ScreenshotConfig struct {
	Dir    string `yaml:"dir"`
	Format string `yaml:"format"` // png or bmp
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Render modes.
const (
	ModeRaymarch = "raymarch"
	ModeLit      = "lit"
)

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:      900,
			Height:     900,
			Fullscreen: false,
			VSync:      true,
			Backend:    "sdl",
			FOVDegrees: 45,
			Near:       0.1,
			Far:        100,
		},
		Camera: CameraConfig{
			StartPosition: [3]float32{0, 2, 5},
		},
		Scene: SceneConfig{
			Mode:          ModeRaymarch,
			Active:        0,
			Lighting:      true,
			RaymarchScale: 1,
		},
		Screenshot: ScreenshotConfig{
			Dir:    "screenshots",
			Format: "png",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Validate reports every invalid setting.
func (c *Config) Validate() error {
	var errs []error
	g := c.Graphics
	if g.Width <= 0 || g.Height <= 0 {
		errs = append(errs, fmt.Errorf("graphics: size must be positive, got %dx%d", g.Width, g.Height))
	}
	if g.Backend != "sdl" && g.Backend != "glfw" {
		errs = append(errs, fmt.Errorf("graphics: unknown backend %q", g.Backend))
	}
	if g.FOVDegrees <= 0 || g.FOVDegrees >= 180 {
		errs = append(errs, fmt.Errorf("graphics: fov_degrees must be in (0,180), got %v", g.FOVDegrees))
	}
	if g.Near <= 0 || g.Near >= g.Far {
		errs = append(errs, fmt.Errorf("graphics: need 0 < near < far, got near=%v far=%v", g.Near, g.Far))
	}

	s := c.Scene
	if s.Mode != ModeRaymarch && s.Mode != ModeLit {
		errs = append(errs, fmt.Errorf("scene: unknown mode %q", s.Mode))
	}
	if s.Active < 0 {
		errs = append(errs, fmt.Errorf("scene: active must not be negative, got %d", s.Active))
	}
	if s.RaymarchScale <= 0 || s.RaymarchScale > 1 {
		errs = append(errs, fmt.Errorf("scene: raymarch_scale must be in (0,1], got %v", s.RaymarchScale))
	}

	if f := c.Screenshot.Format; f != "png" && f != "bmp" {
		errs = append(errs, fmt.Errorf("screenshot: unknown format %q", f))
	}

	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("logging: unknown level %q", c.Logging.Level))
	}

	return errors.Join(errs...)
}
