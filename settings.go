package xd2d

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// WindowSettings describes the window a host opens.
// Zero minimum and maximum sizes mean unconstrained.
type WindowSettings struct {
	Title       string `yaml:"title"`
	Width       int    `yaml:"width"`
	Height      int    `yaml:"height"`
	MinWidth    int    `yaml:"min_width"`
	MinHeight   int    `yaml:"min_height"`
	MaxWidth    int    `yaml:"max_width"`
	MaxHeight   int    `yaml:"max_height"`
	X           *int   `yaml:"x"` // pointer to distinguish unset vs 0
	Y           *int   `yaml:"y"`
	Resizable   bool   `yaml:"resizable"`
	Fullscreen  bool   `yaml:"fullscreen"`
	Maximized   bool   `yaml:"maximized"`
	Visible     bool   `yaml:"visible"`
	Transparent bool   `yaml:"transparent"`
	Decorations bool   `yaml:"decorations"`
	AlwaysOnTop bool   `yaml:"always_on_top"`

	// Provider selects the window implementation ("term", "headless").
	// Empty selects the best available one.
	Provider string `yaml:"provider"`

	// Frames stops the run loop after this many frames. Zero runs until
	// the window asks to close.
	Frames int `yaml:"frames"`

	// Output is a PNG file the headless window writes the last presented
	// frame to. Empty writes nothing.
	Output string `yaml:"output"`
}

// DefaultWindowSettings returns a visible, resizable, decorated 1280x720
// window titled "xd2d".
func DefaultWindowSettings() WindowSettings {
	return WindowSettings{
		Title:       "xd2d",
		Width:       1280,
		Height:      720,
		Resizable:   true,
		Visible:     true,
		Decorations: true,
	}
}

// ClampSize restricts w and h to the configured minimum and maximum sizes.
func (ws WindowSettings) ClampSize(w, h int) (int, int) {
	if ws.MinWidth > 0 {
		w = max(w, ws.MinWidth)
	}
	if ws.MinHeight > 0 {
		h = max(h, ws.MinHeight)
	}
	if ws.MaxWidth > 0 {
		w = min(w, ws.MaxWidth)
	}
	if ws.MaxHeight > 0 {
		h = min(h, ws.MaxHeight)
	}
	return w, h
}

// PainterSettings sizes the painter's preallocated buffers.
type PainterSettings struct {
	MaxCommands int `yaml:"max_commands"`
	MaxVertices int `yaml:"max_vertices"`
}

// Options converts the settings into painter options.
func (ps PainterSettings) Options() []PainterOption {
	return []PainterOption{
		WithCommandCapacity(ps.MaxCommands),
		WithVertexCapacity(ps.MaxVertices),
	}
}

// DeviceSettings selects and configures the device.
type DeviceSettings struct {
	// Name is the registered device name ("soft", "hal").
	Name string `yaml:"name"`

	// Backend is the GPU backend variant for GPU devices.
	Backend string `yaml:"backend"`

	// Fill is the geometry color, as accepted by ParseColor.
	Fill string `yaml:"fill"`
}

// Settings is the complete host configuration.
type Settings struct {
	Window  WindowSettings  `yaml:"window"`
	Painter PainterSettings `yaml:"painter"`
	Device  DeviceSettings  `yaml:"device"`

	// ClearColor is cleared to at the start of every frame, as accepted by
	// ParseColor.
	ClearColor string `yaml:"clear_color"`
}

// DefaultSettings returns the settings used when no file is given.
func DefaultSettings() Settings {
	return Settings{
		Window: DefaultWindowSettings(),
		Painter: PainterSettings{
			MaxCommands: DefaultMaxCommands,
			MaxVertices: DefaultMaxVertices,
		},
		Device: DeviceSettings{
			Name: "soft",
			Fill: "white",
		},
		ClearColor: "black",
	}
}

// maxSettingsSize bounds settings files read by LoadSettings.
const maxSettingsSize = 1 << 20

// LoadSettings reads YAML settings from path on top of DefaultSettings.
func LoadSettings(path string) (Settings, error) {
	f, err := os.Open(path)
	if err != nil {
		return Settings{}, fmt.Errorf("xd2d: load settings: %w", err)
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, maxSettingsSize+1))
	if err != nil {
		return Settings{}, fmt.Errorf("xd2d: load settings: %w", err)
	}
	if len(data) > maxSettingsSize {
		return Settings{}, fmt.Errorf("xd2d: load settings: %s exceeds %d bytes", path, maxSettingsSize)
	}

	s, err := ParseSettings(data)
	if err != nil {
		return Settings{}, err
	}
	Logger().Info("xd2d: loaded settings", "path", path, "size", len(data))
	return s, nil
}

// ParseSettings decodes YAML settings on top of DefaultSettings and
// validates the result. Unknown keys are rejected.
func ParseSettings(data []byte) (Settings, error) {
	s := DefaultSettings()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil && !errors.Is(err, io.EOF) {
		return Settings{}, fmt.Errorf("xd2d: parse settings: %w", err)
	}

	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// Validate checks sizes and colors.
func (s Settings) Validate() error {
	w := s.Window
	if w.Width <= 0 || w.Height <= 0 {
		return fmt.Errorf("xd2d: window size must be positive, got %dx%d", w.Width, w.Height)
	}
	if w.MaxWidth > 0 && w.MinWidth > w.MaxWidth {
		return fmt.Errorf("xd2d: window min_width %d exceeds max_width %d", w.MinWidth, w.MaxWidth)
	}
	if w.MaxHeight > 0 && w.MinHeight > w.MaxHeight {
		return fmt.Errorf("xd2d: window min_height %d exceeds max_height %d", w.MinHeight, w.MaxHeight)
	}
	if w.Frames < 0 {
		return fmt.Errorf("xd2d: window frames must not be negative, got %d", w.Frames)
	}
	if _, err := ParseColor(s.Device.Fill); err != nil {
		return fmt.Errorf("xd2d: device fill: %w", err)
	}
	if _, err := ParseColor(s.ClearColor); err != nil {
		return fmt.Errorf("xd2d: clear_color: %w", err)
	}
	return nil
}

// Clear returns the parsed clear color.
func (s Settings) Clear() (Color, error) {
	return ParseColor(s.ClearColor)
}

// DeviceConfig builds the device configuration for the initial window size.
func (s Settings) DeviceConfig() (DeviceConfig, error) {
	fill, err := ParseColor(s.Device.Fill)
	if err != nil {
		return DeviceConfig{}, fmt.Errorf("xd2d: device fill: %w", err)
	}
	return DeviceConfig{
		Width:   s.Window.Width,
		Height:  s.Window.Height,
		Fill:    fill,
		Backend: s.Device.Backend,
	}, nil
}
