package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"go-midiwire/midi"
)

// DefaultBaudRate is the DIN-MIDI line rate
const DefaultBaudRate = 31250

// maxLastLines bounds how many explorer lines are remembered
const maxLastLines = 32

// OutputConfig selects where lowered blocks are written
type OutputConfig struct {
	PortName     string `json:"portName,omitempty"`     // gomidi output port
	SerialDevice string `json:"serialDevice,omitempty"` // e.g. /dev/ttyUSB0
	BaudRate     int    `json:"baudRate,omitempty"`
}

// UIConfig stores explorer state
type UIConfig struct {
	LastLines []string `json:"lastLines,omitempty"` // notation lines, oldest first
	Palette   string   `json:"palette,omitempty"`   // optional .gpl file
}

// Config is the main configuration structure
type Config struct {
	Output         OutputConfig `json:"output,omitempty"`
	DefaultChannel int          `json:"defaultChannel,omitempty"` // 1-16
	Debug          bool         `json:"debug,omitempty"`
	UI             UIConfig     `json:"ui,omitempty"`
}

// DefaultConfig returns a config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Output: OutputConfig{
			BaudRate: DefaultBaudRate,
		},
		DefaultChannel: 1,
		UI: UIConfig{
			LastLines: []string{
				"start",
				"program 1 5",
				"noteon 1 60 100",
				"rpn14 1 0 0x100",
				"sysex 00:20:29 02 0c 00 7f",
			},
		},
	}
}

// ConfigDir returns the config directory path
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "go-midiwire"), nil
}

// ConfigPath returns the full path to config.json
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// Load reads the config from disk, or returns defaults if not found
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return DefaultConfig(), nil
	}
	return LoadFrom(path)
}

// LoadFrom reads the config at path, or returns defaults if it does not exist
func LoadFrom(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, errors.Wrapf(err, "read config %s", path)
	}

	cfg := DefaultConfig()
	cfg.UI.LastLines = nil
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrapf(err, "parse config %s", path)
	}

	return cfg, nil
}

// Save writes the config to disk
func (c *Config) Save() error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	return c.SaveTo(path)
}

// SaveTo writes the config to path, creating its directory
func (c *Config) SaveTo(path string) error {
	// Create directory if it doesn't exist
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.Wrap(err, "create config dir")
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return errors.Wrapf(os.WriteFile(path, data, 0644), "write config %s", path)
}

// Channel returns the default channel. Zero means channel 1.
func (c *Config) Channel() (midi.Channel, error) {
	if c.DefaultChannel == 0 {
		return midi.Ch1, nil
	}
	ch, err := midi.ChannelFromNumber(c.DefaultChannel)
	if err != nil {
		return 0, errors.Wrap(err, "config defaultChannel")
	}
	return ch, nil
}

// Baud returns the serial baud rate, falling back to DefaultBaudRate
func (c *Config) Baud() int {
	if c.Output.BaudRate <= 0 {
		return DefaultBaudRate
	}
	return c.Output.BaudRate
}

// AddLine records a notation line for the explorer, dropping an earlier copy
// and the oldest lines beyond the limit
func (c *Config) AddLine(line string) {
	for i, l := range c.UI.LastLines {
		if l == line {
			c.UI.LastLines = append(c.UI.LastLines[:i], c.UI.LastLines[i+1:]...)
			break
		}
	}
	c.UI.LastLines = append(c.UI.LastLines, line)
	if n := len(c.UI.LastLines); n > maxLastLines {
		c.UI.LastLines = c.UI.LastLines[n-maxLastLines:]
	}
}
