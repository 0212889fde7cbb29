package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	log "github.com/sirupsen/logrus"
	gomidi "gitlab.com/gomidi/midi/v2"
	_ "gitlab.com/gomidi/midi/v2/drivers/rtmididrv"

	"go-midiwire/config"
	"go-midiwire/debug"
	"go-midiwire/midi"
	"go-midiwire/output"
	"go-midiwire/theme"
	"go-midiwire/tui"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.WithError(err).Warn("using default config")
		cfg = config.DefaultConfig()
	}

	if cfg.Debug {
		if err := debug.Enable(); err != nil {
			log.WithError(err).Warn("debug log disabled")
		}
		defer debug.Disable()
	}

	palette, err := theme.LoadOrDefault(cfg.UI.Palette)
	if err != nil {
		log.WithError(err).Warn("using default palette")
		palette = theme.Default()
	}
	th := theme.New(palette)

	send, target, closeOutput := openOutput(cfg)
	defer closeOutput()

	m := tui.NewModel(cfg, th, send, target)
	p := tea.NewProgram(m, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	if err := cfg.Save(); err != nil {
		log.WithError(err).Warn("config not saved")
	}
}

// openOutput picks the serial device if one is configured, otherwise the
// named MIDI port. Ports open lazily on first send.
func openOutput(cfg *config.Config) (tui.SendFunc, string, func()) {
	if dev := cfg.Output.SerialDevice; dev != "" {
		w, err := output.OpenSerial(dev, cfg.Baud())
		if err != nil {
			log.WithError(err).Warn("serial output disabled")
			return nil, "", func() {}
		}
		return w.Write, w.Device(), func() { w.Close() }
	}

	if name := cfg.Output.PortName; name != "" {
		router := output.NewRouter(nil)
		send := func(msgs ...midi.Encoder) error {
			return router.Send(name, msgs...)
		}
		return send, name, func() { gomidi.CloseDriver() }
	}

	return nil, "", func() {}
}
