package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	gomidi "gitlab.com/gomidi/midi/v2"
	_ "gitlab.com/gomidi/midi/v2/drivers/rtmididrv"

	"go-midiwire/config"
	"go-midiwire/debug"
	"go-midiwire/midi"
	"go-midiwire/notation"
	"go-midiwire/output"
)

func main() {
	log.SetFormatter(&log.TextFormatter{DisableTimestamp: true})

	args := os.Args[1:]
	verbose := len(args) > 0 && args[0] == "-v"
	if verbose {
		args = args[1:]
		log.SetLevel(log.DebugLevel)
	}
	if len(args) < 1 {
		usage()
		return
	}

	cfg, err := config.Load()
	if err != nil {
		log.WithError(err).Warn("using default config")
		cfg = config.DefaultConfig()
	}
	if cfg.Debug || verbose {
		debug.EnableWriter(os.Stderr)
		defer debug.Disable()
	}

	cmd, args := args[0], args[1:]
	log.WithField("cmd", cmd).Debug("running")
	switch cmd {
	case "list":
		err = listPorts()
	case "encode":
		err = encode(args)
	case "sort":
		err = sortFile(args)
	case "send":
		err = send(args)
	case "serial":
		err = sendSerial(cfg, args)
	case "panic":
		err = panicPort(cfg, args)
	default:
		usage()
		return
	}
	if err != nil {
		log.Fatal(err)
	}
}

func usage() {
	fmt.Println("midiwire - lower MIDI messages to wire bytes")
	fmt.Println("")
	fmt.Println("Commands:")
	fmt.Println("  list                     - List MIDI output ports and serial devices")
	fmt.Println("  encode <line>...         - Print the bytes each line lowers to")
	fmt.Println("  sort <file>              - Sort a script by priority and print it")
	fmt.Println("  send <port> <line>...    - Send lines to a MIDI output port")
	fmt.Println("  serial <device> <line>.. - Write lines to a serial device")
	fmt.Println("  panic [port]             - Silence the default channel")
	fmt.Println("")
	fmt.Println("  -v before a command logs debug output to stderr")
	fmt.Println("")
	fmt.Println("Lines use the notation commands:")
	fmt.Printf("  %s\n", strings.Join(notation.Commands(), " "))
}

func listPorts() error {
	fmt.Println("=== MIDI Output Ports ===")
	fmt.Printf("(waiting up to %v...)\n", output.PortTimeout)

	outs, err := output.OutPorts(output.PortTimeout)
	if err != nil {
		fmt.Println("Fix: sudo killall coreaudiod midiserver")
		return err
	}
	for i, p := range outs {
		fmt.Printf("  %d: %s\n", i, p.String())
	}

	fmt.Println("\n=== Serial Devices ===")
	ports, err := output.SerialPorts()
	if err != nil {
		return err
	}
	for i, p := range ports {
		fmt.Printf("  %d: %s\n", i, p)
	}
	return nil
}

func parseArgs(lines []string) ([]midi.Message, error) {
	if len(lines) == 0 {
		return nil, errors.New("no lines given")
	}
	msgs := make([]midi.Message, 0, len(lines))
	for _, line := range lines {
		m, err := notation.Parse(line)
		if err != nil {
			return nil, err
		}
		msgs = append(msgs, m)
	}
	return msgs, nil
}

func encode(lines []string) error {
	msgs, err := parseArgs(lines)
	if err != nil {
		return err
	}
	for _, m := range msgs {
		block := m.ToRawMessages()
		fmt.Printf("%-40v % X\n", m, midi.Encode(block))
		for _, r := range block {
			fmt.Printf("    %v\n", r)
		}
	}
	return nil
}

func sortFile(args []string) error {
	if len(args) != 1 {
		return errors.New("usage: sort <file>")
	}
	f, err := os.Open(args[0])
	if err != nil {
		return errors.Wrap(err, "open script")
	}
	defer f.Close()

	msgs, err := notation.ParseLines(f)
	if err != nil {
		return err
	}
	midi.Sort(msgs)
	for _, m := range msgs {
		fmt.Println(notation.Format(m))
	}
	return nil
}

func send(args []string) error {
	if len(args) < 2 {
		return errors.New("usage: send <port> <line>...")
	}
	defer gomidi.CloseDriver()

	msgs, err := parseArgs(args[1:])
	if err != nil {
		return err
	}
	router := output.NewRouter(nil)
	for _, m := range msgs {
		if err := router.Send(args[0], m); err != nil {
			return err
		}
		log.WithField("port", args[0]).Infof("sent %v", m)
	}
	return nil
}

func sendSerial(cfg *config.Config, args []string) error {
	if len(args) < 2 {
		return errors.New("usage: serial <device> <line>...")
	}
	msgs, err := parseArgs(args[1:])
	if err != nil {
		return err
	}

	w, err := output.OpenSerial(args[0], cfg.Baud())
	if err != nil {
		return err
	}
	defer w.Close()

	encoders := make([]midi.Encoder, len(msgs))
	for i, m := range msgs {
		encoders[i] = m
	}
	if err := w.Write(encoders...); err != nil {
		return err
	}
	log.WithFields(log.Fields{"device": w.Device(), "blocks": w.Blocks()}).Info("written")
	return nil
}

// panicPort silences the configured default channel on a port. The port
// defaults to output.portName from the config.
func panicPort(cfg *config.Config, args []string) error {
	port := cfg.Output.PortName
	if len(args) > 0 {
		port = args[0]
	}
	if port == "" {
		return errors.New("usage: panic <port>")
	}
	ch, err := cfg.Channel()
	if err != nil {
		return err
	}
	defer gomidi.CloseDriver()

	router := output.NewRouter(nil)
	if err := router.Send(port,
		midi.AllSoundOff{Channel: ch},
		midi.AllNotesOff{Channel: ch},
		midi.ResetAllControllers{Channel: ch},
	); err != nil {
		return err
	}
	log.WithFields(log.Fields{"port": port, "channel": ch}).Info("silenced")
	return nil
}
