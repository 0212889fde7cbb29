package output

import (
	"io"
	"sync"

	"github.com/pkg/errors"
	"go.bug.st/serial"

	"go-midiwire/debug"
	"go-midiwire/midi"
)

// DefaultBaudRate is the DIN-MIDI line rate
const DefaultBaudRate = 31250

// Writer writes lowered blocks to a byte stream. Each call to Write is
// written under one lock, so blocks from concurrent callers never interleave.
type Writer struct {
	mu     sync.Mutex
	w      io.Writer
	blocks uint64
}

// NewWriter wraps w
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Write lowers each message and writes the blocks in order. Messages given
// in one call stay together on the wire.
func (w *Writer) Write(msgs ...midi.Encoder) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	for _, m := range msgs {
		if err := w.writeBlock(m.ToRawMessages()); err != nil {
			return errors.Wrapf(err, "write %v", m)
		}
	}
	return nil
}

// WriteBlock writes an already lowered block.
func (w *Writer) WriteBlock(block []midi.RawMessage) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.writeBlock(block)
}

func (w *Writer) writeBlock(block []midi.RawMessage) error {
	data := midi.Encode(block)
	n, err := w.w.Write(data)
	if err != nil {
		return err
	}
	if n != len(data) {
		return errors.Wrapf(io.ErrShortWrite, "wrote %d of %d bytes", n, len(data))
	}
	w.blocks++
	debug.Log("out", "block %d: % X", w.blocks, data)
	return nil
}

// Blocks returns how many blocks have been written
func (w *Writer) Blocks() uint64 {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.blocks
}

// SerialWriter is a Writer on a serial port, e.g. a USB UART wired to a
// DIN-MIDI socket.
type SerialWriter struct {
	*Writer
	device string
	port   serial.Port
}

// OpenSerial opens the named serial device at the given baud rate. A baud
// rate of zero means DefaultBaudRate.
func OpenSerial(device string, baud int) (*SerialWriter, error) {
	if baud <= 0 {
		baud = DefaultBaudRate
	}
	mode := &serial.Mode{
		BaudRate: baud,
		DataBits: 8,
		Parity:   serial.NoParity,
		StopBits: serial.OneStopBit,
	}
	p, err := serial.Open(device, mode)
	if err != nil {
		return nil, errors.Wrapf(err, "open serial %s", device)
	}
	debug.Log("serial", "opened %s at %d baud", device, baud)
	return &SerialWriter{
		Writer: NewWriter(p),
		device: device,
		port:   p,
	}, nil
}

// Device returns the device name
func (s *SerialWriter) Device() string {
	return s.device
}

// Close waits for pending bytes to leave and closes the port
func (s *SerialWriter) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	debug.Log("serial", "closing %s", s.device)
	if err := s.port.Drain(); err != nil {
		debug.Log("serial", "drain %s: %v", s.device, err)
	}
	return errors.Wrapf(s.port.Close(), "close serial %s", s.device)
}

// SerialPorts lists serial devices
func SerialPorts() ([]string, error) {
	ports, err := serial.GetPortsList()
	return ports, errors.Wrap(err, "list serial ports")
}
