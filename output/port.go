package output

import (
	"sort"
	"sync"
	"time"

	"github.com/pkg/errors"
	gomidi "gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/drivers"

	"go-midiwire/debug"
	"go-midiwire/midi"
)

var (
	ErrPortNotFound = errors.New("midi output port not found")
	ErrPortTimeout  = errors.New("timed out listing midi ports")
)

// PortTimeout bounds how long listing ports may take. Some backends
// (CoreMIDI in particular) can hang.
const PortTimeout = 3 * time.Second

// SendFunc sends one gomidi message, as returned by gomidi.SendTo
type SendFunc func(gomidi.Message) error

// PortSender sends lowered blocks to one gomidi output. A block is sent as
// its gomidi messages in order, under a lock, so blocks never interleave.
type PortSender struct {
	name string
	mu   sync.Mutex
	send SendFunc
}

// NewPortSender wraps a send function for the named port
func NewPortSender(name string, send SendFunc) *PortSender {
	return &PortSender{name: name, send: send}
}

// Name returns the port name
func (p *PortSender) Name() string {
	return p.name
}

// Send lowers each message and sends the blocks in order
func (p *PortSender) Send(msgs ...midi.Encoder) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	for _, m := range msgs {
		for _, gm := range midi.Gomidi(m) {
			if err := p.send(gm); err != nil {
				return errors.Wrapf(err, "send %v to %s", m, p.name)
			}
		}
		if _, ok := m.(midi.TimingClock); ok {
			debug.LogEvery(24, "port", "%s <- clock", p.name)
			continue
		}
		debug.Log("port", "%s <- %v", p.name, m)
	}
	return nil
}

// Opener opens the named output port
type Opener func(name string) (SendFunc, error)

// Router lazily opens and caches one PortSender per output port name
type Router struct {
	open    Opener
	senders map[string]*PortSender
	mu      sync.RWMutex
}

// NewRouter creates a router. A nil opener uses OpenPort.
func NewRouter(open Opener) *Router {
	if open == nil {
		open = OpenPort
	}
	return &Router{
		open:    open,
		senders: make(map[string]*PortSender),
	}
}

// Sender returns the sender for the named port, opening it on first use
func (r *Router) Sender(name string) (*PortSender, error) {
	r.mu.RLock()
	if s, ok := r.senders[name]; ok {
		r.mu.RUnlock()
		return s, nil
	}
	r.mu.RUnlock()

	r.mu.Lock()
	defer r.mu.Unlock()

	// Double-check after acquiring write lock
	if s, ok := r.senders[name]; ok {
		return s, nil
	}

	send, err := r.open(name)
	if err != nil {
		return nil, err
	}
	s := NewPortSender(name, send)
	r.senders[name] = s
	debug.Log("port", "opened %s", name)
	return s, nil
}

// Send sends messages to the named port
func (r *Router) Send(name string, msgs ...midi.Encoder) error {
	s, err := r.Sender(name)
	if err != nil {
		return err
	}
	return s.Send(msgs...)
}

// Open returns the names of the ports opened so far, sorted
func (r *Router) Open() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.senders))
	for name := range r.senders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// OutPorts lists gomidi output ports, giving up after timeout
func OutPorts(timeout time.Duration) ([]drivers.Out, error) {
	ch := make(chan []drivers.Out, 1)
	go func() {
		ch <- gomidi.GetOutPorts()
	}()

	select {
	case outs := <-ch:
		return outs, nil
	case <-time.After(timeout):
		// CoreMIDI is hung; sudo killall coreaudiod midiserver
		return nil, ErrPortTimeout
	}
}

// OpenPort finds the output port with exactly this name and opens it
func OpenPort(name string) (SendFunc, error) {
	outs, err := OutPorts(PortTimeout)
	if err != nil {
		return nil, err
	}
	for _, port := range outs {
		if port.String() == name {
			send, err := gomidi.SendTo(port)
			if err != nil {
				return nil, errors.Wrapf(err, "open %q", name)
			}
			return send, nil
		}
	}
	return nil, errors.Wrapf(ErrPortNotFound, "%q", name)
}
