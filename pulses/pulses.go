// Package pulses simulates the module-and-pulse machine (day 20).
// A button press sends a low pulse to the broadcaster; flip-flops ('%')
// toggle on low pulses, conjunctions ('&') remember the last pulse from
// each input and invert, and pulses propagate in breadth-first order.
//
// Part 1 presses the button 1000 times and multiplies the low and high
// pulse counts. Part 2 finds the press at which "rx" first receives a
// low pulse: rx hangs off a single conjunction, each of whose inputs
// goes high on an independent cycle, so the answer is the least common
// multiple of those cycle lengths.
package pulses

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors.
var (
	// ErrBadModule indicates a configuration line outside "name -> a, b".
	ErrBadModule = errors.New("pulses: malformed module")
	// ErrNoBroadcaster indicates a configuration without a broadcaster.
	ErrNoBroadcaster = errors.New("pulses: no broadcaster")
	// ErrNoFinalMachine indicates part 2 on a machine that never feeds
	// rx through a conjunction.
	ErrNoFinalMachine = errors.New("pulses: rx has no conjunction feeder")
)

const (
	broadcaster = "broadcaster"
	button      = "button"
	sink        = "rx"
)

type kind int

const (
	kindBroadcast kind = iota
	kindFlipFlop
	kindConjunction
)

type module struct {
	kind kind
	dest []string
}

type machine struct {
	modules map[string]module
	inputs  map[string][]string
}

func parse(input string) (*machine, error) {
	m := &machine{modules: make(map[string]module), inputs: make(map[string][]string)}
	for _, line := range strings.Split(strings.TrimRight(input, "\n"), "\n") {
		head, destStr, ok := strings.Cut(line, " -> ")
		if !ok || head == "" {
			return nil, fmt.Errorf("%w: %q", ErrBadModule, line)
		}
		mod := module{dest: strings.Split(destStr, ", ")}
		name := head
		switch {
		case head == broadcaster:
			mod.kind = kindBroadcast
		case head[0] == '%':
			mod.kind, name = kindFlipFlop, head[1:]
		case head[0] == '&':
			mod.kind, name = kindConjunction, head[1:]
		default:
			return nil, fmt.Errorf("%w: %q", ErrBadModule, line)
		}
		if name == "" {
			return nil, fmt.Errorf("%w: %q", ErrBadModule, line)
		}
		m.modules[name] = mod
	}
	if _, ok := m.modules[broadcaster]; !ok {
		return nil, ErrNoBroadcaster
	}
	for name, mod := range m.modules {
		for _, d := range mod.dest {
			m.inputs[d] = append(m.inputs[d], name)
		}
	}
	return m, nil
}

type pulse struct {
	from, to string
	high     bool
}

// state holds the mutable simulation state: flip-flop bits and the
// remembered last pulse per conjunction input.
type state struct {
	flip map[string]bool
	mem  map[string]map[string]bool
}

func (m *machine) newState() *state {
	st := &state{flip: make(map[string]bool), mem: make(map[string]map[string]bool)}
	for name, mod := range m.modules {
		if mod.kind != kindConjunction {
			continue
		}
		st.mem[name] = make(map[string]bool)
		for _, in := range m.inputs[name] {
			st.mem[name][in] = false
		}
	}
	return st
}

// press sends one button pulse and drains the queue, invoking observe
// for every pulse delivered.
func (m *machine) press(st *state, observe func(pulse)) {
	queue := []pulse{{from: button, to: broadcaster, high: false}}
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		observe(p)
		mod, ok := m.modules[p.to]
		if !ok {
			continue // untyped sink such as "output" or "rx"
		}
		var out, send bool
		switch mod.kind {
		case kindBroadcast:
			out, send = p.high, true
		case kindFlipFlop:
			if !p.high {
				st.flip[p.to] = !st.flip[p.to]
				out, send = st.flip[p.to], true
			}
		case kindConjunction:
			st.mem[p.to][p.from] = p.high
			out = false
			for _, high := range st.mem[p.to] {
				if !high {
					out = true
					break
				}
			}
			send = true
		}
		if !send {
			continue
		}
		for _, d := range mod.dest {
			queue = append(queue, pulse{from: p.to, to: d, high: out})
		}
	}
}

// Part1 multiplies the low and high pulse counts over 1000 presses.
func Part1(input string) (int, error) {
	m, err := parse(input)
	if err != nil {
		return 0, err
	}
	st := m.newState()
	var lows, highs int
	for i := 0; i < 1000; i++ {
		m.press(st, func(p pulse) {
			if p.high {
				highs++
			} else {
				lows++
			}
		})
	}
	return lows * highs, nil
}

// Part2 returns the first button press that delivers a low pulse to rx.
func Part2(input string) (int, error) {
	m, err := parse(input)
	if err != nil {
		return 0, err
	}
	feeders := m.inputs[sink]
	if len(feeders) != 1 || m.modules[feeders[0]].kind != kindConjunction {
		return 0, ErrNoFinalMachine
	}
	feeder := feeders[0]

	// Each input of the feeder conjunction pulses high periodically from
	// the first press that triggers it; rx goes low when they align.
	cycles := make(map[string]int)
	pending := len(m.inputs[feeder])
	st := m.newState()
	for presses := 1; pending > 0; presses++ {
		m.press(st, func(p pulse) {
			if p.to != feeder || !p.high {
				return
			}
			if _, seen := cycles[p.from]; !seen {
				cycles[p.from] = presses
				pending--
			}
		})
	}
	answer := 1
	for _, c := range cycles {
		answer = lcm(answer, c)
	}
	return answer, nil
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func lcm(a, b int) int { return a / gcd(a, b) * b }
