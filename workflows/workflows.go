// Package workflows sorts machine parts through named rule chains
// (day 19). A part has four ratings (x, m, a, s); each workflow is a list
// of threshold rules ending in an unconditional jump, and parts flow from
// "in" until accepted or rejected.
//
// Part 1 runs the listed parts and sums the ratings of the accepted
// ones. Part 2 counts the accepted combinations over all 4000^4 rating
// assignments by pushing axis-aligned rating boxes through the rules,
// splitting a box at each threshold instead of enumerating parts.
package workflows

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Sentinel errors.
var (
	// ErrBadWorkflow indicates a workflow line outside "name{rules}".
	ErrBadWorkflow = errors.New("workflows: malformed workflow")
	// ErrBadPart indicates a part line outside "{x=..,m=..,a=..,s=..}".
	ErrBadPart = errors.New("workflows: malformed part")
	// ErrUnknownTarget indicates a jump to a workflow that does not exist.
	ErrUnknownTarget = errors.New("workflows: unknown workflow")
)

const (
	entry     = "in"
	accepted  = "A"
	rejected  = "R"
	minRating = 1
	maxRating = 4000
)

// axes maps the rating letters to box/part indices.
var axes = map[byte]int{'x': 0, 'm': 1, 'a': 2, 's': 3}

// rule compares one rating axis against a threshold; a rule with op 0 is
// the unconditional tail jump.
type rule struct {
	axis      int
	op        byte // '<', '>', or 0
	threshold int
	target    string
}

type part [4]int

func (p part) total() int { return p[0] + p[1] + p[2] + p[3] }

type system struct {
	flows map[string][]rule
	parts []part
}

func parseRule(s string) (rule, error) {
	cond, target, ok := strings.Cut(s, ":")
	if !ok {
		return rule{target: s}, nil
	}
	if len(cond) < 3 {
		return rule{}, fmt.Errorf("%w: rule %q", ErrBadWorkflow, s)
	}
	axis, ok := axes[cond[0]]
	if !ok || (cond[1] != '<' && cond[1] != '>') || target == "" {
		return rule{}, fmt.Errorf("%w: rule %q", ErrBadWorkflow, s)
	}
	threshold, err := strconv.Atoi(cond[2:])
	if err != nil {
		return rule{}, fmt.Errorf("%w: rule %q", ErrBadWorkflow, s)
	}
	return rule{axis: axis, op: cond[1], threshold: threshold, target: target}, nil
}

func parsePart(line string) (part, error) {
	body, ok := strings.CutPrefix(line, "{")
	body, ok2 := strings.CutSuffix(body, "}")
	fields := strings.Split(body, ",")
	if !ok || !ok2 || len(fields) != 4 {
		return part{}, fmt.Errorf("%w: %q", ErrBadPart, line)
	}
	var p part
	for _, f := range fields {
		if len(f) < 3 || f[1] != '=' {
			return part{}, fmt.Errorf("%w: rating %q", ErrBadPart, f)
		}
		axis, ok := axes[f[0]]
		if !ok {
			return part{}, fmt.Errorf("%w: rating %q", ErrBadPart, f)
		}
		v, err := strconv.Atoi(f[2:])
		if err != nil {
			return part{}, fmt.Errorf("%w: rating %q", ErrBadPart, f)
		}
		p[axis] = v
	}
	return p, nil
}

func parse(input string) (*system, error) {
	flowBlock, partBlock, ok := strings.Cut(strings.TrimRight(input, "\n"), "\n\n")
	if !ok {
		return nil, fmt.Errorf("%w: missing blank separator", ErrBadWorkflow)
	}
	sys := &system{flows: make(map[string][]rule)}
	for _, line := range strings.Split(flowBlock, "\n") {
		name, body, ok := strings.Cut(line, "{")
		body, ok2 := strings.CutSuffix(body, "}")
		if !ok || !ok2 || name == "" {
			return nil, fmt.Errorf("%w: %q", ErrBadWorkflow, line)
		}
		var rules []rule
		for _, rs := range strings.Split(body, ",") {
			r, err := parseRule(rs)
			if err != nil {
				return nil, err
			}
			rules = append(rules, r)
		}
		if tail := rules[len(rules)-1]; tail.op != 0 {
			return nil, fmt.Errorf("%w: %q lacks a tail jump", ErrBadWorkflow, line)
		}
		sys.flows[name] = rules
	}
	for _, line := range strings.Split(partBlock, "\n") {
		p, err := parsePart(line)
		if err != nil {
			return nil, err
		}
		sys.parts = append(sys.parts, p)
	}
	// Validate jump targets up front so running cannot dead-end.
	for name, rules := range sys.flows {
		for _, r := range rules {
			if r.target == accepted || r.target == rejected {
				continue
			}
			if _, ok := sys.flows[r.target]; !ok {
				return nil, fmt.Errorf("%w: %q from %q", ErrUnknownTarget, r.target, name)
			}
		}
	}
	if _, ok := sys.flows[entry]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTarget, entry)
	}
	return sys, nil
}

// accepts runs one part from the entry workflow.
func (sys *system) accepts(p part) bool {
	name := entry
	for name != accepted && name != rejected {
		for _, r := range sys.flows[name] {
			if r.matches(p) {
				name = r.target
				break
			}
		}
	}
	return name == accepted
}

func (r rule) matches(p part) bool {
	switch r.op {
	case '<':
		return p[r.axis] < r.threshold
	case '>':
		return p[r.axis] > r.threshold
	}
	return true
}

// box is a product of closed rating intervals, one per axis.
type box [4]interval

type interval struct {
	lo, hi int
}

func (iv interval) empty() bool { return iv.lo > iv.hi }

func (b box) volume() int {
	v := 1
	for _, iv := range b {
		if iv.empty() {
			return 0
		}
		v *= iv.hi - iv.lo + 1
	}
	return v
}

// split carves the part of b matching the rule from the remainder.
func (r rule) split(b box) (match, rest box) {
	match, rest = b, b
	switch r.op {
	case '<':
		match[r.axis].hi = min(match[r.axis].hi, r.threshold-1)
		rest[r.axis].lo = max(rest[r.axis].lo, r.threshold)
	case '>':
		match[r.axis].lo = max(match[r.axis].lo, r.threshold+1)
		rest[r.axis].hi = min(rest[r.axis].hi, r.threshold)
	default:
		rest = box{}
		rest[0] = interval{lo: 1, hi: 0}
	}
	return match, rest
}

// countAccepted sums the volumes of the sub-boxes of b that reach "A"
// starting at the named workflow.
func (sys *system) countAccepted(name string, b box) int {
	if b.volume() == 0 {
		return 0
	}
	switch name {
	case accepted:
		return b.volume()
	case rejected:
		return 0
	}
	total := 0
	for _, r := range sys.flows[name] {
		match, rest := r.split(b)
		total += sys.countAccepted(r.target, match)
		b = rest
		if b.volume() == 0 {
			break
		}
	}
	return total
}

// Part1 sums the ratings of the accepted parts.
func Part1(input string) (int, error) {
	sys, err := parse(input)
	if err != nil {
		return 0, err
	}
	total := 0
	for _, p := range sys.parts {
		if sys.accepts(p) {
			total += p.total()
		}
	}
	return total, nil
}

// Part2 counts the accepted rating combinations over 1..4000 per axis.
func Part2(input string) (int, error) {
	sys, err := parse(input)
	if err != nil {
		return 0, err
	}
	full := box{}
	for i := range full {
		full[i] = interval{lo: minRating, hi: maxRating}
	}
	return sys.countAccepted(entry, full), nil
}
