// Package wasteland follows the left/right network instructions of day 8.
// Part 1 walks AAA to ZZZ; part 2 walks every ..A node simultaneously,
// which terminates only after the least common multiple of the individual
// cycle lengths.
package wasteland

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for the network walk.
var (
	// ErrBadNetwork indicates input without an instruction line and node map.
	ErrBadNetwork = errors.New("wasteland: malformed network")
	// ErrUnknownNode indicates a walk reaching a node with no map entry.
	ErrUnknownNode = errors.New("wasteland: node not in network")
	// ErrNoRoute indicates a walk that can never reach its goal: every
	// (node, instruction-offset) state repeated without arriving.
	ErrNoRoute = errors.New("wasteland: goal unreachable")
)

type pair struct {
	left, right string
}

type network struct {
	instructions string
	nodes        map[string]pair
}

func parse(input string) (*network, error) {
	header, rest, ok := strings.Cut(strings.TrimRight(input, "\n"), "\n\n")
	if !ok || header == "" {
		return nil, fmt.Errorf("%w: want instructions, blank line, node map", ErrBadNetwork)
	}
	for _, r := range header {
		if r != 'L' && r != 'R' {
			return nil, fmt.Errorf("%w: instruction %q", ErrBadNetwork, r)
		}
	}
	n := &network{instructions: header, nodes: make(map[string]pair)}
	for _, line := range strings.Split(rest, "\n") {
		from, to, ok := strings.Cut(line, " = (")
		if !ok {
			return nil, fmt.Errorf("%w: node line %q", ErrBadNetwork, line)
		}
		left, right, ok := strings.Cut(strings.TrimSuffix(to, ")"), ", ")
		if !ok {
			return nil, fmt.Errorf("%w: node line %q", ErrBadNetwork, line)
		}
		n.nodes[from] = pair{left: left, right: right}
	}
	return n, nil
}

// walk counts steps from start until done reports true. The state space is
// bounded by nodes × instruction offsets; exceeding it means the goal is
// unreachable.
func (n *network) walk(start string, done func(string) bool) (int, error) {
	limit := len(n.nodes) * len(n.instructions)
	cur := start
	for steps := 0; steps <= limit; steps++ {
		if done(cur) {
			return steps, nil
		}
		p, ok := n.nodes[cur]
		if !ok {
			return 0, fmt.Errorf("%w: %q", ErrUnknownNode, cur)
		}
		if n.instructions[steps%len(n.instructions)] == 'L' {
			cur = p.left
		} else {
			cur = p.right
		}
	}
	return 0, fmt.Errorf("%w: from %q", ErrNoRoute, start)
}

// Part1 counts the steps from AAA to ZZZ.
func Part1(input string) (int, error) {
	n, err := parse(input)
	if err != nil {
		return 0, err
	}
	return n.walk("AAA", func(node string) bool { return node == "ZZZ" })
}

// Part2 counts the steps until every walk starting at a ..A node stands on
// a ..Z node at once. Each start reaches its ..Z on a fixed cycle, so the
// simultaneous arrival is the LCM of the individual step counts; stepping
// all ghosts together would take that many iterations to terminate.
func Part2(input string) (int, error) {
	n, err := parse(input)
	if err != nil {
		return 0, err
	}
	total := 1
	found := false
	for node := range n.nodes {
		if !strings.HasSuffix(node, "A") {
			continue
		}
		found = true
		steps, err := n.walk(node, func(node string) bool { return strings.HasSuffix(node, "Z") })
		if err != nil {
			return 0, err
		}
		total = lcm(total, steps)
	}
	if !found {
		return 0, fmt.Errorf("%w: no starting nodes", ErrNoRoute)
	}
	return total, nil
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func lcm(a, b int) int {
	return a / gcd(a, b) * b
}
