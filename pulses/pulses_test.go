package pulses

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fixtureSimple = `broadcaster -> a, b, c
%a -> b
%b -> c
%c -> inv
&inv -> a
`

const fixtureInteresting = `broadcaster -> a
%a -> inv, con
&inv -> b
%b -> con
&con -> output
`

func TestPart1_SimpleFixture(t *testing.T) {
	got, err := Part1(fixtureSimple)
	require.NoError(t, err)
	assert.Equal(t, 32000000, got)
}

func TestPart1_InterestingFixture(t *testing.T) {
	got, err := Part1(fixtureInteresting)
	require.NoError(t, err)
	assert.Equal(t, 11687500, got)
}

func TestParse_Model(t *testing.T) {
	m, err := parse(fixtureInteresting)
	require.NoError(t, err)

	want := map[string]module{
		"broadcaster": {kind: kindBroadcast, dest: []string{"a"}},
		"a":           {kind: kindFlipFlop, dest: []string{"inv", "con"}},
		"inv":         {kind: kindConjunction, dest: []string{"b"}},
		"b":           {kind: kindFlipFlop, dest: []string{"con"}},
		"con":         {kind: kindConjunction, dest: []string{"output"}},
	}
	opt := cmp.AllowUnexported(module{})
	if diff := cmp.Diff(want, m.modules, opt); diff != "" {
		t.Errorf("modules mismatch (-want +got):\n%s", diff)
	}
	assert.ElementsMatch(t, []string{"a", "b"}, m.inputs["con"])
}

func TestPress_FirstPressCounts(t *testing.T) {
	m, err := parse(fixtureSimple)
	require.NoError(t, err)
	st := m.newState()
	var lows, highs int
	m.press(st, func(p pulse) {
		if p.high {
			highs++
		} else {
			lows++
		}
	})
	assert.Equal(t, 8, lows)
	assert.Equal(t, 4, highs)
}

func TestPress_StateReturnsHome(t *testing.T) {
	// The simple fixture is back in its initial state after one press,
	// so every press repeats the same 8 low / 4 high pattern.
	m, err := parse(fixtureSimple)
	require.NoError(t, err)
	st := m.newState()
	for i := 0; i < 3; i++ {
		var lows, highs int
		m.press(st, func(p pulse) {
			if p.high {
				highs++
			} else {
				lows++
			}
		})
		assert.Equal(t, 8, lows, "press %d", i+1)
		assert.Equal(t, 4, highs, "press %d", i+1)
	}
}

func TestPart2_FeederCycles(t *testing.T) {
	// Both feeder inputs go high on the first press, so rx goes low
	// immediately.
	input := `broadcaster -> a, b
%a -> con
%b -> con
&con -> rx
`
	got, err := Part2(input)
	require.NoError(t, err)
	assert.Equal(t, 1, got)
}

func TestPart2_NoFeeder(t *testing.T) {
	_, err := Part2(fixtureSimple)
	assert.ErrorIs(t, err, ErrNoFinalMachine)

	// rx fed by a flip-flop instead of a conjunction.
	_, err = Part2("broadcaster -> a\n%a -> rx\n")
	assert.ErrorIs(t, err, ErrNoFinalMachine)
}

func TestParse_Errors(t *testing.T) {
	_, err := parse("broadcaster a, b\n")
	assert.ErrorIs(t, err, ErrBadModule)

	_, err = parse("broadcaster -> a\n% -> b\n")
	assert.ErrorIs(t, err, ErrBadModule)

	_, err = parse("xa -> b\n")
	assert.ErrorIs(t, err, ErrBadModule)

	_, err = parse("%a -> b\n")
	assert.ErrorIs(t, err, ErrNoBroadcaster)
}
