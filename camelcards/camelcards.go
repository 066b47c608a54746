// Package camelcards ranks the poker-like hands of day 7 and totals the
// winnings. In the joker variant, J cards are the weakest individually but
// count as whatever card makes the hand type strongest.
package camelcards

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Sentinel errors for hand parsing.
var (
	// ErrBadHand indicates a line without a 5-card hand and a bid.
	ErrBadHand = errors.New("camelcards: malformed hand line")
	// ErrBadCard indicates a character that is not a card label.
	ErrBadCard = errors.New("camelcards: unknown card label")
)

// handType orders the seven hand classes, weakest first.
type handType int

const (
	highCard handType = iota + 1
	onePair
	twoPair
	threeOfKind
	fullHouse
	fourOfKind
	fiveOfKind
)

// cardValue maps a label to its strength. In joker play J drops below 2.
func cardValue(label byte, jokers bool) (int, error) {
	switch label {
	case 'A':
		return 14, nil
	case 'K':
		return 13, nil
	case 'Q':
		return 12, nil
	case 'J':
		if jokers {
			return 1, nil
		}
		return 11, nil
	case 'T':
		return 10, nil
	case '2', '3', '4', '5', '6', '7', '8', '9':
		return int(label - '0'), nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrBadCard, label)
	}
}

// classify determines the hand type from card counts. Jokers join the
// most numerous other card, which is always optimal for the type ranking.
func classify(cards [5]int, jokers bool) handType {
	counts := make(map[int]int, 5)
	jokerCount := 0
	for _, c := range cards {
		if jokers && c == 1 {
			jokerCount++
			continue
		}
		counts[c]++
	}
	best, pairs := 0, 0
	for _, n := range counts {
		if n > best {
			best = n
		}
		if n == 2 {
			pairs++
		}
	}
	best += jokerCount
	switch {
	case best == 5:
		return fiveOfKind
	case best == 4:
		return fourOfKind
	case best == 3 && pairs > 0 && jokerCount == 0,
		best == 3 && pairs == 2 && jokerCount == 1:
		return fullHouse
	case best == 3:
		return threeOfKind
	case pairs == 2:
		return twoPair
	case best == 2:
		return onePair
	default:
		return highCard
	}
}

type hand struct {
	cards [5]int
	typ   handType
	bid   int
}

func parseHand(line string, jokers bool) (hand, error) {
	cardStr, bidStr, ok := strings.Cut(line, " ")
	if !ok || len(cardStr) != 5 {
		return hand{}, fmt.Errorf("%w: %q", ErrBadHand, line)
	}
	var h hand
	for i := 0; i < 5; i++ {
		v, err := cardValue(cardStr[i], jokers)
		if err != nil {
			return hand{}, err
		}
		h.cards[i] = v
	}
	bid, err := strconv.Atoi(strings.TrimSpace(bidStr))
	if err != nil {
		return hand{}, fmt.Errorf("%w: bid in %q", ErrBadHand, line)
	}
	h.bid = bid
	h.typ = classify(h.cards, jokers)
	return h, nil
}

// less orders two hands: weaker type first, ties broken card by card.
func less(a, b hand) bool {
	if a.typ != b.typ {
		return a.typ < b.typ
	}
	for i := 0; i < 5; i++ {
		if a.cards[i] != b.cards[i] {
			return a.cards[i] < b.cards[i]
		}
	}
	return false
}

func totalWinnings(input string, jokers bool) (int, error) {
	lines := strings.Split(strings.TrimRight(input, "\n"), "\n")
	hands := make([]hand, 0, len(lines))
	for _, line := range lines {
		h, err := parseHand(line, jokers)
		if err != nil {
			return 0, err
		}
		hands = append(hands, h)
	}
	sort.Slice(hands, func(i, j int) bool { return less(hands[i], hands[j]) })
	total := 0
	for rank, h := range hands {
		total += (rank + 1) * h.bid
	}
	return total, nil
}

// Part1 totals rank×bid with plain hand ranking.
func Part1(input string) (int, error) {
	return totalWinnings(input, false)
}

// Part2 totals rank×bid with J as joker.
func Part2(input string) (int, error) {
	return totalWinnings(input, true)
}
