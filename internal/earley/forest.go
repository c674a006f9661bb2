package earley

import (
	"fmt"

	"github.com/alecthomas/earley/grammar"
	"github.com/alecthomas/earley/lexer"
)

// FinalItem is a completed handle retained in the forest: rule matched
// in full, ending at position End.
type FinalItem struct {
	Rule grammar.RuleID
	End  int
}

// FinalSet holds every FinalItem whose origin is this set's position,
// plus an index from non-terminal id to the positions in Items that
// derive it, for O(1) "completions of A starting here" lookups.
type FinalSet struct {
	Position int
	Items    []FinalItem
	index    map[grammar.NonTerminalID][]int
}

func newFinalSet(position int) *FinalSet {
	return &FinalSet{Position: position, index: map[grammar.NonTerminalID][]int{}}
}

func (f *FinalSet) add(item FinalItem, g *grammar.Grammar) {
	lhs := g.Rule(item.Rule).LHS
	f.index[lhs] = append(f.index[lhs], len(f.Items))
	f.Items = append(f.Items, item)
}

// CompletionsOf returns the FinalItems in f derived from non-terminal id.
func (f *FinalSet) CompletionsOf(id grammar.NonTerminalID) []FinalItem {
	positions := f.index[id]
	out := make([]FinalItem, len(positions))
	for i, p := range positions {
		out[i] = f.Items[p]
	}
	return out
}

// Forest is one FinalSet per chart position.
type Forest []*FinalSet

// BuildForest converts a recognizer chart into a Forest, per spec.md
// §4.4: forest[i] collects a FinalItem{rule, end=j} for every completed
// item of chart[j] whose origin was i. A chart position that is empty
// before the final one means the input has no valid continuation from
// there, which is reported as a SyntaxError rather than silently
// producing an incomplete forest.
func BuildForest(chart Chart, rawInput []lexer.Token, g *grammar.Grammar) (Forest, error) {
	forest := make(Forest, len(chart))
	for i := range forest {
		forest[i] = newFinalSet(i)
	}

	for j, set := range chart {
		if set.IsEmpty() && j < len(chart)-1 {
			return nil, &lexer.SyntaxError{
				Span_:    rawInput[j].Span,
				Message_: fmt.Sprintf("Syntax error at token %d", j),
			}
		}
		for _, item := range set.Items() {
			rule := g.Rule(item.Rule)
			if item.Position != len(rule.Elements) {
				continue
			}
			forest[item.Origin].add(FinalItem{Rule: item.Rule, End: j}, g)
		}
	}

	return forest, nil
}
