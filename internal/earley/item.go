// Package earley implements the recognizer/forest/selector/evaluator
// core: the predict/scan/complete loop over a parser Grammar, forest
// construction, ambiguity-resolving tree selection and attribute
// evaluation into a structured AST.
package earley

import "github.com/alecthomas/earley/grammar"

// Item is a partially recognized handle: if item.Rule refers to
// `β → α_1…α_n`, the item means `β → α_1…α_i · α_{i+1}…α_n (j)` where
// `i = item.Position` and `j = item.Origin`.
type Item struct {
	Rule     grammar.RuleID
	Origin   int
	Position int
}

// StateSet is an ordered sequence of Items with a hash-set dedup cache
// and a cursor marking the next item to process, per spec.md §3. Items
// are appended at most once and processed exactly once by the
// recognizer's predict/scan/complete loop.
type StateSet struct {
	items  []Item
	seen   map[Item]bool
	cursor int
}

// NewStateSet returns an empty StateSet.
func NewStateSet() *StateSet {
	return &StateSet{seen: map[Item]bool{}}
}

// Add appends item if it is not already present.
func (s *StateSet) Add(item Item) {
	if s.seen[item] {
		return
	}
	s.seen[item] = true
	s.items = append(s.items, item)
}

// Next returns the next unprocessed item and advances the cursor, or
// (Item{}, false) once every item currently in the set has been
// returned. Because Add can append items discovered while processing
// earlier ones, calling Next again after new items were added continues
// to yield them — the processing loop runs to a fixed point.
func (s *StateSet) Next() (Item, bool) {
	if s.cursor >= len(s.items) {
		return Item{}, false
	}
	item := s.items[s.cursor]
	s.cursor++
	return item, true
}

// IsEmpty reports whether the set holds no items.
func (s *StateSet) IsEmpty() bool { return len(s.items) == 0 }

// Items returns the accumulated items in insertion order.
func (s *StateSet) Items() []Item { return s.items }

// Len returns the number of items in the set.
func (s *StateSet) Len() int { return len(s.items) }
