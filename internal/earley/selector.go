package earley

import (
	"github.com/alecthomas/earley/grammar"
	"github.com/alecthomas/earley/lexer"
	"go.uber.org/zap"
)

type itemKind int

const (
	itemKindRule itemKind = iota
	itemKindToken
)

// syntaxItem is one node in the selected derivation tree: either a rule
// expansion spanning [start, end), or a single consumed token.
type syntaxItem struct {
	kind  itemKind
	rule  grammar.RuleID
	token lexer.Token
	start int
	end   int
}

type boundary struct {
	children []syntaxItem
	pos      int
}

// findChildren returns, for a Rule syntaxItem, the ordered list of child
// syntaxItems chosen for its expansion, per spec.md §4.5.
func findChildren(item syntaxItem, forest Forest, rawInput []lexer.Token, g *grammar.Grammar, logger *zap.Logger) []syntaxItem {
	if item.kind == itemKindToken {
		return nil
	}

	rule := g.Rule(item.rule)
	boundaries := []boundary{{children: nil, pos: item.start}}

	for _, elem := range rule.Elements {
		var next []boundary
		for _, b := range boundaries {
			switch elem.Kind {
			case grammar.ElementNonTerminal:
				for _, final := range forest[b.pos].CompletionsOf(elem.NonTerminal) {
					if final.End > item.end {
						continue
					}
					child := syntaxItem{kind: itemKindRule, rule: final.Rule, start: b.pos, end: final.End}
					next = append(next, boundary{children: appendCopy(b.children, child), pos: final.End})
				}
			case grammar.ElementTerminal:
				if b.pos < item.end && rawInput[b.pos].ID == elem.Terminal {
					child := syntaxItem{kind: itemKindToken, token: rawInput[b.pos], start: b.pos, end: b.pos + 1}
					next = append(next, boundary{children: appendCopy(b.children, child), pos: b.pos + 1})
				}
			}
		}
		boundaries = next
	}

	var best []syntaxItem
	haveBest := false
	candidates := 0
	for _, b := range boundaries {
		if b.pos != item.end {
			continue
		}
		candidates++
		if !haveBest || childrenLess(best, b.children, rule.LeftAssociative) {
			best = b.children
			haveBest = true
		}
	}
	if candidates > 1 {
		logger.Debug("ambiguity resolved",
			zap.Int("rule", int(item.rule)), zap.Int("candidates", candidates))
	}
	return best
}

func appendCopy(base []syntaxItem, item syntaxItem) []syntaxItem {
	out := make([]syntaxItem, len(base), len(base)+1)
	copy(out, base)
	return append(out, item)
}

// childrenLess reports whether left sorts before right under the total
// order of spec.md §4.5 step 3: compare pairwise by position, skipping
// Token children (they compare equal); for a Rule/Rule pair, associativity
// picks the ordering by start position, with RuleId as a tiebreak that
// also doubles as declared precedence.
//
// The comparison walks children last-to-first, mirroring the reference
// recognizer's reversed cons-list (earley.rs:523-556). For a binary rule
// E -> E op E, every candidate shares the same start position on its
// first (left) child, so a forward walk would always resolve on the
// RuleId tiebreak before ever reaching the right child whose start
// position actually varies between candidates.
func childrenLess(left, right []syntaxItem, leftAssociative bool) bool {
	for i := len(left) - 1; i >= 0; i-- {
		if i >= len(right) {
			continue
		}
		l, r := left[i], right[i]
		if l.kind != itemKindRule || r.kind != itemKindRule {
			continue
		}
		var assoc int
		if leftAssociative {
			assoc = cmpInt(l.start, r.start)
		} else {
			assoc = cmpInt(r.start, l.start)
		}
		if assoc != 0 {
			if assoc < 0 {
				return true
			}
			return false
		}
		if l.rule != r.rule {
			return l.rule < r.rule
		}
	}
	return false
}

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// SelectTree picks exactly one derivation tree from forest and builds its
// AST, per spec.md §4.5-§4.6. The root candidate set is every FinalItem
// in forest[0] spanning the whole input whose rule's LHS is an axiom;
// ties are broken by the largest RuleID, the same way childrenLess ranks
// rules, so a later-declared rule becomes the outer node and
// earlier-declared rules bind tighter.
func SelectTree(forest Forest, rawInput []lexer.Token, g *grammar.Grammar, logger *zap.Logger) AST {
	if logger == nil {
		logger = zap.NewNop()
	}
	var best grammar.RuleID
	haveBest := false
	for _, final := range forest[0].Items {
		if final.End != len(rawInput) {
			continue
		}
		if !g.IsAxiom(g.Rule(final.Rule).LHS) {
			continue
		}
		if !haveBest || final.Rule > best {
			best = final.Rule
			haveBest = true
		}
	}

	root := syntaxItem{kind: itemKindRule, rule: best, start: 0, end: len(rawInput)}
	return buildAST(root, forest, rawInput, g, logger)
}
