package earley

import (
	"fmt"
	"strings"

	"github.com/alecthomas/earley/grammar"
	"github.com/alecthomas/earley/lexer"
	"go.uber.org/zap"
)

// Chart is the sequence of StateSets built by Recognise, one per input
// position consumed plus the initial set.
type Chart []*StateSet

// Recognise runs the predict/scan/complete main loop described in
// spec.md §4.3 over stream and g, producing a chart and the token
// vector actually consumed. A non-nil logger receives Debug-level
// entries for each predict/scan/complete transition.
func Recognise(stream *lexer.Stream, g *grammar.Grammar, logger *zap.Logger) (Chart, []lexer.Token, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	first := NewStateSet()
	for i := 0; i < g.NumRules(); i++ {
		id := grammar.RuleID(i)
		if g.IsAxiom(g.Rule(id).LHS) {
			first.Add(Item{Rule: id, Origin: 0, Position: 0})
		}
	}

	chart := Chart{first}
	var rawInput []lexer.Token
	pos := 0

	for {
		current := chart[len(chart)-1]
		next := NewStateSet()
		scans := map[lexer.TerminalID][]Item{}
		var scanOrder []lexer.TerminalID

		for {
			item, ok := current.Next()
			if !ok {
				break
			}
			rule := g.Rule(item.Rule)

			if item.Position < len(rule.Elements) {
				elem := rule.Elements[item.Position]
				switch elem.Kind {
				case grammar.ElementNonTerminal:
					// Predict.
					logger.Debug("predict", zap.Int("position", pos), zap.Int("nonterminal", int(elem.NonTerminal)))
					for _, r := range g.RulesOf(elem.NonTerminal) {
						current.Add(Item{Rule: r, Origin: pos, Position: 0})
					}
					if g.Nullable(elem.NonTerminal) {
						current.Add(Item{Rule: item.Rule, Origin: item.Origin, Position: item.Position + 1})
					}
				case grammar.ElementTerminal:
					// Scan.
					logger.Debug("scan", zap.Int("position", pos), zap.Int("terminal", int(elem.Terminal)))
					if _, seen := scans[elem.Terminal]; !seen {
						scanOrder = append(scanOrder, elem.Terminal)
					}
					scans[elem.Terminal] = append(scans[elem.Terminal], Item{
						Rule: item.Rule, Origin: item.Origin, Position: item.Position + 1,
					})
				}
				continue
			}

			// Complete.
			logger.Debug("complete", zap.Int("position", pos), zap.Int("rule", int(item.Rule)))
			for _, parent := range chart[item.Origin].Items() {
				prule := g.Rule(parent.Rule)
				if parent.Position >= len(prule.Elements) {
					continue
				}
				pelem := prule.Elements[parent.Position]
				if pelem.Kind == grammar.ElementNonTerminal && pelem.NonTerminal == rule.LHS {
					current.Add(Item{Rule: parent.Rule, Origin: parent.Origin, Position: parent.Position + 1})
				}
			}
		}

		tok, err := stream.Next(lexer.SomeTerminals(scanOrder...))
		if err != nil {
			return nil, nil, scanFailure(stream, scanOrder, err)
		}

		if tok != nil {
			for _, item := range scans[tok.ID] {
				next.Add(item)
			}
			rawInput = append(rawInput, *tok)
			chart = append(chart, next)
			pos++
			continue
		}

		if acceptsEmpty(g, current) {
			return chart, rawInput, nil
		}
		return nil, nil, &lexer.SyntaxError{
			Span_:    stream.LastLocation(),
			Message_: "Reached EOF but parsing isn't done.",
		}
	}
}

// acceptsEmpty reports whether set contains a completed axiom item
// originating at 0, i.e. whether the empty continuation is a valid
// parse.
func acceptsEmpty(g *grammar.Grammar, set *StateSet) bool {
	for _, item := range set.Items() {
		rule := g.Rule(item.Rule)
		if item.Origin == 0 && item.Position == len(rule.Elements) && g.IsAxiom(rule.LHS) {
			return true
		}
	}
	return false
}

// scanFailure builds the diagnostic for a lexing error encountered while
// restricted to scanOrder: it retries unrestricted to name the offending
// token and suggest the terminals that would have advanced some item.
// If even an unrestricted scan fails, the original error is propagated
// unchanged — it is a genuine lexical error, not a parser-level one.
func scanFailure(stream *lexer.Stream, scanOrder []lexer.TerminalID, restrictedErr error) error {
	tok, err := stream.Next(lexer.AllTerminals())
	if err != nil {
		return err
	}
	if tok == nil {
		return &lexer.SyntaxError{
			Span_:    stream.LastLocation(),
			Message_: "Reached EOF but parsing isn't done.",
		}
	}

	names := make([]string, 0, len(scanOrder))
	for _, id := range scanOrder {
		names = append(names, stream.Grammar().Name(id))
	}
	message := fmt.Sprintf("The token %s doesn't make sense here.\nYou could try %s instead.",
		tok.Name, strings.Join(names, ", "))
	return &lexer.SyntaxError{Span_: tok.Span, Message_: message}
}
