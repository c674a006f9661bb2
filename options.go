package earley

import "go.uber.org/zap"

// Option modifies the behaviour of a Parser, following the functional-
// options pattern.
type Option func(p *Parser) error

// Trace attaches a logger that receives Debug-level structured entries
// for recognizer predict/scan/complete transitions and ambiguity
// resolution decisions made by the tree selector. A nil logger disables
// tracing, which is also the default.
func Trace(logger *zap.Logger) Option {
	return func(p *Parser) error {
		p.trace = logger
		return nil
	}
}
