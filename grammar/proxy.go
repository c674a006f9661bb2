package grammar

import "fmt"

// InvalidProxyError reports a rule whose proxy references an attribute
// key that none of its elements produce. The grammar-source front end
// that would normally catch this while parsing rule bodies is out of
// scope here (spec.md §6), so the builder checks it directly, the way
// the reference implementation's grammar-source parser rejects malformed
// proxies before a grammar is ever handed to the recognizer.
type InvalidProxyError struct {
	Rule RuleID
	Key  string
}

func (e *InvalidProxyError) Error() string {
	return fmt.Sprintf("rule %d: proxy references unknown attribute %q", e.Rule, e.Key)
}

// checkProxies validates that every ProxyReference (including ones
// nested inside ProxyNode constructors) resolves to a key produced by
// one of the rule's own elements.
func (b *Builder) checkProxies() error {
	for i, rule := range b.rules {
		produced := map[string]bool{}
		for _, e := range rule.Elements {
			if e.Key != "" {
				produced[e.Key] = true
			}
		}
		if err := checkProxyEntries(RuleID(i), rule.Proxy, produced); err != nil {
			return err
		}
	}
	return nil
}

func checkProxyEntries(ruleID RuleID, entries []ProxyEntry, produced map[string]bool) error {
	for _, entry := range entries {
		switch entry.Value.Kind {
		case ProxyReference:
			if !produced[entry.Value.Reference] {
				return &InvalidProxyError{Rule: ruleID, Key: entry.Value.Reference}
			}
		case ProxyNode:
			if err := checkProxyEntries(ruleID, entry.Value.NodeProxy, produced); err != nil {
				return err
			}
		}
	}
	return nil
}
