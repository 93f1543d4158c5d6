package core

type DevAction int

const (
	DevPassthrough DevAction = iota
	DevRewrite
	DevSynthesize
)

func (a DevAction) String() string {
	switch a {
	case DevRewrite:
		return "rewrite"
	case DevSynthesize:
		return "synthesize"
	default:
		return "passthrough"
	}
}

type DevDecision struct {
	Action DevAction
	Rule   RouteRule
	// RewritePath is the request path for DevRewrite.
	RewritePath string
	// ScriptSrc is the module script source for DevSynthesize.
	ScriptSrc string
}

// DecideDevRequest picks how the dev server answers requestPath. HTML entries
// are handed to the next handler under their own path; other entries are
// wrapped in their template.
func DecideDevRequest(rules RuleTable, requestPath string) DevDecision {
	rule, ok := rules.Match(requestPath)
	if !ok {
		return DevDecision{Action: DevPassthrough}
	}

	target := "/" + NormalizeEntryFile(rule.Target)

	if rule.TargetIsHTML() {
		return DevDecision{Action: DevRewrite, Rule: rule, RewritePath: target}
	}

	if rule.Template == "" {
		return DevDecision{Action: DevPassthrough, Rule: rule}
	}

	return DevDecision{Action: DevSynthesize, Rule: rule, ScriptSrc: target}
}
