package preset

import (
	"github.com/hashicorp/go-hclog"

	"github.com/lintsmith/lintsmith/internal/rules"
	"github.com/lintsmith/lintsmith/internal/types"
)

// warnCarveOuts pins individual rules to warn on the recommended path,
// below the severity their flags would yield. prefer-standalone moves
// to error in the next major release; until then existing projects get
// a migration window.
var warnCarveOuts = map[string]bool{
	"prefer-standalone": true,
}

// Build folds a rule collection and a policy into a RulesMapping.
// Rules are visited in alphabetical order, so the mapping is
// deterministic for a given collection state. Build never fails.
func Build(reg *rules.Registry, prefix string, policy Policy, logger hclog.Logger) *RulesMapping {
	mapping := NewRulesMapping()

	for _, rule := range reg.All() {
		if policy.ExcludeDeprecated && rule.Deprecated {
			continue
		}
		if policy.TypeChecking == TypeCheckingExclude && rule.RequiresTypeChecking {
			continue
		}
		if policy.TypeChecking == TypeCheckingOnly && !rule.RequiresTypeChecking {
			continue
		}
		if policy.AccessibilityOnly && !rule.Accessibility() {
			continue
		}

		severity := types.SeverityWarn
		switch {
		case policy.ErrorOverride:
			severity = types.SeverityError
		case warnCarveOuts[rule.Name]:
			severity = types.SeverityWarn
		case rule.Recommended:
			severity = types.SeverityError
		}

		mapping.Set(prefix+rule.Name, severity)
		logger.Debug("rule accepted", "rule", prefix+rule.Name, "severity", severity.String())
	}

	return mapping
}
