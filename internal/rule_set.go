package internal

import (
	"github.com/elmlint/elin/internal/ast"
	"github.com/elmlint/elin/internal/lints"
	tt "github.com/elmlint/elin/internal/types"
)

// detector is the shape every rule function shares: a node plus the rule
// context, returning at most one finding.
type detector func(ast.Expr, *lints.Context) *tt.Issue

// applyShaped lists the rules interested in application nodes. Pipe
// sugar parses as a binary operator, so the same list is registered
// under both kinds.
var applyShaped = []detector{
	lints.DetectNot,
	lints.DetectDoubleNegate,
	lints.DetectIdentityApplication,
	lints.DetectAlwaysApplication,
	lints.DetectAppliedLambda,
	lints.DetectPrefixOperator,
	lints.DetectIdentityMap,
	lints.DetectListCall,
	lints.DetectString,
	lints.DetectMaybe,
	lints.DetectResult,
	lints.DetectSet,
	lints.DetectDict,
	lints.DetectCmd,
	lints.DetectSub,
	lints.DetectParserOneOf,
}

// registry routes each node kind to its candidate rules. Order is the
// priority: the first rule to produce a finding wins the node for this
// pass, so the more specific rules come first.
var registry = map[ast.Kind][]detector{
	ast.KindApply: applyShaped,
	ast.KindBinOp: append([]detector{
		lints.DetectBooleanOperator,
		lints.DetectEquality,
		lints.DetectLiteralComparison,
		lints.DetectArithmetic,
		lints.DetectAppend,
		lints.DetectCons,
		lints.DetectNotComposition,
		lints.DetectNegateComposition,
		lints.DetectIdentityComposition,
		lints.DetectComposeIntoAlways,
	}, applyShaped...),
	ast.KindNegate:       {lints.DetectDoubleNegate},
	ast.KindIf:           {lints.DetectIf},
	ast.KindCase:         {lints.DetectCase},
	ast.KindLet:          {lints.DetectNestedLet},
	ast.KindFieldAccess:  {lints.DetectFieldAccess},
	ast.KindRecordUpdate: {lints.DetectRecordUpdate},
}

// defaultSeverities carries the out-of-the-box severity per rule name.
// The config file overrides these; SeverityOff disables a rule.
var defaultSeverities = map[string]tt.Severity{
	"simplify-boolean":       tt.SeverityWarning,
	"simplify-not":           tt.SeverityWarning,
	"simplify-equality":      tt.SeverityWarning,
	"simplify-arithmetic":    tt.SeverityWarning,
	"simplify-if":            tt.SeverityWarning,
	"simplify-case":          tt.SeverityWarning,
	"simplify-identity":      tt.SeverityWarning,
	"simplify-lambda":        tt.SeverityWarning,
	"simplify-string":        tt.SeverityWarning,
	"simplify-list":          tt.SeverityWarning,
	"simplify-maybe":         tt.SeverityWarning,
	"simplify-result":        tt.SeverityWarning,
	"simplify-set":           tt.SeverityWarning,
	"simplify-dict":          tt.SeverityWarning,
	"simplify-platform":      tt.SeverityInfo,
	"simplify-record-access": tt.SeverityWarning,
	"simplify-record-update": tt.SeverityWarning,
	"simplify-let":           tt.SeverityInfo,
}

// AllRuleNames returns the known rule names, for `elin init` and the
// docs command.
func AllRuleNames() []string {
	names := make([]string, 0, len(defaultSeverities))
	for name := range defaultSeverities {
		names = append(names, name)
	}
	return names
}
