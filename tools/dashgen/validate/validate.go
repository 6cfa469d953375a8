// Package validate checks generated dashboards and rule files for
// malformed PromQL and references to metrics the service does not export.
package validate

import (
	"encoding/json"
	"fmt"

	"github.com/grafana/grafana-foundation-sdk/go/dashboard"
	"github.com/prometheus/prometheus/promql/parser"

	"github.com/mkhandekar/restock-tracker/tools/dashgen/rules"
)

// Result collects validation findings.
type Result struct {
	Errors   []string
	Warnings []string
}

// Ok reports whether validation found no errors.
func (r *Result) Ok() bool {
	return len(r.Errors) == 0
}

func (r *Result) errorf(format string, args ...any) {
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
}

func (r *Result) warnf(format string, args ...any) {
	r.Warnings = append(r.Warnings, fmt.Sprintf(format, args...))
}

// Dashboard validates every query expression in a built dashboard: each
// must parse as PromQL and reference only known metric names.
func Dashboard(dash dashboard.Dashboard, known map[string]bool) *Result {
	result := &Result{}

	exprs, err := collectExprs(dash)
	if err != nil {
		result.errorf("extracting expressions: %v", err)
		return result
	}
	if len(exprs) == 0 {
		result.warnf("dashboard contains no query expressions")
		return result
	}

	for _, expr := range exprs {
		checkExpr(result, expr, known)
	}
	return result
}

// Rules validates every expression in a PrometheusRule custom resource.
func Rules(cr rules.PrometheusRule, known map[string]bool) *Result {
	result := &Result{}
	for _, group := range cr.Spec.Groups {
		for _, rule := range group.Rules {
			if rule.Expr == "" {
				result.errorf("group %s: rule %s%s has empty expr",
					group.Name, rule.Record, rule.Alert)
				continue
			}
			checkExpr(result, rule.Expr, known)
		}
	}
	return result
}

func checkExpr(result *Result, expr string, known map[string]bool) {
	parsed, err := parser.ParseExpr(expr)
	if err != nil {
		result.errorf("invalid PromQL %q: %v", expr, err)
		return
	}

	parser.Inspect(parsed, func(node parser.Node, _ []parser.Node) error {
		vs, ok := node.(*parser.VectorSelector)
		if !ok || vs.Name == "" {
			return nil
		}
		if !known[vs.Name] {
			result.errorf("expression %q references unknown metric %q", expr, vs.Name)
		}
		return nil
	})
}

// collectExprs round-trips the dashboard through JSON and gathers every
// "expr" field. This stays independent of the SDK's panel type zoo.
func collectExprs(dash dashboard.Dashboard) ([]string, error) {
	data, err := json.Marshal(dash)
	if err != nil {
		return nil, fmt.Errorf("marshaling dashboard: %w", err)
	}

	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("unmarshaling dashboard: %w", err)
	}

	var exprs []string
	walk(raw, &exprs)
	return exprs, nil
}

func walk(node any, exprs *[]string) {
	switch v := node.(type) {
	case map[string]any:
		for key, child := range v {
			if key == "expr" {
				if s, ok := child.(string); ok && s != "" {
					*exprs = append(*exprs, s)
				}
				continue
			}
			walk(child, exprs)
		}
	case []any:
		for _, child := range v {
			walk(child, exprs)
		}
	}
}
