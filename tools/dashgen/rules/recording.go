package rules

// RecordingRules returns a PrometheusRule CR containing pre-computed rate
// expressions used by dashboards and alert rules.
func RecordingRules() PrometheusRule {
	return PrometheusRule{
		APIVersion: "monitoring.coreos.com/v1",
		Kind:       "PrometheusRule",
		Metadata: PrometheusRuleMetadata{
			Name: "restock-recording-rules",
			Labels: map[string]string{
				"prometheus": "system-rules-prometheus",
			},
		},
		Spec: PrometheusRuleSpec{
			Groups: []RuleGroup{
				{
					Name: "restock-recording",
					Rules: []Rule{
						{
							Record: "restock:http_requests:rate5m",
							Expr:   `sum(rate(restock_http_requests_total[5m]))`,
						},
						{
							Record: "restock:http_errors:rate5m",
							Expr:   `sum(rate(restock_http_requests_total{status=~"5.."}[5m]))`,
						},
						{
							Record: "restock:reconcile_errors:rate5m",
							Expr:   `rate(restock_reconcile_errors_total[5m])`,
						},
						{
							Record: "restock:restocks:rate1h",
							Expr:   `rate(restock_restocks_detected_total[1h])`,
						},
						{
							Record: "restock:shop_api_calls:rate5m",
							Expr:   `rate(restock_shop_api_calls_total[5m])`,
						},
						{
							Record: "restock:notification_failures:rate5m",
							Expr:   `sum(rate(restock_notification_failures_total[5m]))`,
						},
					},
				},
			},
		},
	}
}
