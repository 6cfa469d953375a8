package rules

// AlertRules returns a PrometheusRule CR containing alert rules for
// restock-tracker operational monitoring.
func AlertRules() PrometheusRule {
	return PrometheusRule{
		APIVersion: "monitoring.coreos.com/v1",
		Kind:       "PrometheusRule",
		Metadata: PrometheusRuleMetadata{
			Name: "restock-alerts",
			Labels: map[string]string{
				"prometheus": "system-rules-prometheus",
			},
		},
		Spec: PrometheusRuleSpec{
			Groups: []RuleGroup{
				{
					Name: "restock-alerts",
					Rules: []Rule{
						{
							Alert: "RestockTrackerDown",
							Expr:  `absent(up{job="restock-tracker"})`,
							For:   "2m",
							Labels: map[string]string{
								"severity": "critical",
							},
							Annotations: map[string]string{
								"summary":     "Restock Tracker is down",
								"description": "The restock-tracker job has been absent for more than 2 minutes.",
							},
						},
						{
							Alert: "RestockTrackerReadinessDown",
							Expr:  `restock_readyz_up == 0`,
							For:   "2m",
							Labels: map[string]string{
								"severity": "critical",
							},
							Annotations: map[string]string{
								"summary":     "Restock Tracker readiness check is failing",
								"description": "The readiness probe has been reporting not-ready for more than 2 minutes.",
							},
						},
						{
							Alert: "RestockTrackerHighErrorRate",
							Expr:  `restock:http_errors:rate5m / restock:http_requests:rate5m > 0.05`,
							For:   "5m",
							Labels: map[string]string{
								"severity": "warning",
							},
							Annotations: map[string]string{
								"summary":     "High HTTP error rate on Restock Tracker",
								"description": "More than 5% of HTTP requests are returning 5xx errors over the last 5 minutes.",
							},
						},
						{
							Alert: "RestockTrackerReconcileErrors",
							Expr:  `restock:reconcile_errors:rate5m > 0`,
							For:   "15m",
							Labels: map[string]string{
								"severity": "warning",
							},
							Annotations: map[string]string{
								"summary":     "Reconcile passes are failing",
								"description": "Inventory reconcile passes have been failing for more than 15 minutes. Restock detection is stalled.",
							},
						},
						{
							Alert: "RestockTrackerShopQuotaHigh",
							Expr:  `restock_shop_daily_usage > 1600`,
							For:   "5m",
							Labels: map[string]string{
								"severity": "warning",
							},
							Annotations: map[string]string{
								"summary":     "Storefront API daily usage is above 80% of the quota",
								"description": "Daily storefront API usage has exceeded 1600 calls (limit is 2000).",
							},
						},
						{
							Alert: "RestockTrackerShopLimitReached",
							Expr:  `increase(restock_shop_daily_limit_hits_total[5m]) > 0`,
							For:   "0m",
							Labels: map[string]string{
								"severity": "critical",
							},
							Annotations: map[string]string{
								"summary":     "Storefront API daily limit has been reached",
								"description": "The storefront API daily quota has been exhausted. Reconcile passes are paused until the window resets.",
							},
						},
						{
							Alert: "RestockTrackerNotificationFailures",
							Expr:  `increase(restock_notification_failures_total[5m]) > 0`,
							For:   "1m",
							Labels: map[string]string{
								"severity": "warning",
							},
							Annotations: map[string]string{
								"summary":     "Notification delivery failures detected",
								"description": "One or more restock notifications (email or Telegram) have failed to send.",
							},
						},
					},
				},
			},
		},
	}
}
