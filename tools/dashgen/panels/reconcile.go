package panels

import (
	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/stat"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// PassDuration returns a timeseries panel showing the p95 reconcile pass
// duration.
func PassDuration() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Pass Duration (p95)").
		Description("95th percentile reconcile pass duration").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(TSWidth).
		WithTarget(PromQuery(
			`histogram_quantile(0.95, sum(rate(restock_reconcile_duration_seconds_bucket{job="restock-tracker"}[5m])) by (le))`,
			"p95",
			"A",
		)).
		Unit("s").
		FillOpacity(10).
		LineWidth(2).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}

// PassErrors returns a timeseries panel showing reconcile errors per minute.
func PassErrors() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Errors / min").
		Description("Rate of failed reconcile passes per minute").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(TSWidth).
		WithTarget(PromQuery(`restock:reconcile_errors:rate5m * 60`, "errors/min", "A")).
		FillOpacity(10).
		LineWidth(2).
		Thresholds(ThresholdsGreenYellowRed(0.1, 1)).
		ColorScheme(ColorSchemeThresholds()).
		DrawStyle(common.GraphDrawStyleLine)
}

// ProductFlow returns a timeseries panel showing products added and updated
// per reconcile window.
func ProductFlow() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Product Flow").
		Description("Products added and updated over the last hour").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(TSWidth).
		WithTarget(PromQuery(
			`increase(restock_products_added_total{job="restock-tracker"}[1h])`,
			"added", "A",
		)).
		WithTarget(PromQuery(
			`increase(restock_products_updated_total{job="restock-tracker"}[1h])`,
			"updated", "B",
		)).
		FillOpacity(10).
		LineWidth(2).
		Legend(TableLegend("mean", "max")).
		Tooltip(MultiTooltip()).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}

// RestocksDetected returns a stat panel showing restock transitions in the
// past 24 hours.
func RestocksDetected() *stat.PanelBuilder {
	return stat.NewPanelBuilder().
		Title("Restocks (24h)").
		Description("Out-of-stock to in-stock transitions detected in the last 24 hours").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(TSWidth).
		WithTarget(PromQuery(`increase(restock_restocks_detected_total{job="restock-tracker"}[24h])`, "", "A")).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemeThresholds()).
		ColorMode(common.BigValueColorModeBackground).
		GraphMode(common.BigValueGraphModeArea)
}
