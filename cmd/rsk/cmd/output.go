package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	domain "github.com/mkhandekar/restock-tracker/pkg/types"
)

// tabWriter wraps tabwriter with error tracking.
type tabWriter struct {
	*tabwriter.Writer
	err error
}

func newTabWriter(w io.Writer) *tabWriter {
	return &tabWriter{Writer: tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)}
}

func (tw *tabWriter) writef(format string, args ...any) {
	if tw.err != nil {
		return
	}
	_, tw.err = fmt.Fprintf(tw.Writer, format, args...)
}

func (tw *tabWriter) finish() error {
	if tw.err != nil {
		return tw.err
	}
	return tw.Flush()
}

func printProductTable(products []domain.Product) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("PRODUCT ID\tNAME\tBRAND\tPRICE\tQTY\tLAST CHECKED\n")
	for i := range products {
		p := &products[i]
		tw.writef("%s\t%s\t%s\t$%.2f\t%d\t%s\n",
			p.ProductID,
			truncate(p.Name, 40),
			p.Brand,
			p.Price,
			p.InventoryQuantity,
			p.LastChecked.Format("2006-01-02 15:04:05"),
		)
	}
	return tw.finish()
}

func printProductDetail(p *domain.Product) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("Product ID:\t%s\n", p.ProductID)
	tw.writef("Name:\t%s\n", p.Name)
	tw.writef("Brand:\t%s\n", p.Brand)
	tw.writef("Price:\t$%.2f\n", p.Price)
	tw.writef("Quantity:\t%d\n", p.InventoryQuantity)
	tw.writef("In Stock:\t%v\n", p.InventoryQuantity > 0)
	tw.writef("Last Checked:\t%s\n", p.LastChecked.Format("2006-01-02 15:04:05"))
	return tw.finish()
}

func printSubscriptionTable(subs []domain.SubscriptionWithProduct) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("PRODUCT ID\tNAME\tQTY\tTELEGRAM\tSUBSCRIBED\n")
	for i := range subs {
		s := &subs[i]
		telegram := "-"
		if s.Subscription.TelegramUsername != "" {
			telegram = "@" + s.Subscription.TelegramUsername
		}
		tw.writef("%s\t%s\t%d\t%s\t%s\n",
			s.Subscription.ProductID,
			truncate(s.Product.Name, 40),
			s.Product.InventoryQuantity,
			telegram,
			s.Subscription.SubscribedAt.Format("2006-01-02"),
		)
	}
	return tw.finish()
}

func printJobRunsTable(runs []domain.JobRun) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("JOB\tSTATUS\tSTARTED\tCOMPLETED\tERROR\n")
	for i := range runs {
		r := &runs[i]
		completed := "-"
		if r.CompletedAt != nil {
			completed = r.CompletedAt.Format("2006-01-02 15:04:05")
		}
		errText := truncate(r.ErrorText, 40)
		tw.writef("%s\t%s\t%s\t%s\t%s\n",
			r.JobName,
			r.Status,
			r.StartedAt.Format("2006-01-02 15:04:05"),
			completed,
			errText,
		)
	}
	return tw.finish()
}

func outputJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
