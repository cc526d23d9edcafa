package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	domain "github.com/lvnb04/cloudtrack/pkg/types"
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

func printItemTable(items []domain.TrackedItem) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("NAME\tSERVICE\tTARGET PRICE\tLAST PRICE\tSTOCK\tARMED\tCHANNEL\n")
	for i := range items {
		it := &items[i]
		tw.writef("%s\t%s\t₹%s\t₹%s\t%s\t%v\t%s\n",
			truncate(it.ProductName, 40),
			it.ServiceType,
			it.TargetPriceLow.StringFixed(2),
			it.LastKnownPrice.StringFixed(2),
			it.LastKnownStock,
			it.NotifyOnStock,
			it.Channel,
		)
	}
	return tw.finish()
}

func printItemDetail(it *domain.TrackedItem) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("ID:\t%s\n", it.ID)
	tw.writef("Name:\t%s\n", it.ProductName)
	tw.writef("Service:\t%s\n", it.ServiceType)
	tw.writef("Target Price:\t₹%s\n", it.TargetPriceLow.StringFixed(2))
	tw.writef("Last Price:\t₹%s\n", it.LastKnownPrice.StringFixed(2))
	tw.writef("Stock:\t%s\n", it.LastKnownStock)
	tw.writef("Armed:\t%v\n", it.NotifyOnStock)
	tw.writef("Channel:\t%s\n", it.Channel)
	tw.writef("Target:\t%s\n", it.Target)
	tw.writef("Image:\t%s\n", it.ProductImageURL)
	tw.writef("Added:\t%s\n", it.DateAdded.Format("2006-01-02 15:04:05"))
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
