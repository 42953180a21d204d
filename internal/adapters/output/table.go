// internal/adapters/output/table.go
package output

import (
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"qrpayload/internal/adapters/batch"
	"qrpayload/pkg/payload"
)

// DetectionTable prints a detection result as a readable terminal table.
func DetectionTable(res payload.DetectionResult) error {
	w := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)

	fmt.Fprintf(w, "\nType:\t%s\n\n", res.Type)

	fields := res.Data.ToMap()
	if len(fields) > 0 {
		fmt.Fprintln(w, "FIELD\tVALUE")
		fmt.Fprintln(w, "-----\t-----")

		keys := make([]string, 0, len(fields))
		for k := range fields {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		for _, k := range keys {
			fmt.Fprintf(w, "%s\t%s\n", k, fields[k])
		}
	} else {
		fmt.Fprintln(w, "No fields extracted.")
	}

	if err := w.Flush(); err != nil {
		return fmt.Errorf("failed to flush table: %w", err)
	}
	return nil
}

// BatchTable prints batch encoding results as a readable terminal table.
func BatchTable(results []batch.Result) error {
	w := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)

	fmt.Fprintf(w, "\nNAME\tTYPE\tSTATUS\tOUTPUT\n")
	fmt.Fprintln(w, "----\t----\t------\t------")

	for _, r := range results {
		status := "ok"
		out := r.Encoded
		if !r.OK() {
			status = "failed"
			out = r.Err
		}
		name := r.Name
		if name == "" {
			name = "-"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", name, r.Type, status, out)
	}

	if err := w.Flush(); err != nil {
		return fmt.Errorf("failed to flush table: %w", err)
	}
	return nil
}
