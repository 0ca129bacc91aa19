package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"
)

// render prints a command result: the message (with the offline marker when
// local data answered), the data as indented JSON, then paging and stats.
func render(w io.Writer, r result) {
	if !r.Success {
		fmt.Fprintln(w, "failed:", r.Error)
		printFields(w, r.Errors)
		return
	}

	if r.Message != "" {
		fmt.Fprintln(w, r.Message)
	}
	if data, err := json.MarshalIndent(r.Data, "", "  "); err == nil && string(data) != "null" {
		fmt.Fprintln(w, string(data))
	}
	if p := r.Pagination; p != nil {
		fmt.Fprintf(w, "page %d of %d, %d total\n", p.Page, p.TotalPages, p.Total)
	}
	if len(r.Stats) > 0 {
		fmt.Fprintln(w, "stats:", formatStats(r.Stats))
	}
}

func printFields(w io.Writer, fields map[string]string) {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(w, "  %s: %s\n", k, fields[k])
	}
}

func formatStats(stats map[string]int) string {
	keys := make([]string, 0, len(stats))
	for k := range stats {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%d", k, stats[k]))
	}
	return strings.Join(parts, " ")
}
