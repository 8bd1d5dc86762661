// Package controller renders finder results: plain tables for scripting,
// an interactive browser for exploration.
package controller

import (
	"bytes"
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"

	"difind.dev/pkg/difind/internal/model"
)

// collectionGroups pairs the display label of each finder collection with an
// accessor, in the fixed presentation order.
var collectionGroups = []struct {
	label   string
	entries func(model.Report) []model.Entry
}{
	{"compile units", func(r model.Report) []model.Entry { return r.CompileUnits }},
	{"subprograms", func(r model.Report) []model.Entry { return r.Subprograms }},
	{"global variables", func(r model.Report) []model.Entry { return r.GlobalVariables }},
	{"types", func(r model.Report) []model.Entry { return r.Types }},
	{"scopes", func(r model.Report) []model.Entry { return r.Scopes }},
}

// renderReport writes the five collections of one report as a table.
func renderReport(w io.Writer, rep model.Report) error {
	if _, err := fmt.Fprintf(w, "\n%s (module %q)\n", rep.Graph, rep.Module); err != nil {
		return err
	}

	var buf bytes.Buffer

	table := tablewriter.NewWriter(&buf)
	table.SetHeader([]string{"Collection", "Name", "Tag", "Detail", "OK"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER,
	})

	for _, group := range collectionGroups {
		for _, e := range group.entries(rep) {
			table.Append([]string{group.label, e.Name, e.Tag, e.Detail, okMark(e.Verified)})
		}
	}

	table.SetFooter([]string{"total", fmt.Sprintf("%d", rep.TotalEntries()), "", "", ""})
	table.Render()

	_, err := w.Write(buf.Bytes())

	return err
}

// renderVerification writes the malformed entries of one report, or a
// confirmation when there are none.
func renderVerification(w io.Writer, rep model.Report) error {
	bad := rep.Malformed()
	if len(bad) == 0 {
		_, err := fmt.Fprintf(w, "%s: all %d nodes verified\n", rep.Graph, rep.TotalEntries())
		return err
	}

	if _, err := fmt.Fprintf(w, "%s: %d malformed node(s)\n", rep.Graph, len(bad)); err != nil {
		return err
	}

	var buf bytes.Buffer

	table := tablewriter.NewWriter(&buf)
	table.SetHeader([]string{"Name", "Tag", "Detail"})
	table.SetBorder(false)
	table.SetCenterSeparator("")

	for _, e := range bad {
		table.Append([]string{e.Name, e.Tag, e.Detail})
	}

	table.Render()

	_, err := w.Write(buf.Bytes())

	return err
}

func okMark(ok bool) string {
	if ok {
		return "yes"
	}

	return "NO"
}
