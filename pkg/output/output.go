package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/pkg/errors"

	"github.com/edvaldo-gutierres/api-pwb/pkg/powerbi"
)

// Format selects how list commands render their results.
type Format string

const (
	// FormatTable renders a console table.
	FormatTable Format = "table"
	// FormatJSON re-serializes the decoded API response for downstream filtering.
	FormatJSON Format = "json"
)

// ParseFormat validates the value of the --output flag.
func ParseFormat(value string) (Format, error) {
	switch Format(value) {
	case FormatTable, FormatJSON:
		return Format(value), nil
	default:
		return "", errors.Errorf("unknown output format %q, supported formats: %s, %s", value, FormatTable, FormatJSON)
	}
}

// Successf prints a green status line.
func Successf(w io.Writer, format string, a ...interface{}) {
	fmt.Fprintln(w, color.GreenString(format, a...))
}

// Failuref prints a red status line.
func Failuref(w io.Writer, format string, a ...interface{}) {
	fmt.Fprintln(w, color.RedString(format, a...))
}

// JSON writes v as indented JSON.
func JSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return errors.Wrap(enc.Encode(v), "failed to encode json")
}

// WorkspacesTable renders the workspace listing.
func WorkspacesTable(w io.Writer, workspaces []powerbi.Workspace) {
	if len(workspaces) == 0 {
		fmt.Fprintln(w, "No workspaces found.")
		return
	}
	table := newTable(w, []string{"ID", "Name", "ReadOnly", "Type"})
	for _, ws := range workspaces {
		table.Append([]string{ws.ID, ws.Name, strconv.FormatBool(ws.IsReadOnly), ws.Type})
	}
	table.Render()
}

// DatasetsTable renders the dataset listing with the same columns the tool has
// always reported.
func DatasetsTable(w io.Writer, datasets []powerbi.Dataset) {
	if len(datasets) == 0 {
		fmt.Fprintln(w, "No datasets found.")
		return
	}
	table := newTable(w, []string{"ID", "Name", "WebUrl", "IsRefreshable", "ConfiguredBy"})
	for _, ds := range datasets {
		table.Append([]string{ds.ID, ds.Name, ds.WebURL, strconv.FormatBool(ds.IsRefreshable), ds.ConfiguredBy})
	}
	table.Render()
}

// ReportsTable renders the report listing.
func ReportsTable(w io.Writer, reports []powerbi.Report) {
	if len(reports) == 0 {
		fmt.Fprintln(w, "No reports found.")
		return
	}
	table := newTable(w, []string{"ID", "Name", "DatasetID", "WebUrl"})
	for _, report := range reports {
		table.Append([]string{report.ID, report.Name, report.DatasetID, report.WebURL})
	}
	table.Render()
}

// RefreshHistoryTable renders a dataset's refresh history, newest first.
func RefreshHistoryTable(w io.Writer, history []powerbi.Refresh) {
	if len(history) == 0 {
		fmt.Fprintln(w, "No refreshes found.")
		return
	}
	table := newTable(w, []string{"RequestID", "Type", "Start", "End", "Status"})
	for _, refresh := range history {
		table.Append([]string{refresh.RequestID, refresh.RefreshType, refresh.StartTime, refresh.EndTime, refresh.Status})
	}
	table.Render()
}

func newTable(w io.Writer, header []string) *tablewriter.Table {
	table := tablewriter.NewWriter(w)
	table.SetHeader(header)
	table.SetAutoWrapText(false)
	return table
}
