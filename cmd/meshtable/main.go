package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/jedib0t/go-pretty/table"
	"github.com/jedib0t/go-pretty/text"

	"github.com/iafilius/MeshIndexChart/src/chart"
	"github.com/iafilius/MeshIndexChart/src/dataset"
	"github.com/iafilius/MeshIndexChart/src/logging"
)

func main() {
	var format string
	var logLevel string
	flag.StringVar(&format, "format", "table", "Output format (table|csv|markdown)")
	flag.StringVar(&logLevel, "log-level", "info", "Log level (debug|info|warn|error)")
	flag.Parse()
	configureLogging(logLevel)

	if err := writeComparison(os.Stdout, format, dataset.WithIndices(), dataset.WithoutIndices()); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// configureLogging applies level and warns when it is not a known level name.
func configureLogging(level string) bool {
	if !logging.SetLogLevel(level) {
		logging.Warnf("unknown log level %q, keeping %s", level, levelLabel(logging.GetLogLevel()))
		return false
	}
	return true
}

func levelLabel(l logging.Level) string {
	switch l {
	case logging.LevelDebug:
		return "debug"
	case logging.LevelWarn:
		return "warn"
	case logging.LevelError:
		return "error"
	}
	return "info"
}

// writeComparison prints one row per isolevel with both vertex counts and the saving.
func writeComparison(w io.Writer, format string, indexed, plain dataset.Dataset) error {
	savings, err := dataset.Compare(indexed, plain)
	if err != nil {
		return err
	}
	t := table.NewWriter()
	t.SetOutputMirror(w)
	// Don't uppercase the header values.
	t.Style().Format.Header = text.FormatDefault
	t.AppendHeader(table.Row{"Isolevel", chart.LabelWithout, chart.LabelWith, "Saved", "Reduction %"})
	totalPlain, totalIndexed := 0, 0
	for _, s := range savings {
		t.AppendRow(table.Row{s.Isolevel, s.Plain, s.Indexed, s.Saved, fmt.Sprintf("%.1f", s.ReductionPct)})
		totalPlain += s.Plain
		totalIndexed += s.Indexed
	}
	t.AppendFooter(table.Row{"Total", totalPlain, totalIndexed, totalPlain - totalIndexed, ""})

	switch format {
	case "", "table":
		t.Render()
	case "csv":
		t.RenderCSV()
	case "markdown", "md":
		t.RenderMarkdown()
	default:
		return fmt.Errorf("unknown format %q", format)
	}
	logging.Debugf("printed %d isolevels", len(savings))
	return nil
}
