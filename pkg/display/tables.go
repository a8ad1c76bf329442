package display

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/kism/smart-rom-sync/pkg/classify"
	"github.com/kism/smart-rom-sync/pkg/transfer"
)

type columnAlignment int

const (
	alignLeft columnAlignment = iota
	alignRight
)

func renderTable(headers []string, rows [][]string, aligns []columnAlignment, footer []string) string {
	columns := len(headers)
	if columns == 0 {
		return ""
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(toRow(headers, columns))
	for _, row := range rows {
		tw.AppendRow(toRow(row, columns))
	}
	if footer != nil {
		tw.AppendFooter(toRow(footer, columns))
	}

	configs := make([]table.ColumnConfig, 0, columns)
	for i := 0; i < columns; i++ {
		align := text.AlignLeft
		if i < len(aligns) && aligns[i] == alignRight {
			align = text.AlignRight
		}
		configs = append(configs, table.ColumnConfig{
			Number:      i + 1,
			Align:       align,
			AlignHeader: text.AlignLeft,
			AlignFooter: align,
		})
	}
	tw.SetColumnConfigs(configs)

	return tw.Render()
}

func toRow(cells []string, columns int) table.Row {
	r := make(table.Row, columns)
	for i := 0; i < columns; i++ {
		if i < len(cells) {
			r[i] = cells[i]
		} else {
			r[i] = ""
		}
	}
	return r
}

// Size formats a byte count for humans
func Size(bytes int64) string {
	if bytes < 0 {
		bytes = 0
	}
	return humanize.Bytes(uint64(bytes))
}

// PlanTable lists each destination of plan with its file count and total size.
// sizes is keyed by the file names in plan; missing entries count as zero.
func PlanTable(plan *classify.Plan, sizes map[string]int64) string {
	var (
		rows       [][]string
		totalFiles int
		totalSize  int64
	)
	for _, dest := range plan.Destinations() {
		files := plan.Files(dest)
		var size int64
		for _, f := range files {
			size += sizes[f]
		}
		totalFiles += len(files)
		totalSize += size
		rows = append(rows, []string{dest, strconv.Itoa(len(files)), Size(size)})
	}

	return renderTable(
		[]string{"Destination", "Files", "Size"},
		rows,
		[]columnAlignment{alignLeft, alignRight, alignRight},
		[]string{"Total", strconv.Itoa(totalFiles), Size(totalSize)},
	)
}

// StatsTable lists the outcome of every destination of a run
func StatsTable(stats []transfer.Stats) string {
	var rows [][]string
	for _, st := range stats {
		if st.Err != nil {
			rows = append(rows, []string{st.System, "", "0", GetStyle("Error").Render("failed: " + st.Err.Error())})
			continue
		}
		if len(st.Destinations) == 0 {
			rows = append(rows, []string{st.System, "", "0", GetStyle("Muted").Render("nothing to sync")})
			continue
		}
		for _, d := range st.Destinations {
			rows = append(rows, []string{st.System, d.Destination, strconv.Itoa(d.Files), result(d)})
		}
	}

	return renderTable(
		[]string{"System", "Destination", "Files", "Result"},
		rows,
		[]columnAlignment{alignLeft, alignLeft, alignRight, alignLeft},
		nil,
	)
}

func result(d transfer.DestinationResult) string {
	switch {
	case d.Err != nil:
		return GetStyle("Error").Render("failed: " + d.Err.Error())
	case d.Skipped:
		return GetStyle("Warning").Render("not run")
	default:
		return GetStyle("Success").Render("ok")
	}
}

// ReleaseTable shows what was read from each file name and where it goes
func ReleaseTable(entries []classify.Entry) string {
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		decision := GetStyle("Success").Render("sync")
		if !e.Admitted {
			decision = GetStyle("Muted").Render("skip: " + e.Reason)
		}
		rows = append(rows, []string{
			e.Name,
			e.Info.RegionDir,
			e.Info.RegionFull,
			e.Info.Special,
			strings.Join(e.Info.ExtraInfo, ", "),
			e.Destination,
			decision,
		})
	}

	return renderTable(
		[]string{"File", "Region", "Region tag", "Special", "Other tags", "Destination", "Decision"},
		rows,
		nil,
		nil,
	)
}

// Summary is a one-line total for a list of run stats
func Summary(stats []transfer.Stats) string {
	var files, failed int
	for _, st := range stats {
		files += st.Files
		failed += st.Failed
		if st.Err != nil {
			failed++
		}
	}
	line := fmt.Sprintf("%d systems, %d files, %d failed", len(stats), files, failed)
	if failed > 0 {
		return GetStyle("Error").Render(line)
	}
	return GetStyle("Success").Render(line)
}
