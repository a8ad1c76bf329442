package display

import (
	"fmt"
	"strings"
	"testing"

	"github.com/kism/smart-rom-sync/pkg/classify"
	"github.com/kism/smart-rom-sync/pkg/errors"
	"github.com/kism/smart-rom-sync/pkg/transfer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlanTable(t *testing.T) {
	plan := classify.NewPlan()
	plan.Add("/dest/USA", "a (USA).sfc")
	plan.Add("/dest/USA", "b (USA).sfc")
	plan.Add("/dest/Unreleased", "c (Japan) (Proto).sfc")

	out := PlanTable(plan, map[string]int64{
		"a (USA).sfc":           1000,
		"b (USA).sfc":           500,
		"c (Japan) (Proto).sfc": 2000000,
	})

	assert.Contains(t, out, "DESTINATION")
	assert.Contains(t, out, "/dest/USA")
	assert.Contains(t, out, "1.5 kB")
	assert.Contains(t, out, "2.0 MB")
	assert.Contains(t, out, "TOTAL")
	assert.Contains(t, out, "2.0 MB")
	assert.Less(t, strings.Index(out, "/dest/USA"), strings.Index(out, "/dest/Unreleased"),
		"destinations keep plan order")
}

func TestPlanTable_Empty(t *testing.T) {
	out := PlanTable(classify.NewPlan(), nil)
	assert.Contains(t, out, "DESTINATION")
	assert.Contains(t, out, "0 B")
}

func TestStatsTable(t *testing.T) {
	stats := []transfer.Stats{
		{
			System: "/roms/snes",
			Destinations: []transfer.DestinationResult{
				{Destination: "/dest/USA", Files: 2},
				{Destination: "/dest/Europe", Files: 1, Err: fmt.Errorf("exit status 23")},
				{Destination: "/dest/World", Files: 4, Skipped: true},
			},
		},
		{System: "/roms/nes", Err: errors.New(errors.ErrScanFailed, "cannot read /roms/nes")},
		{System: "/roms/gb"},
	}

	out := StatsTable(stats)
	assert.Contains(t, out, "/dest/USA")
	assert.Contains(t, out, "ok")
	assert.Contains(t, out, "failed: exit status 23")
	assert.Contains(t, out, "not run")
	assert.Contains(t, out, "failed: [SCAN_FAILED] cannot read /roms/nes")
	assert.Contains(t, out, "nothing to sync")
}

func TestReleaseTable(t *testing.T) {
	rule := classify.FilterRule{RegionInclude: []string{"USA"}}
	entries := []classify.Entry{
		classify.Explain("Zelda (USA) (Rev 1).sfc", rule, "/dest"),
		classify.Explain("Zelda (Japan).sfc", rule, "/dest"),
	}

	out := ReleaseTable(entries)
	assert.Contains(t, out, "Zelda (USA) (Rev 1).sfc")
	assert.Contains(t, out, "Rev 1")
	assert.Contains(t, out, "/dest/USA")
	assert.Contains(t, out, "sync")
	assert.Contains(t, out, "skip: region not included")
}

func TestSummary(t *testing.T) {
	stats := []transfer.Stats{
		{System: "a", Files: 3},
		{System: "b", Files: 2, Failed: 1},
		{System: "c", Err: fmt.Errorf("boom")},
	}
	assert.Contains(t, Summary(stats), "3 systems, 5 files, 2 failed")
}

func TestError(t *testing.T) {
	assert.Contains(t, Error(fmt.Errorf("boom")), "Error: boom")
}

func TestLoadStyles(t *testing.T) {
	t.Cleanup(func() { require.NoError(t, LoadStyles(embeddedStyles)) })

	require.NoError(t, LoadStyles([]byte(`
colors:
  blue: {light: "#0000FF", dark: "#8888FF"}
styles:
  Custom: {bold: true, foreground: blue}
`)))
	assert.True(t, GetStyle("Custom").GetBold())
	assert.False(t, GetStyle("Missing").GetBold())

	assert.Error(t, LoadStyles([]byte("colors: [")))
}

func TestSize(t *testing.T) {
	assert.Equal(t, "0 B", Size(-1))
	assert.Equal(t, "1.0 kB", Size(1000))
}
