package syncer

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/kism/smart-rom-sync/pkg/config"
	"github.com/kism/smart-rom-sync/pkg/errors"
	"github.com/kism/smart-rom-sync/pkg/transfer"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockRunner struct {
	mock.Mock
}

func (m *mockRunner) Run(ctx context.Context, name string, args ...string) (transfer.Output, error) {
	ret := m.Called(name, args)
	return ret.Get(0).(transfer.Output), ret.Error(1)
}

func romTree(t *testing.T) afero.Fs {
	t.Helper()
	fs := afero.NewMemMapFs()
	for name, size := range map[string]int{
		"/roms/snes/Super Mario World (USA).sfc":            10,
		"/roms/snes/Super Mario World (Europe).sfc":         20,
		"/roms/snes/Star Fox 2 (USA) (Proto).sfc":           30,
		"/roms/snes/Tetris (World).sfc":                     40,
		"/roms/snes/Chrono Trigger (Japan).sfc":             50,
		"/roms/snes/Secret of Mana (USA) (Beta).sfc":        60,
		"/roms/snes/sub/Kirby Super Star (USA) (Rev 1).sfc": 70,
	} {
		require.NoError(t, fs.MkdirAll(filepath.Dir(name), 0755))
		require.NoError(t, afero.WriteFile(fs, name, make([]byte, size), 0644))
	}
	return fs
}

func testConfig() *config.Config {
	return &config.Config{
		Target: config.Target{Type: config.TargetRsync, RemoteHost: "mister", Path: "/media/fat/games"},
		Systems: []config.System{{
			LocalDir:           "/roms/snes",
			RemoteDir:          "SNES",
			RegionListInclude:  []string{"USA", "Europe"},
			SpecialListExclude: []string{"Beta"},
		}},
	}
}

func TestPlanSystem(t *testing.T) {
	cfg := testConfig()
	s := New(cfg, Options{Fs: romTree(t), LockPath: filepath.Join(t.TempDir(), "sync.lock")})

	plan, err := s.PlanSystem(cfg.Systems[0])
	require.NoError(t, err)

	// Japan is not included and the Beta is excluded
	assert.Equal(t, map[string][]string{
		"/media/fat/games/SNES/Unreleased": {"Star Fox 2 (USA) (Proto).sfc"},
		"/media/fat/games/SNES/Europe":     {"Super Mario World (Europe).sfc"},
		"/media/fat/games/SNES/USA": {
			"Super Mario World (USA).sfc",
			filepath.Join("sub", "Kirby Super Star (USA) (Rev 1).sfc"),
		},
		"/media/fat/games/SNES/World": {"Tetris (World).sfc"},
	}, plan.Map())
	assert.Equal(t, []string{
		"/media/fat/games/SNES/Unreleased",
		"/media/fat/games/SNES/Europe",
		"/media/fat/games/SNES/USA",
		"/media/fat/games/SNES/World",
	}, plan.Destinations())
	assert.Equal(t, 5, plan.FileCount())
}

func TestPlans_Sizes(t *testing.T) {
	s := New(testConfig(), Options{Fs: romTree(t)})

	plans, err := s.Plans()
	require.NoError(t, err)
	require.Len(t, plans, 1)

	assert.Equal(t, "/media/fat/games/SNES", plans[0].Base)
	assert.Equal(t, int64(30), plans[0].Sizes["Star Fox 2 (USA) (Proto).sfc"])
}

func TestPlans_ScanFailure(t *testing.T) {
	cfg := testConfig()
	cfg.Systems[0].LocalDir = "/missing"

	_, err := New(cfg, Options{Fs: romTree(t)}).Plans()
	assert.True(t, errors.IsErrorCode(err, errors.ErrScanFailed))
}

func TestRun_EndToEnd(t *testing.T) {
	fs := romTree(t)
	cfg := testConfig()
	cfg.Systems = append(cfg.Systems, config.System{LocalDir: "/roms/missing", RemoteDir: "NES"})

	runner := &mockRunner{}
	var dests []string
	runner.On("Run", transfer.RsyncCommand, mock.Anything).
		Run(func(args mock.Arguments) {
			argv := args.Get(1).([]string)
			assert.Equal(t, "/roms/snes/", argv[len(argv)-2])
			dests = append(dests, argv[len(argv)-1])
		}).
		Return(transfer.Output{}, nil)

	s := New(cfg, Options{
		Fs:       fs,
		Runner:   runner,
		TempDir:  "/tmp",
		LockPath: filepath.Join(t.TempDir(), "sync.lock"),
	})

	stats, err := s.Run(context.Background())
	require.NoError(t, err)
	require.Len(t, stats, 2)

	assert.True(t, stats[0].OK())
	assert.Equal(t, 5, stats[0].Files)
	assert.Len(t, dests, 4)
	for _, d := range dests {
		assert.True(t, strings.HasPrefix(d, "mister:/media/fat/games/SNES/"), d)
	}

	assert.False(t, stats[1].OK())
	assert.True(t, errors.IsErrorCode(stats[1].Err, errors.ErrScanFailed))
	assert.True(t, Failed(stats))
}

func TestRun_NoSystems(t *testing.T) {
	cfg := testConfig()
	cfg.Systems = nil
	runner := &mockRunner{}

	stats, err := New(cfg, Options{Fs: afero.NewMemMapFs(), Runner: runner, LockPath: filepath.Join(t.TempDir(), "sync.lock")}).
		Run(context.Background())

	require.NoError(t, err)
	assert.Empty(t, stats)
	assert.False(t, Failed(stats))
	runner.AssertNotCalled(t, "Run", mock.Anything, mock.Anything)
}

func TestRun_LockHeld(t *testing.T) {
	lockPath := filepath.Join(t.TempDir(), "sync.lock")
	held := transfer.NewLock(lockPath)
	require.NoError(t, held.TryLock())
	defer func() { _ = held.Unlock() }()

	_, err := New(testConfig(), Options{Fs: romTree(t), LockPath: lockPath}).Run(context.Background())
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrLockHeld))
}
