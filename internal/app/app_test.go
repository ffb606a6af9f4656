package app_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/zlock/internal/adapters/report"
	"go.trai.ch/zlock/internal/app"
	"go.trai.ch/zlock/internal/core/domain"
	"go.trai.ch/zlock/internal/core/ports"
	"go.trai.ch/zlock/internal/core/ports/mocks"
	"go.trai.ch/zlock/internal/engine/reconciler"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	loader   *mocks.MockConfigLoader
	manager  *mocks.MockLockManager
	renderer *mocks.MockRenderer
	logger   *mocks.MockLogger
	binary   string
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &fixture{
		loader:   mocks.NewMockConfigLoader(ctrl),
		manager:  mocks.NewMockLockManager(ctrl),
		renderer: mocks.NewMockRenderer(ctrl),
		logger:   mocks.NewMockLogger(ctrl),
	}
	f.logger.EXPECT().Info(gomock.Any()).AnyTimes()
	return f
}

func (f *fixture) reconciler() *reconciler.Reconciler {
	return reconciler.New(func(binary string) ports.LockManager {
		f.binary = binary
		return f.manager
	}, f.logger)
}

func (f *fixture) app() *app.App {
	return app.New(f.loader, f.reconciler(), f.renderer, f.logger)
}

func TestApp_Run(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	var out bytes.Buffer

	f.manager.EXPECT().Preflight().Return(nil)
	f.manager.EXPECT().Locks(ctx).Return(domain.LockList{"bash"}, nil)
	f.manager.EXPECT().AddLocks(ctx, []string{"zsh"}, domain.LockOptions{}).Return("", nil)
	f.manager.EXPECT().Locks(ctx).Return(domain.LockList{"bash", "zsh"}, nil)
	f.renderer.EXPECT().
		Render(&out, report.FormatYAML, gomock.Any()).
		DoAndReturn(func(_ io.Writer, _ string, res *domain.Result) error {
			assert.True(t, res.Changed)
			assert.Equal(t, domain.LockList{"bash", "zsh"}, res.FinalLockList)
			return nil
		})

	err := f.app().Run(ctx, &out, domain.Request{
		Names: []string{"bash", "zsh"},
		State: domain.StatePresent,
	}, app.RunOptions{Output: report.FormatYAML})
	require.NoError(t, err)
}

func TestApp_Run_AutoFormatOutsideTerminal(t *testing.T) {
	t.Setenv("CI", "true")
	f := newFixture(t)
	ctx := context.Background()

	f.manager.EXPECT().Preflight().Return(nil)
	f.manager.EXPECT().Locks(ctx).Return(domain.LockList{}, nil)
	f.renderer.EXPECT().Render(gomock.Any(), report.FormatJSON, gomock.Any()).Return(nil)

	err := f.app().Run(ctx, &bytes.Buffer{}, domain.Request{State: domain.StateList}, app.RunOptions{Output: "auto"})
	require.NoError(t, err)
}

func TestApp_Run_CompactFormat(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.manager.EXPECT().Preflight().Return(nil)
	f.manager.EXPECT().Locks(ctx).Return(domain.LockList{"bash"}, nil)
	f.renderer.EXPECT().Render(gomock.Any(), report.FormatCompact, gomock.Any()).Return(nil)

	err := f.app().Run(ctx, &bytes.Buffer{}, domain.Request{State: domain.StateList},
		app.RunOptions{Output: report.FormatCompact})
	require.NoError(t, err)
}

func TestApp_Run_UnknownFormatFailsBeforeQuerying(t *testing.T) {
	f := newFixture(t)

	err := f.app().Run(context.Background(), &bytes.Buffer{}, domain.Request{State: domain.StateList},
		app.RunOptions{Output: "xml"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrUnknownOutputFormat.Error())
}

func TestApp_Run_ReconcileError(t *testing.T) {
	f := newFixture(t)

	f.manager.EXPECT().Preflight().Return(domain.ErrToolNotFound)

	err := f.app().Run(context.Background(), &bytes.Buffer{}, domain.Request{}, app.RunOptions{Output: "json"})

	require.ErrorIs(t, err, domain.ErrToolNotFound)
	assert.Contains(t, err.Error(), domain.ErrReconcileFailed.Error())
}

func TestApp_Apply_OverridesWinOverFile(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.loader.EXPECT().Load("locks.yaml").Return(&domain.Request{
		Names:   []string{"bash"},
		State:   domain.StatePresent,
		Options: domain.LockOptions{Repo: "oss", Message: "from file"},
		Binary:  "/usr/bin/zypper",
	}, nil)

	dryRun := true
	binary := "/opt/zypper"
	message := "from flag"

	f.manager.EXPECT().Preflight().Return(nil)
	f.manager.EXPECT().Locks(ctx).Return(domain.LockList{}, nil)
	f.renderer.EXPECT().
		Render(gomock.Any(), report.FormatJSON, gomock.Any()).
		DoAndReturn(func(_ io.Writer, _ string, res *domain.Result) error {
			assert.True(t, res.Changed)
			assert.Equal(t, []string{"bash"}, res.PatternsToAdd)
			assert.Empty(t, res.FinalLockList, "dry run leaves the list untouched")
			return nil
		})

	err := f.app().Apply(ctx, &bytes.Buffer{}, "locks.yaml", app.Overrides{
		DryRun:  &dryRun,
		Binary:  &binary,
		Message: &message,
	}, app.RunOptions{Output: report.FormatJSON})
	require.NoError(t, err)
	assert.Equal(t, "/opt/zypper", f.binary)
}

func TestApp_Apply_LoadError(t *testing.T) {
	f := newFixture(t)
	loadErr := errors.New("no such file")

	f.loader.EXPECT().Load("missing.yaml").Return(nil, loadErr)

	err := f.app().Apply(context.Background(), &bytes.Buffer{}, "missing.yaml", app.Overrides{},
		app.RunOptions{Output: report.FormatJSON})
	require.ErrorIs(t, err, loadErr)
}

func TestOverrides_Apply(t *testing.T) {
	state := domain.StateAbsent
	pkgType := domain.PackageTypePatch
	repo := "updates"
	dryRun := false

	req := &domain.Request{
		Names:   []string{"bash"},
		State:   domain.StatePresent,
		Options: domain.LockOptions{Repo: "oss", Message: "keep"},
		DryRun:  true,
		Binary:  "/usr/bin/zypper",
	}

	app.Overrides{
		Names:  []string{"zsh"},
		State:  &state,
		Type:   &pkgType,
		Repo:   &repo,
		DryRun: &dryRun,
	}.Apply(req)

	assert.Equal(t, &domain.Request{
		Names:   []string{"zsh"},
		State:   domain.StateAbsent,
		Options: domain.LockOptions{Type: domain.PackageTypePatch, Repo: "updates", Message: "keep"},
		DryRun:  false,
		Binary:  "/usr/bin/zypper",
	}, req)
}

func TestApp_RunModule(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	var out bytes.Buffer

	f.loader.EXPECT().Load("args.json").Return(&domain.Request{
		Names: []string{"bash", "ksh", "tcsh", "zsh"},
		State: domain.StateAbsent,
	}, nil)
	f.manager.EXPECT().Preflight().Return(nil)
	f.manager.EXPECT().Locks(ctx).Return(domain.LockList{"bash", "ksh", "tcsh", "zsh"}, nil)
	f.manager.EXPECT().
		RemoveLocks(ctx, []string{"bash", "ksh", "tcsh", "zsh"}, domain.LockOptions{}).
		Return("", nil)
	f.manager.EXPECT().Locks(ctx).Return(domain.LockList{}, nil)

	a := app.New(f.loader, f.reconciler(), report.NewRenderer(), f.logger)
	require.NoError(t, a.RunModule(ctx, &out, "args.json"))

	assert.Contains(t, out.String(), `"changed":true`)
	assert.Contains(t, out.String(), `"final_locklist":[]`)
	assert.Contains(t, out.String(), `"patterns_to_delete":["bash","ksh","tcsh","zsh"]`)
}

func TestApp_RunModule_Failure(t *testing.T) {
	f := newFixture(t)
	var out bytes.Buffer

	f.loader.EXPECT().Load("args.json").Return(&domain.Request{State: domain.StateList}, nil)
	f.manager.EXPECT().Preflight().Return(domain.ErrToolNotFound)
	f.logger.EXPECT().Error(domain.ErrToolNotFound)

	a := app.New(f.loader, f.reconciler(), report.NewRenderer(), f.logger)
	err := a.RunModule(context.Background(), &out, "args.json")

	require.ErrorIs(t, err, domain.ErrModuleFailed)
	assert.Equal(t, `{"failed":true,"msg":"lock tool not found or not executable"}`+"\n", out.String())
}
