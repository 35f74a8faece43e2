package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rileyhilliard/nexus/internal/config"
	"github.com/rileyhilliard/nexus/internal/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate runs the test in an empty directory with an empty HOME so no
// real config file is picked up.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("HOME", t.TempDir())
	return dir
}

// resetFlags restores every flag of cmd and its children to its default.
// Cobra keeps flag values between Execute calls.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.PersistentFlags().VisitAll(reset)
	cmd.Flags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

// executeCommand runs the real root command with args and returns its
// output.
func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.Execute()
	return buf.String(), err
}

func TestRootCommandRegistersSubcommands(t *testing.T) {
	names := make(map[string]bool)
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}

	for _, want := range []string{"dashboard", "snapshot", "serve", "init", "version", "completion"} {
		assert.True(t, names[want], "missing subcommand %q", want)
	}
}

func TestRootCommandGlobalFlags(t *testing.T) {
	for _, name := range []string{"config", "seed", "interval", "no-color"} {
		assert.NotNil(t, rootCmd.PersistentFlags().Lookup(name), "missing global flag --%s", name)
	}
}

func TestRootCommandRejectsUnknownFlag(t *testing.T) {
	isolate(t)
	_, err := executeCommand(t, "snapshot", "--bogus")
	assert.Error(t, err)
}

func TestLoadConfig_Defaults(t *testing.T) {
	isolate(t)

	cfg, err := loadConfig("", overrides{})
	require.NoError(t, err)

	def := config.DefaultConfig()
	assert.Equal(t, def.Interval, cfg.Interval)
	assert.Equal(t, def.AlertDuration, cfg.AlertDuration)
	assert.Equal(t, def.Seed, cfg.Seed)
}

func TestLoadConfig_FlagsOverrideFile(t *testing.T) {
	dir := isolate(t)
	content := `version: 1
interval: 2s
seed: 99
dashboard:
  color: always
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, config.ConfigFileName), []byte(content), 0o644))

	cfg, err := loadConfig("", overrides{})
	require.NoError(t, err)
	assert.Equal(t, 2*time.Second, cfg.Interval)
	assert.Equal(t, int64(99), cfg.Seed)

	cfg, err = loadConfig("", overrides{
		Seed:        7,
		SeedSet:     true,
		Interval:    250 * time.Millisecond,
		IntervalSet: true,
		NoColor:     true,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(7), cfg.Seed)
	assert.Equal(t, 250*time.Millisecond, cfg.Interval)
	assert.Equal(t, "never", cfg.Dashboard.Color)
}

func TestLoadConfig_ZeroSeedFlagStillOverrides(t *testing.T) {
	dir := isolate(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, config.ConfigFileName), []byte("seed: 99\n"), 0o644))

	cfg, err := loadConfig("", overrides{Seed: 0, SeedSet: true})
	require.NoError(t, err)
	assert.Equal(t, int64(0), cfg.Seed)
}

func TestLoadConfig_IntervalTooShort(t *testing.T) {
	isolate(t)

	_, err := loadConfig("", overrides{Interval: time.Millisecond, IntervalSet: true})
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrInput))
}

func TestLoadConfig_InvalidFile(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("interval: 1ms\n"), 0o644))

	_, err := loadConfig(path, overrides{})
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrConfig))
}

func TestCompletionGeneration(t *testing.T) {
	tests := []struct {
		shell string
		want  string
	}{
		{shell: "bash", want: "# bash completion"},
		{shell: "zsh", want: "#compdef nexus"},
		{shell: "fish", want: "complete -c nexus"},
		{shell: "powershell", want: "Register-ArgumentCompleter"},
	}

	for _, tt := range tests {
		t.Run(tt.shell, func(t *testing.T) {
			out, err := executeCommand(t, "completion", tt.shell)
			require.NoError(t, err)
			assert.Contains(t, out, tt.want)
		})
	}
}

func TestCompletionRejectsUnknownShell(t *testing.T) {
	_, err := executeCommand(t, "completion", "tcsh")
	assert.Error(t, err)
}
