package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"go-staff/staff"
)

func TestLoadEmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	reg := staff.NewRegistry(cfg.Options()...)
	assert.Equal(t, staff.DefaultEmployeeRaise, reg.RaiseAmount(staff.KindEmployee))
	assert.Equal(t, staff.DefaultDeveloperRaise, reg.RaiseAmount(staff.KindDeveloper))
	assert.Equal(t, staff.DefaultEmployeeRaise, reg.RaiseAmount(staff.KindManager))
	assert.Equal(t, staff.DefaultEmailDomain, reg.EmailDomain())
}

func TestDefaultYAMLMatchesDefault(t *testing.T) {
	cfg, err := Parse([]byte(DefaultYAML()))
	require.NoError(t, err)

	reg := staff.NewRegistry(cfg.Options()...)
	def := staff.NewRegistry(Default().Options()...)
	for _, k := range []staff.Kind{staff.KindEmployee, staff.KindDeveloper, staff.KindManager} {
		assert.Equal(t, def.RaiseAmount(k), reg.RaiseAmount(k), k.String())
	}
	assert.Equal(t, def.EmailDomain(), reg.EmailDomain())
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "staff.yaml")
	data := `email_domain: corp.example
raise:
  employee: 1.05
  developer: 0
  manager: 1.2
log_level: DEBUG
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	lvl, err := cfg.Level()
	require.NoError(t, err)
	assert.Equal(t, zapcore.DebugLevel, lvl)

	reg := staff.NewRegistry(cfg.Options()...)
	assert.Equal(t, "corp.example", reg.EmailDomain())
	assert.Equal(t, 1.05, reg.RaiseAmount(staff.KindEmployee))
	assert.Equal(t, 1.05, reg.RaiseAmount(staff.KindDeveloper), "zero developer inherits employee")
	assert.Equal(t, 1.2, reg.RaiseAmount(staff.KindManager))
}

func TestApplyDefaults(t *testing.T) {
	cfg, err := Parse([]byte("raise:\n  manager: 1.3\n"))
	require.NoError(t, err)
	assert.Equal(t, staff.DefaultEmailDomain, cfg.EmailDomain)
	assert.Equal(t, staff.DefaultEmployeeRaise, cfg.Raise.Employee)
	assert.Nil(t, cfg.Raise.Developer)
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
		want string
	}{
		{name: "bad yaml", data: "raise: [", want: "config: parse"},
		{name: "unknown field", data: "bonus: 2\n", want: "config: parse"},
		{name: "negative employee", data: "raise:\n  employee: -1\n", want: "raise.employee"},
		{name: "negative developer", data: "raise:\n  developer: -0.5\n", want: "raise.developer"},
		{name: "negative manager", data: "raise:\n  manager: -2\n", want: "raise.manager"},
		{name: "domain with at", data: "email_domain: a@b\n", want: "email_domain"},
		{name: "bad level", data: "log_level: loud\n", want: "log_level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
