package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-staff/staff"
)

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRunDemo(t *testing.T) {
	var out bytes.Buffer
	reg := staff.NewRegistry(staff.WithOutput(&out))
	require.NoError(t, runDemo(reg, &out))

	want := []string{
		"employees: 0",
		"employees: 2",
		"Leslie Purgason",
		"pay: 70000",
		"pay after raise: 72800",
		"parsed: Employee('John', 'Doe', 70000)",
		"workday 2020-01-12: false",
		"raise amounts: 1.05 1.06 1.05",
		"Chris.Johnson.@email.com",
		"Python",
		"Sue.Smith.@email.com",
		"--> Chris Johnson",
		"",
		"--> Chris Johnson",
		"--> Dev_Test Dev_User",
		"",
		"--> Dev_Test Dev_User",
		"",
		"Employee('Leslie', 'Purgason', 72800)",
		"Leslie Purgason - Leslie.Purgason.@email.com",
		"combined pay: 132800",
		"name length: 15",
		"Jane",
		"Jane.Smith.@email.com",
		"Jane Smith",
		"Name Deleted!",
		"manager is a manager: true",
		"manager is a developer: false",
		"employees: 6",
	}
	got := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("demo output mismatch (-want +got):\n%s", diff)
	}
}

func TestParseCmd(t *testing.T) {
	out, err := execute(t, "", "parse", "John-Doe-70000")
	require.NoError(t, err)
	assert.Equal(t, "Employee('John', 'Doe', 70000)\nJohn Doe - John.Doe.@email.com\n", out)

	out, err = execute(t, "", "parse", "--kind", "developer", "Chris-Johnson-70000-Go")
	require.NoError(t, err)
	assert.Contains(t, out, "Chris Johnson - Chris.Johnson.@email.com")

	_, err = execute(t, "", "parse", "John-Doe")
	require.ErrorIs(t, err, staff.ErrMalformedRecord)

	_, err = execute(t, "", "parse", "--kind", "intern", "John-Doe-1")
	require.Error(t, err)
}

func TestWorkdayCmd(t *testing.T) {
	out, err := execute(t, "", "workday", "2020-01-12", "2020-01-13")
	require.NoError(t, err)
	assert.Equal(t, "2020-01-12 Sunday: false\n2020-01-13 Monday: true\n", out)

	_, err = execute(t, "", "workday", "12/01/2020")
	require.Error(t, err)
}

func TestRosterCmd(t *testing.T) {
	data := `{"employees": [
		{"first": "Chris", "last": "Johnson", "pay": 50000, "kind": "developer", "prog_lang": "Python"},
		{"first": "Sue", "last": "Smith", "pay": 90000, "kind": "manager", "reports": [0]}
	]}`

	out, err := execute(t, data, "roster", "-")
	require.NoError(t, err)
	want := "Chris Johnson - Chris.Johnson.@email.com [developer] pay=50000 raise=1.1\n" +
		"Sue Smith - Sue.Smith.@email.com [manager] pay=90000 raise=1.04\n" +
		"--> Chris Johnson\n"
	if diff := cmp.Diff(want, out); diff != "" {
		t.Errorf("roster output mismatch (-want +got):\n%s", diff)
	}

	out, err = execute(t, data, "roster", "--apply-raise", "-")
	require.NoError(t, err)
	assert.Contains(t, out, "pay=55000")
	assert.Contains(t, out, "pay=93600")
}

func TestRosterCmdApplyRaiseSkipsTextPay(t *testing.T) {
	data := `{"employees": [
		{"first": "Chris", "last": "Johnson", "pay": 50000, "kind": "developer"},
		{"first": "John", "last": "Doe", "pay": "70000"},
		{"first": "Sue", "last": "Smith", "pay": 90000, "kind": "manager", "reports": [0, 1]}
	]}`

	out, err := execute(t, data, "roster", "--apply-raise", "-")
	require.NoError(t, err)
	want := "Chris Johnson - Chris.Johnson.@email.com [developer] pay=55000 raise=1.1\n" +
		"John Doe - John.Doe.@email.com [employee] pay=70000 raise=1.04 (raise skipped: pay is not numeric)\n" +
		"Sue Smith - Sue.Smith.@email.com [manager] pay=93600 raise=1.04\n" +
		"--> Chris Johnson\n" +
		"--> John Doe\n"
	if diff := cmp.Diff(want, out); diff != "" {
		t.Errorf("roster output mismatch (-want +got):\n%s", diff)
	}
}

func TestRosterCmdWithConfig(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "staff.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("email_domain: corp.example\nraise:\n  manager: 1.5\n"), 0o644))
	rosterPath := filepath.Join(dir, "roster.json")
	require.NoError(t, os.WriteFile(rosterPath, []byte(`{"employees": [{"first": "Sue", "last": "Smith", "pay": 100, "kind": "manager"}]}`), 0o644))

	out, err := execute(t, "", "--config", cfgPath, "roster", rosterPath)
	require.NoError(t, err)
	assert.Equal(t, "Sue Smith - Sue.Smith.@corp.example [manager] pay=100 raise=1.5\n", out)

	_, err = execute(t, "", "roster", filepath.Join(dir, "missing.json"))
	require.Error(t, err)
}

func TestConfigCmd(t *testing.T) {
	out, err := execute(t, "", "config")
	require.NoError(t, err)
	assert.Contains(t, out, "email_domain: email.com")
	assert.Contains(t, out, "employee: 1.04")

	out, err = execute(t, "", "config", "--default")
	require.NoError(t, err)
	assert.Contains(t, out, "# staffctl configuration")
}
