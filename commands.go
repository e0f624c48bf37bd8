package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v2"

	"go-staff/config"
	"go-staff/roster"
	"go-staff/staff"
	"go-staff/staff/developer"
	"go-staff/staff/manager"
)

func newDemoCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Walk through the model step by step",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, done, err := newRegistry(cmd, opts)
			if err != nil {
				return err
			}
			defer done()
			return runDemo(reg, cmd.OutOrStdout())
		},
	}
}

func runDemo(reg *staff.Registry, out io.Writer) error {
	say := func(a ...any) { fmt.Fprintln(out, a...) }

	say("employees:", reg.Count())
	emp1 := staff.NewEmployee(reg, "Leslie", "Purgason", staff.Amount(70000))
	emp2 := staff.NewEmployee(reg, "Test", "User", staff.Amount(60000))
	say("employees:", reg.Count())
	say(emp1.FullName())

	say("pay:", emp1.Pay())
	if err := emp1.ApplyRaise(); err != nil {
		return err
	}
	say("pay after raise:", emp1.Pay())

	if err := emp1.SetRaiseOverride(1.06); err != nil {
		return err
	}
	if err := reg.SetRaiseAmount(staff.KindEmployee, 1.05); err != nil {
		return err
	}

	parsed, err := staff.FromString(reg, "John-Doe-70000")
	if err != nil {
		return err
	}
	say("parsed:", parsed.GoString())

	day := time.Date(2020, time.January, 12, 0, 0, 0, 0, time.UTC)
	say("workday", day.Format("2006-01-02")+":", staff.IsWorkday(day))

	say("raise amounts:", reg.RaiseAmount(staff.KindEmployee), emp1.RaiseAmount(), emp2.RaiseAmount())

	dev1 := developer.New(reg, "Chris", "Johnson", staff.Amount(70000), "Python")
	dev2 := developer.New(reg, "Dev_Test", "Dev_User", staff.Amount(60000), "Java")
	say(dev1.Email())
	say(dev1.ProgLang)

	mgr1 := manager.New(reg, "Sue", "Smith", staff.Amount(90000), dev1)
	say(mgr1.Email())
	steps := []func(){
		func() {},
		func() { mgr1.AddEmployee(dev2) },
		func() { mgr1.RemoveEmployee(dev1) },
	}
	for _, step := range steps {
		step()
		if err := mgr1.WriteEmployees(out); err != nil {
			return err
		}
		say()
	}

	say(emp1.GoString())
	say(emp1.String())
	total, err := emp1.CombinedPay(emp2)
	if err != nil {
		return err
	}
	say("combined pay:", staff.Amount(total))
	say("name length:", emp1.Len())

	if err := emp1.SetFullName("Jane Smith"); err != nil {
		return err
	}
	first, _ := emp1.First()
	say(first)
	say(emp1.Email())
	say(emp1.FullName())
	emp1.ClearFullName()

	var e staff.IEmployee = mgr1
	_, isManager := e.(*manager.Manager)
	_, isDeveloper := e.(*developer.Developer)
	say("manager is a manager:", isManager)
	say("manager is a developer:", isDeveloper)
	say("employees:", reg.Count())
	return nil
}

func newParseCmd(opts *options) *cobra.Command {
	var kind string
	cmd := &cobra.Command{
		Use:   "parse <first-last-pay>...",
		Short: "Build entities from dash-separated records",
		Long: "Build entities from dash-separated records. Developers take a fourth\n" +
			"field with the programming language: first-last-pay-lang.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			k, ok := staff.ParseKind(kind)
			if !ok {
				return fmt.Errorf("unknown kind %q", kind)
			}
			reg, done, err := newRegistry(cmd, opts)
			if err != nil {
				return err
			}
			defer done()
			out := cmd.OutOrStdout()
			for _, record := range args {
				e, err := parseRecord(reg, k, record)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "%#v\n%s\n", e, e)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&kind, "kind", "k", "employee", "employee, developer or manager")
	return cmd
}

func parseRecord(reg *staff.Registry, kind staff.Kind, record string) (staff.IEmployee, error) {
	var (
		e   staff.IEmployee
		err error
	)
	switch kind {
	case staff.KindDeveloper:
		var d *developer.Developer
		if d, err = developer.FromString(reg, record); err == nil {
			e = d
		}
	case staff.KindManager:
		var m *manager.Manager
		if m, err = manager.FromString(reg, record); err == nil {
			e = m
		}
	default:
		var p *staff.Employee
		if p, err = staff.FromString(reg, record); err == nil {
			e = p
		}
	}
	return e, err
}

func newWorkdayCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "workday <YYYY-MM-DD>...",
		Short: "Report whether each date is a workday",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, arg := range args {
				day, err := time.Parse("2006-01-02", arg)
				if err != nil {
					return fmt.Errorf("parse date %q: %w", arg, err)
				}
				fmt.Fprintf(out, "%s %s: %t\n", arg, day.Weekday(), staff.IsWorkday(day))
			}
			return nil
		},
	}
}

func newRosterCmd(opts *options) *cobra.Command {
	var applyRaise bool
	cmd := &cobra.Command{
		Use:   "roster <file.json|->",
		Short: "Load a JSON roster and list every member",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(cmd, args[0])
			if err != nil {
				return err
			}
			reg, done, err := newRegistry(cmd, opts)
			if err != nil {
				return err
			}
			defer done()
			r, err := roster.Decode(reg, data)
			if err != nil {
				return err
			}
			return printRoster(cmd.OutOrStdout(), r, applyRaise)
		},
	}
	cmd.Flags().BoolVar(&applyRaise, "apply-raise", false, "apply each member's raise before listing")
	return cmd
}

func readInput(cmd *cobra.Command, name string) ([]byte, error) {
	if name == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}
	data, err := os.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("read roster: %w", err)
	}
	return data, nil
}

// printRoster applies raises to every member before writing anything.
// Members with text pay keep their pay and are marked as skipped.
func printRoster(out io.Writer, r *roster.Roster, applyRaise bool) error {
	skipped := make(map[*staff.Employee]bool)
	if applyRaise {
		for _, m := range r.Members {
			err := m.ApplyRaise()
			switch {
			case errors.Is(err, staff.ErrPayNotNumeric):
				skipped[m.Base()] = true
			case err != nil:
				return err
			}
		}
	}
	for _, m := range r.Members {
		fmt.Fprintf(out, "%s [%s] pay=%s raise=%g", m, m.Kind(), m.Pay(), m.RaiseAmount())
		if skipped[m.Base()] {
			fmt.Fprint(out, " (raise skipped: pay is not numeric)")
		}
		fmt.Fprintln(out)
		if mgr, ok := m.(*manager.Manager); ok {
			if err := mgr.WriteEmployees(out); err != nil {
				return err
			}
		}
	}
	return nil
}

func newConfigCmd() *cobra.Command {
	var showDefault bool
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective settings as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if showDefault {
				_, err := io.WriteString(out, config.DefaultYAML())
				return err
			}
			path, _ := cmd.Flags().GetString("config")
			cfg, err := config.Load(path)
			if err != nil {
				return err
			}
			data, err := yaml.Marshal(cfg)
			if err != nil {
				return fmt.Errorf("encode config: %w", err)
			}
			_, err = out.Write(data)
			return err
		},
	}
	cmd.Flags().BoolVar(&showDefault, "default", false, "print a commented starter file instead")
	return cmd
}
