package manager

import (
	"fmt"
	"io"

	"go.uber.org/zap"

	"go-staff/staff"
)

// Manager is an employee with an ordered list of reports. The list holds
// references only; removing a report does not affect the report itself.
type Manager struct {
	*staff.Employee
	reports []staff.IEmployee
}

// New builds a manager with its own report list. Duplicate reports are
// dropped.
func New(reg *staff.Registry, first, last string, pay staff.Pay, reports ...staff.IEmployee) *Manager {
	m := &Manager{Employee: staff.NewBase(reg, staff.KindManager, first, last, pay)}
	for _, e := range reports {
		m.add(e)
	}
	return m
}

// FromString parses "first-last-pay" into a manager with no reports.
func FromString(reg *staff.Registry, record string) (*Manager, error) {
	first, last, pay, err := staff.SplitRecord(record)
	if err != nil {
		return nil, err
	}
	return New(reg, first, last, staff.Text(pay)), nil
}

func (m *Manager) Base() *staff.Employee {
	if m == nil {
		return nil
	}
	return m.Employee
}

func (m *Manager) index(e staff.IEmployee) int {
	for i, r := range m.reports {
		if staff.Same(r, e) {
			return i
		}
	}
	return -1
}

func (m *Manager) add(e staff.IEmployee) bool {
	if staff.BaseOf(e) == nil || m.index(e) >= 0 {
		return false
	}
	m.reports = append(m.reports, e)
	return true
}

// AddEmployee appends e unless it is already a report.
func (m *Manager) AddEmployee(e staff.IEmployee) {
	if m.add(e) {
		m.Registry().Logger().Debug("report added",
			zap.String("manager", m.FullName()),
			zap.String("report", e.FullName()),
		)
	}
}

// RemoveEmployee drops e if present.
func (m *Manager) RemoveEmployee(e staff.IEmployee) {
	if staff.BaseOf(e) == nil {
		return
	}
	i := m.index(e)
	if i < 0 {
		return
	}
	m.reports = append(m.reports[:i], m.reports[i+1:]...)
	m.Registry().Logger().Debug("report removed",
		zap.String("manager", m.FullName()),
		zap.String("report", e.FullName()),
	)
}

func (m *Manager) Has(e staff.IEmployee) bool { return m.index(e) >= 0 }

// Employees returns a copy of the reports in insertion order.
func (m *Manager) Employees() []staff.IEmployee {
	out := make([]staff.IEmployee, len(m.reports))
	copy(out, m.reports)
	return out
}

func (m *Manager) WriteEmployees(w io.Writer) error {
	for _, e := range m.reports {
		if _, err := fmt.Fprintln(w, "-->", e.FullName()); err != nil {
			return err
		}
	}
	return nil
}

// PrintEmployees writes "--> fullname" per report to the registry output.
func (m *Manager) PrintEmployees() error {
	return m.WriteEmployees(m.Registry().Output())
}
