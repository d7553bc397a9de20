package memory

import (
	"context"
	"sort"
	"strings"

	"github.com/awash-hr/job-portal/internal/domain/employee"
)

type employeeRepository struct {
	s *Store
}

func (s *Store) Employees() employee.EmployeeRepository {
	return &employeeRepository{s: s}
}

func (r *employeeRepository) find(match func(employee.Employee) bool) (employee.Employee, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, emp := range r.s.data.employees {
		if match(emp) {
			return emp, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (r *employeeRepository) GetByID(_ context.Context, id string) (employee.Employee, error) {
	return r.find(func(e employee.Employee) bool { return e.ID == id })
}

func (r *employeeRepository) GetByEmployeeID(_ context.Context, employeeID string) (employee.Employee, error) {
	return r.find(func(e employee.Employee) bool { return e.EmployeeID == employeeID })
}

func (r *employeeRepository) GetByAccountID(_ context.Context, accountID string) (employee.Employee, error) {
	return r.find(func(e employee.Employee) bool { return e.AccountID != nil && *e.AccountID == accountID })
}

func (r *employeeRepository) GetByEmail(_ context.Context, email string) (employee.Employee, error) {
	return r.find(func(e employee.Employee) bool { return e.Email != nil && strings.EqualFold(*e.Email, email) })
}

// conflicts reports whether emp would break the employee_id or account_id
// unique constraints. Caller holds the lock.
func (r *employeeRepository) conflicts(emp employee.Employee) bool {
	for _, other := range r.s.data.employees {
		if other.ID == emp.ID {
			continue
		}
		if other.EmployeeID == emp.EmployeeID {
			return true
		}
		if emp.AccountID != nil && other.AccountID != nil && *emp.AccountID == *other.AccountID {
			return true
		}
	}
	return false
}

func (r *employeeRepository) Create(_ context.Context, emp employee.Employee) (employee.Employee, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	emp.ID = newID()
	if r.conflicts(emp) {
		return employee.Employee{}, employee.ErrAlreadyRegistered
	}
	now := r.s.clock.Now()
	emp.CreatedAt = now
	emp.UpdatedAt = now
	r.s.data.employees[emp.ID] = emp
	return emp, nil
}

func (r *employeeRepository) Update(_ context.Context, emp employee.Employee) (employee.Employee, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	current, ok := r.s.data.employees[emp.ID]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	emp.EmployeeID = current.EmployeeID
	emp.CreatedAt = current.CreatedAt
	if r.conflicts(emp) {
		return employee.Employee{}, employee.ErrAlreadyRegistered
	}
	emp.UpdatedAt = r.s.clock.Now()
	r.s.data.employees[emp.ID] = emp
	return emp, nil
}

func (r *employeeRepository) Upsert(_ context.Context, row employee.ImportRow) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	now := r.s.clock.Now()
	for id, emp := range r.s.data.employees {
		if emp.EmployeeID == row.EmployeeID {
			emp.FullName = row.FullName
			emp.Department = row.Department
			emp.Email = row.Email
			emp.Phone = row.Phone
			emp.UpdatedAt = now
			r.s.data.employees[id] = emp
			return false, nil
		}
	}

	emp := employee.Employee{
		ID:         newID(),
		EmployeeID: row.EmployeeID,
		FullName:   row.FullName,
		Department: row.Department,
		Email:      row.Email,
		Phone:      row.Phone,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	r.s.data.employees[emp.ID] = emp
	return true, nil
}

func (r *employeeRepository) List(_ context.Context, filter employee.EmployeeFilter) ([]employee.Employee, int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	search := strings.ToLower(filter.Search)
	var matched []employee.Employee
	for _, emp := range r.s.data.employees {
		if filter.Registered != nil && emp.IsRegistered != *filter.Registered {
			continue
		}
		if search != "" && !matchesSearch(emp, search) {
			continue
		}
		matched = append(matched, emp)
	}

	sort.Slice(matched, func(i, j int) bool {
		if matched[i].FullName != matched[j].FullName {
			return matched[i].FullName < matched[j].FullName
		}
		return matched[i].EmployeeID < matched[j].EmployeeID
	})

	total := int64(len(matched))
	start := min(filter.Offset(), len(matched))
	end := len(matched)
	if filter.Limit > 0 {
		end = min(start+filter.Limit, len(matched))
	}
	return append([]employee.Employee{}, matched[start:end]...), total, nil
}

func matchesSearch(emp employee.Employee, search string) bool {
	if strings.Contains(strings.ToLower(emp.FullName), search) ||
		strings.Contains(strings.ToLower(emp.EmployeeID), search) {
		return true
	}
	return emp.Department != nil && strings.Contains(strings.ToLower(*emp.Department), search)
}

// Delete removes the employee with its applications and promotions.
func (r *employeeRepository) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.data.employees[id]; !ok {
		return employee.ErrEmployeeNotFound
	}
	delete(r.s.data.employees, id)

	for key, app := range r.s.data.applications {
		if app.EmployeeID == id {
			delete(r.s.data.applications, key)
		}
	}
	for key, p := range r.s.data.promotions {
		if p.EmployeeID == id {
			delete(r.s.data.promotions, key)
		}
	}
	return nil
}
