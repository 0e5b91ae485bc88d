package entity

import "slices"

// Department is an academic department. The ID matches the department_id column in the store.
type Department struct {
	ID        string `json:"id"`
	ShortName string `json:"short_name"`
	Name      string `json:"name"`
}

// departments must stay in sync with the departments table; drift is reported at startup.
var departments = []Department{
	{ID: "1", ShortName: "CSE", Name: "Computer Science and Engineering"},
	{ID: "2", ShortName: "ECE", Name: "Electronics and Communication Engineering"},
	{ID: "3", ShortName: "EEE", Name: "Electrical and Electronics Engineering"},
	{ID: "4", ShortName: "ME", Name: "Mechanical Engineering"},
	{ID: "5", ShortName: "CE", Name: "Civil Engineering"},
	{ID: "6", ShortName: "CHE", Name: "Chemical Engineering"},
	{ID: "7", ShortName: "BT", Name: "Biotechnology"},
	{ID: "8", ShortName: "MNC", Name: "Mathematics and Computing"},
}

// Departments returns a copy of the known departments in display order.
func Departments() []Department {
	return slices.Clone(departments)
}

// LookupDepartment finds a department by ID.
func LookupDepartment(id string) (Department, bool) {
	idx := slices.IndexFunc(departments, func(d Department) bool { return d.ID == id })
	if idx < 0 {
		return Department{}, false
	}

	return departments[idx], true
}

// DepartmentDrift describes how the known table differs from the store's rows.
type DepartmentDrift struct {
	MissingInStore []string     // known IDs with no row in the store
	UnknownInStore []Department // store rows absent from the known table
	Renamed        []Department // store rows whose name differs from the known table
}

// Empty reports whether the two sets agree.
func (d DepartmentDrift) Empty() bool {
	return len(d.MissingInStore) == 0 && len(d.UnknownInStore) == 0 && len(d.Renamed) == 0
}

// CompareDepartments diffs the known table against rows loaded from the store.
func CompareDepartments(stored []Department) DepartmentDrift {
	var drift DepartmentDrift

	byID := make(map[string]Department, len(stored))
	for _, d := range stored {
		byID[d.ID] = d
	}

	for _, known := range departments {
		row, ok := byID[known.ID]
		if !ok {
			drift.MissingInStore = append(drift.MissingInStore, known.ID)

			continue
		}
		if row.Name != known.Name {
			drift.Renamed = append(drift.Renamed, row)
		}
		delete(byID, known.ID)
	}

	for _, d := range stored {
		if _, ok := byID[d.ID]; ok {
			drift.UnknownInStore = append(drift.UnknownInStore, d)
		}
	}

	return drift
}
