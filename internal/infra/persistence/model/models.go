// Package model holds the GORM row types of the portal's tables.
package model

// All returns every model in migration order.
func All() []any {
	return []any{
		&DepartmentModel{},
		&SyllabusModel{},
		&NoteModel{},
		&PyqModel{},
		&UserModel{},
		&AdminModel{},
		&UploadModel{},
	}
}
