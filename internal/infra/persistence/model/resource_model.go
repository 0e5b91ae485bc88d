package model

import "time"

// SyllabusModel mirrors the 'syllabi' table.
type SyllabusModel struct {
	ID           string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Title        string    `gorm:"type:text;not null"`
	DepartmentID string    `gorm:"type:text;not null;index:idx_syllabi_department_created,priority:1"`
	CourseCode   string    `gorm:"type:varchar(32);not null"`
	Description  *string   `gorm:"type:text"`
	Credits      *int      `gorm:"type:integer"`
	CreatedAt    time.Time `gorm:"not null;index:idx_syllabi_department_created,priority:2,sort:desc"`
}

// TableName explicitly sets the table name for GORM.
func (SyllabusModel) TableName() string {
	return "syllabi"
}

// NoteModel mirrors the 'notes' table. UploaderName doubles as the archive name in Drive.
type NoteModel struct {
	ID           string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Title        string    `gorm:"type:text;not null"`
	DepartmentID string    `gorm:"type:text;not null;index:idx_notes_department_created,priority:1"`
	CourseCode   string    `gorm:"type:varchar(32);not null"`
	Description  *string   `gorm:"type:text"`
	UploaderName string    `gorm:"type:varchar(100);not null"`
	CreatedAt    time.Time `gorm:"not null;index:idx_notes_department_created,priority:2,sort:desc"`
}

// TableName explicitly sets the table name for GORM.
func (NoteModel) TableName() string {
	return "notes"
}

// PyqModel mirrors the 'pyqs' table.
type PyqModel struct {
	ID           string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Title        string    `gorm:"type:text;not null"`
	DepartmentID string    `gorm:"type:text;not null;index:idx_pyqs_department_created,priority:1"`
	CourseCode   string    `gorm:"type:varchar(32);not null"`
	Description  *string   `gorm:"type:text"`
	ExamSession  *string   `gorm:"type:varchar(64)"`
	CreatedAt    time.Time `gorm:"not null;index:idx_pyqs_department_created,priority:2,sort:desc"`
}

// TableName explicitly sets the table name for GORM.
func (PyqModel) TableName() string {
	return "pyqs"
}
