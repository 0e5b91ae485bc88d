package model

// DepartmentModel mirrors the 'departments' table.
type DepartmentModel struct {
	ID        string `gorm:"type:text;primaryKey"`
	ShortName string `gorm:"type:varchar(16);not null"`
	Name      string `gorm:"type:varchar(100);not null"`
}

// TableName explicitly sets the table name for GORM.
func (DepartmentModel) TableName() string {
	return "departments"
}
