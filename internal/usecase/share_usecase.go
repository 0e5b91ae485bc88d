package usecase

import "studyhub/internal/domain/entity"

// ShareInput identifies the record a deep link points at.
type ShareInput struct {
	Kind         entity.Kind
	DepartmentID string
	ResourceID   string
}

// ShareOutput is the shareable link plus the copy confirmation notice.
type ShareOutput struct {
	URL    string        `json:"url"`
	Notice entity.Notice `json:"notice"`
}

// ShareUsecase builds deep links that restore the department and promote the record.
type ShareUsecase interface {
	Link(input ShareInput) (*ShareOutput, error)
	QRCode(input ShareInput) ([]byte, error)
}
