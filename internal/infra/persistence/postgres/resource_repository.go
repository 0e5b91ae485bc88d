package postgres

import (
	"context"
	"strings"

	"studyhub/internal/domain/entity"
	"studyhub/internal/domain/repository"
	"studyhub/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// searchColumns are the text columns a term is matched against, per variant.
var searchColumns = map[entity.Kind][]string{
	entity.KindSyllabus:     {"title", "description", "course_code"},
	entity.KindNote:         {"title", "description", "uploader_name"},
	entity.KindPastQuestion: {"title", "description", "exam_session"},
}

type resourceRepository struct {
	db *gorm.DB
}

// NewResourceRepository is the constructor for resourceRepository.
func NewResourceRepository(db *gorm.DB) repository.ResourceRepository {
	return &resourceRepository{db: db}
}

// Search returns the department's records of one kind, newest first, optionally
// narrowed to rows where any text column contains the term.
func (repo *resourceRepository) Search(ctx context.Context, filter repository.ResourceFilter) ([]entity.Resource, error) {
	switch filter.Kind {
	case entity.KindSyllabus:
		var rows []model.SyllabusModel
		if err := repo.scoped(ctx, filter).Find(&rows).Error; err != nil {
			return nil, errors.Wrap(err, "failed to search syllabi")
		}

		return mapRows(rows, toSyllabusDomain), nil
	case entity.KindNote:
		var rows []model.NoteModel
		if err := repo.scoped(ctx, filter).Find(&rows).Error; err != nil {
			return nil, errors.Wrap(err, "failed to search notes")
		}

		return mapRows(rows, toNoteDomain), nil
	case entity.KindPastQuestion:
		var rows []model.PyqModel
		if err := repo.scoped(ctx, filter).Find(&rows).Error; err != nil {
			return nil, errors.Wrap(err, "failed to search pyqs")
		}

		return mapRows(rows, toPyqDomain), nil
	default:
		return nil, errors.Errorf("unsupported resource kind %q", filter.Kind)
	}
}

// scoped builds the filtered, ordered query. The term is always a bound parameter.
func (repo *resourceRepository) scoped(ctx context.Context, filter repository.ResourceFilter) *gorm.DB {
	return applyResourceFilter(repo.db.WithContext(ctx), filter)
}

func applyResourceFilter(db *gorm.DB, filter repository.ResourceFilter) *gorm.DB {
	db = db.Where("department_id = ?", filter.DepartmentID)

	if term := strings.TrimSpace(filter.Term); term != "" {
		pattern := "%" + escapeLike(term) + "%"
		cols := searchColumns[filter.Kind]
		conds := make([]string, len(cols))
		args := make([]any, len(cols))
		for i, col := range cols {
			conds[i] = col + ` ILIKE ? ESCAPE '\'`
			args[i] = pattern
		}
		db = db.Where("("+strings.Join(conds, " OR ")+")", args...)
	}

	return db.Order("created_at DESC").Order("id DESC")
}

// escapeLike makes LIKE metacharacters in user input match literally.
func escapeLike(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch r {
		case '\\', '%', '_':
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}

	return b.String()
}

// --- Mapper Functions ---

func mapRows[M any](rows []M, toDomain func(*M) entity.Resource) []entity.Resource {
	out := make([]entity.Resource, 0, len(rows))
	for i := range rows {
		out = append(out, toDomain(&rows[i]))
	}

	return out
}

func toSyllabusDomain(data *model.SyllabusModel) entity.Resource {
	return &entity.Syllabus{
		ResourceBase: entity.ResourceBase{
			ID:           data.ID,
			Title:        data.Title,
			DepartmentID: data.DepartmentID,
			CourseCode:   data.CourseCode,
			Description:  data.Description,
			CreatedAt:    data.CreatedAt,
		},
		Credits: data.Credits,
	}
}

func toNoteDomain(data *model.NoteModel) entity.Resource {
	return &entity.Note{
		ResourceBase: entity.ResourceBase{
			ID:           data.ID,
			Title:        data.Title,
			DepartmentID: data.DepartmentID,
			CourseCode:   data.CourseCode,
			Description:  data.Description,
			CreatedAt:    data.CreatedAt,
		},
		UploaderName: data.UploaderName,
	}
}

func toPyqDomain(data *model.PyqModel) entity.Resource {
	return &entity.PastQuestion{
		ResourceBase: entity.ResourceBase{
			ID:           data.ID,
			Title:        data.Title,
			DepartmentID: data.DepartmentID,
			CourseCode:   data.CourseCode,
			Description:  data.Description,
			CreatedAt:    data.CreatedAt,
		},
		ExamSession: data.ExamSession,
	}
}
