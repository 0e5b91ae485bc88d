package service

import "studyhub/internal/domain/entity"

// ResultCache keeps recent unpromoted search results for a short time.
type ResultCache interface {
	Get(key string) ([]entity.Resource, bool)
	Set(key string, records []entity.Resource)
}
