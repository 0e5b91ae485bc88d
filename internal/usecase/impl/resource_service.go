// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"studyhub/config"
	deliverycontext "studyhub/internal/delivery/context"
	"studyhub/internal/domain/entity"
	domainerrors "studyhub/internal/domain/errors"
	"studyhub/internal/domain/repository"
	"studyhub/internal/domain/service"
	"studyhub/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"golang.org/x/sync/singleflight"
)

// resourceService implements the ResourceUsecase interface.
type resourceService struct {
	repo          repository.ResourceRepository
	cache         service.ResultCache
	inflight      singleflight.Group
	idleVisible   int
	searchVisible int
	logger        *slog.Logger
}

// ResourceServiceParams holds dependencies for ResourceService, injected by Fx.
type ResourceServiceParams struct {
	fx.In

	Repo   repository.ResourceRepository
	Cache  service.ResultCache
	Config *config.Config
	Logger *slog.Logger
}

// NewResourceService is the constructor for resourceService.
func NewResourceService(params ResourceServiceParams) usecase.ResourceUsecase {
	idle, searching := 6, 10
	if params.Config != nil && params.Config.Search != nil {
		if params.Config.Search.IdleVisible > 0 {
			idle = params.Config.Search.IdleVisible
		}
		if params.Config.Search.SearchVisible > 0 {
			searching = params.Config.Search.SearchVisible
		}
	}

	return &resourceService{
		repo:          params.Repo,
		cache:         params.Cache,
		idleVisible:   idle,
		searchVisible: searching,
		logger:        params.Logger,
	}
}

func (srv *resourceService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Search reads the department's records, filtered by term, and moves the shared record to the front.
func (srv *resourceService) Search(ctx context.Context, query usecase.SearchQuery) (*usecase.OrderedResultSet, error) {
	if !query.Kind.IsValid() {
		return nil, domainerrors.ErrInvalidInput.WithDetails("unknown resource kind")
	}

	departmentID := strings.TrimSpace(query.DepartmentID)
	if departmentID == "" {
		return nil, domainerrors.ErrInvalidInput.WithDetails("department is required")
	}
	if _, ok := entity.LookupDepartment(departmentID); !ok {
		return nil, domainerrors.ErrInvalidInput.WithDetails("unknown department")
	}

	start := time.Now()
	defer func() {
		searchDuration.WithLabelValues(query.Kind.String()).Observe(time.Since(start).Seconds())
	}()

	term := strings.TrimSpace(query.Term)
	visible := srv.VisibleCount(term)
	key := resultCacheKey(query.Kind, departmentID, term)

	records, hit := srv.cache.Get(key)
	if hit {
		searchTotal.WithLabelValues(query.Kind.String(), outcomeCached).Inc()
	} else {
		var err error
		records, err = srv.load(ctx, key, repository.ResourceFilter{
			Kind:         query.Kind,
			DepartmentID: departmentID,
			Term:         term,
		})
		if err != nil {
			outcome := outcomeFailed
			if ctx.Err() != nil {
				outcome = outcomeAbandoned
				srv.log(ctx).Debug("Search abandoned by caller",
					slog.String("kind", query.Kind.String()),
					slog.String("department_id", departmentID),
				)
			} else {
				srv.log(ctx).Error("Resource query failed",
					slog.String("kind", query.Kind.String()),
					slog.String("department_id", departmentID),
					slog.String("term", term),
					slog.Any("error", err),
				)
			}
			searchTotal.WithLabelValues(query.Kind.String(), outcome).Inc()

			return &usecase.OrderedResultSet{
				Records: []entity.Resource{},
				Notices: []entity.Notice{{
					Level:   entity.NoticeError,
					Code:    entity.NoticeQueryFailed,
					Message: domainerrors.ErrQueryFailed.Message(),
				}},
			}, nil
		}
	}

	ordered := PromoteShared(records, strings.TrimSpace(query.SharedID))
	result := &usecase.OrderedResultSet{
		Records: ordered,
		Total:   len(ordered),
		Visible: min(visible, len(ordered)),
		Notices: []entity.Notice{},
	}

	if len(ordered) == 0 {
		result.Notices = append(result.Notices, entity.Notice{
			Level:   entity.NoticeInfo,
			Code:    entity.NoticeNoResults,
			Message: "No results found",
		})
		if !hit {
			searchTotal.WithLabelValues(query.Kind.String(), outcomeEmpty).Inc()
		}
	} else if !hit {
		searchTotal.WithLabelValues(query.Kind.String(), outcomeOK).Inc()
	}

	return result, nil
}

// sharedReadTimeout bounds a read that no longer follows any single caller's context.
const sharedReadTimeout = 15 * time.Second

// load makes identical concurrent reads share one round-trip. The read is
// detached from the first caller, so a caller leaving only stops its own wait.
func (srv *resourceService) load(ctx context.Context, key string, filter repository.ResourceFilter) ([]entity.Resource, error) {
	ch := srv.inflight.DoChan(key, func() (any, error) {
		readCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), sharedReadTimeout)
		defer cancel()

		records, err := srv.repo.Search(readCtx, filter)
		if err != nil {
			return nil, err
		}
		srv.cache.Set(key, records)

		return records, nil
	})

	select {
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		records, _ := res.Val.([]entity.Resource)

		return records, nil
	case <-ctx.Done():
		return nil, errors.WithStack(ctx.Err())
	}
}

// VisibleCount returns the idle window for an empty term and the search window otherwise.
func (srv *resourceService) VisibleCount(term string) int {
	if strings.TrimSpace(term) == "" {
		return srv.idleVisible
	}

	return srv.searchVisible
}

// PromoteShared returns a copy of records with the record whose ID equals sharedID at index 0.
// Every other record keeps its relative order. An empty or absent sharedID yields an unchanged copy.
func PromoteShared(records []entity.Resource, sharedID string) []entity.Resource {
	out := make([]entity.Resource, 0, len(records))
	if sharedID == "" {
		return append(out, records...)
	}

	idx := -1
	for i, record := range records {
		if record.ResourceID() == sharedID {
			idx = i

			break
		}
	}
	if idx < 0 {
		return append(out, records...)
	}

	out = append(out, records[idx])
	out = append(out, records[:idx]...)

	return append(out, records[idx+1:]...)
}

func resultCacheKey(kind entity.Kind, departmentID, term string) string {
	return kind.String() + "\x00" + departmentID + "\x00" + term
}
