package handler

import (
	"net/http"
	"testing"

	"studyhub/internal/domain/entity"
	domainerrors "studyhub/internal/domain/errors"
	mocks "studyhub/internal/mocks/usecase"
	"studyhub/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestResourceHandler_Search(t *testing.T) {
	uc := mocks.NewMockResourceUsecase(t)
	uc.EXPECT().Search(mock.Anything, usecase.SearchQuery{
		Kind:         entity.KindNote,
		DepartmentID: "1",
		Term:         "graph",
		SharedID:     "n2",
	}).Return(&usecase.OrderedResultSet{
		Records: []entity.Resource{
			&entity.Note{ResourceBase: entity.ResourceBase{ID: "n2", Title: "Graphs"}, UploaderName: "asha"},
		},
		Total:   1,
		Visible: 1,
		Notices: []entity.Notice{},
	}, nil)

	e := newTestEcho()
	c, rec := newContext(e, http.MethodGet, "/resources/notes?dept=1&q=graph&shared=n2", nil, "kind", "notes")

	require.NoError(t, NewResourceHandler(ResourceHandlerParams{ResourceUC: uc}).Search(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.Contains(t, string(env.Data), `"kind":"note"`)
	assert.Contains(t, string(env.Data), `"uploader_name":"asha"`)
	assert.Contains(t, string(env.Data), `"visible":1`)
}

func TestResourceHandler_FailedReadStaysOK(t *testing.T) {
	uc := mocks.NewMockResourceUsecase(t)
	uc.EXPECT().Search(mock.Anything, mock.Anything).Return(&usecase.OrderedResultSet{
		Records: []entity.Resource{},
		Notices: []entity.Notice{{Level: entity.NoticeError, Code: entity.NoticeQueryFailed, Message: "Failed to fetch"}},
	}, nil)

	e := newTestEcho()
	c, rec := newContext(e, http.MethodGet, "/resources/syllabus?dept=1", nil, "kind", "syllabus")

	require.NoError(t, NewResourceHandler(ResourceHandlerParams{ResourceUC: uc}).Search(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "QUERY_FAILED")
}

func TestResourceHandler_UnknownKind(t *testing.T) {
	e := newTestEcho()
	c, rec := newContext(e, http.MethodGet, "/resources/videos?dept=1", nil, "kind", "videos")

	require.NoError(t, NewResourceHandler(ResourceHandlerParams{ResourceUC: mocks.NewMockResourceUsecase(t)}).Search(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_INPUT", decodeEnvelope(t, rec).Error.Code)
}

func TestResourceHandler_InvalidDepartment(t *testing.T) {
	uc := mocks.NewMockResourceUsecase(t)
	uc.EXPECT().Search(mock.Anything, mock.Anything).
		Return(nil, domainerrors.ErrInvalidInput.WithDetails("unknown department"))

	e := newTestEcho()
	c, rec := newContext(e, http.MethodGet, "/resources/pyq?dept=99", nil, "kind", "pyq")

	require.NoError(t, NewResourceHandler(ResourceHandlerParams{ResourceUC: uc}).Search(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "unknown department", decodeEnvelope(t, rec).Error.Details)
}
