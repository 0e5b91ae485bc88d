package handler

import (
	"net/http"
	"testing"

	"studyhub/internal/domain/entity"
	mocks "studyhub/internal/mocks/usecase"
	"studyhub/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShareHandler_Link(t *testing.T) {
	input := usecase.ShareInput{Kind: entity.KindPastQuestion, DepartmentID: "2", ResourceID: "p9"}
	uc := mocks.NewMockShareUsecase(t)
	uc.EXPECT().Link(input).Return(&usecase.ShareOutput{
		URL:    "https://studyhub.example.edu/pyqs?dept=2&shared=p9",
		Notice: entity.Notice{Level: entity.NoticeSuccess, Code: entity.NoticeLinkCopied, Message: "Link copied to clipboard"},
	}, nil)

	e := newTestEcho()
	c, rec := newContext(e, http.MethodGet, "/share/pyqs/p9?dept=2", nil, "kind", "pyqs", "id", "p9")

	require.NoError(t, NewShareHandler(ShareHandlerParams{ShareUC: uc}).Link(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, string(decodeEnvelope(t, rec).Data), "LINK_COPIED")
}

func TestShareHandler_QRCode(t *testing.T) {
	png := []byte{0x89, 'P', 'N', 'G'}
	uc := mocks.NewMockShareUsecase(t)
	uc.EXPECT().QRCode(usecase.ShareInput{Kind: entity.KindSyllabus, DepartmentID: "1", ResourceID: "s1"}).Return(png, nil)

	e := newTestEcho()
	c, rec := newContext(e, http.MethodGet, "/share/syllabus/s1/qr?dept=1", nil, "kind", "syllabus", "id", "s1")

	require.NoError(t, NewShareHandler(ShareHandlerParams{ShareUC: uc}).QRCode(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
	assert.Equal(t, png, rec.Body.Bytes())
}

func TestShareHandler_UnknownKind(t *testing.T) {
	e := newTestEcho()
	c, rec := newContext(e, http.MethodGet, "/share/videos/v1?dept=1", nil, "kind", "videos", "id", "v1")

	require.NoError(t, NewShareHandler(ShareHandlerParams{ShareUC: mocks.NewMockShareUsecase(t)}).Link(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "unknown resource kind", decodeEnvelope(t, rec).Error.Details)
}
