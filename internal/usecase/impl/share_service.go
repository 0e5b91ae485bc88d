package impl

import (
	"net/url"
	"strings"

	"studyhub/config"
	"studyhub/internal/domain/entity"
	domainerrors "studyhub/internal/domain/errors"
	"studyhub/internal/domain/service"
	"studyhub/internal/usecase"
)

// viewPaths maps each kind to the front-end route that browses it.
var viewPaths = map[entity.Kind]string{
	entity.KindSyllabus:     "/syllabus",
	entity.KindNote:         "/notes",
	entity.KindPastQuestion: "/pyqs",
}

// shareService implements the ShareUsecase interface.
type shareService struct {
	baseURL string
	qr      service.QRCodeService
}

// NewShareService is the constructor for shareService.
func NewShareService(cfg *config.Config, qr service.QRCodeService) usecase.ShareUsecase {
	var base string
	if cfg != nil && cfg.Share != nil {
		base = cfg.Share.BaseURL
	}

	return &shareService{
		baseURL: strings.TrimRight(base, "/"),
		qr:      qr,
	}
}

// Link builds the deep link carrying dept and shared query parameters.
func (srv *shareService) Link(input usecase.ShareInput) (*usecase.ShareOutput, error) {
	link, err := srv.buildURL(input)
	if err != nil {
		return nil, err
	}

	return &usecase.ShareOutput{
		URL: link,
		Notice: entity.Notice{
			Level:   entity.NoticeSuccess,
			Code:    entity.NoticeLinkCopied,
			Message: "Link copied to clipboard",
		},
	}, nil
}

// QRCode renders the deep link as a PNG.
func (srv *shareService) QRCode(input usecase.ShareInput) ([]byte, error) {
	link, err := srv.buildURL(input)
	if err != nil {
		return nil, err
	}

	png, err := srv.qr.GeneratePNG(link)
	if err != nil {
		return nil, domainerrors.ErrInternalError.WrapMessage(err.Error())
	}

	return png, nil
}

func (srv *shareService) buildURL(input usecase.ShareInput) (string, error) {
	viewPath, ok := viewPaths[input.Kind]
	if !ok {
		return "", domainerrors.ErrInvalidInput.WithDetails("unknown resource kind")
	}
	if _, ok := entity.LookupDepartment(input.DepartmentID); !ok {
		return "", domainerrors.ErrInvalidInput.WithDetails("unknown department")
	}
	if strings.TrimSpace(input.ResourceID) == "" {
		return "", domainerrors.ErrInvalidInput.WithDetails("resource id is required")
	}

	u, err := url.Parse(srv.baseURL + viewPath)
	if err != nil {
		return "", domainerrors.ErrInternalError.WrapMessage("invalid share base URL")
	}
	q := u.Query()
	q.Set("dept", input.DepartmentID)
	q.Set("shared", strings.TrimSpace(input.ResourceID))
	u.RawQuery = q.Encode()

	return u.String(), nil
}
