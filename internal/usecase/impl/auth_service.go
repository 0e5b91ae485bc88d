package impl

import (
	"context"
	"log/slog"
	"strings"

	"studyhub/config"
	deliverycontext "studyhub/internal/delivery/context"
	"studyhub/internal/domain/entity"
	domainerrors "studyhub/internal/domain/errors"
	"studyhub/internal/domain/repository"
	"studyhub/internal/domain/service"
	"studyhub/internal/usecase"

	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface.
type authService struct {
	verifier        service.IdentityVerifier
	userRepo        repository.UserRepository
	tokenService    service.TokenService
	bootstrapAdmins map[string]struct{}
	logger          *slog.Logger
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	Verifier     service.IdentityVerifier
	UserRepo     repository.UserRepository
	TokenService service.TokenService
	Config       *config.Config
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	admins := make(map[string]struct{})
	if params.Config != nil && params.Config.Auth != nil {
		for _, email := range params.Config.Auth.BootstrapAdmins {
			if email = normalizeEmail(email); email != "" {
				admins[email] = struct{}{}
			}
		}
	}

	return &authService{
		verifier:        params.Verifier,
		userRepo:        params.UserRepo,
		tokenService:    params.TokenService,
		bootstrapAdmins: admins,
		logger:          params.Logger,
	}
}

func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SignIn verifies the provider token, records the user and issues a service access token.
func (srv *authService) SignIn(ctx context.Context, input usecase.SignInInput) (*usecase.SignInOutput, error) {
	if strings.TrimSpace(input.IDToken) == "" {
		return nil, domainerrors.ErrInvalidInput.WithDetails("id_token is required")
	}

	identity, err := srv.verifier.Verify(ctx, input.IDToken)
	if err != nil {
		srv.log(ctx).Warn("Identity token rejected",
			slog.String("provider", srv.verifier.Provider()),
			slog.Any("error", err),
		)

		return nil, domainerrors.ErrIdentityRejected.WrapMessage(err.Error())
	}
	if !identity.EmailVerified {
		return nil, domainerrors.ErrIdentityRejected.WithDetails("email address is not verified")
	}
	identity.Email = normalizeEmail(identity.Email)

	user, err := srv.userRepo.UpsertByIdentity(ctx, identity)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to save user")
	}

	roles, err := srv.rolesFor(ctx, user.Email)
	if err != nil {
		return nil, err
	}

	accessToken, expiresAt, err := srv.tokenService.GenerateAccessToken(user.ID, roles.ToStrings())
	if err != nil {
		return nil, domainerrors.ErrInternalError.WrapMessage(err.Error())
	}

	srv.log(ctx).Info("User signed in",
		slog.String("user_id", user.ID.String()),
		slog.Any("roles", roles),
	)

	return &usecase.SignInOutput{
		AccessToken: accessToken,
		ExpiresAt:   expiresAt,
		User:        user,
		Roles:       roles.ToStrings(),
	}, nil
}

func (srv *authService) rolesFor(ctx context.Context, email string) (entity.Roles, error) {
	roles := entity.Roles{entity.RoleStudent}
	if _, ok := srv.bootstrapAdmins[email]; ok {
		return append(roles, entity.RoleAdmin), nil
	}

	isAdmin, err := srv.userRepo.IsAdmin(ctx, email)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to check admin role")
	}
	if isAdmin {
		roles = append(roles, entity.RoleAdmin)
	}

	return roles, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
