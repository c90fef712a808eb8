package impl

import (
	"context"
	"log/slog"
	"strings"
	"unicode/utf8"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	minUsernameLength = 3
	maxUsernameLength = 100
)

// userService implements the UserUsecase interface.
type userService struct {
	txManager      repository.TransactionManager
	userRepo       repository.UserRepository
	hasher         service.PasswordHasher
	tokenService   service.TokenService
	openRoleSignup bool
	logger         *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Config       *config.Config
	Logger       *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	openRoleSignup := false
	if params.Config != nil && params.Config.Auth != nil {
		openRoleSignup = params.Config.Auth.OpenRoleSignup
	}

	return &userService{
		txManager:      params.TxManager,
		userRepo:       params.UserRepo,
		hasher:         params.Hasher,
		tokenService:   params.TokenService,
		openRoleSignup: openRoleSignup,
		logger:         params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates an account. Seller accounts must name an existing brand; only plain
// users can sign up unless open role signup is enabled.
func (srv *userService) Register(ctx context.Context, input *usecase.RegisterInput) (*entity.User, error) {
	username := strings.TrimSpace(input.Username)
	if n := utf8.RuneCountInString(username); n < minUsernameLength || n > maxUsernameLength {
		return nil, domainerrors.NewValidationError("username must be %d to %d characters", minUsernameLength, maxUsernameLength)
	}

	role := input.Role
	if role == "" {
		role = entity.RoleUser
	}
	if !role.IsValid() {
		return nil, domainerrors.NewValidationError("unknown role %q", role)
	}
	if role != entity.RoleUser && !srv.openRoleSignup {
		return nil, domainerrors.ErrRoleNotAllowed
	}

	var brandID *uint
	if role == entity.RoleSeller {
		if input.BrandID == nil || *input.BrandID == 0 {
			return nil, domainerrors.NewValidationError("brand_id is required for sellers")
		}
		id := *input.BrandID
		brandID = &id
	}

	if err := srv.hasher.Validate(input.Password); err != nil {
		srv.log(ctx).Warn("Password validation failed during registration", slog.String("username", username), slog.Any("error", err))

		return nil, domainerrors.NewValidationError("%s", err.Error())
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, domainerrors.ErrPasswordHashFailed
	}

	newUser := &entity.User{
		Username:     username,
		PasswordHash: hashedPassword,
		Role:         role,
		BrandID:      brandID,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if brandID != nil {
			if _, err := repoFactory.BrandRepo().FindByID(ctx, *brandID); err != nil {
				return errors.Wrap(err, "failed to load brand for seller")
			}
		}

		if err := repoFactory.UserRepo().Create(ctx, newUser); err != nil {
			return errors.Wrap(err, "failed to create user")
		}

		return nil
	})
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrUsernameTaken):
			return nil, domainerrors.ErrUserAlreadyExists
		case errors.Is(err, repository.ErrBrandNotFound):
			return nil, domainerrors.ErrBrandNotFound
		}

		srv.log(ctx).Error("Failed to execute registration transaction", slog.String("username", username), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute user registration transaction")
	}

	srv.log(ctx).Info("User registered", slog.Any("userID", newUser.ID), slog.Any("role", role))

	return newUser, nil
}

// Login checks the password and signs a session token. Unknown users and wrong
// passwords produce the same error.
func (srv *userService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	username := strings.TrimSpace(input.Username)

	user, err := srv.userRepo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.log(ctx).Warn("Login for unknown user", slog.String("username", username))

			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, errors.Wrap(err, "failed to find user for login")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Password mismatch on login", slog.Any("userID", user.ID))

		return nil, domainerrors.ErrInvalidCredentials
	}

	token, err := srv.tokenService.GenerateToken(user)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate session token")
	}

	srv.log(ctx).Info("User logged in", slog.Any("userID", user.ID), slog.Any("role", user.Role))

	return &usecase.LoginOutput{User: user, Token: token}, nil
}
