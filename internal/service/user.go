package service

import (
	"context"
	"regexp"

	"github.com/rs/zerolog"

	"github.com/corecord/corecord-backend/internal/converter"
	"github.com/corecord/corecord-backend/internal/dto"
	"github.com/corecord/corecord-backend/internal/errs"
	"github.com/corecord/corecord-backend/internal/lib/job"
	"github.com/corecord/corecord-backend/internal/lib/utils"
	"github.com/corecord/corecord-backend/internal/model"
)

const maxNickNameLength = 10

var nickNamePattern = regexp.MustCompile(`^[a-zA-Z0-9가-힣\s]*$`)

type UserService struct {
	tx       Transactor
	users    UserRepository
	records  RecordRepository
	tokens   *TokenService
	identity IdentityProvider
	jobs     TaskEnqueuer
	logger   *zerolog.Logger
}

func NewUserService(
	tx Transactor,
	users UserRepository,
	records RecordRepository,
	tokens *TokenService,
	identity IdentityProvider,
	jobs TaskEnqueuer,
	logger *zerolog.Logger,
) *UserService {
	return &UserService{
		tx:       tx,
		users:    users,
		records:  records,
		tokens:   tokens,
		identity: identity,
		jobs:     jobs,
		logger:   logger,
	}
}

func validateNickName(nickName string) error {
	if !utils.RuneLenBetween(nickName, 1, maxNickNameLength) ||
		!nickNamePattern.MatchString(nickName) {
		return errs.New(errs.UserInvalidNickname)
	}
	return nil
}

func parseStatus(label string) (model.Status, error) {
	status, ok := model.StatusFromLabel(label)
	if !ok {
		return "", errs.New(errs.UserInvalidStatus)
	}
	return status, nil
}

// RegisterUser creates the user behind a verified provider token and
// returns it with a fresh session. The refresh token is stored last inside
// the transaction, so a Redis failure leaves no user behind.
func (s *UserService) RegisterUser(ctx context.Context, registerToken string, req *dto.RegisterUserRequest) (*dto.UserResponse, *dto.TokenPair, error) {
	providerID, err := s.identity.VerifyToken(ctx, registerToken)
	if err != nil {
		s.logger.Debug().Err(err).Msg("register token rejected")
		return nil, nil, errs.New(errs.TokenInvalidRegister)
	}

	if err := validateNickName(req.NickName); err != nil {
		return nil, nil, err
	}
	status, err := parseStatus(req.Status)
	if err != nil {
		return nil, nil, err
	}

	user := converter.ToUser(providerID, req.NickName, status)
	var pair *dto.TokenPair
	err = s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		exists, err := s.users.ExistsByProviderID(ctx, providerID)
		if err != nil {
			return err
		}
		if exists {
			return errs.New(errs.UserAlreadyExist)
		}
		if err := s.users.Create(ctx, &user); err != nil {
			return err
		}

		pair, err = s.tokens.IssueTokens(ctx, user.ID)
		return err
	})
	if err != nil {
		return nil, nil, err
	}

	s.enqueueWelcomeEmail(ctx, &user)

	s.logger.Info().
		Int64("user_id", user.ID).
		Str("event", "user_registered").
		Msg("user registered")

	resp := converter.ToUserDto(&user)
	return &resp, pair, nil
}

// enqueueWelcomeEmail is best effort: registration never fails because the
// welcome mail could not be scheduled.
func (s *UserService) enqueueWelcomeEmail(ctx context.Context, user *model.User) {
	logger := s.logger.With().Int64("user_id", user.ID).Logger()

	to, err := s.identity.PrimaryEmail(ctx, user.ProviderID)
	if err != nil {
		logger.Warn().Err(err).Msg("failed to look up e-mail for welcome mail")
		return
	}
	if to == "" {
		return
	}

	task, err := job.NewWelcomeEmailTask(to, user.NickName)
	if err != nil {
		logger.Error().Err(err).Msg("failed to create welcome email task")
		return
	}
	if _, err := s.jobs.EnqueueContext(ctx, task); err != nil {
		logger.Error().Err(err).Msg("failed to enqueue welcome email task")
	}
}

func (s *UserService) LoginUser(ctx context.Context, providerToken string) (*dto.TokenPair, error) {
	providerID, err := s.identity.VerifyToken(ctx, providerToken)
	if err != nil {
		s.logger.Debug().Err(err).Msg("login token rejected")
		return nil, errs.New(errs.GeneralUnauthorized)
	}

	user, err := s.users.FindByProviderID(ctx, providerID)
	if err != nil {
		if isNotFound(err) {
			return nil, errs.New(errs.UserUnregistered)
		}
		return nil, err
	}

	return s.tokens.IssueTokens(ctx, user.ID)
}

func (s *UserService) LogoutUser(ctx context.Context, refreshToken string) error {
	return s.tokens.RevokeRefreshToken(ctx, refreshToken)
}

// DeleteUser removes the user with everything they own and revokes the
// refresh token of the current session. The user row survives when the
// token cannot be revoked.
func (s *UserService) DeleteUser(ctx context.Context, userID int64, refreshToken string) error {
	return s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		user, err := findUser(ctx, s.users, userID)
		if err != nil {
			return err
		}
		if err := s.users.Delete(ctx, user.ID); err != nil {
			return err
		}
		return s.tokens.RevokeRefreshToken(ctx, refreshToken)
	})
}

func (s *UserService) UpdateUser(ctx context.Context, userID int64, req *dto.UpdateUserRequest) (*dto.UserResponse, error) {
	var resp dto.UserResponse
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		user, err := findUser(ctx, s.users, userID)
		if err != nil {
			return err
		}

		if req.NickName != nil {
			if err := validateNickName(*req.NickName); err != nil {
				return err
			}
			user.NickName = *req.NickName
		}
		if req.Status != nil {
			status, err := parseStatus(*req.Status)
			if err != nil {
				return err
			}
			user.Status = status
		}

		if err := s.users.Update(ctx, user); err != nil {
			return err
		}
		resp = converter.ToUserDto(user)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetUserInfo counts the user's records, leaving out temporary placeholders.
func (s *UserService) GetUserInfo(ctx context.Context, userID int64) (*dto.UserInfoResponse, error) {
	user, err := findUser(ctx, s.users, userID)
	if err != nil {
		return nil, err
	}

	count, err := s.records.CountByUserID(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	if user.TmpMemo != nil {
		count--
	}
	if user.TmpChat != nil {
		count--
	}

	resp := converter.ToUserInfoDto(user, max(count, 0))
	return &resp, nil
}
