package account

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/junohq/backend/domain"
	"github.com/junohq/backend/repository"
	"github.com/junohq/backend/usecase"
)

// UseCase owns user records: identity, the derived agent name, personality
// and privacy settings.
type UseCase struct {
	users  repository.UserRepository
	buffer usecase.OperationBuffer
	logger *zap.Logger
	brand  string
}

func New(users repository.UserRepository, buffer usecase.OperationBuffer, logger *zap.Logger, brand string) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	if brand == "" {
		brand = "JUNO"
	}
	return &UseCase{
		users:  users,
		buffer: buffer,
		logger: logger,
		brand:  brand,
	}
}

// CreateUser registers an account with a derived agent name, the friendly
// default personality and default privacy settings.
func (uc *UseCase) CreateUser(ctx context.Context, firstName, lastName, email string) (*domain.User, error) {
	if firstName == "" || lastName == "" {
		return nil, domain.ErrInvalidPayload
	}

	user := &domain.User{
		ID:          uuid.NewString(),
		FirstName:   firstName,
		LastName:    lastName,
		Email:       email,
		AgentName:   domain.AgentNameFor(uc.brand, lastName),
		Personality: domain.PersonalityFriendly,
		Privacy:     domain.DefaultPrivacySettings(),
	}

	if err := uc.upsert(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (uc *UseCase) GetUser(ctx context.Context, userID string) (*domain.User, error) {
	return uc.users.GetByID(ctx, userID)
}

// SetPersonality switches the active agent personality. Unknown values fall
// back to the friendly default.
func (uc *UseCase) SetPersonality(ctx context.Context, userID string, personality domain.AgentPersonality) (*domain.User, error) {
	user, err := uc.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	user.Personality = domain.NormalizePersonality(personality)
	if err := uc.upsert(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Rename updates the user's name and recomputes the derived agent name when
// the last name changes.
func (uc *UseCase) Rename(ctx context.Context, userID, firstName, lastName string) (*domain.User, error) {
	user, err := uc.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if firstName != "" {
		user.FirstName = firstName
	}
	if lastName != "" && lastName != user.LastName {
		user.LastName = lastName
		user.AgentName = domain.AgentNameFor(uc.brand, lastName)
	}

	if err := uc.upsert(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// UpdatePrivacySetting flips one privacy toggle. Locked toggles are refused
// with a LockedField error and the stored settings stay untouched.
func (uc *UseCase) UpdatePrivacySetting(ctx context.Context, userID string, key domain.PrivacyToggle, value bool) (*domain.User, error) {
	user, err := uc.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if err := user.Privacy.Set(key, value); err != nil {
		return nil, err
	}

	if err := uc.upsert(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (uc *UseCase) upsert(ctx context.Context, user *domain.User) error {
	if err := uc.users.Upsert(ctx, user); err != nil {
		if uc.buffer != nil {
			if bufErr := uc.buffer.BufferProfile(ctx, usecase.OperationUpdate, user); bufErr != nil {
				uc.logger.Error("failed to buffer profile update", zap.Error(bufErr))
				return err
			}
			uc.logger.Warn("profile update buffered due to repository error", zap.Error(err))
			return nil
		}
		return err
	}
	return nil
}
