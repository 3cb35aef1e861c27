package services

import (
  "context"
  "fmt"
  "gorm.io/gorm"
  "github.com/google/uuid"
  "github.com/yungbote/supplycart-backend/internal/logger"
  "github.com/yungbote/supplycart-backend/internal/repos"
  "github.com/yungbote/supplycart-backend/internal/requestdata"
  "github.com/yungbote/supplycart-backend/internal/types"
)

type UserService interface {
  GetMe(ctx context.Context) (*types.User, error)
  UpdateAvatar(ctx context.Context, raw []byte) (*types.User, error)
}

type userService struct {
  db            *gorm.DB
  log           *logger.Logger
  userRepo      repos.UserRepo
  avatarService AvatarService
}

func NewUserService(db *gorm.DB, log *logger.Logger, userRepo repos.UserRepo, avatarService AvatarService) UserService {
  serviceLog := log.With("service", "UserService")
  return &userService{db: db, log: serviceLog, userRepo: userRepo, avatarService: avatarService}
}

func (us *userService) GetMe(ctx context.Context) (*types.User, error) {
  rd := requestdata.GetRequestData(ctx)
  if rd == nil || rd.UserID == uuid.Nil {
    return nil, fmt.Errorf("No session in context")
  }
  users, err := us.userRepo.GetByIDs(ctx, nil, []uuid.UUID{rd.UserID})
  if err != nil {
    return nil, err
  }
  if len(users) == 0 {
    return nil, fmt.Errorf("User not found")
  }
  return users[0], nil
}

func (us *userService) UpdateAvatar(ctx context.Context, raw []byte) (*types.User, error) {
  if us.avatarService == nil {
    return nil, fmt.Errorf("Avatar rendering is not configured")
  }
  user, err := us.GetMe(ctx)
  if err != nil {
    return nil, err
  }
  if aErr := us.avatarService.UpdateUserAvatarFromImage(ctx, user, raw); aErr != nil {
    return nil, aErr
  }
  if uErr := us.userRepo.Update(ctx, nil, user); uErr != nil {
    return nil, fmt.Errorf("Failed to persist avatar fields: %w", uErr)
  }
  return user, nil
}
