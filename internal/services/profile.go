package services

import (
  "context"
  "errors"
  "github.com/google/uuid"
  "github.com/yungbote/supplycart-backend/internal/logger"
  "github.com/yungbote/supplycart-backend/internal/repos"
  "github.com/yungbote/supplycart-backend/internal/requestdata"
  "github.com/yungbote/supplycart-backend/internal/types"
)

// ErrProfileUnavailable is returned only after every candidate lookup has
// failed.
var ErrProfileUnavailable = errors.New("profile unavailable")

// Profile is the current user plus the directory record for their side of
// the marketplace.
type Profile struct {
  User        *types.User          `json:"user"`
  Supplier    *types.Supplier      `json:"supplier,omitempty"`
  Supermarket *types.Supermarket   `json:"supermarket,omitempty"`
}

type ProfileService interface {
  Resolve(ctx context.Context) (*Profile, error)
}

type profileService struct {
  log             *logger.Logger
  userRepo        repos.UserRepo
  userTokenRepo   repos.UserTokenRepo
  supplierRepo    repos.SupplierRepo
  supermarketRepo repos.SupermarketRepo
}

func NewProfileService(log *logger.Logger, userRepo repos.UserRepo, userTokenRepo repos.UserTokenRepo, supplierRepo repos.SupplierRepo, supermarketRepo repos.SupermarketRepo) ProfileService {
  serviceLog := log.With("service", "ProfileService")
  return &profileService{
    log:             serviceLog,
    userRepo:        userRepo,
    userTokenRepo:   userTokenRepo,
    supplierRepo:    supplierRepo,
    supermarketRepo: supermarketRepo,
  }
}

// Resolve walks an ordered list of candidate lookups and returns the first
// that succeeds: the session user id, then the raw access token. Explicit
// sequence, not exception-driven fallback.
func (ps *profileService) Resolve(ctx context.Context) (*Profile, error) {
  candidates := []func(context.Context) (*types.User, error){
    ps.bySessionUserID,
    ps.byAccessToken,
  }
  for _, lookup := range candidates {
    user, err := lookup(ctx)
    if err != nil || user == nil {
      continue
    }
    return ps.expand(ctx, user)
  }
  return nil, ErrProfileUnavailable
}

func (ps *profileService) bySessionUserID(ctx context.Context) (*types.User, error) {
  rd := requestdata.GetRequestData(ctx)
  if rd == nil || rd.UserID == uuid.Nil {
    return nil, ErrProfileUnavailable
  }
  users, err := ps.userRepo.GetByIDs(ctx, nil, []uuid.UUID{rd.UserID})
  if err != nil || len(users) == 0 {
    return nil, ErrProfileUnavailable
  }
  return users[0], nil
}

func (ps *profileService) byAccessToken(ctx context.Context) (*types.User, error) {
  rd := requestdata.GetRequestData(ctx)
  if rd == nil || rd.TokenString == "" {
    return nil, ErrProfileUnavailable
  }
  token, err := ps.userTokenRepo.GetByAccessToken(ctx, nil, rd.TokenString)
  if err != nil || token == nil {
    return nil, ErrProfileUnavailable
  }
  users, err := ps.userRepo.GetByIDs(ctx, nil, []uuid.UUID{token.UserID})
  if err != nil || len(users) == 0 {
    return nil, ErrProfileUnavailable
  }
  return users[0], nil
}

func (ps *profileService) expand(ctx context.Context, user *types.User) (*Profile, error) {
  profile := &Profile{User: user}
  if user.SupplierID != nil {
    suppliers, err := ps.supplierRepo.GetByIDs(ctx, nil, []uuid.UUID{*user.SupplierID})
    if err == nil && len(suppliers) > 0 {
      profile.Supplier = suppliers[0]
    }
  }
  if user.SupermarketID != nil {
    supermarkets, err := ps.supermarketRepo.GetByIDs(ctx, nil, []uuid.UUID{*user.SupermarketID})
    if err == nil && len(supermarkets) > 0 {
      profile.Supermarket = supermarkets[0]
    }
  }
  return profile, nil
}
