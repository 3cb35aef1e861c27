package services

import (
  "context"
  "errors"
  "testing"
  "time"

  "github.com/google/uuid"

  "github.com/yungbote/supplycart-backend/internal/repos"
  "github.com/yungbote/supplycart-backend/internal/requestdata"
  "github.com/yungbote/supplycart-backend/internal/types"
)

func TestProfileResolveBySessionUserID(t *testing.T) {
  db := newTestDB(t)
  log := newTestLogger(t)
  userRepo := repos.NewUserRepo(db, log)
  supplierRepo := repos.NewSupplierRepo(db, log)
  svc := NewProfileService(log, userRepo, repos.NewUserTokenRepo(db, log), supplierRepo, repos.NewSupermarketRepo(db, log))

  supplier := &types.Supplier{ID: uuid.New(), Name: "Fresh Farms"}
  if _, err := supplierRepo.Create(context.Background(), nil, []*types.Supplier{supplier}); err != nil {
    t.Fatalf("seed supplier: %v", err)
  }
  user := &types.User{
    ID:         uuid.New(),
    Email:      "owner@freshfarms.test",
    Password:   "x",
    FirstName:  "Pat",
    LastName:   "Vendor",
    Role:       types.RoleSupplier,
    SupplierID: &supplier.ID,
  }
  if _, err := userRepo.Create(context.Background(), nil, []*types.User{user}); err != nil {
    t.Fatalf("seed user: %v", err)
  }

  ctx := requestdata.WithRequestData(context.Background(), &requestdata.RequestData{UserID: user.ID})
  profile, err := svc.Resolve(ctx)
  if err != nil {
    t.Fatalf("Resolve: %v", err)
  }
  if profile.User.ID != user.ID {
    t.Fatalf("resolved wrong user: %+v", profile.User)
  }
  if profile.Supplier == nil || profile.Supplier.Name != "Fresh Farms" {
    t.Fatalf("supplier record not expanded: %+v", profile.Supplier)
  }
}

func TestProfileResolveFallsBackToAccessToken(t *testing.T) {
  db := newTestDB(t)
  log := newTestLogger(t)
  userRepo := repos.NewUserRepo(db, log)
  tokenRepo := repos.NewUserTokenRepo(db, log)
  svc := NewProfileService(log, userRepo, tokenRepo, repos.NewSupplierRepo(db, log), repos.NewSupermarketRepo(db, log))

  user := &types.User{
    ID:        uuid.New(),
    Email:     "buyer@mart.test",
    Password:  "x",
    FirstName: "Sam",
    LastName:  "Buyer",
    Role:      types.RoleSupermarket,
  }
  if _, err := userRepo.Create(context.Background(), nil, []*types.User{user}); err != nil {
    t.Fatalf("seed user: %v", err)
  }
  token := &types.UserToken{
    ID:           uuid.New(),
    UserID:       user.ID,
    AccessToken:  "tok-abc",
    RefreshToken: "ref-abc",
    ExpiresAt:    time.Now().Add(time.Hour),
  }
  if _, err := tokenRepo.Create(context.Background(), nil, []*types.UserToken{token}); err != nil {
    t.Fatalf("seed token: %v", err)
  }

  // No usable user id in the session: the first candidate fails and the
  // token lookup takes over.
  ctx := requestdata.WithRequestData(context.Background(), &requestdata.RequestData{TokenString: "tok-abc"})
  profile, err := svc.Resolve(ctx)
  if err != nil {
    t.Fatalf("Resolve: %v", err)
  }
  if profile.User.ID != user.ID {
    t.Fatalf("resolved wrong user: %+v", profile.User)
  }
}

func TestProfileResolveUnavailable(t *testing.T) {
  db := newTestDB(t)
  log := newTestLogger(t)
  svc := NewProfileService(log, repos.NewUserRepo(db, log), repos.NewUserTokenRepo(db, log), repos.NewSupplierRepo(db, log), repos.NewSupermarketRepo(db, log))

  cases := []struct {
    name string
    ctx  context.Context
  }{
    {name: "no_session", ctx: context.Background()},
    {name: "unknown_user_and_token", ctx: requestdata.WithRequestData(context.Background(), &requestdata.RequestData{UserID: uuid.New(), TokenString: "gone"})},
  }
  for _, tc := range cases {
    t.Run(tc.name, func(t *testing.T) {
      _, err := svc.Resolve(tc.ctx)
      if !errors.Is(err, ErrProfileUnavailable) {
        t.Fatalf("Resolve error = %v, want ErrProfileUnavailable", err)
      }
    })
  }
}
