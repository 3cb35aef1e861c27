package services

import (
  "context"
  "fmt"
  "time"
  "gorm.io/gorm"
  "golang.org/x/crypto/bcrypt"
  "github.com/golang-jwt/jwt/v5"
  "github.com/google/uuid"
  "github.com/yungbote/supplycart-backend/internal/normalization"
  "github.com/yungbote/supplycart-backend/internal/logger"
  "github.com/yungbote/supplycart-backend/internal/types"
  "github.com/yungbote/supplycart-backend/internal/repos"
  "github.com/yungbote/supplycart-backend/internal/requestdata"
  "github.com/yungbote/supplycart-backend/internal/utils"
)

// RegisterInput carries the user account plus the directory record for the
// organization the account belongs to.
type RegisterInput struct {
  Email         string
  Password      string
  FirstName     string
  LastName      string
  Role          string
  CompanyName   string
  ContactEmail  string
  Address       string
}

type AuthService interface {
  RegisterUser(ctx context.Context, input RegisterInput) (*types.User, error)
  LoginUser(ctx context.Context, email, password string) (string, string, error)
  RefreshUser(ctx context.Context) (string, string, error)
  LogoutUser(ctx context.Context) error
  SetContextFromToken(ctx context.Context, tokenString string) (context.Context, error)
  GetAccessTTL() time.Duration
}

type authService struct {
  db              *gorm.DB
  log             *logger.Logger
  userRepo        repos.UserRepo
  userTokenRepo   repos.UserTokenRepo
  supplierRepo    repos.SupplierRepo
  supermarketRepo repos.SupermarketRepo
  avatarService   AvatarService
  jwtSecretKey    string
  accessTTL       time.Duration
  refreshTTL      time.Duration
}

func NewAuthService(
  db *gorm.DB,
  log *logger.Logger,
  userRepo repos.UserRepo,
  userTokenRepo repos.UserTokenRepo,
  supplierRepo repos.SupplierRepo,
  supermarketRepo repos.SupermarketRepo,
  avatarService AvatarService,
  jwtSecretKey string,
  accessTTL time.Duration,
  refreshTTL time.Duration,
) AuthService {
  serviceLog := log.With("service", "AuthService")
  return &authService{
    db:              db,
    log:             serviceLog,
    userRepo:        userRepo,
    userTokenRepo:   userTokenRepo,
    supplierRepo:    supplierRepo,
    supermarketRepo: supermarketRepo,
    avatarService:   avatarService,
    jwtSecretKey:    jwtSecretKey,
    accessTTL:       accessTTL,
    refreshTTL:      refreshTTL,
  }
}

func (as *authService) RegisterUser(ctx context.Context, input RegisterInput) (*types.User, error) {
  user := &types.User{
    Email:     input.Email,
    Password:  input.Password,
    FirstName: input.FirstName,
    LastName:  input.LastName,
    Role:      input.Role,
  }
  utils.NormalizeUserFields(ctx, user)
  if vErr := utils.ValidateRegistration(ctx, as.userRepo, as.log, user); vErr != nil {
    return nil, vErr
  }
  if hErr := utils.HashPassword(ctx, as.log, user); hErr != nil {
    return nil, hErr
  }

  companyName := normalization.ParseInputString(input.CompanyName)
  if companyName == "" {
    companyName = user.FirstName + " " + user.LastName
  }

  err := as.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
    user.ID = uuid.New()
    switch user.Role {
    case types.RoleSupplier:
      supplier := &types.Supplier{
        ID:           uuid.New(),
        Name:         companyName,
        ContactEmail: input.ContactEmail,
        Address:      input.Address,
      }
      if _, scErr := as.supplierRepo.Create(ctx, tx, []*types.Supplier{supplier}); scErr != nil {
        return fmt.Errorf("Failed to create supplier record: %w", scErr)
      }
      user.SupplierID = &supplier.ID
    case types.RoleSupermarket:
      supermarket := &types.Supermarket{
        ID:           uuid.New(),
        Name:         companyName,
        ContactEmail: input.ContactEmail,
        Address:      input.Address,
      }
      if _, mcErr := as.supermarketRepo.Create(ctx, tx, []*types.Supermarket{supermarket}); mcErr != nil {
        return fmt.Errorf("Failed to create supermarket record: %w", mcErr)
      }
      user.SupermarketID = &supermarket.ID
    }
    if as.avatarService != nil {
      if avErr := as.avatarService.CreateUserAvatar(ctx, user); avErr != nil {
        as.log.Warn("Failed to render user avatar (continuing)", "error", avErr)
      }
    }
    if _, ucErr := as.userRepo.Create(ctx, tx, []*types.User{user}); ucErr != nil {
      return fmt.Errorf("Failed to create user: %w", ucErr)
    }
    return nil
  })
  if err != nil {
    return nil, err
  }
  return user, nil
}

func (as *authService) LoginUser(ctx context.Context, email, password string) (string, string, error) {
  email = normalization.ParseInputString(email)
  if vErr := utils.ValidateLogin(email, password); vErr != nil {
    return "", "", vErr
  }

  users, usErr := as.userRepo.GetByEmails(ctx, nil, []string{email})
  if usErr != nil {
    return "", "", fmt.Errorf("Error retrieving user by email: %w", usErr)
  }
  if len(users) == 0 {
    return "", "", fmt.Errorf("Invalid email or password")
  }
  user := users[0]
  if hErr := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); hErr != nil {
    return "", "", fmt.Errorf("Invalid email or password")
  }

  var accessToken string
  var refreshToken string
  if err := as.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
    foundTokens, ftErr := as.userTokenRepo.GetByUserIDs(ctx, tx, []uuid.UUID{user.ID})
    if ftErr != nil {
      return fmt.Errorf("Failed to check user tokens: %w", ftErr)
    }
    staleIDs := make([]uuid.UUID, 0, len(foundTokens))
    for _, tok := range foundTokens {
      if tok != nil {
        staleIDs = append(staleIDs, tok.ID)
      }
    }
    if dtErr := as.userTokenRepo.DeleteByIDs(ctx, tx, staleIDs); dtErr != nil {
      return fmt.Errorf("Failed to delete stale user tokens: %w", dtErr)
    }

    tok, genErr := as.generateAccessToken(user)
    if genErr != nil {
      return fmt.Errorf("Generate access token error: %w", genErr)
    }
    accessToken = tok
    refreshToken = uuid.New().String()
    userToken := types.UserToken{
      ID:           uuid.New(),
      UserID:       user.ID,
      AccessToken:  accessToken,
      RefreshToken: refreshToken,
      ExpiresAt:    time.Now().Add(as.refreshTTL),
    }
    if _, ctErr := as.userTokenRepo.Create(ctx, tx, []*types.UserToken{&userToken}); ctErr != nil {
      return fmt.Errorf("Create user token error: %w", ctErr)
    }
    return nil
  }); err != nil {
    return "", "", err
  }
  return accessToken, refreshToken, nil
}

func (as *authService) RefreshUser(ctx context.Context) (string, string, error) {
  rd := requestdata.GetRequestData(ctx)
  if rd == nil || rd.UserID == uuid.Nil {
    return "", "", fmt.Errorf("No session in context")
  }
  users, err := as.userRepo.GetByIDs(ctx, nil, []uuid.UUID{rd.UserID})
  if err != nil || len(users) == 0 {
    return "", "", fmt.Errorf("Session user not found")
  }
  user := users[0]

  var accessToken string
  var refreshToken string
  if txErr := as.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
    if dErr := as.userTokenRepo.DeleteByUserIDs(ctx, tx, []uuid.UUID{user.ID}); dErr != nil {
      return fmt.Errorf("Failed to rotate user tokens: %w", dErr)
    }
    tok, genErr := as.generateAccessToken(user)
    if genErr != nil {
      return fmt.Errorf("Generate access token error: %w", genErr)
    }
    accessToken = tok
    refreshToken = uuid.New().String()
    userToken := types.UserToken{
      ID:           uuid.New(),
      UserID:       user.ID,
      AccessToken:  accessToken,
      RefreshToken: refreshToken,
      ExpiresAt:    time.Now().Add(as.refreshTTL),
    }
    if _, cErr := as.userTokenRepo.Create(ctx, tx, []*types.UserToken{&userToken}); cErr != nil {
      return fmt.Errorf("Create user token error: %w", cErr)
    }
    return nil
  }); txErr != nil {
    return "", "", txErr
  }
  return accessToken, refreshToken, nil
}

func (as *authService) LogoutUser(ctx context.Context) error {
  rd := requestdata.GetRequestData(ctx)
  if rd == nil || rd.UserID == uuid.Nil {
    return fmt.Errorf("No session in context")
  }
  return as.userTokenRepo.DeleteByUserIDs(ctx, nil, []uuid.UUID{rd.UserID})
}

// SetContextFromToken validates the JWT, checks it is still registered and
// unexpired, and installs the session RequestData into the context. Request
// handlers never read ambient session state; everything flows through here.
func (as *authService) SetContextFromToken(ctx context.Context, tokenString string) (context.Context, error) {
  claims := jwt.MapClaims{}
  parsed, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
    if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
      return nil, fmt.Errorf("Unexpected signing method: %v", t.Header["alg"])
    }
    return []byte(as.jwtSecretKey), nil
  })
  if err != nil || !parsed.Valid {
    return ctx, fmt.Errorf("Invalid access token")
  }

  userToken, utErr := as.userTokenRepo.GetByAccessToken(ctx, nil, tokenString)
  if utErr != nil {
    return ctx, fmt.Errorf("Failed to look up access token: %w", utErr)
  }
  if userToken == nil || userToken.ExpiresAt.Before(time.Now()) {
    return ctx, fmt.Errorf("Session expired")
  }

  rd := &requestdata.RequestData{
    TokenString:  tokenString,
    RefreshToken: userToken.RefreshToken,
  }
  if sub, ok := claims["user_id"].(string); ok {
    if id, pErr := uuid.Parse(sub); pErr == nil {
      rd.UserID = id
    }
  }
  if role, ok := claims["role"].(string); ok {
    rd.Role = role
  }
  if supID, ok := claims["supplier_id"].(string); ok {
    if id, pErr := uuid.Parse(supID); pErr == nil {
      rd.SupplierID = id
    }
  }
  if smID, ok := claims["supermarket_id"].(string); ok {
    if id, pErr := uuid.Parse(smID); pErr == nil {
      rd.SupermarketID = id
    }
  }
  if rd.UserID == uuid.Nil {
    return ctx, fmt.Errorf("Access token carries no user id")
  }
  return requestdata.WithRequestData(ctx, rd), nil
}

func (as *authService) GetAccessTTL() time.Duration {
  return as.accessTTL
}

func (as *authService) generateAccessToken(user *types.User) (string, error) {
  now := time.Now()
  claims := jwt.MapClaims{
    "user_id": user.ID.String(),
    "role":    user.Role,
    "iat":     now.Unix(),
    "exp":     now.Add(as.accessTTL).Unix(),
  }
  if user.SupplierID != nil {
    claims["supplier_id"] = user.SupplierID.String()
  }
  if user.SupermarketID != nil {
    claims["supermarket_id"] = user.SupermarketID.String()
  }
  token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
  return token.SignedString([]byte(as.jwtSecretKey))
}
