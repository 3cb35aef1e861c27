package app

import (
  "gorm.io/gorm"
  "github.com/yungbote/supplycart-backend/internal/logger"
  "github.com/yungbote/supplycart-backend/internal/repos"
)

type Repos struct {
  User        repos.UserRepo
  UserToken   repos.UserTokenRepo
  Supplier    repos.SupplierRepo
  Supermarket repos.SupermarketRepo
  Item        repos.ItemRepo
  Order       repos.OrderRepo
}

func wireRepos(db *gorm.DB, log *logger.Logger) Repos {
  log.Info("Wiring repos...")
  return Repos{
    User:        repos.NewUserRepo(db, log),
    UserToken:   repos.NewUserTokenRepo(db, log),
    Supplier:    repos.NewSupplierRepo(db, log),
    Supermarket: repos.NewSupermarketRepo(db, log),
    Item:        repos.NewItemRepo(db, log),
    Order:       repos.NewOrderRepo(db, log),
  }
}
