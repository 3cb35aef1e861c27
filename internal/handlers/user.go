package handlers

import (
  "errors"
  "io"
  "net/http"
  "github.com/gin-gonic/gin"
  "github.com/yungbote/supplycart-backend/internal/services"
)

type UserHandler struct {
  userService     services.UserService
  profileService  services.ProfileService
}

func NewUserHandler(userService services.UserService, profileService services.ProfileService) *UserHandler {
  return &UserHandler{userService: userService, profileService: profileService}
}

func (uh *UserHandler) GetMe(c *gin.Context) {
  me, err := uh.userService.GetMe(c.Request.Context())
  if err != nil {
    c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
    return
  }
  c.JSON(http.StatusOK, gin.H{"me": me})
}

// GetProfile resolves the session profile through the ordered candidate
// lookups; only when every candidate fails does the client see an error.
func (uh *UserHandler) GetProfile(c *gin.Context) {
  profile, err := uh.profileService.Resolve(c.Request.Context())
  if err != nil {
    if errors.Is(err, services.ErrProfileUnavailable) {
      RespondError(c, http.StatusNotFound, "profile_unavailable", err)
      return
    }
    RespondServiceError(c, err)
    return
  }
  RespondOK(c, gin.H{"profile": profile})
}

func (uh *UserHandler) UploadAvatar(c *gin.Context) {
  raw, err := io.ReadAll(io.LimitReader(c.Request.Body, 8<<20))
  if err != nil || len(raw) == 0 {
    c.JSON(http.StatusBadRequest, gin.H{"error": "image body required"})
    return
  }
  user, err := uh.userService.UpdateAvatar(c.Request.Context(), raw)
  if err != nil {
    c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
    return
  }
  c.JSON(http.StatusOK, gin.H{"me": user})
}
