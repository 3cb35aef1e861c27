package services

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "image/jpeg"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"github.com/google/uuid"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"

	"github.com/yungbote/supplycart-backend/internal/logger"
	"github.com/yungbote/supplycart-backend/internal/types"
)

// AvatarService renders initials avatars and stores them under the local
// media directory served at /media.
type AvatarService interface {
	CreateUserAvatar(ctx context.Context, user *types.User) error
	UpdateUserAvatarFromImage(ctx context.Context, user *types.User, raw []byte) error
}

type avatarService struct {
	log      *logger.Logger
	mediaDir string
	baseURL  string
	bgColors []color.NRGBA
	fontFace font.Face
}

func NewAvatarService(log *logger.Logger, mediaDir string) (AvatarService, error) {
	serviceLog := log.With("service", "AvatarService")

	fontPath := os.Getenv("AVATAR_FONT")
	if strings.TrimSpace(fontPath) == "" {
		return nil, fmt.Errorf("Env var AVATAR_FONT is empty")
	}
	serviceLog.Info("Loading avatar font", "font", fontPath)
	face, err := loadFontFace(fontPath, 206)
	if err != nil {
		return nil, fmt.Errorf("could not load avatar font: %w", err)
	}

	if err := os.MkdirAll(filepath.Join(mediaDir, "avatars"), 0o755); err != nil {
		return nil, fmt.Errorf("could not create media dir: %w", err)
	}

	return &avatarService{
		log:      serviceLog,
		mediaDir: mediaDir,
		baseURL:  "/media",
		bgColors: defaultAvatarColors(),
		fontFace: face,
	}, nil
}

func (as *avatarService) CreateUserAvatar(ctx context.Context, user *types.User) error {
	buf, err := as.renderInitialsAvatar(user)
	if err != nil {
		return err
	}
	return as.storeAvatar(user, buf.Bytes())
}

func (as *avatarService) UpdateUserAvatarFromImage(ctx context.Context, user *types.User, raw []byte) error {
	if user == nil || user.ID == uuid.Nil {
		return fmt.Errorf("user required")
	}
	processed, err := processUploadedAvatar(raw, 512)
	if err != nil {
		return err
	}
	oldPath := strings.TrimSpace(user.AvatarPath)
	if err := as.storeAvatar(user, processed.Bytes()); err != nil {
		return err
	}
	// Best-effort delete of the replaced file.
	if oldPath != "" && oldPath != user.AvatarPath {
		if rmErr := os.Remove(filepath.Join(as.mediaDir, oldPath)); rmErr != nil && !os.IsNotExist(rmErr) {
			as.log.Warn("failed to delete old avatar (ignored)", "path", oldPath, "error", rmErr)
		}
	}
	return nil
}

func (as *avatarService) storeAvatar(user *types.User, data []byte) error {
	// Versioned filename so browsers never serve a stale cached avatar.
	rel := filepath.Join("avatars", fmt.Sprintf("%s_%d.png", user.ID.String(), time.Now().UnixNano()))
	full := filepath.Join(as.mediaDir, rel)
	if err := os.WriteFile(full, data, 0o644); err != nil {
		return fmt.Errorf("failed to write avatar: %w", err)
	}
	user.AvatarPath = rel
	user.AvatarURL = as.baseURL + "/" + filepath.ToSlash(rel)
	return nil
}

func (as *avatarService) renderInitialsAvatar(user *types.User) (bytes.Buffer, error) {
	const size = 512

	dc := gg.NewContext(size, size)

	// Clip to circle
	dc.DrawCircle(float64(size)/2, float64(size)/2, float64(size)/2)
	dc.Clip()

	base := as.bgColors[rand.Intn(len(as.bgColors))]
	dc.SetColor(base)
	dc.DrawRectangle(0, 0, float64(size), float64(size))
	dc.Fill()

	initials := computeInitials(user.FirstName, user.LastName)

	dc.SetFontFace(as.fontFace)
	tw, th := dc.MeasureString(initials)
	cx, cy := float64(size)/2, float64(size)/2

	dc.SetColor(color.White)
	dc.DrawString(initials, cx-(tw/2)+5, cy+(th/2)-10)

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return buf, fmt.Errorf("failed to encode PNG: %w", err)
	}
	return buf, nil
}

func computeInitials(first, last string) string {
	var b strings.Builder
	if f := strings.TrimSpace(first); f != "" {
		b.WriteString(strings.ToUpper(f[:1]))
	}
	if l := strings.TrimSpace(last); l != "" {
		b.WriteString(strings.ToUpper(l[:1]))
	}
	if b.Len() == 0 {
		return "?"
	}
	return b.String()
}

func processUploadedAvatar(raw []byte, size int) (bytes.Buffer, error) {
	var out bytes.Buffer
	src, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return out, fmt.Errorf("unreadable image: %w", err)
	}
	dst := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Over, nil)
	if err := png.Encode(&out, dst); err != nil {
		return out, fmt.Errorf("failed to encode PNG: %w", err)
	}
	return out, nil
}

func loadFontFace(path string, points float64) (font.Face, error) {
	fontBytes, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	parsed, err := truetype.Parse(fontBytes)
	if err != nil {
		return nil, err
	}
	return truetype.NewFace(parsed, &truetype.Options{Size: points}), nil
}

func defaultAvatarColors() []color.NRGBA {
	return []color.NRGBA{
		{R: 0x4E, G: 0x79, B: 0xA7, A: 0xFF},
		{R: 0xF2, G: 0x8E, B: 0x2B, A: 0xFF},
		{R: 0xE1, G: 0x57, B: 0x59, A: 0xFF},
		{R: 0x76, G: 0xB7, B: 0xB2, A: 0xFF},
		{R: 0x59, G: 0xA1, B: 0x4F, A: 0xFF},
		{R: 0xAF, G: 0x7A, B: 0xA1, A: 0xFF},
	}
}
