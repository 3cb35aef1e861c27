package handlers

import (
  "testing"
  "github.com/yungbote/supplycart-backend/internal/cart"
)

func TestCoerceQuantity(t *testing.T) {
  cases := []struct {
    name   string
    in     any
    want   int
    usable bool
  }{
    {"json number", float64(3), 3, true},
    {"fractional number truncates", float64(2.9), 2, true},
    {"numeric string", "7", 7, true},
    {"zero", float64(0), 0, true},
    {"negative clamps to zero", float64(-4), 0, true},
    {"above cap clamps", float64(1500), cart.MaxQuantity, true},
    {"beyond int range clamps to cap", 1e300, cart.MaxQuantity, true},
    {"beyond int range negative clamps to zero", -1e300, 0, true},
    {"numeric string beyond int range", "1e300", cart.MaxQuantity, true},
    {"letters", "abc", 0, false},
    {"empty string", "", 0, false},
    {"nil", nil, 0, false},
    {"bool", true, 0, false},
    {"object", map[string]any{"n": 1}, 0, false},
  }
  for _, tc := range cases {
    t.Run(tc.name, func(t *testing.T) {
      got, usable := coerceQuantity(tc.in)
      if usable != tc.usable {
        t.Fatalf("usable = %v, want %v", usable, tc.usable)
      }
      if usable && got != tc.want {
        t.Fatalf("quantity = %d, want %d", got, tc.want)
      }
    })
  }
}
