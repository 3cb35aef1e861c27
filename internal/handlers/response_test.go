package handlers

import (
  "errors"
  "fmt"
  "net/http"
  "net/http/httptest"
  "testing"
  "github.com/gin-gonic/gin"
  "github.com/yungbote/supplycart-backend/internal/apierr"
)

func TestRespondServiceErrorStatuses(t *testing.T) {
  gin.SetMode(gin.TestMode)
  cases := []struct {
    name       string
    err        error
    wantStatus int
  }{
    {"annotated not found", apierr.New(http.StatusNotFound, "order_not_found", errors.New("Order not found")), http.StatusNotFound},
    {"annotated unprocessable", apierr.New(http.StatusUnprocessableEntity, "cart_rejected", errors.New("mixed suppliers")), http.StatusUnprocessableEntity},
    {"wrapped annotation", fmt.Errorf("lookup: %w", apierr.New(http.StatusNotFound, "item_not_found", errors.New("missing"))), http.StatusNotFound},
    {"annotated without status", apierr.New(0, "bad_input", errors.New("bad input")), http.StatusBadRequest},
    {"plain store failure", errors.New("redis: connection refused"), http.StatusInternalServerError},
  }
  for _, tc := range cases {
    t.Run(tc.name, func(t *testing.T) {
      rec := httptest.NewRecorder()
      c, _ := gin.CreateTestContext(rec)
      RespondServiceError(c, tc.err)
      if rec.Code != tc.wantStatus {
        t.Fatalf("status = %d, want %d", rec.Code, tc.wantStatus)
      }
    })
  }
}
