package handler

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"edushare/usecase"

	"github.com/gin-gonic/gin"
)

func TestRespondErrorStatusMapping(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"Validation", fmt.Errorf("%w: rating value must be between 1 and 5", usecase.ErrValidation), http.StatusBadRequest},
		{"Forbidden", fmt.Errorf("%w: users cannot rate their own notes", usecase.ErrForbidden), http.StatusForbidden},
		{"NotFound", fmt.Errorf("%w: note abc", usecase.ErrNotFound), http.StatusNotFound},
		{"Conflict", fmt.Errorf("%w: username taken", usecase.ErrConflict), http.StatusConflict},
		{"Unknown", errors.New("disk on fire"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(recorder)
			respondError(c, tt.err)
			if recorder.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", recorder.Code, tt.wantStatus)
			}
		})
	}
}
