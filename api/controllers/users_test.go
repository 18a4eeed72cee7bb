package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/akulikov/pharmshop-backend/api/middleware"
	userssvc "github.com/akulikov/pharmshop-backend/internal/users"
)

type fakeUsersService struct {
	lastInput userssvc.UpdateProfileInput
	called    bool
}

func (f *fakeUsersService) Me(_ context.Context, userID int64) (*userssvc.UserDTO, error) {
	return &userssvc.UserDTO{ID: userID}, nil
}

func (f *fakeUsersService) UpdateProfile(_ context.Context, userID int64, input userssvc.UpdateProfileInput) (*userssvc.UserDTO, error) {
	f.called = true
	f.lastInput = input
	return &userssvc.UserDTO{ID: userID}, nil
}

func authedRequest(method, target, body string) *http.Request {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	return req.WithContext(middleware.WithUserID(req.Context(), 7))
}

func TestUpdateProfileRejectsUnknownFields(t *testing.T) {
	svc := &fakeUsersService{}
	handler := UpdateProfile(svc, nil)

	req := authedRequest(http.MethodPut, "/api/v1/users/me/profile", `{"phone":"123","is_admin":true}`)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d: %s", rec.Code, rec.Body.String())
	}
	if svc.called {
		t.Fatal("service must not run for a payload with unknown fields")
	}
}

func TestUpdateProfileForwardsSparseFields(t *testing.T) {
	svc := &fakeUsersService{}
	handler := UpdateProfile(svc, nil)

	req := authedRequest(http.MethodPut, "/api/v1/users/me/profile", `{"phone":"123"}`)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", rec.Code, rec.Body.String())
	}
	if svc.lastInput.Phone == nil || *svc.lastInput.Phone != "123" {
		t.Fatalf("input = %+v, want phone=123 only", svc.lastInput)
	}
	if svc.lastInput.FirstName != nil || svc.lastInput.LastName != nil || svc.lastInput.MiddleName != nil {
		t.Fatalf("input = %+v, absent fields must stay nil", svc.lastInput)
	}
}

func TestUsersMeRequiresContext(t *testing.T) {
	handler := UsersMe(&fakeUsersService{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/users/me", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 got %d", rec.Code)
	}
}
