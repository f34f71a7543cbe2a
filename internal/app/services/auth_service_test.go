package services

import (
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/alumconnect/backend/internal/app/models/dto"
	"github.com/alumconnect/backend/internal/pkg/apperrors"
)

func intPtr(i int) *int { return &i }

func TestValidateRegistration(t *testing.T) {
	s := NewAuthService(nil, nil, zerolog.Nop())

	valid := func() *dto.RegisterRequest {
		return &dto.RegisterRequest{
			Name:     "Priya Sharma",
			Email:    "priya@university.edu",
			Password: "longenough",
			Role:     "student",
		}
	}

	tests := []struct {
		name    string
		mutate  func(*dto.RegisterRequest)
		wantErr bool
	}{
		{"valid student", func(r *dto.RegisterRequest) {}, false},
		{"valid alumni", func(r *dto.RegisterRequest) {
			r.Role = "alumni"
			r.GraduationYear = intPtr(2015)
			r.Department = strPtr("Computer Science")
		}, false},
		{"empty name", func(r *dto.RegisterRequest) { r.Name = "   " }, true},
		{"bad email", func(r *dto.RegisterRequest) { r.Email = "not-an-email" }, true},
		{"short password", func(r *dto.RegisterRequest) { r.Password = "short" }, true},
		{"unknown role", func(r *dto.RegisterRequest) { r.Role = "admin" }, true},
		{"alumni without graduation year", func(r *dto.RegisterRequest) {
			r.Role = "alumni"
			r.Department = strPtr("Physics")
		}, true},
		{"alumni without department", func(r *dto.RegisterRequest) {
			r.Role = "alumni"
			r.GraduationYear = intPtr(2019)
		}, true},
		{"alumni with blank department", func(r *dto.RegisterRequest) {
			r.Role = "alumni"
			r.GraduationYear = intPtr(2019)
			r.Department = strPtr("  ")
		}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid()
			tt.mutate(req)
			err := s.validateRegistration(req)
			if tt.wantErr {
				assert.True(t, errors.Is(err, apperrors.ErrValidationFailed), "expected validation error, got %v", err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
