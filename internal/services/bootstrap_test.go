package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/workout-tracker/internal/repositories"
	"github.com/sbilibin2017/workout-tracker/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedLegacyAccount(t *testing.T) {
	tests := []struct {
		name     string
		username string
		setup    func(r *services.MockUserReader, w *services.MockUserWriter, h *services.MockPasswordHasher)
		want     int64
		wantErr  bool
	}{
		{
			name:     "disabled",
			username: "",
			setup:    func(*services.MockUserReader, *services.MockUserWriter, *services.MockPasswordHasher) {},
		},
		{
			name:     "users already exist",
			username: "testuser",
			setup: func(r *services.MockUserReader, _ *services.MockUserWriter, _ *services.MockPasswordHasher) {
				r.EXPECT().Exists(gomock.Any()).Return(true, nil)
			},
		},
		{
			name:     "created on empty table",
			username: "testuser",
			setup: func(r *services.MockUserReader, w *services.MockUserWriter, h *services.MockPasswordHasher) {
				r.EXPECT().Exists(gomock.Any()).Return(false, nil)
				h.EXPECT().Hash("secret").Return("hashed", nil)
				w.EXPECT().Create(gomock.Any(), "testuser", "hashed").Return(int64(1), nil)
			},
			want: 1,
		},
		{
			name:     "lost race to another instance",
			username: "testuser",
			setup: func(r *services.MockUserReader, w *services.MockUserWriter, h *services.MockPasswordHasher) {
				r.EXPECT().Exists(gomock.Any()).Return(false, nil)
				h.EXPECT().Hash("secret").Return("hashed", nil)
				w.EXPECT().Create(gomock.Any(), "testuser", "hashed").Return(int64(0), repositories.ErrDuplicateUsername)
			},
		},
		{
			name:     "exists check error",
			username: "testuser",
			setup: func(r *services.MockUserReader, _ *services.MockUserWriter, _ *services.MockPasswordHasher) {
				r.EXPECT().Exists(gomock.Any()).Return(false, errors.New("db error"))
			},
			wantErr: true,
		},
		{
			name:     "hash error",
			username: "testuser",
			setup: func(r *services.MockUserReader, _ *services.MockUserWriter, h *services.MockPasswordHasher) {
				r.EXPECT().Exists(gomock.Any()).Return(false, nil)
				h.EXPECT().Hash("secret").Return("", errors.New("hash error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			r := services.NewMockUserReader(ctrl)
			w := services.NewMockUserWriter(ctrl)
			h := services.NewMockPasswordHasher(ctrl)
			tt.setup(r, w, h)

			got, err := services.SeedLegacyAccount(context.Background(), r, w, h, tt.username, "secret")
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
