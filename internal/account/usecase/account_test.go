package usecase

import (
	"context"
	"testing"
	"time"

	"auth-srv/internal/account"
	"auth-srv/internal/model"
	"auth-srv/pkg/log"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfile(t *testing.T) {
	uc := New(log.NewNop())

	tests := []struct {
		name string
		sc   model.Scope
		want account.ProfileOutput
	}{
		{"admin", model.Scope{SubjectID: 1, Username: "admin", Email: "admin@example.com", TokenID: "jti"},
			account.ProfileOutput{SubjectID: 1, Username: "admin", Email: "admin@example.com"}},
		{"zero subject is passed through", model.Scope{SubjectID: 0, Username: "svc"},
			account.ProfileOutput{SubjectID: 0, Username: "svc"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := uc.Profile(context.Background(), tt.sc)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestUserData(t *testing.T) {
	at := time.Date(2024, 3, 1, 10, 0, 0, 0, time.FixedZone("ICT", 7*3600))
	uc := New(log.NewNop(), WithClock(func() time.Time { return at }))

	for _, id := range []int64{1, 0} {
		out, err := uc.UserData(context.Background(), model.Scope{SubjectID: id})
		require.NoError(t, err)
		assert.Equal(t, id, out.UserID)
		assert.Equal(t, account.AccessLevelStandard, out.AccessLevel)
		assert.True(t, out.LastAccessed.Equal(at))
		assert.Equal(t, time.UTC, out.LastAccessed.Location())
	}
}
