package user

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wheel_backend/internal/model"
)

type nicknameRecorder struct {
	fakeUserRepo
	saved string
}

func (r *nicknameRecorder) UpdateNickname(_ context.Context, _ int64, nickname string) error {
	r.saved = nickname
	return nil
}

type fakeUserRepo struct{}

func (fakeUserRepo) GetUser(_ context.Context, _ int64) (*model.User, error) { return nil, nil }

func (fakeUserRepo) CreateUser(_ context.Context, _ *model.User) error { return nil }

func (fakeUserRepo) AddTickets(_ context.Context, _ int64, _ int) error { return nil }

func (fakeUserRepo) MarkFreeSpinGranted(_ context.Context, _ int64) error { return nil }

func (fakeUserRepo) UpdateNickname(_ context.Context, _ int64, _ string) error { return nil }

func (fakeUserRepo) ConsumeTicketAndCredit(_ context.Context, _ int64, _ int) (int, bool, error) {
	return 0, false, nil
}
func (fakeUserRepo) GetLeaders(_ context.Context, _ int) ([]model.LeaderboardEntry, error) {
	return nil, nil
}
func (fakeUserRepo) GetReferrals(_ context.Context, _ int64, _, _ int) ([]model.ReferralInfo, error) {
	return nil, nil
}

type registerRecorder struct {
	fakeUserRepo
	created *model.User
}

func (r *registerRecorder) CreateUser(_ context.Context, u *model.User) error {
	r.created = u
	return nil
}

func (r *registerRecorder) GetUser(_ context.Context, id int64) (*model.User, error) {
	if r.created == nil || r.created.ID != id {
		return nil, nil
	}
	u := *r.created
	return &u, nil
}

func TestRegister_CreatesAndReturnsUser(t *testing.T) {
	repo := &registerRecorder{}
	s := NewUserService(repo)

	got, err := s.Register(context.Background(), &model.User{ID: 42, Username: "neo"})
	require.NoError(t, err)
	require.NotNil(t, repo.created)
	assert.Equal(t, int64(42), got.ID)
	assert.Equal(t, "neo", got.Username)
}

func TestUpdateNickname_TrimsAndSaves(t *testing.T) {
	repo := &nicknameRecorder{}
	s := NewUserService(repo)

	err := s.UpdateNickname(context.Background(), 1, "  neo  ")
	require.NoError(t, err)
	assert.Equal(t, "neo", repo.saved)
}

func TestUpdateNickname_Empty(t *testing.T) {
	s := NewUserService(&nicknameRecorder{})

	err := s.UpdateNickname(context.Background(), 1, "   ")
	assert.ErrorIs(t, err, ErrEmptyNickname)
}

func TestUpdateNickname_TooLong(t *testing.T) {
	s := NewUserService(&nicknameRecorder{})

	long := make([]rune, 33)
	for i := range long {
		long[i] = 'я'
	}

	err := s.UpdateNickname(context.Background(), 1, string(long))
	assert.ErrorIs(t, err, ErrNicknameTooLong)
}
