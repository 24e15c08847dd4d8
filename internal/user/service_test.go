package user

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

// memRepository is an in-memory Repository for service tests.
type memRepository struct {
	users []*User
}

func (r *memRepository) List(ctx context.Context) ([]*User, error) {
	return r.users, nil
}

func (r *memRepository) GetByID(ctx context.Context, id string) (*User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, ErrNotFound
}

func (r *memRepository) Count(ctx context.Context) (int, error) {
	return len(r.users), nil
}

func (r *memRepository) CreateAll(ctx context.Context, users []*User) error {
	r.users = append(r.users, users...)
	return nil
}

func TestSeedPopulatesEmptyStore(t *testing.T) {
	repo := &memRepository{}
	svc := NewService(repo)
	ctx := context.Background()

	require.NoError(t, svc.Seed(ctx))
	require.Len(t, repo.users, len(defaultUsers))

	u, err := svc.GetByID(ctx, "user-1")
	require.NoError(t, err)
	require.Equal(t, "Alice Johnson", u.Name)
}

func TestSeedLeavesExistingUsersAlone(t *testing.T) {
	repo := &memRepository{users: []*User{
		{ID: "user-42", Name: "Existing", Email: "existing@example.com", AvatarColor: "#000000"},
	}}
	svc := NewService(repo)

	require.NoError(t, svc.Seed(context.Background()))
	require.Len(t, repo.users, 1, "seed must not run on a populated store")
}

func TestGetByIDUnknownUser(t *testing.T) {
	svc := NewService(&memRepository{})

	_, err := svc.GetByID(context.Background(), "user-404")
	require.ErrorIs(t, err, ErrNotFound)
}
