package user

import (
	"context"
	"log"
)

// defaultUsers are seeded on first start so a fresh deployment is usable
// without any manual setup.
var defaultUsers = []*User{
	{ID: "user-1", Name: "Alice Johnson", Email: "alice@example.com", AvatarColor: "#3B82F6"},
	{ID: "user-2", Name: "Bob Smith", Email: "bob@example.com", AvatarColor: "#10B981"},
	{ID: "user-3", Name: "Carol Williams", Email: "carol@example.com", AvatarColor: "#F59E0B"},
	{ID: "user-4", Name: "David Brown", Email: "david@example.com", AvatarColor: "#EF4444"},
}

type Service interface {
	List(ctx context.Context) ([]*User, error)
	GetByID(ctx context.Context, id string) (*User, error)
	// Seed inserts the default users when the users table is empty.
	Seed(ctx context.Context) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) List(ctx context.Context) ([]*User, error) {
	return s.repo.List(ctx)
}

func (s *service) GetByID(ctx context.Context, id string) (*User, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) Seed(ctx context.Context) error {
	count, err := s.repo.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	if err := s.repo.CreateAll(ctx, defaultUsers); err != nil {
		return err
	}
	log.Printf("seeded %d default users", len(defaultUsers))
	return nil
}
