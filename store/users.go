package store

import (
	"os"

	"github.com/abhid/portfolio-backend/model"
)

// LoadUsers returns the stored admin accounts. A missing file yields an
// empty slice so the bootstrap step can detect the first-ever run.
func (s *Store) LoadUsers() ([]model.User, error) {
	s.usersMu.Lock()
	defer s.usersMu.Unlock()

	users := []model.User{}
	if err := s.readJSON(s.usersPath(), &users); err != nil {
		if os.IsNotExist(err) {
			return []model.User{}, nil
		}
		return nil, err
	}
	return users, nil
}

// SaveUsers persists the accounts, creating the users file if absent.
func (s *Store) SaveUsers(users []model.User) error {
	s.usersMu.Lock()
	defer s.usersMu.Unlock()
	return s.writeJSON(s.usersPath(), users)
}

// FindUser looks up an account by exact username match.
func (s *Store) FindUser(username string) (*model.User, error) {
	users, err := s.LoadUsers()
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].Username == username {
			return &users[i], nil
		}
	}
	return nil, ErrUserNotFound
}
