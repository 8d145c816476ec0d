package repository

import (
	"sort"
	"time"

	"catalog-api/internal/domain"

	"go.uber.org/zap"
)

// RunResult mirrors the result shape of a write statement: how many rows
// changed and, for inserts, the id that was assigned. NewID is zero when
// the statement did not insert.
type RunResult struct {
	Changes int   `json:"changes"`
	NewID   int64 `json:"new_id"`
}

// Users returns all accounts, newest first.
func (s *Store) Users() []domain.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.User, len(s.users))
	copy(out, s.users)
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID > out[j].ID
	})
	return out
}

// UserByID returns the user with the given id, or nil.
func (s *Store) UserByID(id int64) *domain.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.findUser(func(u *domain.User) bool { return u.ID == id })
}

// UserByUsername returns the user with the given username, or nil.
func (s *Store) UserByUsername(username string) *domain.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.findUser(func(u *domain.User) bool { return u.Username == username })
}

// UserByLogin resolves a login identifier against username or email.
func (s *Store) UserByLogin(login string) *domain.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.findUser(func(u *domain.User) bool {
		return u.Username == login || u.Email == login
	})
}

// UserExists reports whether a username or email is already taken.
func (s *Store) UserExists(username, email string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.findUser(func(u *domain.User) bool {
		return u.Username == username || u.Email == email
	}) != nil
}

// InsertUser appends a new account. The password hash is stored verbatim;
// hashing is the caller's concern. The record becomes visible to readers
// only once fully constructed, under the write lock.
func (s *Store) InsertUser(username, email, passwordHash, firstName, lastName string) RunResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	newID := int64(1)
	for _, u := range s.users {
		if u.ID >= newID {
			newID = u.ID + 1
		}
	}

	now := time.Now().UTC()
	s.users = append(s.users, domain.User{
		ID:           newID,
		Username:     username,
		Email:        email,
		PasswordHash: passwordHash,
		FirstName:    firstName,
		LastName:     lastName,
		Role:         domain.RoleUser,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	})

	s.log.Info("User registered",
		zap.String("username", username),
		zap.Int64("user_id", newID),
		zap.Int("total_users", len(s.users)),
	)

	return RunResult{Changes: 1, NewID: newID}
}

// UpdateUserProfile sets the mutable profile fields and stamps updated_at.
// Changes is zero when no user has the id.
func (s *Store) UpdateUserProfile(id int64, firstName, lastName, avatarURL string) RunResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.users {
		if s.users[i].ID == id {
			s.users[i].FirstName = firstName
			s.users[i].LastName = lastName
			s.users[i].AvatarURL = avatarURL
			s.users[i].UpdatedAt = time.Now().UTC()
			return RunResult{Changes: 1}
		}
	}
	return RunResult{}
}

// TouchUser stamps updated_at, used as a last-login marker.
func (s *Store) TouchUser(id int64) RunResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.users {
		if s.users[i].ID == id {
			s.users[i].UpdatedAt = time.Now().UTC()
			return RunResult{Changes: 1}
		}
	}
	return RunResult{}
}

func (s *Store) findUser(match func(*domain.User) bool) *domain.User {
	for i := range s.users {
		if match(&s.users[i]) {
			u := s.users[i]
			return &u
		}
	}
	return nil
}
