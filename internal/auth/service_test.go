package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/workdesk/workdesk/internal/reset"
	"github.com/workdesk/workdesk/internal/shared"
)

type memoryUserRepo struct {
	users map[string]*User
}

func newMemoryUserRepo() *memoryUserRepo {
	return &memoryUserRepo{users: make(map[string]*User)}
}

func (r *memoryUserRepo) Create(_ context.Context, user *User) error {
	for _, u := range r.users {
		if u.Email == user.Email {
			return shared.ErrEmailExists
		}
	}
	clone := *user
	r.users[user.ID] = &clone
	return nil
}

func (r *memoryUserRepo) FindByEmail(_ context.Context, email string) (*User, error) {
	for _, u := range r.users {
		if u.Email == email {
			clone := *u
			return &clone, nil
		}
	}
	return nil, shared.ErrNotFound
}

func (r *memoryUserRepo) UpdatePassword(_ context.Context, userID, passwordHash string) error {
	u, ok := r.users[userID]
	if !ok {
		return shared.ErrNotFound
	}
	u.PasswordHash = passwordHash
	return nil
}

func newTestService(repo Repository, resets reset.Store) *Service {
	return NewService(repo, NewTokenManager("test-secret", time.Hour), resets)
}

func registerTestUser(t *testing.T, svc *Service) {
	t.Helper()
	err := svc.Register(context.Background(), RegisterInput{
		Name:             "Asha",
		Email:            "asha@example.com",
		Password:         "Str0ng!pass",
		SecurityQuestion: QuestionPet,
		SecurityAnswer:   "Biscuit",
	})
	require.NoError(t, err)
}

func TestRegisterDuplicateEmailCaseInsensitive(t *testing.T) {
	svc := newTestService(newMemoryUserRepo(), reset.NewMemoryStore(time.Minute))
	registerTestUser(t, svc)

	err := svc.Register(context.Background(), RegisterInput{
		Name:             "Other",
		Email:            "ASHA@Example.COM",
		Password:         "An0ther!pass",
		SecurityQuestion: QuestionCity,
		SecurityAnswer:   "Pune",
	})
	require.True(t, errors.Is(err, shared.ErrEmailExists))
}

func TestRegisterHashesPassword(t *testing.T) {
	repo := newMemoryUserRepo()
	svc := newTestService(repo, reset.NewMemoryStore(time.Minute))
	registerTestUser(t, svc)

	require.Len(t, repo.users, 1)
	for _, u := range repo.users {
		require.NotEqual(t, "Str0ng!pass", u.PasswordHash)
		require.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("Str0ng!pass")))
	}
}

func TestLogin(t *testing.T) {
	svc := newTestService(newMemoryUserRepo(), reset.NewMemoryStore(time.Minute))
	registerTestUser(t, svc)

	token, err := svc.Login(context.Background(), "Asha@Example.com", "Str0ng!pass")
	require.NoError(t, err)

	userID, err := svc.VerifyToken(token)
	require.NoError(t, err)
	require.NotEmpty(t, userID)
}

func TestLoginUnknownEmail(t *testing.T) {
	svc := newTestService(newMemoryUserRepo(), reset.NewMemoryStore(time.Minute))

	_, err := svc.Login(context.Background(), "nobody@example.com", "whatever")
	require.True(t, errors.Is(err, shared.ErrNotFound))
}

func TestLoginWrongPassword(t *testing.T) {
	svc := newTestService(newMemoryUserRepo(), reset.NewMemoryStore(time.Minute))
	registerTestUser(t, svc)

	_, err := svc.Login(context.Background(), "asha@example.com", "wrong-pass")
	require.True(t, errors.Is(err, shared.ErrInvalidCredentials))
}

func TestPasswordResetFlow(t *testing.T) {
	repo := newMemoryUserRepo()
	svc := newTestService(repo, reset.NewMemoryStore(15*time.Minute))
	registerTestUser(t, svc)
	ctx := context.Background()

	question, err := svc.StartPasswordReset(ctx, "asha@example.com")
	require.NoError(t, err)
	require.Equal(t, QuestionPet, question)

	// Answer comparison is trimmed and case-insensitive.
	token, err := svc.VerifySecurityAnswer(ctx, "asha@example.com", "  bIsCuIt ")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	require.NoError(t, svc.CompleteReset(ctx, token, "N3w!password"))

	_, err = svc.Login(ctx, "asha@example.com", "N3w!password")
	require.NoError(t, err)

	// The token burned with the reset.
	err = svc.CompleteReset(ctx, token, "Again1!pass")
	require.True(t, errors.Is(err, shared.ErrTokenInvalid))
}

func TestVerifySecurityAnswerWrong(t *testing.T) {
	svc := newTestService(newMemoryUserRepo(), reset.NewMemoryStore(time.Minute))
	registerTestUser(t, svc)

	_, err := svc.VerifySecurityAnswer(context.Background(), "asha@example.com", "Bones")
	require.True(t, errors.Is(err, shared.ErrWrongAnswer))
}

func TestReissueInvalidatesPreviousToken(t *testing.T) {
	svc := newTestService(newMemoryUserRepo(), reset.NewMemoryStore(15*time.Minute))
	registerTestUser(t, svc)
	ctx := context.Background()

	first, err := svc.VerifySecurityAnswer(ctx, "asha@example.com", "Biscuit")
	require.NoError(t, err)
	second, err := svc.VerifySecurityAnswer(ctx, "asha@example.com", "Biscuit")
	require.NoError(t, err)
	require.NotEqual(t, first, second)

	err = svc.CompleteReset(ctx, first, "N3w!password")
	require.True(t, errors.Is(err, shared.ErrTokenInvalid))

	require.NoError(t, svc.CompleteReset(ctx, second, "N3w!password"))
}

func TestCompleteResetExpiredToken(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	store := reset.NewMemoryStore(15 * time.Minute).WithClock(func() time.Time { return now })
	svc := newTestService(newMemoryUserRepo(), store)
	registerTestUser(t, svc)
	ctx := context.Background()

	token, err := svc.VerifySecurityAnswer(ctx, "asha@example.com", "Biscuit")
	require.NoError(t, err)

	now = now.Add(16 * time.Minute)
	err = svc.CompleteReset(ctx, token, "N3w!password")
	require.True(t, errors.Is(err, shared.ErrTokenInvalid))
}
