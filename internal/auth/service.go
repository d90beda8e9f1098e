package auth

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/workdesk/workdesk/internal/reset"
	"github.com/workdesk/workdesk/internal/shared"
)

// Service wraps identity lifecycle and credential verification.
type Service struct {
	repo   Repository
	tokens *TokenManager
	resets reset.Store
}

// NewService constructs a new Service.
func NewService(repo Repository, tokens *TokenManager, resets reset.Store) *Service {
	return &Service{repo: repo, tokens: tokens, resets: resets}
}

// RegisterInput carries the fields collected at sign-up.
type RegisterInput struct {
	Name             string
	Email            string
	Password         string
	SecurityQuestion SecurityQuestion
	SecurityAnswer   string
}

// Register creates a new user. The password is stored as a bcrypt hash and
// the security answer pre-normalized. Returns shared.ErrEmailExists when the
// normalized email is already taken.
func (s *Service) Register(ctx context.Context, input RegisterInput) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user := &User{
		ID:               uuid.NewString(),
		Name:             strings.TrimSpace(input.Name),
		Email:            shared.NormalizeEmail(input.Email),
		PasswordHash:     string(hash),
		SecurityQuestion: input.SecurityQuestion,
		SecurityAnswer:   shared.NormalizeAnswer(input.SecurityAnswer),
		CreatedAt:        time.Now().UTC(),
	}
	return s.repo.Create(ctx, user)
}

// Login validates email/password and issues a bearer token. Unknown email
// and wrong password fail distinctly so the UI can point at the right field.
func (s *Service) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.repo.FindByEmail(ctx, shared.NormalizeEmail(email))
	if err != nil {
		return "", err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", shared.ErrInvalidCredentials
	}
	return s.tokens.Issue(user.ID)
}

// VerifyToken checks a bearer token without touching any store.
func (s *Service) VerifyToken(token string) (string, error) {
	return s.tokens.Verify(token)
}

// StartPasswordReset returns which security question to ask, never the answer.
func (s *Service) StartPasswordReset(ctx context.Context, email string) (SecurityQuestion, error) {
	user, err := s.repo.FindByEmail(ctx, shared.NormalizeEmail(email))
	if err != nil {
		return "", err
	}
	return user.SecurityQuestion, nil
}

// VerifySecurityAnswer compares the normalized answer against the stored one.
// On match it issues a fresh reset token, invalidating any outstanding one.
func (s *Service) VerifySecurityAnswer(ctx context.Context, email, answer string) (string, error) {
	user, err := s.repo.FindByEmail(ctx, shared.NormalizeEmail(email))
	if err != nil {
		return "", err
	}
	if user.SecurityAnswer != shared.NormalizeAnswer(answer) {
		return "", shared.ErrWrongAnswer
	}
	return s.resets.Issue(ctx, user.ID)
}

// CompleteReset exchanges a live reset token for a password change, then
// burns every token for the user so the exchange is single-use.
func (s *Service) CompleteReset(ctx context.Context, token, newPassword string) error {
	userID, err := s.resets.Resolve(ctx, token)
	if err != nil {
		if err == shared.ErrNotFound {
			return shared.ErrTokenInvalid
		}
		return err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	if err := s.repo.UpdatePassword(ctx, userID, string(hash)); err != nil {
		return err
	}
	return s.resets.Consume(ctx, userID)
}
