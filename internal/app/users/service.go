// Package users implements account management and login.
package users

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"eats-backend/internal/auth"
)

// ---------------------------------------------------------------------------
// Domain types
// ---------------------------------------------------------------------------

type User struct {
	ID           int64
	Email        string
	PasswordHash string
	Role         auth.Role
	Verified     bool
	CreatedAt    time.Time
}

// Verification is a pending email-verification code.
type Verification struct {
	ID     int64
	Code   string
	UserID int64
}

// ---------------------------------------------------------------------------
// Collaborators
// ---------------------------------------------------------------------------

// Repository is the persistence boundary for user accounts. Lookups
// return (nil, nil) when the row is absent.
type Repository interface {
	FindByID(ctx context.Context, id int64) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	Create(ctx context.Context, u *User) error
	Save(ctx context.Context, u *User) error
}

type VerificationRepository interface {
	Create(ctx context.Context, v *Verification) error
	FindByCode(ctx context.Context, code string) (*Verification, error)
	DeleteByUser(ctx context.Context, userID int64) error
	Delete(ctx context.Context, id int64) error
}

// Mailer sends transactional email. Sending is fire-and-forget from the
// service's point of view; delivery failures are the mailer's problem.
type Mailer interface {
	SendVerification(email, code string)
}

// CodeFactory mints verification codes; injected so tests can pin them.
type CodeFactory func() string

// ---------------------------------------------------------------------------
// Inputs / outputs
// ---------------------------------------------------------------------------

type CreateAccountInput struct {
	Email    string
	Password string
	Role     auth.Role
}

type EditProfileInput struct {
	Email    *string
	Password *string
}

type Output struct {
	Ok    bool
	Error string
}

type LoginOutput struct {
	Output
	Token string
}

type UserOutput struct {
	Output
	User *User
}

func ok() Output             { return Output{Ok: true} }
func fail(msg string) Output { return Output{Error: msg} }

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

type Service struct {
	users         Repository
	verifications VerificationRepository
	codec         *auth.TokenCodec
	mailer        Mailer
	newCode       CodeFactory
}

func NewService(users Repository, verifications VerificationRepository, codec *auth.TokenCodec, mailer Mailer, newCode CodeFactory) *Service {
	return &Service{
		users:         users,
		verifications: verifications,
		codec:         codec,
		mailer:        mailer,
		newCode:       newCode,
	}
}

func validRole(r auth.Role) bool {
	return r == auth.RoleClient || r == auth.RoleOwner || r == auth.RoleDelivery
}

func (s *Service) CreateAccount(ctx context.Context, in CreateAccountInput) Output {
	if !validRole(in.Role) {
		return fail("Invalid role.")
	}
	existing, err := s.users.FindByEmail(ctx, in.Email)
	if err != nil {
		log.Error().Err(err).Msg("create account: email lookup")
		return fail("Could not create account.")
	}
	if existing != nil {
		return fail("There is a user with that email already.")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Error().Err(err).Msg("create account: hash password")
		return fail("Could not create account.")
	}

	user := &User{
		Email:        in.Email,
		PasswordHash: string(hash),
		Role:         in.Role,
	}
	if err := s.users.Create(ctx, user); err != nil {
		log.Error().Err(err).Msg("create account: save")
		return fail("Could not create account.")
	}

	s.issueVerification(ctx, user)
	return ok()
}

// Login checks the password and, on success, issues a signed credential
// embedding the user id. The failure message never distinguishes an
// unknown email from a wrong password.
func (s *Service) Login(ctx context.Context, email, password string) LoginOutput {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		log.Error().Err(err).Msg("login: lookup")
		return LoginOutput{Output: fail("Could not log in.")}
	}
	if user == nil {
		return LoginOutput{Output: fail("Invalid credentials.")}
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return LoginOutput{Output: fail("Invalid credentials.")}
	}
	return LoginOutput{Output: ok(), Token: s.codec.Issue(user.ID)}
}

func (s *Service) FindByID(ctx context.Context, id int64) UserOutput {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		log.Error().Err(err).Msg("find user")
		return UserOutput{Output: fail("Could not find user.")}
	}
	if user == nil {
		return UserOutput{Output: fail("User not found.")}
	}
	return UserOutput{Output: ok(), User: user}
}

// EditProfile updates email and/or password of the calling user. An email
// change drops verified status and starts a fresh verification round.
func (s *Service) EditProfile(ctx context.Context, p auth.Principal, in EditProfileInput) Output {
	user, err := s.users.FindByID(ctx, p.ID)
	if err != nil || user == nil {
		log.Error().Err(err).Msg("edit profile: lookup")
		return fail("Could not update profile.")
	}

	emailChanged := false
	if in.Email != nil && *in.Email != user.Email {
		user.Email = *in.Email
		user.Verified = false
		emailChanged = true
	}
	if in.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*in.Password), bcrypt.DefaultCost)
		if err != nil {
			log.Error().Err(err).Msg("edit profile: hash password")
			return fail("Could not update profile.")
		}
		user.PasswordHash = string(hash)
	}

	if err := s.users.Save(ctx, user); err != nil {
		log.Error().Err(err).Msg("edit profile: save")
		return fail("Could not update profile.")
	}
	if emailChanged {
		_ = s.verifications.DeleteByUser(ctx, user.ID)
		s.issueVerification(ctx, user)
	}
	return ok()
}

func (s *Service) VerifyEmail(ctx context.Context, code string) Output {
	verification, err := s.verifications.FindByCode(ctx, code)
	if err != nil {
		log.Error().Err(err).Msg("verify email: lookup")
		return fail("Could not verify email.")
	}
	if verification == nil {
		return fail("Verification not found.")
	}

	user, err := s.users.FindByID(ctx, verification.UserID)
	if err != nil || user == nil {
		log.Error().Err(err).Msg("verify email: user lookup")
		return fail("Could not verify email.")
	}
	user.Verified = true
	if err := s.users.Save(ctx, user); err != nil {
		log.Error().Err(err).Msg("verify email: save")
		return fail("Could not verify email.")
	}
	_ = s.verifications.Delete(ctx, verification.ID)
	return ok()
}

// FindPrincipal implements auth.PrincipalSource so the identity resolver
// can turn a verified token into a Principal.
func (s *Service) FindPrincipal(ctx context.Context, id int64) (auth.Principal, bool, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return auth.Principal{}, false, err
	}
	if user == nil {
		return auth.Principal{}, false, nil
	}
	return auth.Principal{ID: user.ID, Role: user.Role}, true, nil
}

func (s *Service) issueVerification(ctx context.Context, user *User) {
	verification := &Verification{Code: s.newCode(), UserID: user.ID}
	if err := s.verifications.Create(ctx, verification); err != nil {
		log.Error().Err(err).Int64("userID", user.ID).Msg("create verification")
		return
	}
	s.mailer.SendVerification(user.Email, verification.Code)
}
