package users

import (
	"context"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"eats-backend/internal/auth"
)

// ---------------------------------------------------------------------------
// Function-field mocks
// ---------------------------------------------------------------------------

type mockUserRepo struct {
	findByID    func(ctx context.Context, id int64) (*User, error)
	findByEmail func(ctx context.Context, email string) (*User, error)
	create      func(ctx context.Context, u *User) error
	save        func(ctx context.Context, u *User) error
}

func (m *mockUserRepo) FindByID(ctx context.Context, id int64) (*User, error) {
	return m.findByID(ctx, id)
}
func (m *mockUserRepo) FindByEmail(ctx context.Context, email string) (*User, error) {
	return m.findByEmail(ctx, email)
}
func (m *mockUserRepo) Create(ctx context.Context, u *User) error { return m.create(ctx, u) }
func (m *mockUserRepo) Save(ctx context.Context, u *User) error   { return m.save(ctx, u) }

type mockVerificationRepo struct {
	create       func(ctx context.Context, v *Verification) error
	findByCode   func(ctx context.Context, code string) (*Verification, error)
	deleteByUser func(ctx context.Context, userID int64) error
	delete       func(ctx context.Context, id int64) error
}

func (m *mockVerificationRepo) Create(ctx context.Context, v *Verification) error {
	return m.create(ctx, v)
}
func (m *mockVerificationRepo) FindByCode(ctx context.Context, code string) (*Verification, error) {
	return m.findByCode(ctx, code)
}
func (m *mockVerificationRepo) DeleteByUser(ctx context.Context, userID int64) error {
	return m.deleteByUser(ctx, userID)
}
func (m *mockVerificationRepo) Delete(ctx context.Context, id int64) error { return m.delete(ctx, id) }

type recordingMailer struct {
	email string
	code  string
	sends int
}

func (m *recordingMailer) SendVerification(email, code string) {
	m.email = email
	m.code = code
	m.sends++
}

func testCodec() *auth.TokenCodec {
	return auth.NewTokenCodec("test-secret", 0)
}

func pinnedCode() string { return "verification-code-1" }

// ---------------------------------------------------------------------------
// CreateAccount
// ---------------------------------------------------------------------------

func TestCreateAccount(t *testing.T) {
	var created *User
	users := &mockUserRepo{
		findByEmail: func(context.Context, string) (*User, error) { return nil, nil },
		create: func(_ context.Context, u *User) error {
			u.ID = 1
			created = u
			return nil
		},
	}
	verifications := &mockVerificationRepo{
		create: func(context.Context, *Verification) error { return nil },
	}
	mailer := &recordingMailer{}
	svc := NewService(users, verifications, testCodec(), mailer, pinnedCode)

	out := svc.CreateAccount(context.Background(), CreateAccountInput{
		Email:    "client@example.com",
		Password: "pa55word",
		Role:     auth.RoleClient,
	})
	if !out.Ok {
		t.Fatalf("expected ok, got %q", out.Error)
	}
	if created.Role != auth.RoleClient {
		t.Errorf("expected Client role, got %s", created.Role)
	}
	if created.PasswordHash == "pa55word" || created.PasswordHash == "" {
		t.Error("password must be stored hashed")
	}
	if bcrypt.CompareHashAndPassword([]byte(created.PasswordHash), []byte("pa55word")) != nil {
		t.Error("stored hash does not match the password")
	}
	if mailer.email != "client@example.com" || mailer.code != "verification-code-1" {
		t.Errorf("expected verification mail, got %+v", mailer)
	}
}

func TestCreateAccount_InvalidRole(t *testing.T) {
	svc := NewService(&mockUserRepo{}, &mockVerificationRepo{}, testCodec(), &recordingMailer{}, pinnedCode)

	for _, role := range []auth.Role{auth.RoleAny, "Admin", ""} {
		out := svc.CreateAccount(context.Background(), CreateAccountInput{
			Email: "x@example.com", Password: "p", Role: role,
		})
		if out.Ok || out.Error != "Invalid role." {
			t.Errorf("role %q: expected invalid-role failure, got %+v", role, out)
		}
	}
}

func TestCreateAccount_DuplicateEmail(t *testing.T) {
	users := &mockUserRepo{
		findByEmail: func(context.Context, string) (*User, error) {
			return &User{ID: 1, Email: "taken@example.com"}, nil
		},
	}
	svc := NewService(users, &mockVerificationRepo{}, testCodec(), &recordingMailer{}, pinnedCode)

	out := svc.CreateAccount(context.Background(), CreateAccountInput{
		Email: "taken@example.com", Password: "p", Role: auth.RoleOwner,
	})
	if out.Ok || out.Error != "There is a user with that email already." {
		t.Errorf("expected duplicate-email failure, got %+v", out)
	}
}

// ---------------------------------------------------------------------------
// Login
// ---------------------------------------------------------------------------

func hashOf(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	return string(hash)
}

func TestLogin_IssuesVerifiableToken(t *testing.T) {
	codec := testCodec()
	users := &mockUserRepo{
		findByEmail: func(context.Context, string) (*User, error) {
			return &User{ID: 42, Email: "client@example.com", PasswordHash: hashOf(t, "pa55word")}, nil
		},
	}
	svc := NewService(users, &mockVerificationRepo{}, codec, &recordingMailer{}, pinnedCode)

	out := svc.Login(context.Background(), "client@example.com", "pa55word")
	if !out.Ok {
		t.Fatalf("expected ok, got %q", out.Error)
	}
	id, err := codec.Verify(out.Token)
	if err != nil {
		t.Fatalf("issued token must verify, got: %v", err)
	}
	if id != 42 {
		t.Errorf("expected token for user 42, got %d", id)
	}
}

func TestLogin_UniformFailureMessage(t *testing.T) {
	users := &mockUserRepo{
		findByEmail: func(_ context.Context, email string) (*User, error) {
			if email == "known@example.com" {
				return &User{ID: 1, PasswordHash: hashOf(t, "right")}, nil
			}
			return nil, nil
		},
	}
	svc := NewService(users, &mockVerificationRepo{}, testCodec(), &recordingMailer{}, pinnedCode)

	unknownEmail := svc.Login(context.Background(), "nobody@example.com", "whatever")
	wrongPassword := svc.Login(context.Background(), "known@example.com", "wrong")

	if unknownEmail.Ok || wrongPassword.Ok {
		t.Fatal("expected both logins rejected")
	}
	if unknownEmail.Error != wrongPassword.Error {
		t.Errorf("failure messages must not reveal which part was wrong: %q vs %q",
			unknownEmail.Error, wrongPassword.Error)
	}
	if unknownEmail.Token != "" || wrongPassword.Token != "" {
		t.Error("no token may be issued on failure")
	}
}

// ---------------------------------------------------------------------------
// EditProfile
// ---------------------------------------------------------------------------

func TestEditProfile_EmailChangeResetsVerification(t *testing.T) {
	user := &User{ID: 1, Email: "old@example.com", Verified: true}
	users := &mockUserRepo{
		findByID: func(context.Context, int64) (*User, error) { return user, nil },
		save:     func(context.Context, *User) error { return nil },
	}
	var deletedFor int64
	verifications := &mockVerificationRepo{
		create:       func(context.Context, *Verification) error { return nil },
		deleteByUser: func(_ context.Context, userID int64) error { deletedFor = userID; return nil },
	}
	mailer := &recordingMailer{}
	svc := NewService(users, verifications, testCodec(), mailer, pinnedCode)

	newEmail := "new@example.com"
	out := svc.EditProfile(context.Background(), auth.Principal{ID: 1, Role: auth.RoleClient}, EditProfileInput{Email: &newEmail})
	if !out.Ok {
		t.Fatalf("expected ok, got %q", out.Error)
	}
	if user.Email != newEmail {
		t.Errorf("expected email updated, got %q", user.Email)
	}
	if user.Verified {
		t.Error("email change must drop verified status")
	}
	if deletedFor != 1 {
		t.Errorf("expected old verifications removed for user 1, got %d", deletedFor)
	}
	if mailer.sends != 1 || mailer.email != newEmail {
		t.Errorf("expected fresh verification mail to %q, got %+v", newEmail, mailer)
	}
}

func TestEditProfile_SameEmailKeepsVerification(t *testing.T) {
	user := &User{ID: 1, Email: "same@example.com", Verified: true}
	users := &mockUserRepo{
		findByID: func(context.Context, int64) (*User, error) { return user, nil },
		save:     func(context.Context, *User) error { return nil },
	}
	mailer := &recordingMailer{}
	svc := NewService(users, &mockVerificationRepo{}, testCodec(), mailer, pinnedCode)

	sameEmail := "same@example.com"
	out := svc.EditProfile(context.Background(), auth.Principal{ID: 1, Role: auth.RoleClient}, EditProfileInput{Email: &sameEmail})
	if !out.Ok {
		t.Fatalf("expected ok, got %q", out.Error)
	}
	if !user.Verified {
		t.Error("unchanged email must keep verified status")
	}
	if mailer.sends != 0 {
		t.Errorf("expected no verification mail, got %d", mailer.sends)
	}
}

func TestEditProfile_PasswordChange(t *testing.T) {
	user := &User{ID: 1, Email: "x@example.com", PasswordHash: "old-hash"}
	users := &mockUserRepo{
		findByID: func(context.Context, int64) (*User, error) { return user, nil },
		save:     func(context.Context, *User) error { return nil },
	}
	svc := NewService(users, &mockVerificationRepo{}, testCodec(), &recordingMailer{}, pinnedCode)

	newPassword := "n3w-pass"
	out := svc.EditProfile(context.Background(), auth.Principal{ID: 1, Role: auth.RoleClient}, EditProfileInput{Password: &newPassword})
	if !out.Ok {
		t.Fatalf("expected ok, got %q", out.Error)
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(newPassword)) != nil {
		t.Error("expected password hash replaced")
	}
}

// ---------------------------------------------------------------------------
// VerifyEmail
// ---------------------------------------------------------------------------

func TestVerifyEmail(t *testing.T) {
	user := &User{ID: 1, Email: "x@example.com"}
	users := &mockUserRepo{
		findByID: func(context.Context, int64) (*User, error) { return user, nil },
		save:     func(context.Context, *User) error { return nil },
	}
	var deletedID int64
	verifications := &mockVerificationRepo{
		findByCode: func(_ context.Context, code string) (*Verification, error) {
			if code != "verification-code-1" {
				return nil, nil
			}
			return &Verification{ID: 9, Code: code, UserID: 1}, nil
		},
		delete: func(_ context.Context, id int64) error { deletedID = id; return nil },
	}
	svc := NewService(users, verifications, testCodec(), &recordingMailer{}, pinnedCode)

	out := svc.VerifyEmail(context.Background(), "verification-code-1")
	if !out.Ok {
		t.Fatalf("expected ok, got %q", out.Error)
	}
	if !user.Verified {
		t.Error("expected user marked verified")
	}
	if deletedID != 9 {
		t.Errorf("expected verification 9 consumed, got %d", deletedID)
	}
}

func TestVerifyEmail_UnknownCode(t *testing.T) {
	verifications := &mockVerificationRepo{
		findByCode: func(context.Context, string) (*Verification, error) { return nil, nil },
	}
	svc := NewService(&mockUserRepo{}, verifications, testCodec(), &recordingMailer{}, pinnedCode)

	out := svc.VerifyEmail(context.Background(), "bogus")
	if out.Ok || out.Error != "Verification not found." {
		t.Errorf("expected not-found failure, got %+v", out)
	}
}

// ---------------------------------------------------------------------------
// FindPrincipal
// ---------------------------------------------------------------------------

func TestFindPrincipal(t *testing.T) {
	users := &mockUserRepo{
		findByID: func(_ context.Context, id int64) (*User, error) {
			if id == 42 {
				return &User{ID: 42, Role: auth.RoleDelivery}, nil
			}
			return nil, nil
		},
	}
	svc := NewService(users, &mockVerificationRepo{}, testCodec(), &recordingMailer{}, pinnedCode)

	p, ok, err := svc.FindPrincipal(context.Background(), 42)
	if err != nil || !ok {
		t.Fatalf("expected principal, got ok=%v err=%v", ok, err)
	}
	if p.ID != 42 || p.Role != auth.RoleDelivery {
		t.Errorf("expected {42 Delivery}, got %+v", p)
	}

	if _, ok, err := svc.FindPrincipal(context.Background(), 404); ok || err != nil {
		t.Errorf("missing user: expected no principal and no error, got ok=%v err=%v", ok, err)
	}
}
