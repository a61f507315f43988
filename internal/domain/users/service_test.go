package users

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"
)

// -------------------------
// Test repo (in-memory)
// -------------------------

type testRepo struct {
	nextID  int64
	byID    map[int64]User
	byEmail map[string]int64
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[int64]User{}, byEmail: map[string]int64{}}
}

func (r *testRepo) Create(ctx context.Context, u *User) error {
	if _, ok := r.byEmail[u.Email]; ok {
		return ErrEmailTaken
	}
	r.nextID++
	u.ID = r.nextID
	r.byID[u.ID] = *u
	r.byEmail[u.Email] = u.ID
	return nil
}

func (r *testRepo) GetByID(ctx context.Context, id int64) (User, error) {
	u, ok := r.byID[id]
	if !ok {
		return User{}, ErrNotFound
	}
	return u, nil
}

func (r *testRepo) GetByEmail(ctx context.Context, email string) (User, error) {
	id, ok := r.byEmail[email]
	if !ok {
		return User{}, ErrNotFound
	}
	return r.byID[id], nil
}

type testIssuer struct {
	exp time.Time
}

func (i testIssuer) Issue(userID int64, email string) (string, time.Time, error) {
	return "tok-" + email, i.exp, nil
}

// hash barato para no pagar argon2 en cada test.
func newTestService(repo Repository) *Service {
	svc := NewService(repo, testIssuer{exp: time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC)})
	svc.hash = func(p string) (string, error) { return "hashed:" + p, nil }
	svc.verify = func(p, enc string) (bool, error) { return enc == "hashed:"+p, nil }
	return svc
}

// -------------------------
// Tests
// -------------------------

func TestService_Signup_NormalizesAndHashes(t *testing.T) {
	repo := newTestRepo()
	svc := newTestService(repo)

	now := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	u, err := svc.Signup(context.Background(), SignupInput{
		OwnerName: "  Ana ",
		Email:     " Ana@X.com ",
		Password:  "pw",
	})
	if err != nil {
		t.Fatalf("Signup error: %v", err)
	}
	if u.ID != 1 || u.OwnerName != "Ana" || u.Email != "ana@x.com" || !u.IsActive {
		t.Fatalf("unexpected user: %#v", u)
	}
	if u.PasswordHash == "pw" || !strings.HasPrefix(u.PasswordHash, "hashed:") {
		t.Fatalf("expected hashed password, got %q", u.PasswordHash)
	}
	if !u.CreatedAt.Equal(now) {
		t.Fatalf("expected CreatedAt = now")
	}
}

func TestService_Signup_MissingFields(t *testing.T) {
	repo := newTestRepo()
	svc := newTestService(repo)

	cases := []SignupInput{
		{Email: "ana@x.com", Password: "pw"},
		{OwnerName: "Ana", Password: "pw"},
		{OwnerName: "Ana", Email: "ana@x.com"},
		{OwnerName: "Ana", Email: "   ", Password: "pw"},
	}
	for _, in := range cases {
		if _, err := svc.Signup(context.Background(), in); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput for %#v, got %v", in, err)
		}
	}
	if len(repo.byID) != 0 {
		t.Fatalf("expected nothing persisted, got %d users", len(repo.byID))
	}
}

func TestService_Signup_DuplicateEmail(t *testing.T) {
	repo := newTestRepo()
	svc := newTestService(repo)

	if _, err := svc.Signup(context.Background(), SignupInput{OwnerName: "Ana", Email: "ana@x.com", Password: "pw"}); err != nil {
		t.Fatalf("Signup #1 error: %v", err)
	}
	_, err := svc.Signup(context.Background(), SignupInput{OwnerName: "Ana 2", Email: "ANA@x.com", Password: "x"})
	if !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
	if len(repo.byID) != 1 {
		t.Fatalf("expected a single user, got %d", len(repo.byID))
	}
}

func TestService_Login(t *testing.T) {
	repo := newTestRepo()
	svc := newTestService(repo)

	u, err := svc.Signup(context.Background(), SignupInput{OwnerName: "Ana", Email: "ana@x.com", Password: "pw"})
	if err != nil {
		t.Fatalf("Signup error: %v", err)
	}

	sess, err := svc.Login(context.Background(), LoginInput{Email: "Ana@x.com", Password: "pw"})
	if err != nil {
		t.Fatalf("Login error: %v", err)
	}
	if sess.User.ID != u.ID || sess.AccessToken != "tok-ana@x.com" || sess.ExpiresAt.IsZero() {
		t.Fatalf("unexpected session: %#v", sess)
	}

	if _, err := svc.Login(context.Background(), LoginInput{Email: "ana@x.com", Password: "wrong"}); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for wrong password, got %v", err)
	}
	if _, err := svc.Login(context.Background(), LoginInput{Email: "nadie@x.com", Password: "pw"}); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for unknown email, got %v", err)
	}
	if _, err := svc.Login(context.Background(), LoginInput{Email: "ana@x.com"}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput without password, got %v", err)
	}
}

func TestService_Login_InactiveUser(t *testing.T) {
	repo := newTestRepo()
	svc := newTestService(repo)

	u, _ := svc.Signup(context.Background(), SignupInput{OwnerName: "Ana", Email: "ana@x.com", Password: "pw"})
	u.IsActive = false
	repo.byID[u.ID] = u

	if _, err := svc.Login(context.Background(), LoginInput{Email: "ana@x.com", Password: "pw"}); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for inactive user, got %v", err)
	}
}

func TestService_Login_WithoutIssuer(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo, nil)
	svc.hash = func(p string) (string, error) { return "hashed:" + p, nil }
	svc.verify = func(p, enc string) (bool, error) { return enc == "hashed:"+p, nil }

	if _, err := svc.Signup(context.Background(), SignupInput{OwnerName: "Ana", Email: "ana@x.com", Password: "pw"}); err != nil {
		t.Fatalf("Signup error: %v", err)
	}
	sess, err := svc.Login(context.Background(), LoginInput{Email: "ana@x.com", Password: "pw"})
	if err != nil {
		t.Fatalf("Login error: %v", err)
	}
	if sess.AccessToken != "" {
		t.Fatalf("expected no token without issuer, got %q", sess.AccessToken)
	}
}

func TestService_RealHash_NeverStoresPlaintext(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo, nil)

	u, err := svc.Signup(context.Background(), SignupInput{OwnerName: "Ana", Email: "ana@x.com", Password: "pw"})
	if err != nil {
		t.Fatalf("Signup error: %v", err)
	}
	if u.PasswordHash == "pw" || !strings.HasPrefix(u.PasswordHash, "$argon2id$") {
		t.Fatalf("expected argon2id hash, got %q", u.PasswordHash)
	}
	if _, err := svc.Login(context.Background(), LoginInput{Email: "ana@x.com", Password: "pw"}); err != nil {
		t.Fatalf("Login with real hash error: %v", err)
	}
}

func TestService_Exists(t *testing.T) {
	repo := newTestRepo()
	svc := newTestService(repo)

	u, _ := svc.Signup(context.Background(), SignupInput{OwnerName: "Ana", Email: "ana@x.com", Password: "pw"})

	ok, err := svc.Exists(context.Background(), u.ID)
	if err != nil || !ok {
		t.Fatalf("expected user to exist, ok=%v err=%v", ok, err)
	}
	for _, id := range []int64{0, -1, 99} {
		ok, err := svc.Exists(context.Background(), id)
		if err != nil || ok {
			t.Fatalf("expected %d to not exist, ok=%v err=%v", id, ok, err)
		}
	}
}

func TestService_Signup_RejectsTooLongFields(t *testing.T) {
	repo := newTestRepo()
	svc := newTestService(repo)

	longName := strings.Repeat("a", MaxOwnerNameLen+1)
	longEmail := strings.Repeat("b", MaxEmailLen-5) + "@x.com"

	cases := []SignupInput{
		{OwnerName: longName, Email: "ana@x.com", Password: "pw"},
		{OwnerName: "Ana", Email: longEmail, Password: "pw"},
	}
	for _, in := range cases {
		_, err := svc.Signup(context.Background(), in)
		if !errors.Is(err, ErrFieldTooLong) || !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("expected ErrFieldTooLong (ErrInvalidInput), got %v", err)
		}
	}
	if len(repo.byID) != 0 {
		t.Fatalf("expected nothing persisted, got %d users", len(repo.byID))
	}

	// el límite cuenta runas, no bytes
	name := strings.Repeat("ñ", MaxOwnerNameLen)
	if _, err := svc.Signup(context.Background(), SignupInput{OwnerName: name, Email: "ana@x.com", Password: "pw"}); err != nil {
		t.Fatalf("expected %d-rune name to be accepted, got %v", MaxOwnerNameLen, err)
	}
}

func TestService_Login_UnknownEmailStillVerifies(t *testing.T) {
	repo := newTestRepo()
	svc := newTestService(repo)

	calls := 0
	var lastEncoded string
	svc.verify = func(p, enc string) (bool, error) {
		calls++
		lastEncoded = enc
		return enc == "hashed:"+p, nil
	}

	_, err := svc.Login(context.Background(), LoginInput{Email: "nadie@x.com", Password: "pw"})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if calls != 1 {
		t.Fatalf("expected one password verification for unknown email, got %d", calls)
	}
	if lastEncoded == "" {
		t.Fatalf("expected verification against a dummy hash")
	}
}
