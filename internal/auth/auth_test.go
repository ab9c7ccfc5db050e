package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/iliyamo/library-seat-reservation/internal/model"
)

type fakeStore struct {
	users   []model.User
	creates int
	updates int
}

func (f *fakeStore) ListUsers(context.Context) ([]model.User, error) {
	return f.users, nil
}

func (f *fakeStore) CreateUser(_ context.Context, u model.User) error {
	f.creates++
	f.users = append(f.users, u)
	return nil
}

func (f *fakeStore) UpdateUser(_ context.Context, u model.User) error {
	f.updates++
	for i := range f.users {
		if f.users[i].ID == u.ID {
			f.users[i] = u
			return nil
		}
	}
	return errors.New("missing")
}

func seededStore() *fakeStore {
	return &fakeStore{users: []model.User{
		{ID: "u-admin", Email: "admin@library.local", Password: "admin123", Role: model.RoleAdmin},
		{ID: "u-student", Email: "student@library.local", Password: "student123", Role: model.RoleStudent},
		{ID: "u-blocked", Email: "blocked@library.local", Password: "blocked123", Role: model.RoleStudent, IsBlocked: true},
	}}
}

func validInput() RegisterInput {
	return RegisterInput{
		Name:       "New Student",
		Email:      "new@library.local",
		Password:   "pass1234",
		StudentID:  "S2024099",
		Department: "History",
		Mobile:     "5550100300",
	}
}

func TestLogin(t *testing.T) {
	c := NewController(seededStore())

	u, err := c.Login(context.Background(), "student@library.local", "student123")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if u.ID != "u-student" {
		t.Errorf("user = %q, want u-student", u.ID)
	}

	// email matching ignores case and surrounding whitespace
	if _, err := c.Login(context.Background(), "  Student@Library.LOCAL ", "student123"); err != nil {
		t.Errorf("case-insensitive login: %v", err)
	}
}

func TestLoginInvalidCredentials(t *testing.T) {
	c := NewController(seededStore())

	if _, err := c.Login(context.Background(), "student@library.local", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("wrong password: err = %v, want ErrInvalidCredentials", err)
	}
	if _, err := c.Login(context.Background(), "nobody@library.local", "student123"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("unknown email: err = %v, want ErrInvalidCredentials", err)
	}
}

func TestLoginBlockedAccount(t *testing.T) {
	c := NewController(seededStore())

	// correct credentials on a blocked account must not look like a typo
	if _, err := c.Login(context.Background(), "blocked@library.local", "blocked123"); !errors.Is(err, ErrAccountBlocked) {
		t.Errorf("err = %v, want ErrAccountBlocked", err)
	}
}

func TestRegister(t *testing.T) {
	fs := seededStore()
	c := NewController(fs)

	u, err := c.Register(context.Background(), validInput())
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if u.Role != model.RoleStudent {
		t.Errorf("role = %q, new accounts are always students", u.Role)
	}
	if u.ID == "" || u.IsBlocked {
		t.Errorf("user = %+v", u)
	}
	if fs.creates != 1 {
		t.Errorf("creates = %d, want 1", fs.creates)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	fs := seededStore()
	c := NewController(fs)

	in := validInput()
	in.Email = "Student@Library.Local" // same address, different case
	if _, err := c.Register(context.Background(), in); !errors.Is(err, ErrEmailExists) {
		t.Fatalf("err = %v, want ErrEmailExists", err)
	}
	if fs.creates != 0 {
		t.Errorf("collection mutated on duplicate email")
	}
}

func TestRegisterValidation(t *testing.T) {
	fs := seededStore()
	c := NewController(fs)

	cases := map[string]func(*RegisterInput){
		"missing name":    func(in *RegisterInput) { in.Name = "" },
		"bad email":       func(in *RegisterInput) { in.Email = "not-an-email" },
		"short password":  func(in *RegisterInput) { in.Password = "abc" },
		"short mobile":    func(in *RegisterInput) { in.Mobile = "12345" },
		"alpha mobile":    func(in *RegisterInput) { in.Mobile = "55501002AB" },
		"missing student": func(in *RegisterInput) { in.StudentID = "" },
	}
	for name, mutate := range cases {
		in := validInput()
		mutate(&in)
		if _, err := c.Register(context.Background(), in); err == nil {
			t.Errorf("%s: expected validation error", name)
		}
	}
	if fs.creates != 0 {
		t.Errorf("collection mutated by invalid input")
	}
}

func TestSetBlocked(t *testing.T) {
	fs := seededStore()
	c := NewController(fs)

	u, err := c.SetBlocked(context.Background(), "u-student", true)
	if err != nil {
		t.Fatalf("block: %v", err)
	}
	if !u.IsBlocked {
		t.Error("returned record not blocked")
	}
	if fs.updates != 1 {
		t.Errorf("updates = %d, want 1", fs.updates)
	}

	u, err = c.SetBlocked(context.Background(), "u-student", false)
	if err != nil || u.IsBlocked {
		t.Errorf("unblock: %+v, %v", u, err)
	}
}

func TestSetBlockedIgnoresAdmins(t *testing.T) {
	fs := seededStore()
	c := NewController(fs)

	u, err := c.SetBlocked(context.Background(), "u-admin", true)
	if err != nil {
		t.Fatalf("block admin: %v", err)
	}
	if u.IsBlocked {
		t.Error("admin record came back blocked")
	}
	if fs.updates != 0 {
		t.Errorf("updates = %d, want 0 for admins", fs.updates)
	}
}

func TestSetBlockedUnknownUser(t *testing.T) {
	c := NewController(seededStore())
	if _, err := c.SetBlocked(context.Background(), "nope", true); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("err = %v, want ErrUserNotFound", err)
	}
}
