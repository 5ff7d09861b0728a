package service

import (
	"context"
	"errors"
	"testing"

	"billdesk/internal/model"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type fakeUserRepo struct {
	users  map[int64]*model.User
	nextID int64
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[int64]*model.User), nextID: 1}
}

func (r *fakeUserRepo) Create(_ context.Context, user *model.User) error {
	user.ID = r.nextID
	r.nextID++
	stored := *user
	r.users[user.ID] = &stored
	return nil
}
func (r *fakeUserRepo) GetByID(_ context.Context, id int64) (*model.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, errors.New("record not found")
	}
	return u, nil
}
func (r *fakeUserRepo) GetByUsername(_ context.Context, username string) (*model.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, errors.New("record not found")
}
func (r *fakeUserRepo) List(_ context.Context) ([]model.User, error) {
	var out []model.User
	for _, u := range r.users {
		out = append(out, *u)
	}
	return out, nil
}
func (r *fakeUserRepo) Update(_ context.Context, user *model.User) error { return nil }
func (r *fakeUserRepo) Delete(_ context.Context, id int64) error {
	delete(r.users, id)
	return nil
}
func (r *fakeUserRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.users)), nil
}

func seedUser(t *testing.T, repo *fakeUserRepo, username, password, role string) int64 {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	user := &model.User{Username: username, Password: string(hashed), Role: role}
	require.NoError(t, repo.Create(context.Background(), user))
	return user.ID
}

func TestLogin(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	repo := newFakeUserRepo()
	seedUser(t, repo, "admin", "secret123", model.RoleAdmin)
	svc := NewUserService(repo, &recordingAudit{})

	resp, err := svc.Login(context.Background(), LoginRequest{Username: "admin", Password: "secret123"})
	require.NoError(t, err)
	assert.Equal(t, "admin", resp.Username)
	assert.Equal(t, model.RoleAdmin, resp.Role)

	parsed, err := jwt.Parse(resp.Token, func(*jwt.Token) (interface{}, error) {
		return []byte("default_super_secret_key"), nil
	})
	require.NoError(t, err)
	claims := parsed.Claims.(jwt.MapClaims)
	assert.Equal(t, "admin", claims["username"])
	assert.Equal(t, model.RoleAdmin, claims["role"])
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	repo := newFakeUserRepo()
	seedUser(t, repo, "admin", "secret123", model.RoleAdmin)
	svc := NewUserService(repo, &recordingAudit{})

	_, err := svc.Login(context.Background(), LoginRequest{Username: "admin", Password: "wrong"})
	require.Error(t, err)
	assert.Equal(t, "invalid username or password", err.Error())

	_, err = svc.Login(context.Background(), LoginRequest{Username: "ghost", Password: "secret123"})
	require.Error(t, err)
	assert.Equal(t, "invalid username or password", err.Error())
}

func TestCreateUserValidation(t *testing.T) {
	repo := newFakeUserRepo()
	seedUser(t, repo, "admin", "secret123", model.RoleAdmin)
	svc := NewUserService(repo, &recordingAudit{})

	_, err := svc.CreateUser(context.Background(), Actor{}, CreateUserRequest{
		Username: "clerk", Password: "secret123", Role: "Superuser",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid role")

	_, err = svc.CreateUser(context.Background(), Actor{}, CreateUserRequest{
		Username: "admin", Password: "secret123", Role: model.RoleUser,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "username already exists")

	created, err := svc.CreateUser(context.Background(), Actor{}, CreateUserRequest{
		Username: "clerk", Password: "secret123", Role: model.RoleUser,
	})
	require.NoError(t, err)
	assert.Equal(t, model.RoleUser, created.Role)

	stored, err := repo.GetByUsername(context.Background(), "clerk")
	require.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("secret123")))
}

func TestDeleteUserBlocksSelf(t *testing.T) {
	repo := newFakeUserRepo()
	adminID := seedUser(t, repo, "admin", "secret123", model.RoleAdmin)
	clerkID := seedUser(t, repo, "clerk", "secret123", model.RoleUser)
	svc := NewUserService(repo, &recordingAudit{})

	err := svc.DeleteUser(context.Background(), Actor{UserID: adminID}, adminID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot delete your own account")

	require.NoError(t, svc.DeleteUser(context.Background(), Actor{UserID: adminID}, clerkID))
	_, err = repo.GetByID(context.Background(), clerkID)
	require.Error(t, err)
}

func TestEnsureDefaultAdmin(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo, &recordingAudit{})

	require.NoError(t, svc.EnsureDefaultAdmin(context.Background()))

	admin, err := repo.GetByUsername(context.Background(), "admin")
	require.NoError(t, err)
	assert.Equal(t, model.RoleAdmin, admin.Role)

	// Seeding is a no-op once any account exists.
	require.NoError(t, svc.EnsureDefaultAdmin(context.Background()))
	count, _ := repo.Count(context.Background())
	assert.Equal(t, int64(1), count)
}
