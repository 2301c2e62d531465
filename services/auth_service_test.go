package services

import (
	"testing"

	"autohub/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type fakeUserRepo struct {
	users  []models.User
	nextID uint
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{nextID: 1}
}

func (f *fakeUserRepo) Create(user *models.User) error {
	user.ID = f.nextID
	f.nextID++
	f.users = append(f.users, *user)
	return nil
}

func (f *fakeUserRepo) GetByID(id uint) (*models.User, error) {
	for i := range f.users {
		if f.users[i].ID == id {
			u := f.users[i]
			return &u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepo) GetByEmail(email string) (*models.User, error) {
	for i := range f.users {
		if f.users[i].Email == email {
			u := f.users[i]
			return &u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepo) GetByUsername(username string) (*models.User, error) {
	for i := range f.users {
		if f.users[i].Username == username {
			u := f.users[i]
			return &u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepo) GetAll() ([]models.User, error) {
	return append([]models.User(nil), f.users...), nil
}

func (f *fakeUserRepo) Update(user *models.User) error {
	for i := range f.users {
		if f.users[i].ID == user.ID {
			f.users[i] = *user
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (f *fakeUserRepo) Delete(id uint) error {
	for i := range f.users {
		if f.users[i].ID == id {
			f.users = append(f.users[:i], f.users[i+1:]...)
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func registerRequest() models.RegisterRequest {
	return models.RegisterRequest{
		Username: "driver",
		Email:    "driver@example.com",
		Password: "password123",
		Phone:    "555-0100",
	}
}

func TestRegisterAssignsUserRole(t *testing.T) {
	svc := NewAuthService(newFakeUserRepo())

	resp, err := svc.Register(registerRequest())
	require.NoError(t, err)

	assert.Equal(t, models.RoleUser, resp.User.Role)
	assert.NotEmpty(t, resp.Token)
	assert.NotEqual(t, "password123", resp.User.Password)
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(resp.User.Password), []byte("password123")))
}

func TestRegisterDuplicateEmailConflict(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewAuthService(repo)

	first, err := svc.Register(registerRequest())
	require.NoError(t, err)

	req := registerRequest()
	req.Username = "otherdriver"
	_, err = svc.Register(req)
	require.Error(t, err)
	assert.IsType(t, models.ErrorConflict{}, err)

	// the existing record is untouched
	stored, err := repo.GetByID(first.User.ID)
	require.NoError(t, err)
	assert.Equal(t, "driver", stored.Username)
	require.Len(t, repo.users, 1)
}

func TestRegisterDuplicateUsernameConflict(t *testing.T) {
	svc := NewAuthService(newFakeUserRepo())

	_, err := svc.Register(registerRequest())
	require.NoError(t, err)

	req := registerRequest()
	req.Email = "other@example.com"
	_, err = svc.Register(req)
	require.Error(t, err)
	assert.IsType(t, models.ErrorConflict{}, err)
}

func TestLoginWrongPassword(t *testing.T) {
	svc := NewAuthService(newFakeUserRepo())

	_, err := svc.Register(registerRequest())
	require.NoError(t, err)

	_, err = svc.Login(models.LoginRequest{Email: "driver@example.com", Password: "wrong"})
	require.Error(t, err)
	assert.IsType(t, models.ErrorUnauthorized{}, err)
}

func TestLoginUnknownEmail(t *testing.T) {
	svc := NewAuthService(newFakeUserRepo())

	_, err := svc.Login(models.LoginRequest{Email: "ghost@example.com", Password: "whatever"})
	require.Error(t, err)
	assert.IsType(t, models.ErrorUnauthorized{}, err)
}

func TestLoginSuccess(t *testing.T) {
	svc := NewAuthService(newFakeUserRepo())

	_, err := svc.Register(registerRequest())
	require.NoError(t, err)

	resp, err := svc.Login(models.LoginRequest{Email: "driver@example.com", Password: "password123"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "driver", resp.User.Username)
}

func TestUpdateProfileEmailConflict(t *testing.T) {
	svc := NewAuthService(newFakeUserRepo())

	first, err := svc.Register(registerRequest())
	require.NoError(t, err)

	second := registerRequest()
	second.Username = "rider"
	second.Email = "rider@example.com"
	_, err = svc.Register(second)
	require.NoError(t, err)

	_, err = svc.UpdateProfile(first.User.ID, models.UpdateProfileRequest{Email: "rider@example.com"})
	require.Error(t, err)
	assert.IsType(t, models.ErrorConflict{}, err)
}

func TestUpdateProfileChangesFields(t *testing.T) {
	svc := NewAuthService(newFakeUserRepo())

	resp, err := svc.Register(registerRequest())
	require.NoError(t, err)

	updated, err := svc.UpdateProfile(resp.User.ID, models.UpdateProfileRequest{
		Phone:    "555-0199",
		Password: "newpassword",
	})
	require.NoError(t, err)

	assert.Equal(t, "555-0199", updated.Phone)
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(updated.Password), []byte("newpassword")))

	_, err = svc.Login(models.LoginRequest{Email: "driver@example.com", Password: "newpassword"})
	require.NoError(t, err)
}

func TestUpdateUserRole(t *testing.T) {
	svc := NewAuthService(newFakeUserRepo())

	resp, err := svc.Register(registerRequest())
	require.NoError(t, err)

	updated, err := svc.UpdateUserRole(resp.User.ID, models.RoleStaff)
	require.NoError(t, err)
	assert.Equal(t, models.RoleStaff, updated.Role)

	_, err = svc.UpdateUserRole(resp.User.ID, "owner")
	require.Error(t, err)
	assert.IsType(t, models.ErrorValidation{}, err)
}

func TestDeleteUserMissing(t *testing.T) {
	svc := NewAuthService(newFakeUserRepo())

	err := svc.DeleteUser(99)
	require.Error(t, err)
	assert.IsType(t, models.ErrorNotFound{}, err)
}
