package usecase

import (
	"context"
	"crypto/rand"
	"errors"
	"log"
	"math/big"
	"strings"
	"time"

	"servineta/internal/domain/entities"
	"servineta/internal/usecase/interfaces"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidUserInput       = errors.New("invalid user input")
	ErrSuperAdminUndeletable  = errors.New("superadmin accounts cannot be deleted")
	ErrUserEmailAlreadyExists = errors.New("another user already has this email")
)

// AdminUserInput carries the admin panel's create/update payload.
type AdminUserInput struct {
	Name     string
	Email    string
	Role     entities.Role
	Password string // optional on update; generated on create
	Active   *bool
}

// CreatedUser reports the outcome of an admin-side creation, including
// whether the welcome mail with credentials went through.
type CreatedUser struct {
	User     entities.User `json:"user"`
	MailSent bool          `json:"mail_sent"`
}

//go:generate mockgen -source=user_admin_usecase.go -destination=../adapter/http/handlers/mocks/mock_user_admin_usecase.go -package=mocks
// IUserAdminUseCase is the management surface exposed to admins.
type IUserAdminUseCase interface {
	List(ctx context.Context, f interfaces.ListFilter) ([]entities.User, string, error)
	Create(ctx context.Context, in AdminUserInput) (CreatedUser, error)
	Update(ctx context.Context, id string, in AdminUserInput) (entities.User, error)
	Toggle(ctx context.Context, id string) (entities.User, error)
	Delete(ctx context.Context, id string) error
}

type UserAdminUseCase struct {
	users  interfaces.IUserRepository
	mailer interfaces.IMailer
}

var _ IUserAdminUseCase = (*UserAdminUseCase)(nil)

func NewUserAdminUseCase(users interfaces.IUserRepository, mailer interfaces.IMailer) *UserAdminUseCase {
	return &UserAdminUseCase{users: users, mailer: mailer}
}

func (u *UserAdminUseCase) List(ctx context.Context, f interfaces.ListFilter) ([]entities.User, string, error) {
	return u.users.List(ctx, f)
}

// Create provisions an account with a generated password and mails the
// credentials. Creation succeeds even when the mail does not go through;
// the result reports which happened.
func (u *UserAdminUseCase) Create(ctx context.Context, in AdminUserInput) (CreatedUser, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	if in.Name == "" || in.Email == "" || !strings.Contains(in.Email, "@") || !entities.ValidRole(in.Role) {
		return CreatedUser{}, ErrInvalidUserInput
	}

	existing, err := u.users.GetByEmail(ctx, in.Email)
	if err != nil {
		return CreatedUser{}, err
	}
	if existing.ID != "" {
		return CreatedUser{}, ErrUserEmailAlreadyExists
	}

	password, err := randomPassword(10)
	if err != nil {
		return CreatedUser{}, err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return CreatedUser{}, err
	}

	active := true
	if in.Active != nil {
		active = *in.Active
	}
	now := time.Now().UTC()
	user, err := u.users.Create(ctx, entities.User{
		ID:           uuid.NewString(),
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: string(hash),
		Role:         in.Role,
		Active:       active,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		return CreatedUser{}, err
	}

	mailSent := true
	body := "Hello " + user.Name + ",\n\nYour account is ready.\nEmail: " + user.Email + "\nPassword: " + password + "\n\nPlease change the password after signing in.\n"
	if err := u.mailer.Send(ctx, user.Email, "Welcome to the marketplace", body); err != nil {
		log.Printf("[users][usecase] welcome mail failed user_id=%s err=%v", user.ID, err)
		mailSent = false
	}
	return CreatedUser{User: user, MailSent: mailSent}, nil
}

func (u *UserAdminUseCase) Update(ctx context.Context, id string, in AdminUserInput) (entities.User, error) {
	user, err := u.get(ctx, id)
	if err != nil {
		return entities.User{}, err
	}

	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	if in.Name == "" || in.Email == "" || !entities.ValidRole(in.Role) {
		return entities.User{}, ErrInvalidUserInput
	}

	if in.Email != user.Email {
		other, err := u.users.GetByEmail(ctx, in.Email)
		if err != nil {
			return entities.User{}, err
		}
		if other.ID != "" && other.ID != user.ID {
			return entities.User{}, ErrUserEmailAlreadyExists
		}
	}

	user.Name = in.Name
	user.Email = in.Email
	user.Role = in.Role
	if in.Active != nil {
		user.Active = *in.Active
	}
	if in.Password != "" {
		if len(in.Password) < 8 {
			return entities.User{}, ErrWeakPassword
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
		if err != nil {
			return entities.User{}, err
		}
		user.PasswordHash = string(hash)
	}
	user.UpdatedAt = time.Now().UTC()

	updated, err := u.users.Update(ctx, user)
	if err != nil {
		if errors.Is(err, interfaces.ErrConditionFailed) {
			return entities.User{}, ErrUserNotFound
		}
		return entities.User{}, err
	}
	return updated, nil
}

func (u *UserAdminUseCase) Toggle(ctx context.Context, id string) (entities.User, error) {
	user, err := u.get(ctx, id)
	if err != nil {
		return entities.User{}, err
	}
	toggled, err := u.users.SetActive(ctx, user.ID, !user.Active)
	if err != nil {
		if errors.Is(err, interfaces.ErrConditionFailed) {
			return entities.User{}, ErrUserNotFound
		}
		return entities.User{}, err
	}
	return toggled, nil
}

func (u *UserAdminUseCase) Delete(ctx context.Context, id string) error {
	user, err := u.get(ctx, id)
	if err != nil {
		return err
	}
	if user.Role == entities.RoleSuperAdmin {
		return ErrSuperAdminUndeletable
	}
	return u.users.Delete(ctx, user.ID)
}

func (u *UserAdminUseCase) get(ctx context.Context, id string) (entities.User, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.User{}, ErrUserNotFound
	}
	user, err := u.users.GetByID(ctx, id)
	if err != nil {
		return entities.User{}, err
	}
	if user.ID == "" {
		return entities.User{}, ErrUserNotFound
	}
	return user, nil
}

const passwordAlphabet = "abcdefghijkmnopqrstuvwxyzABCDEFGHJKLMNPQRSTUVWXYZ23456789"

func randomPassword(length int) (string, error) {
	out := make([]byte, length)
	for i := range out {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(passwordAlphabet))))
		if err != nil {
			return "", err
		}
		out[i] = passwordAlphabet[n.Int64()]
	}
	return string(out), nil
}
