package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"servineta/internal/domain/entities"
	mock_interfaces "servineta/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func newUserAdminUseCase(ctrl *gomock.Controller) (*UserAdminUseCase, *mock_interfaces.MockIUserRepository, *mock_interfaces.MockIMailer) {
	users := mock_interfaces.NewMockIUserRepository(ctrl)
	mailer := mock_interfaces.NewMockIMailer(ctrl)
	return NewUserAdminUseCase(users, mailer), users, mailer
}

func TestUserAdminUseCase_Create(t *testing.T) {
	t.Run("missing role", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _, _ := newUserAdminUseCase(ctrl)

		_, err := uc.Create(context.Background(), AdminUserInput{Name: "Ana", Email: "ana@mail.com"})
		if !errors.Is(err, ErrInvalidUserInput) {
			t.Fatalf("expected ErrInvalidUserInput, got %v", err)
		}
	})

	t.Run("duplicate email", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, users, _ := newUserAdminUseCase(ctrl)

		users.EXPECT().GetByEmail(gomock.Any(), "ana@mail.com").Return(entities.User{ID: "existing"}, nil)

		_, err := uc.Create(context.Background(), AdminUserInput{Name: "Ana", Email: "ana@mail.com", Role: entities.RoleUser})
		if !errors.Is(err, ErrUserEmailAlreadyExists) {
			t.Fatalf("expected ErrUserEmailAlreadyExists, got %v", err)
		}
	})

	t.Run("success mails generated credentials", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, users, mailer := newUserAdminUseCase(ctrl)

		users.EXPECT().GetByEmail(gomock.Any(), "ana@mail.com").Return(entities.User{}, nil)
		users.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.User{})).DoAndReturn(
			func(_ context.Context, u entities.User) (entities.User, error) {
				if u.Role != entities.RoleAdmin || !u.Active || u.PasswordHash == "" {
					t.Fatalf("unexpected user: %+v", u)
				}
				return u, nil
			},
		)
		mailer.EXPECT().Send(gomock.Any(), "ana@mail.com", gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, _, _, body string) error {
				if !strings.Contains(body, "Password: ") {
					t.Fatalf("expected credentials in mail body")
				}
				return nil
			},
		)

		res, err := uc.Create(context.Background(), AdminUserInput{Name: "Ana", Email: "ANA@mail.com", Role: entities.RoleAdmin})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !res.MailSent {
			t.Fatalf("expected mail_sent true")
		}
	})

	t.Run("creation stands when the mail fails", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, users, mailer := newUserAdminUseCase(ctrl)

		users.EXPECT().GetByEmail(gomock.Any(), "ana@mail.com").Return(entities.User{}, nil)
		users.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, u entities.User) (entities.User, error) { return u, nil },
		)
		mailer.EXPECT().Send(gomock.Any(), "ana@mail.com", gomock.Any(), gomock.Any()).Return(errors.New("ses down"))

		res, err := uc.Create(context.Background(), AdminUserInput{Name: "Ana", Email: "ana@mail.com", Role: entities.RoleUser})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.MailSent {
			t.Fatalf("expected mail_sent false")
		}
	})
}

func TestUserAdminUseCase_Update(t *testing.T) {
	existing := entities.User{ID: "user-1", Name: "Ana", Email: "ana@mail.com", Role: entities.RoleUser, Active: true}

	t.Run("email taken by someone else", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, users, _ := newUserAdminUseCase(ctrl)

		users.EXPECT().GetByID(gomock.Any(), "user-1").Return(existing, nil)
		users.EXPECT().GetByEmail(gomock.Any(), "bia@mail.com").Return(entities.User{ID: "user-2"}, nil)

		_, err := uc.Update(context.Background(), "user-1", AdminUserInput{Name: "Ana", Email: "bia@mail.com", Role: entities.RoleUser})
		if !errors.Is(err, ErrUserEmailAlreadyExists) {
			t.Fatalf("expected ErrUserEmailAlreadyExists, got %v", err)
		}
	})

	t.Run("short replacement password", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, users, _ := newUserAdminUseCase(ctrl)

		users.EXPECT().GetByID(gomock.Any(), "user-1").Return(existing, nil)

		_, err := uc.Update(context.Background(), "user-1", AdminUserInput{Name: "Ana", Email: "ana@mail.com", Role: entities.RoleUser, Password: "short"})
		if !errors.Is(err, ErrWeakPassword) {
			t.Fatalf("expected ErrWeakPassword, got %v", err)
		}
	})

	t.Run("success rehashes the password", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, users, _ := newUserAdminUseCase(ctrl)

		users.EXPECT().GetByID(gomock.Any(), "user-1").Return(existing, nil)
		users.EXPECT().Update(gomock.Any(), gomock.AssignableToTypeOf(entities.User{})).DoAndReturn(
			func(_ context.Context, u entities.User) (entities.User, error) {
				if u.Role != entities.RoleAdmin {
					t.Fatalf("expected role change, got %s", u.Role)
				}
				if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("newpassword")) != nil {
					t.Fatalf("password hash does not verify")
				}
				return u, nil
			},
		)

		_, err := uc.Update(context.Background(), "user-1", AdminUserInput{Name: "Ana", Email: "ana@mail.com", Role: entities.RoleAdmin, Password: "newpassword"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestUserAdminUseCase_Delete(t *testing.T) {
	t.Run("superadmin is protected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, users, _ := newUserAdminUseCase(ctrl)

		users.EXPECT().GetByID(gomock.Any(), "root-1").Return(entities.User{ID: "root-1", Role: entities.RoleSuperAdmin}, nil)

		err := uc.Delete(context.Background(), "root-1")
		if !errors.Is(err, ErrSuperAdminUndeletable) {
			t.Fatalf("expected ErrSuperAdminUndeletable, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, users, _ := newUserAdminUseCase(ctrl)

		users.EXPECT().GetByID(gomock.Any(), "user-1").Return(entities.User{ID: "user-1", Role: entities.RoleUser}, nil)
		users.EXPECT().Delete(gomock.Any(), "user-1").Return(nil)

		if err := uc.Delete(context.Background(), "user-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestRandomPassword(t *testing.T) {
	p, err := randomPassword(10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(p) != 10 {
		t.Fatalf("expected 10 characters, got %d", len(p))
	}
	for _, r := range p {
		if !strings.ContainsRune(passwordAlphabet, r) {
			t.Fatalf("unexpected character %q", r)
		}
	}
}
