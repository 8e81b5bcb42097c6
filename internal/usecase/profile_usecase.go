package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"servineta/internal/domain/entities"
	"servineta/internal/usecase/interfaces"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrWrongPassword    = errors.New("current password is incorrect")
	ErrNoProfilePicture = errors.New("no profile picture to delete")
)

// UpdateProfileInput is the caller's own account edit. A password change is
// optional and requires the current password alongside the new one.
type UpdateProfileInput struct {
	Name            string
	Email           string
	CurrentPassword string
	NewPassword     string
}

//go:generate mockgen -source=profile_usecase.go -destination=../adapter/http/handlers/mocks/mock_profile_usecase.go -package=mocks
// IProfileUseCase is the self-service side of an account: the caller edits
// their own name, email, password and profile picture.
type IProfileUseCase interface {
	Get(ctx context.Context, userID string) (entities.User, error)
	UpdateProfile(ctx context.Context, userID string, in UpdateProfileInput) (entities.User, error)
	UpdatePicture(ctx context.Context, userID string, img UploadInput) (entities.User, error)
	DeletePicture(ctx context.Context, userID string) (entities.User, error)
}

type ProfileUseCase struct {
	users     interfaces.IUserRepository
	files     interfaces.IFileRepository
	fileStore interfaces.IFileStore
}

var _ IProfileUseCase = (*ProfileUseCase)(nil)

func NewProfileUseCase(users interfaces.IUserRepository, files interfaces.IFileRepository, fileStore interfaces.IFileStore) *ProfileUseCase {
	return &ProfileUseCase{users: users, files: files, fileStore: fileStore}
}

func (u *ProfileUseCase) Get(ctx context.Context, userID string) (entities.User, error) {
	return u.ownAccount(ctx, userID)
}

// UpdateProfile edits name and email, and rehashes the password when a new
// one is supplied. The current password must verify before the hash is
// replaced.
func (u *ProfileUseCase) UpdateProfile(ctx context.Context, userID string, in UpdateProfileInput) (entities.User, error) {
	user, err := u.ownAccount(ctx, userID)
	if err != nil {
		return entities.User{}, err
	}

	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	if in.Name == "" || in.Email == "" || !strings.Contains(in.Email, "@") {
		return entities.User{}, ErrInvalidAuthInput
	}

	if in.Email != user.Email {
		other, err := u.users.GetByEmail(ctx, in.Email)
		if err != nil {
			return entities.User{}, err
		}
		if other.ID != "" && other.ID != user.ID {
			return entities.User{}, ErrEmailTaken
		}
	}

	if in.NewPassword != "" {
		if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.CurrentPassword)) != nil {
			return entities.User{}, ErrWrongPassword
		}
		if len(in.NewPassword) < 8 {
			return entities.User{}, ErrWeakPassword
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(in.NewPassword), bcrypt.DefaultCost)
		if err != nil {
			return entities.User{}, err
		}
		user.PasswordHash = string(hash)
	}

	user.Name = in.Name
	user.Email = in.Email
	user.UpdatedAt = time.Now().UTC()

	return u.saveAccount(ctx, user)
}

// UpdatePicture replaces the caller's profile picture: the old record and
// object are removed, the new upload is stored and linked on the account.
func (u *ProfileUseCase) UpdatePicture(ctx context.Context, userID string, img UploadInput) (entities.User, error) {
	user, err := u.ownAccount(ctx, userID)
	if err != nil {
		return entities.User{}, err
	}

	if user.ProfilePictureID != "" {
		u.removePicture(ctx, user.ProfilePictureID)
	}

	path, err := u.fileStore.Upload(ctx, "profile_pictures", img.Filename, img.ContentType, img.Body, img.Size)
	if err != nil {
		return entities.User{}, err
	}
	now := time.Now().UTC()
	stored, err := u.files.Create(ctx, entities.StoredFile{
		ID:           uuid.NewString(),
		Path:         path,
		OriginalName: img.Filename,
		MimeType:     img.ContentType,
		Size:         img.Size,
		OwnerType:    entities.FileOwnerUser,
		OwnerID:      user.ID,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		return entities.User{}, err
	}

	user.ProfilePictureID = stored.ID
	user.UpdatedAt = now
	return u.saveAccount(ctx, user)
}

// DeletePicture removes the linked picture. Having none is an error, so the
// client can tell a no-op from a successful removal.
func (u *ProfileUseCase) DeletePicture(ctx context.Context, userID string) (entities.User, error) {
	user, err := u.ownAccount(ctx, userID)
	if err != nil {
		return entities.User{}, err
	}
	if user.ProfilePictureID == "" {
		return entities.User{}, ErrNoProfilePicture
	}

	u.removePicture(ctx, user.ProfilePictureID)

	user.ProfilePictureID = ""
	user.UpdatedAt = time.Now().UTC()
	return u.saveAccount(ctx, user)
}

// removePicture detaches the old picture record and object. Failures are
// logged only: a dangling object never blocks the profile change.
func (u *ProfileUseCase) removePicture(ctx context.Context, fileID string) {
	file, err := u.files.GetByID(ctx, fileID)
	if err != nil || file.ID == "" {
		log.Printf("[profile][usecase] old picture lookup failed file_id=%s err=%v", fileID, err)
		return
	}
	if err := u.fileStore.Delete(ctx, file.Path); err != nil {
		log.Printf("[profile][usecase] old picture object delete failed path=%s err=%v", file.Path, err)
	}
	if err := u.files.Delete(ctx, file.ID); err != nil {
		log.Printf("[profile][usecase] old picture record delete failed file_id=%s err=%v", file.ID, err)
	}
}

func (u *ProfileUseCase) ownAccount(ctx context.Context, userID string) (entities.User, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return entities.User{}, ErrUserNotFound
	}
	user, err := u.users.GetByID(ctx, userID)
	if err != nil {
		return entities.User{}, err
	}
	if user.ID == "" {
		return entities.User{}, ErrUserNotFound
	}
	return user, nil
}

func (u *ProfileUseCase) saveAccount(ctx context.Context, user entities.User) (entities.User, error) {
	updated, err := u.users.Update(ctx, user)
	if err != nil {
		if errors.Is(err, interfaces.ErrConditionFailed) {
			return entities.User{}, ErrUserNotFound
		}
		return entities.User{}, err
	}
	return updated, nil
}
