package usecase

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	"image/png"
	"strings"
	"testing"
	"time"

	userdomain "plek-backend/internal/user/domain"
	userdto "plek-backend/internal/user/dto"
	"plek-backend/pkg/apperr"
)

type fakeUserRepo struct {
	users map[string]*userdomain.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*userdomain.User)}
}

func (r *fakeUserRepo) Create(_ context.Context, user *userdomain.User) error {
	now := time.Now().UTC()
	user.CreatedAt = now
	user.UpdatedAt = now
	stored := *user
	r.users[user.ID] = &stored
	return nil
}

func (r *fakeUserRepo) GetByUID(_ context.Context, uid string) (*userdomain.User, error) {
	u, ok := r.users[uid]
	if !ok {
		return nil, nil
	}
	copied := *u
	return &copied, nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*userdomain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) GetAll(_ context.Context) ([]*userdomain.User, error) {
	var out []*userdomain.User
	for _, u := range r.users {
		copied := *u
		out = append(out, &copied)
	}
	return out, nil
}

func (r *fakeUserRepo) Update(_ context.Context, uid string, fields map[string]any) (*userdomain.User, error) {
	u, ok := r.users[uid]
	if !ok {
		return nil, errors.New("missing user")
	}
	for k, v := range fields {
		switch k {
		case "email":
			u.Email = v.(string)
		case "first_name":
			u.FirstName = v.(string)
		case "last_name":
			u.LastName = v.(string)
		case "role":
			u.Role = v.(string)
		case "phone_number":
			u.PhoneNumber = v.(string)
		case "profile_picture":
			u.ProfilePicture = v.(string)
		case "onboarding_completed":
			u.OnboardingCompleted = v.(bool)
		}
	}
	u.UpdatedAt = time.Now().UTC()
	copied := *u
	return &copied, nil
}

func (r *fakeUserRepo) Delete(_ context.Context, uid string) error {
	delete(r.users, uid)
	return nil
}

type fakeIDP struct {
	seq            int
	created        []string
	emailUpdates   map[string]string
	deleted        []string
	deleteErr      error
	createErr      error
	updateEmailErr error
}

func newFakeIDP() *fakeIDP {
	return &fakeIDP{emailUpdates: make(map[string]string)}
}

func (f *fakeIDP) CreateAccount(_ context.Context, email, _, _ string) (string, error) {
	if f.createErr != nil {
		return "", f.createErr
	}
	f.seq++
	uid := fmt.Sprintf("uid-%d", f.seq)
	f.created = append(f.created, email)
	return uid, nil
}

func (f *fakeIDP) UpdateEmail(_ context.Context, uid, email string) error {
	if f.updateEmailErr != nil {
		return f.updateEmailErr
	}
	f.emailUpdates[uid] = email
	return nil
}

func (f *fakeIDP) DeleteAccount(_ context.Context, uid string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deleted = append(f.deleted, uid)
	return nil
}

type fakeUploader struct {
	uploads int
	err     error
}

func (f *fakeUploader) UploadImage(_ context.Context, _, fileName, folderPath string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.uploads++
	return fmt.Sprintf("https://storage.googleapis.com/test-bucket/%s/%s", folderPath, fileName), nil
}

func validCreateReq() *userdto.CreateUserRequest {
	return &userdto.CreateUserRequest{
		Email:     "jane@example.com",
		FirstName: "Jane",
		LastName:  "Doe",
	}
}

func TestCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("reports missing fields", func(t *testing.T) {
		uc := NewUserUsecase(newFakeUserRepo(), newFakeIDP(), &fakeUploader{})
		_, err := uc.Create(ctx, &userdto.CreateUserRequest{}, "", false)
		if !apperr.IsValidation(err) {
			t.Fatalf("expected validation error, got %v", err)
		}
		if !strings.Contains(err.Error(), "email") || !strings.Contains(err.Error(), "first_name") {
			t.Errorf("missing-field list incomplete: %v", err)
		}
	})

	t.Run("rejects bad email", func(t *testing.T) {
		uc := NewUserUsecase(newFakeUserRepo(), newFakeIDP(), &fakeUploader{})
		req := validCreateReq()
		req.Email = "not-an-email"
		if _, err := uc.Create(ctx, req, "", false); !apperr.IsValidation(err) {
			t.Errorf("expected validation error, got %v", err)
		}
	})

	t.Run("rejects duplicate email", func(t *testing.T) {
		repo := newFakeUserRepo()
		uc := NewUserUsecase(repo, newFakeIDP(), &fakeUploader{})

		req := validCreateReq()
		req.FirebaseUID = "existing-uid"
		if _, err := uc.Create(ctx, req, "", false); err != nil {
			t.Fatal(err)
		}
		req2 := validCreateReq()
		req2.FirebaseUID = "another-uid"
		if _, err := uc.Create(ctx, req2, "", false); !apperr.IsValidation(err) {
			t.Errorf("expected validation error, got %v", err)
		}
	})

	t.Run("registers account and keys record by its uid", func(t *testing.T) {
		repo := newFakeUserRepo()
		idp := newFakeIDP()
		uc := NewUserUsecase(repo, idp, &fakeUploader{})

		user, err := uc.Create(ctx, validCreateReq(), "Str0ng!pass", true)
		if err != nil {
			t.Fatal(err)
		}
		if user.ID != "uid-1" {
			t.Errorf("expected record keyed by provider uid, got %q", user.ID)
		}
		if len(idp.created) != 1 {
			t.Errorf("expected 1 account registration, got %d", len(idp.created))
		}
		if !user.IsActive {
			t.Error("expected new user to be active")
		}
		if user.Role != "user" {
			t.Errorf("expected default role, got %q", user.Role)
		}
	})

	t.Run("rejects a weak password before touching the provider", func(t *testing.T) {
		idp := newFakeIDP()
		uc := NewUserUsecase(newFakeUserRepo(), idp, &fakeUploader{})

		if _, err := uc.Create(ctx, validCreateReq(), "weak", true); !apperr.IsValidation(err) {
			t.Fatalf("expected validation error, got %v", err)
		}
		if len(idp.created) != 0 {
			t.Error("provider must not be called for a weak password")
		}
	})

	t.Run("stores a URL for a base64 photo", func(t *testing.T) {
		uploader := &fakeUploader{}
		uc := NewUserUsecase(newFakeUserRepo(), newFakeIDP(), uploader)

		req := validCreateReq()
		req.ProfilePicture = "aGVsbG8="
		user, err := uc.Create(ctx, req, "Str0ng!pass", true)
		if err != nil {
			t.Fatal(err)
		}
		if !strings.HasPrefix(user.ProfilePicture, "https://") {
			t.Errorf("expected a stored URL, got %q", user.ProfilePicture)
		}
		if uploader.uploads != 1 {
			t.Errorf("expected 1 upload, got %d", uploader.uploads)
		}
	})

	t.Run("passes photo URLs through without uploading", func(t *testing.T) {
		uploader := &fakeUploader{}
		uc := NewUserUsecase(newFakeUserRepo(), newFakeIDP(), uploader)

		req := validCreateReq()
		req.ProfilePicture = "https://example.com/me.jpg"
		user, err := uc.Create(ctx, req, "Str0ng!pass", true)
		if err != nil {
			t.Fatal(err)
		}
		if user.ProfilePicture != "https://example.com/me.jpg" {
			t.Errorf("got %q", user.ProfilePicture)
		}
		if uploader.uploads != 0 {
			t.Errorf("expected no uploads, got %d", uploader.uploads)
		}
	})

	t.Run("fixes shouted names", func(t *testing.T) {
		uc := NewUserUsecase(newFakeUserRepo(), newFakeIDP(), &fakeUploader{})

		req := validCreateReq()
		req.FirstName = "JANE MARIE"
		user, err := uc.Create(ctx, req, "Str0ng!pass", true)
		if err != nil {
			t.Fatal(err)
		}
		if user.FirstName != "Jane Marie" {
			t.Errorf("got %q", user.FirstName)
		}
	})
}

func TestUpdate(t *testing.T) {
	ctx := context.Background()

	seed := func(t *testing.T) (*fakeUserRepo, *fakeIDP, UserUsecase, *userdomain.User) {
		t.Helper()
		repo := newFakeUserRepo()
		idp := newFakeIDP()
		uc := NewUserUsecase(repo, idp, &fakeUploader{})
		user, err := uc.Create(ctx, validCreateReq(), "Str0ng!pass", true)
		if err != nil {
			t.Fatal(err)
		}
		return repo, idp, uc, user
	}

	t.Run("unknown uid", func(t *testing.T) {
		_, _, uc, _ := seed(t)
		name := "New"
		_, err := uc.Update(ctx, "missing", &userdto.UpdateUserRequest{FirstName: &name})
		if !errors.Is(err, apperr.ErrNotFound) {
			t.Errorf("expected not-found, got %v", err)
		}
	})

	t.Run("email change syncs the provider first", func(t *testing.T) {
		_, idp, uc, user := seed(t)
		email := "new@example.com"
		updated, err := uc.Update(ctx, user.ID, &userdto.UpdateUserRequest{Email: &email})
		if err != nil {
			t.Fatal(err)
		}
		if updated.Email != "new@example.com" {
			t.Errorf("got %q", updated.Email)
		}
		if idp.emailUpdates[user.ID] != "new@example.com" {
			t.Error("provider email not updated")
		}
	})

	t.Run("provider failure aborts the email change", func(t *testing.T) {
		repo, idp, uc, user := seed(t)
		idp.updateEmailErr = errors.New("provider down")
		email := "new@example.com"
		if _, err := uc.Update(ctx, user.ID, &userdto.UpdateUserRequest{Email: &email}); err == nil {
			t.Fatal("expected error")
		}
		if repo.users[user.ID].Email != "jane@example.com" {
			t.Error("record must be unchanged when the provider rejects the email")
		}
	})

	t.Run("absent fields stay untouched", func(t *testing.T) {
		_, _, uc, user := seed(t)
		name := "Janet"
		updated, err := uc.Update(ctx, user.ID, &userdto.UpdateUserRequest{FirstName: &name})
		if err != nil {
			t.Fatal(err)
		}
		if updated.LastName != "Doe" || updated.Email != "jane@example.com" {
			t.Errorf("untouched fields changed: %+v", updated)
		}
	})
}

func TestDelete(t *testing.T) {
	ctx := context.Background()
	repo := newFakeUserRepo()
	idp := newFakeIDP()
	uc := NewUserUsecase(repo, idp, &fakeUploader{})

	user, err := uc.Create(ctx, validCreateReq(), "Str0ng!pass", true)
	if err != nil {
		t.Fatal(err)
	}

	t.Run("unknown uid", func(t *testing.T) {
		if err := uc.Delete(ctx, "missing"); !errors.Is(err, apperr.ErrNotFound) {
			t.Errorf("expected not-found, got %v", err)
		}
	})

	t.Run("provider delete failure does not surface", func(t *testing.T) {
		idp.deleteErr = errors.New("provider down")
		if err := uc.Delete(ctx, user.ID); err != nil {
			t.Fatalf("expected success, got %v", err)
		}
		if _, ok := repo.users[user.ID]; ok {
			t.Error("record should be gone")
		}
	})
}

func TestUpdatePhoto(t *testing.T) {
	ctx := context.Background()
	uploader := &fakeUploader{}
	uc := NewUserUsecase(newFakeUserRepo(), newFakeIDP(), uploader)

	user, err := uc.Create(ctx, validCreateReq(), "Str0ng!pass", true)
	if err != nil {
		t.Fatal(err)
	}

	t.Run("rejects bytes that are not an image", func(t *testing.T) {
		payload := base64.StdEncoding.EncodeToString([]byte("not an image"))
		if _, err := uc.UpdatePhoto(ctx, user.ID, payload); !apperr.IsValidation(err) {
			t.Errorf("expected validation error, got %v", err)
		}
	})

	t.Run("stores the uploaded URL", func(t *testing.T) {
		img := image.NewRGBA(image.Rect(0, 0, 100, 100))
		var buf bytes.Buffer
		if err := png.Encode(&buf, img); err != nil {
			t.Fatal(err)
		}
		payload := base64.StdEncoding.EncodeToString(buf.Bytes())

		updated, err := uc.UpdatePhoto(ctx, user.ID, payload)
		if err != nil {
			t.Fatal(err)
		}
		if !strings.HasPrefix(updated.ProfilePicture, "https://") {
			t.Errorf("expected a stored URL, got %q", updated.ProfilePicture)
		}
	})
}

func TestSetOnboarding(t *testing.T) {
	ctx := context.Background()
	uc := NewUserUsecase(newFakeUserRepo(), newFakeIDP(), &fakeUploader{})

	user, err := uc.Create(ctx, validCreateReq(), "Str0ng!pass", true)
	if err != nil {
		t.Fatal(err)
	}

	updated, err := uc.SetOnboarding(ctx, user.ID, true)
	if err != nil {
		t.Fatal(err)
	}
	if !updated.OnboardingCompleted {
		t.Error("expected onboarding flag set")
	}

	if _, err := uc.SetOnboarding(ctx, "missing", true); !errors.Is(err, apperr.ErrNotFound) {
		t.Errorf("expected not-found, got %v", err)
	}
}
