package delivery

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	authdelivery "plek-backend/internal/auth/delivery"
	userdomain "plek-backend/internal/user/domain"
	userdto "plek-backend/internal/user/dto"
	"plek-backend/pkg/apperr"
	"plek-backend/pkg/response"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fakeUserUsecase struct {
	user    *userdomain.User
	updates int
	deletes int
}

func (f *fakeUserUsecase) GetAll(_ context.Context) ([]*userdomain.User, error) {
	return []*userdomain.User{f.user}, nil
}

func (f *fakeUserUsecase) GetByUID(_ context.Context, uid string) (*userdomain.User, error) {
	if f.user != nil && f.user.ID == uid {
		return f.user, nil
	}
	return nil, nil
}

func (f *fakeUserUsecase) GetByEmail(_ context.Context, _ string) (*userdomain.User, error) {
	return f.user, nil
}

func (f *fakeUserUsecase) Create(_ context.Context, req *userdto.CreateUserRequest, _ string, _ bool) (*userdomain.User, error) {
	if req.Email == "" {
		return nil, apperr.Validation("missing required fields: email")
	}
	return &userdomain.User{ID: "new-uid", Email: req.Email}, nil
}

func (f *fakeUserUsecase) Update(_ context.Context, _ string, _ *userdto.UpdateUserRequest) (*userdomain.User, error) {
	f.updates++
	return f.user, nil
}

func (f *fakeUserUsecase) Delete(_ context.Context, _ string) error {
	f.deletes++
	return nil
}

func (f *fakeUserUsecase) SetOnboarding(_ context.Context, _ string, _ bool) (*userdomain.User, error) {
	return f.user, nil
}

func (f *fakeUserUsecase) UpdatePhoto(_ context.Context, _, _ string) (*userdomain.User, error) {
	return f.user, nil
}

// asUser injects an authenticated identity the way the real gate does.
func asUser(uid string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(authdelivery.ContextUserID, uid)
		c.Next()
	}
}

func newUserRouter(uc *fakeUserUsecase, callerUID string) *gin.Engine {
	h := NewUserHandler(uc)
	r := gin.New()
	g := r.Group("/v1/users", asUser(callerUID))
	g.GET("", h.GetUsers)
	g.GET("/:uid", h.GetUser)
	g.POST("", h.CreateUser)
	g.PUT("/:uid", h.UpdateUser)
	g.DELETE("/:uid", h.DeleteUser)
	g.POST("/:uid/onboarding", h.SetOnboarding)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string) (*httptest.ResponseRecorder, response.Envelope) {
	t.Helper()
	w := httptest.NewRecorder()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	r.ServeHTTP(w, req)

	var env response.Envelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("invalid envelope: %v", err)
	}
	return w, env
}

func TestUpdateUserOwnerGuard(t *testing.T) {
	uc := &fakeUserUsecase{user: &userdomain.User{ID: "owner", Email: "o@example.com"}}
	r := newUserRouter(uc, "someone-else")

	w, env := doJSON(t, r, http.MethodPut, "/v1/users/owner", `{"first_name":"X"}`)
	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", w.Code)
	}
	if env.Success {
		t.Error("expected success=false")
	}
	if uc.updates != 0 {
		t.Error("usecase must not run for a foreign caller")
	}
}

func TestDeleteUserOwnerGuard(t *testing.T) {
	uc := &fakeUserUsecase{user: &userdomain.User{ID: "owner"}}
	r := newUserRouter(uc, "someone-else")

	w, _ := doJSON(t, r, http.MethodDelete, "/v1/users/owner", "")
	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", w.Code)
	}
	if uc.deletes != 0 {
		t.Error("usecase must not run for a foreign caller")
	}
}

func TestUpdateUserAsOwner(t *testing.T) {
	uc := &fakeUserUsecase{user: &userdomain.User{ID: "owner", Email: "o@example.com"}}
	r := newUserRouter(uc, "owner")

	w, env := doJSON(t, r, http.MethodPut, "/v1/users/owner", `{"first_name":"X"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !env.Success {
		t.Error("expected success=true")
	}
	if uc.updates != 1 {
		t.Errorf("expected 1 update, got %d", uc.updates)
	}
}

func TestGetUser(t *testing.T) {
	uc := &fakeUserUsecase{user: &userdomain.User{ID: "owner", Email: "o@example.com"}}

	t.Run("found", func(t *testing.T) {
		w, env := doJSON(t, newUserRouter(uc, "owner"), http.MethodGet, "/v1/users/owner", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if !env.Success {
			t.Error("expected success=true")
		}
	})

	t.Run("missing", func(t *testing.T) {
		w, env := doJSON(t, newUserRouter(uc, "owner"), http.MethodGet, "/v1/users/ghost", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
		if env.Error == "" {
			t.Error("expected an error message")
		}
	})
}

func TestCreateUserValidation(t *testing.T) {
	uc := &fakeUserUsecase{}
	w, env := doJSON(t, newUserRouter(uc, "caller"), http.MethodPost, "/v1/users", `{}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	if env.Success {
		t.Error("expected success=false")
	}
}

func TestOnboardingRequiresFlag(t *testing.T) {
	uc := &fakeUserUsecase{user: &userdomain.User{ID: "owner"}}
	w, _ := doJSON(t, newUserRouter(uc, "owner"), http.MethodPost, "/v1/users/owner/onboarding", `{}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}
