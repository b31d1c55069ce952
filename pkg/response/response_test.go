package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"plek-backend/pkg/apperr"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func record(fn func(c *gin.Context)) (*httptest.ResponseRecorder, Envelope) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	fn(c)

	var env Envelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		panic(err)
	}
	return w, env
}

func TestSuccessDerivedFromStatus(t *testing.T) {
	w, env := record(func(c *gin.Context) {
		OK(c, gin.H{"id": "1"}, "done")
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !env.Success {
		t.Error("expected success=true for 200")
	}
	if env.Message != "done" {
		t.Errorf("got message %q", env.Message)
	}

	w, env = record(func(c *gin.Context) {
		NotFound(c, "user not found", "Failed to load user")
	})
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
	if env.Success {
		t.Error("expected success=false for 404")
	}
	if env.Error != "user not found" {
		t.Errorf("got error %q", env.Error)
	}
}

func TestCreated(t *testing.T) {
	w, env := record(func(c *gin.Context) {
		Created(c, gin.H{"id": "abc"}, "created")
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", w.Code)
	}
	if !env.Success {
		t.Error("expected success=true for 201")
	}
}

func TestUnsupportedMedia(t *testing.T) {
	w, env := record(func(c *gin.Context) {
		UnsupportedMedia(c, "Content-Type must be application/json")
	})
	if w.Code != http.StatusUnsupportedMediaType {
		t.Fatalf("expected 415, got %d", w.Code)
	}
	if env.Error != "Unsupported Media Type" {
		t.Errorf("got error %q", env.Error)
	}
}

func TestErrorMapping(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"validation", apperr.Validation("email is required"), http.StatusBadRequest},
		{"not found", apperr.NotFound("no such record"), http.StatusNotFound},
		{"forbidden", apperr.Forbidden("not yours"), http.StatusForbidden},
		{"unknown", errDummy, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, env := record(func(c *gin.Context) {
				Error(c, tt.err, "failed")
			})
			if w.Code != tt.status {
				t.Fatalf("expected %d, got %d", tt.status, w.Code)
			}
			if env.Success {
				t.Error("expected success=false")
			}
		})
	}
}

func TestErrorHidesInternals(t *testing.T) {
	_, env := record(func(c *gin.Context) {
		Error(c, errDummy, "failed")
	})
	if env.Error != "internal server error" {
		t.Errorf("internal detail leaked: %q", env.Error)
	}
}

var errDummy = errSentinel("database connection refused")

type errSentinel string

func (e errSentinel) Error() string { return string(e) }
