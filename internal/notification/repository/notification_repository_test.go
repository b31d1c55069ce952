package repository

import (
	"fmt"
	"testing"

	notifdomain "plek-backend/internal/notification/domain"
)

func makeNotifications(n int) []*notifdomain.Notification {
	out := make([]*notifdomain.Notification, n)
	for i := range out {
		out[i] = &notifdomain.Notification{ID: fmt.Sprintf("n%d", i), UserID: "u1"}
	}
	return out
}

func TestPaginate(t *testing.T) {
	tests := []struct {
		name   string
		total  int
		limit  int
		offset int
		want   int
	}{
		{"full page", 3, 50, 0, 3},
		{"limit cuts the page", 3, 2, 0, 2},
		{"offset skips", 3, 50, 2, 1},
		{"offset past the end", 3, 50, 10, 0},
		{"negative offset", 2, 50, -1, 2},
		{"negative limit", 2, -1, 0, 0},
		{"both negative", 2, -5, -5, 0},
		{"zero limit", 2, 0, 0, 0},
		{"empty input", 0, 50, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := paginate(makeNotifications(tt.total), tt.limit, tt.offset)
			if len(got) != tt.want {
				t.Errorf("expected %d notifications, got %d", tt.want, len(got))
			}
		})
	}
}

func TestPaginatePreservesOrder(t *testing.T) {
	notifications := makeNotifications(5)
	got := paginate(notifications, 2, 1)
	if len(got) != 2 {
		t.Fatalf("expected 2 notifications, got %d", len(got))
	}
	if got[0].ID != "n1" || got[1].ID != "n2" {
		t.Errorf("expected the slice starting at the offset, got %s, %s", got[0].ID, got[1].ID)
	}
}
