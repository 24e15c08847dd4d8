package user

import (
	"net/http"
	"time"

	"github.com/ghpham11a/xp-scheduler-sub000/internal/pkg/apperror"
)

var ErrNotFound = apperror.New(http.StatusNotFound, "user not found")

// User is a participant in the scheduler. There is no account or credential
// attached; clients pick a "current user" locally.
type User struct {
	ID          string
	Name        string
	Email       string
	AvatarColor string
	CreatedAt   time.Time
}
