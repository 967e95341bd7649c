package auth

import (
	"errors"

	"blog/models"
)

var ErrUnauthenticated = errors.New("authentication required")

// CanEdit reports whether the actor owns the post. Everyone else gets
// redirected to the post detail view by the caller, not an error page.
func CanEdit(actor *models.User, post *models.Post) bool {
	return actor != nil && actor.ID != 0 && actor.ID == post.AuthorID
}

// CanFollow validates a follow attempt before the graph is touched.
func CanFollow(actor *models.User, authorID uint64) error {
	if actor == nil || actor.ID == 0 {
		return ErrUnauthenticated
	}
	if actor.ID == authorID {
		return models.ErrSelfFollow
	}
	return nil
}
