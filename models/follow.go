package models

import (
	"errors"

	"blog/db"

	"gorm.io/gorm"
)

var (
	ErrSelfFollow       = errors.New("cannot follow yourself")
	ErrAlreadyFollowing = errors.New("already following this author")
)

// Follow is a directed edge from a reader to an author. At most one
// edge may exist per (user, author) pair.
type Follow struct {
	ID        uint64 `gorm:"primaryKey" json:"id"`
	CreatedAt int64  `gorm:"index" json:"created_at"`
	UserID    uint64 `gorm:"index:uniq_user_author,priority:1,unique" json:"user_id"`
	User      User   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	AuthorID  uint64 `gorm:"index:uniq_user_author,priority:2,unique" json:"author_id"`
	Author    User   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
}

// FollowAuthor creates the (user, author) edge. The unique index is the
// arbiter between concurrent calls for the same pair: the loser gets
// ErrAlreadyFollowing, never a second row.
func FollowAuthor(userID, authorID uint64) (Follow, error) {
	if userID == authorID {
		return Follow{}, ErrSelfFollow
	}
	if IsFollowing(userID, authorID) {
		return Follow{}, ErrAlreadyFollowing
	}
	edge := Follow{UserID: userID, AuthorID: authorID}
	err := db.Instance.Create(&edge).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return Follow{}, ErrAlreadyFollowing
	}
	return edge, err
}

// UnfollowAuthor removes the edge if present. Removing an edge that
// does not exist is not an error.
func UnfollowAuthor(userID, authorID uint64) error {
	return db.Instance.
		Where("user_id = ? AND author_id = ?", userID, authorID).
		Delete(&Follow{}).Error
}

func IsFollowing(userID, authorID uint64) bool {
	count := int64(0)
	err := db.Instance.Model(&Follow{}).
		Where("user_id = ? AND author_id = ?", userID, authorID).
		Count(&count).Error
	return err == nil && count > 0
}

// FollowedAuthorIDs returns the set of authors the user follows.
func FollowedAuthorIDs(userID uint64) (ids []uint64, err error) {
	ids = []uint64{}
	err = db.Instance.Model(&Follow{}).
		Where("user_id = ?", userID).
		Pluck("author_id", &ids).Error
	return
}
