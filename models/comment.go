package models

import "blog/db"

type Comment struct {
	ID        uint64 `gorm:"primaryKey" json:"id"`
	CreatedAt int64  `gorm:"index" json:"created_at"`
	UpdatedAt int64  `json:"-"`
	Text      string `gorm:"type:text" json:"text"`
	AuthorID  uint64 `json:"author_id"`
	Author    User   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"author"`
	PostID    uint64 `gorm:"index" json:"post_id"`
	Post      Post   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
}

func CommentCreate(authorID, postID uint64, text string) (cm Comment, err error) {
	cm.AuthorID = authorID
	cm.PostID = postID
	cm.Text = text
	return cm, db.Instance.Create(&cm).Error
}

func CommentsForPost(postID uint64) (comments []Comment, err error) {
	comments = []Comment{}
	err = db.Instance.Preload("Author").
		Where("post_id = ?", postID).
		Order("created_at DESC, id DESC").
		Find(&comments).Error
	return
}
