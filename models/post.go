package models

import "blog/db"

// Feed ordering for posts everywhere: newest first, identity breaks
// same-second ties so insertion order is reversed deterministically.
const PostOrder = "created_at DESC, id DESC"

type Post struct {
	ID        uint64  `gorm:"primaryKey" json:"id"`
	CreatedAt int64   `gorm:"index:posts_order,priority:1" json:"created_at"`
	UpdatedAt int64   `json:"-"`
	Text      string  `gorm:"type:text" json:"text"`
	AuthorID  uint64  `gorm:"index" json:"author_id"`
	Author    User    `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"author"`
	GroupID   *uint64 `gorm:"index" json:"group_id"`
	Group     *Group  `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"group,omitempty"`
	Image     string  `gorm:"type:varchar(300)" json:"image,omitempty"`
}

func PostCreate(authorID uint64, text string, groupID *uint64, image string) (p Post, err error) {
	p.AuthorID = authorID
	p.Text = text
	p.GroupID = groupID
	p.Image = image
	return p, db.Instance.Create(&p).Error
}

func PostByID(id uint64) (p Post, err error) {
	err = db.Instance.Preload("Author").Preload("Group").First(&p, id).Error
	return
}

func (p *Post) Save() error {
	return db.Instance.Save(p).Error
}

// Delete removes the post and all its comments.
func (p *Post) Delete() error {
	if err := db.Instance.Where("post_id = ?", p.ID).Delete(&Comment{}).Error; err != nil {
		return err
	}
	return db.Instance.Delete(p).Error
}
