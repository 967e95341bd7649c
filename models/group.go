package models

import "blog/db"

type Group struct {
	ID          uint64 `gorm:"primaryKey" json:"id"`
	CreatedAt   int64  `json:"-"`
	UpdatedAt   int64  `json:"-"`
	Slug        string `gorm:"type:varchar(100);index:uniq_slug,unique" json:"slug"`
	Title       string `gorm:"type:varchar(200)" json:"title"`
	Description string `gorm:"type:text" json:"description"`
}

func GroupCreate(slug, title, description string) (g Group, err error) {
	g.Slug = slug
	g.Title = title
	g.Description = description
	return g, db.Instance.Create(&g).Error
}

func GroupBySlug(slug string) (g Group, err error) {
	err = db.Instance.First(&g, "slug = ?", slug).Error
	return
}

// Delete removes the group. Its posts survive with the group reference
// cleared; done here explicitly instead of relying on FK enforcement
// being switched on (SQLite has it off by default).
func (g *Group) Delete() error {
	err := db.Instance.Model(&Post{}).Where("group_id = ?", g.ID).Update("group_id", nil).Error
	if err != nil {
		return err
	}
	return db.Instance.Delete(g).Error
}
