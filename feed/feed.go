// Package feed assembles the ordered, paginated post listings: global,
// group-scoped, author-scoped and personalized (follow-scoped).
package feed

import (
	"blog/db"
	"blog/models"

	"gorm.io/gorm"
)

const PageSize = 10

// Page is one bounded slice of a feed. Number is 1-indexed and clamped
// to the last available page when over-requested; Posts is empty only
// when TotalPosts is zero.
type Page struct {
	Number     int           `json:"number"`
	TotalPages int           `json:"total_pages"`
	TotalPosts int64         `json:"total_posts"`
	HasNext    bool          `json:"has_next"`
	HasPrev    bool          `json:"has_prev"`
	Posts      []models.Post `json:"posts"`
}

// base must return a fresh query each call: Count and Find cannot share
// one gorm statement.
func paginate(base func() *gorm.DB, pageNumber int) (page Page, err error) {
	total := int64(0)
	if err = base().Count(&total).Error; err != nil {
		return
	}
	totalPages := int((total + PageSize - 1) / PageSize)
	if pageNumber < 1 {
		pageNumber = 1
	}
	if totalPages > 0 && pageNumber > totalPages {
		pageNumber = totalPages
	}
	page = Page{
		Number:     pageNumber,
		TotalPages: totalPages,
		TotalPosts: total,
		HasNext:    pageNumber < totalPages,
		HasPrev:    pageNumber > 1,
		Posts:      []models.Post{},
	}
	if total == 0 {
		return
	}
	err = base().
		Order(models.PostOrder).
		Offset((pageNumber - 1) * PageSize).
		Limit(PageSize).
		Preload("Author").
		Preload("Group").
		Find(&page.Posts).Error
	return
}

// Global returns one page of all posts.
func Global(pageNumber int) (Page, error) {
	return paginate(func() *gorm.DB {
		return db.Instance.Model(&models.Post{})
	}, pageNumber)
}

// Group returns one page of the posts in the group identified by slug.
// An unknown slug yields gorm.ErrRecordNotFound.
func Group(slug string, pageNumber int) (models.Group, Page, error) {
	group, err := models.GroupBySlug(slug)
	if err != nil {
		return models.Group{}, Page{}, err
	}
	page, err := paginate(func() *gorm.DB {
		return db.Instance.Model(&models.Post{}).Where("group_id = ?", group.ID)
	}, pageNumber)
	return group, page, err
}

// Profile returns one page of the author's posts. The author's total
// post count travels as page.TotalPosts.
func Profile(username string, pageNumber int) (models.User, Page, error) {
	author, err := models.UserByUsername(username)
	if err != nil {
		return models.User{}, Page{}, err
	}
	page, err := paginate(func() *gorm.DB {
		return db.Instance.Model(&models.Post{}).Where("author_id = ?", author.ID)
	}, pageNumber)
	return author, page, err
}

// Personalized returns one page of posts by the authors the user
// follows. Zero follows means an empty page, not an error.
func Personalized(userID uint64, pageNumber int) (Page, error) {
	authorIDs, err := models.FollowedAuthorIDs(userID)
	if err != nil {
		return Page{}, err
	}
	if len(authorIDs) == 0 {
		return Page{Number: 1, Posts: []models.Post{}}, nil
	}
	return paginate(func() *gorm.DB {
		return db.Instance.Model(&models.Post{}).Where("author_id IN ?", authorIDs)
	}, pageNumber)
}
