package models

import (
	"blog/db"
	"blog/utils"
)

type User struct {
	ID        uint64 `gorm:"primaryKey" json:"id"`
	CreatedAt int64  `json:"-"`
	UpdatedAt int64  `json:"-"`
	Username  string `gorm:"type:varchar(150);index:uniq_username,unique" json:"username"`
	Name      string `gorm:"type:varchar(100)" json:"name"`
	Password  string `gorm:"type:varchar(128)" json:"-"`
	PassSalt  string `gorm:"type:varchar(200)" json:"-"`
}

const saltSize = 60

func UserCreate(username, name, plainTextPassword string) (u User, err error) {
	u.Username = username
	u.Name = name
	u.PassSalt = utils.RandSalt(saltSize)
	u.Password = utils.Sha512String(plainTextPassword + u.PassSalt)
	return u, db.Instance.Create(&u).Error
}

func (u *User) SetPassword(plainTextPassword string) {
	u.PassSalt = utils.RandSalt(saltSize)
	u.Password = utils.Sha512String(plainTextPassword + u.PassSalt)
}

func UserLogin(username, plainTextPassword string) (u User, success bool) {
	result := db.Instance.First(&u, "username = ?", username)
	if result.Error != nil {
		return User{}, false
	}
	if u.Password != utils.Sha512String(plainTextPassword+u.PassSalt) {
		return User{}, false
	}
	return u, true
}

func UserByUsername(username string) (u User, err error) {
	err = db.Instance.First(&u, "username = ?", username).Error
	return
}

// PostCount returns how many posts the user has authored.
func (u *User) PostCount() int64 {
	count := int64(0)
	if db.Instance.Model(&Post{}).Where("author_id = ?", u.ID).Count(&count).Error != nil {
		return 0
	}
	return count
}
