package db

import (
	"gorm.io/gorm"
)

// Paginate applies LIMIT/OFFSET for 1-based pages. Non-positive sizes disable paging.
func Paginate(page, pageSize int) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if pageSize <= 0 {
			return db
		}
		if page < 1 {
			page = 1
		}
		return db.Limit(pageSize).Offset((page - 1) * pageSize)
	}
}
