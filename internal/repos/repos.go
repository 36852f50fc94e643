package repos

import "gorm.io/gorm"

// Every repo method accepts an optional transaction handle; nil falls back
// to the repo's own connection.
func conn(db, tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return db
}
