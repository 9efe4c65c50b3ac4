package repositories

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

// isDuplicateKeyError recognizes a unique-constraint violation across
// the drivers we run against. TranslateError covers most cases; the
// string checks catch drivers that slip through.
func isDuplicateKeyError(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate entry") || // mysql 1062
		strings.Contains(msg, "duplicate key value") // postgres 23505
}

// rowMissing reports whether no row with the given id exists. An UPDATE
// that writes values the row already holds reports zero affected rows
// on mysql, so RowsAffected alone cannot tell a missing row from an
// unchanged one.
func rowMissing(db *gorm.DB, model interface{}, id uint) (bool, error) {
	var count int64
	if err := db.Model(model).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count == 0, nil
}
