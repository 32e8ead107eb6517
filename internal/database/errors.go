package database

import (
	"errors"

	"gorm.io/gorm"
)

// IsNotFound checks if the error is a GORM record-not-found error.
func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

// IsDuplicate checks if the error is a duplicate-key violation. Requires
// TranslateError to be enabled on the GORM config, which New does.
func IsDuplicate(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}
