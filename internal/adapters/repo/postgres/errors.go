package postgres

import (
	"errors"

	"gorm.io/gorm"

	"github.com/avelar/printdesk/internal/domain"
)

// translate maps gorm's translated constraint errors onto the domain
// sentinels so callers never import gorm. Requires gorm.Config.TranslateError.
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return domain.ErrConflict
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return domain.ErrConflict
	case errors.Is(err, gorm.ErrRecordNotFound):
		return domain.ErrNotFound
	default:
		return err
	}
}
