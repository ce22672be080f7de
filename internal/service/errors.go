package service

import (
	"database/sql"
	"errors"

	"storefront-backend/internal/domain"
)

// notFound translates the driver's "no rows" into the domain taxonomy so
// callers never see database/sql sentinels.
func notFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrNotFound
	}
	return err
}
