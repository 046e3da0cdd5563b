package commands

import (
	"commerce-core/internal/infra"
	"commerce-core/internal/pkg/errs"
)

// translateInfraErr keeps the error taxonomy 1:1: NOT_FOUND becomes the
// caller's sentinel, lock timeouts stay retryable, everything else is a
// database failure with the cause preserved.
func translateInfraErr(err error, notFound error) error {
	switch {
	case err == nil:
		return nil
	case infra.IsKind(err, infra.KindNotFound):
		return errs.Mark(err, notFound)
	case infra.IsKind(err, infra.KindLockTimeout):
		return errs.Mark(err, errs.ErrLockContention)
	default:
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
}
