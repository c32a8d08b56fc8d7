package port

import (
	"context"
	"errors"

	"github.com/bnema/themeroot/internal/domain/entity"
)

//go:generate mockgen -destination=mocks/mock_updater.go -package=mock_port github.com/bnema/themeroot/internal/application/port UpdateChecker

// ErrUpdateCheckTransient marks failures worth ignoring, such as rate limits or timeouts.
var ErrUpdateCheckTransient = errors.New("update check transient failure")

// UpdateChecker looks up the latest published release.
type UpdateChecker interface {
	CheckForUpdate(ctx context.Context, currentVersion string) (*entity.UpdateInfo, error)
}
