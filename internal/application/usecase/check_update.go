package usecase

import (
	"context"
	"errors"

	"github.com/bnema/themeroot/internal/application/port"
	"github.com/bnema/themeroot/internal/domain/build"
	"github.com/bnema/themeroot/internal/domain/entity"
	"github.com/bnema/themeroot/internal/logging"
)

// CheckUpdateOutput is what the version command reports.
type CheckUpdateOutput struct {
	UpdateAvailable bool
	CurrentVersion  string
	LatestVersion   string
	ReleaseURL      string
}

// CheckUpdateUseCase compares the running build with the latest release.
type CheckUpdateUseCase struct {
	checker   port.UpdateChecker
	buildInfo build.Info
}

// NewCheckUpdateUseCase creates a new update check use case.
func NewCheckUpdateUseCase(checker port.UpdateChecker, buildInfo build.Info) *CheckUpdateUseCase {
	return &CheckUpdateUseCase{checker: checker, buildInfo: buildInfo}
}

// Execute runs the check. Transient failures report no update instead of an error.
func (uc *CheckUpdateUseCase) Execute(ctx context.Context) (*CheckUpdateOutput, error) {
	log := logging.FromContext(ctx)

	info, err := uc.checker.CheckForUpdate(ctx, uc.buildInfo.Version)
	if err != nil {
		if !errors.Is(err, port.ErrUpdateCheckTransient) {
			return nil, err
		}
		log.Debug().Err(err).Msg("update check skipped")
		info = entity.UpToDate(uc.buildInfo.Version)
	}

	log.Debug().
		Str("current", info.CurrentVersion).
		Str("latest", info.LatestVersion).
		Bool("newer", info.IsNewer).
		Msg("update check completed")

	return &CheckUpdateOutput{
		UpdateAvailable: info.IsNewer,
		CurrentVersion:  info.CurrentVersion,
		LatestVersion:   info.LatestVersion,
		ReleaseURL:      info.ReleaseURL,
	}, nil
}
