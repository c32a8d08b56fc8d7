package usecase

import (
	"context"
	"fmt"
	"sort"

	"github.com/bnema/themeroot/internal/domain/entity"
	"github.com/bnema/themeroot/internal/logging"
)

// CheckBuildConfigInput names the authoritative profile among all known ones.
type CheckBuildConfigInput struct {
	Active   string
	Profiles map[string]entity.BuildProfile
}

// CheckBuildConfigOutput reports how the other profiles diverge from the
// authoritative one. Duplicates are flagged, never merged.
type CheckBuildConfigOutput struct {
	Active      entity.BuildProfile
	Duplicates  []string
	Divergences []entity.ProfileDivergence
}

// HasConflicts reports whether any duplicate profile diverges.
func (o *CheckBuildConfigOutput) HasConflicts() bool {
	return len(o.Divergences) > 0
}

// CheckBuildConfigUseCase compares stylesheet build profiles.
type CheckBuildConfigUseCase struct{}

// NewCheckBuildConfigUseCase creates a new build config check use case.
func NewCheckBuildConfigUseCase() *CheckBuildConfigUseCase {
	return &CheckBuildConfigUseCase{}
}

// Execute compares every profile with the active one.
func (uc *CheckBuildConfigUseCase) Execute(ctx context.Context, input CheckBuildConfigInput) (*CheckBuildConfigOutput, error) {
	log := logging.FromContext(ctx)

	active, ok := input.Profiles[input.Active]
	if !ok {
		return nil, fmt.Errorf("active build profile %q is not defined", input.Active)
	}
	active.Name = input.Active

	names := make([]string, 0, len(input.Profiles))
	for name := range input.Profiles {
		if name != input.Active {
			names = append(names, name)
		}
	}
	sort.Strings(names)

	out := &CheckBuildConfigOutput{Active: active, Duplicates: names}
	for _, name := range names {
		other := input.Profiles[name]
		other.Name = name
		out.Divergences = append(out.Divergences, active.Diverge(other)...)
	}

	if out.HasConflicts() {
		log.Warn().
			Str("active", input.Active).
			Strs("duplicates", names).
			Int("divergences", len(out.Divergences)).
			Msg("build profiles diverge; only the active profile is authoritative")
	}
	return out, nil
}
