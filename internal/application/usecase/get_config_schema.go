package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/bnema/themeroot/internal/application/port"
	"github.com/bnema/themeroot/internal/domain/entity"
)

// GetConfigSchemaUseCase lists configuration keys for documentation.
type GetConfigSchemaUseCase struct {
	provider port.ConfigSchemaProvider
}

// NewGetConfigSchemaUseCase creates a new GetConfigSchemaUseCase.
func NewGetConfigSchemaUseCase(provider port.ConfigSchemaProvider) *GetConfigSchemaUseCase {
	return &GetConfigSchemaUseCase{provider: provider}
}

// GetConfigSchemaInput optionally restricts the listing to one section.
type GetConfigSchemaInput struct {
	// Section matches case-insensitively; empty lists everything.
	Section string
}

// GetConfigSchemaOutput holds the keys in provider order and the sections
// in first-seen order.
type GetConfigSchemaOutput struct {
	Keys     []entity.ConfigKeyInfo
	Sections []string
}

// Execute retrieves the configuration keys.
func (uc *GetConfigSchemaUseCase) Execute(_ context.Context, input GetConfigSchemaInput) (*GetConfigSchemaOutput, error) {
	out := &GetConfigSchemaOutput{}
	seen := make(map[string]bool)

	for _, k := range uc.provider.GetSchema() {
		if !seen[k.Section] {
			seen[k.Section] = true
			out.Sections = append(out.Sections, k.Section)
		}
		if input.Section != "" && !strings.EqualFold(k.Section, input.Section) {
			continue
		}
		out.Keys = append(out.Keys, k)
	}

	if input.Section != "" && len(out.Keys) == 0 {
		return nil, fmt.Errorf("unknown config section %q (known: %s)", input.Section, strings.Join(out.Sections, ", "))
	}
	return out, nil
}
