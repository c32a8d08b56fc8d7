package port

//go:generate mockgen -source=config_schema.go -destination=mocks/mock_config_schema.go -package=mock_port

import "github.com/bnema/themeroot/internal/domain/entity"

// ConfigSchemaProvider lists the configuration keys with their metadata.
type ConfigSchemaProvider interface {
	GetSchema() []entity.ConfigKeyInfo
}
