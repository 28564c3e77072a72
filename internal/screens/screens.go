// Package screens holds one view-model per app screen. Each is created per activation
// and owns its forms and lists exclusively.
package screens

import (
	"context"

	"highfields/internal/forms"
	"highfields/pkg/types"
)

// API is everything the screens read from and submit to.
type API interface {
	forms.API
	LifeGroups(ctx context.Context) ([]*types.LifeGroup, error)
	Sermons(ctx context.Context) ([]*types.Sermon, error)
}
