package display

import (
	"fmt"

	"highfields/pkg/types"
)

// Icon names a glyph from the app's icon set.
type Icon string

const (
	IconPeople       Icon = "people"
	IconCafe         Icon = "cafe"
	IconMusicalNotes Icon = "musical-notes"
	IconPeopleCircle Icon = "people-circle"
	IconHandLeft     Icon = "hand-left"
	IconHeart        Icon = "heart"
	IconBook         Icon = "book"
	IconColorPalette Icon = "color-palette"
	IconHappy        Icon = "happy"
	IconWoman        Icon = "woman"
	IconMan          Icon = "man"
)

var groupIcons = map[types.LifeGroupKind]Icon{
	types.LifeGroupKindStudy:       IconBook,
	types.LifeGroupKindFamily:      IconHeart,
	types.LifeGroupKindYoungAdults: IconPeople,
	types.LifeGroupKindWomen:       IconWoman,
	types.LifeGroupKindMen:         IconMan,
}

// GroupIcon maps a life-group kind to its card icon. The zero kind shows as a
// study group; any other kind outside the enum is an error.
func GroupIcon(kind types.LifeGroupKind) (Icon, error) {
	kind, err := types.ParseLifeGroupKind(string(kind))
	if err != nil {
		return "", fmt.Errorf("no icon for group: %w", err)
	}
	return groupIcons[kind], nil
}
