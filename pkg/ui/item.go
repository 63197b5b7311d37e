package ui

import (
	"fmt"

	"github.com/KJ-GM/responsive-csx/pkg/profile"
)

// ProfileItem wraps profile.Profile to implement list.Item
type ProfileItem struct {
	Profile profile.Profile
}

func (i ProfileItem) Title() string {
	return i.Profile.Name
}

func (i ProfileItem) Description() string {
	return fmt.Sprintf("%gx%g @%gx • %s",
		i.Profile.Window.Width, i.Profile.Window.Height,
		i.Profile.PixelDensity, i.Profile.Platform)
}

func (i ProfileItem) FilterValue() string {
	return i.Profile.Name + " " + i.Profile.Platform
}
