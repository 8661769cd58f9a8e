package entity

import "github.com/samber/mo"

// UserDirectory maps Slack user IDs to display names for one invocation
type UserDirectory map[string]string

// Lookup returns the display name for userID, or None when the user is unknown
func (d UserDirectory) Lookup(userID string) mo.Option[string] {
	name, ok := d[userID]
	if !ok {
		return mo.None[string]()
	}
	return mo.Some(name)
}
