package types

// NotificationLevel represents how much notification traffic a project emits
type NotificationLevel string

const (
	NotificationAll       NotificationLevel = "all"
	NotificationImportant NotificationLevel = "important"
	NotificationNone      NotificationLevel = "none"
)

// AllNotificationLevels returns all valid notification levels
func AllNotificationLevels() []NotificationLevel {
	return []NotificationLevel{
		NotificationAll,
		NotificationImportant,
		NotificationNone,
	}
}

// IsValid checks if the notification level is valid
func (l NotificationLevel) IsValid() bool {
	switch l {
	case NotificationAll, NotificationImportant, NotificationNone:
		return true
	default:
		return false
	}
}

// Normalize returns the level, treating empty as NotificationAll
func (l NotificationLevel) Normalize() NotificationLevel {
	if l == "" {
		return NotificationAll
	}
	return l
}

// String returns the string representation of the notification level
func (l NotificationLevel) String() string {
	return string(l)
}
