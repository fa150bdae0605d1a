package settings

import "fmt"

// NotificationField selects which part of a notification toggle an update
// changes.
type NotificationField string

const (
	FieldEnabled   NotificationField = "enabled"
	FieldFrequency NotificationField = "frequency"
)

// NotificationUpdate changes one field of one notification kind. Build it
// with SetEnabled or SetFrequency.
type NotificationUpdate struct {
	Kind  NotificationKind
	Field NotificationField

	enabled   bool
	frequency Frequency
}

func SetEnabled(kind NotificationKind, enabled bool) NotificationUpdate {
	return NotificationUpdate{Kind: kind, Field: FieldEnabled, enabled: enabled}
}

func SetFrequency(kind NotificationKind, frequency Frequency) NotificationUpdate {
	return NotificationUpdate{Kind: kind, Field: FieldFrequency, frequency: frequency}
}

// Apply returns a copy of s with the update applied.
func (s Settings) Apply(u NotificationUpdate) (Settings, error) {
	target := s.Notifications.get(u.Kind)
	if target == nil {
		return s, fmt.Errorf("unknown notification kind %q", u.Kind)
	}

	switch u.Field {
	case FieldEnabled:
		target.Enabled = u.enabled
	case FieldFrequency:
		if !u.frequency.Valid() {
			return s, fmt.Errorf("unsupported frequency %q", u.frequency)
		}
		target.Frequency = u.frequency
	default:
		return s, fmt.Errorf("unknown notification field %q", u.Field)
	}
	return s, nil
}
