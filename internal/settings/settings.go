package settings

import (
	"fmt"

	"github.com/gofrs/uuid/v5"
	"gopkg.in/yaml.v3"

	"github.com/carson-networks/wallet-server/internal/money"
)

type Frequency string

const (
	Daily   Frequency = "daily"
	Weekly  Frequency = "weekly"
	Monthly Frequency = "monthly"
)

func (f Frequency) Valid() bool {
	return f == Daily || f == Weekly || f == Monthly
}

// NotificationKind names one of the notification toggles.
type NotificationKind string

const (
	BillReminders NotificationKind = "billReminders"
	LowBalance    NotificationKind = "lowBalance"
	WeeklyReport  NotificationKind = "weeklyReport"
)

// defaultFrequency is used for new settings and when migrating a legacy
// boolean toggle.
func (k NotificationKind) defaultFrequency() Frequency {
	if k == LowBalance {
		return Daily
	}
	return Weekly
}

type NotificationSetting struct {
	Enabled   bool      `yaml:"enabled" json:"enabled"`
	Frequency Frequency `yaml:"frequency" json:"frequency"`
}

type Notifications struct {
	BillReminders NotificationSetting `yaml:"billReminders" json:"billReminders"`
	LowBalance    NotificationSetting `yaml:"lowBalance" json:"lowBalance"`
	WeeklyReport  NotificationSetting `yaml:"weeklyReport" json:"weeklyReport"`

	legacy bool
}

// Settings is the per-user session configuration. It lives beside the
// ledger data, not in it.
type Settings struct {
	Currency      money.Currency `yaml:"currency" json:"currency"`
	DefaultCardID string         `yaml:"defaultCardId,omitempty" json:"defaultCardId,omitempty"`
	Notifications Notifications  `yaml:"notifications" json:"notifications"`
}

func Defaults() Settings {
	return Settings{
		Currency: money.CLP,
		Notifications: Notifications{
			BillReminders: NotificationSetting{Enabled: true, Frequency: BillReminders.defaultFrequency()},
			LowBalance:    NotificationSetting{Enabled: true, Frequency: LowBalance.defaultFrequency()},
			WeeklyReport:  NotificationSetting{Enabled: false, Frequency: WeeklyReport.defaultFrequency()},
		},
	}
}

// DefaultCard returns the preselected card id, or uuid.Nil.
func (s Settings) DefaultCard() uuid.UUID {
	return uuid.FromStringOrNil(s.DefaultCardID)
}

// Migrated reports whether the document was in the legacy boolean shape
// when it was decoded.
func (s Settings) Migrated() bool {
	return s.Notifications.legacy
}

func (s Settings) Validate() error {
	if !s.Currency.Valid() {
		return fmt.Errorf("unsupported currency %q", s.Currency)
	}
	if s.DefaultCardID != "" {
		if _, err := uuid.FromString(s.DefaultCardID); err != nil {
			return fmt.Errorf("invalid default card: %w", err)
		}
	}
	for _, kind := range []NotificationKind{BillReminders, LowBalance, WeeklyReport} {
		if f := s.Notifications.get(kind).Frequency; !f.Valid() {
			return fmt.Errorf("%s: unsupported frequency %q", kind, f)
		}
	}
	return nil
}

func (n *Notifications) get(kind NotificationKind) *NotificationSetting {
	switch kind {
	case BillReminders:
		return &n.BillReminders
	case LowBalance:
		return &n.LowBalance
	case WeeklyReport:
		return &n.WeeklyReport
	}
	return nil
}

// UnmarshalYAML accepts both the current {enabled, frequency} shape and the
// legacy shape where every toggle was a plain boolean. Missing kinds keep
// their defaults.
func (n *Notifications) UnmarshalYAML(value *yaml.Node) error {
	raw := map[string]yaml.Node{}
	if err := value.Decode(&raw); err != nil {
		return err
	}

	defaults := Defaults().Notifications
	*n = defaults

	for _, kind := range []NotificationKind{BillReminders, LowBalance, WeeklyReport} {
		node, ok := raw[string(kind)]
		if !ok {
			continue
		}
		target := n.get(kind)

		if node.Kind == yaml.ScalarNode {
			var enabled bool
			if err := node.Decode(&enabled); err != nil {
				return fmt.Errorf("%s: %w", kind, err)
			}
			*target = NotificationSetting{Enabled: enabled, Frequency: kind.defaultFrequency()}
			n.legacy = true
			continue
		}

		setting := *target
		if err := node.Decode(&setting); err != nil {
			return fmt.Errorf("%s: %w", kind, err)
		}
		if setting.Frequency == "" {
			setting.Frequency = kind.defaultFrequency()
		}
		*target = setting
	}
	return nil
}

// Parse decodes a stored settings document. JSON documents written by older
// clients are valid YAML and decode the same way.
func Parse(data []byte) (Settings, error) {
	s := Defaults()
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Settings{}, fmt.Errorf("failed to parse settings: %w", err)
	}
	if s.Currency == "" {
		s.Currency = money.CLP
	}
	return s, nil
}
