package settings

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/wallet-server/internal/handlers/v1/common"
	"github.com/carson-networks/wallet-server/internal/money"
	"github.com/carson-networks/wallet-server/internal/settings"
)

type Notification struct {
	Enabled   bool   `json:"enabled"`
	Frequency string `json:"frequency" enum:"daily,weekly,monthly"`
}

type Notifications struct {
	BillReminders Notification `json:"billReminders"`
	LowBalance    Notification `json:"lowBalance"`
	WeeklyReport  Notification `json:"weeklyReport"`
}

// Settings is the API model for the per-user settings document.
type Settings struct {
	Currency      string        `json:"currency" enum:"CLP,USD"`
	DefaultCardID string        `json:"defaultCardId,omitempty" doc:"Card preselected on new forms"`
	Notifications Notifications `json:"notifications"`
}

func fromSettings(s settings.Settings) Settings {
	n := func(v settings.NotificationSetting) Notification {
		return Notification{Enabled: v.Enabled, Frequency: string(v.Frequency)}
	}
	return Settings{
		Currency:      string(s.Currency),
		DefaultCardID: s.DefaultCardID,
		Notifications: Notifications{
			BillReminders: n(s.Notifications.BillReminders),
			LowBalance:    n(s.Notifications.LowBalance),
			WeeklyReport:  n(s.Notifications.WeeklyReport),
		},
	}
}

func (s Settings) toSettings() settings.Settings {
	n := func(v Notification) settings.NotificationSetting {
		return settings.NotificationSetting{Enabled: v.Enabled, Frequency: settings.Frequency(v.Frequency)}
	}
	return settings.Settings{
		Currency:      money.Currency(s.Currency),
		DefaultCardID: s.DefaultCardID,
		Notifications: settings.Notifications{
			BillReminders: n(s.Notifications.BillReminders),
			LowBalance:    n(s.Notifications.LowBalance),
			WeeklyReport:  n(s.Notifications.WeeklyReport),
		},
	}
}

type GetSettingsInput struct {
	common.Identity
}

type PutSettingsInput struct {
	common.Identity
	Body Settings
}

// NotificationUpdateBody changes one field of one notification toggle.
// Exactly one of enabled or frequency must be set.
type NotificationUpdateBody struct {
	Kind      string `json:"kind" enum:"billReminders,lowBalance,weeklyReport"`
	Enabled   *bool  `json:"enabled,omitempty"`
	Frequency string `json:"frequency,omitempty" enum:"daily,weekly,monthly"`
}

type PatchNotificationInput struct {
	common.Identity
	Body NotificationUpdateBody
}

type SettingsOutput struct {
	Body Settings
}

type settingsService interface {
	Get(ctx context.Context, userID uuid.UUID) (settings.Settings, error)
	Save(ctx context.Context, userID uuid.UUID, next settings.Settings) (settings.Settings, error)
	UpdateNotification(ctx context.Context, userID uuid.UUID, update settings.NotificationUpdate) (settings.Settings, error)
}

// Handler handles the /v1/settings endpoints.
type Handler struct {
	SettingsService settingsService
}

func NewHandler(svc settingsService) *Handler {
	return &Handler{SettingsService: svc}
}

func (h *Handler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-settings",
		Method:      http.MethodGet,
		Path:        "/v1/settings",
		Summary:     "Get settings",
		Description: "Returns the user's settings. Anonymous callers get the defaults.",
		Tags:        []string{"Settings"},
	}, h.get)

	huma.Register(api, huma.Operation{
		OperationID: "put-settings",
		Method:      http.MethodPut,
		Path:        "/v1/settings",
		Summary:     "Replace settings",
		Tags:        []string{"Settings"},
	}, h.put)

	huma.Register(api, huma.Operation{
		OperationID: "patch-notification",
		Method:      http.MethodPatch,
		Path:        "/v1/settings/notifications",
		Summary:     "Update a notification toggle",
		Description: "Changes either the enabled flag or the frequency of one notification kind.",
		Tags:        []string{"Settings"},
	}, h.patchNotification)
}

func (h *Handler) get(ctx context.Context, input *GetSettingsInput) (*SettingsOutput, error) {
	userID, err := input.User()
	if err != nil {
		return nil, err
	}
	s, err := h.SettingsService.Get(ctx, userID)
	if err != nil {
		return nil, common.ServiceError(err, "failed to load settings")
	}
	return &SettingsOutput{Body: fromSettings(s)}, nil
}

func (h *Handler) put(ctx context.Context, input *PutSettingsInput) (*SettingsOutput, error) {
	userID, err := input.User()
	if err != nil {
		return nil, err
	}
	s, err := h.SettingsService.Save(ctx, userID, input.Body.toSettings())
	if err != nil {
		return nil, common.ServiceError(err, "failed to save settings")
	}
	return &SettingsOutput{Body: fromSettings(s)}, nil
}

// parseNotificationUpdate builds the update described by the body.
func parseNotificationUpdate(body NotificationUpdateBody) (settings.NotificationUpdate, error) {
	kind := settings.NotificationKind(body.Kind)
	switch {
	case body.Enabled != nil && body.Frequency != "":
		return settings.NotificationUpdate{}, huma.NewError(http.StatusBadRequest, "set either enabled or frequency, not both")
	case body.Enabled != nil:
		return settings.SetEnabled(kind, *body.Enabled), nil
	case body.Frequency != "":
		return settings.SetFrequency(kind, settings.Frequency(body.Frequency)), nil
	}
	return settings.NotificationUpdate{}, huma.NewError(http.StatusBadRequest, "enabled or frequency is required")
}

func (h *Handler) patchNotification(ctx context.Context, input *PatchNotificationInput) (*SettingsOutput, error) {
	userID, err := input.User()
	if err != nil {
		return nil, err
	}
	update, err := parseNotificationUpdate(input.Body)
	if err != nil {
		return nil, err
	}
	s, err := h.SettingsService.UpdateNotification(ctx, userID, update)
	if err != nil {
		return nil, common.ServiceError(err, "failed to save settings")
	}
	return &SettingsOutput{Body: fromSettings(s)}, nil
}
