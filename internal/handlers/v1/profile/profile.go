package profile

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/wallet-server/internal/handlers/v1/common"
	"github.com/carson-networks/wallet-server/internal/ledger"
	"github.com/carson-networks/wallet-server/internal/service"
)

// Profile is the API model for the user's public profile.
type Profile struct {
	ID        string `json:"id" doc:"User UUID"`
	Username  string `json:"username"`
	FullName  string `json:"fullName"`
	AvatarURL string `json:"avatarUrl"`
	Website   string `json:"website"`
	UpdatedAt string `json:"updatedAt" doc:"RFC3339 time of the last update"`
}

func newProfile(p ledger.Profile) Profile {
	return Profile{
		ID:        p.ID.String(),
		Username:  p.Username,
		FullName:  p.FullName,
		AvatarURL: p.AvatarURL,
		Website:   p.Website,
		UpdatedAt: p.UpdatedAt.Format(time.RFC3339),
	}
}

type GetProfileInput struct {
	common.Identity
}

type GetProfileOutput struct {
	Body struct {
		Profile *Profile `json:"profile" doc:"Null until the user saves a profile"`
	}
}

type ProfileBody struct {
	Username  string `json:"username,omitempty"`
	FullName  string `json:"fullName,omitempty"`
	AvatarURL string `json:"avatarUrl,omitempty"`
	Website   string `json:"website,omitempty"`
}

type PutProfileInput struct {
	common.Identity
	Body ProfileBody
}

type PutProfileOutput struct {
	Body Profile
}

type profileService interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*ledger.Profile, error)
	SaveProfile(ctx context.Context, userID uuid.UUID, update service.ProfileUpdate) (ledger.Profile, error)
}

// Handler handles GET and PUT /v1/profile.
type Handler struct {
	ProfileService profileService
}

func NewHandler(svc profileService) *Handler {
	return &Handler{ProfileService: svc}
}

func (h *Handler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-profile",
		Method:      http.MethodGet,
		Path:        "/v1/profile",
		Summary:     "Get profile",
		Tags:        []string{"Profile"},
	}, h.get)

	huma.Register(api, huma.Operation{
		OperationID: "put-profile",
		Method:      http.MethodPut,
		Path:        "/v1/profile",
		Summary:     "Save profile",
		Tags:        []string{"Profile"},
	}, h.put)
}

func (h *Handler) get(ctx context.Context, input *GetProfileInput) (*GetProfileOutput, error) {
	userID, err := input.User()
	if err != nil {
		return nil, err
	}
	p, err := h.ProfileService.GetProfile(ctx, userID)
	if err != nil {
		return nil, common.ServiceError(err, "failed to load profile")
	}

	out := &GetProfileOutput{}
	if p != nil {
		resp := newProfile(*p)
		out.Body.Profile = &resp
	}
	return out, nil
}

func (h *Handler) put(ctx context.Context, input *PutProfileInput) (*PutProfileOutput, error) {
	userID, err := input.User()
	if err != nil {
		return nil, err
	}
	p, err := h.ProfileService.SaveProfile(ctx, userID, service.ProfileUpdate{
		Username:  input.Body.Username,
		FullName:  input.Body.FullName,
		AvatarURL: input.Body.AvatarURL,
		Website:   input.Body.Website,
	})
	if err != nil {
		return nil, common.ServiceError(err, "failed to save profile")
	}
	return &PutProfileOutput{Body: newProfile(p)}, nil
}
