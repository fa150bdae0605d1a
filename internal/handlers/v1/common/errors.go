package common

import (
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/wallet-server/internal/ledger"
	"github.com/carson-networks/wallet-server/internal/service"
)

// ServiceError maps a service error onto an HTTP error. fallback is the
// message for anything unexpected.
func ServiceError(err error, fallback string) error {
	var (
		validation   *ledger.ValidationError
		confirmation *service.ConfirmationRequiredError
		persistence  *service.PersistenceError
	)

	switch {
	case errors.As(err, &validation):
		detail := &huma.ErrorDetail{Message: validation.Message}
		if validation.Field != "" {
			detail.Location = "body." + validation.Field
		}
		return huma.NewError(http.StatusBadRequest, validation.Message, detail)
	case errors.Is(err, service.ErrUnauthenticated):
		return huma.NewError(http.StatusUnauthorized, err.Error())
	case errors.Is(err, service.ErrNotFound):
		return huma.NewError(http.StatusNotFound, err.Error())
	case errors.As(err, &confirmation):
		return &huma.ErrorModel{
			Status: http.StatusPreconditionRequired,
			Title:  confirmation.Confirmation.Title,
			Detail: confirmation.Confirmation.Message,
		}
	case errors.As(err, &persistence):
		return huma.NewError(http.StatusInternalServerError, persistence.Message, persistence.Err)
	}

	var statusErr huma.StatusError
	if errors.As(err, &statusErr) {
		return statusErr
	}
	return huma.NewError(http.StatusInternalServerError, fallback, err)
}
