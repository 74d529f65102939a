package handlers

import (
	"context"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/svitanok-centre/site/internal/platform/httpx"
	"github.com/svitanok-centre/site/internal/platform/requestctx"
	"github.com/svitanok-centre/site/internal/repositories"
	"github.com/svitanok-centre/site/internal/services"
)

// writeServiceError maps service and repository failures onto the JSON error
// envelope. Validation sentinels become 400s, repository categories map to
// 404/409/503, everything else is a 500.
func writeServiceError(ctx context.Context, w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, services.ErrTitleRequired),
		errors.Is(err, services.ErrDateRequired),
		errors.Is(err, services.ErrCategoryRequired),
		errors.Is(err, services.ErrDateConflict),
		errors.Is(err, services.ErrNameRequired),
		errors.Is(err, services.ErrEmailInvalid),
		errors.Is(err, services.ErrBodyRequired),
		errors.Is(err, services.ErrUnsupportedImageType):
		httpx.WriteError(ctx, w, httpx.NewError("invalid_request", err.Error(), http.StatusBadRequest))
		return
	}

	var repoErr repositories.RepositoryError
	if errors.As(err, &repoErr) {
		switch {
		case repoErr.IsNotFound():
			httpx.WriteError(ctx, w, httpx.NewError("not_found", "document not found", http.StatusNotFound))
			return
		case repoErr.IsConflict():
			httpx.WriteError(ctx, w, httpx.NewError("conflict", "document conflict", http.StatusConflict))
			return
		case repoErr.IsUnavailable():
			httpx.WriteError(ctx, w, httpx.NewError("unavailable", "document store unavailable", http.StatusServiceUnavailable))
			return
		}
	}

	requestctx.Logger(ctx).Error("request failed", zap.Error(err))
	httpx.WriteError(ctx, w, httpx.NewError("internal", "internal error", http.StatusInternalServerError))
}
