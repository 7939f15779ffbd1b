package adaptor

import (
	"errors"
	"net/http"

	"catalog-admin/internal/catalogerr"
	"catalog-admin/internal/usecase"
	"catalog-admin/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Movie          *MovieHandler
	Genre          *GenreHandler
	MaturityRating *MaturityRatingHandler
	Series         *SeriesHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Movie:          NewMovieHandler(service.Movie, log),
		Genre:          NewGenreHandler(service.Genre, log),
		MaturityRating: NewMaturityRatingHandler(service.MaturityRating, log),
		Series:         NewSeriesHandler(service.Series, log),
	}
}

// handleServiceError maps the catalogerr taxonomy onto HTTP statuses.
// The message goes to the client verbatim, the admin UI shows it in a
// notification.
func handleServiceError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	var notFound *catalogerr.NotFoundError
	var validation *catalogerr.ValidationError
	var reference *catalogerr.ReferenceError
	var unavailable *catalogerr.StoreUnavailableError

	switch {
	case errors.As(err, &notFound):
		log.Warn(operation+" failed - not found",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseNotFound(w, err.Error())

	case errors.As(err, &validation):
		log.Warn(operation+" validation failed",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBadRequest(w, err.Error(), validation.Errors)

	case errors.As(err, &reference):
		log.Warn(operation+" failed - bad reference",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseUnprocessable(w, err.Error(), nil)

	case errors.As(err, &unavailable):
		log.Error(operation+" failed - store unavailable",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseServiceUnavailable(w, err.Error())

	default:
		log.Error("Failed to "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
