package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	request "cemiterio_api/internal/adapter/http/dto/request"
	"cemiterio_api/internal/domain/entities"
	"cemiterio_api/internal/usecase"
	"cemiterio_api/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidPayload = pkg.NewDomainErrorSimple("INVALID_PAYLOAD", "Invalid request payload", http.StatusBadRequest)
	errInvalidQuery   = pkg.NewDomainErrorSimple("INVALID_QUERY", "Invalid query parameters", http.StatusBadRequest)
	errInvalidID      = pkg.NewDomainErrorSimple("INVALID_ID", "Invalid id", http.StatusBadRequest)
)

// mapError translates domain and validation errors into the HTTP error
// contract shared by every resource.
func mapError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidCPF),
		errors.Is(err, usecase.ErrInvalidGravesiteID),
		errors.Is(err, usecase.ErrInvalidDeceasedID),
		errors.Is(err, usecase.ErrInvalidName),
		errors.Is(err, usecase.ErrInvalidDates),
		errors.Is(err, usecase.ErrInvalidStatus),
		errors.Is(err, usecase.ErrInvalidContractTerm),
		errors.Is(err, usecase.ErrInvalidContractValue),
		errors.Is(err, usecase.ErrInvalidDays),
		errors.Is(err, usecase.ErrEmptyPatch),
		errors.Is(err, entities.ErrInvalidCapacity),
		errors.Is(err, request.ErrInvalidDate):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", err.Error(), http.StatusBadRequest)

	case errors.Is(err, entities.ErrGravesiteNotFound):
		return pkg.NewDomainErrorSimple("GRAVESITE_NOT_FOUND", "Gravesite not found", http.StatusNotFound)
	case errors.Is(err, entities.ErrContractNotFound):
		return pkg.NewDomainErrorSimple("CONTRACT_NOT_FOUND", "Contract not found", http.StatusNotFound)
	case errors.Is(err, entities.ErrPlotholderNotFound):
		return pkg.NewDomainErrorSimple("PLOTHOLDER_NOT_FOUND", "Plot-holder not found", http.StatusNotFound)
	case errors.Is(err, entities.ErrDeceasedNotFound):
		return pkg.NewDomainErrorSimple("DECEASED_NOT_FOUND", "Deceased record not found", http.StatusNotFound)

	case errors.Is(err, entities.ErrCapacityExceeded):
		return pkg.NewDomainErrorSimple("CAPACITY_EXCEEDED", "Gravesite capacity exceeded", http.StatusConflict)
	case errors.Is(err, entities.ErrGravesiteFull):
		return pkg.NewDomainErrorSimple("GRAVESITE_FULL", "Gravesite is full", http.StatusConflict)
	case errors.Is(err, entities.ErrDuplicateContract):
		return pkg.NewDomainErrorSimple("CONTRACT_ALREADY_EXISTS", "Contract already exists for this plot-holder and gravesite", http.StatusConflict)
	case errors.Is(err, entities.ErrPlotholderExists):
		return pkg.NewDomainErrorSimple("PLOTHOLDER_ALREADY_EXISTS", "Plot-holder already exists", http.StatusConflict)
	case errors.Is(err, entities.ErrGravesiteInUse):
		return pkg.NewDomainErrorSimple("GRAVESITE_IN_USE", "Gravesite has occupants or contracts", http.StatusConflict)
	case errors.Is(err, entities.ErrPlotholderInUse):
		return pkg.NewDomainErrorSimple("PLOTHOLDER_IN_USE", "Plot-holder has contracts or deceased records", http.StatusConflict)
	case errors.Is(err, entities.ErrCapacityBelowOccupancy):
		return pkg.NewDomainErrorSimple("CAPACITY_BELOW_OCCUPANCY", "Capacity cannot be lower than current occupancy", http.StatusConflict)
	case errors.Is(err, entities.ErrInvalidGravesiteStatus):
		return pkg.NewDomainErrorSimple("INVALID_GRAVESITE_STATUS", "Status is inconsistent with occupancy", http.StatusConflict)
	case errors.Is(err, entities.ErrInvalidTransition):
		return pkg.NewDomainErrorSimple("INVALID_STATUS_TRANSITION", "Invalid contract status transition", http.StatusConflict)
	case errors.Is(err, entities.ErrConcurrentUpdate):
		return pkg.NewDomainErrorSimple("CONCURRENT_UPDATE", "Gravesite was modified concurrently, retry", http.StatusConflict)
	case errors.Is(err, entities.ErrInvariantViolation):
		return pkg.NewDomainErrorSimple("INVARIANT_VIOLATION", "Stored gravesite state is inconsistent", http.StatusConflict)

	case errors.Is(err, entities.ErrNoActiveContract):
		return pkg.NewDomainErrorSimple("NO_ACTIVE_CONTRACT", "Plot-holder has no active contract for this gravesite", http.StatusForbidden)

	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

// respondError writes the mapped error; internal failures are logged with the
// operation that produced them.
func respondError(c *gin.Context, op string, err error) {
	appErr := mapError(err)
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		log.Printf("[http][handler] %s internal error path=%s err=%v", op, c.Request.URL.Path, err)
	}
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

// rejectBind answers a failed bind with base, naming the rejected fields in
// the message when the binder reported them.
func rejectBind(c *gin.Context, base *pkg.AppError, err error) {
	if msg := request.BindErrorMessage(err); msg != "" {
		base = pkg.NewDomainError(base.Code, base.Message+": "+msg, err, base.HTTPStatus)
	}
	abortWith(c, base)
}

func abortWith(c *gin.Context, appErr *pkg.AppError) {
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func parseGravesiteID(c *gin.Context, param string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(param), 10, 64)
	if err != nil || id <= 0 {
		abortWith(c, errInvalidID)
		return 0, false
	}
	return id, true
}
