package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	request "cemiterio_api/internal/adapter/http/dto/request"
	"cemiterio_api/internal/domain/entities"
	"cemiterio_api/internal/usecase"
)

func TestMapError(t *testing.T) {
	cases := []struct {
		err    error
		status int
		code   string
	}{
		{usecase.ErrInvalidCPF, http.StatusBadRequest, "INVALID_REQUEST"},
		{usecase.ErrInvalidDates, http.StatusBadRequest, "INVALID_REQUEST"},
		{entities.ErrInvalidCapacity, http.StatusBadRequest, "INVALID_REQUEST"},
		{request.ErrInvalidDate, http.StatusBadRequest, "INVALID_REQUEST"},
		{entities.ErrGravesiteNotFound, http.StatusNotFound, "GRAVESITE_NOT_FOUND"},
		{entities.ErrContractNotFound, http.StatusNotFound, "CONTRACT_NOT_FOUND"},
		{entities.ErrPlotholderNotFound, http.StatusNotFound, "PLOTHOLDER_NOT_FOUND"},
		{entities.ErrDeceasedNotFound, http.StatusNotFound, "DECEASED_NOT_FOUND"},
		{entities.ErrCapacityExceeded, http.StatusConflict, "CAPACITY_EXCEEDED"},
		{entities.ErrGravesiteFull, http.StatusConflict, "GRAVESITE_FULL"},
		{entities.ErrDuplicateContract, http.StatusConflict, "CONTRACT_ALREADY_EXISTS"},
		{entities.ErrPlotholderInUse, http.StatusConflict, "PLOTHOLDER_IN_USE"},
		{entities.ErrCapacityBelowOccupancy, http.StatusConflict, "CAPACITY_BELOW_OCCUPANCY"},
		{entities.ErrInvalidTransition, http.StatusConflict, "INVALID_STATUS_TRANSITION"},
		{entities.ErrConcurrentUpdate, http.StatusConflict, "CONCURRENT_UPDATE"},
		{entities.ErrInvariantViolation, http.StatusConflict, "INVARIANT_VIOLATION"},
		{entities.ErrNoActiveContract, http.StatusForbidden, "NO_ACTIVE_CONTRACT"},
		{fmt.Errorf("inter: %w", entities.ErrCapacityExceeded), http.StatusConflict, "CAPACITY_EXCEEDED"},
		{errors.New("connection reset"), http.StatusInternalServerError, "INTERNAL_ERROR"},
	}
	for _, tc := range cases {
		appErr := mapError(tc.err)
		if appErr.HTTPStatus != tc.status || appErr.Code != tc.code {
			t.Fatalf("mapError(%v) = %d %s, want %d %s", tc.err, appErr.HTTPStatus, appErr.Code, tc.status, tc.code)
		}
	}
}

func TestMapError_InternalDetailsHidden(t *testing.T) {
	appErr := mapError(errors.New("pq: password authentication failed"))
	body := appErr.ToHTTPError()
	if body.Message != "An internal error occurred" {
		t.Fatalf("internal detail leaked: %q", body.Message)
	}
}
