// Package handler defines the HTTP surface over the allocation
// engine: availability search, booking confirmation and moves,
// group-possibility management, meal-period resolution and catalog
// browsing. Handlers bind input, call the engine and translate its
// structured errors to HTTP codes; they hold no allocation logic.
package handler

import (
    "errors"
    "net/http"
    "strconv"
    "time"

    "github.com/labstack/echo/v4"

    "github.com/iliyamo/restaurant-table-reservation/internal/allocation"
)

// pathID parses the :id path parameter as a positive uint64.
func pathID(c echo.Context) (uint64, error) {
    id, err := strconv.ParseUint(c.Param("id"), 10, 64)
    if err != nil || id == 0 {
        return 0, errors.New("invalid id")
    }
    return id, nil
}

// respondEngineError maps an engine failure to an HTTP response.
// Engine errors carry a kind and, for business conflicts, a stable
// code the UI branches on; anything else is a storage failure and
// becomes a 500.
func respondEngineError(c echo.Context, err error) error {
    if e, ok := allocation.As(err); ok {
        status := http.StatusInternalServerError
        switch e.Kind {
        case allocation.KindInvalid:
            status = http.StatusBadRequest
        case allocation.KindNotFound:
            status = http.StatusNotFound
        case allocation.KindConflict, allocation.KindDuplicate:
            status = http.StatusConflict
        }
        body := echo.Map{"error": e.Message}
        if e.Code != "" {
            body["code"] = e.Code
        }
        return c.JSON(status, body)
    }
    return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
}

// parseWindow builds an outlet-local window from a calendar date
// and two "15:04" clock times. The caller has already resolved the
// outlet timezone, so the values compose into naive local times.
func parseWindow(date, startTime, endTime string) (allocation.Window, error) {
    day, err := time.Parse("2006-01-02", date)
    if err != nil {
        return allocation.Window{}, errors.New("invalid date, expected YYYY-MM-DD")
    }
    start, err := allocation.ParseTimeOfDay(startTime)
    if err != nil {
        return allocation.Window{}, errors.New("invalid start_time, expected HH:MM")
    }
    end, err := allocation.ParseTimeOfDay(endTime)
    if err != nil {
        return allocation.Window{}, errors.New("invalid end_time, expected HH:MM")
    }
    return allocation.Window{
        Start: day.Add(time.Duration(start) * time.Minute),
        End:   day.Add(time.Duration(end) * time.Minute),
    }, nil
}
