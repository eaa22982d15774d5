package handler

import (
    "net/http"
    "time"

    "github.com/labstack/echo/v4"

    "github.com/iliyamo/restaurant-table-reservation/internal/allocation"
)

// AllocationHandler exposes the allocation engine's operations over
// HTTP. Authentication and role checks happen in middleware; the
// engine itself never sees the caller's identity.
type AllocationHandler struct {
    Engine *allocation.Engine
}

// NewAllocationHandler constructs an AllocationHandler. The engine
// must be non-nil.
func NewAllocationHandler(engine *allocation.Engine) *AllocationHandler {
    if engine == nil {
        panic("nil engine passed to NewAllocationHandler")
    }
    return &AllocationHandler{Engine: engine}
}

// FindAvailability handles POST /v1/outlets/:id/availability. The
// body names the party size, the requested window and optional
// seating-type/section filters. On success it returns either the
// best-fitting single table or the ordered list of feasible table
// combinations; when nothing fits it returns 409 with code
// BOOKING_TIMESLOTS_FULL.
func (h *AllocationHandler) FindAvailability(c echo.Context) error {
    outletID, err := pathID(c)
    if err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid outlet id"})
    }
    var body struct {
        PartySize     uint32  `json:"party_size"`
        Date          string  `json:"date"`
        StartTime     string  `json:"start_time"`
        EndTime       string  `json:"end_time"`
        SeatingTypeID *uint64 `json:"seating_type_id"`
        SectionID     *uint64 `json:"section_id"`
        Ticketing     bool    `json:"ticketing"`
    }
    if err := c.Bind(&body); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
    }
    window, err := parseWindow(body.Date, body.StartTime, body.EndTime)
    if err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
    }

    result, err := h.Engine.FindAvailability(c.Request().Context(), allocation.AvailabilityRequest{
        OutletID:      outletID,
        PartySize:     body.PartySize,
        Window:        window,
        SeatingTypeID: body.SeatingTypeID,
        SectionID:     body.SectionID,
        Ticketing:     body.Ticketing,
    })
    if err != nil {
        return respondEngineError(c, err)
    }
    return c.JSON(http.StatusOK, result)
}

// ResolveMealPeriod handles GET /v1/outlets/:id/meal-period with
// ?date=YYYY-MM-DD&time=HH:MM. A null meal_period in the response
// means the outlet is closed at that time; that is not an error.
func (h *AllocationHandler) ResolveMealPeriod(c echo.Context) error {
    outletID, err := pathID(c)
    if err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid outlet id"})
    }
    day, err := time.Parse("2006-01-02", c.QueryParam("date"))
    if err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid date, expected YYYY-MM-DD"})
    }
    tod, err := allocation.ParseTimeOfDay(c.QueryParam("time"))
    if err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid time, expected HH:MM"})
    }

    section, err := h.Engine.ResolveMealPeriod(c.Request().Context(), outletID, day, tod)
    if err != nil {
        return respondEngineError(c, err)
    }
    return c.JSON(http.StatusOK, echo.Map{"meal_period": section})
}
