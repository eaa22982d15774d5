package handler

import (
    "net/http"

    "github.com/labstack/echo/v4"
)

// CreatePossibility handles POST /v1/group-tables/:id/possibilities.
// The body lists the member outlet tables in join order. A second
// possibility with the same member set under the group table,
// however ordered, is rejected with 409 and code
// POSSIBILITY_ALREADY_EXISTS.
func (h *AllocationHandler) CreatePossibility(c echo.Context) error {
    groupTableID, err := pathID(c)
    if err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid group table id"})
    }
    var body struct {
        OutletTableIDs []uint64 `json:"outlet_table_ids"`
    }
    if err := c.Bind(&body); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
    }

    possibility, err := h.Engine.CreateGroupPossibility(c.Request().Context(), groupTableID, body.OutletTableIDs)
    if err != nil {
        return respondEngineError(c, err)
    }
    return c.JSON(http.StatusCreated, echo.Map{
        "possibility_id":    possibility.ID,
        "group_table_id":    possibility.GroupTableID,
        "possibility_index": possibility.PossibilityIndex,
        "outlet_table_ids":  body.OutletTableIDs,
    })
}

// DeleteGroupTable handles DELETE /v1/group-tables/:id. The group
// table and everything under it (sequence rows, possibility member
// links, possibilities) are removed leaf-first inside one
// transaction. Returns 204 on success and 404 when the definition
// does not exist.
func (h *AllocationHandler) DeleteGroupTable(c echo.Context) error {
    groupTableID, err := pathID(c)
    if err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid group table id"})
    }
    if err := h.Engine.DeleteGroupTable(c.Request().Context(), groupTableID); err != nil {
        return respondEngineError(c, err)
    }
    return c.NoContent(http.StatusNoContent)
}
