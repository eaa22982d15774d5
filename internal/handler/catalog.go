package handler

import (
    "net/http"

    "github.com/labstack/echo/v4"

    "github.com/iliyamo/restaurant-table-reservation/internal/allocation"
    "github.com/iliyamo/restaurant-table-reservation/internal/repository"
)

// CatalogHandler exposes read-only seating catalog browsing for
// staff UIs: outlet tables with capacities and sections. These are
// the only routes behind the response cache; booking state is never
// served from it.
type CatalogHandler struct {
    Tables   *repository.OutletTableRepo
    Sections *repository.SectionRepo
}

// NewCatalogHandler constructs a CatalogHandler. All dependencies
// must be non-nil.
func NewCatalogHandler(tables *repository.OutletTableRepo, sections *repository.SectionRepo) *CatalogHandler {
    if tables == nil || sections == nil {
        panic("nil repository passed to NewCatalogHandler")
    }
    return &CatalogHandler{Tables: tables, Sections: sections}
}

// ListTables handles GET /v1/outlets/:id/tables. The optional
// ?private=true query includes private-room placements, which are
// otherwise hidden.
func (h *CatalogHandler) ListTables(c echo.Context) error {
    outletID, err := pathID(c)
    if err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid outlet id"})
    }
    includePrivate := c.QueryParam("private") == "true"

    tables, err := h.Tables.List(c.Request().Context(), allocation.TableFilter{
        OutletID:       outletID,
        IncludePrivate: includePrivate,
    })
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
    }

    out := make([]echo.Map, 0, len(tables))
    for _, t := range tables {
        out = append(out, echo.Map{
            "outlet_table_id": t.ID,
            "table_name":      t.TableName,
            "capacity":        t.Capacity,
            "seating_type_id": t.SeatingTypeID,
            "section_id":      t.SectionID,
            "is_private":      t.IsPrivate,
            "pos_x":           t.PosX,
            "pos_y":           t.PosY,
        })
    }
    return c.JSON(http.StatusOK, echo.Map{"tables": out})
}

// ListSections handles GET /v1/outlets/:id/sections.
func (h *CatalogHandler) ListSections(c echo.Context) error {
    outletID, err := pathID(c)
    if err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid outlet id"})
    }
    sections, err := h.Sections.ListByOutlet(c.Request().Context(), outletID)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
    }

    out := make([]echo.Map, 0, len(sections))
    for _, s := range sections {
        out = append(out, echo.Map{
            "section_id": s.ID,
            "name":       s.Name,
            "is_private": s.IsPrivate,
            "min_pax":    s.MinPax,
            "max_pax":    s.MaxPax,
        })
    }
    return c.JSON(http.StatusOK, echo.Map{"sections": out})
}
