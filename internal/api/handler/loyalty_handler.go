package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/maisonbelle/booking-api/internal/core/ports"
)

// LoyaltyHandler serves the admin loyalty listing.
type LoyaltyHandler struct {
	service ports.LoyaltyService
}

func NewLoyaltyHandler(service ports.LoyaltyService) *LoyaltyHandler {
	return &LoyaltyHandler{service: service}
}

// List handles GET /api/admin/loyalty, descending by total spent with ties broken
// by total bookings.
//
// @Summary      List loyalty records
// @Tags         loyalty
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   loyaltyRecordResponse
// @Failure      401  {object}  errorResponse
// @Router       /admin/loyalty [get]
func (h *LoyaltyHandler) List(c echo.Context) error {
	records, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}

	out := make([]loyaltyRecordResponse, 0, len(records))
	for _, r := range records {
		out = append(out, loyaltyRecordResponse{
			CustomerID:    r.CustomerID,
			CustomerName:  r.CustomerName,
			CustomerEmail: r.CustomerEmail,
			TotalSpent:    r.TotalSpent,
			TotalBookings: r.TotalBookings,
			UpdatedAt:     r.UpdatedAt,
		})
	}
	return c.JSON(http.StatusOK, out)
}
