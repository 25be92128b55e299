package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/maisonbelle/booking-api/internal/core/domain"
	"github.com/maisonbelle/booking-api/internal/core/ports"
)

// BookingHandler handles booking intake, lifecycle mutations, and listings.
type BookingHandler struct {
	service ports.BookingService
}

func NewBookingHandler(service ports.BookingService) *BookingHandler {
	return &BookingHandler{service: service}
}

// Create handles POST /api/bookings. Public intake; an optional bearer token
// links the booking to the customer account.
//
// @Summary      Create a booking
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Param        body  body      createBookingRequest  true  "Booking details"
// @Success      201   {object}  bookingResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /bookings [post]
func (h *BookingHandler) Create(c echo.Context) error {
	var req createBookingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	date, err := combineDateSlot(req.Date, req.Slot)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid date or slot")
	}

	customerID, _ := c.Get("user_id").(string)

	booking, err := h.service.Create(c.Request().Context(), ports.CreateBookingInput{
		CustomerID: customerID,
		Name:       req.Name,
		Email:      req.Email,
		Phone:      req.Phone,
		ServiceID:  req.ServiceID,
		Date:       date,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, toBookingResponse(booking))
}

// Cancel handles PATCH /api/admin/bookings/:id/cancel.
//
// @Summary      Cancel a booking
// @Tags         bookings
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "Booking id"
// @Success      200  {object}  bookingResponse
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /admin/bookings/{id}/cancel [patch]
func (h *BookingHandler) Cancel(c echo.Context) error {
	booking, err := h.service.Cancel(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toBookingResponse(booking))
}

// SetStatus handles PATCH /api/admin/bookings/:id/status/:value.
//
// @Summary      Set booking status
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id     path      string            true   "Booking id"
// @Param        value  path      string            true   "New status"
// @Param        body   body      setStatusRequest  false  "Optional date move"
// @Success      200    {object}  bookingResponse
// @Failure      400    {object}  errorResponse
// @Failure      401    {object}  errorResponse
// @Failure      404    {object}  errorResponse
// @Router       /admin/bookings/{id}/status/{value} [patch]
func (h *BookingHandler) SetStatus(c echo.Context) error {
	var req setStatusRequest
	// The body is optional; an empty or absent body means status only.
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	var datePtr *time.Time
	if req.Date != "" {
		date, err := parseDate(req.Date)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid date")
		}
		datePtr = &date
	}

	booking, err := h.service.SetStatus(c.Request().Context(), ports.SetStatusInput{
		ID:     c.Param("id"),
		Status: c.Param("value"),
		Date:   datePtr,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toBookingResponse(booking))
}

// List handles GET /api/admin/bookings, newest first.
//
// @Summary      List all bookings
// @Tags         bookings
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   bookingResponse
// @Failure      401  {object}  errorResponse
// @Router       /admin/bookings [get]
func (h *BookingHandler) List(c echo.Context) error {
	bookings, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}

	out := make([]bookingResponse, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, toBookingResponse(b))
	}
	return c.JSON(http.StatusOK, out)
}

// Slots handles GET /api/availability?date=YYYY-MM-DD&service_id=...
//
// @Summary      Available slots for a service on a day
// @Tags         bookings
// @Produce      json
// @Param        date        query     string  true  "Day (YYYY-MM-DD)"
// @Param        service_id  query     string  true  "Service id"
// @Success      200  {object}  slotsResponse
// @Failure      400  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /availability [get]
func (h *BookingHandler) Slots(c echo.Context) error {
	dateStr := c.QueryParam("date")
	serviceID := c.QueryParam("service_id")
	if dateStr == "" || serviceID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "date and service_id are required")
	}

	day, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid date")
	}

	slots, err := h.service.AvailableSlots(c.Request().Context(), day, serviceID)
	if err != nil {
		return err
	}

	if slots == nil {
		slots = []string{}
	}
	return c.JSON(http.StatusOK, slotsResponse{Date: dateStr, ServiceID: serviceID, Slots: slots})
}

func toBookingResponse(b *domain.Booking) bookingResponse {
	return bookingResponse{
		ID:          b.ID,
		Reference:   b.Reference,
		CustomerID:  b.CustomerID,
		Contact:     contactResponse{Name: b.Contact.Name, Email: b.Contact.Email, Phone: b.Contact.Phone},
		ServiceID:   b.ServiceID,
		ServiceName: b.ServiceName,
		Price:       b.Price,
		Date:        b.Date,
		Status:      string(b.Status),
		CreatedAt:   b.CreatedAt,
	}
}

// combineDateSlot merges "2006-01-02" and "15:04" into a UTC time.
func combineDateSlot(date, slot string) (time.Time, error) {
	return time.Parse("2006-01-02 15:04", date+" "+slot)
}

// parseDate accepts either a bare day or a full RFC 3339 timestamp.
func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}
