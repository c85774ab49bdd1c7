// Package http exposes the admin API over HTTP.
// Handlers stay thin: they parse input, dispatch to command/query handlers
// and translate domain errors into status codes. All business rules live in
// the application layer.
package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"orderadmin/internal/core/application/usecases/commands"
	"orderadmin/internal/core/application/usecases/queries"
	"orderadmin/internal/core/domain/model/kernel"
	"orderadmin/internal/core/domain/model/order"
	"orderadmin/internal/core/domain/model/payment"
	"orderadmin/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Pinger verifies connectivity to a backing service for the health endpoint.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	changeOrderStatusHandler commands.ChangeOrderStatusCommandHandler
	updatePaymentHandler     commands.UpdatePaymentCommandHandler

	// Query handlers
	getOrderTransitionsHandler queries.GetOrderTransitionsQueryHandler
	getOrdersHandler           queries.GetOrdersQueryHandler
	getOrderDetailsHandler     queries.GetOrderDetailsQueryHandler
	getOrderItemsHandler       queries.GetOrderItemsQueryHandler
	getDashboardSummaryHandler queries.GetDashboardSummaryQueryHandler
	getCustomerDetailsHandler  queries.GetCustomerDetailsQueryHandler
	getPaymentDetailsHandler   queries.GetPaymentDetailsQueryHandler

	db Pinger
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	changeOrderStatusHandler commands.ChangeOrderStatusCommandHandler,
	updatePaymentHandler commands.UpdatePaymentCommandHandler,
	getOrderTransitionsHandler queries.GetOrderTransitionsQueryHandler,
	getOrdersHandler queries.GetOrdersQueryHandler,
	getOrderDetailsHandler queries.GetOrderDetailsQueryHandler,
	getOrderItemsHandler queries.GetOrderItemsQueryHandler,
	getDashboardSummaryHandler queries.GetDashboardSummaryQueryHandler,
	getCustomerDetailsHandler queries.GetCustomerDetailsQueryHandler,
	getPaymentDetailsHandler queries.GetPaymentDetailsQueryHandler,
	db Pinger,
) *Server {
	return &Server{
		changeOrderStatusHandler:   changeOrderStatusHandler,
		updatePaymentHandler:       updatePaymentHandler,
		getOrderTransitionsHandler: getOrderTransitionsHandler,
		getOrdersHandler:           getOrdersHandler,
		getOrderDetailsHandler:     getOrderDetailsHandler,
		getOrderItemsHandler:       getOrderItemsHandler,
		getDashboardSummaryHandler: getDashboardSummaryHandler,
		getCustomerDetailsHandler:  getCustomerDetailsHandler,
		getPaymentDetailsHandler:   getPaymentDetailsHandler,
		db:                         db,
	}
}

// RegisterRoutes mounts all API endpoints on the echo instance.
// The health endpoint stays outside the authenticated group so load balancers
// can probe it without credentials.
func (s *Server) RegisterRoutes(e *echo.Echo, authMiddleware echo.MiddlewareFunc) {
	e.GET("/health", s.GetHealth)

	api := e.Group("/api/v1")
	if authMiddleware != nil {
		api.Use(authMiddleware)
	}

	api.GET("/dashboard", s.GetDashboard)
	api.GET("/orders", s.GetOrders)
	api.GET("/orders/:id", s.GetOrderDetails)
	api.GET("/orders/:id/status", s.GetOrderStatus)
	api.POST("/orders/:id/status", s.UpdateOrderStatus)
	api.GET("/orders/:id/items", s.GetOrderItems)
	api.GET("/orders/:id/payment", s.GetPaymentDetails)
	api.POST("/orders/:id/payment", s.UpdatePayment)
	api.GET("/customers/:id", s.GetCustomerDetails)
}

type errorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// writeError maps domain errors onto HTTP status codes:
// missing objects are 404, rejected input (including rejected transitions)
// is 400, everything else is an opaque 500.
func writeError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, errorResponse{Error: err.Error()})
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return ctx.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	default:
		return ctx.JSON(http.StatusInternalServerError, errorResponse{Error: "internal server error"})
	}
}

// parseIDParam reads a UUID path parameter. A malformed value is a client
// error, so it is wrapped for the 400 mapping in writeError.
func parseIDParam(ctx echo.Context) (kernel.UUID, error) {
	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause("id", err)
	}
	return id, nil
}

// GetHealth handles GET /health - verifies database connectivity.
func (s *Server) GetHealth(ctx echo.Context) error {
	if err := s.db.Ping(ctx.Request().Context()); err != nil {
		return ctx.JSON(http.StatusServiceUnavailable, map[string]any{
			"status": "unhealthy",
			"error":  err.Error(),
		})
	}

	return ctx.JSON(http.StatusOK, map[string]any{"status": "ok"})
}

type orderStatusResponse struct {
	Success           bool     `json:"success"`
	CurrentStatus     string   `json:"current_status"`
	AvailableStatuses []string `json:"available_statuses"`
	AllStatuses       []string `json:"all_statuses"`
}

// GetOrderStatus handles GET /api/v1/orders/:id/status - returns the order's
// current status and the transitions available from it.
func (s *Server) GetOrderStatus(ctx echo.Context) error {
	id, err := parseIDParam(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetOrderTransitionsQuery(id)
	if err != nil {
		return writeError(ctx, err)
	}

	result, err := s.getOrderTransitionsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderStatusResponse{
		Success:           true,
		CurrentStatus:     result.CurrentStatus,
		AvailableStatuses: result.AvailableStatuses,
		AllStatuses:       result.AllStatuses,
	})
}

type updateOrderStatusRequest struct {
	Status string `json:"status"`
	Notes  string `json:"notes"`
}

type updateOrderStatusResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	NewStatus string `json:"new_status"`
}

// UpdateOrderStatus handles POST /api/v1/orders/:id/status - applies a status
// transition to the order.
func (s *Server) UpdateOrderStatus(ctx echo.Context) error {
	id, err := parseIDParam(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	var req updateOrderStatusRequest
	if err = ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request body"})
	}

	target, err := order.StatusFromString(req.Status)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewChangeOrderStatusCommand(id, target, req.Notes)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.changeOrderStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, updateOrderStatusResponse{
		Success:   true,
		Message:   fmt.Sprintf("order status updated to %s", target),
		NewStatus: target.String(),
	})
}

type orderRow struct {
	ID            string     `json:"id"`
	CustomerID    string     `json:"customer_id"`
	CustomerName  string     `json:"customer_name"`
	CustomerPhone string     `json:"customer_phone"`
	TotalAmount   float64    `json:"total_amount"`
	PaymentMode   string     `json:"payment_mode"`
	Status        string     `json:"status"`
	OrderDate     time.Time  `json:"order_date"`
	DeliveryDate  *time.Time `json:"delivery_date,omitempty"`
	Notes         string     `json:"notes"`
	PaymentStatus string     `json:"payment_status,omitempty"`
	TransactionID string     `json:"transaction_id,omitempty"`
}

func toOrderRow(o queries.GetOrdersQueryResponse) orderRow {
	return orderRow{
		ID:            o.ID.String(),
		CustomerID:    o.CustomerID.String(),
		CustomerName:  o.CustomerName,
		CustomerPhone: o.CustomerPhone,
		TotalAmount:   o.TotalAmount,
		PaymentMode:   o.PaymentMode,
		Status:        o.Status,
		OrderDate:     o.OrderDate,
		DeliveryDate:  o.DeliveryDate,
		Notes:         o.Notes,
		PaymentStatus: o.PaymentStatus,
		TransactionID: o.TransactionID,
	}
}

type ordersResponse struct {
	Success bool       `json:"success"`
	Filter  string     `json:"filter"`
	Orders  []orderRow `json:"orders"`
}

// GetOrders handles GET /api/v1/orders - returns the filtered orders list.
// The filter query parameter accepts all, today, pending, delivered,
// cancelled and cod; omitting it returns everything.
func (s *Server) GetOrders(ctx echo.Context) error {
	filter, err := queries.OrdersFilterFromString(ctx.QueryParam("filter"))
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetOrdersQuery(filter)
	if err != nil {
		return writeError(ctx, err)
	}

	orders, err := s.getOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	rows := make([]orderRow, len(orders))
	for i, o := range orders {
		rows[i] = toOrderRow(o)
	}

	return ctx.JSON(http.StatusOK, ordersResponse{
		Success: true,
		Filter:  filter.String(),
		Orders:  rows,
	})
}

type orderItemRow struct {
	ID          string  `json:"id"`
	Type        string  `json:"type"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	PhotoURL    string  `json:"photo_url"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
	Total       float64 `json:"total"`
}

func toOrderItemRows(items []queries.OrderItemResponse) []orderItemRow {
	rows := make([]orderItemRow, len(items))
	for i, item := range items {
		rows[i] = orderItemRow{
			ID:          item.ID.String(),
			Type:        item.Type,
			Name:        item.Name,
			Description: item.Description,
			PhotoURL:    item.PhotoURL,
			Quantity:    item.Quantity,
			Price:       item.Price,
			Total:       item.Total,
		}
	}
	return rows
}

type paymentDetails struct {
	ID            string     `json:"id"`
	OrderID       string     `json:"order_id"`
	Amount        float64    `json:"amount"`
	PaymentMode   string     `json:"payment_mode"`
	PaymentStatus string     `json:"payment_status"`
	TransactionID string     `json:"transaction_id,omitempty"`
	PaymentDate   *time.Time `json:"payment_date,omitempty"`
}

func toPaymentDetails(p queries.GetPaymentDetailsQueryResponse) paymentDetails {
	return paymentDetails{
		ID:            p.ID.String(),
		OrderID:       p.OrderID.String(),
		Amount:        p.Amount,
		PaymentMode:   p.PaymentMode,
		PaymentStatus: p.PaymentStatus,
		TransactionID: p.TransactionID,
		PaymentDate:   p.PaymentDate,
	}
}

type orderDetailsResponse struct {
	Success bool            `json:"success"`
	Order   orderRow        `json:"order"`
	Payment *paymentDetails `json:"payment,omitempty"`
	Items   []orderItemRow  `json:"items"`
}

// GetOrderDetails handles GET /api/v1/orders/:id - returns the order together
// with its payment record and line items.
func (s *Server) GetOrderDetails(ctx echo.Context) error {
	id, err := parseIDParam(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetOrderDetailsQuery(id)
	if err != nil {
		return writeError(ctx, err)
	}

	result, err := s.getOrderDetailsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	resp := orderDetailsResponse{
		Success: true,
		Order:   toOrderRow(result.Order),
		Items:   toOrderItemRows(result.Items),
	}
	if result.Payment != nil {
		details := toPaymentDetails(*result.Payment)
		resp.Payment = &details
	}

	return ctx.JSON(http.StatusOK, resp)
}

type orderItemsResponse struct {
	Success bool           `json:"success"`
	Items   []orderItemRow `json:"items"`
}

// GetOrderItems handles GET /api/v1/orders/:id/items - returns the order's
// line items with resolved photo URLs.
func (s *Server) GetOrderItems(ctx echo.Context) error {
	id, err := parseIDParam(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetOrderItemsQuery(id)
	if err != nil {
		return writeError(ctx, err)
	}

	items, err := s.getOrderItemsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderItemsResponse{
		Success: true,
		Items:   toOrderItemRows(items),
	})
}

type paymentResponse struct {
	Success bool           `json:"success"`
	Payment paymentDetails `json:"payment"`
}

// GetPaymentDetails handles GET /api/v1/orders/:id/payment - returns the
// order's payment record.
func (s *Server) GetPaymentDetails(ctx echo.Context) error {
	id, err := parseIDParam(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetPaymentDetailsQuery(id)
	if err != nil {
		return writeError(ctx, err)
	}

	result, err := s.getPaymentDetailsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, paymentResponse{
		Success: true,
		Payment: toPaymentDetails(result),
	})
}

type updatePaymentRequest struct {
	PaymentStatus string `json:"payment_status"`
	TransactionID string `json:"transaction_id"`
}

type updatePaymentResponse struct {
	Success       bool   `json:"success"`
	Message       string `json:"message"`
	PaymentStatus string `json:"payment_status"`
}

// UpdatePayment handles POST /api/v1/orders/:id/payment - upserts the order's
// payment record.
func (s *Server) UpdatePayment(ctx echo.Context) error {
	id, err := parseIDParam(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	var req updatePaymentRequest
	if err = ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request body"})
	}

	status, err := payment.StatusFromString(req.PaymentStatus)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewUpdatePaymentCommand(id, status, req.TransactionID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.updatePaymentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, updatePaymentResponse{
		Success:       true,
		Message:       fmt.Sprintf("payment updated to %s", status),
		PaymentStatus: status.String(),
	})
}

type dashboardResponse struct {
	Success                bool             `json:"success"`
	TodayOrdersCount       int64            `json:"today_orders_count"`
	TodayRevenue           float64          `json:"today_revenue"`
	PendingCount           int64            `json:"pending_count"`
	DeliveredLastWeekCount int64            `json:"delivered_last_week_count"`
	RecentOrders           []recentOrderRow `json:"recent_orders"`
}

type recentOrderRow struct {
	ID           string    `json:"id"`
	CustomerName string    `json:"customer_name"`
	TotalAmount  float64   `json:"total_amount"`
	Status       string    `json:"status"`
	OrderDate    time.Time `json:"order_date"`
}

// GetDashboard handles GET /api/v1/dashboard - returns the summary numbers.
func (s *Server) GetDashboard(ctx echo.Context) error {
	query := queries.NewGetDashboardSummaryQuery()

	result, err := s.getDashboardSummaryHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	recent := make([]recentOrderRow, len(result.RecentOrders))
	for i, r := range result.RecentOrders {
		recent[i] = recentOrderRow{
			ID:           r.ID.String(),
			CustomerName: r.CustomerName,
			TotalAmount:  r.TotalAmount,
			Status:       r.Status,
			OrderDate:    r.OrderDate,
		}
	}

	return ctx.JSON(http.StatusOK, dashboardResponse{
		Success:                true,
		TodayOrdersCount:       result.TodayOrdersCount,
		TodayRevenue:           result.TodayRevenue,
		PendingCount:           result.PendingCount,
		DeliveredLastWeekCount: result.DeliveredLastWeekCount,
		RecentOrders:           recent,
	})
}

type customerAddress struct {
	Line1            string `json:"line1"`
	Line2            string `json:"line2,omitempty"`
	Landmark         string `json:"landmark,omitempty"`
	City             string `json:"city"`
	State            string `json:"state"`
	Pincode          string `json:"pincode"`
	AssembledAddress string `json:"assembled_address"`
	MapsLink         string `json:"maps_link,omitempty"`
}

type customerDetailsResponse struct {
	Success         bool             `json:"success"`
	ID              string           `json:"id"`
	Name            string           `json:"name"`
	Phone           string           `json:"phone"`
	Email           string           `json:"email"`
	ProfilePhotoURL string           `json:"profile_photo_url"`
	Address         *customerAddress `json:"address,omitempty"`
}

// GetCustomerDetails handles GET /api/v1/customers/:id - returns the customer
// card with the delivery address and maps link.
func (s *Server) GetCustomerDetails(ctx echo.Context) error {
	id, err := parseIDParam(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetCustomerDetailsQuery(id)
	if err != nil {
		return writeError(ctx, err)
	}

	result, err := s.getCustomerDetailsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	resp := customerDetailsResponse{
		Success:         true,
		ID:              result.ID.String(),
		Name:            result.Name,
		Phone:           result.Phone,
		Email:           result.Email,
		ProfilePhotoURL: result.ProfilePhotoURL,
	}
	if result.Address != nil {
		resp.Address = &customerAddress{
			Line1:            result.Address.Line1,
			Line2:            result.Address.Line2,
			Landmark:         result.Address.Landmark,
			City:             result.Address.City,
			State:            result.Address.State,
			Pincode:          result.Address.Pincode,
			AssembledAddress: result.Address.AssembledAddress,
			MapsLink:         result.Address.MapsLink,
		}
	}

	return ctx.JSON(http.StatusOK, resp)
}
