// Package http provides the echo-based HTTP adapter for the fulfillment
// workflow. It translates JSON requests into commands and queries and maps
// domain errors onto HTTP status codes.
package http

import (
	"errors"
	"net/http"

	"laundry/internal/core/application/usecases/commands"
	"laundry/internal/core/application/usecases/queries"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server handles HTTP requests for the order fulfillment workflow.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler        commands.CreateOrderCommandHandler
	createStaffHandler        commands.CreateStaffCommandHandler
	advanceOrderStatusHandler commands.AdvanceOrderStatusCommandHandler
	assignStaffHandler        commands.AssignStaffCommandHandler
	detachStaffHandler        commands.DetachStaffCommandHandler
	reviewItemQualityHandler  commands.ReviewItemQualityCommandHandler

	// Query handlers
	getUncompletedOrdersHandler queries.GetUncompletedOrdersQueryHandler
	getAllStaffHandler          queries.GetAllStaffQueryHandler
	getInvoiceHandler           queries.GetInvoiceQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	createStaffHandler commands.CreateStaffCommandHandler,
	advanceOrderStatusHandler commands.AdvanceOrderStatusCommandHandler,
	assignStaffHandler commands.AssignStaffCommandHandler,
	detachStaffHandler commands.DetachStaffCommandHandler,
	reviewItemQualityHandler commands.ReviewItemQualityCommandHandler,
	getUncompletedOrdersHandler queries.GetUncompletedOrdersQueryHandler,
	getAllStaffHandler queries.GetAllStaffQueryHandler,
	getInvoiceHandler queries.GetInvoiceQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:          createOrderHandler,
		createStaffHandler:          createStaffHandler,
		advanceOrderStatusHandler:   advanceOrderStatusHandler,
		assignStaffHandler:          assignStaffHandler,
		detachStaffHandler:          detachStaffHandler,
		reviewItemQualityHandler:    reviewItemQualityHandler,
		getUncompletedOrdersHandler: getUncompletedOrdersHandler,
		getAllStaffHandler:          getAllStaffHandler,
		getInvoiceHandler:           getInvoiceHandler,
	}
}

// RegisterRoutes attaches all API routes to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	api := e.Group("/api/v1")
	api.POST("/orders", s.CreateOrder)
	api.GET("/orders", s.GetOrders)
	api.PATCH("/orders/:id/status", s.AdvanceOrderStatus)
	api.PATCH("/orders/:id/assign", s.AssignStaff)
	api.DELETE("/orders/:id/assign", s.DetachStaff)
	api.PATCH("/orders/:id/item-quality", s.ReviewItemQuality)
	api.GET("/invoice/:id", s.GetInvoice)
	api.POST("/staff", s.CreateStaff)
	api.GET("/staff", s.GetStaff)
}

// ErrorResponse is the JSON body returned for all failed requests.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// OrderItemRequest is one line of a new order.
type OrderItemRequest struct {
	Name           string `json:"name"`
	Quantity       int    `json:"quantity"`
	UnitPriceMinor int64  `json:"unitPriceMinor"`
}

// CreateOrderRequest is the payload for registering a new laundry order.
type CreateOrderRequest struct {
	OrderNumber     string             `json:"orderNumber"`
	CustomerName    string             `json:"customerName"`
	CustomerEmail   string             `json:"customerEmail"`
	CustomerPhone   string             `json:"customerPhone"`
	CustomerAddress string             `json:"customerAddress"`
	Items           []OrderItemRequest `json:"items"`
}

// CreateStaffRequest is the payload for registering a staff member.
type CreateStaffRequest struct {
	Name string `json:"name"`
	Role string `json:"role"`
}

// AdvanceStatusRequest carries the target status for a workflow transition.
type AdvanceStatusRequest struct {
	Status string `json:"status"`
	Note   string `json:"note"`
}

// AssignStaffRequest carries the staff member to put on an order.
type AssignStaffRequest struct {
	StaffID string `json:"staffId"`
}

// ReviewItemRequest carries a quality verdict for a single order item.
type ReviewItemRequest struct {
	ItemIndex int    `json:"itemIndex"`
	Verdict   string `json:"verdict"`
	Reason    string `json:"reason"`
	Reviewer  string `json:"reviewer"`
}

// CreatedResponse returns the server-generated identifier of a new resource.
type CreatedResponse struct {
	ID string `json:"id"`
}

// OrderSummaryResponse is one active order in the workload listing.
type OrderSummaryResponse struct {
	ID           string  `json:"id"`
	OrderNumber  string  `json:"orderNumber"`
	CustomerName string  `json:"customerName"`
	Status       string  `json:"status"`
	StaffID      *string `json:"staffId,omitempty"`
	TotalAmount  string  `json:"totalAmount"`
}

// StaffMemberResponse is one staff member on the roster.
type StaffMemberResponse struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Role           string `json:"role"`
	AssignedOrders int    `json:"assignedOrders"`
}

// InvoiceLineResponse is one priced row of an invoice document.
type InvoiceLineResponse struct {
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	UnitPrice string `json:"unitPrice"`
	LineTotal string `json:"lineTotal"`
}

// InvoiceResponse is the printable invoice document for an order.
type InvoiceResponse struct {
	OrderID         string                `json:"orderId"`
	OrderNumber     string                `json:"orderNumber"`
	CompanyName     string                `json:"companyName"`
	CompanyAddress  string                `json:"companyAddress"`
	CompanyPhone    string                `json:"companyPhone"`
	CompanyEmail    string                `json:"companyEmail"`
	CustomerName    string                `json:"customerName"`
	CustomerEmail   string                `json:"customerEmail"`
	CustomerAddress string                `json:"customerAddress"`
	Lines           []InvoiceLineResponse `json:"lines"`
	Subtotal        string                `json:"subtotal"`
	TaxRate         string                `json:"taxRate"`
	Tax             string                `json:"tax"`
	Discount        string                `json:"discount"`
	Total           string                `json:"total"`
}

// Health handles GET /health - liveness probe.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// CreateOrder handles POST /api/v1/orders - registers a new laundry order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var request CreateOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	items := make([]commands.OrderItemInput, 0, len(request.Items))
	for _, item := range request.Items {
		items = append(items, commands.OrderItemInput{
			Name:           item.Name,
			Quantity:       item.Quantity,
			UnitPriceMinor: item.UnitPriceMinor,
		})
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(
		orderID,
		request.OrderNumber,
		request.CustomerName,
		request.CustomerEmail,
		request.CustomerPhone,
		request.CustomerAddress,
		items,
	)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	if handleErr := s.createOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return writeError(ctx, handleErr)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: orderID.String()})
}

// CreateStaff handles POST /api/v1/staff - registers a new staff member.
func (s *Server) CreateStaff(ctx echo.Context) error {
	var request CreateStaffRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	staffID := kernel.NewUUID()
	cmd, err := commands.NewCreateStaffCommand(staffID, request.Name, request.Role)
	if err != nil {
		return badRequest(ctx, "Invalid staff data: "+err.Error())
	}

	if handleErr := s.createStaffHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return writeError(ctx, handleErr)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: staffID.String()})
}

// AdvanceOrderStatus handles PATCH /api/v1/orders/:id/status - moves an order
// one step forward in the workflow, or cancels it.
func (s *Server) AdvanceOrderStatus(ctx echo.Context) error {
	orderID, err := orderIDParam(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var request AdvanceStatusRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewAdvanceOrderStatusCommand(orderID, request.Status, request.Note)
	if err != nil {
		return badRequest(ctx, "Invalid transition data: "+err.Error())
	}

	if handleErr := s.advanceOrderStatusHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return writeError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AssignStaff handles PATCH /api/v1/orders/:id/assign - puts a staff member
// on an order, detaching the previous holder if there was one.
func (s *Server) AssignStaff(ctx echo.Context) error {
	orderID, err := orderIDParam(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var request AssignStaffRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	staffID, err := kernel.UUIDFromString(request.StaffID)
	if err != nil {
		return badRequest(ctx, "Invalid staff id")
	}

	cmd, err := commands.NewAssignStaffCommand(orderID, staffID)
	if err != nil {
		return badRequest(ctx, "Invalid assignment data: "+err.Error())
	}

	if handleErr := s.assignStaffHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return writeError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DetachStaff handles DELETE /api/v1/orders/:id/assign - removes the staff
// assignment from an order. Detaching an unassigned order succeeds.
func (s *Server) DetachStaff(ctx echo.Context) error {
	orderID, err := orderIDParam(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	cmd, err := commands.NewDetachStaffCommand(orderID)
	if err != nil {
		return badRequest(ctx, "Invalid detach data: "+err.Error())
	}

	if handleErr := s.detachStaffHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return writeError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ReviewItemQuality handles PATCH /api/v1/orders/:id/item-quality - records a
// quality verdict on a single item of a washed order.
func (s *Server) ReviewItemQuality(ctx echo.Context) error {
	orderID, err := orderIDParam(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var request ReviewItemRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewReviewItemQualityCommand(
		orderID, request.ItemIndex, request.Verdict, request.Reason, request.Reviewer,
	)
	if err != nil {
		return badRequest(ctx, "Invalid review data: "+err.Error())
	}

	if handleErr := s.reviewItemQualityHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return writeError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetOrders handles GET /api/v1/orders - retrieves all uncompleted orders.
func (s *Server) GetOrders(ctx echo.Context) error {
	query := queries.NewGetUncompletedOrdersQuery()

	orders, err := s.getUncompletedOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]OrderSummaryResponse, len(orders))
	for i, o := range orders {
		var staffID *string
		if o.StaffID != nil {
			id := o.StaffID.String()
			staffID = &id
		}

		response[i] = OrderSummaryResponse{
			ID:           o.ID.String(),
			OrderNumber:  o.OrderNumber,
			CustomerName: o.CustomerName,
			Status:       o.Status,
			StaffID:      staffID,
			TotalAmount:  o.TotalAmount.String(),
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetStaff handles GET /api/v1/staff - retrieves the staff roster with workloads.
func (s *Server) GetStaff(ctx echo.Context) error {
	query := queries.NewGetAllStaffQuery()

	members, err := s.getAllStaffHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]StaffMemberResponse, len(members))
	for i, member := range members {
		response[i] = StaffMemberResponse{
			ID:             member.ID.String(),
			Name:           member.Name,
			Role:           member.Role,
			AssignedOrders: member.AssignedOrders,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetInvoice handles GET /api/v1/invoice/:id - retrieves the invoice document.
func (s *Server) GetInvoice(ctx echo.Context) error {
	orderID, err := orderIDParam(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	query, err := queries.NewGetInvoiceQuery(orderID)
	if err != nil {
		return badRequest(ctx, "Invalid invoice request: "+err.Error())
	}

	invoice, err := s.getInvoiceHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	lines := make([]InvoiceLineResponse, len(invoice.Lines))
	for i, line := range invoice.Lines {
		lines[i] = InvoiceLineResponse{
			Name:      line.Name,
			Quantity:  line.Quantity,
			UnitPrice: line.UnitPrice.String(),
			LineTotal: line.LineTotal.String(),
		}
	}

	return ctx.JSON(http.StatusOK, InvoiceResponse{
		OrderID:         invoice.OrderID.String(),
		OrderNumber:     invoice.OrderNumber,
		CompanyName:     invoice.Company.Name,
		CompanyAddress:  invoice.Company.Address,
		CompanyPhone:    invoice.Company.Phone,
		CompanyEmail:    invoice.Company.Email,
		CustomerName:    invoice.CustomerName,
		CustomerEmail:   invoice.CustomerEmail,
		CustomerAddress: invoice.CustomerAddress,
		Lines:           lines,
		Subtotal:        invoice.Subtotal.String(),
		TaxRate:         invoice.TaxRate.String(),
		Tax:             invoice.Tax.String(),
		Discount:        invoice.Discount.String(),
		Total:           invoice.Total.String(),
	})
}

// orderIDParam parses the :id path parameter into a kernel UUID.
func orderIDParam(ctx echo.Context) (kernel.UUID, error) {
	return kernel.UUIDFromString(ctx.Param("id"))
}

// badRequest writes a 400 response with the given message.
func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// writeError maps application and domain errors onto HTTP status codes.
// Unknown errors become 500 without leaking internals to the client.
func writeError(ctx echo.Context, err error) error {
	status := http.StatusInternalServerError
	message := "Internal server error"

	switch {
	case errors.Is(err, commands.ErrOrderNotFound),
		errors.Is(err, commands.ErrStaffMemberNotFound),
		errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
		message = err.Error()
	case errors.Is(err, commands.ErrReviewNotAuthorized):
		status = http.StatusForbidden
		message = err.Error()
	case errors.Is(err, order.ErrInvalidTransition),
		errors.Is(err, order.ErrTerminalState),
		errors.Is(err, order.ErrOrderNotAssignable),
		errors.Is(err, order.ErrInvalidQualityState),
		errors.Is(err, commands.ErrStaffRequired),
		errors.Is(err, commands.ErrReviewNotReady),
		errors.Is(err, errs.ErrConcurrentModification):
		status = http.StatusConflict
		message = err.Error()
	case errors.Is(err, order.ErrMissingReason),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		status = http.StatusBadRequest
		message = err.Error()
	}

	return ctx.JSON(status, ErrorResponse{Code: status, Message: message})
}
