// Package http implements the console's inbound HTTP surface on echo.
// All responses use the envelope shape of success flag, message, and data.
package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"partnerconsole/internal/core/application/usecases/commands"
	"partnerconsole/internal/core/application/usecases/queries"
	"partnerconsole/internal/core/domain/model/kernel"
	"partnerconsole/internal/core/domain/model/order"
	"partnerconsole/internal/core/domain/services"
	"partnerconsole/internal/core/ports"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	sessionRepo   ports.SessionRepository
	accessGuard   services.AccessGuard
	maxProfileAge time.Duration
	logger        zerolog.Logger

	// Command handlers
	signInHandler            commands.SignInCommandHandler
	signOutHandler           commands.SignOutCommandHandler
	restoreSessionHandler    commands.RestoreSessionCommandHandler
	acceptOrderHandler       commands.AcceptOrderCommandHandler
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler

	// Query handlers
	listOrdersHandler       queries.ListOrdersQueryHandler
	getOrderHandler         queries.GetOrderQueryHandler
	getDashboardHandler     queries.GetPartnerDashboardQueryHandler
	getShippingLabelHandler queries.GetShippingLabelQueryHandler
}

// NewServer creates the console HTTP server with its use case handlers.
func NewServer(
	sessionRepo ports.SessionRepository,
	accessGuard services.AccessGuard,
	maxProfileAge time.Duration,
	logger zerolog.Logger,
	signInHandler commands.SignInCommandHandler,
	signOutHandler commands.SignOutCommandHandler,
	restoreSessionHandler commands.RestoreSessionCommandHandler,
	acceptOrderHandler commands.AcceptOrderCommandHandler,
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler,
	listOrdersHandler queries.ListOrdersQueryHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	getDashboardHandler queries.GetPartnerDashboardQueryHandler,
	getShippingLabelHandler queries.GetShippingLabelQueryHandler,
) *Server {
	return &Server{
		sessionRepo:              sessionRepo,
		accessGuard:              accessGuard,
		maxProfileAge:            maxProfileAge,
		logger:                   logger,
		signInHandler:            signInHandler,
		signOutHandler:           signOutHandler,
		restoreSessionHandler:    restoreSessionHandler,
		acceptOrderHandler:       acceptOrderHandler,
		updateOrderStatusHandler: updateOrderStatusHandler,
		listOrdersHandler:        listOrdersHandler,
		getOrderHandler:          getOrderHandler,
		getDashboardHandler:      getDashboardHandler,
		getShippingLabelHandler:  getShippingLabelHandler,
	}
}

// RegisterRoutes wires the console API onto an echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.Validator = NewCustomValidator()
	e.Use(middleware.Recover())

	e.GET("/health", s.Health)

	api := e.Group("/api/v1", s.withSession)
	api.POST("/auth/sign-in", s.SignIn)
	api.POST("/auth/sign-out", s.SignOut)
	api.GET("/auth/session", s.GetSession)

	guarded := api.Group("", s.requireAccess)
	guarded.GET("/orders", s.ListOrders)
	guarded.GET("/orders/:id", s.GetOrder)
	guarded.PATCH("/orders/:id/accept", s.AcceptOrder)
	guarded.PATCH("/orders/:id/status", s.UpdateOrderStatus)
	guarded.GET("/orders/:id/label", s.GetShippingLabel)
	guarded.GET("/dashboard", s.GetDashboard)
}

// Health handles GET /health.
func (s *Server) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, okMessage("ok"))
}

// SignIn handles POST /api/v1/auth/sign-in.
func (s *Server) SignIn(c echo.Context) error {
	var req signInRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, fail("Invalid request body", nil))
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, fail("Email and password are required", nil))
	}

	cmd, err := commands.NewSignInCommand(sessionIDFromContext(c), req.Email, req.Password)
	if err != nil {
		status, message := mapError(err)
		return c.JSON(status, fail(message, nil))
	}

	if err = s.signInHandler.Handle(c.Request().Context(), cmd); err != nil {
		status, message := mapError(err)
		return c.JSON(status, fail(message, nil))
	}

	return s.sessionJSON(c, http.StatusOK)
}

// SignOut handles POST /api/v1/auth/sign-out.
// Always succeeds from the partner's point of view: local state is cleared
// even when the upstream revoke fails.
func (s *Server) SignOut(c echo.Context) error {
	cmd, err := commands.NewSignOutCommand(sessionIDFromContext(c))
	if err != nil {
		status, message := mapError(err)
		return c.JSON(status, fail(message, nil))
	}

	if err = s.signOutHandler.Handle(c.Request().Context(), cmd); err != nil {
		status, message := mapError(err)
		return c.JSON(status, fail(message, nil))
	}

	return c.JSON(http.StatusOK, okMessage("Signed out"))
}

// GetSession handles GET /api/v1/auth/session. Unknown sessions are restored
// before answering, so the first page load of a returning partner reports
// authenticated rather than anonymous.
func (s *Server) GetSession(c echo.Context) error {
	ctx := c.Request().Context()
	sessionID := sessionIDFromContext(c)

	consoleSession, err := s.sessionRepo.Get(ctx, sessionID)
	if err != nil {
		status, message := mapError(err)
		return c.JSON(status, fail(message, nil))
	}

	if consoleSession.NeedsRestore(time.Now(), s.maxProfileAge) {
		cmd, cmdErr := commands.NewRestoreSessionCommand(sessionID)
		if cmdErr == nil {
			if err = s.restoreSessionHandler.Handle(ctx, cmd); err != nil {
				status, message := mapError(err)
				return c.JSON(status, fail(message, nil))
			}
		}
	}

	return s.sessionJSON(c, http.StatusOK)
}

// ListOrders handles GET /api/v1/orders.
func (s *Server) ListOrders(c echo.Context) error {
	ctx := c.Request().Context()
	sessionID := sessionIDFromContext(c)

	query, err := queries.NewListOrdersQuery(sessionID)
	if err != nil {
		status, message := mapError(err)
		return c.JSON(status, fail(message, nil))
	}

	orders, err := s.listOrdersHandler.Handle(ctx, query)
	if err != nil {
		status, message := mapError(err)
		return c.JSON(status, fail(message, nil))
	}

	viewer, err := s.sessionRepo.Get(ctx, sessionID)
	if err != nil {
		status, message := mapError(err)
		return c.JSON(status, fail(message, nil))
	}

	return c.JSON(http.StatusOK, ok(toOrderListResponse(orders, viewer)))
}

// GetOrder handles GET /api/v1/orders/:id.
func (s *Server) GetOrder(c echo.Context) error {
	orderID, err := kernel.NewRemoteID(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, fail("Invalid order id", nil))
	}

	ctx := c.Request().Context()
	sessionID := sessionIDFromContext(c)

	query, err := queries.NewGetOrderQuery(sessionID, orderID)
	if err != nil {
		status, message := mapError(err)
		return c.JSON(status, fail(message, nil))
	}

	fetched, err := s.getOrderHandler.Handle(ctx, query)
	if err != nil {
		status, message := mapError(err)
		return c.JSON(status, fail(message, nil))
	}

	viewer, err := s.sessionRepo.Get(ctx, sessionID)
	if err != nil {
		status, message := mapError(err)
		return c.JSON(status, fail(message, nil))
	}

	return c.JSON(http.StatusOK, ok(toOrderResponse(fetched, viewer)))
}

// AcceptOrder handles PATCH /api/v1/orders/:id/accept.
func (s *Server) AcceptOrder(c echo.Context) error {
	orderID, err := kernel.NewRemoteID(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, fail("Invalid order id", nil))
	}

	ctx := c.Request().Context()
	sessionID := sessionIDFromContext(c)

	cmd, err := commands.NewAcceptOrderCommand(sessionID, orderID)
	if err != nil {
		status, message := mapError(err)
		return c.JSON(status, fail(message, nil))
	}

	accepted, err := s.acceptOrderHandler.Handle(ctx, cmd)
	if err != nil {
		status, message := mapError(err)
		return c.JSON(status, fail(message, nil))
	}

	viewer, err := s.sessionRepo.Get(ctx, sessionID)
	if err != nil {
		status, message := mapError(err)
		return c.JSON(status, fail(message, nil))
	}

	return c.JSON(http.StatusOK, ok(toOrderResponse(accepted, viewer)))
}

// UpdateOrderStatus handles PATCH /api/v1/orders/:id/status.
func (s *Server) UpdateOrderStatus(c echo.Context) error {
	orderID, err := kernel.NewRemoteID(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, fail("Invalid order id", nil))
	}

	var req updateStatusRequest
	if err = c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, fail("Invalid request body", nil))
	}
	if err = c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, fail("Status is required", nil))
	}

	desired, err := order.ParseStatus(req.Status)
	if err != nil {
		return c.JSON(http.StatusBadRequest, fail("Unknown order status: "+req.Status, nil))
	}

	ctx := c.Request().Context()
	sessionID := sessionIDFromContext(c)

	cmd, err := commands.NewUpdateOrderStatusCommand(sessionID, orderID, desired)
	if err != nil {
		status, message := mapError(err)
		return c.JSON(status, fail(message, nil))
	}

	updated, err := s.updateOrderStatusHandler.Handle(ctx, cmd)
	if err != nil {
		status, message := mapError(err)
		return c.JSON(status, fail(message, nil))
	}

	viewer, err := s.sessionRepo.Get(ctx, sessionID)
	if err != nil {
		status, message := mapError(err)
		return c.JSON(status, fail(message, nil))
	}

	return c.JSON(http.StatusOK, ok(toOrderResponse(updated, viewer)))
}

// GetShippingLabel handles GET /api/v1/orders/:id/label.
func (s *Server) GetShippingLabel(c echo.Context) error {
	orderID, err := kernel.NewRemoteID(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, fail("Invalid order id", nil))
	}

	query, err := queries.NewGetShippingLabelQuery(sessionIDFromContext(c), orderID)
	if err != nil {
		status, message := mapError(err)
		return c.JSON(status, fail(message, nil))
	}

	label, err := s.getShippingLabelHandler.Handle(c.Request().Context(), query)
	if err != nil {
		status, message := mapError(err)
		return c.JSON(status, fail(message, nil))
	}

	return c.JSON(http.StatusOK, ok(toLabelResponse(label)))
}

// GetDashboard handles GET /api/v1/dashboard.
func (s *Server) GetDashboard(c echo.Context) error {
	query, err := queries.NewGetPartnerDashboardQuery(sessionIDFromContext(c))
	if err != nil {
		status, message := mapError(err)
		return c.JSON(status, fail(message, nil))
	}

	dashboard, err := s.getDashboardHandler.Handle(c.Request().Context(), query)
	if err != nil {
		status, message := mapError(err)
		return c.JSON(status, fail(message, nil))
	}

	return c.JSON(http.StatusOK, ok(toDashboardResponse(dashboard)))
}

// sessionJSON answers with the current session state and partner snapshot.
func (s *Server) sessionJSON(c echo.Context, status int) error {
	consoleSession, err := s.sessionRepo.Get(c.Request().Context(), sessionIDFromContext(c))
	if err != nil {
		errStatus, message := mapError(err)
		return c.JSON(errStatus, fail(message, nil))
	}

	return c.JSON(status, ok(toSessionResponse(consoleSession)))
}
