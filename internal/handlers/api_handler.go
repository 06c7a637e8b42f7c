package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"restaurant_platform/internal/models"
	"restaurant_platform/internal/repository"
	"restaurant_platform/internal/schema"
	"restaurant_platform/internal/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type APIHandler struct {
	userService      services.UserService
	menuService      services.MenuService
	tableService     services.TableService
	orderService     services.OrderService
	paymentService   services.PaymentService
	analyticsService services.AnalyticsService
	branchRepo       repository.BranchRepository
}

func NewAPIHandler(
	userService services.UserService,
	menuService services.MenuService,
	tableService services.TableService,
	orderService services.OrderService,
	paymentService services.PaymentService,
	analyticsService services.AnalyticsService,
	branchRepo repository.BranchRepository,
) *APIHandler {
	return &APIHandler{
		userService:      userService,
		menuService:      menuService,
		tableService:     tableService,
		orderService:     orderService,
		paymentService:   paymentService,
		analyticsService: analyticsService,
		branchRepo:       branchRepo,
	}
}

// respondError maps the schema error taxonomy onto HTTP statuses.
func respondError(c *gin.Context, err error) {
	var validationErr *schema.ValidationError
	var uniqueErr *schema.UniquenessViolation
	var immutableErr *schema.ImmutableFieldViolation
	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.As(err, &uniqueErr):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.As(err, &immutableErr):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, gorm.ErrRecordNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "record not found"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

func pathID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return uint(id), true
}

// Users

func (h *APIHandler) GetUser(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	user, err := h.userService.GetUserByID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *APIHandler) ListUsers(c *gin.Context) {
	users, err := h.userService.GetAllUsers()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// Branches

func (h *APIHandler) CreateBranch(c *gin.Context) {
	var branch models.Branch
	if err := c.ShouldBindJSON(&branch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}
	if err := h.branchRepo.Create(&branch); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, branch)
}

func (h *APIHandler) ListBranches(c *gin.Context) {
	if c.Query("active") == "true" {
		branches, err := h.branchRepo.GetActive()
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, branches)
		return
	}
	branches, err := h.branchRepo.GetAll()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, branches)
}

func (h *APIHandler) UpdateBranch(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var branch models.Branch
	if err := c.ShouldBindJSON(&branch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}
	branch.ID = id
	if err := h.branchRepo.Update(&branch); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, branch)
}

// Categories and menu items

func (h *APIHandler) CreateCategory(c *gin.Context) {
	var category models.Category
	if err := c.ShouldBindJSON(&category); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}
	if err := h.menuService.CreateCategory(&category); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, category)
}

func (h *APIHandler) ListCategories(c *gin.Context) {
	categories, err := h.menuService.GetActiveCategories()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, categories)
}

func (h *APIHandler) CreateMenuItem(c *gin.Context) {
	var item models.MenuItem
	if err := c.ShouldBindJSON(&item); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}
	if err := h.menuService.CreateMenuItem(&item); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

func (h *APIHandler) GetBranchMenu(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	menu, err := h.menuService.GetBranchMenu(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, menu)
}

func (h *APIHandler) UpdateMenuItem(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var item models.MenuItem
	if err := c.ShouldBindJSON(&item); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}
	item.ID = id
	if err := h.menuService.UpdateMenuItem(&item); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

// Tables

func (h *APIHandler) CreateTable(c *gin.Context) {
	var table models.Table
	if err := c.ShouldBindJSON(&table); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}
	if err := h.tableService.CreateTable(&table); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, table)
}

func (h *APIHandler) ListBranchTables(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if status := c.Query("status"); status != "" {
		tables, err := h.tableService.GetTablesByBranch(id)
		if err != nil {
			respondError(c, err)
			return
		}
		filtered := make([]models.Table, 0, len(tables))
		for _, table := range tables {
			if table.Status == status {
				filtered = append(filtered, table)
			}
		}
		c.JSON(http.StatusOK, filtered)
		return
	}
	tables, err := h.tableService.GetTablesByBranch(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, tables)
}

func (h *APIHandler) UpdateTableStatus(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req struct {
		Status string `json:"status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}
	if err := h.tableService.SetStatus(id, req.Status); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id, "status": req.Status})
}

// Orders

func (h *APIHandler) PlaceOrder(c *gin.Context) {
	var req services.PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}
	order, items, err := h.orderService.PlaceOrder(&req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"order": order, "items": items})
}

func (h *APIHandler) GetOrder(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	order, items, err := h.orderService.GetOrder(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"order": order, "items": items})
}

func (h *APIHandler) UpdateOrderStatus(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req struct {
		Status string `json:"status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}
	if err := h.orderService.UpdateStatus(id, req.Status); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id, "status": req.Status})
}

// Payments

func (h *APIHandler) CreatePayment(c *gin.Context) {
	var req struct {
		OrderID       uint   `json:"order_id"`
		PaymentMethod string `json:"payment_method"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}
	payment, err := h.paymentService.CreatePayment(req.OrderID, req.PaymentMethod)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, payment)
}

func (h *APIHandler) ListOrderPayments(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	payments, err := h.paymentService.GetPaymentsByOrder(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, payments)
}

// Analytics

func (h *APIHandler) ComputeAnalytics(c *gin.Context) {
	var req struct {
		BranchID    *uint     `json:"branch_id,omitempty"`
		PeriodStart time.Time `json:"period_start"`
		PeriodEnd   time.Time `json:"period_end"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}
	record, err := h.analyticsService.ComputeForPeriod(req.BranchID, req.PeriodStart, req.PeriodEnd)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, record)
}

func (h *APIHandler) ListBranchAnalytics(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	records, err := h.analyticsService.GetByBranch(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, records)
}
