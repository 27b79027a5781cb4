package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/diniz2025/nadjair-diniz-barbosa/internal/dashboard"
	"github.com/diniz2025/nadjair-diniz-barbosa/internal/model"
	"github.com/diniz2025/nadjair-diniz-barbosa/internal/view"
	"github.com/diniz2025/nadjair-diniz-barbosa/pkg/news"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

const ReportFilename = "relatorio_rede_saude.txt"

type Dashboard interface {
	State() dashboard.ViewState
	SelectCategory(ctx context.Context, id string) error
	Search(ctx context.Context, query string) error
	Refresh(ctx context.Context) error
	SelectCategoryAsync(ctx context.Context, id string) error
	SearchAsync(ctx context.Context, query string) error
	RefreshAsync(ctx context.Context)
}

type DashboardHandler struct {
	dashboard Dashboard
}

func NewDashboardHandler(dashboard Dashboard) *DashboardHandler {
	return &DashboardHandler{dashboard: dashboard}
}

func (h *DashboardHandler) GetPage(c *gin.Context) {
	c.HTML(http.StatusOK, view.DashboardTemplate, view.Build(h.dashboard.State()))
}

func (h *DashboardHandler) GetState(c *gin.Context) {
	c.JSON(http.StatusOK, toStateResponse(h.dashboard.State()))
}

func (h *DashboardHandler) GetCategories(c *gin.Context) {
	res := []CategoryResponse{toCategoryResponse(model.NetworkMap)}
	for _, category := range model.Categories() {
		res = append(res, toCategoryResponse(category))
	}
	c.JSON(http.StatusOK, res)
}

func (h *DashboardHandler) GetTicker(c *gin.Context) {
	ticker := h.dashboard.State().Ticker
	if ticker == nil {
		ticker = []string{}
	}
	c.JSON(http.StatusOK, gin.H{"headlines": ticker})
}

// SelectCategory, Search and Refresh answer form posts as soon as the state
// is Loading, leaving the fetch to finish in the background. API callers wait
// for the outcome.
func (h *DashboardHandler) SelectCategory(c *gin.Context) {
	id := c.Param("id")
	if isFormPost(c) {
		redirect(c, h.dashboard.SelectCategoryAsync(detach(c), id))
		return
	}
	h.respond(c, h.dashboard.SelectCategory(detach(c), id))
}

func (h *DashboardHandler) Search(c *gin.Context) {
	var req SearchRequest
	if err := c.ShouldBind(&req); err != nil {
		slog.Warn("invalid search request", "error", err)
		if isFormPost(c) {
			redirect(c, nil)
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid search request"})
		return
	}

	if isFormPost(c) {
		redirect(c, h.dashboard.SearchAsync(detach(c), req.Query))
		return
	}
	h.respond(c, h.dashboard.Search(detach(c), req.Query))
}

func (h *DashboardHandler) Refresh(c *gin.Context) {
	if isFormPost(c) {
		h.dashboard.RefreshAsync(detach(c))
		redirect(c, nil)
		return
	}
	h.respond(c, h.dashboard.Refresh(detach(c)))
}

func (h *DashboardHandler) DownloadReport(c *gin.Context) {
	state := h.dashboard.State()
	if !state.MapMode() || state.Result == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No report available"})
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+ReportFilename+`"`)
	c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(state.Result.Markdown))
}

func (h *DashboardHandler) GetHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":        "healthy",
		"loading_state": string(h.dashboard.State().Loading),
	})
}

// respond gives API callers the resulting state.
func (h *DashboardHandler) respond(c *gin.Context, err error) {
	switch {
	case err == nil:
		c.JSON(http.StatusOK, toStateResponse(h.dashboard.State()))
	case errors.Is(err, dashboard.ErrUnknownCategory):
		c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
	case errors.Is(err, dashboard.ErrEmptyQuery):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Search query is required"})
	case errors.Is(err, news.ErrFetchFailed):
		c.JSON(http.StatusBadGateway, toStateResponse(h.dashboard.State()))
	default:
		slog.Error("error handling dashboard action", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal error"})
	}
}

// redirect sends browsers back to the page, which shows the Loading state.
func redirect(c *gin.Context, err error) {
	if err != nil {
		slog.Warn("dashboard action rejected", "error", err)
	}
	c.Redirect(http.StatusSeeOther, "/")
}

func isFormPost(c *gin.Context) bool {
	return c.ContentType() == binding.MIMEPOSTForm
}

// detach keeps a fetch running when the client goes away, so the session
// state still settles.
func detach(c *gin.Context) context.Context {
	return context.WithoutCancel(c.Request.Context())
}
