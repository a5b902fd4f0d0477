package dashboard

import (
	"fmt"

	"go-citizen/internal/common/apperr"

	"github.com/gofiber/fiber/v2"
)

type DashboardController struct {
	Service DashboardService
}

func NewDashboardController(service DashboardService) *DashboardController {
	return &DashboardController{Service: service}
}

// GSStats godoc
// @Summary Division-level dashboard counters
// @Tags dashboard
// @Produce json
// @Success 200 {object} GSStats
// @Router /api/gs/stats [get]
func (c *DashboardController) GSStats(ctx *fiber.Ctx) error {
	stats, err := c.Service.GSStats(ctx.UserContext())
	if err != nil {
		return apperr.Respond(ctx, err)
	}
	return ctx.JSON(stats)
}

// DSStats godoc
// @Summary Divisional secretariat dashboard counters
// @Tags dashboard
// @Produce json
// @Success 200 {object} DSStats
// @Router /api/ds/stats [get]
func (c *DashboardController) DSStats(ctx *fiber.Ctx) error {
	stats, err := c.Service.DSStats(ctx.UserContext())
	if err != nil {
		return apperr.Respond(ctx, err)
	}
	return ctx.JSON(stats)
}

// Revenue godoc
// @Summary Revenue breakdown per service
// @Tags dashboard
// @Produce json
// @Success 200 {object} RevenueStats
// @Router /api/admin/revenue [get]
func (c *DashboardController) Revenue(ctx *fiber.Ctx) error {
	stats, err := c.Service.Revenue(ctx.UserContext())
	if err != nil {
		return apperr.Respond(ctx, err)
	}
	return ctx.JSON(stats)
}

// RevenueExport godoc
// @Summary Download the revenue breakdown as an Excel workbook
// @Tags dashboard
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {file} file
// @Router /api/admin/revenue/export [get]
func (c *DashboardController) RevenueExport(ctx *fiber.Ctx) error {
	data, filename, err := c.Service.ExportRevenue(ctx.UserContext())
	if err != nil {
		return apperr.Respond(ctx, err)
	}

	ctx.Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	return ctx.Send(data)
}

// SystemStats godoc
// @Summary Platform-wide counters and recent log lines
// @Tags dashboard
// @Produce json
// @Success 200 {object} SystemStats
// @Router /api/admin/stats [get]
func (c *DashboardController) SystemStats(ctx *fiber.Ctx) error {
	stats, err := c.Service.SystemStats(ctx.UserContext())
	if err != nil {
		return apperr.Respond(ctx, err)
	}
	return ctx.JSON(stats)
}
