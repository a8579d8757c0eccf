package echoapi

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/ratiba/core/schedule"
)

type scheduleApi struct {
	svc *schedule.Service
}

func registerScheduleAPI(g *echo.Group, svc *schedule.Service) {
	api := scheduleApi{svc: svc}

	sg := g.Group("/schedule")
	sg.POST("/preview", api.preview)
	sg.POST("", api.save)

	g.GET("/classes/:classID/schedule", api.latest)
}

// Handlers

func (api *scheduleApi) preview(ctx echo.Context) error {
	var data schedule.PlanInput
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to PlanInput")
	}
	if err := data.Validate(); err != nil {
		return err
	}

	plan, err := api.svc.Preview(data)
	if err != nil {
		return errors.Wrap(err, "previewing plan")
	}
	return ctx.JSON(http.StatusOK, plan)
}

func (api *scheduleApi) save(ctx echo.Context) error {
	var data schedule.PlanInput
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to PlanInput")
	}
	if err := data.Validate(); err != nil {
		return err
	}
	force, _ := strconv.ParseBool(ctx.QueryParam("force"))

	plan, err := api.svc.Save(data, force)
	if err != nil {
		if _, ok := errors.Cause(err).(*schedule.OverwriteWarning); ok {
			return err
		}
		return errors.Wrap(err, "saving plan")
	}
	return ctx.JSON(http.StatusCreated, plan)
}

func (api *scheduleApi) latest(ctx echo.Context) error {
	classID, err := classIDParam(ctx)
	if err != nil {
		return err
	}
	year, err := strconv.Atoi(ctx.QueryParam("year"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "year must be a number")
	}

	plan, err := api.svc.Latest(classID, year)
	if err != nil {
		if errors.Cause(err) == schedule.ErrPlanNotFound {
			return err
		}
		return errors.Wrap(err, "finding latest plan")
	}
	return ctx.JSON(http.StatusOK, plan)
}
