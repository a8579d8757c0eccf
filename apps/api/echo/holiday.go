package echoapi

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/ratiba/core/holiday"
)

type holidayApi struct {
	svc *holiday.Service
}

func registerHolidayAPI(g *echo.Group, svc *holiday.Service) {
	api := holidayApi{svc: svc}

	hg := g.Group("/holidays")
	hg.GET("", api.query)
	hg.POST("", api.create)
	hg.GET("/:id", api.retrieve)
}

// Handlers

func (api *holidayApi) create(ctx echo.Context) error {
	var data holiday.NewHoliday
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewHoliday")
	}
	if err := data.Validate(); err != nil {
		return err
	}

	h, err := api.svc.Create(data)
	if err != nil {
		return errors.Wrap(err, "creating holiday")
	}
	return ctx.JSON(http.StatusCreated, h)
}

func (api *holidayApi) query(ctx echo.Context) error {
	var (
		holidays []holiday.Holiday
		err      error
	)
	if rawYear := ctx.QueryParam("year"); rawYear != "" {
		year, perr := strconv.Atoi(rawYear)
		if perr != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "year must be a number")
		}
		holidays, err = api.svc.QueryByYear(year)
	} else {
		holidays, err = api.svc.QueryAll()
	}
	if err != nil {
		return errors.Wrap(err, "querying holidays")
	}
	if holidays == nil {
		holidays = []holiday.Holiday{}
	}
	return ctx.JSON(http.StatusOK, holidays)
}

func (api *holidayApi) retrieve(ctx echo.Context) error {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return errHttpNotFound
	}
	h, err := api.svc.GetByID(id)
	if err != nil {
		if errors.Cause(err) == holiday.ErrNotFound {
			return err
		}
		return errors.Wrap(err, "finding holiday by ID")
	}
	return ctx.JSON(http.StatusOK, h)
}
