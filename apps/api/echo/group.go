package echoapi

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/ratiba/core/group"
)

type groupApi struct {
	svc *group.Service
}

func registerGroupAPI(g *echo.Group, svc *group.Service) {
	api := groupApi{svc: svc}

	gg := g.Group("/classes/:classID/groups")
	gg.GET("", api.query)
	gg.POST("", api.initialize)
	gg.PUT("/count", api.changeCount)
	gg.PUT("/move", api.move)
	gg.PUT("/remove", api.remove)
}

func classIDParam(ctx echo.Context) (int, error) {
	id, err := strconv.Atoi(ctx.Param("classID"))
	if err != nil || id < 1 {
		return 0, errHttpNotFound
	}
	return id, nil
}

// Handlers

func (api *groupApi) query(ctx echo.Context) error {
	classID, err := classIDParam(ctx)
	if err != nil {
		return err
	}
	groups, err := api.svc.Groups(classID)
	if err != nil {
		if errors.Cause(err) == group.ErrNoGroups {
			return err
		}
		return errors.Wrap(err, "querying groups")
	}
	return ctx.JSON(http.StatusOK, groups)
}

func (api *groupApi) initialize(ctx echo.Context) error {
	classID, err := classIDParam(ctx)
	if err != nil {
		return err
	}

	var data group.ResizeGroups
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to ResizeGroups")
	}
	if err := data.Validate(); err != nil {
		return err
	}

	groups, err := api.svc.Initialize(classID, data.GroupCount)
	if err != nil {
		return errors.Wrap(err, "initializing groups")
	}
	return ctx.JSON(http.StatusCreated, groups)
}

func (api *groupApi) changeCount(ctx echo.Context) error {
	classID, err := classIDParam(ctx)
	if err != nil {
		return err
	}

	var data group.ResizeGroups
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to ResizeGroups")
	}
	if err := data.Validate(); err != nil {
		return err
	}

	groups, err := api.svc.ChangeCount(classID, data.GroupCount)
	if err != nil {
		if errors.Cause(err) == group.ErrNoGroups {
			return err
		}
		return errors.Wrap(err, "changing group count")
	}
	return ctx.JSON(http.StatusOK, groups)
}

func (api *groupApi) move(ctx echo.Context) error {
	classID, err := classIDParam(ctx)
	if err != nil {
		return err
	}

	var data group.MoveStudentInput
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to MoveStudentInput")
	}
	if err := data.Validate(); err != nil {
		return err
	}

	groups, err := api.svc.Move(classID, data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, groups)
}

func (api *groupApi) remove(ctx echo.Context) error {
	classID, err := classIDParam(ctx)
	if err != nil {
		return err
	}

	var data group.RemoveStudentInput
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to RemoveStudentInput")
	}
	if err := data.Validate(); err != nil {
		return err
	}

	groups, err := api.svc.Remove(classID, data.StudentID)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, groups)
}
