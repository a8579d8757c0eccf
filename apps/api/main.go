package main

import (
	"log"
	"os"

	"github.com/jmoiron/sqlx"

	echoapi "github.com/trezcool/ratiba/apps/api/echo"
	"github.com/trezcool/ratiba/core"
	"github.com/trezcool/ratiba/core/group"
	"github.com/trezcool/ratiba/core/holiday"
	"github.com/trezcool/ratiba/core/schedule"
	emailsvc "github.com/trezcool/ratiba/services/email"
	logsvc "github.com/trezcool/ratiba/services/logger"
	"github.com/trezcool/ratiba/storage/database"
	sqlxrepos "github.com/trezcool/ratiba/storage/database/sqlx"
)

// TODO:
// - graceful shutdown on SIGINT/SIGTERM
// - serve the planner frontend's static build
func main() {
	std := log.New(os.Stdout, "API : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile)
	logger := logsvc.NewRollbarLogger(std, core.Conf)
	logger.Enable(!(core.Conf.Debug || core.Conf.TestMode))

	// set up DB
	sqlDB, err := database.Open(core.Conf)
	errAndDie(std, err)
	defer sqlDB.Close()
	db := sqlx.NewDb(sqlDB, core.Conf.Database.Engine)

	holidayRepo := sqlxrepos.NewHolidayRepository(db)
	groupRepo := sqlxrepos.NewGroupRepository(db)
	rosterRepo := sqlxrepos.NewRosterRepository(db)
	planRepo := sqlxrepos.NewPlanRepository(db)

	// set up services
	var mailSvc core.EmailService
	if core.Conf.Debug {
		mailSvc = emailsvc.NewConsoleService()
	} else {
		mailSvc = emailsvc.NewSendgridService()
	}
	holidaySvc := holiday.NewService(holidayRepo)
	groupSvc := group.NewService(groupRepo, rosterRepo, core.Conf.MaxGroupSize)
	scheduleSvc := schedule.NewService(planRepo, holidayRepo, rosterRepo, groupRepo, mailSvc, logger)

	// start API server
	app := echoapi.NewServer(
		&echoapi.Options{
			Address:     core.Conf.Server.Address(),
			Logger:      logger,
			HolidaySvc:  holidaySvc,
			GroupSvc:    groupSvc,
			ScheduleSvc: scheduleSvc,
		},
	)
	app.Start()
}

func errAndDie(std *log.Logger, err error) {
	if err != nil {
		std.Fatal(err)
	}
}
