package main

import (
	"database/sql"
	"errors"
	"flag"
	"fmt"

	"github.com/trezcool/ratiba/core/holiday"
)

var errHelp = errors.New("help provided")

type commandLine struct {
	db          *sql.DB
	holidayRepo holiday.Repository
}

func (cli *commandLine) printUsage() {
	fmt.Println("Usage:")
	fmt.Println("  migrate COMMAND [ARGS] - run database migrations (up, down, status, ...)")
	fmt.Println("  loadholidays -file PATH - load school holidays from a JSON file")
}

func (cli *commandLine) run(args []string) error {
	if len(args) < 2 {
		cli.printUsage()
		return errHelp
	}

	loadHolidaysCmd := flag.NewFlagSet("loadholidays", flag.ExitOnError)
	loadHolidaysFile := loadHolidaysCmd.String("file", "", "Path to a JSON file holding a list of holidays.")

	switch args[1] {
	case "migrate":
		if len(args) < 3 {
			cli.printUsage()
			return errHelp
		}
		return cli.migrate(args[2:])
	case "loadholidays":
		if err := loadHolidaysCmd.Parse(args[2:]); err != nil {
			return err
		}
		if *loadHolidaysFile == "" {
			loadHolidaysCmd.Usage()
			return errHelp
		}
		return cli.loadHolidays(*loadHolidaysFile)
	default:
		cli.printUsage()
		return errHelp
	}
}
