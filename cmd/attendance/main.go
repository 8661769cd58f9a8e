package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	cliApp := &cli.App{
		Name:  "attendance",
		Usage: "monthly Slack attendance ranking",
		Commands: []*cli.Command{
			invokeCommand(),
			runCommand(),
			serveCommand(),
			historyCommand(),
		},
	}

	if err := cliApp.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
