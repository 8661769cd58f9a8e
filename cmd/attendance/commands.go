package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/diegoclair/slack-attendance-bot/internal/app"
	"github.com/diegoclair/slack-attendance-bot/internal/config"
	"github.com/diegoclair/slack-attendance-bot/internal/domain/contract"
	"github.com/diegoclair/slack-attendance-bot/internal/handlers"
	"github.com/diegoclair/slack-attendance-bot/internal/invoker"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli/v2"
)

func loadApp() (*app.App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	return app.New(cfg)
}

func invokeCommand() *cli.Command {
	return &cli.Command{
		Name:      "invoke",
		Usage:     "invoke the deployed report function and print its payload",
		ArgsUsage: "<function_name>",
		Action: func(c *cli.Context) error {
			if c.NArg() != 1 {
				return cli.Exit("usage: attendance invoke <function_name>", 2)
			}

			cfg, err := config.Load()
			if err != nil {
				return err
			}

			sess, err := app.NewSession(cfg)
			if err != nil {
				return err
			}

			payload, err := invoker.New(sess).Invoke(c.Context, c.Args().First())
			if payload != nil {
				fmt.Fprintln(c.App.Writer, string(payload))
			}
			return err
		},
	}
}

func runCommand() *cli.Command {
	return &cli.Command{
		Name:  "run",
		Usage: "build and post this month's ranking once",
		Action: func(c *cli.Context) error {
			a, err := loadApp()
			if err != nil {
				return err
			}
			defer a.Close()

			resp, err := a.Services.Report.Run(c.Context)
			if err != nil {
				return err
			}

			out, err := json.Marshal(resp)
			if err != nil {
				return err
			}
			fmt.Fprintln(c.App.Writer, string(out))
			return nil
		},
	}
}

func serveCommand() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "serve slash commands and post the ranking on the last day of each month",
		Action: func(c *cli.Context) error {
			a, err := loadApp()
			if err != nil {
				return err
			}
			defer a.Close()

			if a.Config.SlackSigningSecret == "" {
				return cli.Exit("SLACK_SIGNING_SECRET is required for serve", 1)
			}

			a.Services.Scheduler.Start()
			defer a.Services.Scheduler.Stop()

			handler := handlers.New(a.Services.Report, a.Config.SlackSigningSecret)

			mux := http.NewServeMux()
			mux.HandleFunc("/slack/commands", handler.HandleSlashCommand)
			mux.HandleFunc("/health", handler.HandleHealth)

			server := &http.Server{Addr: ":" + a.Config.Port, Handler: mux}

			ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
			defer stop()

			go func() {
				<-ctx.Done()
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer cancel()
				if err := server.Shutdown(shutdownCtx); err != nil {
					log.Printf("ERROR shutting down server: %v", err)
				}
			}()

			log.Printf("Server starting on port %s", a.Config.Port)
			if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("failed to start server: %w", err)
			}
			return nil
		},
	}
}

func historyCommand() *cli.Command {
	return &cli.Command{
		Name:  "history",
		Usage: "list archived rankings",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "limit", Value: 12, Usage: "number of runs to show"},
			&cli.StringFlag{Name: "channel", Usage: "only show runs for this channel id"},
		},
		Action: func(c *cli.Context) error {
			a, err := loadApp()
			if err != nil {
				return err
			}
			defer a.Close()

			if a.Data == nil {
				return cli.Exit("DATABASE_PATH is not set, no archive to read", 1)
			}

			return printHistory(c.App.Writer, a.Data.Report(), c.String("channel"), c.Int("limit"))
		},
	}
}

func printHistory(w io.Writer, repo contract.ReportRepo, channelID string, limit int) error {
	runs, err := repo.ListRuns(channelID, limit)
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Fprintln(w, "No archived rankings.")
		return nil
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Period", "Channel", "Posted", "Rank", "Name", "Count"})

	for _, run := range runs {
		entries, err := repo.GetEntries(run.ID)
		if err != nil {
			return err
		}

		posted := run.PostedAt.Format(time.RFC3339)
		for _, e := range entries {
			table.Append([]string{
				run.Period,
				run.SlackChannelID,
				posted,
				strconv.Itoa(e.Rank),
				e.Name,
				strconv.Itoa(e.Count),
			})
		}
	}

	table.Render()
	return nil
}
