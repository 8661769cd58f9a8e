package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/diegoclair/slack-attendance-bot/internal/domain"
	"github.com/diegoclair/slack-attendance-bot/internal/domain/contract"
	slackcmd "github.com/diegoclair/slack-attendance-bot/internal/domain/slack"
	"github.com/slack-go/slack"
)

// Slack accepts replies on a response_url for 30 minutes
const deferredReplyTimeout = 5 * time.Minute

type SlackHandler struct {
	reportService contract.ReportService
	signingSecret string
}

func New(reportService contract.ReportService, signingSecret string) *SlackHandler {
	return &SlackHandler{
		reportService: reportService,
		signingSecret: signingSecret,
	}
}

func (h *SlackHandler) HandleSlashCommand(w http.ResponseWriter, r *http.Request) {
	// an empty key would accept any request signed with an empty key
	if h.signingSecret == "" {
		log.Println("Rejecting slash command: signing secret is not configured")
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	// Verify request from Slack
	body, err := io.ReadAll(r.Body)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	r.Body = io.NopCloser(bytes.NewBuffer(body))

	// Verify Slack signature
	verifier, err := slack.NewSecretsVerifier(r.Header, h.signingSecret)
	if err != nil {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	if _, err := verifier.Write(body); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	if err := verifier.Ensure(); err != nil {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	s, err := slack.SlashCommandParse(r)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	cmd, err := slackcmd.ParseCommand(s.Text)
	if err != nil {
		h.respondWithError(w, err.Error())
		return
	}

	response := h.handleCommand(r.Context(), cmd, &s)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

func (h *SlackHandler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	fmt.Fprintf(w, "OK")
}

func (h *SlackHandler) handleCommand(ctx context.Context, cmd *slackcmd.Command, slashCmd *slack.SlashCommand) *slack.Msg {
	switch cmd.Type {
	case slackcmd.CmdReport, slackcmd.CmdPreview:
		if slashCmd.ResponseURL == "" {
			return h.runCommand(ctx, cmd, slashCmd)
		}
		// reading a month of history can outlast Slack's 3s reply window
		go h.replyLater(context.WithoutCancel(ctx), cmd, slashCmd)
		return &slack.Msg{
			ResponseType: slack.ResponseTypeEphemeral,
			Text:         "⏳ Building this month's attendance ranking...",
		}
	case slackcmd.CmdHelp:
		return h.handleHelp()
	default:
		return h.createErrorResponse("Unknown command")
	}
}

func (h *SlackHandler) runCommand(ctx context.Context, cmd *slackcmd.Command, slashCmd *slack.SlashCommand) *slack.Msg {
	if cmd.Type == slackcmd.CmdPreview {
		return h.handlePreview(ctx)
	}
	return h.handleReport(ctx, slashCmd)
}

func (h *SlackHandler) replyLater(ctx context.Context, cmd *slackcmd.Command, slashCmd *slack.SlashCommand) {
	ctx, cancel := context.WithTimeout(ctx, deferredReplyTimeout)
	defer cancel()

	msg := h.runCommand(ctx, cmd, slashCmd)

	err := slack.PostWebhookContext(ctx, slashCmd.ResponseURL, &slack.WebhookMessage{
		ResponseType: msg.ResponseType,
		Text:         msg.Text,
	})
	if err != nil {
		log.Printf("ERROR replying to %s in %s: %v", slashCmd.UserID, slashCmd.ChannelID, err)
	}
}

func (h *SlackHandler) handleReport(ctx context.Context, slashCmd *slack.SlashCommand) *slack.Msg {
	log.Printf("Report requested by %s in %s", slashCmd.UserID, slashCmd.ChannelID)

	resp, err := h.reportService.Run(ctx)
	if err != nil {
		log.Printf("ERROR running report: %v", err)
		return h.createErrorResponse("Failed to post the attendance ranking")
	}

	switch message := resp.Message(); {
	case resp.StatusCode != http.StatusOK:
		return h.createErrorResponse(message)
	case message == domain.MessageNoAttendance:
		return &slack.Msg{
			ResponseType: slack.ResponseTypeEphemeral,
			Text:         "No attendance reactions found this month.",
		}
	default:
		return &slack.Msg{
			ResponseType: slack.ResponseTypeEphemeral,
			Text:         "✅ Attendance ranking posted.",
		}
	}
}

func (h *SlackHandler) handlePreview(ctx context.Context) *slack.Msg {
	report, err := h.reportService.Preview(ctx)
	if err != nil {
		log.Printf("ERROR previewing report: %v", err)
		return h.createErrorResponse("Failed to build the attendance ranking")
	}

	if !report.HasAttendance() {
		return &slack.Msg{
			ResponseType: slack.ResponseTypeEphemeral,
			Text:         fmt.Sprintf("No attendance reactions found for %s.", report.Period.Label()),
		}
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         fmt.Sprintf("%s (%s)\n%s", domain.ReportTitle, report.Period.Label(), report.Text),
	}
}

func (h *SlackHandler) handleHelp() *slack.Msg {
	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         slackcmd.GetHelpText(),
	}
}

func (h *SlackHandler) createErrorResponse(message string) *slack.Msg {
	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         fmt.Sprintf("❌ %s", message),
	}
}

func (h *SlackHandler) respondWithError(w http.ResponseWriter, message string) {
	response := h.createErrorResponse(message)
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}
