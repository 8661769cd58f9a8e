package service

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/diegoclair/slack-attendance-bot/internal/domain"
	"github.com/diegoclair/slack-attendance-bot/internal/domain/contract"
	"github.com/diegoclair/slack-attendance-bot/internal/domain/entity"
	"github.com/samber/lo"
	"github.com/slack-go/slack"
)

// ReportOptions tunes how a report is computed
type ReportOptions struct {
	Reaction string
	Location *time.Location
	Now      func() time.Time
}

type reportService struct {
	secrets  contract.SecretStore
	newSlack contract.SlackClientFactory
	dm       contract.DataManager // nil disables the archive
	reaction string
	location *time.Location
	now      func() time.Time
}

func newReport(secrets contract.SecretStore, newSlack contract.SlackClientFactory, dm contract.DataManager, opts ReportOptions) *reportService {
	if opts.Reaction == "" {
		opts.Reaction = domain.DefaultAttendanceReaction
	}
	if opts.Location == nil {
		opts.Location = time.Local
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	return &reportService{
		secrets:  secrets,
		newSlack: newSlack,
		dm:       dm,
		reaction: opts.Reaction,
		location: opts.Location,
		now:      opts.Now,
	}
}

// Run computes this month's ranking and posts it to the configured channel.
// Secret failures are answered with a 500 response; Slack failures are returned as errors.
func (s *reportService) Run(ctx context.Context) (entity.Response, error) {
	secret, err := s.secrets.GetSecret(ctx)
	if err != nil {
		log.Printf("Error getting secret: %v", err)
		return entity.NewResponse(http.StatusInternalServerError, domain.MessageSecretError), nil
	}

	client := s.newSlack(secret.SlackBotToken)

	report, err := s.buildReport(ctx, client, secret.SlackChannelID)
	if err != nil {
		return entity.Response{}, err
	}

	if !report.HasAttendance() {
		log.Printf("No attendance found in channel %s for %s", report.ChannelID, report.Period.Label())
		return entity.NewResponse(http.StatusOK, domain.MessageNoAttendance), nil
	}

	if err := s.postReport(ctx, client, report); err != nil {
		return entity.Response{}, err
	}

	log.Printf("Ranking posted to channel %s for %s (%d users)", report.ChannelID, report.Period.Label(), len(report.Entries))

	if err := s.archive(ctx, report); err != nil {
		log.Printf("Failed to archive report for channel %s: %v", report.ChannelID, err)
	}

	return entity.NewResponse(http.StatusOK, domain.MessageSuccess), nil
}

// Preview computes this month's ranking without posting it
func (s *reportService) Preview(ctx context.Context) (*entity.Report, error) {
	secret, err := s.secrets.GetSecret(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get secret: %w", err)
	}

	return s.buildReport(ctx, s.newSlack(secret.SlackBotToken), secret.SlackChannelID)
}

func (s *reportService) buildReport(ctx context.Context, client contract.SlackClient, channelID string) (*entity.Report, error) {
	period := entity.MonthPeriod(s.now(), s.location)

	messages, err := s.fetchHistory(ctx, client, channelID, period)
	if err != nil {
		return nil, err
	}

	if first, last, ok := messageSpan(messages); ok {
		log.Printf("Read %d messages from channel %s between %s and %s",
			len(messages), channelID, first.In(s.location).Format(time.DateTime), last.In(s.location).Format(time.DateTime))
	} else {
		log.Printf("No messages in channel %s for %s", channelID, period.Label())
	}

	users, err := s.fetchUserDirectory(ctx, client, channelID)
	if err != nil {
		return nil, err
	}

	entries, unknown := CalculateRanking(messages, users, s.reaction)
	if len(unknown) > 0 {
		log.Printf("Skipped %d reacting users not found in channel %s: %v", len(unknown), channelID, unknown)
	}

	return &entity.Report{
		ChannelID:      channelID,
		Period:         period,
		Entries:        entries,
		Text:           FormatRanking(entries),
		UnknownUserIDs: unknown,
	}, nil
}

func (s *reportService) fetchHistory(ctx context.Context, client contract.SlackClient, channelID string, period entity.Period) ([]entity.Message, error) {
	params := &slack.GetConversationHistoryParameters{
		ChannelID: channelID,
		Oldest:    period.OldestUnix(),
		Latest:    period.LatestUnix(),
		Limit:     domain.HistoryPageSize,
	}

	var messages []entity.Message
	for {
		history, err := client.GetConversationHistoryContext(ctx, params)
		if err != nil {
			return nil, fmt.Errorf("failed to get conversation history: %w", err)
		}

		for _, msg := range history.Messages {
			messages = append(messages, toMessage(msg))
		}

		if !history.HasMore || history.ResponseMetaData.NextCursor == "" {
			break
		}
		params.Cursor = history.ResponseMetaData.NextCursor
	}

	return messages, nil
}

func (s *reportService) fetchUserDirectory(ctx context.Context, client contract.SlackClient, channelID string) (entity.UserDirectory, error) {
	params := &slack.GetUsersInConversationParameters{
		ChannelID: channelID,
		Limit:     domain.MembersPageSize,
	}

	var memberIDs []string
	for {
		ids, cursor, err := client.GetUsersInConversationContext(ctx, params)
		if err != nil {
			return nil, fmt.Errorf("failed to get channel members: %w", err)
		}
		memberIDs = append(memberIDs, ids...)

		if cursor == "" {
			break
		}
		params.Cursor = cursor
	}

	allUsers, err := client.GetUsersContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get users: %w", err)
	}

	byID := lo.KeyBy(allUsers, func(u slack.User) string {
		return u.ID
	})

	directory := make(entity.UserDirectory, len(memberIDs))
	for _, id := range memberIDs {
		if u, ok := byID[id]; ok {
			directory[id] = displayName(u)
		}
	}

	return directory, nil
}

func (s *reportService) postReport(ctx context.Context, client contract.SlackClient, report *entity.Report) error {
	blocks := []slack.Block{
		slack.NewSectionBlock(slack.NewTextBlockObject(slack.MarkdownType, domain.ReportTitle, false, false), nil, nil),
		slack.NewDividerBlock(),
		slack.NewSectionBlock(slack.NewTextBlockObject(slack.MarkdownType, report.Text, false, false), nil, nil),
	}

	_, _, err := client.PostMessageContext(ctx, report.ChannelID,
		slack.MsgOptionBlocks(blocks...),
		slack.MsgOptionText(domain.ReportTitle+"\n"+report.Text, false),
		slack.MsgOptionAsUser(false),
	)
	if err != nil {
		return fmt.Errorf("failed to post ranking: %w", err)
	}

	return nil
}

func (s *reportService) archive(ctx context.Context, report *entity.Report) error {
	if s.dm == nil {
		return nil
	}

	return s.dm.WithTransaction(ctx, func(tx contract.DataManager) error {
		run := &entity.ReportRun{
			SlackChannelID: report.ChannelID,
			Period:         report.Period.Label(),
			TotalCount:     report.Total(),
			PostedAt:       s.now(),
		}
		if err := tx.Report().CreateRun(run); err != nil {
			return fmt.Errorf("failed to create report run: %w", err)
		}

		if err := tx.Report().CreateEntries(run.ID, report.Entries); err != nil {
			return fmt.Errorf("failed to create report entries: %w", err)
		}

		return nil
	})
}

func toMessage(msg slack.Message) entity.Message {
	m := entity.Message{Timestamp: parseSlackTimestamp(msg.Timestamp)}
	for _, r := range msg.Reactions {
		m.Reactions = append(m.Reactions, entity.Reaction{Name: r.Name, Users: r.Users})
	}
	return m
}

// displayName prefers the real name like the Slack profile card does
func displayName(u slack.User) string {
	if u.Profile.RealName != "" {
		return u.Profile.RealName
	}
	if u.Profile.DisplayName != "" {
		return u.Profile.DisplayName
	}
	return u.Name
}
