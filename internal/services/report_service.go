package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"
	"time"

	"github.com/avoronin9/ironlog/internal/logger"
	"github.com/avoronin9/ironlog/internal/models"
)

// ErrMailerNotConfigured is returned when a report send is requested but no
// outbound mail credentials were provided.
var ErrMailerNotConfigured = errors.New("mail delivery is not configured")

// ReportLogRepository is the persistence surface the report service needs.
type ReportLogRepository interface {
	ListJoinedRangeChronological(userID uint, startDate string, endDate string) ([]models.WorkoutLog, error)
}

// ReportUserRepository resolves report recipients.
type ReportUserRepository interface {
	FindByID(userID uint) (models.User, bool, error)
	ListWeeklyReportRecipients() ([]models.User, error)
}

type ReportService struct {
	logs   ReportLogRepository
	users  ReportUserRepository
	mailer Mailer
	log    *logger.Logger
}

func NewReportService(logs ReportLogRepository, users ReportUserRepository, mailer Mailer, log *logger.Logger) *ReportService {
	return &ReportService{logs: logs, users: users, mailer: mailer, log: log}
}

// WeekRange returns the Sunday..Saturday window containing the given time.
func WeekRange(now time.Time) (time.Time, time.Time) {
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	for start.Weekday() != time.Sunday {
		start = start.AddDate(0, 0, -1)
	}
	return start, start.AddDate(0, 0, 6)
}

// SendWeekly builds and mails the current week's report to one user.
func (service *ReportService) SendWeekly(ctx context.Context, userID uint, now time.Time) error {
	user, found, err := service.users.FindByID(userID)
	if err != nil {
		return err
	}
	if !found {
		return NewNotFoundError("User not found")
	}
	if user.Email == nil || *user.Email == "" {
		return NewValidationError("Email not set for user")
	}
	if !user.WeeklyReportEnabled {
		return NewValidationError("Weekly reports are disabled for this account")
	}
	return service.sendTo(ctx, user, now)
}

// SendWeeklyToAll mails the report to every opted-in user with an email
// address. Individual failures are logged and do not stop the run.
func (service *ReportService) SendWeeklyToAll(ctx context.Context, now time.Time) error {
	recipients, err := service.users.ListWeeklyReportRecipients()
	if err != nil {
		return err
	}
	for _, user := range recipients {
		if err := service.sendTo(ctx, user, now); err != nil {
			service.log.Error().Err(err).Uint("user_id", user.ID).Msg("weekly report delivery failed")
		}
	}
	return nil
}

func (service *ReportService) sendTo(ctx context.Context, user models.User, now time.Time) error {
	if service.mailer == nil {
		return ErrMailerNotConfigured
	}

	start, end := WeekRange(now)
	entries, err := service.logs.ListJoinedRangeChronological(user.ID, start.Format("2006-01-02"), end.Format("2006-01-02"))
	if err != nil {
		return err
	}

	html, err := renderWeeklyReport(entries, start, end)
	if err != nil {
		return err
	}
	textBody := "Please view this email in HTML format to see your weekly workout report."
	return service.mailer.Send(ctx, *user.Email, "Your Weekly Workout Report", textBody, html)
}

type reportEntry struct {
	Name  string
	Stats []string
	Notes string
}

type reportDay struct {
	Title   string
	Entries []reportEntry
}

type reportData struct {
	WeekStart string
	WeekEnd   string
	Total     int
	Days      []reportDay
}

var weeklyReportTemplate = template.Must(template.New("weekly_report").Parse(`<!DOCTYPE html>
<html>
<head>
	<meta charset="UTF-8">
	<title>Weekly Workout Report</title>
	<style>
		body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
		.container { max-width: 600px; margin: 0 auto; padding: 20px; }
		.header { background: #4CAF50; color: white; padding: 20px; border-radius: 5px; margin-bottom: 20px; }
		.workout { background: #f9f9f9; padding: 15px; margin-bottom: 10px; border-radius: 5px; border-left: 4px solid #4CAF50; }
		.exercise-name { font-weight: bold; font-size: 1.1em; margin-bottom: 5px; }
		.stats { color: #666; font-size: 0.9em; }
		.footer { margin-top: 20px; padding-top: 20px; border-top: 1px solid #ddd; color: #666; font-size: 0.9em; }
	</style>
</head>
<body>
	<div class="container">
		<div class="header">
			<h1>Your Weekly Workout Report</h1>
			<p>{{.WeekStart}} - {{.WeekEnd}}</p>
		</div>
{{- if eq .Total 0}}
		<p>No workouts logged this week. Keep pushing!</p>
{{- else}}
		<p><strong>Total Workouts:</strong> {{.Total}}</p>
{{- range .Days}}
		<h2>{{.Title}}</h2>
{{- range .Entries}}
		<div class="workout">
			<div class="exercise-name">{{.Name}}</div>
{{- range .Stats}}
			<div class="stats">{{.}}</div>
{{- end}}
{{- if .Notes}}
			<div class="stats" style="font-style: italic;">Notes: {{.Notes}}</div>
{{- end}}
		</div>
{{- end}}
{{- end}}
{{- end}}
		<div class="footer">
			<p>Keep up the great work!</p>
			<p>This is an automated email from IronLog.</p>
		</div>
	</div>
</body>
</html>
`))

func renderWeeklyReport(entries []models.WorkoutLog, start time.Time, end time.Time) (string, error) {
	data := reportData{
		WeekStart: start.Format("January 2, 2006"),
		WeekEnd:   end.Format("January 2, 2006"),
		Total:     len(entries),
	}

	// Entries arrive in chronological order, so days close whenever the
	// date changes.
	var day *reportDay
	for _, entry := range entries {
		if day == nil || data.Days[len(data.Days)-1].Title != reportDayTitle(entry.Date) {
			data.Days = append(data.Days, reportDay{Title: reportDayTitle(entry.Date)})
		}
		day = &data.Days[len(data.Days)-1]
		day.Entries = append(day.Entries, reportEntry{
			Name:  reportExerciseName(entry),
			Stats: reportStats(entry),
			Notes: derefString(entry.Notes),
		})
	}

	var buffer bytes.Buffer
	if err := weeklyReportTemplate.Execute(&buffer, data); err != nil {
		return "", err
	}
	return buffer.String(), nil
}

func reportDayTitle(date string) string {
	parsed, err := time.Parse("2006-01-02", date)
	if err != nil {
		return date
	}
	return parsed.Format("Monday, January 2, 2006")
}

func reportExerciseName(entry models.WorkoutLog) string {
	if entry.ExerciseName != nil {
		return *entry.ExerciseName
	}
	return fmt.Sprintf("Exercise #%d", entry.ExerciseID)
}

func reportStats(entry models.WorkoutLog) []string {
	var stats []string
	if entry.ExerciseType != nil && *entry.ExerciseType == models.ExerciseTypeCardio {
		if entry.Distance != nil {
			stats = append(stats, fmt.Sprintf("Distance: %.2f miles", *entry.Distance))
		}
		if entry.Duration != nil {
			stats = append(stats, fmt.Sprintf("Duration: %dh %dm", *entry.Duration/60, *entry.Duration%60))
		}
		if entry.Pace != nil {
			stats = append(stats, fmt.Sprintf("Pace: %.1f min/mile", *entry.Pace))
		}
		return stats
	}

	if len(entry.WeightPerSet) > 0 {
		for index, weight := range entry.WeightPerSet {
			stats = append(stats, fmt.Sprintf("Set %d: %.1f lbs", index+1, weight))
		}
		return stats
	}
	if entry.Sets != nil && entry.Reps != nil {
		stats = append(stats, fmt.Sprintf("Sets: %d, Reps: %d", *entry.Sets, *entry.Reps))
	}
	if entry.Weight != nil {
		stats = append(stats, fmt.Sprintf("Weight: %.1f lbs", *entry.Weight))
	}
	return stats
}

func derefString(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}
