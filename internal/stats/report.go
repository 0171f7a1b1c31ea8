package stats

import (
	"context"
	"fmt"
	"io"
	"math"
	"strings"
	"time"

	"github.com/verte-zerg/tuipass/internal/model"
)

const (
	sparkChars    = " .:-=+*#%@"
	recentDefault = 10
)

// HistorySource lists stored copy events.
type HistorySource interface {
	ListCopies(ctx context.Context, filter model.HistoryFilter) ([]model.CopyEvent, error)
}

// Report contains precomputed data for history rendering.
type Report struct {
	Events     []model.CopyEvent
	Total      int
	ByLabel    map[model.Label]int
	MeanScore  float64
	MeanLength float64
}

// LoadReport reads history from src and summarizes it.
func LoadReport(ctx context.Context, src HistorySource, filter model.HistoryFilter) (Report, error) {
	events, err := src.ListCopies(ctx, filter)
	if err != nil {
		return Report{}, fmt.Errorf("failed to list history: %w", err)
	}
	return BuildReport(events), nil
}

// BuildReport summarizes events.
func BuildReport(events []model.CopyEvent) Report {
	r := Report{
		Events:  events,
		Total:   len(events),
		ByLabel: map[model.Label]int{},
	}
	if len(events) == 0 {
		return r
	}
	var scoreSum, lengthSum int
	for _, ev := range events {
		r.ByLabel[ev.Label]++
		scoreSum += ev.Score
		lengthSum += ev.Length
	}
	r.MeanScore = float64(scoreSum) / float64(len(events))
	r.MeanLength = float64(lengthSum) / float64(len(events))
	return r
}

// Sparkline renders scores on a fixed 0-100 scale.
func Sparkline(scores []int) string {
	var b strings.Builder
	for _, s := range scores {
		pos := float64(max(0, min(100, s))) / 100
		idx := int(math.Round(pos * float64(len(sparkChars)-1)))
		b.WriteByte(sparkChars[idx])
	}
	return b.String()
}

// RenderReport prints the summary, the label distribution and the most recent copies.
func RenderReport(w io.Writer, r Report, recent int) error {
	if r.Total == 0 {
		_, err := fmt.Fprintln(w, "No copies recorded.")
		return err
	}
	if recent <= 0 {
		recent = recentDefault
	}

	scores := make([]int, len(r.Events))
	for i, ev := range r.Events {
		scores[i] = ev.Score
	}
	summary := []string{
		"Summary",
		fmt.Sprintf("  Copies:      %d", r.Total),
		fmt.Sprintf("  Mean score:  %.1f", r.MeanScore),
		fmt.Sprintf("  Mean length: %.1f", r.MeanLength),
		fmt.Sprintf("  Trend:       [%s]", Sparkline(scores)),
		"",
	}
	if err := writeLines(w, summary); err != nil {
		return err
	}

	labelRows := make([][]string, 0, 3)
	for _, label := range []model.Label{model.LabelStrong, model.LabelMedium, model.LabelWeak} {
		n := r.ByLabel[label]
		share := float64(n) / float64(r.Total) * 100
		labelRows = append(labelRows, []string{string(label), fmt.Sprintf("%d", n), fmt.Sprintf("%.1f%%", share)})
	}
	lines := formatTable([]string{"Label", "Copies", "Share"}, labelRows, map[int]bool{1: true, 2: true})
	lines = append(lines, "")
	if err := writeLines(w, lines); err != nil {
		return err
	}

	events := r.Events
	if len(events) > recent {
		events = events[len(events)-recent:]
	}
	rows := make([][]string, 0, len(events))
	for i := len(events) - 1; i >= 0; i-- {
		ev := events[i]
		rows = append(rows, []string{
			ev.CopiedAt.Local().Format(time.DateTime),
			fmt.Sprintf("%d", ev.Length),
			classSummary(ev),
			fmt.Sprintf("%d", ev.Score),
			string(ev.Label),
		})
	}
	if err := writeLines(w, []string{"Recent"}); err != nil {
		return err
	}
	return writeLines(w, formatTable([]string{"Copied", "Len", "Classes", "Score", "Label"}, rows, map[int]bool{1: true, 3: true}))
}

func classSummary(ev model.CopyEvent) string {
	flags := []struct {
		on bool
		ch byte
	}{
		{ev.Uppercase, 'A'},
		{ev.Lowercase, 'a'},
		{ev.Numbers, '9'},
		{ev.Symbols, '#'},
	}
	b := make([]byte, 0, len(flags))
	for _, f := range flags {
		if f.on {
			b = append(b, f.ch)
		} else {
			b = append(b, '-')
		}
	}
	return string(b)
}

func writeLines(w io.Writer, lines []string) error {
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
