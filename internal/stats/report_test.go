package stats

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verte-zerg/tuipass/internal/model"
	"github.com/verte-zerg/tuipass/internal/store"
)

func TestLoadReportFromStore(t *testing.T) {
	st, err := store.Open(filepath.Join(t.TempDir(), "tuipass.db"))
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = st.Close()
	})

	ctx := context.Background()
	events := []model.CopyEvent{
		{Length: 12, Uppercase: true, Lowercase: true, Numbers: true, Symbols: true, Score: 84, Label: model.LabelStrong},
		{Length: 8, Lowercase: true, Score: 31, Label: model.LabelWeak},
		{Length: 16, Lowercase: true, Numbers: true, Score: 77, Label: model.LabelStrong},
		{Length: 4, Uppercase: true, Score: 40, Label: model.LabelMedium},
	}
	for i, ev := range events {
		ev.CopiedAt = time.Unix(0, 0).Add(time.Duration(i) * time.Minute)
		require.NoError(t, st.RecordCopy(ctx, ev))
	}

	report, err := LoadReport(ctx, st, model.HistoryFilter{})
	require.NoError(t, err)
	assert.Equal(t, 4, report.Total)
	assert.Equal(t, 2, report.ByLabel[model.LabelStrong])
	assert.Equal(t, 1, report.ByLabel[model.LabelMedium])
	assert.Equal(t, 1, report.ByLabel[model.LabelWeak])
	assert.InDelta(t, 58.0, report.MeanScore, 1e-9)
	assert.InDelta(t, 10.0, report.MeanLength, 1e-9)

	var buf bytes.Buffer
	require.NoError(t, RenderReport(&buf, report, 2))
	out := buf.String()
	assert.Contains(t, out, "Copies:      4")
	assert.Contains(t, out, "Strong      2 50.0%")
	assert.Contains(t, out, "Recent")
	assert.Contains(t, out, "A---")
	assert.Contains(t, out, "-a9-")
	assert.NotContains(t, out, "Aa9#", "only the two most recent copies are listed")
}

func TestRenderReportEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderReport(&buf, BuildReport(nil), 0))
	assert.Equal(t, "No copies recorded.\n", buf.String())
}

func TestSparklineScale(t *testing.T) {
	assert.Equal(t, " @", Sparkline([]int{0, 100}))
	assert.Equal(t, " @", Sparkline([]int{-5, 140}))
	assert.Len(t, Sparkline([]int{10, 20, 30}), 3)
	assert.Equal(t, "", strings.TrimSpace(Sparkline(nil)))
}
