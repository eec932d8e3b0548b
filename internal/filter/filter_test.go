// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pdiddy/paperboy/pkg/types"
)

func intPtr(v int) *int { return &v }

func paper(year int, period types.Period) types.ExamPaper {
	return types.ExamPaper{Course: "CS211", Year: year, Period: period}
}

func years(papers []types.ExamPaper) []int {
	out := make([]int, len(papers))
	for i, p := range papers {
		out[i] = p.Year
	}
	return out
}

func TestApply(t *testing.T) {
	span := []types.ExamPaper{
		paper(2017, types.PeriodSummer),
		paper(2018, types.PeriodSummer),
		paper(2019, types.PeriodSummer),
		paper(2020, types.PeriodSummer),
		paper(2021, types.PeriodSummer),
	}

	tests := []struct {
		name string
		cfg  types.FilterConfig
		want []int
	}{
		{"no bounds", types.FilterConfig{}, []int{2017, 2018, 2019, 2020, 2021}},
		{"both bounds", types.FilterConfig{MinYear: intPtr(2018), MaxYear: intPtr(2020)}, []int{2018, 2019}},
		{"lower only", types.FilterConfig{MinYear: intPtr(2020)}, []int{2020, 2021}},
		{"upper only", types.FilterConfig{MaxYear: intPtr(2018)}, []int{2017}},
		{"empty range", types.FilterConfig{MinYear: intPtr(2020), MaxYear: intPtr(2020)}, []int{}},
		{"inverted range", types.FilterConfig{MinYear: intPtr(2021), MaxYear: intPtr(2018)}, []int{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, years(Apply(span, tt.cfg)))
		})
	}
}

func TestApplyNoResits(t *testing.T) {
	in := []types.ExamPaper{
		paper(2019, types.PeriodJanuary),
		paper(2019, types.PeriodSummer),
		paper(2019, types.PeriodAutumn),
	}
	got := Apply(in, types.FilterConfig{NoResits: true})
	assert.Equal(t, []types.ExamPaper{in[0], in[1]}, got)
}

func TestApplyPreservesOrderAndIsIdempotent(t *testing.T) {
	in := []types.ExamPaper{
		paper(2021, types.PeriodAutumn),
		paper(2018, types.PeriodSummer),
		paper(2019, types.PeriodJanuary),
		paper(2017, types.PeriodSummer),
		paper(2019, types.PeriodAutumn),
		paper(2018, types.PeriodJanuary),
	}
	cfg := types.FilterConfig{MinYear: intPtr(2018), MaxYear: intPtr(2021), NoResits: true}

	once := Apply(in, cfg)
	assert.Equal(t, []types.ExamPaper{in[1], in[2], in[5]}, once)
	assert.Equal(t, once, Apply(once, cfg))

	for _, p := range once {
		assert.Contains(t, in, p)
	}
}

func TestApplyDoesNotModifyInput(t *testing.T) {
	in := []types.ExamPaper{paper(2017, types.PeriodSummer), paper(2019, types.PeriodSummer)}
	orig := append([]types.ExamPaper(nil), in...)
	Apply(in, types.FilterConfig{MinYear: intPtr(2018)})
	assert.Equal(t, orig, in)
}

func TestYears(t *testing.T) {
	in := []types.ExamPaper{
		paper(2019, types.PeriodSummer),
		paper(2017, types.PeriodSummer),
		paper(2019, types.PeriodAutumn),
	}
	assert.Equal(t, []int{2017, 2019}, Years(in))
	assert.Empty(t, Years(nil))
}

func TestByYear(t *testing.T) {
	in := []types.ExamPaper{
		paper(2019, types.PeriodSummer),
		paper(2017, types.PeriodSummer),
		paper(2019, types.PeriodAutumn),
	}
	groups := ByYear(in)
	assert.Len(t, groups, 2)
	assert.Equal(t, []types.ExamPaper{in[0], in[2]}, groups[2019])
	assert.Equal(t, []types.ExamPaper{in[1]}, groups[2017])
}
