// Package view maps UI control state to render output. Render is a pure
// function over the immutable dataset: no caching, no side effects, one
// synchronous recomputation per request.
package view

import (
	"fmt"
	"strconv"

	"wahlboard/internal/core"
	"wahlboard/internal/dataset"
)

const (
	ModeOverall Mode = "overall"
	ModeState   Mode = "state"
)

// BarLimit caps the overview bar chart at the largest parties.
const BarLimit = 15

type (
	// Mode is the dashboard mode selector value.
	Mode string

	// Controls is the full UI control state for one render.
	Controls struct {
		Mode      Mode
		VoteType  core.VoteType // overview chart
		State     string        // state mode
		ShareType core.VoteType // state mode pie
		TopN      int           // state mode cutoff, MinTopN..MaxTopN
	}

	// Card is one KPI summary card.
	Card struct {
		Title    string
		Value    string
		Subtitle string
		Icon     string
	}

	// ChartSpec is the chart description consumed by the frontend.
	ChartSpec struct {
		Type   string    `json:"type"` // "bar" or "pie"
		Title  string    `json:"title"`
		Labels []string  `json:"labels"`
		Values []float64 `json:"values"`
		Colors []string  `json:"colors"`
	}

	// Page is the render output: KPI cards plus one chart, or an error
	// notice when the dataset is unavailable.
	Page struct {
		Cards []Card
		Chart ChartSpec
		Err   string
	}
)

// DatasetUnavailableMsg is the single modeled error notice.
const DatasetUnavailableMsg = "Data not found. Please check your results file."

// DefaultControls returns the initial control state: national overview
// of second votes, top-N slider at its maximum.
func DefaultControls(d *dataset.Dataset) Controls {
	c := Controls{
		Mode:      ModeOverall,
		VoteType:  core.Second,
		ShareType: core.Second,
		TopN:      core.MaxTopN,
	}
	if states := d.States(); len(states) > 0 {
		c.State = states[0]
	}
	return c
}

// Render computes the page for the given control state. It never panics
// on an empty dataset; the error notice replaces cards and chart.
func Render(c Controls, d *dataset.Dataset) Page {
	if d.Empty() {
		return Page{Err: DatasetUnavailableMsg}
	}
	if c.Mode == ModeState {
		return renderState(c, d)
	}
	return renderOverall(c, d)
}

func renderOverall(c Controls, d *dataset.Dataset) Page {
	records := d.Records()
	firstTotals := core.TallyByParty(records, core.First)
	secondTotals := core.TallyByParty(records, core.Second)

	cards := []Card{
		winnerCard("Second Vote Winner", secondTotals),
		winnerCard("First Vote Winner", firstTotals),
		{
			Title: "States Covered",
			Value: strconv.Itoa(len(d.States())),
			Icon:  "bi bi-map-fill",
		},
	}

	totals := secondTotals
	title := "National Totals — Second Votes"
	if c.VoteType == core.First {
		totals = firstTotals
		title = "National Totals — First Votes"
	}
	if len(totals) > BarLimit {
		totals = totals[:BarLimit]
	}

	chart := ChartSpec{Type: "bar", Title: title}
	for _, t := range totals {
		chart.Labels = append(chart.Labels, t.Party)
		chart.Values = append(chart.Values, float64(t.Votes))
		chart.Colors = append(chart.Colors, PartyColor(t.Party))
	}
	return Page{Cards: cards, Chart: chart}
}

func renderState(c Controls, d *dataset.Dataset) Page {
	if c.State == "" {
		return Page{Err: "Pick a state"}
	}
	tally := core.StateTally(d.Records(), c.State, c.ShareType)
	top := core.TopNWithOthers(tally, c.TopN)

	label := "Second"
	if c.ShareType == core.First {
		label = "First"
	}
	chart := ChartSpec{
		Type:  "pie",
		Title: fmt.Sprintf("%s — %s Vote Share (%%)", c.State, label),
	}
	for _, t := range top {
		chart.Labels = append(chart.Labels, t.Party)
		chart.Values = append(chart.Values, t.Share)
		chart.Colors = append(chart.Colors, PartyColor(t.Party))
	}
	return Page{Chart: chart}
}

// winnerCard builds the plurality-winner KPI for one vote type. An
// all-zero tally has no meaningful winner and renders as N/A.
func winnerCard(title string, totals []core.PartyTotal) Card {
	w, ok := core.Winner(totals)
	if !ok || w.Votes == 0 {
		return Card{Title: title, Value: "N/A", Subtitle: "0.0% nationally", Icon: "bi bi-trophy-fill"}
	}
	return Card{
		Title:    title,
		Value:    w.Party,
		Subtitle: fmt.Sprintf("%.1f%% nationally", w.Share),
		Icon:     "bi bi-trophy-fill",
	}
}
