package controller

import (
	"context"
	"time"

	"github.com/Nazarious-ucu/weatherbot-agent/internal/models"
)

type cityExtractor interface {
	Extract(ctx context.Context, query string) models.Extraction
}

type weatherFetcher interface {
	GetWeather(ctx context.Context, city string) string
}

// Event is a button press from the UI.
type Event interface {
	isEvent()
}

// Search runs the extract-then-fetch pipeline on Input.
type Search struct {
	Input string
}

// Clear empties the query and the report.
type Clear struct{}

func (Search) isEvent() {}
func (Clear) isEvent()  {}

// Outcome is the new state plus what happened on the way, for callers that
// want to tell a degraded extraction apart.
type Outcome struct {
	State      models.Session
	Extraction *models.Extraction
}

type Controller struct {
	extractor cityExtractor
	fetcher   weatherFetcher
	now       func() time.Time
}

func New(extractor cityExtractor, fetcher weatherFetcher) *Controller {
	return &Controller{extractor: extractor, fetcher: fetcher, now: time.Now}
}

// Handle returns the state that follows ev. The input state is never modified.
func (c *Controller) Handle(ctx context.Context, state models.Session, ev Event) models.Session {
	return c.Apply(ctx, state, ev).State
}

func (c *Controller) Apply(ctx context.Context, state models.Session, ev Event) Outcome {
	switch e := ev.(type) {
	case Search:
		ex := c.extractor.Extract(ctx, e.Input)
		report := c.fetcher.GetWeather(ctx, ex.City)
		return Outcome{
			State: models.Session{
				Query:         e.Input,
				WeatherReport: report,
				ClearFlag:     false,
				UpdatedAt:     c.now(),
			},
			Extraction: &ex,
		}
	case Clear:
		return Outcome{State: models.Session{ClearFlag: true, UpdatedAt: c.now()}}
	default:
		return Outcome{State: state}
	}
}

// InputValue is what the query field shows for state.
func InputValue(state models.Session) string {
	if state.ClearFlag {
		return ""
	}
	return state.Query
}
