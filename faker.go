package naijafake

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/dmitrymomot/naijafake/pkg/dataset"
	"github.com/dmitrymomot/naijafake/pkg/engine"
	"github.com/dmitrymomot/naijafake/pkg/filter"
	"github.com/dmitrymomot/naijafake/pkg/logger"
	"github.com/dmitrymomot/naijafake/pkg/sampler"
	"github.com/dmitrymomot/naijafake/pkg/synth"
)

// Fixed vocabularies for fields whose allowed values do not depend on the data.
var (
	SchoolTypes = []string{"University", "Polytechnic", "College of Education"}
	Ownerships  = []string{"Federal", "State", "Private"}
	DegreeTypes = []string{"undergraduate", "masters", "doctorate"}
)

// Faker generates Nigerian fake data from one set of loaded datasets.
// Unique draws are tracked per Faker; a new Faker starts with no history.
// A Faker is safe for concurrent use.
type Faker struct {
	id      string
	log     *slog.Logger
	sampler *sampler.Sampler
	synth   *synth.Synthesizer

	states    *engine.Engine[dataset.State]
	schools   *engine.Engine[dataset.School]
	courses   *engine.Engine[dataset.Course]
	degrees   *engine.Engine[dataset.Degree]
	faculties *engine.Engine[dataset.Faculty]
	marital   *engine.Engine[dataset.MaritalStatus]
	religions *engine.Engine[dataset.Religion]
}

type collections struct {
	firstNames []dataset.FirstName
	lastNames  []dataset.LastName
	states     []dataset.State
	schools    []dataset.School
	courses    []dataset.Course
	degrees    []dataset.Degree
	faculties  []dataset.Faculty
	phones     []dataset.PhonePrefix
	plates     []dataset.PlateCode
	marital    []dataset.MaritalStatus
	religions  []dataset.Religion
}

// New loads every dataset from the configured source and returns a Faker.
// Any load or schema failure aborts construction.
func New(ctx context.Context, opts ...Option) (*Faker, error) {
	o := &options{
		source: dataset.Builtin(),
		logger: logger.Discard(),
	}
	for _, opt := range opts {
		opt(o)
	}

	id := uuid.NewString()
	log := o.logger.With(logger.SessionID(id), logger.Component("naijafake"))

	c, err := loadAll(ctx, o.source, log)
	if err != nil {
		return nil, err
	}

	samplerOpts := []sampler.Option{
		sampler.WithResetHook(func(category string, poolSize int) {
			log.Debug("exclusion set exhausted, starting a new cycle",
				logger.Category(category), logger.Count(poolSize))
		}),
	}
	if o.seed != nil {
		samplerOpts = append(samplerOpts, sampler.WithSeed(*o.seed))
	}
	smp := sampler.New(samplerOpts...)

	states := engine.New(dataset.States, c.states, smp).Observe("name", "region", "region_abbr")
	stateNames, _ := states.Vocabulary("name")

	f := &Faker{
		id:      id,
		log:     log,
		sampler: smp,
		states:  states,
		schools: engine.New(dataset.Schools, c.schools, smp).
			Restrict("state", stateNames).
			Restrict("type", filter.NewVocabulary("type", SchoolTypes...)).
			Restrict("ownership", filter.NewVocabulary("ownership", Ownerships...)),
		courses: engine.New(dataset.Courses, c.courses, smp),
		degrees: engine.New(dataset.Degrees, c.degrees, smp).
			Restrict("degree_type", filter.NewVocabulary("degree_type", DegreeTypes...)),
		faculties: engine.New(dataset.Faculties, c.faculties, smp).Observe("name"),
		marital:   engine.New(dataset.MaritalStatuses, c.marital, smp),
		religions: engine.New(dataset.Religions, c.religions, smp),
	}

	var synthOpts []synth.Option
	if len(o.domains) > 0 {
		synthOpts = append(synthOpts, synth.WithDomains(o.domains...))
	}
	f.synth = synth.New(synth.Config{
		FirstNames:    engine.New(dataset.FirstNames, c.firstNames, smp).Observe("tribe", "gender"),
		LastNames:     engine.New(dataset.LastNames, c.lastNames, smp).Observe("tribe"),
		PhonePrefixes: engine.New(dataset.PhonePrefixes, c.phones, smp).Observe("network"),
		PlateCodes:    engine.New(dataset.PlateCodes, c.plates, smp).Restrict("state", stateNames),
		Sampler:       smp,
	}, synthOpts...)

	log.Debug("faker ready", logger.Count(len(f.synth.Tribes())))
	return f, nil
}

// SessionID identifies this Faker in logs.
func (f *Faker) SessionID() string { return f.id }

// Reset forgets every value returned by the unique draws.
func (f *Faker) Reset() {
	f.sampler.Reset()
	f.log.Debug("session history cleared")
}

func loadAll(ctx context.Context, src dataset.Source, log *slog.Logger) (*collections, error) {
	c := &collections{}
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(4)

	g.Go(load(ctx, src, log, dataset.FirstNames, &c.firstNames))
	g.Go(load(ctx, src, log, dataset.LastNames, &c.lastNames))
	g.Go(load(ctx, src, log, dataset.States, &c.states))
	g.Go(load(ctx, src, log, dataset.Schools, &c.schools))
	g.Go(load(ctx, src, log, dataset.Courses, &c.courses))
	g.Go(load(ctx, src, log, dataset.Degrees, &c.degrees))
	g.Go(load(ctx, src, log, dataset.Faculties, &c.faculties))
	g.Go(load(ctx, src, log, dataset.PhonePrefixes, &c.phones))
	g.Go(load(ctx, src, log, dataset.PlateCodes, &c.plates))
	g.Go(load(ctx, src, log, dataset.MaritalStatuses, &c.marital))
	g.Go(load(ctx, src, log, dataset.Religions, &c.religions))

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return c, nil
}

// load returns an errgroup task that fills dst with the named dataset.
func load[T dataset.Record](ctx context.Context, src dataset.Source, log *slog.Logger, name string, dst *[]T) func() error {
	return func() error {
		ctx := logger.WithDataset(ctx, name)
		c, err := dataset.Load[T](ctx, src, name)
		if err != nil {
			log.DebugContext(ctx, "dataset load failed", logger.Error(err))
			return fmt.Errorf("loading %s: %w", name, err)
		}
		*dst = c.Records()
		log.DebugContext(ctx, "dataset loaded", logger.Count(c.Len()))
		return nil
	}
}
