package layoutsync

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"git.home.luguber.info/inful/layoutsync/internal/classlist"
	ferrors "git.home.luguber.info/inful/layoutsync/internal/foundation/errors"
	"git.home.luguber.info/inful/layoutsync/internal/fragment"
	"git.home.luguber.info/inful/layoutsync/internal/logfields"
	"git.home.luguber.info/inful/layoutsync/internal/metrics"
	"git.home.luguber.info/inful/layoutsync/internal/storage"
)

// Fragment is a named shared element. Selectors are tried in order, both when
// extracting from the source and when replacing in a target.
type Fragment struct {
	Name      string
	Selectors []fragment.Selector
}

// Guard is consulted before a changed target is written.
type Guard interface {
	CheckWritable(ctx context.Context, path string) error
}

// Options configures a Synchronizer.
type Options struct {
	Source    string
	Targets   []string
	Fragments []Fragment

	// BodyTag and BodyRule drive the class merge; a nil BodyRule disables it.
	BodyTag  string
	BodyRule *classlist.Rule

	DryRun bool
	// Diff fills Result.Diff in dry runs.
	Diff bool

	Guard    Guard
	Recorder metrics.Recorder
	Logger   *slog.Logger
	// OnResult, when set, is called for every target as soon as it finishes.
	OnResult func(Result)
}

// Synchronizer runs sync batches against a DocumentStore.
type Synchronizer struct {
	store storage.DocumentStore
	opts  Options
}

// New creates a Synchronizer. Missing Recorder and Logger fall back to no-ops.
func New(store storage.DocumentStore, opts Options) *Synchronizer {
	if opts.Recorder == nil {
		opts.Recorder = metrics.NoopRecorder{}
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.DiscardHandler)
	}
	if opts.BodyTag == "" {
		opts.BodyTag = "body"
	}
	return &Synchronizer{store: store, opts: opts}
}

type canonical struct {
	name      string
	markup    string
	selectors []fragment.Selector
}

// Run executes one batch. On error the returned report holds the results of
// the targets finished before the failure.
func (s *Synchronizer) Run(ctx context.Context) (*Report, error) {
	start := time.Now()
	report := &Report{
		RunID:  uuid.NewString(),
		Source: s.opts.Source,
		DryRun: s.opts.DryRun,
	}
	log := s.opts.Logger.With(logfields.RunID(report.RunID), logfields.DryRun(s.opts.DryRun))

	err := s.run(ctx, log, report)

	report.Duration = time.Since(start)
	s.opts.Recorder.ObserveRunDuration(report.Duration)
	if err != nil {
		s.opts.Recorder.IncRunOutcome(metrics.RunFailed)
		log.Error("Sync failed", logfields.Error(err), logfields.Count(len(report.Results)))
		return report, err
	}
	s.opts.Recorder.IncRunOutcome(metrics.RunSuccess)
	log.Info("Sync complete",
		slog.Int("updated", report.Count(OutcomeUpdated)),
		slog.Int("unchanged", report.Count(OutcomeUnchanged)),
		slog.Int("not_found", report.Count(OutcomeNotFound)),
		logfields.DurationMS(float64(report.Duration.Microseconds())/1000))
	return report, nil
}

func (s *Synchronizer) run(ctx context.Context, log *slog.Logger, report *Report) error {
	source, err := s.store.Read(ctx, s.opts.Source)
	if err != nil {
		if storage.IsNotFound(err) {
			return ferrors.WrapError(err, ferrors.CategoryFileSystem, "source document not found").
				Fatal().
				WithContext("source", s.opts.Source).
				Build()
		}
		return err
	}

	fragments := s.extract(log, string(source), report)

	for _, target := range s.opts.Targets {
		if err := ctx.Err(); err != nil {
			return ferrors.WrapError(err, ferrors.CategoryRuntime, "sync interrupted").
				WithContext("next", target).
				Build()
		}
		res, err := s.syncTarget(ctx, log.With(logfields.File(target)), target, fragments)
		if err != nil {
			return err
		}
		s.opts.Recorder.IncDocumentOutcome(string(res.Outcome))
		report.Results = append(report.Results, res)
		if s.opts.OnResult != nil {
			s.opts.OnResult(res)
		}
	}
	return nil
}

func (s *Synchronizer) extract(log *slog.Logger, source string, report *Report) []canonical {
	out := make([]canonical, 0, len(s.opts.Fragments))
	for _, f := range s.opts.Fragments {
		markup, sel, ok := fragment.ExtractFirst(source, f.Selectors...)
		if !ok {
			log.Debug("Fragment missing in source", logfields.Fragment(f.Name), logfields.Source(s.opts.Source))
			report.MissingInSource = append(report.MissingInSource, f.Name)
			s.opts.Recorder.IncFragmentResult(f.Name, metrics.FragmentMissingInSource)
			continue
		}
		log.Debug("Fragment extracted", logfields.Fragment(f.Name), logfields.Selector(sel.String()), logfields.Count(len(markup)))
		out = append(out, canonical{name: f.Name, markup: markup, selectors: f.Selectors})
	}
	return out
}

func (s *Synchronizer) syncTarget(ctx context.Context, log *slog.Logger, target string, fragments []canonical) (Result, error) {
	res := Result{Path: target}

	data, err := s.store.Read(ctx, target)
	if err != nil {
		if storage.IsNotFound(err) {
			log.Debug("Target not found")
			res.Outcome = OutcomeNotFound
			return res, nil
		}
		return res, err
	}
	original := string(data)
	doc := original

	for _, f := range fragments {
		next := fragment.ReplaceFirst(doc, f.markup, f.selectors...)
		switch {
		case next != doc:
			res.Replaced = append(res.Replaced, f.name)
			s.opts.Recorder.IncFragmentResult(f.name, metrics.FragmentReplaced)
		case present(doc, f.selectors):
			s.opts.Recorder.IncFragmentResult(f.name, metrics.FragmentUnchanged)
		default:
			log.Debug("Fragment anchor not found in target", logfields.Fragment(f.name))
			s.opts.Recorder.IncFragmentResult(f.name, metrics.FragmentSkipped)
		}
		doc = next
	}

	if s.opts.BodyRule != nil {
		merged := classlist.MergeElement(doc, s.opts.BodyTag, *s.opts.BodyRule)
		res.ClassesMerged = merged != doc
		doc = merged
	}

	if doc == original {
		res.Outcome = OutcomeUnchanged
		log.Debug("Target unchanged")
		return res, nil
	}

	res.Outcome = OutcomeUpdated
	if s.opts.DryRun {
		if s.opts.Diff {
			res.Diff = lineDiff(original, doc)
		}
		log.Info("Target would be updated", logfields.Count(len(res.Replaced)))
		return res, nil
	}

	if s.opts.Guard != nil {
		if err := s.opts.Guard.CheckWritable(ctx, target); err != nil {
			return res, err
		}
	}
	if err := s.store.Write(ctx, target, []byte(doc)); err != nil {
		return res, err
	}
	log.Info("Target updated", logfields.Count(len(res.Replaced)), slog.Bool("classes_merged", res.ClassesMerged))
	return res, nil
}

func present(doc string, sels []fragment.Selector) bool {
	_, _, ok := fragment.ExtractFirst(doc, sels...)
	return ok
}
