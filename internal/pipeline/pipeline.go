package pipeline

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"cinewatch/internal/catalog"
	"cinewatch/internal/config"
	"cinewatch/internal/digest"
	"cinewatch/internal/logging"
	"cinewatch/internal/resolver"
	"cinewatch/internal/showtimes"
	"cinewatch/internal/snapshot"
	"cinewatch/internal/watchlist"
)

// WatchlistSource yields the subscriber's watchlist entries.
type WatchlistSource interface {
	Fetch(ctx context.Context) ([]watchlist.Entry, error)
}

// ShowtimeCollector aggregates a film's screenings over a window.
type ShowtimeCollector interface {
	Collect(ctx context.Context, filmID string, window showtimes.Window) ([]showtimes.Record, error)
}

// DigestSender delivers a rendered digest.
type DigestSender interface {
	Send(ctx context.Context, recipient string, d digest.Digest) error
}

// Options wires a pipeline's collaborators.
type Options struct {
	Config    *config.Config
	Catalog   *catalog.Catalog
	Index     *catalog.Index
	Watchlist WatchlistSource
	Showtimes ShowtimeCollector
	Sender    DigestSender
	Logger    *slog.Logger
	Now       func() time.Time
}

// Pipeline runs the watchlist-to-digest workflow.
type Pipeline struct {
	cfg       *config.Config
	catalog   *catalog.Catalog
	resolver  *resolver.Resolver
	watchlist WatchlistSource
	showtimes ShowtimeCollector
	sender    DigestSender
	logger    *slog.Logger
	now       func() time.Time
}

// Result summarizes one run for command output.
type Result struct {
	RunID         string
	Films         int
	Resolved      int
	WithShowtimes int
	Missing       int
	Sent          bool
	WatchlistPath string
	ProgrammePath string
}

// filmProgramme is the per-film value exported in the programme snapshot.
type filmProgramme struct {
	FilmID    string             `json:"ac_id"`
	Showtimes []showtimes.Record `json:"showtimes"`
}

// New assembles a pipeline from options. Options lacking a collaborator
// panic on first use rather than here; commands always supply the full set.
func New(opts Options) *Pipeline {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return &Pipeline{
		cfg:       opts.Config,
		catalog:   opts.Catalog,
		resolver:  resolver.New(opts.Index),
		watchlist: opts.Watchlist,
		showtimes: opts.Showtimes,
		sender:    opts.Sender,
		logger:    logger,
		now:       now,
	}
}

// Run executes the full workflow. Individual films that fail to resolve or
// fetch are logged and carried as missing rather than failing the run; the
// run itself fails only when the watchlist cannot be fetched, a snapshot
// cannot be written, or delivery fails.
func (p *Pipeline) Run(ctx context.Context) (*Result, error) {
	runID := uuid.NewString()
	today := p.now()
	date := today.Format("2006-01-02")
	window := showtimes.WindowFrom(today, p.cfg.Subscriber.WindowDays)
	logger := p.logger.With(logging.String("run_id", runID))

	logger.Info("run started",
		logging.String("profile", p.cfg.Letterboxd.Profile),
		logging.String("window_start", window.Start.Format("2006-01-02")),
		logging.String("window_end", window.End.Format("2006-01-02")))

	entries, err := p.watchlist.Fetch(ctx)
	if err != nil {
		return nil, Wrap(ErrTransient, "watchlist", "fetch watchlist", err)
	}
	result := &Result{RunID: runID, Films: len(entries)}

	for i := range entries {
		entry := &entries[i]
		id, err := p.resolver.Resolve(entry.PreferredTitle(), entry.Year)
		if err != nil {
			logger.Warn("film left unresolved",
				logging.String("slug", entry.Slug),
				logging.Error(err))
			continue
		}
		if id == "" {
			logger.Debug("no catalog match", logging.String("slug", entry.Slug))
			continue
		}
		entry.FilmID = id
		result.Resolved++
	}

	watchlistDoc := snapshot.NewDocument()
	for _, entry := range entries {
		watchlistDoc.Set(entry.Slug, entry)
	}
	watchlistPath := snapshot.WatchlistPath(p.cfg.WatchlistDir(), p.cfg.Letterboxd.Profile)
	if err := snapshot.Write(watchlistPath, watchlistDoc); err != nil {
		return nil, Wrap(ErrTransient, "watchlist", "export snapshot", err)
	}
	result.WatchlistPath = watchlistPath

	programmeDoc := snapshot.NewDocument()
	perFilm := make(map[string][]showtimes.Record, len(entries))
	for _, entry := range entries {
		records, err := p.showtimes.Collect(ctx, entry.FilmID, window)
		if err != nil {
			if ctx.Err() != nil {
				return nil, Wrap(ErrTransient, "showtimes", "collect showtimes", err)
			}
			logger.Warn("showtime collection failed",
				logging.String("slug", entry.Slug),
				logging.Error(err))
			records = nil
		}
		if records == nil {
			records = []showtimes.Record{}
		}
		perFilm[entry.Slug] = records
		programmeDoc.Set(entry.Slug, filmProgramme{FilmID: entry.FilmID, Showtimes: records})
	}
	programmePath := snapshot.ProgrammePath(p.cfg.ProgrammeDir(), p.cfg.Letterboxd.Profile, date)
	if err := snapshot.Write(programmePath, programmeDoc); err != nil {
		return nil, Wrap(ErrTransient, "showtimes", "export snapshot", err)
	}
	result.ProgrammePath = programmePath

	d := digest.Digest{Date: date}
	for _, entry := range entries {
		catEntry, known := p.catalog.Get(entry.FilmID)
		if entry.FilmID == "" || !known {
			d.Missing = append(d.Missing, digest.MissingFilm{Title: entry.Title, URL: entry.URL})
			continue
		}
		days := showtimes.BuildDays(perFilm[entry.Slug], p.cfg.Subscriber.Locale)
		if len(days) == 0 {
			continue
		}
		d.Films = append(d.Films, digest.FilmSection{
			Title:  catEntry.Title,
			Poster: catEntry.Poster,
			Days:   days,
		})
		result.WithShowtimes++
	}
	result.Missing = len(d.Missing)

	if d.Empty() {
		logger.Info("nothing to send", logging.Int("films", len(entries)))
		return result, nil
	}

	if err := p.sender.Send(ctx, p.cfg.Subscriber.Email, d); err != nil {
		return nil, Wrap(ErrTransient, "digest", "send digest", err)
	}
	result.Sent = true
	logger.Info("digest sent",
		logging.String("recipient", p.cfg.Subscriber.Email),
		logging.Int("films", result.WithShowtimes),
		logging.Int("missing", result.Missing))
	return result, nil
}
