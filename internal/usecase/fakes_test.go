package usecase

import (
	"context"
	"sync"
	"time"

	"catalog-admin/internal/catalogerr"
	"catalog-admin/internal/data/entity"
	"catalog-admin/internal/data/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// In-memory fakes for the repository interfaces. Each keeps insertion
// order so FindAll is deterministic, and can be forced to fail to
// simulate an unreachable store.

type fakeMovieRepo struct {
	mu     sync.Mutex
	movies map[uuid.UUID]*entity.Movie
	order  []uuid.UUID
	fail   error
}

func newFakeMovieRepo() *fakeMovieRepo {
	return &fakeMovieRepo{movies: make(map[uuid.UUID]*entity.Movie)}
}

func (f *fakeMovieRepo) Create(ctx context.Context, movie *entity.Movie) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail != nil {
		return f.fail
	}
	f.movies[movie.ID] = movie
	f.order = append(f.order, movie.ID)
	return nil
}

func (f *fakeMovieRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Movie, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail != nil {
		return nil, f.fail
	}
	return f.movies[id], nil
}

func (f *fakeMovieRepo) FindAll(ctx context.Context) ([]*entity.Movie, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail != nil {
		return nil, f.fail
	}
	list := make([]*entity.Movie, 0, len(f.order))
	for _, id := range f.order {
		list = append(list, f.movies[id])
	}
	return list, nil
}

func (f *fakeMovieRepo) FindByMaturityRatingID(ctx context.Context, ratingID uuid.UUID) ([]*entity.Movie, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail != nil {
		return nil, f.fail
	}
	var list []*entity.Movie
	for _, id := range f.order {
		if f.movies[id].MaturityRatingID == ratingID {
			list = append(list, f.movies[id])
		}
	}
	return list, nil
}

func (f *fakeMovieRepo) AppendGenreID(ctx context.Context, movieID, genreID uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail != nil {
		return f.fail
	}
	movie, ok := f.movies[movieID]
	if !ok {
		return &catalogerr.NotFoundError{Kind: "movie", ID: movieID.String()}
	}
	movie.GenreIDs = append(movie.GenreIDs, genreID)
	return nil
}

func (f *fakeMovieRepo) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.movies)
}

type fakeMovieGenreRepo struct {
	mu     sync.Mutex
	genres map[uuid.UUID]*entity.MovieGenre
	order  []uuid.UUID
	fail   error
}

func newFakeMovieGenreRepo() *fakeMovieGenreRepo {
	return &fakeMovieGenreRepo{genres: make(map[uuid.UUID]*entity.MovieGenre)}
}

func (f *fakeMovieGenreRepo) Create(ctx context.Context, genre *entity.MovieGenre) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail != nil {
		return f.fail
	}
	f.genres[genre.ID] = genre
	f.order = append(f.order, genre.ID)
	return nil
}

func (f *fakeMovieGenreRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.MovieGenre, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail != nil {
		return nil, f.fail
	}
	return f.genres[id], nil
}

func (f *fakeMovieGenreRepo) FindAll(ctx context.Context) ([]*entity.MovieGenre, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail != nil {
		return nil, f.fail
	}
	list := make([]*entity.MovieGenre, 0, len(f.order))
	for _, id := range f.order {
		list = append(list, f.genres[id])
	}
	return list, nil
}

func (f *fakeMovieGenreRepo) FindByMovieID(ctx context.Context, movieID uuid.UUID) ([]*entity.MovieGenre, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail != nil {
		return nil, f.fail
	}
	var list []*entity.MovieGenre
	for _, id := range f.order {
		for _, mid := range f.genres[id].MovieIDs {
			if mid == movieID {
				list = append(list, f.genres[id])
				break
			}
		}
	}
	return list, nil
}

func (f *fakeMovieGenreRepo) AppendMovieID(ctx context.Context, genreID, movieID uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail != nil {
		return f.fail
	}
	genre, ok := f.genres[genreID]
	if !ok {
		return &catalogerr.NotFoundError{Kind: "movie genre", ID: genreID.String()}
	}
	genre.MovieIDs = append(genre.MovieIDs, movieID)
	return nil
}

type fakeSeriesGenreRepo struct {
	mu     sync.Mutex
	genres map[uuid.UUID]*entity.SeriesGenre
	order  []uuid.UUID
	fail   error
}

func newFakeSeriesGenreRepo() *fakeSeriesGenreRepo {
	return &fakeSeriesGenreRepo{genres: make(map[uuid.UUID]*entity.SeriesGenre)}
}

func (f *fakeSeriesGenreRepo) Create(ctx context.Context, genre *entity.SeriesGenre) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail != nil {
		return f.fail
	}
	f.genres[genre.ID] = genre
	f.order = append(f.order, genre.ID)
	return nil
}

func (f *fakeSeriesGenreRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.SeriesGenre, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail != nil {
		return nil, f.fail
	}
	return f.genres[id], nil
}

func (f *fakeSeriesGenreRepo) FindAll(ctx context.Context) ([]*entity.SeriesGenre, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail != nil {
		return nil, f.fail
	}
	list := make([]*entity.SeriesGenre, 0, len(f.order))
	for _, id := range f.order {
		list = append(list, f.genres[id])
	}
	return list, nil
}

func (f *fakeSeriesGenreRepo) FindBySeriesID(ctx context.Context, seriesID uuid.UUID) ([]*entity.SeriesGenre, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail != nil {
		return nil, f.fail
	}
	var list []*entity.SeriesGenre
	for _, id := range f.order {
		for _, sid := range f.genres[id].SeriesIDs {
			if sid == seriesID {
				list = append(list, f.genres[id])
				break
			}
		}
	}
	return list, nil
}

func (f *fakeSeriesGenreRepo) AppendSeriesID(ctx context.Context, genreID, seriesID uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail != nil {
		return f.fail
	}
	genre, ok := f.genres[genreID]
	if !ok {
		return &catalogerr.NotFoundError{Kind: "series genre", ID: genreID.String()}
	}
	genre.SeriesIDs = append(genre.SeriesIDs, seriesID)
	return nil
}

type fakeMaturityRatingRepo struct {
	mu      sync.Mutex
	ratings map[uuid.UUID]*entity.MaturityRating
	order   []uuid.UUID
	fail    error
}

func newFakeMaturityRatingRepo() *fakeMaturityRatingRepo {
	return &fakeMaturityRatingRepo{ratings: make(map[uuid.UUID]*entity.MaturityRating)}
}

func (f *fakeMaturityRatingRepo) Create(ctx context.Context, rating *entity.MaturityRating) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail != nil {
		return f.fail
	}
	f.ratings[rating.ID] = rating
	f.order = append(f.order, rating.ID)
	return nil
}

func (f *fakeMaturityRatingRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.MaturityRating, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail != nil {
		return nil, f.fail
	}
	return f.ratings[id], nil
}

func (f *fakeMaturityRatingRepo) FindAll(ctx context.Context) ([]*entity.MaturityRating, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail != nil {
		return nil, f.fail
	}
	list := make([]*entity.MaturityRating, 0, len(f.order))
	for _, id := range f.order {
		list = append(list, f.ratings[id])
	}
	return list, nil
}

type fakeSeriesRepo struct {
	mu     sync.Mutex
	series map[uuid.UUID]*entity.Series
	order  []uuid.UUID
	fail   error
}

func newFakeSeriesRepo() *fakeSeriesRepo {
	return &fakeSeriesRepo{series: make(map[uuid.UUID]*entity.Series)}
}

func (f *fakeSeriesRepo) Create(ctx context.Context, series *entity.Series) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail != nil {
		return f.fail
	}
	f.series[series.ID] = series
	f.order = append(f.order, series.ID)
	return nil
}

func (f *fakeSeriesRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Series, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail != nil {
		return nil, f.fail
	}
	return f.series[id], nil
}

func (f *fakeSeriesRepo) FindAll(ctx context.Context) ([]*entity.Series, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail != nil {
		return nil, f.fail
	}
	list := make([]*entity.Series, 0, len(f.order))
	for _, id := range f.order {
		list = append(list, f.series[id])
	}
	return list, nil
}

func (f *fakeSeriesRepo) AppendGenreID(ctx context.Context, seriesID, genreID uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail != nil {
		return f.fail
	}
	series, ok := f.series[seriesID]
	if !ok {
		return &catalogerr.NotFoundError{Kind: "series", ID: seriesID.String()}
	}
	series.GenreIDs = append(series.GenreIDs, genreID)
	return nil
}

// ---------- test harness ----------

type testRepos struct {
	repo        *repository.Repository
	movie       *fakeMovieRepo
	movieGenre  *fakeMovieGenreRepo
	seriesGenre *fakeSeriesGenreRepo
	rating      *fakeMaturityRatingRepo
	series      *fakeSeriesRepo
}

func newTestRepos() *testRepos {
	movie := newFakeMovieRepo()
	movieGenre := newFakeMovieGenreRepo()
	seriesGenre := newFakeSeriesGenreRepo()
	rating := newFakeMaturityRatingRepo()
	series := newFakeSeriesRepo()

	return &testRepos{
		repo: &repository.Repository{
			Movie:          movie,
			MovieGenre:     movieGenre,
			SeriesGenre:    seriesGenre,
			MaturityRating: rating,
			Series:         series,
		},
		movie:       movie,
		movieGenre:  movieGenre,
		seriesGenre: seriesGenre,
		rating:      rating,
		series:      series,
	}
}

func (tr *testRepos) newResolver(cacheTTL time.Duration) *Resolver {
	return NewResolver(tr.repo, cacheTTL, zap.NewNop())
}

func (tr *testRepos) seedRating(name string) *entity.MaturityRating {
	rating := &entity.MaturityRating{
		Base: entity.Base{ID: uuid.New(), CreatedAt: time.Now()},
		Name: name,
	}
	tr.rating.Create(context.Background(), rating)
	return rating
}

func (tr *testRepos) seedMovieGenre(name string) *entity.MovieGenre {
	genre := &entity.MovieGenre{
		Base: entity.Base{ID: uuid.New(), CreatedAt: time.Now()},
		Name: name,
	}
	tr.movieGenre.Create(context.Background(), genre)
	return genre
}

func (tr *testRepos) seedSeriesGenre(name string) *entity.SeriesGenre {
	genre := &entity.SeriesGenre{
		Base: entity.Base{ID: uuid.New(), CreatedAt: time.Now()},
		Name: name,
	}
	tr.seriesGenre.Create(context.Background(), genre)
	return genre
}

func strptr(s string) *string {
	return &s
}
