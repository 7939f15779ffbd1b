package usecase

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"catalog-admin/internal/catalogerr"
	"catalog-admin/internal/dto/request"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func newMovieService(tr *testRepos) MovieService {
	return NewMovieService(tr.repo, tr.newResolver(0), zap.NewNop())
}

func validMovieRequest(ratingID string, genreIDs []string) *request.MovieRequest {
	return &request.MovieRequest{
		Title:            strptr("Example"),
		Description:      strptr("desc"),
		ReleasedYear:     strptr("2020"),
		MaturityRatingID: strptr(ratingID),
		GenreIDs:         genreIDs,
		Image:            strptr("http://x/y.png"),
	}
}

func TestCreateMovieMaintainsBothRelationSides(t *testing.T) {
	tr := newTestRepos()
	svc := newMovieService(tr)

	rating := tr.seedRating("PG-13")
	g1 := tr.seedMovieGenre("Action")
	g2 := tr.seedMovieGenre("Drama")

	movie, err := svc.CreateMovie(context.Background(), validMovieRequest(
		rating.ID.String(),
		[]string{g1.ID.String(), g2.ID.String()},
	))
	if err != nil {
		t.Fatalf("CreateMovie failed: %v", err)
	}

	// Forward side: movie -> genres, in request order
	gotGenres := make([]string, len(movie.Genres))
	for i, g := range movie.Genres {
		gotGenres[i] = g.ID
	}
	wantGenres := []string{g1.ID.String(), g2.ID.String()}
	if !reflect.DeepEqual(gotGenres, wantGenres) {
		t.Errorf("movie genres = %v, want %v", gotGenres, wantGenres)
	}

	// Inverse side: each genre's movie list includes the new movie
	movieID := uuid.MustParse(movie.ID)
	for _, genre := range []*struct {
		name string
		ids  []uuid.UUID
	}{
		{g1.Name, g1.MovieIDs},
		{g2.Name, g2.MovieIDs},
	} {
		found := false
		for _, id := range genre.ids {
			if id == movieID {
				found = true
			}
		}
		if !found {
			t.Errorf("genre %q movie list is missing the created movie", genre.name)
		}
	}
}

func TestCreateMovieMissingTitle(t *testing.T) {
	tr := newTestRepos()
	svc := newMovieService(tr)

	rating := tr.seedRating("PG-13")
	req := validMovieRequest(rating.ID.String(), nil)
	req.Title = nil

	_, err := svc.CreateMovie(context.Background(), req)

	var validationErr *catalogerr.ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if tr.movie.count() != 0 {
		t.Errorf("movie count = %d, want 0", tr.movie.count())
	}
}

func TestCreateMovieUnknownMaturityRating(t *testing.T) {
	tr := newTestRepos()
	svc := newMovieService(tr)

	_, err := svc.CreateMovie(context.Background(), validMovieRequest(uuid.New().String(), nil))

	var refErr *catalogerr.ReferenceError
	if !errors.As(err, &refErr) {
		t.Fatalf("expected ReferenceError, got %v", err)
	}
	if tr.movie.count() != 0 {
		t.Errorf("movie count = %d, want 0", tr.movie.count())
	}
}

func TestCreateMovieUnknownGenre(t *testing.T) {
	tr := newTestRepos()
	svc := newMovieService(tr)

	rating := tr.seedRating("PG-13")
	g1 := tr.seedMovieGenre("Action")
	missing := uuid.New().String()

	_, err := svc.CreateMovie(context.Background(), validMovieRequest(
		rating.ID.String(),
		[]string{g1.ID.String(), missing},
	))

	var refErr *catalogerr.ReferenceError
	if !errors.As(err, &refErr) {
		t.Fatalf("expected ReferenceError, got %v", err)
	}
	if refErr.ID != missing {
		t.Errorf("ReferenceError.ID = %s, want %s", refErr.ID, missing)
	}
	if tr.movie.count() != 0 {
		t.Errorf("movie count = %d, want 0", tr.movie.count())
	}
}

func TestCreateMovieNonNumericYear(t *testing.T) {
	tr := newTestRepos()
	svc := newMovieService(tr)

	rating := tr.seedRating("PG-13")
	req := validMovieRequest(rating.ID.String(), nil)
	req.ReleasedYear = strptr("abc")

	_, err := svc.CreateMovie(context.Background(), req)

	var validationErr *catalogerr.ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if tr.movie.count() != 0 {
		t.Errorf("movie persisted despite invalid released_year")
	}
}

func TestCreateMovieScenario(t *testing.T) {
	tr := newTestRepos()
	svc := newMovieService(tr)

	rating := tr.seedRating("PG-13")

	movie, err := svc.CreateMovie(context.Background(), validMovieRequest(rating.ID.String(), nil))
	if err != nil {
		t.Fatalf("CreateMovie failed: %v", err)
	}

	if movie.ID == "" {
		t.Error("created movie has no id")
	}
	if movie.Title != "Example" || movie.Description != "desc" {
		t.Errorf("unexpected scalars: %+v", movie)
	}
	if movie.ReleasedYear != 2020 {
		t.Errorf("released year = %d, want 2020", movie.ReleasedYear)
	}
	if movie.MaturityRating == nil {
		t.Fatal("maturity rating not resolved")
	}
	if movie.MaturityRating.ID != rating.ID.String() || movie.MaturityRating.Name != "PG-13" {
		t.Errorf("maturity rating = %+v, want PG-13/%s", movie.MaturityRating, rating.ID)
	}
	if len(movie.Genres) != 0 {
		t.Errorf("genres = %v, want empty", movie.Genres)
	}
}

func TestGetAllMoviesIdempotent(t *testing.T) {
	tr := newTestRepos()
	svc := newMovieService(tr)

	rating := tr.seedRating("R")
	g1 := tr.seedMovieGenre("Horror")

	if _, err := svc.CreateMovie(context.Background(), validMovieRequest(
		rating.ID.String(), []string{g1.ID.String()},
	)); err != nil {
		t.Fatalf("CreateMovie failed: %v", err)
	}

	first, err := svc.GetAllMovies(context.Background())
	if err != nil {
		t.Fatalf("first GetAllMovies failed: %v", err)
	}
	second, err := svc.GetAllMovies(context.Background())
	if err != nil {
		t.Fatalf("second GetAllMovies failed: %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Errorf("two reads with no mutation differ:\n%+v\n%+v", first, second)
	}
}

func TestGetAllMoviesSkipsDanglingGenre(t *testing.T) {
	tr := newTestRepos()
	svc := newMovieService(tr)

	rating := tr.seedRating("PG")
	g1 := tr.seedMovieGenre("Action")

	movie, err := svc.CreateMovie(context.Background(), validMovieRequest(
		rating.ID.String(), []string{g1.ID.String()},
	))
	if err != nil {
		t.Fatalf("CreateMovie failed: %v", err)
	}

	// Wedge a dangling reference into the stored record
	stored, _ := tr.movie.FindByID(context.Background(), uuid.MustParse(movie.ID))
	stored.GenreIDs = append(stored.GenreIDs, uuid.New())

	movies, err := svc.GetAllMovies(context.Background())
	if err != nil {
		t.Fatalf("GetAllMovies failed: %v", err)
	}
	if len(movies) != 1 {
		t.Fatalf("movie count = %d, want 1", len(movies))
	}
	if len(movies[0].Genres) != 1 || movies[0].Genres[0].ID != g1.ID.String() {
		t.Errorf("genres = %+v, want only %s", movies[0].Genres, g1.ID)
	}
}

func TestGetMovieGenresReadsGenreSide(t *testing.T) {
	tr := newTestRepos()
	svc := newMovieService(tr)

	rating := tr.seedRating("PG")
	g1 := tr.seedMovieGenre("Action")
	tr.seedMovieGenre("Drama")

	movie, err := svc.CreateMovie(context.Background(), validMovieRequest(
		rating.ID.String(), []string{g1.ID.String()},
	))
	if err != nil {
		t.Fatalf("CreateMovie failed: %v", err)
	}

	// Membership comes from the genres' movie_ids lists, which the
	// create maintained
	genres, err := svc.GetMovieGenres(context.Background(), movie.ID)
	if err != nil {
		t.Fatalf("GetMovieGenres failed: %v", err)
	}
	if len(genres) != 1 || genres[0].ID != g1.ID.String() {
		t.Errorf("genres = %+v, want only %s", genres, g1.ID)
	}
}

func TestGetMovieGenresUnknownMovie(t *testing.T) {
	tr := newTestRepos()
	svc := newMovieService(tr)

	_, err := svc.GetMovieGenres(context.Background(), uuid.New().String())

	var notFound *catalogerr.NotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}

func TestGetMovieByIDNotFound(t *testing.T) {
	tr := newTestRepos()
	svc := newMovieService(tr)

	_, err := svc.GetMovieByID(context.Background(), uuid.New().String())

	var notFound *catalogerr.NotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}

func TestGetAllMoviesEmptyStore(t *testing.T) {
	tr := newTestRepos()
	svc := newMovieService(tr)

	movies, err := svc.GetAllMovies(context.Background())
	if err != nil {
		t.Fatalf("GetAllMovies failed: %v", err)
	}
	if len(movies) != 0 {
		t.Errorf("movie count = %d, want 0", len(movies))
	}
}

func TestCreateMovieStoreUnavailable(t *testing.T) {
	tr := newTestRepos()
	svc := newMovieService(tr)

	rating := tr.seedRating("PG-13")
	tr.movie.fail = &catalogerr.StoreUnavailableError{Op: "create movie", Err: errors.New("dial refused")}

	_, err := svc.CreateMovie(context.Background(), validMovieRequest(rating.ID.String(), nil))

	var unavailable *catalogerr.StoreUnavailableError
	if !errors.As(err, &unavailable) {
		t.Fatalf("expected StoreUnavailableError, got %v", err)
	}
}
