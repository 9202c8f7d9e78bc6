package movie_test

import (
	"bytes"
	"errors"
	"fmt"
	"mime/multipart"
	"sort"
	"testing"

	"movieflix/config"
	"movieflix/domain"
	movieModel "movieflix/models/movie"
	movieService "movieflix/services/movie"
	"movieflix/services/storage"
	movieTypes "movieflix/types/movie"
)

// fakeMovieRepo is an in-memory MovieRepository.
type fakeMovieRepo struct {
	rows   map[uint]movieModel.Movie
	nextID uint
}

func newFakeMovieRepo() *fakeMovieRepo {
	return &fakeMovieRepo{rows: make(map[uint]movieModel.Movie), nextID: 1}
}

func (r *fakeMovieRepo) Save(m *movieModel.Movie) error {
	if m.ID == 0 {
		m.ID = r.nextID
		r.nextID++
	}
	r.rows[m.ID] = *m
	return nil
}

func (r *fakeMovieRepo) FindByID(id uint) (*movieModel.Movie, error) {
	m, ok := r.rows[id]
	if !ok {
		return nil, domain.ErrMovieNotFound
	}
	copy := m
	return &copy, nil
}

func (r *fakeMovieRepo) FindAll() ([]movieModel.Movie, error) {
	return r.ordered(), nil
}

func (r *fakeMovieRepo) Delete(m *movieModel.Movie) error {
	delete(r.rows, m.ID)
	return nil
}

func (r *fakeMovieRepo) FindPage(pageNumber, pageSize int) ([]movieModel.Movie, int64, error) {
	all := r.ordered()
	return page(all, pageNumber, pageSize), int64(len(all)), nil
}

func (r *fakeMovieRepo) FindPageSorted(pageNumber, pageSize int, sortColumn string, ascending bool) ([]movieModel.Movie, int64, error) {
	all := r.ordered()
	sort.SliceStable(all, func(i, j int) bool {
		var less bool
		switch sortColumn {
		case "title":
			less = all[i].Title < all[j].Title
		case "director":
			less = all[i].Director < all[j].Director
		case "studio":
			less = all[i].Studio < all[j].Studio
		case "release_year":
			less = all[i].ReleaseYear < all[j].ReleaseYear
		default:
			less = all[i].ID < all[j].ID
		}
		if ascending {
			return less
		}
		return !less
	})
	return page(all, pageNumber, pageSize), int64(len(all)), nil
}

func (r *fakeMovieRepo) ordered() []movieModel.Movie {
	ids := make([]uint, 0, len(r.rows))
	for id := range r.rows {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	out := make([]movieModel.Movie, 0, len(ids))
	for _, id := range ids {
		out = append(out, r.rows[id])
	}
	return out
}

func page(all []movieModel.Movie, pageNumber, pageSize int) []movieModel.Movie {
	start := pageNumber * pageSize
	if start >= len(all) {
		return nil
	}
	end := start + pageSize
	if end > len(all) {
		end = len(all)
	}
	return all[start:end]
}

func makeFileHeader(t *testing.T, filename string, content []byte) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("file", filename)
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := part.Write(content); err != nil {
		t.Fatalf("write form file: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}

	reader := multipart.NewReader(&buf, w.Boundary())
	form, err := reader.ReadForm(int64(len(content)) + 10240)
	if err != nil {
		t.Fatalf("read form: %v", err)
	}
	t.Cleanup(func() { form.RemoveAll() })

	return form.File["file"][0]
}

func newService(t *testing.T) (*movieService.Service, *fakeMovieRepo, storage.FileService, *config.Config) {
	t.Helper()
	repo := newFakeMovieRepo()
	files := storage.NewFileService()
	cfg := &config.Config{
		PosterDir:            t.TempDir(),
		BaseURL:              "http://localhost:8080",
		DefaultSortBy:        "title",
		DefaultSortDirection: "asc",
	}
	return movieService.NewMovieService(repo, files, cfg), repo, files, cfg
}

func request(title string) movieTypes.MovieRequest {
	return movieTypes.MovieRequest{
		Title:       title,
		Director:    "Christopher Nolan",
		Studio:      "Warner Bros",
		MovieCast:   []string{"Leo", "Tom", "Leo"},
		ReleaseYear: 2010,
	}
}

func TestAddThenGetReturnsInputMetadataAndDerivedPosterURL(t *testing.T) {
	svc, _, _, _ := newService(t)

	added, err := svc.AddMovie(request("Inception"), makeFileHeader(t, "inception.png", []byte("img")))
	if err != nil {
		t.Fatalf("add: %v", err)
	}

	got, err := svc.GetMovie(added.MovieID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Title != "Inception" || got.Director != "Christopher Nolan" || got.Studio != "Warner Bros" || got.ReleaseYear != 2010 {
		t.Fatalf("metadata mismatch: %+v", got)
	}
	if got.Poster != "inception.png" {
		t.Fatalf("expected poster filename, got %q", got.Poster)
	}
	if got.PosterURL != "http://localhost:8080/file/inception.png" {
		t.Fatalf("unexpected posterUrl %q", got.PosterURL)
	}
	// cast is a set: the duplicate entry is dropped
	if len(got.MovieCast) != 2 {
		t.Fatalf("expected deduplicated cast, got %v", got.MovieCast)
	}
}

func TestAddEmptyFileFailsWithoutAnyMutation(t *testing.T) {
	svc, repo, files, cfg := newService(t)

	_, err := svc.AddMovie(request("Inception"), makeFileHeader(t, "empty.png", nil))
	if !errors.Is(err, domain.ErrEmptyFile) {
		t.Fatalf("expected ErrEmptyFile, got %v", err)
	}
	_, err = svc.AddMovie(request("Inception"), nil)
	if !errors.Is(err, domain.ErrEmptyFile) {
		t.Fatalf("expected ErrEmptyFile for missing file, got %v", err)
	}

	if len(repo.rows) != 0 {
		t.Fatalf("no rows should be written, got %d", len(repo.rows))
	}
	if files.Exists(cfg.PosterDir, "empty.png") {
		t.Fatal("no file should be written")
	}
}

func TestAddDuplicateFilenameFailsAndKeepsExistingFile(t *testing.T) {
	svc, _, files, cfg := newService(t)

	if _, err := svc.AddMovie(request("First"), makeFileHeader(t, "same.png", []byte("original"))); err != nil {
		t.Fatalf("first add: %v", err)
	}

	_, err := svc.AddMovie(request("Second"), makeFileHeader(t, "same.png", []byte("other")))
	if !errors.Is(err, domain.ErrFileExists) {
		t.Fatalf("expected ErrFileExists, got %v", err)
	}

	rc, err := files.GetResourceFile(cfg.PosterDir, "same.png")
	if err != nil {
		t.Fatalf("read existing: %v", err)
	}
	defer rc.Close()
	buf := new(bytes.Buffer)
	if _, err := buf.ReadFrom(rc); err != nil {
		t.Fatalf("read: %v", err)
	}
	if buf.String() != "original" {
		t.Fatalf("pre-existing file changed: %q", buf.String())
	}
}

func TestUpdateWithoutFileKeepsPoster(t *testing.T) {
	svc, _, _, _ := newService(t)

	added, err := svc.AddMovie(request("Old Title"), makeFileHeader(t, "keep.png", []byte("img")))
	if err != nil {
		t.Fatalf("add: %v", err)
	}

	req := request("New Title")
	updated, err := svc.UpdateMovie(added.MovieID, req, nil)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Poster != "keep.png" {
		t.Fatalf("poster should be retained, got %q", updated.Poster)
	}

	got, err := svc.GetMovie(added.MovieID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Title != "New Title" || got.Poster != "keep.png" {
		t.Fatalf("expected new metadata with old poster, got %+v", got)
	}
}

func TestUpdateWithFileReplacesPoster(t *testing.T) {
	svc, _, files, cfg := newService(t)

	added, err := svc.AddMovie(request("Movie"), makeFileHeader(t, "old.png", []byte("old")))
	if err != nil {
		t.Fatalf("add: %v", err)
	}

	updated, err := svc.UpdateMovie(added.MovieID, request("Movie"), makeFileHeader(t, "new.png", []byte("new")))
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Poster != "new.png" {
		t.Fatalf("expected new poster filename, got %q", updated.Poster)
	}

	if files.Exists(cfg.PosterDir, "old.png") {
		t.Fatal("old poster should be removed from storage")
	}
	rc, err := files.GetResourceFile(cfg.PosterDir, "new.png")
	if err != nil {
		t.Fatalf("new poster not retrievable: %v", err)
	}
	rc.Close()
}

func TestDeleteRemovesRowAndPoster(t *testing.T) {
	svc, _, files, cfg := newService(t)

	added, err := svc.AddMovie(request("Doomed"), makeFileHeader(t, "doomed.png", []byte("img")))
	if err != nil {
		t.Fatalf("add: %v", err)
	}

	confirmation, err := svc.DeleteMovie(added.MovieID)
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	want := fmt.Sprintf("Movie with id = %d has been deleted", added.MovieID)
	if confirmation != want {
		t.Fatalf("unexpected confirmation %q", confirmation)
	}

	if _, err := svc.GetMovie(added.MovieID); !errors.Is(err, domain.ErrMovieNotFound) {
		t.Fatalf("expected ErrMovieNotFound after delete, got %v", err)
	}
	if _, err := files.GetResourceFile(cfg.PosterDir, "doomed.png"); !errors.Is(err, domain.ErrFileNotFound) {
		t.Fatalf("expected ErrFileNotFound after delete, got %v", err)
	}
}

func TestDeleteMissingMovie(t *testing.T) {
	svc, _, _, _ := newService(t)
	if _, err := svc.DeleteMovie(42); !errors.Is(err, domain.ErrMovieNotFound) {
		t.Fatalf("expected ErrMovieNotFound, got %v", err)
	}
}

func addN(t *testing.T, svc *movieService.Service, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		req := request(fmt.Sprintf("Movie %c", 'A'+i))
		req.ReleaseYear = 2000 + i
		_, err := svc.AddMovie(req, makeFileHeader(t, fmt.Sprintf("m%d.png", i), []byte("img")))
		if err != nil {
			t.Fatalf("add %d: %v", i, err)
		}
	}
}

func TestPaginationMetadata(t *testing.T) {
	svc, _, _, _ := newService(t)
	addN(t, svc, 5)

	page0, err := svc.GetMoviesWithPagination(0, 2)
	if err != nil {
		t.Fatalf("page 0: %v", err)
	}
	if len(page0.Content) != 2 {
		t.Fatalf("expected 2 items on page 0, got %d", len(page0.Content))
	}
	if page0.TotalElements != 5 || page0.TotalPages != 3 || page0.IsLast {
		t.Fatalf("unexpected page 0 metadata: %+v", page0)
	}

	page2, err := svc.GetMoviesWithPagination(2, 2)
	if err != nil {
		t.Fatalf("page 2: %v", err)
	}
	if len(page2.Content) != 1 || !page2.IsLast {
		t.Fatalf("unexpected last page: %+v", page2)
	}
}

func TestSortingDirectionContract(t *testing.T) {
	svc, _, _, _ := newService(t)
	addN(t, svc, 3) // titles Movie A, Movie B, Movie C

	asc, err := svc.GetMoviesWithPaginationAndSorting(0, 3, "title", "ASC")
	if err != nil {
		t.Fatalf("asc: %v", err)
	}
	if asc.Content[0].Title != "Movie A" || asc.Content[2].Title != "Movie C" {
		t.Fatalf("expected ascending order, got %+v", asc.Content)
	}

	// anything that is not "asc" sorts descending, misspellings included
	desc, err := svc.GetMoviesWithPaginationAndSorting(0, 3, "title", "dsc")
	if err != nil {
		t.Fatalf("desc: %v", err)
	}
	if desc.Content[0].Title != "Movie C" || desc.Content[2].Title != "Movie A" {
		t.Fatalf("expected descending order for non-asc direction, got %+v", desc.Content)
	}
}

func TestSortingUnknownFieldFallsBackToDefault(t *testing.T) {
	svc, _, _, _ := newService(t)
	addN(t, svc, 3)

	resp, err := svc.GetMoviesWithPaginationAndSorting(0, 3, "nonsense; DROP TABLE movies", "asc")
	if err != nil {
		t.Fatalf("sorted page: %v", err)
	}
	if resp.Content[0].Title != "Movie A" {
		t.Fatalf("expected default title ordering, got %+v", resp.Content)
	}
}
