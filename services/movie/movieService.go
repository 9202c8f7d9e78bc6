package movie

import (
	"fmt"
	"mime/multipart"
	"strings"

	"movieflix/config"
	"movieflix/constants"
	"movieflix/domain"
	movieModel "movieflix/models/movie"
	"movieflix/repository"
	"movieflix/services/storage"
	movieTypes "movieflix/types/movie"
)

// sortColumns maps exposed sort field names onto table columns. Sort
// input never reaches the ORDER BY clause directly.
var sortColumns = map[string]string{
	"movieId":     "id",
	"title":       "title",
	"director":    "director",
	"studio":      "studio",
	"releaseYear": "release_year",
	"poster":      "poster",
}

// Service implements the movie catalog. Each mutation touches the poster
// file and the row as two separate steps; the ordering per operation is
// part of the contract (add: file then row, update: remove old file,
// write new file, then row, delete: file then row).
type Service struct {
	repo  repository.MovieRepository
	files storage.FileService
	cfg   *config.Config
}

func NewMovieService(repo repository.MovieRepository, files storage.FileService, cfg *config.Config) *Service {
	return &Service{repo: repo, files: files, cfg: cfg}
}

func (s *Service) posterURL(filename string) string {
	return s.cfg.BaseURL + constants.PosterURLPrefix + filename
}

func (s *Service) toResponse(m *movieModel.Movie) movieTypes.MovieResponse {
	return movieTypes.MovieResponse{
		MovieID:     m.ID,
		Title:       m.Title,
		Director:    m.Director,
		Studio:      m.Studio,
		MovieCast:   m.MovieCast,
		ReleaseYear: m.ReleaseYear,
		Poster:      m.Poster,
		PosterURL:   s.posterURL(m.Poster),
	}
}

// AddMovie uploads the poster and then persists the row. A failed row
// write after a successful upload leaves an orphan file; there is no
// compensation step.
func (s *Service) AddMovie(req movieTypes.MovieRequest, fileHeader *multipart.FileHeader) (*movieTypes.MovieResponse, error) {
	if fileHeader == nil || fileHeader.Size == 0 {
		return nil, domain.ErrEmptyFile
	}

	// Check-then-act: a concurrent add with the same name can pass this
	// check too; the exclusive create in UploadFile decides the loser.
	if s.files.Exists(s.cfg.PosterDir, fileHeader.Filename) {
		return nil, domain.ErrFileExists
	}

	filename, err := s.files.UploadFile(s.cfg.PosterDir, fileHeader)
	if err != nil {
		return nil, err
	}

	m := movieModel.Movie{
		Title:       req.Title,
		Director:    req.Director,
		Studio:      req.Studio,
		MovieCast:   movieModel.StringSlice(req.MovieCast).Dedupe(),
		ReleaseYear: req.ReleaseYear,
		Poster:      filename,
	}
	if err := s.repo.Save(&m); err != nil {
		return nil, err
	}

	resp := s.toResponse(&m)
	return &resp, nil
}

func (s *Service) GetMovie(id uint) (*movieTypes.MovieResponse, error) {
	m, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	resp := s.toResponse(m)
	return &resp, nil
}

func (s *Service) GetAllMovies() ([]movieTypes.MovieResponse, error) {
	movies, err := s.repo.FindAll()
	if err != nil {
		return nil, err
	}

	responses := make([]movieTypes.MovieResponse, 0, len(movies))
	for i := range movies {
		responses = append(responses, s.toResponse(&movies[i]))
	}
	return responses, nil
}

// UpdateMovie rewrites the metadata. With a file present the old poster
// is removed before the new one is uploaded; a failure in between leaves
// the row pointing at the deleted filename until the next successful
// update or delete. With no file the poster reference is untouched.
func (s *Service) UpdateMovie(id uint, req movieTypes.MovieRequest, fileHeader *multipart.FileHeader) (*movieTypes.MovieResponse, error) {
	m, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}

	filename := m.Poster
	if fileHeader != nil && fileHeader.Size > 0 {
		if err := s.files.RemoveFile(s.cfg.PosterDir, filename); err != nil {
			return nil, err
		}
		filename, err = s.files.UploadFile(s.cfg.PosterDir, fileHeader)
		if err != nil {
			return nil, err
		}
	}

	m.Title = req.Title
	m.Director = req.Director
	m.Studio = req.Studio
	m.MovieCast = movieModel.StringSlice(req.MovieCast).Dedupe()
	m.ReleaseYear = req.ReleaseYear
	m.Poster = filename

	if err := s.repo.Save(m); err != nil {
		return nil, err
	}

	resp := s.toResponse(m)
	return &resp, nil
}

// DeleteMovie removes the poster file first; when that fails the row is
// left untouched and the operation fails as a whole.
func (s *Service) DeleteMovie(id uint) (string, error) {
	m, err := s.repo.FindByID(id)
	if err != nil {
		return "", err
	}

	if err := s.files.RemoveFile(s.cfg.PosterDir, m.Poster); err != nil {
		return "", err
	}
	if err := s.repo.Delete(m); err != nil {
		return "", err
	}

	return fmt.Sprintf("Movie with id = %d has been deleted", id), nil
}

func (s *Service) GetMoviesWithPagination(pageNumber, pageSize int) (*movieTypes.MoviePageResponse, error) {
	movies, total, err := s.repo.FindPage(pageNumber, pageSize)
	if err != nil {
		return nil, err
	}
	return s.toPageResponse(movies, total, pageNumber, pageSize), nil
}

// GetMoviesWithPaginationAndSorting sorts ascending only when
// sortDirection case-insensitively equals "asc"; any other value,
// misspellings included, sorts descending.
func (s *Service) GetMoviesWithPaginationAndSorting(pageNumber, pageSize int, sortBy, sortDirection string) (*movieTypes.MoviePageResponse, error) {
	column, ok := sortColumns[sortBy]
	if !ok {
		column = sortColumns[s.cfg.DefaultSortBy]
		if column == "" {
			column = "title"
		}
	}
	ascending := strings.EqualFold(sortDirection, "asc")

	movies, total, err := s.repo.FindPageSorted(pageNumber, pageSize, column, ascending)
	if err != nil {
		return nil, err
	}
	return s.toPageResponse(movies, total, pageNumber, pageSize), nil
}

func (s *Service) toPageResponse(movies []movieModel.Movie, total int64, pageNumber, pageSize int) *movieTypes.MoviePageResponse {
	content := make([]movieTypes.MovieResponse, 0, len(movies))
	for i := range movies {
		content = append(content, s.toResponse(&movies[i]))
	}

	totalPages := 0
	if pageSize > 0 {
		totalPages = int((total + int64(pageSize) - 1) / int64(pageSize))
	}

	return &movieTypes.MoviePageResponse{
		Content:       content,
		PageNumber:    pageNumber,
		PageSize:      pageSize,
		TotalElements: total,
		TotalPages:    totalPages,
		IsLast:        pageNumber+1 >= totalPages,
	}
}
