package movie

import (
	"encoding/json"
	"errors"
	"mime/multipart"
	"strconv"

	"movieflix/config"
	"movieflix/domain"
	"movieflix/logger"
	movieService "movieflix/services/movie"
	"movieflix/types"
	movieTypes "movieflix/types/movie"
	"movieflix/utils"

	"github.com/gofiber/fiber/v2"
)

// Controller handles the movie catalog endpoints.
type Controller struct {
	service *movieService.Service
	logger  *logger.AsyncLogger
	cfg     *config.Config
}

func NewMovieController(service *movieService.Service, asyncLogger *logger.AsyncLogger, cfg *config.Config) *Controller {
	return &Controller{service: service, logger: asyncLogger, cfg: cfg}
}

// statusForError maps domain failures onto HTTP statuses; anything
// unrecognized is an internal error.
func statusForError(err error) int {
	switch {
	case errors.Is(err, domain.ErrMovieNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, domain.ErrEmptyFile), errors.Is(err, domain.ErrFileExists):
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}

func fail(c *fiber.Ctx, err error) error {
	status := statusForError(err)
	if status == fiber.StatusInternalServerError {
		logger.Error("Movie operation failed", err)
		return c.Status(status).JSON(types.ErrorResponse{
			Message: "Internal server error",
			Status:  status,
		})
	}
	return c.Status(status).JSON(types.ErrorResponse{
		Message: err.Error(),
		Status:  status,
	})
}

// parseMoviePart decodes the movieDto JSON part and validates it.
func parseMoviePart(c *fiber.Ctx) (*movieTypes.MovieRequest, string) {
	raw := c.FormValue("movieDto")
	if raw == "" {
		return nil, "movieDto form field is required"
	}

	var req movieTypes.MovieRequest
	if err := json.Unmarshal([]byte(raw), &req); err != nil {
		return nil, "movieDto is not valid JSON: " + err.Error()
	}
	if msg := utils.ValidateStruct(req); msg != "" {
		return nil, msg
	}
	return &req, ""
}

// formFile returns the uploaded file header, nil when the part is
// missing or empty.
func formFile(c *fiber.Ctx) *multipart.FileHeader {
	fh, err := c.FormFile("file")
	if err != nil || fh == nil || fh.Size == 0 {
		return nil
	}
	return fh
}

func parseID(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("idMovie"), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}

// AddMovie handles POST /api/v1/movie/add-movie (multipart: file +
// movieDto JSON part). Returns 201 with the created view.
func (mc *Controller) AddMovie(c *fiber.Ctx) error {
	req, msg := parseMoviePart(c)
	if msg != "" {
		return c.Status(fiber.StatusBadRequest).JSON(types.ErrorResponse{
			Message: msg,
			Status:  fiber.StatusBadRequest,
		})
	}

	fh, err := c.FormFile("file")
	if err != nil {
		fh = nil
	}

	resp, err := mc.service.AddMovie(*req, fh)
	if err != nil {
		return fail(c, err)
	}

	mc.audit(c)
	logger.Success("Movie added: " + resp.Title)
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// GetMovie handles GET /api/v1/movie/:idMovie.
func (mc *Controller) GetMovie(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ErrorResponse{
			Message: "Invalid movie id",
			Status:  fiber.StatusBadRequest,
		})
	}

	resp, err := mc.service.GetMovie(id)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(resp)
}

// GetAllMovies handles GET /api/v1/movie/all.
func (mc *Controller) GetAllMovies(c *fiber.Ctx) error {
	resp, err := mc.service.GetAllMovies()
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(resp)
}

// UpdateMovie handles PUT /api/v1/movie/update/:idMovie. The file part
// is optional; when absent or empty the existing poster is kept.
func (mc *Controller) UpdateMovie(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ErrorResponse{
			Message: "Invalid movie id",
			Status:  fiber.StatusBadRequest,
		})
	}

	req, msg := parseMoviePart(c)
	if msg != "" {
		return c.Status(fiber.StatusBadRequest).JSON(types.ErrorResponse{
			Message: msg,
			Status:  fiber.StatusBadRequest,
		})
	}

	resp, err := mc.service.UpdateMovie(id, *req, formFile(c))
	if err != nil {
		return fail(c, err)
	}

	mc.audit(c)
	return c.Status(fiber.StatusOK).JSON(resp)
}

// DeleteMovie handles DELETE /api/v1/movie/delete/:idMovie and returns a
// human-readable confirmation string.
func (mc *Controller) DeleteMovie(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ErrorResponse{
			Message: "Invalid movie id",
			Status:  fiber.StatusBadRequest,
		})
	}

	confirmation, err := mc.service.DeleteMovie(id)
	if err != nil {
		return fail(c, err)
	}

	mc.audit(c)
	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Message: confirmation,
		Status:  fiber.StatusOK,
	})
}

// GetMoviesWithPagination handles GET /api/v1/movie/allMoviesPage.
// Query keys mirror the public contract, including the pageNumBer
// spelling.
func (mc *Controller) GetMoviesWithPagination(c *fiber.Ctx) error {
	pageNumber := c.QueryInt("pageNumBer", mc.cfg.DefaultPageNumber)
	pageSize := c.QueryInt("pageSize", mc.cfg.DefaultPageSize)

	resp, err := mc.service.GetMoviesWithPagination(pageNumber, pageSize)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(resp)
}

// GetMoviesWithPaginationAndSorting handles
// GET /api/v1/movie/allMoviesPageAndSorting.
func (mc *Controller) GetMoviesWithPaginationAndSorting(c *fiber.Ctx) error {
	pageNumber := c.QueryInt("pageNumBer", mc.cfg.DefaultPageNumber)
	pageSize := c.QueryInt("pageSize", mc.cfg.DefaultPageSize)
	sortBy := c.Query("sortBy", mc.cfg.DefaultSortBy)
	sortDirection := c.Query("sortDirection", mc.cfg.DefaultSortDirection)

	resp, err := mc.service.GetMoviesWithPaginationAndSorting(pageNumber, pageSize, sortBy, sortDirection)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(resp)
}

func (mc *Controller) audit(c *fiber.Ctx) {
	if mc.logger != nil {
		mc.logger.Log(utils.CreateSanitizedLogEntry(c))
	}
}
