package movie

// MovieRequest is the metadata JSON part of the add/update multipart
// payload.
type MovieRequest struct {
	Title       string   `json:"title" validate:"required"`
	Director    string   `json:"director" validate:"required"`
	Studio      string   `json:"studio" validate:"required"`
	MovieCast   []string `json:"movieCast"`
	ReleaseYear int      `json:"releaseYear" validate:"required"`
}

// MovieResponse is the outward projection of a catalog row. PosterURL is
// derived on every read, never persisted.
type MovieResponse struct {
	MovieID     uint     `json:"movieId"`
	Title       string   `json:"title"`
	Director    string   `json:"director"`
	Studio      string   `json:"studio"`
	MovieCast   []string `json:"movieCast"`
	ReleaseYear int      `json:"releaseYear"`
	Poster      string   `json:"poster"`
	PosterURL   string   `json:"posterUrl"`
}

// MoviePageResponse is one page of the catalog plus pagination metadata.
type MoviePageResponse struct {
	Content       []MovieResponse `json:"content"`
	PageNumber    int             `json:"pageNumber"`
	PageSize      int             `json:"pageSize"`
	TotalElements int64           `json:"totalElements"`
	TotalPages    int             `json:"totalPages"`
	IsLast        bool            `json:"isLast"`
}
