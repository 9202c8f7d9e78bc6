package repository

import (
	"errors"

	"movieflix/domain"
	movieModel "movieflix/models/movie"

	"gorm.io/gorm"
)

// MovieRepository is the storage port for catalog rows. The movie
// service depends only on this interface.
type MovieRepository interface {
	Save(m *movieModel.Movie) error
	FindByID(id uint) (*movieModel.Movie, error)
	FindAll() ([]movieModel.Movie, error)
	Delete(m *movieModel.Movie) error
	// FindPage returns one zero-based page in storage-native order plus
	// the total row count.
	FindPage(pageNumber, pageSize int) ([]movieModel.Movie, int64, error)
	// FindPageSorted orders all rows by the given column before paging.
	FindPageSorted(pageNumber, pageSize int, sortColumn string, ascending bool) ([]movieModel.Movie, int64, error)
}

type movieRepository struct {
	db *gorm.DB
}

func NewMovieRepository(db *gorm.DB) MovieRepository {
	return &movieRepository{db: db}
}

func (r *movieRepository) Save(m *movieModel.Movie) error {
	return r.db.Save(m).Error
}

func (r *movieRepository) FindByID(id uint) (*movieModel.Movie, error) {
	var m movieModel.Movie
	if err := r.db.First(&m, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrMovieNotFound
		}
		return nil, err
	}
	return &m, nil
}

func (r *movieRepository) FindAll() ([]movieModel.Movie, error) {
	var movies []movieModel.Movie
	if err := r.db.Find(&movies).Error; err != nil {
		return nil, err
	}
	return movies, nil
}

func (r *movieRepository) Delete(m *movieModel.Movie) error {
	return r.db.Delete(m).Error
}

func (r *movieRepository) FindPage(pageNumber, pageSize int) ([]movieModel.Movie, int64, error) {
	var total int64
	if err := r.db.Model(&movieModel.Movie{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var movies []movieModel.Movie
	err := r.db.Offset(pageNumber * pageSize).Limit(pageSize).Find(&movies).Error
	if err != nil {
		return nil, 0, err
	}
	return movies, total, nil
}

func (r *movieRepository) FindPageSorted(pageNumber, pageSize int, sortColumn string, ascending bool) ([]movieModel.Movie, int64, error) {
	var total int64
	if err := r.db.Model(&movieModel.Movie{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	order := sortColumn + " ASC"
	if !ascending {
		order = sortColumn + " DESC"
	}

	var movies []movieModel.Movie
	err := r.db.Order(order).Offset(pageNumber * pageSize).Limit(pageSize).Find(&movies).Error
	if err != nil {
		return nil, 0, err
	}
	return movies, total, nil
}
