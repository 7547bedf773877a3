package savedquery

import (
	"gorm.io/gorm"
)

type Repository interface {
	Create(query *SavedQuery) error
	FindByID(id uint) (*SavedQuery, error)
	FindAll() ([]SavedQuery, error)
	Update(query *SavedQuery) error
	Delete(id uint) (int64, error)
}

type SavedQuerySQLRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &SavedQuerySQLRepository{db: db}
}

func (r *SavedQuerySQLRepository) Create(query *SavedQuery) error {
	return r.db.Create(query).Error
}

func (r *SavedQuerySQLRepository) FindByID(id uint) (*SavedQuery, error) {
	var query SavedQuery
	err := r.db.First(&query, id).Error
	if err != nil {
		return nil, err
	}
	return &query, nil
}

func (r *SavedQuerySQLRepository) FindAll() ([]SavedQuery, error) {
	var queries []SavedQuery
	err := r.db.Order("created_at DESC, id DESC").Find(&queries).Error
	if err != nil {
		return nil, err
	}
	return queries, nil
}

func (r *SavedQuerySQLRepository) Update(query *SavedQuery) error {
	return r.db.Save(query).Error
}

func (r *SavedQuerySQLRepository) Delete(id uint) (int64, error) {
	result := r.db.Delete(&SavedQuery{}, id)
	return result.RowsAffected, result.Error
}
