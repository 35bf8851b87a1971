package repository

import "github.com/jhoicas/Mrp-api/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetByCompanyAndSKU(companyID, sku string) (*entity.Product, error)
	Update(product *entity.Product) error
	// ListByCompany lista con paginación; search filtra por SKU/nombre
	// (se espera ya normalizado sin acentos).
	ListByCompany(companyID, search string, limit, offset int) ([]*entity.Product, error)
}
