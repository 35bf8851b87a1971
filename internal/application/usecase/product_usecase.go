package usecase

import (
	"context"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/jhoicas/Mrp-api/internal/application/dto"
	"github.com/jhoicas/Mrp-api/internal/domain"
	"github.com/jhoicas/Mrp-api/internal/domain/entity"
	"github.com/jhoicas/Mrp-api/internal/domain/repository"
)

// ProductUseCase CRUD del catálogo de productos y su marcador de BOM.
type ProductUseCase struct {
	productRepo repository.ProductRepository
	bomRepo     repository.BOMRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(productRepo repository.ProductRepository, bomRepo repository.BOMRepository) *ProductUseCase {
	return &ProductUseCase{productRepo: productRepo, bomRepo: bomRepo}
}

// Create persiste un nuevo producto. SKU único por empresa.
func (uc *ProductUseCase) Create(ctx context.Context, companyID string, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.SKU == "" || in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.productRepo.GetByCompanyAndSKU(companyID, in.SKU)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	unitMeasure := in.UnitMeasure
	if unitMeasure == "" {
		unitMeasure = "unit"
	}
	product := &entity.Product{
		ID:          uuid.New().String(),
		CompanyID:   companyID,
		SKU:         in.SKU,
		Name:        in.Name,
		Description: in.Description,
		UnitMeasure: unitMeasure,
		SearchText:  NormalizeSearch(in.SKU + " " + in.Name),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.productRepo.Create(product); err != nil {
		return nil, err
	}
	return uc.toProductResponse(ctx, product)
}

// GetByID obtiene un producto de la empresa, con su marcador de BOM.
func (uc *ProductUseCase) GetByID(ctx context.Context, companyID, id string) (*dto.ProductResponse, error) {
	product, err := uc.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if product.CompanyID != companyID {
		return nil, domain.ErrForbidden
	}
	return uc.toProductResponse(ctx, product)
}

// Update actualiza nombre/descripción/unidad de un producto existente.
func (uc *ProductUseCase) Update(ctx context.Context, companyID, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	product, err := uc.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if product.CompanyID != companyID {
		return nil, domain.ErrForbidden
	}
	product.Name = in.Name
	product.Description = in.Description
	if in.UnitMeasure != "" {
		product.UnitMeasure = in.UnitMeasure
	}
	product.SearchText = NormalizeSearch(product.SKU + " " + product.Name)
	product.UpdatedAt = time.Now()
	if err := uc.productRepo.Update(product); err != nil {
		return nil, err
	}
	return uc.toProductResponse(ctx, product)
}

// List lista productos con paginación; search filtra por SKU/nombre sin
// distinguir mayúsculas ni acentos. Ambos lados se normalizan: el término
// aquí y la columna search_text al crear/actualizar el producto, de modo que
// "Tornillería" encuentra tanto "tornilleria" como "Tornillería".
func (uc *ProductUseCase) List(ctx context.Context, companyID, search string, page dto.PageRequest) ([]dto.ProductResponse, error) {
	page.DefaultPage()
	products, err := uc.productRepo.ListByCompany(companyID, NormalizeSearch(search), page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		resp, err := uc.toProductResponse(ctx, p)
		if err != nil {
			return nil, err
		}
		out = append(out, *resp)
	}
	return out, nil
}

// UpsertBOM registra (o reemplaza) la lista de materiales activa del producto.
// El motor solo usará su existencia para clasificar fabricar-vs-comprar.
func (uc *ProductUseCase) UpsertBOM(ctx context.Context, companyID, productID string, in dto.UpsertBOMRequest) error {
	product, err := uc.productRepo.GetByID(productID)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	if product.CompanyID != companyID {
		return domain.ErrForbidden
	}
	now := time.Now()
	bom := &entity.BOM{
		ID:         uuid.New().String(),
		CompanyID:  companyID,
		ProductID:  productID,
		Components: in.Components,
		Active:     true,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	return uc.bomRepo.Upsert(ctx, bom)
}

// RemoveBOM desactiva la BOM del producto (pasa a clasificarse como compra).
func (uc *ProductUseCase) RemoveBOM(ctx context.Context, companyID, productID string) error {
	product, err := uc.productRepo.GetByID(productID)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	if product.CompanyID != companyID {
		return domain.ErrForbidden
	}
	return uc.bomRepo.Deactivate(ctx, companyID, productID)
}

func (uc *ProductUseCase) toProductResponse(ctx context.Context, p *entity.Product) (*dto.ProductResponse, error) {
	hasBOM, err := uc.bomRepo.ExistsActiveByProduct(ctx, p.CompanyID, p.ID)
	if err != nil {
		return nil, err
	}
	return &dto.ProductResponse{
		ID:          p.ID,
		SKU:         p.SKU,
		Name:        p.Name,
		Description: p.Description,
		UnitMeasure: p.UnitMeasure,
		HasBOM:      hasBOM,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}, nil
}

// NormalizeSearch pasa el término a minúsculas y elimina acentos/diacríticos
// ("Tornillería" -> "tornilleria") para búsqueda insensible a tildes.
func NormalizeSearch(s string) string {
	if s == "" {
		return ""
	}
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		out = s
	}
	return strings.ToLower(strings.TrimSpace(out))
}
