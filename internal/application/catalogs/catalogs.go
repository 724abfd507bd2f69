// Package catalogs carga de los catálogos del servicio de negocio al contexto
// de consulta que usan el generador, los validadores y el layout.
package catalogs

import (
	"context"
	"fmt"

	"github.com/beiplas/nexpot/internal/domain/entity"
	"github.com/beiplas/nexpot/internal/domain/repository"
	"github.com/beiplas/nexpot/internal/domain/validate"
)

// Loader arma entity.Catalogs a partir de los recursos productTypes y materials.
type Loader struct {
	repo repository.CatalogRepository
}

func NewLoader(repo repository.CatalogRepository) *Loader {
	return &Loader{repo: repo}
}

// Load trae ambos catálogos y los indexa por id. Los registros inactivos se
// conservan: las órdenes históricas los siguen referenciando.
func (l *Loader) Load(ctx context.Context) (entity.Catalogs, error) {
	productTypes, err := l.repo.ProductTypes(ctx)
	if err != nil {
		return entity.Catalogs{}, fmt.Errorf("cargar tipos de producto: %w", err)
	}
	materials, err := l.repo.Materials(ctx)
	if err != nil {
		return entity.Catalogs{}, fmt.Errorf("cargar materiales: %w", err)
	}

	cat := entity.Catalogs{
		ProductTypes: make(map[int]entity.ProductType, len(productTypes)),
		Materials:    make(map[int]entity.Material, len(materials)),
	}
	for _, pt := range productTypes {
		cat.ProductTypes[pt.ID] = pt
	}
	for _, m := range materials {
		cat.Materials[m.ID] = m
	}
	return cat, nil
}

// ValidateProductTypeName unicidad del nombre de tipo de producto sin
// distinguir mayúsculas ni tildes.
func ValidateProductTypeName(name string, cat entity.Catalogs, excludeID int) string {
	existing := make(map[int]string, len(cat.ProductTypes))
	for id, pt := range cat.ProductTypes {
		existing[id] = pt.Name
	}
	return validate.UniqueName(name, existing, excludeID)
}

// ValidateMaterialName unicidad del nombre de material.
func ValidateMaterialName(name string, cat entity.Catalogs, excludeID int) string {
	existing := make(map[int]string, len(cat.Materials))
	for id, m := range cat.Materials {
		existing[id] = m.Name
	}
	return validate.UniqueName(name, existing, excludeID)
}
