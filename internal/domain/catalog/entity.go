// internal/domain/catalog/entity.go
package catalog

// Product represents a catalog product sourced from the aggregated JSON
// document. Price is in FCFA, which has no fractional minor unit.
type Product struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Price    int64  `json:"price"`
	Image    string `json:"image"`
	Category string `json:"category"`
}

// Canonical categories. Chambre and thiouraye are legacy names kept in old
// product records; both file under maison.
const (
	CategoryCorporel = "corporel"
	CategoryMaison   = "maison"
	CategoryVetement = "vetement"

	legacyChambre   = "chambre"
	legacyThiouraye = "thiouraye"
)

// Categories returns the canonical categories in display order.
func Categories() []string {
	return []string{CategoryCorporel, CategoryMaison, CategoryVetement}
}

// CategoryLabel returns the human-readable label for a canonical category.
func CategoryLabel(category string) string {
	switch category {
	case CategoryCorporel:
		return "Parfums Corporels"
	case CategoryMaison:
		return "Parfums de Maison"
	case CategoryVetement:
		return "Vêtements"
	default:
		return category
	}
}

// ResolveAlias maps legacy category names onto canonical ones and leaves
// everything else untouched. Lookups use this so an unknown category stays
// unknown and comes back empty instead of borrowing another bucket.
func ResolveAlias(category string) string {
	switch category {
	case legacyChambre, legacyThiouraye:
		return CategoryMaison
	default:
		return category
	}
}

// NormalizeCategory maps a product record's category onto a canonical one.
// Records with no usable category default to corporel, matching the
// historical id-prefix fallback; this applies to records at load time only,
// never to lookups.
func NormalizeCategory(category string) string {
	switch resolved := ResolveAlias(category); resolved {
	case CategoryCorporel, CategoryMaison, CategoryVetement:
		return resolved
	default:
		return CategoryCorporel
	}
}
