package product

import "github.com/akulikov/pharmshop-backend/pkg/sqlbuilder"

// listJoinColumns is the full set of columns the list join exposes to
// filter predicates. The catalog constructor rejects anything outside it.
var listJoinColumns = []string{
	"p.name",
	"p.description",
	"p.manufacturer",
	"p.category_id",
	"p.is_popular",
	"p.is_new",
	"c.name",
}

const listSelect = `SELECT p.id, p.name, p.description, p.price, p.old_price, p.image,
       p.category_id, c.name AS category_name, p.manufacturer, p.country,
       p.in_stock, p.stock_quantity, p.is_popular, p.is_new,
       p.composition, p.indications, p.usage, p.contraindications,
       p.dosage, p.expiry_date, p.storage_conditions, p.created_at
FROM products p
LEFT JOIN categories c ON p.category_id = c.id`

const listCount = `SELECT COUNT(*)
FROM products p
LEFT JOIN categories c ON p.category_id = c.id`

const listOrder = "ORDER BY p.created_at DESC, p.id DESC"

// newListQuery registers the product filter catalog. Predicate order is
// fixed here; it decides parameter order for every list statement.
func newListQuery() (*sqlbuilder.FilterQuery, error) {
	catalog, err := sqlbuilder.NewCatalog(
		listJoinColumns,
		sqlbuilder.Predicate{Key: "category", Mode: sqlbuilder.ModeExact, Columns: []string{"c.name"}},
		sqlbuilder.Predicate{Key: "category_id", Mode: sqlbuilder.ModeExact, Columns: []string{"p.category_id"}},
		sqlbuilder.Predicate{Key: "search", Mode: sqlbuilder.ModeSubstringMulti, Columns: []string{"p.name", "p.description", "p.manufacturer", "c.name"}},
		sqlbuilder.Predicate{Key: "popular", Mode: sqlbuilder.ModeBoolFlag, Columns: []string{"p.is_popular"}},
		sqlbuilder.Predicate{Key: "new", Mode: sqlbuilder.ModeBoolFlag, Columns: []string{"p.is_new"}},
	)
	if err != nil {
		return nil, err
	}
	return sqlbuilder.NewFilterQuery(catalog, listSelect, listCount, listOrder), nil
}
