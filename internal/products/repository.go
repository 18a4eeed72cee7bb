package product

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/akulikov/pharmshop-backend/pkg/db"
	"github.com/akulikov/pharmshop-backend/pkg/db/models"
	pkgerrors "github.com/akulikov/pharmshop-backend/pkg/errors"
	"github.com/akulikov/pharmshop-backend/pkg/sqlbuilder"
	"github.com/shopspring/decimal"
)

// Repository wires together product persistence: GORM for writes and the
// filter builder executed over the raw database/sql handle for reads.
type Repository struct {
	client *db.Client
	list   *sqlbuilder.FilterQuery
}

// NewRepository builds a repository tied to the provided DB client.
func NewRepository(client *db.Client) (*Repository, error) {
	list, err := newListQuery()
	if err != nil {
		return nil, err
	}
	return &Repository{client: client, list: list}, nil
}

// ListFiltered runs the data and count statements produced by one builder
// pass inside a single read-only transaction, so the total always matches
// the page of rows returned.
func (r *Repository) ListFiltered(ctx context.Context, values sqlbuilder.Values, page sqlbuilder.Page) ([]models.Product, []string, int64, error) {
	data, count, err := r.list.Build(values, page)
	if err != nil {
		return nil, nil, 0, err
	}

	var (
		rows          []models.Product
		categoryNames []string
		total         int64
	)
	err = r.client.ReadTx(ctx, func(tx *sql.Tx) error {
		res, err := tx.QueryContext(ctx, data.SQL, data.Args...)
		if err != nil {
			return err
		}
		defer res.Close()

		for res.Next() {
			item, categoryName, err := scanProductRow(res)
			if err != nil {
				return err
			}
			rows = append(rows, *item)
			categoryNames = append(categoryNames, categoryName)
		}
		if err := res.Err(); err != nil {
			return err
		}

		return tx.QueryRowContext(ctx, count.SQL, count.Args...).Scan(&total)
	})
	if err != nil {
		return nil, nil, 0, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list products")
	}
	return rows, categoryNames, total, nil
}

// FindDetail loads one product joined with its category name.
func (r *Repository) FindDetail(ctx context.Context, id int64) (*models.Product, string, error) {
	std, err := r.client.Std()
	if err != nil {
		return nil, "", pkgerrors.Wrap(pkgerrors.CodeDependency, err, "acquire sql handle")
	}

	row := std.QueryRowContext(ctx, listSelect+" WHERE p.id = $1", id)
	item, categoryName, err := scanProductRow(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, "", pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
		}
		return nil, "", pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load product")
	}
	return item, categoryName, nil
}

// CreateProduct inserts a new product row.
func (r *Repository) CreateProduct(ctx context.Context, item *models.Product) (*models.Product, error) {
	if err := r.client.DB().WithContext(ctx).Create(item).Error; err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "insert product")
	}
	return item, nil
}

// CountProducts returns the total number of catalog rows; used by readiness.
func (r *Repository) CountProducts(ctx context.Context) (int64, error) {
	var total int64
	err := r.client.DB().WithContext(ctx).Model(&models.Product{}).Count(&total).Error
	return total, err
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanProductRow(row rowScanner) (*models.Product, string, error) {
	var (
		item         models.Product
		description  sql.NullString
		oldPrice     decimal.NullDecimal
		image        sql.NullString
		categoryID   sql.NullInt64
		categoryName sql.NullString
		manufacturer sql.NullString
		country      sql.NullString
		composition  sql.NullString
		indications  sql.NullString
		usage        sql.NullString
		contra       sql.NullString
		dosage       sql.NullString
		expiry       sql.NullString
		storage      sql.NullString
		createdAt    time.Time
	)

	err := row.Scan(
		&item.ID, &item.Name, &description, &item.Price, &oldPrice, &image,
		&categoryID, &categoryName, &manufacturer, &country,
		&item.InStock, &item.StockQuantity, &item.IsPopular, &item.IsNew,
		&composition, &indications, &usage, &contra,
		&dosage, &expiry, &storage, &createdAt,
	)
	if err != nil {
		return nil, "", err
	}

	item.Description = nullStringPtr(description)
	if oldPrice.Valid {
		v := oldPrice.Decimal
		item.OldPrice = &v
	}
	item.Image = nullStringPtr(image)
	if categoryID.Valid {
		v := categoryID.Int64
		item.CategoryID = &v
	}
	item.Manufacturer = nullStringPtr(manufacturer)
	item.Country = nullStringPtr(country)
	item.Composition = nullStringPtr(composition)
	item.Indications = nullStringPtr(indications)
	item.Usage = nullStringPtr(usage)
	item.Contraindications = nullStringPtr(contra)
	item.Dosage = nullStringPtr(dosage)
	item.ExpiryDate = nullStringPtr(expiry)
	item.StorageConditions = nullStringPtr(storage)
	item.CreatedAt = createdAt

	return &item, categoryName.String, nil
}

func nullStringPtr(value sql.NullString) *string {
	if !value.Valid {
		return nil
	}
	v := value.String
	return &v
}
