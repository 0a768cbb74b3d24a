package services

import (
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/bunkit/bunkit-be/internal/models"
)

// ProductServiceProvider defines the interface for product services.
type ProductServiceProvider interface {
	CreateProduct(title, description, category string, price *int64, imageURL, sellerID string) (models.Product, error)
	GetAllProducts() ([]models.Product, error)
	GetProductsBySeller(sellerID string) ([]models.Product, error)
	DeleteProduct(id, callerID string) error
}

// ProductService provides business logic for product listings.
type ProductService struct {
	db *sql.DB
}

// NewProductService creates a new ProductService.
func NewProductService(db *sql.DB) *ProductService {
	return &ProductService{db: db}
}

// CreateProduct inserts a new listing owned by sellerID. The image must
// already be on the media host; imageURL is its durable reference.
func (s *ProductService) CreateProduct(title, description, category string, price *int64, imageURL, sellerID string) (models.Product, error) {
	product := models.Product{
		ID:          uuid.New().String(),
		Title:       title,
		Description: description,
		Category:    category,
		Price:       price,
		ImageURL:    imageURL,
		SellerID:    sellerID,
		CreatedAt:   time.Now().UTC(),
	}

	stmt, err := s.db.Prepare("INSERT INTO products(id, title, description, category, price, image_url, seller_id, created_at) VALUES(?, ?, ?, ?, ?, ?, ?, ?)")
	if err != nil {
		return models.Product{}, err
	}
	defer stmt.Close()

	var priceVal sql.NullInt64
	if price != nil {
		priceVal = sql.NullInt64{Int64: *price, Valid: true}
	}

	_, err = stmt.Exec(product.ID, product.Title, product.Description, product.Category, priceVal, product.ImageURL, product.SellerID, product.CreatedAt)
	if err != nil {
		return models.Product{}, err
	}

	return product, nil
}

// scanProduct is a helper to scan a product from a row or rows object.
func scanProduct(scanner interface{ Scan(...interface{}) error }) (models.Product, error) {
	var p models.Product
	var price sql.NullInt64

	err := scanner.Scan(&p.ID, &p.Title, &p.Description, &p.Category, &price, &p.ImageURL, &p.SellerID, &p.CreatedAt)
	if err != nil {
		return p, err
	}

	if price.Valid {
		p.Price = &price.Int64
	}
	return p, nil
}

const productColumns = "id, title, description, category, price, image_url, seller_id, created_at"

// GetAllProducts retrieves every listing, newest first, with seller summaries
// attached.
func (s *ProductService) GetAllProducts() ([]models.Product, error) {
	rows, err := s.db.Query("SELECT " + productColumns + " FROM products ORDER BY created_at DESC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return s.collectWithSellers(rows)
}

// GetProductsBySeller retrieves one seller's listings, newest first.
func (s *ProductService) GetProductsBySeller(sellerID string) ([]models.Product, error) {
	rows, err := s.db.Query("SELECT "+productColumns+" FROM products WHERE seller_id = ? ORDER BY created_at DESC", sellerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return s.collectWithSellers(rows)
}

func (s *ProductService) collectWithSellers(rows *sql.Rows) ([]models.Product, error) {
	products := []models.Product{}
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return s.attachSellers(products)
}

// attachSellers embeds {name, whatsapp} for each product's seller. A missing
// seller record degrades to null fields instead of failing the list.
// One lookup per product; batch here if listings ever grow large.
func (s *ProductService) attachSellers(products []models.Product) ([]models.Product, error) {
	for i := range products {
		summary := &models.SellerSummary{}

		var name, whatsapp string
		row := s.db.QueryRow("SELECT name, whatsapp FROM users WHERE id = ?", products[i].SellerID)
		err := row.Scan(&name, &whatsapp)
		switch {
		case err == nil:
			summary.Name = &name
			summary.Whatsapp = &whatsapp
		case errors.Is(err, sql.ErrNoRows):
			// seller deleted, keep nulls
		default:
			return nil, err
		}

		products[i].Seller = summary
	}
	return products, nil
}

// DeleteProduct removes a listing after checking that callerID owns it.
func (s *ProductService) DeleteProduct(id, callerID string) error {
	var sellerID string
	row := s.db.QueryRow("SELECT seller_id FROM products WHERE id = ?", id)
	if err := row.Scan(&sellerID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrProductNotFound
		}
		return err
	}

	if sellerID != callerID {
		return ErrNotOwner
	}

	_, err := s.db.Exec("DELETE FROM products WHERE id = ?", id)
	return err
}
