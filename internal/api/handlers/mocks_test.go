package handlers

import (
	"context"
	"errors"
	"io"

	"github.com/bunkit/bunkit-be/internal/models"
)

// mockUserService is a mock implementation of services.UserServiceProvider.
type mockUserService struct {
	GetUserByIDFunc      func(id string) (models.User, error)
	CreateUserFunc       func(name, email, password, whatsapp string) (models.User, error)
	AuthenticateUserFunc func(email, password string) (models.User, error)
}

func (m *mockUserService) GetUserByID(id string) (models.User, error) {
	if m.GetUserByIDFunc != nil {
		return m.GetUserByIDFunc(id)
	}
	return models.User{}, errors.New("not implemented")
}

func (m *mockUserService) CreateUser(name, email, password, whatsapp string) (models.User, error) {
	if m.CreateUserFunc != nil {
		return m.CreateUserFunc(name, email, password, whatsapp)
	}
	return models.User{}, errors.New("not implemented")
}

func (m *mockUserService) AuthenticateUser(email, password string) (models.User, error) {
	if m.AuthenticateUserFunc != nil {
		return m.AuthenticateUserFunc(email, password)
	}
	return models.User{}, errors.New("not implemented")
}

// mockProductService is a mock implementation of services.ProductServiceProvider.
type mockProductService struct {
	CreateProductFunc       func(title, description, category string, price *int64, imageURL, sellerID string) (models.Product, error)
	GetAllProductsFunc      func() ([]models.Product, error)
	GetProductsBySellerFunc func(sellerID string) ([]models.Product, error)
	DeleteProductFunc       func(id, callerID string) error

	createCalls int
}

func (m *mockProductService) CreateProduct(title, description, category string, price *int64, imageURL, sellerID string) (models.Product, error) {
	m.createCalls++
	if m.CreateProductFunc != nil {
		return m.CreateProductFunc(title, description, category, price, imageURL, sellerID)
	}
	return models.Product{}, errors.New("not implemented")
}

func (m *mockProductService) GetAllProducts() ([]models.Product, error) {
	if m.GetAllProductsFunc != nil {
		return m.GetAllProductsFunc()
	}
	return nil, errors.New("not implemented")
}

func (m *mockProductService) GetProductsBySeller(sellerID string) ([]models.Product, error) {
	if m.GetProductsBySellerFunc != nil {
		return m.GetProductsBySellerFunc(sellerID)
	}
	return nil, errors.New("not implemented")
}

func (m *mockProductService) DeleteProduct(id, callerID string) error {
	if m.DeleteProductFunc != nil {
		return m.DeleteProductFunc(id, callerID)
	}
	return errors.New("not implemented")
}

// mockUploader is a mock implementation of media.Uploader.
type mockUploader struct {
	UploadFunc func(ctx context.Context, r io.Reader, filename, contentType string) (string, error)

	uploadCalls int
}

func (m *mockUploader) Upload(ctx context.Context, r io.Reader, filename, contentType string) (string, error) {
	m.uploadCalls++
	if m.UploadFunc != nil {
		return m.UploadFunc(ctx, r, filename, contentType)
	}
	return "https://img.example.com/mock.jpg", nil
}
