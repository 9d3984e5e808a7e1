package services

import (
	"context"
	"log"

	"dinkys-shop/models"
	"dinkys-shop/repositories"
)

type ProductService struct {
	productRepo *repositories.ProductRepository
	blob        *models.CloudinaryService
}

// NewProductService wires the product repository with the blob collaborator.
// A nil blob service disables image cleanup but leaves CRUD working.
func NewProductService(blob *models.CloudinaryService) *ProductService {
	return &ProductService{
		productRepo: repositories.NewProductRepository(),
		blob:        blob,
	}
}

func (s *ProductService) List(ctx context.Context, f models.FilterSpec) ([]models.Product, error) {
	return s.productRepo.List(ctx, f)
}

func (s *ProductService) GetBySlug(ctx context.Context, slug string) (*models.Product, error) {
	return s.productRepo.GetBySlug(ctx, slug)
}

func (s *ProductService) GetByID(ctx context.Context, id string) (*models.Product, error) {
	return s.productRepo.GetByID(ctx, id)
}

func (s *ProductService) Create(ctx context.Context, req models.ProductRequest) (*models.Product, error) {
	return s.productRepo.Create(ctx, req)
}

// Update replaces the product and its image set. Blobs behind the replaced
// images are deleted best-effort; a blob-service failure never fails the
// update.
func (s *ProductService) Update(ctx context.Context, id string, req models.ProductRequest) (*models.Product, error) {
	existing, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	updated, err := s.productRepo.Update(ctx, id, req)
	if err != nil {
		return nil, err
	}

	s.deleteBlobs(ctx, existing.Images)
	return updated, nil
}

// Delete removes the product and best-effort deletes its image blobs.
func (s *ProductService) Delete(ctx context.Context, id string) error {
	existing, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.productRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.deleteBlobs(ctx, existing.Images)
	return nil
}

func (s *ProductService) deleteBlobs(ctx context.Context, images []models.ProductImage) {
	if s.blob == nil {
		return
	}
	for _, img := range images {
		if img.BlobID == "" {
			continue
		}
		if err := s.blob.DeleteImage(ctx, img.BlobID); err != nil {
			log.Printf("Failed to delete blob %s: %v", img.BlobID, err)
		}
	}
}
