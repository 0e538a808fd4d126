package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"path/filepath"
	"strings"
	"time"

	"github.com/centavo/centavo-backend/internal/domain"
	"github.com/centavo/centavo-backend/internal/repository/storage"
	"github.com/disintegration/imaging"
	"github.com/google/uuid"
)

const (
	MaxReceiptSize     = 5 * 1024 * 1024 // 5MB
	MinReceiptWidth    = 50
	MinReceiptHeight   = 50
	ReceiptThumbWidth  = 200
	ReceiptViewWidth   = 800
	ReceiptJPEGQuality = 85
	ReceiptURLExpiry   = 15 * time.Minute
)

var (
	ErrReceiptTooLarge           = errors.New("file too large. Maximum size is 5MB")
	ErrReceiptInvalidFormat      = errors.New("invalid format. Supported: JPEG, PNG, WebP")
	ErrReceiptTooSmall           = errors.New("image too small. Minimum 50x50 pixels")
	ErrReceiptInvalidData        = errors.New("invalid image data")
	ErrReceiptStorageUnavailable = errors.New("receipt storage not configured")
	ErrReceiptNotAttached        = errors.New("transaction has no receipt")
)

// receiptExtensions maps accepted extensions to content types
var receiptExtensions = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".webp": "image/webp",
}

// ReceiptURLs holds presigned URLs for a stored receipt's variants
type ReceiptURLs struct {
	ThumbnailURL string `json:"thumbnailUrl"`
	ViewURL      string `json:"viewUrl"`
	OriginalURL  string `json:"originalUrl"`
}

// ReceiptService attaches receipt images to transactions. Variants are
// resized and re-encoded as JPEG before storage; the bucket is private and
// reads go through short-lived presigned URLs.
type ReceiptService struct {
	storage         storage.ReceiptRepository
	transactionRepo domain.TransactionRepository
}

// NewReceiptService creates a new ReceiptService
func NewReceiptService(storage storage.ReceiptRepository, transactionRepo domain.TransactionRepository) *ReceiptService {
	return &ReceiptService{
		storage:         storage,
		transactionRepo: transactionRepo,
	}
}

// IsEnabled indicates whether receipt storage is configured
func (s *ReceiptService) IsEnabled() bool {
	return s != nil && s.storage != nil
}

// Attach validates and stores a receipt image for a transaction, replacing
// any previous one
func (s *ReceiptService) Attach(ctx context.Context, userID uuid.UUID, transactionID int32, data []byte, filename string) (*ReceiptURLs, error) {
	if !s.IsEnabled() {
		return nil, ErrReceiptStorageUnavailable
	}

	transaction, err := s.transactionRepo.GetByID(userID, transactionID)
	if err != nil {
		return nil, err
	}

	img, err := s.validateAndDecode(data, filename)
	if err != nil {
		return nil, err
	}

	// Drop the previous receipt before writing the new variants
	if transaction.ReceiptKey != nil {
		s.deleteVariants(ctx, *transaction.ReceiptKey)
	}

	baseKey := fmt.Sprintf("receipts/%s/%d/%s", userID, transactionID, uuid.New().String())

	variants := []struct {
		name     string
		maxWidth int
	}{
		{"thumb", ReceiptThumbWidth},
		{"view", ReceiptViewWidth},
		{"original", 0},
	}

	for _, variant := range variants {
		var processed image.Image
		if variant.maxWidth > 0 && img.Bounds().Dx() > variant.maxWidth {
			processed = imaging.Resize(img, variant.maxWidth, 0, imaging.Lanczos)
		} else {
			processed = img
		}

		var buf bytes.Buffer
		if err := jpeg.Encode(&buf, processed, &jpeg.Options{Quality: ReceiptJPEGQuality}); err != nil {
			return nil, fmt.Errorf("failed to encode receipt: %w", err)
		}

		key := variantKey(baseKey, variant.name)
		if err := s.storage.Upload(ctx, key, bytes.NewReader(buf.Bytes()), "image/jpeg", int64(buf.Len())); err != nil {
			s.deleteVariants(ctx, baseKey)
			return nil, fmt.Errorf("failed to upload %s variant: %w", variant.name, err)
		}
	}

	if err := s.transactionRepo.SetReceiptKey(userID, transactionID, &baseKey); err != nil {
		s.deleteVariants(ctx, baseKey)
		return nil, err
	}

	return s.presignAll(ctx, baseKey)
}

// URLs returns presigned URLs for a transaction's receipt variants
func (s *ReceiptService) URLs(ctx context.Context, userID uuid.UUID, transactionID int32) (*ReceiptURLs, error) {
	if !s.IsEnabled() {
		return nil, ErrReceiptStorageUnavailable
	}
	transaction, err := s.transactionRepo.GetByID(userID, transactionID)
	if err != nil {
		return nil, err
	}
	if transaction.ReceiptKey == nil {
		return nil, ErrReceiptNotAttached
	}
	return s.presignAll(ctx, *transaction.ReceiptKey)
}

// Detach removes a transaction's receipt from storage and clears the key
func (s *ReceiptService) Detach(ctx context.Context, userID uuid.UUID, transactionID int32) error {
	if !s.IsEnabled() {
		return ErrReceiptStorageUnavailable
	}
	transaction, err := s.transactionRepo.GetByID(userID, transactionID)
	if err != nil {
		return err
	}
	if transaction.ReceiptKey == nil {
		return ErrReceiptNotAttached
	}

	s.deleteVariants(ctx, *transaction.ReceiptKey)
	return s.transactionRepo.SetReceiptKey(userID, transactionID, nil)
}

func (s *ReceiptService) validateAndDecode(data []byte, filename string) (image.Image, error) {
	if len(data) > MaxReceiptSize {
		return nil, ErrReceiptTooLarge
	}
	ext := strings.ToLower(filepath.Ext(filename))
	if _, ok := receiptExtensions[ext]; !ok {
		return nil, ErrReceiptInvalidFormat
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, ErrReceiptInvalidData
	}
	bounds := img.Bounds()
	if bounds.Dx() < MinReceiptWidth || bounds.Dy() < MinReceiptHeight {
		return nil, ErrReceiptTooSmall
	}
	return img, nil
}

func (s *ReceiptService) presignAll(ctx context.Context, baseKey string) (*ReceiptURLs, error) {
	urls := &ReceiptURLs{}
	targets := map[string]*string{
		"thumb":    &urls.ThumbnailURL,
		"view":     &urls.ViewURL,
		"original": &urls.OriginalURL,
	}
	for name, dest := range targets {
		url, err := s.storage.GeneratePresignedURL(ctx, variantKey(baseKey, name), ReceiptURLExpiry)
		if err != nil {
			return nil, fmt.Errorf("failed to presign %s variant: %w", name, err)
		}
		*dest = url
	}
	return urls, nil
}

func (s *ReceiptService) deleteVariants(ctx context.Context, baseKey string) {
	// Best effort; a stale object is preferable to failing the request
	for _, name := range []string{"thumb", "view", "original"} {
		_ = s.storage.Delete(ctx, variantKey(baseKey, name))
	}
}

func variantKey(baseKey, variant string) string {
	return baseKey + "_" + variant + ".jpg"
}
