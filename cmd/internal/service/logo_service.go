package service

import (
	"boycottwatch/cmd/internal/contract"
	"boycottwatch/cmd/internal/domain/entity"
	"boycottwatch/cmd/internal/infrastructure/aws/storage"
	"boycottwatch/cmd/internal/infrastructure/logodev"
	"boycottwatch/cmd/internal/utils"
	"boycottwatch/cmd/internal/utils/apierror"
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/labstack/gommon/log"
)

// MaxLogoBytes caps admin logo uploads.
const MaxLogoBytes int64 = 2 << 20

var validLogoExts = []string{"png", "jpg", "jpeg", "webp", "svg"}

type LogoRepository interface {
	FindByDomain(domain string) (*entity.CachedLogo, error)
	Save(logo *entity.CachedLogo) error
	DeleteExpired(before int64) error
}

// LogoLookup resolves a domain to a hosted logo image URL.
type LogoLookup interface {
	Resolve(ctx context.Context, domain string) (string, error)
}

type DefaultLogoService struct {
	BrandRepo BrandRepository
	LogoRepo  LogoRepository
	Storage   storage.S3Client
	Lookup    LogoLookup
}

func NewLogoService(
	brandRepo BrandRepository,
	logoRepo LogoRepository,
	s3 storage.S3Client,
	lookup LogoLookup,
) *DefaultLogoService {
	return &DefaultLogoService{
		BrandRepo: brandRepo,
		LogoRepo:  logoRepo,
		Storage:   s3,
		Lookup:    lookup,
	}
}

// GetBrandLogo serves the admin-uploaded logo when one exists, otherwise it
// falls back to a domain-based lookup through the external logo API. Lookup
// outcomes are cached either way: a 404 from the API is recorded as
// Found=false so known-empty domains never hit the API again.
func (l *DefaultLogoService) GetBrandLogo(ctx context.Context, brandID int) (*contract.LogoResponse, apierror.ErrorResponse) {
	brand, err := l.BrandRepo.FindByID(brandID)
	if err != nil {
		log.Errorf("failed to fetch brand %d: %v", brandID, err)
		return nil, apierror.InternalServerError
	}

	if brand == nil {
		return nil, apierror.NotFoundError
	}

	if brand.LogoKey != "" {
		return &contract.LogoResponse{URL: l.Storage.PublicURL(brand.LogoKey)}, nil
	}

	domain := utils.Slugify(brand.Name) + ".com"

	cached, err := l.LogoRepo.FindByDomain(domain)
	if err != nil {
		log.Errorf("failed to read logo cache for %q: %v", domain, err)
		return nil, apierror.InternalServerError
	}

	if cached != nil {
		if !cached.Found {
			return nil, apierror.LogoNotFoundError
		}
		return &contract.LogoResponse{URL: cached.URL, Cached: true}, nil
	}

	logoURL, err := l.Lookup.Resolve(ctx, domain)
	if errors.Is(err, logodev.ErrNotFound) {
		l.cache(&entity.CachedLogo{
			Domain:   domain,
			Found:    false,
			CachedAt: utils.NowUTC(),
		})
		return nil, apierror.LogoNotFoundError
	}

	if err != nil {
		log.Errorf("logo lookup failed for %q: %v", domain, err)
		return nil, apierror.InternalServerError
	}

	l.cache(&entity.CachedLogo{
		Domain:   domain,
		URL:      logoURL,
		Found:    true,
		CachedAt: utils.NowUTC(),
	})
	return &contract.LogoResponse{URL: logoURL}, nil
}

// UploadBrandLogo stores an admin-provided logo on S3 and pins the brand to
// it, bypassing the external lookup from then on.
func (l *DefaultLogoService) UploadBrandLogo(brandID int, fileName string, data []byte) (*contract.LogoResponse, apierror.ErrorResponse) {
	if fileName == "" {
		return nil, apierror.MissingFileNameError
	}

	ext, ok := utils.CheckFileExt(fileName, validLogoExts)
	if !ok {
		return nil, apierror.NewInvalidFileExtError(ext)
	}

	if int64(len(data)) > MaxLogoBytes {
		return nil, apierror.NewLogoTooLargeError(MaxLogoBytes)
	}

	brand, err := l.BrandRepo.FindByID(brandID)
	if err != nil {
		log.Errorf("failed to fetch brand %d: %v", brandID, err)
		return nil, apierror.InternalServerError
	}

	if brand == nil {
		return nil, apierror.NotFoundError
	}

	key := storage.PathLogos + uuid.NewString() + ext
	if _, err = l.Storage.UploadFile(data, key); err != nil {
		log.Errorf("failed to upload logo of brand %d: %v", brandID, err)
		return nil, apierror.InternalServerError
	}

	if brand.LogoKey != "" {
		if err = l.Storage.DeleteFile(brand.LogoKey); err != nil {
			log.Warnf("failed to delete previous logo %q: %v", brand.LogoKey, err)
		}
	}
	brand.LogoKey = key
	brand.UpdatedAt = utils.NowUTC()

	if err = l.BrandRepo.Save(brand); err != nil {
		log.Errorf("failed to save logo key of brand %d: %v", brandID, err)
		return nil, apierror.InternalServerError
	}
	return &contract.LogoResponse{URL: l.Storage.PublicURL(key)}, nil
}

// cache failures only cost an extra lookup next time.
func (l *DefaultLogoService) cache(logo *entity.CachedLogo) {
	if err := l.LogoRepo.Save(logo); err != nil {
		log.Warnf("failed to cache logo lookup for %q: %v", logo.Domain, err)
	}
}
