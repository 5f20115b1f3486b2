package service

import (
	"context"
	"encoding/json"
	"os"

	"go.uber.org/zap"

	appErrors "github.com/noah-isme/maven-leads-api/pkg/errors"
)

const translationsCacheKey = "translations:bundle"

const fallbackLanguage = "en"

// TranslationService serves the static per-language UI string bundle.
type TranslationService struct {
	path   string
	cache  *CacheService
	logger *zap.Logger
}

// NewTranslationService constructs a TranslationService reading from
// the given bundle path.
func NewTranslationService(path string, cache *CacheService, logger *zap.Logger) *TranslationService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TranslationService{path: path, cache: cache, logger: logger}
}

// Get returns the mapping for the requested language, falling back to
// English when the language key is absent from the bundle.
func (s *TranslationService) Get(ctx context.Context, language string) (map[string]string, error) {
	bundle, err := s.bundle(ctx)
	if err != nil {
		return nil, err
	}

	if mapping, ok := bundle[language]; ok {
		return mapping, nil
	}
	mapping, ok := bundle[fallbackLanguage]
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrInternal, "Translations unavailable")
	}
	return mapping, nil
}

func (s *TranslationService) bundle(ctx context.Context) (map[string]map[string]string, error) {
	var cached map[string]map[string]string
	if hit, _ := s.cache.Get(ctx, translationsCacheKey, &cached); hit {
		return cached, nil
	}

	raw, err := os.ReadFile(s.path)
	if err != nil {
		s.logger.Error("failed to read translation bundle", zap.String("path", s.path), zap.Error(err))
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "Translations unavailable")
	}

	var bundle map[string]map[string]string
	if err := json.Unmarshal(raw, &bundle); err != nil {
		s.logger.Error("failed to parse translation bundle", zap.String("path", s.path), zap.Error(err))
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "Translations unavailable")
	}

	_ = s.cache.Set(ctx, translationsCacheKey, bundle, 0)
	return bundle, nil
}
