package service

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testBundle = `{
  "en": {"greeting": "Hello", "submit": "Send"},
  "es": {"greeting": "Hola", "submit": "Enviar"}
}`

func writeBundle(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "translations.json")
	require.NoError(t, os.WriteFile(path, []byte(testBundle), 0o600))
	return path
}

func newTranslationService(path string) *TranslationService {
	cache := NewCacheService(nil, nil, 0, zap.NewNop(), false)
	return NewTranslationService(path, cache, zap.NewNop())
}

func TestTranslationServiceGet(t *testing.T) {
	svc := newTranslationService(writeBundle(t))

	mapping, err := svc.Get(context.Background(), "es")
	require.NoError(t, err)
	assert.Equal(t, "Hola", mapping["greeting"])
}

func TestTranslationServiceFallsBackToEnglish(t *testing.T) {
	svc := newTranslationService(writeBundle(t))

	mapping, err := svc.Get(context.Background(), "fr")
	require.NoError(t, err)

	english, err := svc.Get(context.Background(), "en")
	require.NoError(t, err)
	assert.Equal(t, english, mapping)
}

func TestTranslationServiceUnreadableBundle(t *testing.T) {
	svc := newTranslationService(filepath.Join(t.TempDir(), "missing.json"))

	_, err := svc.Get(context.Background(), "en")
	assert.Error(t, err)
}
