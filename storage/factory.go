package storage

import (
	"fmt"
	"log"

	"github.com/basingerf-felix/spilna-peremoga-website/config"
)

// Factory keeps the configured media backends and the default one.
type Factory struct {
	providers       map[string]Provider
	defaultProvider string
}

// NewFactory initialises every backend the configuration enables.
// The backend named by StorageType becomes the default.
func NewFactory(cfg *config.Config) (*Factory, error) {
	f := &Factory{
		providers:       make(map[string]Provider),
		defaultProvider: cfg.StorageType,
	}

	local, err := NewLocalStorage(cfg.StorageLocalPath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize local storage: %w", err)
	}
	f.providers["local"] = local

	if cfg.MinioEndpoint != "" {
		minioStorage, err := NewMinioStorage(cfg)
		if err != nil {
			if cfg.StorageType == "minio" {
				return nil, fmt.Errorf("failed to initialize minio storage: %w", err)
			}
			log.Printf("Warning: minio storage unavailable: %v", err)
		} else {
			f.providers["minio"] = minioStorage
		}
	}

	if cfg.WebDAVURL != "" {
		webdavStorage, err := NewWebDAVStorage(WebDAVConfig{
			URL:      cfg.WebDAVURL,
			Username: cfg.WebDAVUsername,
			Password: cfg.WebDAVPassword,
			RootPath: cfg.WebDAVRootPath,
		})
		if err != nil {
			if cfg.StorageType == "webdav" {
				return nil, fmt.Errorf("failed to initialize webdav storage: %w", err)
			}
			log.Printf("Warning: webdav storage unavailable: %v", err)
		} else {
			f.providers["webdav"] = webdavStorage
		}
	}

	if _, ok := f.providers[f.defaultProvider]; !ok {
		return nil, fmt.Errorf("default storage provider %q is not configured", f.defaultProvider)
	}

	return f, nil
}

// Get returns the named backend.
func (f *Factory) Get(name string) (Provider, error) {
	p, ok := f.providers[name]
	if !ok {
		return nil, fmt.Errorf("storage provider %q is not configured", name)
	}
	return p, nil
}

// GetDefault returns the default backend.
func (f *Factory) GetDefault() Provider {
	return f.providers[f.defaultProvider]
}

// GetDefaultName returns the name of the default backend.
func (f *Factory) GetDefaultName() string {
	return f.defaultProvider
}

// ListProviders returns the names of all configured backends.
func (f *Factory) ListProviders() []string {
	names := make([]string, 0, len(f.providers))
	for name := range f.providers {
		names = append(names, name)
	}
	return names
}
