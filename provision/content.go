package provision

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/aalemi-dev/eventportal/minio"
	"github.com/aalemi-dev/eventportal/schema_registry"
)

// ContentSource says where a schema version's content comes from. Exactly
// one field must be set.
type ContentSource struct {
	// Inline is the schema document itself.
	Inline string `yaml:"inline,omitempty"`

	// File is a path to the document, relative to the plan file.
	File string `yaml:"file,omitempty"`

	// Registry reads the document from a Confluent Schema Registry.
	Registry *RegistrySource `yaml:"registry,omitempty"`

	// Object reads the document from a MinIO/S3 bucket.
	Object *ObjectSource `yaml:"object,omitempty"`
}

// RegistrySource selects a schema registry document either by global id or
// by subject. A subject without a version means its latest version.
type RegistrySource struct {
	Subject string `yaml:"subject"`
	Version int    `yaml:"version,omitempty"`
	ID      int    `yaml:"id,omitempty"`
}

// ObjectSource selects an object in a bucket.
type ObjectSource struct {
	Bucket    string `yaml:"bucket"`
	Key       string `yaml:"key"`
	VersionID string `yaml:"version_id,omitempty"`
}

func (s ContentSource) validate() error {
	set := 0
	if s.Inline != "" {
		set++
	}
	if s.File != "" {
		set++
	}
	if s.Registry != nil {
		set++
		if s.Registry.ID <= 0 && s.Registry.Subject == "" {
			return errors.New("registry source needs a subject or an id")
		}
		if s.Registry.ID > 0 && s.Registry.Subject != "" {
			return errors.New("registry source takes a subject or an id, not both")
		}
	}
	if s.Object != nil {
		set++
		if s.Object.Bucket == "" || s.Object.Key == "" {
			return errors.New("object source needs a bucket and a key")
		}
	}

	switch set {
	case 0:
		return errors.New("content needs one of inline, file, registry or object")
	case 1:
		return nil
	default:
		return errors.New("content takes exactly one of inline, file, registry or object")
	}
}

// ContentResolver fetches schema documents from their sources. The registry
// and object clients are optional; a source that needs a missing client
// fails with ErrContentSource.
type ContentResolver struct {
	registry schema_registry.Registry
	objects  minio.Client
}

// NewContentResolver creates a resolver. Either client may be nil.
func NewContentResolver(registry schema_registry.Registry, objects minio.Client) *ContentResolver {
	return &ContentResolver{registry: registry, objects: objects}
}

// Resolve returns the document described by src. Relative file paths are
// joined to baseDir.
func (r *ContentResolver) Resolve(ctx context.Context, src ContentSource, baseDir string) (string, error) {
	if err := src.validate(); err != nil {
		return "", fmt.Errorf("%w: %v", ErrContentSource, err)
	}

	switch {
	case src.Inline != "":
		return src.Inline, nil

	case src.File != "":
		path := src.File
		if !filepath.IsAbs(path) && baseDir != "" {
			path = filepath.Join(baseDir, path)
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("failed to read schema file %s: %w", path, err)
		}
		return string(data), nil

	case src.Registry != nil:
		return r.fromRegistry(ctx, *src.Registry)

	default:
		return r.fromObject(ctx, *src.Object)
	}
}

func (r *ContentResolver) fromRegistry(ctx context.Context, src RegistrySource) (string, error) {
	if r == nil || r.registry == nil {
		return "", fmt.Errorf("%w: registry source used but no schema registry is configured", ErrContentSource)
	}

	if src.ID > 0 {
		return r.registry.GetSchemaByID(ctx, src.ID)
	}

	var (
		metadata *schema_registry.Metadata
		err      error
	)
	if src.Version > 0 {
		metadata, err = r.registry.GetSchemaVersion(ctx, src.Subject, src.Version)
	} else {
		metadata, err = r.registry.GetLatestSchema(ctx, src.Subject)
	}
	if err != nil {
		return "", fmt.Errorf("failed to resolve registry subject %s: %w", src.Subject, err)
	}
	return metadata.Schema, nil
}

func (r *ContentResolver) fromObject(ctx context.Context, src ObjectSource) (string, error) {
	if r == nil || r.objects == nil {
		return "", fmt.Errorf("%w: object source used but no object storage is configured", ErrContentSource)
	}

	var opts []minio.GetOption
	if src.VersionID != "" {
		opts = append(opts, minio.WithVersionID(src.VersionID))
	}
	data, err := r.objects.Get(ctx, src.Bucket, src.Key, opts...)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
