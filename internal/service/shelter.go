package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"shelterapi/internal/model"
	"shelterapi/internal/repository"
	"shelterapi/internal/rescue"
	"shelterapi/internal/storage"
)

var (
	ErrExportDisabled = errors.New("export storage is not configured")
)

// DefaultExportURLExpiry applies when NewShelterService gets a non-positive expiry.
const DefaultExportURLExpiry = 15 * time.Minute

// ExportResult describes an uploaded export.
type ExportResult struct {
	Key       string    `json:"key"`
	Count     int       `json:"count"`
	URL       string    `json:"url"`
	ExpiresAt time.Time `json:"expires_at"`
}

// ShelterService defines the use cases over the shelter records.
type ShelterService interface {
	// Create stores one record. An empty record fails with repository.ErrInvalidArgument.
	Create(ctx context.Context, rec model.Record) (bool, error)

	// Find returns records matching filter, capped at limit when limit > 0.
	Find(ctx context.Context, filter model.Filter, projection model.Projection, limit int64) ([]model.Record, error)

	// List returns every record up to limit (repository default when limit <= 0).
	List(ctx context.Context, projection model.Projection, limit int64) ([]model.Record, error)

	// FindByRescueType returns records eligible for the given rescue type.
	// Unknown labels select every record.
	FindByRescueType(ctx context.Context, label string, projection model.Projection, limit int64) ([]model.Record, error)

	// Update sets values on every matching record and returns how many changed.
	Update(ctx context.Context, filter model.Filter, values model.Record) (int64, error)

	// Delete removes every matching record and returns how many were removed.
	Delete(ctx context.Context, filter model.Filter) (int64, error)

	// RescueProfiles lists the known rescue-type profiles.
	RescueProfiles() []rescue.Profile

	// Export uploads the records for a rescue type as a JSON array and returns a
	// presigned download URL.
	Export(ctx context.Context, label string) (*ExportResult, error)

	// Health reports whether the record store is reachable.
	Health(ctx context.Context) error
}

// shelterService is a concrete implementation of ShelterService.
type shelterService struct {
	repo   repository.AnimalRepository
	store  storage.Storage
	expiry time.Duration
	tracer trace.Tracer
}

// NewShelterService constructs a new ShelterService. store may be nil, which disables
// exports.
func NewShelterService(repo repository.AnimalRepository, store storage.Storage, exportExpiry time.Duration) ShelterService {
	if exportExpiry <= 0 {
		exportExpiry = DefaultExportURLExpiry
	}
	return &shelterService{
		repo:   repo,
		store:  store,
		expiry: exportExpiry,
		tracer: otel.Tracer("shelterapi/service"),
	}
}

func (s *shelterService) start(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	return s.tracer.Start(ctx, "ShelterService."+name, trace.WithAttributes(attrs...))
}

func finish(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}

func (s *shelterService) Create(ctx context.Context, rec model.Record) (ok bool, err error) {
	ctx, span := s.start(ctx, "Create")
	defer func() { finish(span, err) }()

	return s.repo.Create(ctx, rec)
}

func (s *shelterService) Find(ctx context.Context, filter model.Filter, projection model.Projection, limit int64) (out []model.Record, err error) {
	ctx, span := s.start(ctx, "Find", attribute.Int64("limit", limit))
	defer func() { finish(span, err) }()

	out, err = s.repo.Read(ctx, filter, repository.ReadOptions{Projection: projection, Limit: limit})
	span.SetAttributes(attribute.Int("records", len(out)))
	return out, err
}

func (s *shelterService) List(ctx context.Context, projection model.Projection, limit int64) (out []model.Record, err error) {
	ctx, span := s.start(ctx, "List", attribute.Int64("limit", limit))
	defer func() { finish(span, err) }()

	out, err = s.repo.ReadAll(ctx, projection, limit)
	span.SetAttributes(attribute.Int("records", len(out)))
	return out, err
}

func (s *shelterService) FindByRescueType(ctx context.Context, label string, projection model.Projection, limit int64) (out []model.Record, err error) {
	ctx, span := s.start(ctx, "FindByRescueType", attribute.String("rescue_type", label))
	defer func() { finish(span, err) }()

	if limit <= 0 {
		limit = repository.DefaultReadAllLimit
	}
	out, err = s.repo.Read(ctx, rescue.QueryForRescueType(label), repository.ReadOptions{
		Projection: projection,
		Limit:      limit,
	})
	span.SetAttributes(attribute.Int("records", len(out)))
	return out, err
}

func (s *shelterService) Update(ctx context.Context, filter model.Filter, values model.Record) (n int64, err error) {
	ctx, span := s.start(ctx, "Update")
	defer func() { finish(span, err) }()

	n, err = s.repo.Update(ctx, filter, values)
	span.SetAttributes(attribute.Int64("modified", n))
	return n, err
}

func (s *shelterService) Delete(ctx context.Context, filter model.Filter) (n int64, err error) {
	ctx, span := s.start(ctx, "Delete")
	defer func() { finish(span, err) }()

	n, err = s.repo.Delete(ctx, filter)
	span.SetAttributes(attribute.Int64("deleted", n))
	return n, err
}

func (s *shelterService) RescueProfiles() []rescue.Profile {
	return rescue.Profiles()
}

func (s *shelterService) Export(ctx context.Context, label string) (res *ExportResult, err error) {
	ctx, span := s.start(ctx, "Export", attribute.String("rescue_type", label))
	defer func() { finish(span, err) }()

	if s.store == nil {
		return nil, ErrExportDisabled
	}

	records, err := s.repo.Read(ctx, rescue.QueryForRescueType(label),
		repository.ReadOptions{Limit: repository.DefaultReadAllLimit})
	if err != nil {
		return nil, fmt.Errorf("read records: %w", err)
	}

	body, err := json.Marshal(records)
	if err != nil {
		return nil, fmt.Errorf("encode records: %w", err)
	}

	key := "exports/" + exportSlug(label) + "-" + uuid.NewString() + ".json"
	info, err := s.store.Put(ctx, key, bytes.NewReader(body), storage.PutObjectOptions{
		Size:        int64(len(body)),
		ContentType: "application/json",
		Metadata: map[string]string{
			"rescue-type":  label,
			"record-count": fmt.Sprint(len(records)),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("upload export: %w", err)
	}

	url, err := s.store.PresignGet(ctx, info.Key, s.expiry)
	if err != nil {
		return nil, fmt.Errorf("presign export: %w", err)
	}

	return &ExportResult{
		Key:       info.Key,
		Count:     len(records),
		URL:       url,
		ExpiresAt: time.Now().UTC().Add(s.expiry),
	}, nil
}

func (s *shelterService) Health(ctx context.Context) error {
	return s.repo.Ping(ctx)
}

// exportSlug turns a rescue-type label into a key-safe prefix; unknown labels
// export every record.
func exportSlug(label string) string {
	if _, ok := rescue.Lookup(label); !ok {
		return "all"
	}
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(label) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			dash = false
			continue
		}
		if !dash && b.Len() > 0 {
			b.WriteByte('-')
			dash = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
