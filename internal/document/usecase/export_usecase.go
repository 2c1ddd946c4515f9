package usecase

import (
	"context"
	"encoding/json"
	"log/slog"

	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // file:// buckets
	_ "gocloud.dev/blob/memblob"  // mem:// buckets

	contentTypeDomain "github.com/allisson/jsondocs/internal/contenttype/domain"
	documentDomain "github.com/allisson/jsondocs/internal/document/domain"
	apperrors "github.com/allisson/jsondocs/internal/errors"
)

const exportPageSize = 100

// ContentTypeLister lists the content types exposed over REST.
type ContentTypeLister interface {
	RESTTypes() []contentTypeDomain.ContentType
}

type exportUseCase struct {
	contentTypes ContentTypeLister
	documentRepo DocumentRepository
	presenter    *documentDomain.Presenter
	logger       *slog.Logger
}

func (e *exportUseCase) Export(ctx context.Context, bucketURL, prefix string) (int, error) {
	bucket, err := blob.OpenBucket(ctx, bucketURL)
	if err != nil {
		return 0, apperrors.Wrap(err, "failed to open bucket")
	}
	defer func() {
		if closeErr := bucket.Close(); closeErr != nil {
			e.logger.Error("failed to close bucket", slog.Any("error", closeErr))
		}
	}()

	return e.exportTo(ctx, bucket, prefix)
}

func (e *exportUseCase) exportTo(ctx context.Context, bucket *blob.Bucket, prefix string) (int, error) {
	written := 0
	for _, ct := range e.contentTypes.RESTTypes() {
		count := 0
		filter := documentDomain.ListFilter{
			Type:     ct.Name,
			Statuses: visibleStatuses,
			Limit:    exportPageSize,
		}

		for {
			docs, err := e.documentRepo.List(ctx, filter)
			if err != nil {
				return written + count, err
			}

			for _, doc := range docs {
				data, err := json.Marshal(e.presenter.Present(ct, doc))
				if err != nil {
					return written + count, apperrors.Wrapf(err, "failed to encode document %s", doc.ID)
				}

				key := prefix + doc.ID.String() + ".json"
				opts := &blob.WriterOptions{ContentType: "application/json"}
				if err := bucket.WriteAll(ctx, key, data, opts); err != nil {
					return written + count, apperrors.Wrapf(err, "failed to write %s", key)
				}
				count++
			}

			if len(docs) < filter.Limit {
				break
			}
			filter.Offset += filter.Limit
		}

		written += count
		e.logger.Info("content type exported", slog.String("type", ct.Name), slog.Int("documents", count))
	}
	return written, nil
}

// NewExportUseCase creates a new ExportUseCase. Bucket URLs use the gocloud.dev scheme
// syntax; file:// and mem:// are supported.
func NewExportUseCase(
	contentTypes ContentTypeLister,
	documentRepo DocumentRepository,
	presenter *documentDomain.Presenter,
	logger *slog.Logger,
) ExportUseCase {
	return &exportUseCase{
		contentTypes: contentTypes,
		documentRepo: documentRepo,
		presenter:    presenter,
		logger:       logger,
	}
}
