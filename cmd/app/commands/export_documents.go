package commands

import (
	"context"
	"fmt"
	"log/slog"

	documentUseCase "github.com/allisson/jsondocs/internal/document/usecase"
)

// RunExportDocuments writes the REST representation of every visible document to the
// bucket at bucketURL, one <prefix><id>.json object per document.
//
// Requirements: Database must be migrated and accessible.
func RunExportDocuments(
	ctx context.Context,
	exportUseCase documentUseCase.ExportUseCase,
	logger *slog.Logger,
	io IOTuple,
	bucketURL string,
	prefix string,
	format string,
) error {
	if err := validateFormat(format); err != nil {
		return err
	}
	if bucketURL == "" {
		return fmt.Errorf("bucket url is required")
	}

	logger.Info("exporting documents", slog.String("bucket_url", bucketURL), slog.String("prefix", prefix))

	count, err := exportUseCase.Export(ctx, bucketURL, prefix)
	if err != nil {
		return fmt.Errorf("failed to export documents: %w", err)
	}

	if format == "json" {
		if err := writeJSON(io.Writer, map[string]any{
			"count":      count,
			"bucket_url": bucketURL,
			"prefix":     prefix,
		}); err != nil {
			return err
		}
	} else {
		_, _ = fmt.Fprintf(io.Writer, "Exported %d document(s) to %s\n", count, bucketURL)
	}

	logger.Info("export completed", slog.Int("count", count))
	return nil
}
