package app

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/allisson/jsondocs/internal/admin"
	contentTypeDomain "github.com/allisson/jsondocs/internal/contenttype/domain"
	"github.com/allisson/jsondocs/internal/database"
	documentDomain "github.com/allisson/jsondocs/internal/document/domain"
	documentHTTP "github.com/allisson/jsondocs/internal/document/http"
	documentRepository "github.com/allisson/jsondocs/internal/document/repository"
	documentUseCase "github.com/allisson/jsondocs/internal/document/usecase"
)

type documentComponents struct {
	presenter          *documentDomain.Presenter
	documentRepository documentUseCase.DocumentRepository
	revisionRepository documentUseCase.RevisionRepository
	documentUseCase    documentUseCase.DocumentUseCase
	exportUseCase      documentUseCase.ExportUseCase

	presenterInit          sync.Once
	documentRepositoryInit sync.Once
	revisionRepositoryInit sync.Once
	documentUseCaseInit    sync.Once
	exportUseCaseInit      sync.Once
}

// Presenter returns the REST presenter configured with the public base URL and response shape.
func (c *Container) Presenter() *documentDomain.Presenter {
	c.presenterInit.Do(func() {
		c.presenter = documentDomain.NewPresenter(
			c.config.PublicBaseURL,
			documentDomain.ResponseShape(c.config.DocumentResponseShape),
		)
	})
	return c.presenter
}

// DocumentRepository returns the document repository based on database driver.
func (c *Container) DocumentRepository() (documentUseCase.DocumentRepository, error) {
	err := c.once(&c.documentRepositoryInit, "documentRepository", func() error {
		db, err := c.DB()
		if err != nil {
			return fmt.Errorf("failed to get database for document repository: %w", err)
		}

		switch c.config.DBDriver {
		case database.DriverMySQL:
			c.documentRepository = documentRepository.NewMySQLDocumentRepository(db)
		case database.DriverPostgres:
			c.documentRepository = documentRepository.NewPostgreSQLDocumentRepository(db)
		default:
			return c.unsupportedDriver()
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return c.documentRepository, nil
}

// RevisionRepository returns the revision repository based on database driver.
func (c *Container) RevisionRepository() (documentUseCase.RevisionRepository, error) {
	err := c.once(&c.revisionRepositoryInit, "revisionRepository", func() error {
		db, err := c.DB()
		if err != nil {
			return fmt.Errorf("failed to get database for revision repository: %w", err)
		}

		switch c.config.DBDriver {
		case database.DriverMySQL:
			c.revisionRepository = documentRepository.NewMySQLRevisionRepository(db)
		case database.DriverPostgres:
			c.revisionRepository = documentRepository.NewPostgreSQLRevisionRepository(db)
		default:
			return c.unsupportedDriver()
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return c.revisionRepository, nil
}

// DocumentUseCase returns the document use case.
func (c *Container) DocumentUseCase() (documentUseCase.DocumentUseCase, error) {
	err := c.once(&c.documentUseCaseInit, "documentUseCase", func() error {
		txManager, err := c.TxManager()
		if err != nil {
			return fmt.Errorf("failed to get tx manager for document use case: %w", err)
		}
		documents, err := c.DocumentRepository()
		if err != nil {
			return fmt.Errorf("failed to get document repository for document use case: %w", err)
		}
		revisions, err := c.RevisionRepository()
		if err != nil {
			return fmt.Errorf("failed to get revision repository for document use case: %w", err)
		}
		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			return fmt.Errorf("failed to get business metrics for document use case: %w", err)
		}

		useCase := documentUseCase.NewDocumentUseCase(
			txManager,
			documents,
			revisions,
			c.config.DocumentValidateOnWrite,
		)
		c.documentUseCase = documentUseCase.NewDocumentUseCaseWithMetrics(useCase, businessMetrics)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return c.documentUseCase, nil
}

// ExportUseCase returns the document export use case.
func (c *Container) ExportUseCase() (documentUseCase.ExportUseCase, error) {
	err := c.once(&c.exportUseCaseInit, "exportUseCase", func() error {
		registry, err := c.ContentTypeRegistry()
		if err != nil {
			return fmt.Errorf("failed to get content type registry for export use case: %w", err)
		}
		documents, err := c.DocumentRepository()
		if err != nil {
			return fmt.Errorf("failed to get document repository for export use case: %w", err)
		}

		c.exportUseCase = documentUseCase.NewExportUseCase(
			registry,
			documents,
			c.Presenter(),
			c.Logger().With(slog.String("component", "export")),
		)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return c.exportUseCase, nil
}

// TypeHandler creates the handler describing registered content types.
func (c *Container) TypeHandler(registry *contentTypeDomain.Registry) *documentHTTP.TypeHandler {
	return documentHTTP.NewTypeHandler(registry, c.Logger())
}

// DocumentHandler creates the REST handler for documents.
func (c *Container) DocumentHandler() (*documentHTTP.DocumentHandler, error) {
	useCase, err := c.DocumentUseCase()
	if err != nil {
		return nil, err
	}
	return documentHTTP.NewDocumentHandler(useCase, c.Presenter(), c.Logger()), nil
}

// AdminHandler creates the admin UI handler with the JSON editor meta box.
func (c *Container) AdminHandler() (*admin.Handler, error) {
	registry, err := c.ContentTypeRegistry()
	if err != nil {
		return nil, err
	}
	useCase, err := c.DocumentUseCase()
	if err != nil {
		return nil, err
	}

	return admin.NewHandler(
		registry,
		useCase,
		admin.NewPermalink(c.Presenter()),
		c.Logger().With(slog.String("component", "admin")),
		admin.NewJSONEditorMetaBox(c.config.EditorAssetsURL),
	), nil
}
