package blog

import (
	"github.com/goliatone/go-blog/internal/di"
	"github.com/goliatone/go-blog/pkg/interfaces"
	blogrecord "github.com/goliatone/go-blog/record"
)

// RecordService exports the record workflow contract for consumers of the blog package.
type RecordService = interfaces.RecordService

// PostStore exports the post catalogue contract.
type PostStore = interfaces.PostStore

// Record exports the parsed post record DTO.
type Record = interfaces.Record

// FrontMatter exports the post metadata DTO.
type FrontMatter = interfaces.FrontMatter

// BodyReport exports the structural body analysis DTO.
type BodyReport = interfaces.BodyReport

// PostRecord exports the catalogue row DTO.
type PostRecord = interfaces.PostRecord

// Post exports the catalogue model so hosts can run their own migrations.
type Post = blogrecord.Post

// Module represents the top level blog runtime façade.
type Module struct {
	container *di.Container
}

// New constructs a blog module using the provided configuration and optional DI overrides.
func New(cfg Config, opts ...di.Option) (*Module, error) {
	container, err := di.NewContainer(cfg, opts...)
	if err != nil {
		return nil, err
	}
	return &Module{container: container}, nil
}

// Container exposes the underlying DI container for advanced integrations.
func (m *Module) Container() *di.Container {
	return m.container
}

// Records returns the configured record service.
func (m *Module) Records() RecordService {
	if m == nil || m.container == nil {
		return nil
	}
	return m.container.RecordService()
}

// Store returns the configured post catalogue.
func (m *Module) Store() PostStore {
	if m == nil || m.container == nil {
		return nil
	}
	return m.container.PostStore()
}

// LoggerProvider returns the configured logging provider, if any.
func (m *Module) LoggerProvider() interfaces.LoggerProvider {
	if m == nil || m.container == nil {
		return nil
	}
	return m.container.LoggerProvider()
}
