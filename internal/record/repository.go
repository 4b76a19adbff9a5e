package record

import (
	repository "github.com/goliatone/go-repository-bun"
	"github.com/google/uuid"
	"github.com/uptrace/bun"

	blogrecord "github.com/goliatone/go-blog/record"
)

// NewPostRepository builds the generic bun repository for posts. Slug acts as
// the stable identifier so importer lookups stay index-friendly.
func NewPostRepository(db *bun.DB) repository.Repository[*blogrecord.Post] {
	return repository.MustNewRepository(db, repository.ModelHandlers[*blogrecord.Post]{
		NewRecord: func() *blogrecord.Post { return &blogrecord.Post{} },
		GetID: func(p *blogrecord.Post) uuid.UUID {
			return p.ID
		},
		SetID: func(p *blogrecord.Post, id uuid.UUID) {
			p.ID = id
		},
		GetIdentifier: func() string {
			return "slug"
		},
		GetIdentifierValue: func(p *blogrecord.Post) string {
			return p.Slug
		},
	})
}
