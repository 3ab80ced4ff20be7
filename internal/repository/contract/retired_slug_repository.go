package contract

import "context"

type RetiredSlugRepository interface {
	IsRetired(ctx context.Context, resource, slug string) (bool, error)
	Retire(ctx context.Context, resource, slug string) error
}
