package stripe

import (
	"context"
	"fmt"
	"iter"
	"strings"

	"github.com/fivetwenty-io/stripe-client/internal/constants"
)

// Backend is the part of the client a paginator needs to fetch pages.
type Backend interface {
	GetQuery(ctx context.Context, path string, params any, out any) error
}

// Paginable is implemented by list parameter bags. WithCursor returns a copy
// of the bag that selects the page after the given cursor.
type Paginable[P any] interface {
	WithCursor(cursor string) P
}

// SearchPaginable is implemented by search parameter bags. WithPage returns
// a copy of the bag that selects the given page token.
type SearchPaginable[P any] interface {
	WithPage(page string) P
}

// ListPaginator walks a cursor-paginated list one page at a time.
type ListPaginator[T Paginate, P Paginable[P]] struct {
	page   *List[T]
	params P
}

// NewListPaginator starts pagination from an already fetched page and the
// parameters that produced it.
func NewListPaginator[T Paginate, P Paginable[P]](page *List[T], params P) *ListPaginator[T, P] {
	if page == nil {
		page = &List[T]{}
	}

	return &ListPaginator[T, P]{page: page, params: params}
}

// Page returns the current page.
func (p *ListPaginator[T, P]) Page() *List[T] {
	return p.page
}

// Next fetches the page following the current one. An empty page yields an
// empty paginator without a request.
func (p *ListPaginator[T, P]) Next(ctx context.Context, backend Backend) (*ListPaginator[T, P], error) {
	if len(p.page.Data) == 0 {
		return &ListPaginator[T, P]{
			page:   &List[T]{Object: p.page.Object, Data: []T{}, URL: p.page.URL},
			params: p.params,
		}, nil
	}

	path, err := unversionedPath(p.page.URL)
	if err != nil {
		return nil, err
	}

	last := p.page.Data[len(p.page.Data)-1]
	params := p.params.WithCursor(last.Cursor())

	next := &List[T]{}

	err = backend.GetQuery(ctx, path, params, next)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch next page of %s: %w", p.page.URL, err)
	}

	return &ListPaginator[T, P]{page: next, params: params}, nil
}

// GetAll fetches every remaining page and returns all items in order.
func (p *ListPaginator[T, P]) GetAll(ctx context.Context, backend Backend) ([]T, error) {
	// total_count is a server hint; only trust it up to one more page.
	size := len(p.page.Data)
	if p.page.TotalCount != nil && *p.page.TotalCount > uint64(size) {
		size += int(min(*p.page.TotalCount-uint64(size), constants.MaxPageSize)) //nolint:gosec // bounded by MaxPageSize
	}

	items := make([]T, 0, size)
	current := p

	for {
		items = append(items, current.page.Data...)
		if !current.page.HasMore {
			return items, nil
		}

		next, err := current.Next(ctx, backend)
		if err != nil {
			return nil, err
		}

		current = next
	}
}

// Stream yields items one at a time, fetching pages as it goes. An error
// is yielded once and ends the sequence.
func (p *ListPaginator[T, P]) Stream(ctx context.Context, backend Backend) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		current := p

		for {
			for _, item := range current.page.Data {
				if !yield(item, nil) {
					return
				}
			}

			if !current.page.HasMore {
				return
			}

			next, err := current.Next(ctx, backend)
			if err != nil {
				var zero T

				yield(zero, err)

				return
			}

			current = next
		}
	}
}

// SearchPaginator walks search results through their next_page tokens.
type SearchPaginator[T any, P SearchPaginable[P]] struct {
	page   *SearchList[T]
	params P
}

// NewSearchPaginator starts pagination from an already fetched page of
// search results.
func NewSearchPaginator[T any, P SearchPaginable[P]](page *SearchList[T], params P) *SearchPaginator[T, P] {
	if page == nil {
		page = &SearchList[T]{}
	}

	return &SearchPaginator[T, P]{page: page, params: params}
}

// Page returns the current page.
func (p *SearchPaginator[T, P]) Page() *SearchList[T] {
	return p.page
}

// Next fetches the following page. A page without a next_page token yields
// an empty paginator without a request.
func (p *SearchPaginator[T, P]) Next(ctx context.Context, backend Backend) (*SearchPaginator[T, P], error) {
	if len(p.page.Data) == 0 || p.page.NextPage == nil || *p.page.NextPage == "" {
		return &SearchPaginator[T, P]{
			page:   &SearchList[T]{Object: p.page.Object, Data: []T{}, URL: p.page.URL},
			params: p.params,
		}, nil
	}

	path, err := unversionedPath(p.page.URL)
	if err != nil {
		return nil, err
	}

	params := p.params.WithPage(*p.page.NextPage)
	next := &SearchList[T]{}

	err = backend.GetQuery(ctx, path, params, next)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch next search page of %s: %w", p.page.URL, err)
	}

	return &SearchPaginator[T, P]{page: next, params: params}, nil
}

// GetAll fetches every remaining page and returns all results in order.
func (p *SearchPaginator[T, P]) GetAll(ctx context.Context, backend Backend) ([]T, error) {
	items := make([]T, 0, len(p.page.Data))
	current := p

	for {
		items = append(items, current.page.Data...)
		if !current.page.HasMore {
			return items, nil
		}

		next, err := current.Next(ctx, backend)
		if err != nil {
			return nil, err
		}

		current = next
	}
}

func unversionedPath(listURL string) (string, error) {
	path, ok := strings.CutPrefix(listURL, constants.VersionedPathPrefix)
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedVersion, listURL)
	}

	return path, nil
}
