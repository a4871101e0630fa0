package cockroach

import (
	"fmt"

	"github.com/btcsuite/btcutil/base58"
	"github.com/gigmarket/gigchat/types"
	"github.com/nicolasparada/go-errs"
	"github.com/vmihailenco/msgpack/v5"
)

const defaultPageSize = 20

type Cursor[T any] struct {
	ID string `msgpack:"i"`
	// Value is the sort key, usually a created_at timestamp.
	Value T `msgpack:"v,omitempty"`
}

func EncodeCursor[T any](cursor Cursor[T]) (string, error) {
	b, err := msgpack.Marshal(cursor)
	if err != nil {
		return "", fmt.Errorf("msgpack marshal cursor: %w", err)
	}

	return base58.Encode(b), nil
}

func DecodeCursor[T any](s string) (Cursor[T], error) {
	var c Cursor[T]

	b := base58.Decode(s)
	if len(b) == 0 {
		return c, errs.InvalidArgumentError("invalid cursor")
	}

	if err := msgpack.Unmarshal(b, &c); err != nil {
		return c, errs.InvalidArgumentError("invalid cursor")
	}

	if c.ID == "" {
		return c, errs.InvalidArgumentError("invalid cursor")
	}

	return c, nil
}

type PageArgs[T any] struct {
	First uint
	After *Cursor[T]
}

func ParsePageArgs[T any](in types.PageArgs) (PageArgs[T], error) {
	out := PageArgs[T]{
		First: or(in.First, defaultPageSize),
	}

	if in.After != nil {
		after, err := DecodeCursor[T](*in.After)
		if err != nil {
			return out, fmt.Errorf("decode after cursor: %w", err)
		}

		out.After = &after
	}

	return out, nil
}

// applyPageInfo modifies the given page in-place.
// Queries fetch one extra item to know if there is a next page;
// it gets cut here.
func applyPageInfo[I, C any](page *types.Page[I], pageArgs PageArgs[C], cursorFunc func(item I) Cursor[C]) error {
	l := uint(len(page.Items))
	if l == 0 {
		return nil
	}

	page.PageInfo.HasNextPage = l > pageArgs.First
	if page.PageInfo.HasNextPage {
		page.Items = page.Items[:pageArgs.First]
	}

	endCursor := cursorFunc(page.Items[len(page.Items)-1])
	c, err := EncodeCursor(endCursor)
	if err != nil {
		return fmt.Errorf("encode end cursor: %w", err)
	}

	page.PageInfo.EndCursor = new(c)

	return nil
}

func or[T any](a *T, b T) T {
	if a != nil {
		return *a
	}

	return b
}
