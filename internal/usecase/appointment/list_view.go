package appointment

import (
	"context"

	domain "github.com/BruksfildServices01/frontdesk/internal/domain/appointment"
)

type ListView struct {
	source Refresher
}

func NewListView(source Refresher) *ListView {
	return &ListView{source: source}
}

// Execute re-fetches the collection and derives the requested page.
func (uc *ListView) Execute(ctx context.Context, params domain.ViewParams) (domain.Page, error) {
	if err := params.Validate(); err != nil {
		return domain.Page{}, err
	}

	rows, err := uc.source.Appointments(ctx)
	if err != nil {
		return domain.Page{}, err
	}
	return domain.Derive(rows, params), nil
}
