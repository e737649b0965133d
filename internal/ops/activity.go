package ops

import (
	stderrors "errors"

	"github.com/grabapp/grabd/internal/errors"
	"github.com/grabapp/grabd/internal/history"
)

// ActivityInput contains parameters for the RecentActivity operation.
type ActivityInput struct {
	Limit int // default: 50, max: 500
}

// ActivityOutput contains the result of the RecentActivity operation.
type ActivityOutput struct {
	Items []history.Entry `json:"items"`
	Count int             `json:"count"`
}

// RecentActivity returns the newest journaled actions, most recent first.
func RecentActivity(env *Env, input ActivityInput) (*ActivityOutput, error) {
	if env.DB == nil {
		return nil, errors.NewInternal(stderrors.New("activity journal unavailable"))
	}

	limit := input.Limit
	if limit <= 0 {
		limit = DefaultActivityLimit
	}
	if limit > MaxActivityLimit {
		limit = MaxActivityLimit
	}

	items, err := history.Recent(env.DB, limit)
	if err != nil {
		return nil, errors.NewInternal(err)
	}
	if items == nil {
		items = []history.Entry{}
	}

	return &ActivityOutput{Items: items, Count: len(items)}, nil
}
