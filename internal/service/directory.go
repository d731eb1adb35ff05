package service

import (
	"context"
	"net/url"
	"time"

	"github.com/mtlprog/proposedesk/internal/domain"
	"github.com/mtlprog/proposedesk/internal/listquery"
)

// UserListResult is one fetched page of the user directory.
type UserListResult struct {
	State     listquery.State
	Page      *domain.UserPage
	Controls  PageControls
	FetchedAt time.Time
}

// Users returns the directory page of the account's users view. Paging and
// search go through the same state transitions as the propose views.
func (svc *ListService) Users(ctx context.Context, accountID string, refresh bool) (*UserListResult, error) {
	sess, err := svc.sessionFor(ctx, accountID, domain.ViewUsers)
	if err != nil {
		return nil, err
	}

	state := sess.manager.State()
	params := directoryParams(state)

	res, ok := sess.users.Latest()
	if refresh || !ok || !sameQuery(res.Params, params) || svc.now().Sub(res.FetchedAt) > svc.opts.CacheTTL {
		if refresh {
			ctx = withoutCache(ctx)
		}
		res, err = sess.users.Fetch(ctx, params)
		if err != nil {
			return nil, err
		}
	}

	users := res.Page.Users
	if users == nil {
		users = []domain.User{}
	}
	page := *res.Page
	page.Users = users

	return &UserListResult{
		State:     state,
		Page:      &page,
		Controls:  NewPageControls(res.Page.Pagination),
		FetchedAt: res.FetchedAt,
	}, nil
}

// directoryParams is the /users query: the page and the search term, which
// is always sent, empty or not.
func directoryParams(s listquery.State) url.Values {
	q := s.QueryParams()
	return url.Values{
		listquery.KeyPage:       {q.Get(listquery.KeyPage)},
		listquery.KeySearchTerm: {q.Get(listquery.KeySearchTerm)},
	}
}

// cachedUsers is the users fetcher's list function.
func (svc *ListService) cachedUsers(ctx context.Context, params url.Values) (*domain.UserPage, error) {
	key := usersCachePrefix + params.Encode()

	var page domain.UserPage
	if !cacheSkipped(ctx) && svc.cacheGet(ctx, key, &page) {
		return &page, nil
	}

	p, err := svc.source.ListUsers(ctx, params)
	if err != nil {
		return nil, err
	}
	svc.cacheSet(ctx, key, p)
	return p, nil
}
