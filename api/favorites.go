package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/pkg/errors"

	"github.com/bumilsoft/intraclient/gateway"
)

// FavoriteClient covers the /favorite blueprint: per-user bookmarks of other
// users shown at the top of the contact list.
type FavoriteClient struct {
	gw *gateway.Gateway
}

// ToggleFavorite flips the favorite mark of favoriteUserID for userID: adds
// it when absent, removes it when present. The backend reports the outcome
// only through its message text, so callers re-fetch the list afterwards.
func (c *FavoriteClient) ToggleFavorite(ctx context.Context, userID, favoriteUserID string) error {
	in := map[string]string{
		"user_id":          userID,
		"favorite_user_id": favoriteUserID,
	}
	return c.gw.DoJSON(ctx, http.MethodPost, "/favorite/toggle_favorite", in, nil)
}

// Favorites lists the users userID has marked as favorites, with their
// department names joined in.
func (c *FavoriteClient) Favorites(ctx context.Context, userID string) ([]User, error) {
	path := "/favorite/get_favorites?user_id=" + url.QueryEscape(userID)
	var body struct {
		Favorite []User `json:"favorite"`
	}
	if err := c.gw.DoJSON(ctx, http.MethodGet, path, nil, &body); err != nil {
		return nil, errors.Wrap(err, "[FavoriteClient.Favorites]")
	}
	return body.Favorite, nil
}
