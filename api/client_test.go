package api_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bumilsoft/intraclient/api"
	"github.com/bumilsoft/intraclient/gateway"
	"github.com/bumilsoft/intraclient/session"
	"github.com/bumilsoft/intraclient/session/storefakes"
)

func newClient(t *testing.T, handler http.Handler) (*api.Client, *storefakes.FakeStore) {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	store := storefakes.NewFakeStore(session.TokenPair{AccessToken: "access", RefreshToken: "refresh"})
	gw, err := gateway.New(server.URL, store)
	require.NoError(t, err)

	client, err := api.New(gw)
	require.NoError(t, err)
	return client, store
}

func TestNew(t *testing.T) {
	_, err := api.New(nil)
	require.Error(t, err)
}

func TestAuthClient_Login(t *testing.T) {
	t.Run("stores the issued pair", func(t *testing.T) {
		client, store := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "/auth/login", r.URL.Path)
			require.Empty(t, r.Header.Get("Authorization"), "login is unauthenticated")

			var creds map[string]string
			require.NoError(t, json.NewDecoder(r.Body).Decode(&creds))
			require.Equal(t, "hong01", creds["id"])
			require.Equal(t, "secret", creds["password"])

			json.NewEncoder(w).Encode(map[string]any{
				"access_token":  "new-access",
				"refresh_token": "new-refresh",
				"user":          map[string]string{"id": "hong01", "first_login_yn": "N"},
			})
		}))

		result, err := client.Auth.Login(context.Background(), store, "hong01", "secret")
		require.NoError(t, err)
		require.Equal(t, "hong01", result.UserID)
		require.False(t, result.FirstLogin)
		require.Equal(t, "new-access", store.Pair.AccessToken)
		require.Equal(t, "new-refresh", store.Pair.RefreshToken)
	})

	t.Run("falls back to the legacy token field", func(t *testing.T) {
		client, store := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(map[string]any{
				"token": "legacy-access",
				"user":  map[string]string{"id": "hong01", "first_login_yn": "Y"},
			})
		}))

		result, err := client.Auth.Login(context.Background(), store, "hong01", "secret")
		require.NoError(t, err)
		require.True(t, result.FirstLogin)
		require.Equal(t, "legacy-access", store.Pair.AccessToken)
	})

	t.Run("bad credentials surface the backend message", func(t *testing.T) {
		client, store := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]string{"message": "invalid credentials"})
		}))

		_, err := client.Auth.Login(context.Background(), store, "hong01", "wrong")
		require.Error(t, err)

		var statusErr *gateway.StatusError
		require.ErrorAs(t, err, &statusErr)
		require.Equal(t, http.StatusUnauthorized, statusErr.Code)
		require.Contains(t, statusErr.Message, "invalid credentials")
	})
}

func TestAuthClient_Signup(t *testing.T) {
	t.Run("submits the application unauthenticated", func(t *testing.T) {
		client, _ := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "/auth/signup", r.URL.Path)
			require.Empty(t, r.Header.Get("Authorization"), "signup has no session")

			var in map[string]string
			require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
			require.Equal(t, "hong01", in["id"])
			require.Equal(t, "Hong Gildong", in["username"])
			require.Equal(t, "D001", in["department"])

			w.WriteHeader(http.StatusCreated)
			json.NewEncoder(w).Encode(map[string]string{"message": "ok"})
		}))

		err := client.Auth.Signup(context.Background(), api.SignupRequest{
			ID:         "hong01",
			Username:   "Hong Gildong",
			Position:   "Engineer",
			Department: "D001",
			Phone:      "010-1234-5678",
			Password:   "secret",
		})
		require.NoError(t, err)
	})

	t.Run("duplicate id surfaces the backend message", func(t *testing.T) {
		client, _ := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(map[string]string{"message": "id already in use"})
		}))

		err := client.Auth.Signup(context.Background(), api.SignupRequest{ID: "hong01"})
		require.Error(t, err)

		var statusErr *gateway.StatusError
		require.ErrorAs(t, err, &statusErr)
		require.Equal(t, http.StatusBadRequest, statusErr.Code)
		require.Contains(t, statusErr.Message, "already in use")
	})
}

func TestUserClient_Users(t *testing.T) {
	client, _ := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/user/get_users", r.URL.Path)
		require.Equal(t, "Bearer access", r.Header.Get("Authorization"))
		json.NewEncoder(w).Encode(map[string]any{
			"users": []map[string]string{
				{"id": "hong01", "name": "Hong Gildong", "role_id": "AD_ADMIN", "department_name": "R&D", "team_name": "Platform"},
			},
		})
	}))

	users, err := client.Users.Users(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 1)
	require.Equal(t, "Hong Gildong", users[0].Name)
	require.Equal(t, "AD_ADMIN", users[0].RoleID)
	require.Equal(t, "R&D", users[0].DepartmentName)
}

func TestProjectClient_UsersProjects(t *testing.T) {
	client, _ := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/project/get_users_and_projects", r.URL.Path)
		require.Equal(t, http.MethodPost, r.Method)

		var in struct {
			UserIDs []string `json:"user_ids"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		require.Equal(t, []string{"hong01", "kim02"}, in.UserIDs)

		json.NewEncoder(w).Encode(map[string]any{
			"users": []map[string]string{{"id": "hong01", "name": "Hong Gildong"}},
			"participants": []map[string]any{
				{"id": 1, "project_code": "P1", "project_name": "Billing revamp", "user_id": "hong01", "start_date": "2024-01-01", "end_date": "2024-03-31"},
			},
		})
	}))

	users, participants, err := client.Projects.UsersProjects(context.Background(), []string{"hong01", "kim02"})
	require.NoError(t, err)
	require.Len(t, users, 1)
	require.Len(t, participants, 1)
	require.Equal(t, "P1", participants[0].ProjectCode)
	require.Equal(t, "2024-01-01", participants[0].StartDate)
}

func TestScheduleClient_MySchedules(t *testing.T) {
	client, _ := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/schedule/get_schedule", r.URL.Path)
		require.Equal(t, "2024-03-15", r.URL.Query().Get("date"))
		json.NewEncoder(w).Encode(map[string]any{
			"schedules": []map[string]any{
				{"id": 7, "task": "vacation", "start_date": "2024-03-14", "end_date": "2024-03-16", "user_id": "hong01", "name": "Hong Gildong"},
			},
		})
	}))

	schedules, err := client.Schedules.MySchedules(context.Background(), "2024-03-15")
	require.NoError(t, err)
	require.Len(t, schedules, 1)
	require.Equal(t, 7, schedules[0].ID)
	require.Equal(t, "vacation", schedules[0].Task)
}

func TestFavoriteClient(t *testing.T) {
	t.Run("toggle posts both ids", func(t *testing.T) {
		client, _ := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "/favorite/toggle_favorite", r.URL.Path)
			require.Equal(t, http.MethodPost, r.Method)

			var in map[string]string
			require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
			require.Equal(t, "hong01", in["user_id"])
			require.Equal(t, "kim02", in["favorite_user_id"])

			json.NewEncoder(w).Encode(map[string]string{"message": "ok"})
		}))

		require.NoError(t, client.Favorites.ToggleFavorite(context.Background(), "hong01", "kim02"))
	})

	t.Run("list decodes the joined user rows", func(t *testing.T) {
		client, _ := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "/favorite/get_favorites", r.URL.Path)
			require.Equal(t, "hong01", r.URL.Query().Get("user_id"))
			json.NewEncoder(w).Encode(map[string]any{
				"favorite": []map[string]string{
					{"id": "kim02", "name": "Kim Cheolsu", "department_name": "R&D", "team_name": "Platform", "status": "IN_OFFICE"},
				},
			})
		}))

		favorites, err := client.Favorites.Favorites(context.Background(), "hong01")
		require.NoError(t, err)
		require.Len(t, favorites, 1)
		require.Equal(t, "Kim Cheolsu", favorites[0].Name)
		require.Equal(t, "R&D", favorites[0].DepartmentName)
	})
}

func TestMenuClient(t *testing.T) {
	t.Run("lists menus in display order", func(t *testing.T) {
		client, _ := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "/menu/get_menu_list", r.URL.Path)
			json.NewEncoder(w).Encode(map[string]any{
				"menus": []map[string]any{
					{"menu_id": "M01", "menu_nm": "Dashboard", "menu_order": 1},
					{"menu_id": "M02", "menu_nm": "Projects", "menu_order": 2},
				},
			})
		}))

		menus, err := client.Menus.Menus(context.Background())
		require.NoError(t, err)
		require.Len(t, menus, 2)
		require.Equal(t, "Dashboard", menus[0].MenuName)
		require.Equal(t, 2, menus[1].MenuOrder)
	})

	t.Run("update targets the menu id path", func(t *testing.T) {
		client, _ := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "/menu/update_menu/M01", r.URL.Path)
			require.Equal(t, http.MethodPut, r.Method)

			var in map[string]any
			require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
			require.Equal(t, "Overview", in["menu_nm"])
			require.EqualValues(t, 3, in["menu_order"])

			json.NewEncoder(w).Encode(map[string]string{"message": "ok"})
		}))

		require.NoError(t, client.Menus.UpdateMenu(context.Background(), "M01", "Overview", 3))
	})

	t.Run("delete of a missing menu surfaces the 404", func(t *testing.T) {
		client, _ := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(map[string]string{"message": "menu not found"})
		}))

		err := client.Menus.DeleteMenu(context.Background(), "M99")
		var statusErr *gateway.StatusError
		require.ErrorAs(t, err, &statusErr)
		require.Equal(t, http.StatusNotFound, statusErr.Code)
	})
}

func TestNoticeClient_Notices(t *testing.T) {
	client, _ := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/notice/get_notice_list", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]any{
			"notices": []map[string]any{
				{"id": 3, "title": "Office move", "content": "New floor plan attached."},
			},
		})
	}))

	notices, err := client.Notices.Notices(context.Background())
	require.NoError(t, err)
	require.Len(t, notices, 1)
	require.Equal(t, "Office move", notices[0].Title)
}
