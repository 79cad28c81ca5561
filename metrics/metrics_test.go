package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestMiddleware_RouteTemplateLabels(t *testing.T) {
	r := mux.NewRouter()
	r.Use(Middleware)
	r.HandleFunc("/get_shop_items/{username}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}).Methods("GET")

	srv := httptest.NewServer(r)
	defer srv.Close()

	for _, username := range []string{"alice", "bob", "carol"} {
		resp, err := http.Get(srv.URL + "/get_shop_items/" + username)
		require.NoError(t, err)
		resp.Body.Close()
	}

	// Разные имена пользователей попадают в одну серию по шаблону маршрута.
	require.Equal(t, 1, testutil.CollectAndCount(requestsTotal, "coingarden_http_requests_total"))
	require.Equal(t, float64(3), testutil.ToFloat64(
		requestsTotal.WithLabelValues("GET", "/get_shop_items/{username}", "200"),
	))
}
