//go:build integration || !unit

package integration

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	_ "github.com/go-sql-driver/mysql"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"

	httpserver "stay_resolver/internal/adapters/http_server"
	"stay_resolver/internal/adapters/places"
	redisad "stay_resolver/internal/adapters/redis"
	"stay_resolver/internal/app"
	"stay_resolver/internal/shared"
	mysqlrepo "stay_resolver/internal/storage/mysql"
)

// ---------- helpers ----------

func mustEnv(t *testing.T, k string) string {
	t.Helper()
	v := os.Getenv(k)
	if v == "" {
		t.Fatalf("%s not set; export it (e.g. MIGRATIONS_DIR=/path/to/sql)", k)
	}
	return v
}

func applyMigrations(t *testing.T, db *sql.DB) {
	t.Helper()
	dir := mustEnv(t, "MIGRATIONS_DIR")

	st, err := os.Stat(dir)
	if err != nil || !st.IsDir() {
		t.Fatalf("MIGRATIONS_DIR=%s is not a directory or missing", dir)
	}
	ents, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read migrations dir: %v", err)
	}
	var files []string
	for _, e := range ents {
		if !e.IsDir() && filepath.Ext(e.Name()) == ".sql" {
			files = append(files, filepath.Join(dir, e.Name()))
		}
	}
	if len(files) == 0 {
		t.Fatalf("no .sql files in %s", dir)
	}
	sort.Strings(files)
	for _, f := range files {
		sqlBytes, err := os.ReadFile(f)
		if err != nil {
			t.Fatalf("read %s: %v", f, err)
		}
		if _, err := db.Exec(string(sqlBytes)); err != nil {
			t.Fatalf("exec %s: %v", f, err)
		}
	}
}

func startMySQL(t *testing.T) *sql.DB {
	t.Helper()
	pool, err := dockertest.NewPool("")
	if err != nil {
		t.Fatalf("dockertest: %v", err)
	}
	runOpts := &dockertest.RunOptions{
		Repository: "mysql",
		Tag:        "8.0.36",
		Env: []string{
			"MYSQL_ROOT_PASSWORD=root",
			"MYSQL_DATABASE=resolver",
		},
	}
	resource, err := pool.RunWithOptions(runOpts, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
		hc.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		t.Fatalf("run mysql: %v", err)
	}
	t.Cleanup(func() { _ = pool.Purge(resource) })

	hostPort := resource.GetPort("3306/tcp")
	dsn := fmt.Sprintf("root:root@tcp(127.0.0.1:%s)/resolver?parseTime=true&multiStatements=true&charset=utf8mb4,utf8&loc=UTC", hostPort)

	var db *sql.DB
	if err := pool.Retry(func() error {
		var e error
		db, e = sql.Open("mysql", dsn)
		if e != nil {
			return e
		}
		return db.Ping()
	}); err != nil {
		t.Fatalf("connect mysql: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	applyMigrations(t, db)
	return db
}

// placesStub geocodes anything mentioning santa cruz and returns one hotel
// there; every other location phrase misses.
func placesStub(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/v2/search-text", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if strings.Contains(strings.ToLower(r.URL.Query().Get("q")), "santa cruz") {
			w.Write([]byte(`{"resultItems":[{"title":"Santa Cruz","position":[-122.0308,36.9741]}]}`))
			return
		}
		w.Write([]byte(`{"resultItems":[]}`))
	})
	mux.HandleFunc("/v2/search-nearby", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"resultItems":[
			{"title":"Ocean Breeze Santa Cruz",
			 "address":{"addressNumber":"100","street":"Beach Street","locality":"Santa Cruz",
			            "country":{"name":"United States"},"postalCode":"95060"},
			 "position":[-122.026,36.962],
			 "contacts":{"phones":[{"value":"+18315550123"}]}}
		]}`))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

type resolveBody struct {
	Result []struct {
		Code string `json:"spirit_cd"`
		Name string `json:"property_name"`
		Rank int    `json:"rank"`
	} `json:"result"`
}

func postResolve(t *testing.T, baseURL, query string) (*http.Response, resolveBody) {
	t.Helper()
	payload := fmt.Sprintf(`{"input":{"query":%q}}`, query)
	req, err := http.NewRequest(http.MethodPost, baseURL+"/v1/properties/resolve", strings.NewReader(payload))
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-API-Key", "e2e-key")

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("POST: %v", err)
	}
	t.Cleanup(func() { res.Body.Close() })

	var body resolveBody
	if res.StatusCode == http.StatusOK {
		if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
			t.Fatalf("decode: %v", err)
		}
	}
	return res, body
}

// ---------- the test ----------

func TestHTTP_EndToEnd_Resolve(t *testing.T) {
	db := startMySQL(t)
	repo := mysqlrepo.New(db)
	ctx := context.Background()

	for _, p := range shared.SeedProperties {
		if err := repo.Put(ctx, p); err != nil {
			t.Fatalf("seed %s: %v", p.Code, err)
		}
	}

	stub := placesStub(t)
	client, err := places.New(stub.URL, "e2e-key", 50, 2*time.Second)
	if err != nil {
		t.Fatalf("places client: %v", err)
	}

	mr := miniredis.RunT(t)
	cache := redisad.New(mr.Addr(), "", 0)

	bridge := app.NewBridge(client, client, repo, cache, time.Hour)
	resolver := app.NewResolver(repo, bridge, 5)

	srv := httpserver.New()
	srv.MountHandlers(&httpserver.Handlers{R: resolver, APIKey: "e2e-key"})
	ts := httptest.NewServer(srv.Mux())
	defer ts.Close()

	t.Run("seed catalog match", func(t *testing.T) {
		res, body := postResolve(t, ts.URL, "waldorf astoria miami")
		if res.StatusCode != http.StatusOK {
			t.Fatalf("status %d", res.StatusCode)
		}
		if len(body.Result) == 0 || body.Result[0].Code != "WAMI" || body.Result[0].Rank != 1 {
			t.Fatalf("unexpected result: %+v", body.Result)
		}
	})

	t.Run("external augmentation and write-back", func(t *testing.T) {
		res, body := postResolve(t, ts.URL, "ocean breeze santa cruz")
		if res.StatusCode != http.StatusOK {
			t.Fatalf("status %d", res.StatusCode)
		}
		if len(body.Result) == 0 || body.Result[0].Name != "Ocean Breeze Santa Cruz" {
			t.Fatalf("unexpected result: %+v", body.Result)
		}

		// the discovered property must now live in the catalog
		all, err := repo.ListAll(ctx)
		if err != nil {
			t.Fatalf("ListAll: %v", err)
		}
		found := false
		for _, p := range all {
			if p.Name == "Ocean Breeze Santa Cruz" {
				found = true
				if p.NumericID < 50000 {
					t.Fatalf("external numeric id = %d, want >= 50000", p.NumericID)
				}
				if p.Phone != "(831) 555-0123" {
					t.Fatalf("phone = %q", p.Phone)
				}
				if p.Provenance == nil || !p.Provenance.IsExternal {
					t.Fatalf("provenance = %+v", p.Provenance)
				}
			}
		}
		if !found {
			t.Fatal("discovered property was not written back")
		}

		// geocode response should now be cached
		if got := mr.Keys(); len(got) == 0 {
			t.Fatal("expected a cached geocode entry")
		}
	})

	t.Run("no match is 404", func(t *testing.T) {
		res, _ := postResolve(t, ts.URL, "zzz qqq nowhere")
		if res.StatusCode != http.StatusNotFound {
			t.Fatalf("status %d", res.StatusCode)
		}
	})
}
