package srv

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/roamlog/roam-api/pkg/types"
)

const DEFAULT_COUNTRY_API_BASE_URL = "https://restcountries.com/v3.1"

// listFields keeps the full-list payload down to what the frontend renders.
const listFields = "name,cca2,cca3,flag,capital,population,region,languages"

var upstreamFetches = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "roam_api",
	Subsystem: "countries",
	Name:      "upstream_fetch_total",
	Help:      "Requests made to the upstream country API.",
}, []string{"endpoint"})

// CountryDirectory is a caching pass-through to the upstream country API.
// The full list is held as one (snapshot, fetchedAt) pair and served from
// memory within the freshness window; per-code lookups always go upstream.
type CountryDirectory struct {
	client  *http.Client
	baseURL string
	ttl     time.Duration
	now     func() time.Time

	mu        sync.Mutex
	snapshot  []types.Country
	fetchedAt time.Time
}

func NewCountryDirectory(client *http.Client, baseURL string, ttl time.Duration) *CountryDirectory {
	if client == nil {
		client = http.DefaultClient
	}
	return &CountryDirectory{
		client:  client,
		baseURL: baseURL,
		ttl:     ttl,
		now:     time.Now,
	}
}

// SetNowFunc swaps the clock, for tests.
func (d *CountryDirectory) SetNowFunc(now func() time.Time) {
	d.now = now
}

// List returns the cached snapshot while it is fresh, refreshing it from
// upstream otherwise. A failed refresh never evicts the held snapshot. The
// lock is held across the fetch, so concurrent misses coalesce into one
// upstream request.
func (d *CountryDirectory) List(ctx context.Context) ([]types.Country, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.snapshot != nil && d.now().Sub(d.fetchedAt) < d.ttl {
		return d.snapshot, nil
	}

	list, err := d.fetchAll(ctx)
	if err != nil {
		return nil, err
	}

	d.snapshot = list
	d.fetchedAt = d.now()
	return list, nil
}

func (d *CountryDirectory) fetchAll(ctx context.Context) ([]types.Country, error) {
	upstreamFetches.WithLabelValues("all").Inc()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, d.baseURL+"/all?fields="+listFields, nil)
	if err != nil {
		return nil, err
	}
	resp, err := d.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("country api status %d", resp.StatusCode)
	}

	var list []types.Country
	if err = json.NewDecoder(resp.Body).Decode(&list); err != nil {
		return nil, err
	}
	return list, nil
}

// Lookup fetches one country by code, bypassing the cache. A non-success
// upstream response means the code is unknown and yields (nil, nil); only
// transport-level failures return an error.
func (d *CountryDirectory) Lookup(ctx context.Context, code string) (*types.Country, error) {
	upstreamFetches.WithLabelValues("alpha").Inc()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, d.baseURL+"/alpha/"+url.PathEscape(code), nil)
	if err != nil {
		return nil, err
	}
	resp, err := d.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, nil
	}

	// The alpha endpoint answers with a one-element array.
	var list []types.Country
	if err = json.NewDecoder(resp.Body).Decode(&list); err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, nil
	}
	return &list[0], nil
}
