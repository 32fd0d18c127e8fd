package prospects

import (
	"context"
	"net/http"
	"sync"
	"time"
)

const (
	DefaultLogoBaseURL = "http://d2uki2uvp6v3wr.cloudfront.net/ncaa/"
	logoTimeout        = 3 * time.Second
)

// LogoResolver checks the CDN for school logos, remembering every answer per school.
type LogoResolver struct {
	BaseURL string
	Client  *http.Client
	// Pause after each CDN request.
	Delay time.Duration

	mu    sync.Mutex
	cache map[string]*string
	hits  int
}

// NewLogoResolver creates a resolver against the default CDN.
func NewLogoResolver() *LogoResolver {
	return &LogoResolver{
		BaseURL: DefaultLogoBaseURL,
		Client:  &http.Client{Timeout: logoTimeout},
		Delay:   100 * time.Millisecond,
		cache:   map[string]*string{},
	}
}

// Find returns the logo URL of the school or nil when the CDN has none.
func (r *LogoResolver) Find(ctx context.Context, school string) *string {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.cache == nil {
		r.cache = map[string]*string{}
	}
	if logo, ok := r.cache[school]; ok {
		return logo
	}

	logo := r.lookup(ctx, r.BaseURL+SchoolSlug(school)+".svg")
	r.cache[school] = logo
	if logo != nil {
		r.hits++
	}

	if r.Delay > 0 {
		time.Sleep(r.Delay)
	}

	return logo
}

// Hits is the number of schools with a logo.
func (r *LogoResolver) Hits() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.hits
}

func (r *LogoResolver) lookup(ctx context.Context, url string) *string {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, url, nil)
	if err != nil {
		return nil
	}
	req.Header.Set("User-Agent", "Mozilla/5.0")

	client := r.Client
	if client == nil {
		client = &http.Client{Timeout: logoTimeout}
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil
	}

	return &url
}
