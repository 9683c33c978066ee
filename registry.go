package endpoints

import (
	stderrors "errors"
	"fmt"
	"net/url"
	"slices"
	"strings"

	"github.com/stable/endpoints/pkg/constants"
	"github.com/stable/endpoints/pkg/errors"
)

// Registry maps every Key to its Entry for one base address.
// It is immutable once built.
type Registry struct {
	baseURL string
	entries map[Key]Entry
}

// New builds a registry from the given options. Without options the
// registry targets constants.DefaultBaseURL.
func New(opts ...Option) (*Registry, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, fmt.Errorf("applying options: %w", err)
		}
	}

	base, err := normalizeBaseURL(cfg.baseURL)
	if err != nil {
		return nil, err
	}

	r := &Registry{
		baseURL: base,
		entries: make(map[Key]Entry, len(definitions)),
	}
	for _, d := range definitions {
		switch d.shape {
		case Static:
			r.entries[d.key] = StaticEndpoint{URL: base + d.path}
		case Parameterized:
			r.entries[d.key] = ParameterizedEndpoint{Prefix: base + d.path}
		}
	}

	return r, nil
}

// MustNew is like New but panics on error. Intended for package-level
// initialization where a bad base address is a programming error.
func MustNew(opts ...Option) *Registry {
	r, err := New(opts...)
	if err != nil {
		panic(err)
	}
	return r
}

// normalizeBaseURL trims trailing slashes and checks the address is an
// absolute URL that paths can be appended to.
func normalizeBaseURL(raw string) (string, error) {
	base := strings.TrimRight(strings.TrimSpace(raw), "/")
	if base == "" {
		return "", errors.NewConfigError("base_url", "base address is empty", nil)
	}

	u, err := url.Parse(base)
	if err != nil {
		return "", errors.NewConfigError("base_url", fmt.Sprintf("cannot parse %q", raw), err)
	}
	if u.Scheme == "" || u.Host == "" {
		return "", errors.NewConfigError("base_url", fmt.Sprintf("%q must include scheme and host", raw), nil)
	}
	if u.RawQuery != "" || u.Fragment != "" || strings.ContainsAny(base, "?#") {
		return "", errors.NewConfigError("base_url", fmt.Sprintf("%q must not carry a query or fragment", raw), nil)
	}

	return base, nil
}

// BaseURL returns the normalized base address every entry begins with.
func (r *Registry) BaseURL() string {
	return r.baseURL
}

// Len returns the number of entries.
func (r *Registry) Len() int {
	return len(r.entries)
}

// Keys returns every key in the registry, sorted.
func (r *Registry) Keys() []Key {
	keys := make([]Key, 0, len(r.entries))
	for k := range r.entries {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// Entry returns the entry stored under key.
func (r *Registry) Entry(key Key) (Entry, error) {
	e, ok := r.entries[key]
	if !ok {
		return nil, errors.NewUnknownKeyError(string(key))
	}
	return e, nil
}

// Resolve returns the URL of a static endpoint. It fails with an
// UnknownKeyError for keys outside the registry and a ShapeError for
// parameterized endpoints, which need ResolveID.
func (r *Registry) Resolve(key Key) (string, error) {
	e, err := r.Entry(key)
	if err != nil {
		return "", err
	}

	static, ok := e.(StaticEndpoint)
	if !ok {
		return "", errors.NewShapeError(string(key), e.Shape().String(), Static.String())
	}
	return static.URL, nil
}

// ResolveID renders the URL of a parameterized endpoint for id. The
// identifier is interpolated verbatim; validating it is up to the caller.
// Static endpoints fail with a ShapeError.
func (r *Registry) ResolveID(key Key, id string) (string, error) {
	e, err := r.Entry(key)
	if err != nil {
		return "", err
	}

	param, ok := e.(ParameterizedEndpoint)
	if !ok {
		return "", errors.NewShapeError(string(key), e.Shape().String(), Parameterized.String())
	}
	return param.Render(id), nil
}

// MustResolve is like Resolve but panics on error.
func (r *Registry) MustResolve(key Key) string {
	u, err := r.Resolve(key)
	if err != nil {
		panic(err)
	}
	return u
}

// MustResolveID is like ResolveID but panics on error.
func (r *Registry) MustResolveID(key Key, id string) string {
	u, err := r.ResolveID(key, id)
	if err != nil {
		panic(err)
	}
	return u
}

// Message returns the general message endpoint.
func (r *Registry) Message() string {
	return r.MustResolve(KeyMessage)
}

// CreateProfile returns the endpoint that creates a user profile.
func (r *Registry) CreateProfile() string {
	return r.MustResolve(KeyCreateProfile)
}

// GetAllProfiles returns the endpoint that lists user profiles.
func (r *Registry) GetAllProfiles() string {
	return r.MustResolve(KeyGetAllProfiles)
}

// GetProfileByUUID returns the endpoint that fetches the profile identified by id.
func (r *Registry) GetProfileByUUID(id string) string {
	return r.MustResolveID(KeyGetProfileByUUID, id)
}

// UpdateProfileByUUID returns the endpoint that updates the profile identified by id.
func (r *Registry) UpdateProfileByUUID(id string) string {
	return r.MustResolveID(KeyUpdateProfileByUUID, id)
}

// Check verifies the registry invariants: every entry begins with the base
// address and parses as an absolute URL, parameterized entries place the
// identifier once at the end, and no two keys resolve to the same URL.
// All violations are joined into the returned error.
func (r *Registry) Check() error {
	var errs []error
	seen := make(map[string]Key, len(r.entries))

	for _, key := range r.Keys() {
		e := r.entries[key]

		resolved := e.Template()
		if p, ok := e.(ParameterizedEndpoint); ok {
			resolved = p.Render(constants.SampleIdentifier)
			if strings.Count(resolved, constants.SampleIdentifier) != 1 || !strings.HasSuffix(resolved, constants.SampleIdentifier) {
				errs = append(errs, fmt.Errorf("%s: identifier must appear once at the end of %q", key, resolved))
			}
		}

		if !strings.HasPrefix(resolved, r.baseURL) {
			errs = append(errs, fmt.Errorf("%s: %q does not begin with base address %q", key, resolved, r.baseURL))
		}

		u, err := url.Parse(resolved)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", key, err))
		} else if !u.IsAbs() || u.Host == "" {
			errs = append(errs, fmt.Errorf("%s: %q is not an absolute URL", key, resolved))
		}

		if other, dup := seen[resolved]; dup {
			errs = append(errs, fmt.Errorf("%s: resolves to the same URL as %s", key, other))
		}
		seen[resolved] = key
	}

	return stderrors.Join(errs...)
}
