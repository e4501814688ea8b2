package stripe

import (
	"net/http"

	"github.com/fivetwenty-io/stripe-client/internal/constants"
)

// APIVersion pins the API behavior a client is written against.
type APIVersion string

// Supported API versions.
const (
	APIVersion20200827 APIVersion = "2020-08-27"
	APIVersion20221115 APIVersion = "2022-11-15"
	APIVersion20231016 APIVersion = "2023-10-16"
	APIVersion20240620 APIVersion = "2024-06-20"

	// DefaultAPIVersion is sent when the caller does not choose a version.
	DefaultAPIVersion = APIVersion20240620
)

// Headers holds the per-client request options. Unset fields contribute no
// header.
type Headers struct {
	ClientID      string     `json:"client_id,omitempty"      yaml:"client_id,omitempty"`
	StripeAccount string     `json:"stripe_account,omitempty" yaml:"stripe_account,omitempty"`
	StripeVersion APIVersion `json:"stripe_version,omitempty" yaml:"stripe_version,omitempty"`
	// Expand lists extra fields to expand on every request made with these
	// headers. They are sent as expand[] parameters.
	Expand []string `json:"expand,omitempty" yaml:"expand,omitempty"`
}

// Apply writes the set fields onto h.
func (hs Headers) Apply(h http.Header) {
	if hs.StripeAccount != "" {
		h.Set(constants.HeaderStripeAccount, hs.StripeAccount)
	}

	if hs.ClientID != "" {
		h.Set(constants.HeaderClientID, hs.ClientID)
	}

	if hs.StripeVersion != "" {
		h.Set(constants.HeaderStripeVersion, string(hs.StripeVersion))
	}
}

// AppInfo identifies an application built on top of the client. It is
// appended to the User-Agent.
type AppInfo struct {
	Name    string `json:"name"              yaml:"name"`
	Version string `json:"version,omitempty" yaml:"version,omitempty"`
	URL     string `json:"url,omitempty"     yaml:"url,omitempty"`
}

// String formats the app info as name[/version][ (url)].
func (a AppInfo) String() string {
	s := a.Name

	if a.Version != "" {
		s += "/" + a.Version
	}

	if a.URL != "" {
		s += " (" + a.URL + ")"
	}

	return s
}

// UserAgent returns the User-Agent for the library, followed by the app info
// when present.
func UserAgent(app *AppInfo) string {
	ua := constants.UserAgentPrefix + constants.LibraryVersion
	if app != nil && app.Name != "" {
		ua += " " + app.String()
	}

	return ua
}
