// Package widget assembles the embeddable booking widget: it resolves the
// embed configuration, bootstraps a session against the widget API and owns
// the wizard instance that drives rendering.
package widget

import (
	"errors"
	"strings"

	"github.com/pawdesk/booking-widget/internal/apiclient"
)

const defaultContainerID = "pawdesk-booking-widget"

var (
	// ErrMissingAPIKey aborts startup when the embed carries no API key.
	ErrMissingAPIKey = errors.New("widget: api key is required")
	// ErrMissingBaseURL aborts startup when no API endpoint is configured.
	ErrMissingBaseURL = errors.New("widget: api base url is required")
	// ErrMissingContainer aborts startup when the container id resolves empty.
	ErrMissingContainer = errors.New("widget: container id is required")
)

// EmbedOptions are the attributes read off the embedding page. The signing
// secret stays on the host's server side; it never ships in page markup.
type EmbedOptions struct {
	APIBaseURL    string
	APIKey        string
	SigningSecret string
	ContainerID   string
	Origin        string
	Customization apiclient.Customization
}

// Configuration is the immutable result of resolving embed options. Only
// the session token is filled in later, once, by bootstrap.
type Configuration struct {
	APIBaseURL    string
	APIKey        string
	SigningSecret string
	ContainerID   string
	Origin        string
	Customization apiclient.Customization
}

// Resolve validates embed options and produces the widget configuration.
// This is a one-time startup check; there is no retry for a bad embed.
func Resolve(opts EmbedOptions) (*Configuration, error) {
	if opts.APIKey == "" {
		return nil, ErrMissingAPIKey
	}
	if opts.APIBaseURL == "" {
		return nil, ErrMissingBaseURL
	}
	containerID := strings.TrimSpace(opts.ContainerID)
	if containerID == "" {
		if opts.ContainerID != "" {
			return nil, ErrMissingContainer
		}
		containerID = defaultContainerID
	}

	return &Configuration{
		APIBaseURL:    opts.APIBaseURL,
		APIKey:        opts.APIKey,
		SigningSecret: opts.SigningSecret,
		ContainerID:   containerID,
		Origin:        opts.Origin,
		Customization: opts.Customization,
	}, nil
}
