package main

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// script describes one replayed authorization session.
type script struct {
	AuthorizationURL  string   `yaml:"authorization_url"`
	RedirectURI       string   `yaml:"redirect_uri"`
	ChallengeResponse string   `yaml:"challenge_response"`
	ChallengeError    string   `yaml:"challenge_error"`
	Navigations       []string `yaml:"navigations"`
	// CancelAfter cancels the session after this many navigations. Zero never cancels.
	CancelAfter int `yaml:"cancel_after"`
}

func loadScript(r io.Reader) (script, error) {
	var sc script
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&sc); err != nil {
		if errors.Is(err, io.EOF) {
			return script{}, fmt.Errorf("[loadScript] script is empty")
		}
		return script{}, fmt.Errorf("[loadScript] failed to decode script: %w", err)
	}
	if sc.AuthorizationURL == "" {
		return script{}, fmt.Errorf("[loadScript] authorization_url is required")
	}
	if sc.RedirectURI == "" {
		return script{}, fmt.Errorf("[loadScript] redirect_uri is required")
	}
	if sc.CancelAfter < 0 {
		return script{}, fmt.Errorf("[loadScript] cancel_after must not be negative")
	}
	return sc, nil
}
