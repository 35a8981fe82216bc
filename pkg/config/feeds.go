package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// FeedConfig names one JSON feed the ingest job drains.
type FeedConfig struct {
	Name string `yaml:"name"`
	URL  string `yaml:"url"`
}

// loadFeeds resolves the feed list. FEEDS_FILE points at a YAML file
// (a list of name/url entries); FEEDS is a comma-separated list of
// name=url pairs appended after the file. With neither set, ingestion
// stays disabled and the rest of the pipeline runs against whatever
// the database already holds.
func loadFeeds() ([]FeedConfig, error) {
	var feeds []FeedConfig

	if path := os.Getenv("FEEDS_FILE"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("%w: FEEDS_FILE=%q: %v", ErrInvalidValue, path, err)
		}
		if err := yaml.Unmarshal(data, &feeds); err != nil {
			return nil, fmt.Errorf("%w: FEEDS_FILE=%q: %v", ErrInvalidValue, path, err)
		}
	}

	for _, pair := range strings.Split(os.Getenv("FEEDS"), ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		name, feedURL, ok := strings.Cut(pair, "=")
		name = strings.TrimSpace(name)
		feedURL = strings.TrimSpace(feedURL)
		if !ok || name == "" || feedURL == "" {
			return nil, fmt.Errorf("%w: FEEDS entry %q (want name=url)", ErrInvalidValue, pair)
		}
		feeds = append(feeds, FeedConfig{Name: name, URL: feedURL})
	}

	for _, f := range feeds {
		if f.Name == "" || f.URL == "" {
			return nil, fmt.Errorf("%w: feed entry missing name or url", ErrInvalidValue)
		}
		if _, err := url.ParseRequestURI(f.URL); err != nil {
			return nil, fmt.Errorf("%w: feed url %q", ErrInvalidValue, f.URL)
		}
	}
	return feeds, nil
}
