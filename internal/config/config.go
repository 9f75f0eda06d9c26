// Package config defines showrank configuration and how it is layered.
//
// Precedence (low -> high): built-in defaults, an optional YAML file,
// SHOWRANK_* environment variables for the flat keys.
package config

import (
	"fmt"
	"time"

	"github.com/abhisek/showrank/internal/quiz"
)

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// LogFile is where structured logs go. "-" disables logging,
	// empty selects the default state directory.
	LogFile string `koanf:"log_file"`

	// NoticeDelay is how long after a submission the result notice appears.
	NoticeDelay time.Duration `koanf:"notice_delay"`

	// Quiz overrides the built-in quiz definition.
	Quiz QuizConfig `koanf:"quiz"`
}

// QuizConfig describes a quiz. Items are listed in reference order.
type QuizConfig struct {
	Title string       `koanf:"title"`
	Items []ItemConfig `koanf:"items"`
}

// ItemConfig is one quiz item and its points row by position.
type ItemConfig struct {
	Name   string `koanf:"name"`
	Points []int  `koanf:"points"`
}

// New returns a Config populated with defaults.
func New() *Config {
	entries := quiz.DefaultEntries()
	items := make([]ItemConfig, 0, len(entries))
	for _, e := range entries {
		items = append(items, ItemConfig{Name: e.Name, Points: e.Points})
	}

	return &Config{
		LogLevel:    "info",
		NoticeDelay: 500 * time.Millisecond,
		Quiz: QuizConfig{
			Title: quiz.DefaultTitle,
			Items: items,
		},
	}
}

// BuildQuiz validates the quiz section and builds the Quiz.
func (c *Config) BuildQuiz() (*quiz.Quiz, error) {
	if err := validateQuizShape(c.Quiz); err != nil {
		return nil, fmt.Errorf("%w: quiz: %w", ErrInvalidConfig, err)
	}

	entries := make([]quiz.Entry, 0, len(c.Quiz.Items))
	for _, it := range c.Quiz.Items {
		entries = append(entries, quiz.Entry{Name: it.Name, Points: it.Points})
	}

	title := c.Quiz.Title
	if title == "" {
		title = quiz.DefaultTitle
	}

	q, err := quiz.New(title, entries)
	if err != nil {
		return nil, fmt.Errorf("%w: quiz: %w", ErrInvalidConfig, err)
	}
	return q, nil
}

// Validate checks the non-quiz settings.
func (c *Config) Validate() error {
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: log_level %q must be one of debug, info, warn, error", ErrInvalidConfig, c.LogLevel)
	}
	if c.NoticeDelay < 0 {
		return fmt.Errorf("%w: notice_delay must not be negative", ErrInvalidConfig)
	}
	return nil
}
