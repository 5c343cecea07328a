// Package enhance implements the enhance and inspect commands: one-shot
// pipeline runs over a captured posting page.
package enhance

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"

	"github.com/PuerkitoBio/goquery"
	"github.com/Tpypan/wwlens/models"
	"github.com/Tpypan/wwlens/pkg/compose"
	"github.com/Tpypan/wwlens/pkg/extract"
	"github.com/Tpypan/wwlens/pkg/pageclass"
	"github.com/Tpypan/wwlens/pkg/render"
	"github.com/Tpypan/wwlens/pkg/settings"
	"github.com/Tpypan/wwlens/pkg/shortlist"
	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"
)

// NewLogger builds the shared JSON logger for CLI actions.
func NewLogger(c *cli.Context) *slog.Logger {
	level := slog.LevelInfo
	if c.Bool("quiet") {
		level = slog.LevelError
	}
	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// loadDetail parses the captured page and locates the posting detail view.
func loadDetail(path string) (*goquery.Document, *goquery.Selection, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("read page: %w", err)
	}
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(raw))
	if err != nil {
		return nil, nil, fmt.Errorf("parse page: %w", err)
	}
	root := pageclass.DetailRoot.Find(doc.Selection).First()
	if root.Length() == 0 {
		return nil, nil, fmt.Errorf("no posting detail view in %s", path)
	}
	return doc, root, nil
}

// contentOf returns the detail content sub-panel, or the root itself for
// captures taken before the sub-panel markup existed.
func contentOf(root *goquery.Selection) *goquery.Selection {
	if content := pageclass.DetailContent.Find(root).First(); content.Length() > 0 {
		return content
	}
	return root
}

// EnhanceAction runs extract → compose → render over a captured posting
// page and writes the enhanced document.
func EnhanceAction(c *cli.Context) error {
	logger := NewLogger(c)
	cfg := settings.Load(c.String("settings"), logger).Get()

	doc, root, err := loadDetail(c.String("input"))
	if err != nil {
		return err
	}

	content := contentOf(root)
	fields := extract.Extract(content)
	items := compose.Compose(fields, cfg)
	jobID := pageclass.OpenJobID(root)

	var starred bool
	if dbPath := c.String("db"); dbPath != "" {
		store, err := shortlist.Open(dbPath, logger)
		if err != nil {
			logger.Warn("shortlist store unavailable", "error", err)
		} else {
			starred = store.Contains(jobID)
			defer store.Close()
		}
	}

	err = render.Render(render.Input{
		Doc:         doc,
		Root:        root,
		Items:       items,
		Fields:      fields,
		Settings:    cfg,
		JobID:       jobID,
		Shortlisted: starred,
	}, logger)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}

	out, err := doc.Html()
	if err != nil {
		return fmt.Errorf("serialize page: %w", err)
	}
	if path := c.String("output"); path != "" {
		if err := os.WriteFile(path, []byte(out), 0o644); err != nil {
			return fmt.Errorf("write enhanced page: %w", err)
		}
		logger.Info("enhanced page written", "path", path, "items", len(items))
		return nil
	}
	fmt.Println(out)
	return nil
}

// inspectReport is the YAML shape of the inspect command's output.
type inspectReport struct {
	JobID    string                `yaml:"job_id,omitempty"`
	Title    string                `yaml:"title,omitempty"`
	Overview string                `yaml:"overview,omitempty"`
	Fields   map[string]string     `yaml:"fields"`
	Items    []models.PriorityItem `yaml:"priority_items"`
}

// InspectAction prints the extracted fields, composed priority items, and a
// readable overview of a captured posting page.
func InspectAction(c *cli.Context) error {
	logger := NewLogger(c)
	cfg := settings.Load(c.String("settings"), logger).Get()

	input := c.String("input")
	_, root, err := loadDetail(input)
	if err != nil {
		return err
	}

	fields := extract.Extract(contentOf(root))
	report := inspectReport{
		JobID:  pageclass.OpenJobID(root),
		Fields: make(map[string]string, len(fields)),
		Items:  compose.Compose(fields, cfg),
	}
	for key, f := range fields {
		report.Fields[key] = f.Value
	}

	if raw, err := os.ReadFile(input); err == nil {
		pageURL := c.String("url")
		if pageURL == "" {
			pageURL = "https://waterlooworks.uwaterloo.ca/"
		}
		title, excerpt, err := extract.Overview(string(raw), pageURL)
		if err != nil {
			logger.Debug("overview unavailable", "error", err)
		} else {
			report.Title = title
			report.Overview = excerpt
		}
	}

	out, err := yaml.Marshal(report)
	if err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	fmt.Print(string(out))
	return nil
}
