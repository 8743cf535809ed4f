// Command portfolio-seed loads section documents from YAML files into the
// content store. Each file seeds the section named by its base name, e.g.
// seeds/hero.yaml seeds the "hero" section. Documents are validated before
// anything is written, and overwrites ask for confirmation.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	firestoredb "cloud.google.com/go/firestore"
	"github.com/AlecAivazis/survey/v2"
	"github.com/google/go-cmp/cmp"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-portfolio-cms/internal/config"
	"github.com/goliatone/go-portfolio-cms/pkg/content"
	"github.com/goliatone/go-portfolio-cms/pkg/store"
	"github.com/goliatone/go-portfolio-cms/pkg/validation"
)

func main() {
	var (
		dir   = flag.String("dir", "seeds", "directory of <section>.yaml seed files")
		check = flag.Bool("check", false, "validate and diff only, write nothing")
		yes   = flag.Bool("yes", false, "overwrite without asking")
	)
	flag.Parse()

	if err := run(context.Background(), *dir, *check, *yes); err != nil {
		fmt.Fprintln(os.Stderr, "portfolio-seed:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, dir string, check, yes bool) error {
	registry := content.NewRegistry()

	seeds, err := loadSeeds(dir, registry)
	if err != nil {
		return err
	}
	if len(seeds) == 0 {
		return fmt.Errorf("no seed files in %q", dir)
	}

	for _, seed := range seeds {
		rule, ok := validation.Section(seed.section)
		if !ok {
			return fmt.Errorf("section %q has no validation rules", seed.section)
		}
		if err := validation.Check(rule, seed.doc); err != nil {
			return fmt.Errorf("%s: %w", seed.file, err)
		}
	}
	fmt.Printf("validated %d seed document(s)\n", len(seeds))

	docs, cleanup, err := openStore(ctx, check)
	if err != nil {
		return err
	}
	defer cleanup()

	for _, seed := range seeds {
		current, err := docs.Load(ctx, seed.section)
		if err != nil {
			return err
		}

		diff := cmp.Diff(current, seed.doc)
		if diff == "" {
			fmt.Printf("%s: up to date\n", seed.section)
			continue
		}

		if check {
			fmt.Printf("%s: would change:\n%s", seed.section, diff)
			continue
		}

		if len(current) > 0 && !yes {
			overwrite := false
			prompt := &survey.Confirm{
				Message: fmt.Sprintf("Section %q already has content. Overwrite?", seed.section),
			}
			if err := survey.AskOne(prompt, &overwrite); err != nil {
				return err
			}
			if !overwrite {
				fmt.Printf("%s: skipped\n", seed.section)
				continue
			}
		}

		if _, err := docs.Save(ctx, seed.section, seed.doc); err != nil {
			return err
		}
		fmt.Printf("%s: seeded\n", seed.section)
	}
	return nil
}

type seedFile struct {
	file    string
	section string
	doc     map[string]any
}

func loadSeeds(dir string, registry *content.Registry) ([]seedFile, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read seed dir: %w", err)
	}

	var seeds []seedFile
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".yaml") && !strings.HasSuffix(name, ".yml") {
			continue
		}

		section := strings.TrimSuffix(strings.TrimSuffix(name, ".yaml"), ".yml")
		if _, err := registry.Get(section); err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}

		path := filepath.Join(dir, name)
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}

		var doc map[string]any
		if err := yaml.Unmarshal(raw, &doc); err != nil {
			return nil, fmt.Errorf("%s: parse: %w", name, err)
		}

		seeds = append(seeds, seedFile{file: name, section: section, doc: doc})
	}

	sort.Slice(seeds, func(i, j int) bool { return seeds[i].section < seeds[j].section })
	return seeds, nil
}

// openStore connects Firestore when a project is configured, falling back to
// an empty in-memory store so -check works without credentials.
func openStore(ctx context.Context, check bool) (store.Store, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}

	if cfg.ProjectID == "" {
		if !check {
			return nil, nil, fmt.Errorf("FIREBASE_PROJECT_ID is required to seed")
		}
		return store.NewMemory(), func() {}, nil
	}

	client, err := firestoredb.NewClient(ctx, cfg.ProjectID)
	if err != nil {
		return nil, nil, err
	}
	return store.NewFirestore(client), func() { client.Close() }, nil
}
